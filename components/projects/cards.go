package projects

// MaxTeamAvatars caps how many team avatars a project card displays before
// collapsing the rest into the "+N" counter.
const MaxTeamAvatars = 4

// ProjectCard is the list view's per-project view model. Cards hold no state;
// selection flows through the shell.
type ProjectCard struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	StatusLabel  string       `json:"status_label"`
	Badge        BadgeStyle   `json:"badge"`
	Spent        string       `json:"spent"`
	Budget       string       `json:"budget"`
	Progress     float64      `json:"progress"`
	BarWidth     float64      `json:"bar_width"`
	Team         []TeamMember `json:"team"`
	TeamOverflow int          `json:"team_overflow"`
}

// NewProjectCard builds the card view model for a catalog record. Displayed
// avatars plus the overflow counter always equal the full team size.
func NewProjectCard(project Project, locale string) ProjectCard {
	team := project.Team
	overflow := 0
	if len(team) > MaxTeamAvatars {
		overflow = len(team) - MaxTeamAvatars
		team = team[:MaxTeamAvatars]
	}
	return ProjectCard{
		ID:           project.ID,
		Name:         project.Name,
		Description:  project.Description,
		StatusLabel:  project.Status.Label(locale),
		Badge:        project.Status.Badge(),
		Spent:        FormatMoney(project.Spent),
		Budget:       FormatMoney(project.Budget),
		Progress:     project.Progress(),
		BarWidth:     project.BarWidth(),
		Team:         append([]TeamMember(nil), team...),
		TeamOverflow: overflow,
	}
}

// ProjectCards builds cards for the whole catalog in seed order.
func ProjectCards(catalog []Project, locale string) []ProjectCard {
	cards := make([]ProjectCard, len(catalog))
	for i, project := range catalog {
		cards[i] = NewProjectCard(project, locale)
	}
	return cards
}

// KPICard is the dashboard tile view model.
type KPICard struct {
	Title     string       `json:"title"`
	Value     string       `json:"value"`
	Icon      string       `json:"icon"`
	Change    string       `json:"change"`
	Direction KPIDirection `json:"direction"`
}

// KPICards maps feed entries to tiles in order.
func KPICards(entries []KPIEntry) []KPICard {
	cards := make([]KPICard, len(entries))
	for i, entry := range entries {
		cards[i] = KPICard{
			Title:     entry.Title,
			Value:     entry.Value,
			Icon:      entry.Icon,
			Change:    entry.Change,
			Direction: entry.Direction,
		}
	}
	return cards
}

// ChartCard is a dashboard chart widget with its info-disclosure payload.
type ChartCard struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ChartType   string `json:"chart_type"`
	ChartHTML   string `json:"chart_html"`
}

// DisclosureModal returns the modal payload behind the card's info affordance.
func (c ChartCard) DisclosureModal() ModalContent {
	return ModalContent{Title: c.Title, Body: c.Description}
}
