package projects

import "testing"

func testTeam(n int) []TeamMember {
	team := make([]TeamMember, n)
	for i := range team {
		team[i] = TeamMember{Name: string(rune('A' + i))}
	}
	return team
}

func TestNewProjectCardCapsAvatars(t *testing.T) {
	project := Project{
		ID:     1,
		Name:   "Torre Norte",
		Status: StatusInProgress,
		Budget: 100000,
		Spent:  25000,
		Team:   testTeam(7),
	}
	card := NewProjectCard(project, "es")
	if len(card.Team) != MaxTeamAvatars {
		t.Fatalf("expected %d displayed avatars, got %d", MaxTeamAvatars, len(card.Team))
	}
	if card.TeamOverflow != 3 {
		t.Fatalf("expected overflow 3, got %d", card.TeamOverflow)
	}
	if len(card.Team)+card.TeamOverflow != len(project.Team) {
		t.Fatalf("displayed avatars plus overflow must equal team size")
	}
}

func TestNewProjectCardExactCapHasNoOverflow(t *testing.T) {
	card := NewProjectCard(Project{Team: testTeam(MaxTeamAvatars)}, "es")
	if card.TeamOverflow != 0 {
		t.Fatalf("a full-but-not-oversized team must not overflow, got %d", card.TeamOverflow)
	}
	if len(card.Team) != MaxTeamAvatars {
		t.Fatalf("expected all %d avatars displayed", MaxTeamAvatars)
	}
}

func TestNewProjectCardMoneyAndProgress(t *testing.T) {
	project := Project{
		ID:     2,
		Status: StatusPaused,
		Budget: 150000,
		Spent:  130000,
	}
	card := NewProjectCard(project, "es")
	if card.Spent != "$130,000" || card.Budget != "$150,000" {
		t.Fatalf("unexpected money formatting %q / %q", card.Spent, card.Budget)
	}
	if card.Badge != BadgeYellow {
		t.Fatalf("paused project must render the yellow badge, got %q", card.Badge)
	}
	if card.StatusLabel != "En Pausa" {
		t.Fatalf("unexpected status label %q", card.StatusLabel)
	}
}

func TestNewProjectCardCopiesTeam(t *testing.T) {
	project := Project{Team: testTeam(2)}
	card := NewProjectCard(project, "es")
	card.Team[0].Name = "mutated"
	if project.Team[0].Name == "mutated" {
		t.Fatalf("card must not alias the catalog record's team slice")
	}
}

func TestProjectCardsKeepSeedOrder(t *testing.T) {
	catalog := []Project{{ID: 3, Name: "C"}, {ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	cards := ProjectCards(catalog, "es")
	if len(cards) != 3 {
		t.Fatalf("expected one card per record")
	}
	for i, project := range catalog {
		if cards[i].ID != project.ID {
			t.Fatalf("cards must follow catalog order, got %+v", cards)
		}
	}
}

func TestKPICards(t *testing.T) {
	entries := []KPIEntry{
		{Title: "Proyectos Activos", Value: "12", Icon: "folder", Change: "+2", Direction: KPIIncrease},
		{Title: "Presupuesto Restante", Value: "$1.2M", Icon: "wallet", Change: "-4%", Direction: KPIDecrease},
	}
	cards := KPICards(entries)
	if len(cards) != 2 {
		t.Fatalf("expected 2 tiles")
	}
	if cards[0].Title != "Proyectos Activos" || cards[0].Direction != KPIIncrease {
		t.Fatalf("unexpected first tile %+v", cards[0])
	}
	if cards[1].Change != "-4%" || cards[1].Direction != KPIDecrease {
		t.Fatalf("unexpected second tile %+v", cards[1])
	}
}

func TestChartCardDisclosureModal(t *testing.T) {
	card := ChartCard{
		Code:        "budget_by_project",
		Title:       "Presupuesto por Proyecto",
		Description: "Comparativa de presupuesto y gasto.",
	}
	modal := card.DisclosureModal()
	if modal.Title != card.Title || modal.Body != card.Description {
		t.Fatalf("unexpected modal payload %+v", modal)
	}
}
