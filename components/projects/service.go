package projects

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	errMissingRepository  = errors.New("projects: project repository not configured")
	errMissingAttachments = errors.New("projects: attachment store not configured")
	errMissingExporter    = errors.New("projects: document exporter not configured")
	// ErrProjectNotFound marks operations addressed to an unknown project id.
	ErrProjectNotFound = errors.New("projects: project not found")
)

// Options configures the Service. Every collaborator is provided via
// interface so applications can swap implementations without importing
// internal packages.
type Options struct {
	Repository      ProjectRepository
	Attachments     AttachmentStore
	Exporter        DocumentExporter
	KPIs            KPIFeed
	Series          SeriesRepository
	Registry        *Registry
	ConfigValidator ConfigValidator
	EventHook       EventHook
	Telemetry       Telemetry
	Renderer        *ChartRenderer
	Actions         *ActionRunner
	Now             func() time.Time
}

// Service orchestrates the portfolio dashboard: catalog reads, card
// resolution, the contract workflow, date drafts, and summary export.
type Service struct {
	opts  Options
	shell *Shell

	draftMu sync.RWMutex
	drafts  map[int]DateDraft
}

// NewService builds a Service instance with safe defaults.
func NewService(opts Options) *Service {
	if opts.Repository == nil {
		opts.Repository = DefaultProjectRepository()
	}
	if opts.KPIs == nil {
		opts.KPIs = DefaultKPIFeed()
	}
	customSeries := opts.Series != nil
	if opts.Series == nil {
		opts.Series = DefaultSeriesRepository()
	}
	if opts.Registry == nil {
		opts.Registry = NewRegistry()
	}
	if opts.ConfigValidator == nil {
		opts.ConfigValidator = NewJSONSchemaValidator()
	}
	if opts.EventHook == nil {
		opts.EventHook = noopEventHook{}
	}
	if opts.Renderer == nil {
		opts.Renderer = NewChartRenderer()
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	if opts.Actions == nil {
		opts.Actions = NewActionRunner(
			WithActionHook(opts.EventHook),
			WithActionTelemetry(opts.Telemetry),
		)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	// A custom series repository rebinds the built-in chart cards, replacing
	// the default providers the registry hook installed.
	if customSeries {
		for code, provider := range map[string]CardProvider{
			"dashboard.card.monthly_sales":   NewBarCardProvider(opts.Series, opts.Renderer),
			"dashboard.card.traffic_sources": NewPieCardProvider(opts.Series, opts.Renderer),
		} {
			if _, ok := opts.Registry.Definition(code); ok {
				_ = opts.Registry.RegisterProvider(code, provider)
			}
		}
	}
	return &Service{
		opts:   opts,
		shell:  NewShell(opts.EventHook),
		drafts: make(map[int]DateDraft),
	}
}

// Shell exposes the navigation state container.
func (s *Service) Shell() *Shell {
	return s.shell
}

// Actions exposes the simulated action runner.
func (s *Service) Actions() *ActionRunner {
	return s.opts.Actions
}

// Close tears down lifecycle-scoped resources (pending action timers).
func (s *Service) Close() {
	if s.opts.Actions != nil {
		s.opts.Actions.Close()
	}
}

// Projects returns the catalog in seed order.
func (s *Service) Projects(ctx context.Context) ([]Project, error) {
	if s.opts.Repository == nil {
		return nil, errMissingRepository
	}
	return s.opts.Repository.Projects(ctx)
}

// Project resolves a single catalog record.
func (s *Service) Project(ctx context.Context, id int) (Project, bool, error) {
	if s.opts.Repository == nil {
		return Project{}, false, errMissingRepository
	}
	return s.opts.Repository.Project(ctx, id)
}

// DashboardPayload is everything the dashboard view renders.
type DashboardPayload struct {
	KPIs   []KPICard   `json:"kpis"`
	Charts []ChartCard `json:"charts"`
}

// Dashboard resolves KPI tiles and chart cards for the locale.
func (s *Service) Dashboard(ctx context.Context, locale string) (DashboardPayload, error) {
	entries, err := s.opts.KPIs.KPIs(ctx)
	if err != nil {
		return DashboardPayload{}, fmt.Errorf("projects: resolve KPIs: %w", err)
	}
	payload := DashboardPayload{KPIs: KPICards(entries)}

	for _, def := range DefaultCardDefinitions() {
		card, err := s.resolveChartCard(ctx, def.Code, locale)
		if err != nil {
			s.recordTelemetry(ctx, "projects.card.provider_error", map[string]any{
				"card":  def.Code,
				"error": err.Error(),
			})
			continue
		}
		payload.Charts = append(payload.Charts, card)
	}
	s.recordTelemetry(ctx, "projects.dashboard.resolve", map[string]any{
		"locale": locale,
		"charts": len(payload.Charts),
	})
	return payload, nil
}

func (s *Service) resolveChartCard(ctx context.Context, code, locale string) (ChartCard, error) {
	def, ok := s.opts.Registry.Definition(code)
	if !ok {
		return ChartCard{}, fmt.Errorf("projects: card %s not registered", code)
	}
	provider, ok := s.opts.Registry.Provider(code)
	if !ok {
		return ChartCard{}, fmt.Errorf("projects: card %s has no provider", code)
	}
	config := s.opts.Registry.CardConfig(code)
	if err := s.validateConfiguration(def, config); err != nil {
		return ChartCard{}, err
	}
	data, err := provider.Fetch(ctx, CardContext{Definition: def, Config: config, Locale: locale})
	if err != nil {
		return ChartCard{}, err
	}
	return ChartCard{
		Code:        def.Code,
		Title:       stringValue(data["title"], def.NameForLocale(locale)),
		Description: stringValue(data["description"], def.DescriptionForLocale(locale)),
		ChartType:   stringValue(data["chart_type"], string(def.Kind)),
		ChartHTML:   stringValue(data["chart_html"], ""),
	}, nil
}

// TimelineNode is the detail view's rendered milestone.
type TimelineNode struct {
	Date        string `json:"date"`
	Label       string `json:"label"`
	StatusLabel string `json:"status_label"`
	Completed   bool   `json:"completed"`
	Last        bool   `json:"last"`
}

// ProjectDetail is everything the detail view renders.
type ProjectDetail struct {
	Card             ProjectCard      `json:"card"`
	Alert            bool             `json:"alert"`
	Breakdown        PaymentBreakdown `json:"breakdown"`
	PaymentChartHTML string           `json:"payment_chart_html"`
	Timeline         []TimelineNode   `json:"timeline"`
	Dates            DateDraft        `json:"dates"`
	CanReview        bool             `json:"can_review"`
	Attachment       *ContractAttachment
	ApproveState     ActionState `json:"approve_state"`
	FundsState       ActionState `json:"funds_state"`
}

// Detail composes the full detail view model for a project.
func (s *Service) Detail(ctx context.Context, id int, locale string) (ProjectDetail, error) {
	project, ok, err := s.Project(ctx, id)
	if err != nil {
		return ProjectDetail{}, err
	}
	if !ok {
		return ProjectDetail{}, ErrProjectNotFound
	}

	breakdown := project.Breakdown()
	chartHTML, err := s.opts.Renderer.PaymentBar("Gráfico de Pagos", breakdown, locale)
	if err != nil {
		return ProjectDetail{}, fmt.Errorf("projects: render payment chart: %w", err)
	}

	nodes := make([]TimelineNode, len(project.Timeline))
	for i, event := range project.Timeline {
		nodes[i] = TimelineNode{
			Date:        event.Date,
			Label:       event.Label,
			StatusLabel: event.Status.Label(locale),
			Completed:   event.Status.Completed(),
			Last:        i == len(project.Timeline)-1,
		}
	}

	return ProjectDetail{
		Card:             NewProjectCard(project, locale),
		Alert:            project.BudgetAlert(),
		Breakdown:        breakdown,
		PaymentChartHTML: chartHTML,
		Timeline:         nodes,
		Dates:            s.Dates(project),
		CanReview:        s.CanReviewContract(ctx, project),
		Attachment:       s.Contract(ctx, id),
		ApproveState:     s.opts.Actions.State(id, ActionApproveProgress),
		FundsState:       s.opts.Actions.State(id, ActionRequestFunds),
	}, nil
}

// Dates returns the session draft for the project, seeded from the record
// when no edit happened yet.
func (s *Service) Dates(project Project) DateDraft {
	s.draftMu.RLock()
	draft, ok := s.drafts[project.ID]
	s.draftMu.RUnlock()
	if ok {
		return draft
	}
	return DateDraft{Start: project.StartDate, Rescheduled: project.RescheduledDate}
}

// UpdateDates stores a session-local date draft. Drafts validate but are
// never written back to the catalog record or to storage; they vanish with
// the service instance.
func (s *Service) UpdateDates(ctx context.Context, projectID int, draft DateDraft) error {
	_, ok, err := s.Project(ctx, projectID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProjectNotFound
	}
	if err := draft.Validate(); err != nil {
		return fmt.Errorf("projects: invalid date draft: %w", err)
	}
	s.draftMu.Lock()
	s.drafts[projectID] = draft
	s.draftMu.Unlock()
	s.recordTelemetry(ctx, "projects.dates.draft", map[string]any{"project_id": projectID})
	return nil
}

// TriggerAction starts one of the simulated budget-panel actions.
func (s *Service) TriggerAction(ctx context.Context, projectID int, kind ActionKind) (bool, error) {
	_, ok, err := s.Project(ctx, projectID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrProjectNotFound
	}
	switch kind {
	case ActionApproveProgress, ActionRequestFunds:
	default:
		return false, fmt.Errorf("projects: unknown action %q", kind)
	}
	return s.opts.Actions.Trigger(ctx, projectID, kind), nil
}

// ExportSummary composes the project summary document and returns the
// rendered bytes plus the download filename.
func (s *Service) ExportSummary(ctx context.Context, projectID int, locale string) ([]byte, string, error) {
	if s.opts.Exporter == nil {
		return nil, "", errMissingExporter
	}
	project, ok, err := s.Project(ctx, projectID)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", ErrProjectNotFound
	}

	doc := s.summaryDocument(project, locale)
	data, err := s.opts.Exporter.ExportSummary(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("projects: export summary for project %d: %w", projectID, err)
	}
	s.recordTelemetry(ctx, "projects.summary.export", map[string]any{
		"project_id": projectID,
		"bytes":      len(data),
	})
	return data, SummaryFilename(project), nil
}

func (s *Service) summaryDocument(project Project, locale string) SummaryDocument {
	rescheduled := project.RescheduledDate
	if rescheduled == "" {
		rescheduled = "N/A"
	}
	fields := SummaryTable{
		Head: []string{"Campo", "Valor"},
		Body: [][]string{
			{"Status", project.Status.Label(locale)},
			{"Fecha de Inicio", project.StartDate},
			{"Fecha Reprogramada", rescheduled},
			{"Presupuesto Total", FormatMoney(project.Budget)},
			{"Total Gastado", FormatMoney(project.Spent)},
		},
		Theme: TableThemeGrid,
	}

	roster := SummaryTable{
		Head:  []string{"Miembros del Equipo"},
		Theme: TableThemeStriped,
	}
	for _, member := range project.Team {
		roster.Body = append(roster.Body, []string{member.Name})
	}

	timeline := SummaryTable{
		Head:  []string{"Fecha", "Hito", "Estado"},
		Theme: TableThemeGrid,
	}
	for _, event := range project.Timeline {
		timeline.Body = append(timeline.Body, []string{event.Date, event.Label, event.Status.Label(locale)})
	}

	payments := SummaryTable{
		Head:  []string{"Fecha", "Descripción", "Monto", "Estado"},
		Theme: TableThemeGrid,
	}
	for _, payment := range project.Payments {
		payments.Body = append(payments.Body, []string{
			payment.Date,
			payment.Description,
			FormatMoney(payment.Amount),
			payment.Status.Label(locale),
		})
	}

	return SummaryDocument{
		Title:    project.Name,
		Subtitle: fmt.Sprintf("Resumen del Proyecto - %s", s.opts.Now().Format("02/01/2006")),
		Tables:   []SummaryTable{fields, roster, timeline, payments},
	}
}

// SummaryFilename derives the download name from the project's name.
func SummaryFilename(project Project) string {
	return fmt.Sprintf("%s-resumen.pdf", project.Name)
}

func (s *Service) validateConfiguration(def CardDefinition, config map[string]any) error {
	if s.opts.ConfigValidator == nil {
		return nil
	}
	return s.opts.ConfigValidator.Validate(def, config)
}

func (s *Service) attachmentStore() (AttachmentStore, error) {
	if s.opts.Attachments == nil {
		return nil, errMissingAttachments
	}
	return s.opts.Attachments, nil
}

func (s *Service) recordTelemetry(ctx context.Context, event string, payload map[string]any) {
	s.opts.Telemetry.Record(ctx, event, payload)
}

func stringValue(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}
