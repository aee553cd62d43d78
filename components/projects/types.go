package projects

import (
	"context"
)

// ProjectRepository resolves the project catalog consumed by views and
// transports. Implementations must return projects in a stable order.
type ProjectRepository interface {
	Projects(ctx context.Context) ([]Project, error)
	Project(ctx context.Context, id int) (Project, bool, error)
}

// AttachmentStore persists the single contract attachment slot per project.
type AttachmentStore interface {
	Attachment(ctx context.Context, projectID int) (*ContractAttachment, error)
	SaveAttachment(ctx context.Context, projectID int, att ContractAttachment) error
	RemoveAttachment(ctx context.Context, projectID int) error
}

// DocumentExporter composes the downloadable project summary document.
// Table layout/pagination is the exporter's responsibility; the core only
// supplies content and ordering.
type DocumentExporter interface {
	ExportSummary(ctx context.Context, doc SummaryDocument) ([]byte, error)
}

// EventHook notifies transports (REST/WebSocket) about shell and action
// transitions.
type EventHook interface {
	EventEmitted(ctx context.Context, event Event) error
}

// KPIFeed returns the dashboard's KPI tiles.
type KPIFeed interface {
	KPIs(ctx context.Context) ([]KPIEntry, error)
}

// Project is a catalog entry with nested team, timeline, and payment lists.
// Records are seeded at startup and never mutated in place; the contract
// attachment slot and date drafts live outside the record.
type Project struct {
	ID              int             `json:"id" yaml:"id"`
	Name            string          `json:"name" yaml:"name"`
	Description     string          `json:"description" yaml:"description"`
	Budget          float64         `json:"budget" yaml:"budget"`
	Spent           float64         `json:"spent" yaml:"spent"`
	Status          ProjectStatus   `json:"status" yaml:"status"`
	StartDate       string          `json:"start_date" yaml:"start_date"`
	RescheduledDate string          `json:"rescheduled_date,omitempty" yaml:"rescheduled_date,omitempty"`
	Team            []TeamMember    `json:"team" yaml:"team"`
	Timeline        []TimelineEvent `json:"timeline" yaml:"timeline"`
	Payments        []Payment       `json:"payments" yaml:"payments"`
	Contract        string          `json:"contract,omitempty" yaml:"contract,omitempty"`
}

// TeamMember identifies one person on the project roster.
type TeamMember struct {
	Name      string `json:"name" yaml:"name"`
	AvatarURL string `json:"avatar_url" yaml:"avatar_url"`
}

// TimelineEvent is one milestone in the project timeline. Node styling is
// driven solely by the event's own status; neighbors are independent.
type TimelineEvent struct {
	Date   string         `json:"date" yaml:"date"`
	Label  string         `json:"label" yaml:"label"`
	Status TimelineStatus `json:"status" yaml:"status"`
}

// Payment records one scheduled or settled payment against the budget.
type Payment struct {
	ID          int           `json:"id" yaml:"id"`
	Description string        `json:"description" yaml:"description"`
	Amount      float64       `json:"amount" yaml:"amount"`
	Date        string        `json:"date" yaml:"date"`
	Status      PaymentStatus `json:"status" yaml:"status"`
}

// ContractAttachment is the persisted upload shadowing the project's built-in
// contract text. At most one exists per project.
type ContractAttachment struct {
	ID        string `json:"id"`
	Filename  string `json:"filename"`
	MediaType string `json:"media_type"`
	Size      int64  `json:"size"`
	DataURL   string `json:"data_url"`
}

// FileUpload is the raw file handed to the contract workflow by a transport.
type FileUpload struct {
	Name      string
	MediaType string
	Size      int64
	Content   []byte
}

// KPIEntry is a read-only dashboard tile.
type KPIEntry struct {
	Title     string       `json:"title" yaml:"title"`
	Value     string       `json:"value" yaml:"value"`
	Icon      string       `json:"icon" yaml:"icon"`
	Change    string       `json:"change" yaml:"change"`
	Direction KPIDirection `json:"direction" yaml:"direction"`
}

// KPIDirection marks the period-over-period trend of a KPI entry.
type KPIDirection string

// KPI trend directions.
const (
	KPIIncrease KPIDirection = "increase"
	KPIDecrease KPIDirection = "decrease"
)

// ChartPoint is one labeled value in an ordered chart series.
type ChartPoint struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// ModalContent is the transient payload of the single shell-owned modal slot.
type ModalContent struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// DateDraft carries the session-local date edits for a project detail view.
// Drafts are seeded from the project record and never written back to it.
type DateDraft struct {
	Start       string `json:"start"`
	Rescheduled string `json:"rescheduled"`
}

// SummaryDocument is the content contract for the document exporter: a title,
// a dated subtitle, and ordered themed tables.
type SummaryDocument struct {
	Title    string
	Subtitle string
	Tables   []SummaryTable
}

// SummaryTable is one table appended below the previous one.
type SummaryTable struct {
	Head  []string
	Body  [][]string
	Theme TableTheme
}

// TableTheme selects the exporter's visual treatment for a table.
type TableTheme string

// Supported table themes.
const (
	TableThemeGrid    TableTheme = "grid"
	TableThemeStriped TableTheme = "striped"
)

// Event describes shell/action/contract transitions that transports might
// care about.
type Event struct {
	Kind      string         `json:"kind"`
	ProjectID int            `json:"project_id,omitempty"`
	Action    ActionKind     `json:"action,omitempty"`
	State     ActionState    `json:"state,omitempty"`
	View      View           `json:"view,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// Event kinds emitted by the shell, action runner, and contract workflow.
const (
	EventNavigate        = "navigate"
	EventProjectSelected = "project.selected"
	EventModalOpened     = "modal.opened"
	EventModalClosed     = "modal.closed"
	EventActionState     = "action.state"
	EventContractChanged = "contract.changed"
)
