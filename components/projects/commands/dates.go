package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	projects "github.com/goliatone/go-projects/components/projects"
)

type datesService interface {
	UpdateDates(ctx context.Context, projectID int, draft projects.DateDraft) error
}

// UpdateDatesInput carries edited start and end dates for a project.
type UpdateDatesInput struct {
	ProjectID int                `json:"project_id"`
	Draft     projects.DateDraft `json:"draft"`
}

// UpdateDatesCommand records a session-scoped date edit for a project.
type UpdateDatesCommand struct {
	service   datesService
	telemetry Telemetry
}

// NewUpdateDatesCommand creates a command instance.
func NewUpdateDatesCommand(service datesService, telemetry Telemetry) *UpdateDatesCommand {
	return &UpdateDatesCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[UpdateDatesInput] = (*UpdateDatesCommand)(nil)

// Execute delegates to the project service.
func (c *UpdateDatesCommand) Execute(ctx context.Context, msg UpdateDatesInput) error {
	if c.service == nil {
		return errors.New("update dates command requires service")
	}
	if err := c.service.UpdateDates(ctx, msg.ProjectID, msg.Draft); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "projects.dates.update", map[string]any{
		"project_id":  msg.ProjectID,
		"start":       msg.Draft.Start,
		"rescheduled": msg.Draft.Rescheduled,
	})
	return nil
}
