package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	projects "github.com/goliatone/go-projects/components/projects"
)

type actionService interface {
	TriggerAction(ctx context.Context, projectID int, kind projects.ActionKind) (bool, error)
}

// TriggerActionInput identifies the project action a transport wants to start.
type TriggerActionInput struct {
	ProjectID int                 `json:"project_id"`
	Kind      projects.ActionKind `json:"kind"`
}

// TriggerActionCommand starts an approval or funds-request cycle. Triggering
// an action that is already running is not an error; the command reports the
// attempt through telemetry either way.
type TriggerActionCommand struct {
	service   actionService
	telemetry Telemetry
}

// NewTriggerActionCommand creates a command instance.
func NewTriggerActionCommand(service actionService, telemetry Telemetry) *TriggerActionCommand {
	return &TriggerActionCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[TriggerActionInput] = (*TriggerActionCommand)(nil)

// Execute delegates to the project service.
func (c *TriggerActionCommand) Execute(ctx context.Context, msg TriggerActionInput) error {
	if c.service == nil {
		return errors.New("trigger action command requires service")
	}
	started, err := c.service.TriggerAction(ctx, msg.ProjectID, msg.Kind)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "projects.action.trigger", map[string]any{
		"project_id": msg.ProjectID,
		"kind":       string(msg.Kind),
		"started":    started,
	})
	return nil
}
