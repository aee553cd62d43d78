package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	projects "github.com/goliatone/go-projects/components/projects"
)

type shellService interface {
	Shell() *projects.Shell
}

// NavigateInput switches the active view. Selecting a project implies the
// projects view; a zero ProjectID clears any selection.
type NavigateInput struct {
	View      projects.View `json:"view"`
	ProjectID int           `json:"project_id,omitempty"`
}

// NavigateCommand drives the shell from transports.
type NavigateCommand struct {
	service   shellService
	telemetry Telemetry
}

// NewNavigateCommand creates a command instance.
func NewNavigateCommand(service shellService, telemetry Telemetry) *NavigateCommand {
	return &NavigateCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[NavigateInput] = (*NavigateCommand)(nil)

// Execute applies the navigation to the shell.
func (c *NavigateCommand) Execute(ctx context.Context, msg NavigateInput) error {
	if c.service == nil {
		return errors.New("navigate command requires service")
	}
	shell := c.service.Shell()
	if msg.ProjectID > 0 {
		shell.Navigate(ctx, projects.ViewProjects)
		shell.SelectProject(ctx, msg.ProjectID)
	} else {
		shell.Navigate(ctx, msg.View)
	}
	c.telemetry.Record(ctx, "projects.shell.navigate", map[string]any{
		"view":       string(shell.ActiveView()),
		"project_id": shell.SelectedProjectID(),
	})
	return nil
}

// CloseModalInput is the empty message for dismissing the shell modal.
type CloseModalInput struct{}

// CloseModalCommand dismisses whatever modal the shell is showing.
type CloseModalCommand struct {
	service shellService
}

// NewCloseModalCommand creates a command instance.
func NewCloseModalCommand(service shellService) *CloseModalCommand {
	return &CloseModalCommand{service: service}
}

var _ gocommand.Commander[CloseModalInput] = (*CloseModalCommand)(nil)

// Execute closes the modal slot.
func (c *CloseModalCommand) Execute(ctx context.Context, _ CloseModalInput) error {
	if c.service == nil {
		return errors.New("close modal command requires service")
	}
	c.service.Shell().CloseModal(ctx)
	return nil
}
