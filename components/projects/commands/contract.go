package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	projects "github.com/goliatone/go-projects/components/projects"
)

type contractService interface {
	AttachContract(ctx context.Context, projectID int, upload projects.FileUpload) (projects.ContractAttachment, error)
	RemoveContract(ctx context.Context, projectID int) error
}

// AttachContractInput carries the uploaded contract document.
type AttachContractInput struct {
	ProjectID int                          `json:"project_id"`
	Upload    projects.FileUpload          `json:"upload"`
	Result    *projects.ContractAttachment `json:"-"`
}

// AttachContractCommand stores a PDF contract against a project. When the
// input carries a Result pointer the stored attachment is written back so
// transports can echo it without a second read.
type AttachContractCommand struct {
	service   contractService
	telemetry Telemetry
}

// NewAttachContractCommand creates a command instance.
func NewAttachContractCommand(service contractService, telemetry Telemetry) *AttachContractCommand {
	return &AttachContractCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[AttachContractInput] = (*AttachContractCommand)(nil)

// Execute delegates to the project service.
func (c *AttachContractCommand) Execute(ctx context.Context, msg AttachContractInput) error {
	if c.service == nil {
		return errors.New("attach contract command requires service")
	}
	att, err := c.service.AttachContract(ctx, msg.ProjectID, msg.Upload)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = att
	}
	c.telemetry.Record(ctx, "projects.contract.attach", map[string]any{
		"project_id": msg.ProjectID,
		"filename":   att.Filename,
		"size":       att.Size,
	})
	return nil
}

// RemoveContractInput identifies the project whose contract is deleted.
type RemoveContractInput struct {
	ProjectID int `json:"project_id"`
}

// RemoveContractCommand deletes the stored contract for a project.
type RemoveContractCommand struct {
	service   contractService
	telemetry Telemetry
}

// NewRemoveContractCommand creates a command instance.
func NewRemoveContractCommand(service contractService, telemetry Telemetry) *RemoveContractCommand {
	return &RemoveContractCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[RemoveContractInput] = (*RemoveContractCommand)(nil)

// Execute delegates to the project service.
func (c *RemoveContractCommand) Execute(ctx context.Context, msg RemoveContractInput) error {
	if c.service == nil {
		return errors.New("remove contract command requires service")
	}
	if err := c.service.RemoveContract(ctx, msg.ProjectID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "projects.contract.remove", map[string]any{
		"project_id": msg.ProjectID,
	})
	return nil
}
