package projects

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PDFMediaType is the only media type the contract workflow accepts.
const PDFMediaType = "application/pdf"

var (
	// ErrNotPDF rejects non-PDF uploads; no partial state is committed.
	ErrNotPDF = errors.New("projects: contract uploads must be PDF files")
	// ErrEmptyUpload rejects uploads without content.
	ErrEmptyUpload = errors.New("projects: contract upload is empty")
	// ErrNoContract marks preview requests when neither an uploaded
	// attachment nor built-in contract text exists.
	ErrNoContract = errors.New("projects: no contract available")
)

// ContractPreview is what the review modal renders: the uploaded attachment
// when present, else the record's built-in text.
type ContractPreview struct {
	Title      string              `json:"title"`
	Attachment *ContractAttachment `json:"attachment,omitempty"`
	Text       string              `json:"text,omitempty"`
}

// Uploaded reports whether the preview renders the stored attachment.
func (p ContractPreview) Uploaded() bool {
	return p.Attachment != nil
}

// EncodeDataURL produces the inline-encoded representation stored and
// embedded as a previewable document source.
func EncodeDataURL(mediaType string, content []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(content))
}

// AttachContract validates the upload, encodes it, and persists it to the
// project's attachment slot, overwriting any prior attachment. A failed store
// write surfaces the error and leaves no in-memory reflection behind: the
// store is the single source of truth for attachments.
func (s *Service) AttachContract(ctx context.Context, projectID int, upload FileUpload) (ContractAttachment, error) {
	store, err := s.attachmentStore()
	if err != nil {
		return ContractAttachment{}, err
	}
	if !strings.EqualFold(strings.TrimSpace(upload.MediaType), PDFMediaType) {
		return ContractAttachment{}, ErrNotPDF
	}
	if len(upload.Content) == 0 {
		return ContractAttachment{}, ErrEmptyUpload
	}
	att := ContractAttachment{
		ID:        uuid.NewString(),
		Filename:  upload.Name,
		MediaType: PDFMediaType,
		Size:      int64(len(upload.Content)),
		DataURL:   EncodeDataURL(PDFMediaType, upload.Content),
	}
	if upload.Size > 0 {
		att.Size = upload.Size
	}
	if err := store.SaveAttachment(ctx, projectID, att); err != nil {
		return ContractAttachment{}, fmt.Errorf("projects: save contract for project %d: %w", projectID, err)
	}
	s.recordTelemetry(ctx, "projects.contract.attach", map[string]any{
		"project_id": projectID,
		"filename":   att.Filename,
		"size":       att.Size,
	})
	_ = s.opts.EventHook.EventEmitted(ctx, Event{
		Kind:      EventContractChanged,
		ProjectID: projectID,
		Payload:   map[string]any{"filename": att.Filename},
	})
	return att, nil
}

// RemoveContract clears the project's attachment slot.
func (s *Service) RemoveContract(ctx context.Context, projectID int) error {
	store, err := s.attachmentStore()
	if err != nil {
		return err
	}
	if err := store.RemoveAttachment(ctx, projectID); err != nil {
		return fmt.Errorf("projects: remove contract for project %d: %w", projectID, err)
	}
	s.recordTelemetry(ctx, "projects.contract.remove", map[string]any{"project_id": projectID})
	_ = s.opts.EventHook.EventEmitted(ctx, Event{Kind: EventContractChanged, ProjectID: projectID})
	return nil
}

// Contract returns the stored attachment for the project, nil when the slot
// is empty. Store read failures degrade to "no attachment" and are recorded,
// never surfaced to the user.
func (s *Service) Contract(ctx context.Context, projectID int) *ContractAttachment {
	store, err := s.attachmentStore()
	if err != nil {
		return nil
	}
	att, err := store.Attachment(ctx, projectID)
	if err != nil {
		s.recordTelemetry(ctx, "projects.contract.read_error", map[string]any{
			"project_id": projectID,
			"error":      err.Error(),
		})
		return nil
	}
	return att
}

// CanReviewContract reports whether the review action is enabled: either an
// uploaded attachment or built-in contract text must exist.
func (s *Service) CanReviewContract(ctx context.Context, project Project) bool {
	if project.Contract != "" {
		return true
	}
	return s.Contract(ctx, project.ID) != nil
}

// PreviewContract resolves the review-modal content, preferring the uploaded
// attachment over the record's built-in text.
func (s *Service) PreviewContract(ctx context.Context, project Project) (ContractPreview, error) {
	if att := s.Contract(ctx, project.ID); att != nil {
		return ContractPreview{
			Title:      fmt.Sprintf("Contrato - %s", att.Filename),
			Attachment: att,
		}, nil
	}
	if project.Contract != "" {
		return ContractPreview{
			Title: "Detalles del Contrato",
			Text:  project.Contract,
		}, nil
	}
	return ContractPreview{}, ErrNoContract
}
