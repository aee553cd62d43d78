package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	gocommand "github.com/goliatone/go-command"
	projects "github.com/goliatone/go-projects/components/projects"
	"github.com/goliatone/go-projects/components/projects/commands"
	"github.com/goliatone/go-projects/components/projects/queries"
)

// MaxContractUploadBytes bounds how much of a contract upload the handlers
// read into memory.
const MaxContractUploadBytes = 16 << 20

// Executor is the transport-facing surface over the shared commands and
// queries. Routers depend on this interface rather than on the service.
type Executor interface {
	Navigate(ctx context.Context, input commands.NavigateInput) error
	TriggerAction(ctx context.Context, input commands.TriggerActionInput) error
	AttachContract(ctx context.Context, input commands.AttachContractInput) error
	RemoveContract(ctx context.Context, input commands.RemoveContractInput) error
	UpdateDates(ctx context.Context, input commands.UpdateDatesInput) error
	CloseModal(ctx context.Context, input commands.CloseModalInput) error
	Dashboard(ctx context.Context, req queries.DashboardRequest) (projects.DashboardPayload, error)
	ProjectList(ctx context.Context, req queries.ProjectListRequest) ([]projects.ProjectCard, error)
	ProjectDetail(ctx context.Context, req queries.ProjectDetailRequest) (projects.ProjectDetail, error)
	ExportSummary(ctx context.Context, req queries.SummaryExportRequest) (queries.SummaryExport, error)
}

// CommandExecutor adapts concrete commands and queries into the Executor
// surface.
type CommandExecutor struct {
	NavigateCmd       gocommand.Commander[commands.NavigateInput]
	TriggerActionCmd  gocommand.Commander[commands.TriggerActionInput]
	AttachContractCmd gocommand.Commander[commands.AttachContractInput]
	RemoveContractCmd gocommand.Commander[commands.RemoveContractInput]
	UpdateDatesCmd    gocommand.Commander[commands.UpdateDatesInput]
	CloseModalCmd     gocommand.Commander[commands.CloseModalInput]
	DashboardQry      gocommand.Querier[queries.DashboardRequest, projects.DashboardPayload]
	ProjectListQry    gocommand.Querier[queries.ProjectListRequest, []projects.ProjectCard]
	ProjectDetailQry  gocommand.Querier[queries.ProjectDetailRequest, projects.ProjectDetail]
	ExportSummaryQry  gocommand.Querier[queries.SummaryExportRequest, queries.SummaryExport]
}

var _ Executor = (*CommandExecutor)(nil)

func (e *CommandExecutor) Navigate(ctx context.Context, input commands.NavigateInput) error {
	if e.NavigateCmd == nil {
		return errors.New("httpapi: navigate command not configured")
	}
	return e.NavigateCmd.Execute(ctx, input)
}

func (e *CommandExecutor) TriggerAction(ctx context.Context, input commands.TriggerActionInput) error {
	if e.TriggerActionCmd == nil {
		return errors.New("httpapi: trigger action command not configured")
	}
	return e.TriggerActionCmd.Execute(ctx, input)
}

func (e *CommandExecutor) AttachContract(ctx context.Context, input commands.AttachContractInput) error {
	if e.AttachContractCmd == nil {
		return errors.New("httpapi: attach contract command not configured")
	}
	return e.AttachContractCmd.Execute(ctx, input)
}

func (e *CommandExecutor) RemoveContract(ctx context.Context, input commands.RemoveContractInput) error {
	if e.RemoveContractCmd == nil {
		return errors.New("httpapi: remove contract command not configured")
	}
	return e.RemoveContractCmd.Execute(ctx, input)
}

func (e *CommandExecutor) UpdateDates(ctx context.Context, input commands.UpdateDatesInput) error {
	if e.UpdateDatesCmd == nil {
		return errors.New("httpapi: update dates command not configured")
	}
	return e.UpdateDatesCmd.Execute(ctx, input)
}

func (e *CommandExecutor) CloseModal(ctx context.Context, input commands.CloseModalInput) error {
	if e.CloseModalCmd == nil {
		return errors.New("httpapi: close modal command not configured")
	}
	return e.CloseModalCmd.Execute(ctx, input)
}

func (e *CommandExecutor) Dashboard(ctx context.Context, req queries.DashboardRequest) (projects.DashboardPayload, error) {
	if e.DashboardQry == nil {
		return projects.DashboardPayload{}, errors.New("httpapi: dashboard query not configured")
	}
	return e.DashboardQry.Query(ctx, req)
}

func (e *CommandExecutor) ProjectList(ctx context.Context, req queries.ProjectListRequest) ([]projects.ProjectCard, error) {
	if e.ProjectListQry == nil {
		return nil, errors.New("httpapi: project list query not configured")
	}
	return e.ProjectListQry.Query(ctx, req)
}

func (e *CommandExecutor) ProjectDetail(ctx context.Context, req queries.ProjectDetailRequest) (projects.ProjectDetail, error) {
	if e.ProjectDetailQry == nil {
		return projects.ProjectDetail{}, errors.New("httpapi: project detail query not configured")
	}
	return e.ProjectDetailQry.Query(ctx, req)
}

func (e *CommandExecutor) ExportSummary(ctx context.Context, req queries.SummaryExportRequest) (queries.SummaryExport, error) {
	if e.ExportSummaryQry == nil {
		return queries.SummaryExport{}, errors.New("httpapi: export summary query not configured")
	}
	return e.ExportSummaryQry.Query(ctx, req)
}

// Handlers exposes plain net/http endpoints backed by the Executor.
type Handlers struct {
	API Executor
}

func (h *Handlers) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	payload, err := h.API.Dashboard(r.Context(), queries.DashboardRequest{Locale: localeOf(r)})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, payload)
}

func (h *Handlers) HandleProjects(w http.ResponseWriter, r *http.Request) {
	cards, err := h.API.ProjectList(r.Context(), queries.ProjectListRequest{Locale: localeOf(r)})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, cards)
}

func (h *Handlers) HandleProjectDetail(w http.ResponseWriter, r *http.Request, projectID int) {
	detail, err := h.API.ProjectDetail(r.Context(), queries.ProjectDetailRequest{
		ProjectID: projectID,
		Locale:    localeOf(r),
	})
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

func (h *Handlers) HandleNavigate(w http.ResponseWriter, r *http.Request) {
	var payload commands.NavigateInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.API.Navigate(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleTriggerAction(w http.ResponseWriter, r *http.Request) {
	var payload commands.TriggerActionInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.API.TriggerAction(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// HandleAttachContract accepts a multipart form with a "contract" file field
// and stores it against the project.
func (h *Handlers) HandleAttachContract(w http.ResponseWriter, r *http.Request, projectID int) {
	upload, err := readUpload(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var result projects.ContractAttachment
	input := commands.AttachContractInput{ProjectID: projectID, Upload: upload, Result: &result}
	if err := h.API.AttachContract(r.Context(), input); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

func (h *Handlers) HandleRemoveContract(w http.ResponseWriter, r *http.Request, projectID int) {
	if err := h.API.RemoveContract(r.Context(), commands.RemoveContractInput{ProjectID: projectID}); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) HandleUpdateDates(w http.ResponseWriter, r *http.Request, projectID int) {
	var draft projects.DateDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	input := commands.UpdateDatesInput{ProjectID: projectID, Draft: draft}
	if err := h.API.UpdateDates(r.Context(), input); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}

// HandleExportSummary streams the rendered PDF with a download disposition.
func (h *Handlers) HandleExportSummary(w http.ResponseWriter, r *http.Request, projectID int) {
	export, err := h.API.ExportSummary(r.Context(), queries.SummaryExportRequest{
		ProjectID: projectID,
		Locale:    localeOf(r),
	})
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Data)
}

func readUpload(r *http.Request) (projects.FileUpload, error) {
	if err := r.ParseMultipartForm(MaxContractUploadBytes); err != nil {
		return projects.FileUpload{}, err
	}
	file, header, err := r.FormFile("contract")
	if err != nil {
		return projects.FileUpload{}, err
	}
	defer file.Close()
	content, err := io.ReadAll(io.LimitReader(file, MaxContractUploadBytes))
	if err != nil {
		return projects.FileUpload{}, err
	}
	mediaType := header.Header.Get("Content-Type")
	return projects.FileUpload{
		Name:      header.Filename,
		MediaType: mediaType,
		Size:      int64(len(content)),
		Content:   content,
	}, nil
}

func localeOf(r *http.Request) string {
	if locale := r.URL.Query().Get("locale"); locale != "" {
		return locale
	}
	return projects.DefaultLocale
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, projects.ErrProjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, projects.ErrNotPDF), errors.Is(err, projects.ErrEmptyUpload):
		return http.StatusUnprocessableEntity
	case errors.Is(err, projects.ErrNoContract):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
