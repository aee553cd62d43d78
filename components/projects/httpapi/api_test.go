package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	projects "github.com/goliatone/go-projects/components/projects"
	"github.com/goliatone/go-projects/components/projects/commands"
	"github.com/goliatone/go-projects/components/projects/queries"
)

func TestHandleDashboard(t *testing.T) {
	api := &stubExecutor{
		dashboard: projects.DashboardPayload{KPIs: []projects.KPICard{{Title: "Ingresos Totales"}}},
	}
	h := &Handlers{API: api}
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard?locale=es", nil)
	rec := httptest.NewRecorder()
	h.HandleDashboard(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload projects.DashboardPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.KPIs) != 1 {
		t.Fatalf("expected 1 KPI, got %d", len(payload.KPIs))
	}
	if api.dashboardLocale != "es" {
		t.Fatalf("expected locale es, got %q", api.dashboardLocale)
	}
}

func TestHandleProjectDetailNotFound(t *testing.T) {
	api := &stubExecutor{detailErr: projects.ErrProjectNotFound}
	h := &Handlers{API: api}
	req := httptest.NewRequest(http.MethodGet, "/api/projects/99", nil)
	rec := httptest.NewRecorder()
	h.HandleProjectDetail(rec, req, 99)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandleTriggerAction(t *testing.T) {
	api := &stubExecutor{}
	h := &Handlers{API: api}
	buf, _ := json.Marshal(commands.TriggerActionInput{ProjectID: 1, Kind: projects.ActionRequestFunds})
	req := httptest.NewRequest(http.MethodPost, "/api/actions", bytes.NewReader(buf))
	rec := httptest.NewRecorder()
	h.HandleTriggerAction(rec, req)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if api.trigger.Kind != projects.ActionRequestFunds {
		t.Fatalf("expected request funds kind, got %q", api.trigger.Kind)
	}
}

func TestHandleAttachContract(t *testing.T) {
	api := &stubExecutor{}
	h := &Handlers{API: api}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("contract", "contrato.pdf")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("%PDF-1.4")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/projects/1/contract", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.HandleAttachContract(rec, req, 1)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if api.attach.Upload.Name != "contrato.pdf" {
		t.Fatalf("expected upload name propagation, got %q", api.attach.Upload.Name)
	}
	if api.attach.Upload.Size != int64(len("%PDF-1.4")) {
		t.Fatalf("expected size from content, got %d", api.attach.Upload.Size)
	}
}

func TestHandleAttachContractRejectsNonPDF(t *testing.T) {
	api := &stubExecutor{attachErr: projects.ErrNotPDF}
	h := &Handlers{API: api}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, _ := mw.CreateFormFile("contract", "foto.png")
	_, _ = part.Write([]byte("PNG"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/projects/1/contract", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.HandleAttachContract(rec, req, 1)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestHandleRemoveContract(t *testing.T) {
	api := &stubExecutor{}
	h := &Handlers{API: api}
	req := httptest.NewRequest(http.MethodDelete, "/api/projects/1/contract", nil)
	rec := httptest.NewRecorder()
	h.HandleRemoveContract(rec, req, 1)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if api.remove.ProjectID != 1 {
		t.Fatalf("expected project id propagation")
	}
}

func TestHandleUpdateDates(t *testing.T) {
	api := &stubExecutor{}
	h := &Handlers{API: api}
	body := strings.NewReader(`{"start":"2024-02-01","rescheduled":"2024-09-01"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/projects/1/dates", body)
	rec := httptest.NewRecorder()
	h.HandleUpdateDates(rec, req, 1)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if api.dates.Draft.Start != "2024-02-01" {
		t.Fatalf("expected draft propagation, got %q", api.dates.Draft.Start)
	}
}

func TestHandleExportSummary(t *testing.T) {
	api := &stubExecutor{export: queries.SummaryExport{
		Data:     []byte("%PDF-1.4"),
		Filename: "torre-delta-resumen.pdf",
	}}
	h := &Handlers{API: api}
	req := httptest.NewRequest(http.MethodGet, "/api/projects/2/summary.pdf", nil)
	rec := httptest.NewRecorder()
	h.HandleExportSummary(rec, req, 2)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "torre-delta-resumen.pdf") {
		t.Fatalf("unexpected disposition %q", cd)
	}
}

type stubExecutor struct {
	dashboard       projects.DashboardPayload
	dashboardLocale string
	detailErr       error
	trigger         commands.TriggerActionInput
	attach          commands.AttachContractInput
	attachErr       error
	remove          commands.RemoveContractInput
	dates           commands.UpdateDatesInput
	export          queries.SummaryExport
}

func (s *stubExecutor) Navigate(context.Context, commands.NavigateInput) error { return nil }

func (s *stubExecutor) TriggerAction(_ context.Context, input commands.TriggerActionInput) error {
	s.trigger = input
	return nil
}

func (s *stubExecutor) AttachContract(_ context.Context, input commands.AttachContractInput) error {
	s.attach = input
	if s.attachErr != nil {
		return s.attachErr
	}
	if input.Result != nil {
		*input.Result = projects.ContractAttachment{ID: "att-1", Filename: input.Upload.Name}
	}
	return nil
}

func (s *stubExecutor) RemoveContract(_ context.Context, input commands.RemoveContractInput) error {
	s.remove = input
	return nil
}

func (s *stubExecutor) UpdateDates(_ context.Context, input commands.UpdateDatesInput) error {
	s.dates = input
	return nil
}

func (s *stubExecutor) CloseModal(context.Context, commands.CloseModalInput) error { return nil }

func (s *stubExecutor) Dashboard(_ context.Context, req queries.DashboardRequest) (projects.DashboardPayload, error) {
	s.dashboardLocale = req.Locale
	return s.dashboard, nil
}

func (s *stubExecutor) ProjectList(context.Context, queries.ProjectListRequest) ([]projects.ProjectCard, error) {
	return nil, nil
}

func (s *stubExecutor) ProjectDetail(_ context.Context, req queries.ProjectDetailRequest) (projects.ProjectDetail, error) {
	if s.detailErr != nil {
		return projects.ProjectDetail{}, s.detailErr
	}
	return projects.ProjectDetail{}, nil
}

func (s *stubExecutor) ExportSummary(context.Context, queries.SummaryExportRequest) (queries.SummaryExport, error) {
	return s.export, nil
}
