package projects

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type stubExporter struct {
	doc  SummaryDocument
	data []byte
	err  error
}

func (e *stubExporter) ExportSummary(_ context.Context, doc SummaryDocument) ([]byte, error) {
	e.doc = doc
	return e.data, e.err
}

func TestDashboardResolvesTilesAndCharts(t *testing.T) {
	svc := NewService(Options{})
	defer svc.Close()

	payload, err := svc.Dashboard(context.Background(), "es")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if len(payload.KPIs) != 4 {
		t.Fatalf("expected 4 KPI tiles, got %d", len(payload.KPIs))
	}
	if len(payload.Charts) != 2 {
		t.Fatalf("expected 2 chart cards, got %d", len(payload.Charts))
	}

	byCode := map[string]ChartCard{}
	for _, card := range payload.Charts {
		byCode[card.Code] = card
	}
	bar, ok := byCode["dashboard.card.monthly_sales"]
	if !ok {
		t.Fatalf("missing monthly sales card: %+v", payload.Charts)
	}
	if bar.Title != "Ventas Mensuales" || bar.ChartType != "bar" {
		t.Fatalf("unexpected bar card %+v", bar)
	}
	if bar.ChartHTML == "" {
		t.Fatalf("expected rendered chart HTML")
	}
	if pie := byCode["dashboard.card.traffic_sources"]; pie.ChartType != "pie" {
		t.Fatalf("unexpected pie card %+v", pie)
	}
}

func TestDashboardSkipsFailingProviders(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterProvider("dashboard.card.monthly_sales", CardProviderFunc(
		func(context.Context, CardContext) (CardData, error) {
			return nil, errors.New("provider down")
		},
	)); err != nil {
		t.Fatalf("register provider: %v", err)
	}

	svc := NewService(Options{Registry: reg})
	defer svc.Close()

	payload, err := svc.Dashboard(context.Background(), "es")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if len(payload.Charts) != 1 {
		t.Fatalf("failing card must be skipped, got %d cards", len(payload.Charts))
	}
	if payload.Charts[0].Code != "dashboard.card.traffic_sources" {
		t.Fatalf("unexpected surviving card %+v", payload.Charts[0])
	}
}

func TestDashboardRejectsInvalidCardConfig(t *testing.T) {
	reg := NewRegistry()
	def, ok := reg.Definition("dashboard.card.monthly_sales")
	if !ok {
		t.Fatalf("built-in card missing")
	}
	def.Schema = map[string]any{
		"type": "object",
		"properties": map[string]any{
			"months": map[string]any{"type": "integer", "minimum": 1},
		},
		"required": []any{"months"},
	}
	if err := reg.RegisterDefinition(def); err != nil {
		t.Fatalf("register definition: %v", err)
	}
	if err := reg.SetCardConfig(def.Code, map[string]any{"months": 0}); err != nil {
		t.Fatalf("set config: %v", err)
	}

	svc := NewService(Options{Registry: reg})
	defer svc.Close()

	payload, err := svc.Dashboard(context.Background(), "es")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if len(payload.Charts) != 1 {
		t.Fatalf("card with invalid config must be skipped, got %d cards", len(payload.Charts))
	}
	if payload.Charts[0].Code != "dashboard.card.traffic_sources" {
		t.Fatalf("unexpected surviving card %+v", payload.Charts[0])
	}
}

func TestDashboardPassesCardConfigToProvider(t *testing.T) {
	reg := NewRegistry()
	if err := reg.SetCardConfig("dashboard.card.monthly_sales", map[string]any{"months": 6}); err != nil {
		t.Fatalf("set config: %v", err)
	}
	var seen map[string]any
	if err := reg.RegisterProvider("dashboard.card.monthly_sales", CardProviderFunc(
		func(_ context.Context, meta CardContext) (CardData, error) {
			seen = meta.Config
			return CardData{"chart_html": "<div>ok</div>"}, nil
		},
	)); err != nil {
		t.Fatalf("register provider: %v", err)
	}

	svc := NewService(Options{Registry: reg})
	defer svc.Close()

	if _, err := svc.Dashboard(context.Background(), "es"); err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if seen == nil || seen["months"] != 6 {
		t.Fatalf("provider did not receive the stored config, got %v", seen)
	}
}

func TestDashboardUsesCustomSeriesRepository(t *testing.T) {
	svc := NewService(Options{
		Series: &StaticSeriesRepository{
			Sales:   []ChartPoint{{Label: "Semana 1", Value: 999}},
			Traffic: []ChartPoint{{Label: "Boletín", Value: 77}},
		},
	})
	defer svc.Close()

	payload, err := svc.Dashboard(context.Background(), "es")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if len(payload.Charts) != 2 {
		t.Fatalf("expected 2 chart cards, got %d", len(payload.Charts))
	}
	for _, card := range payload.Charts {
		if card.Code == "dashboard.card.monthly_sales" && !strings.Contains(card.ChartHTML, "Semana 1") {
			t.Fatalf("custom sales series missing from chart HTML")
		}
		if card.Code == "dashboard.card.traffic_sources" && !strings.Contains(card.ChartHTML, "Boletín") {
			t.Fatalf("custom traffic series missing from chart HTML")
		}
	}
}

func TestDetailComposesViewModel(t *testing.T) {
	svc := NewService(Options{Attachments: newMemoryAttachmentStore()})
	defer svc.Close()

	detail, err := svc.Detail(context.Background(), 1, "es")
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.Card.Name != "Lanzamiento App Móvil 'Nexus'" {
		t.Fatalf("unexpected card %+v", detail.Card)
	}
	if !detail.Alert {
		t.Fatalf("project 1 spends 86.67%% of budget and must alert")
	}
	if detail.Breakdown.Paid != 90000 || detail.Breakdown.SpentUnpaid != 40000 || detail.Breakdown.Remaining != 20000 {
		t.Fatalf("unexpected breakdown %+v", detail.Breakdown)
	}
	if detail.PaymentChartHTML == "" {
		t.Fatalf("expected payment chart HTML")
	}
	if len(detail.Timeline) != 4 {
		t.Fatalf("expected 4 timeline nodes, got %d", len(detail.Timeline))
	}
	if !detail.Timeline[0].Completed || detail.Timeline[3].Completed {
		t.Fatalf("unexpected timeline completion %+v", detail.Timeline)
	}
	if !detail.Timeline[3].Last || detail.Timeline[0].Last {
		t.Fatalf("only the final node is marked last")
	}
	if !detail.CanReview {
		t.Fatalf("project 1 carries built-in contract text")
	}
	if detail.ApproveState != ActionIdle || detail.FundsState != ActionIdle {
		t.Fatalf("actions start idle, got %q/%q", detail.ApproveState, detail.FundsState)
	}
	if detail.Dates.Start != "2024-01-15" || detail.Dates.Rescheduled != "" {
		t.Fatalf("dates seed from the record, got %+v", detail.Dates)
	}
}

func TestDetailUnknownProject(t *testing.T) {
	svc := NewService(Options{})
	defer svc.Close()

	_, err := svc.Detail(context.Background(), 42, "es")
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestUpdateDatesIsSessionLocal(t *testing.T) {
	svc := NewService(Options{Attachments: newMemoryAttachmentStore()})
	defer svc.Close()
	ctx := context.Background()

	draft := DateDraft{Start: "2024-02-01", Rescheduled: "2024-03-01"}
	if err := svc.UpdateDates(ctx, 1, draft); err != nil {
		t.Fatalf("update dates: %v", err)
	}

	detail, err := svc.Detail(ctx, 1, "es")
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.Dates != draft {
		t.Fatalf("detail must reflect the draft, got %+v", detail.Dates)
	}

	// The catalog record itself stays untouched.
	project, _, _ := svc.Project(ctx, 1)
	if project.StartDate != "2024-01-15" {
		t.Fatalf("draft leaked into the catalog record")
	}
}

func TestUpdateDatesValidation(t *testing.T) {
	svc := NewService(Options{})
	defer svc.Close()
	ctx := context.Background()

	if err := svc.UpdateDates(ctx, 1, DateDraft{Start: "mañana"}); err == nil {
		t.Fatalf("expected invalid draft rejection")
	}
	err := svc.UpdateDates(ctx, 42, DateDraft{Start: "2024-02-01"})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestTriggerActionValidatesInput(t *testing.T) {
	svc := NewService(Options{
		Actions: NewActionRunner(WithActionDelays(time.Millisecond, time.Millisecond)),
	})
	defer svc.Close()
	ctx := context.Background()

	started, err := svc.TriggerAction(ctx, 1, ActionApproveProgress)
	if err != nil || !started {
		t.Fatalf("expected action to start, started=%v err=%v", started, err)
	}

	if _, err := svc.TriggerAction(ctx, 1, ActionKind("demolish")); err == nil {
		t.Fatalf("expected unknown action rejection")
	}
	_, err = svc.TriggerAction(ctx, 42, ActionApproveProgress)
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestExportSummary(t *testing.T) {
	exporter := &stubExporter{data: []byte("%PDF-stub")}
	svc := NewService(Options{
		Exporter: exporter,
		Now:      func() time.Time { return time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC) },
	})
	defer svc.Close()

	data, filename, err := svc.ExportSummary(context.Background(), 1, "es")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if string(data) != "%PDF-stub" {
		t.Fatalf("unexpected bytes %q", data)
	}
	if filename != "Lanzamiento App Móvil 'Nexus'-resumen.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}

	doc := exporter.doc
	if doc.Title != "Lanzamiento App Móvil 'Nexus'" {
		t.Fatalf("unexpected document title %q", doc.Title)
	}
	if doc.Subtitle != "Resumen del Proyecto - 01/07/2024" {
		t.Fatalf("unexpected subtitle %q", doc.Subtitle)
	}
	if len(doc.Tables) != 4 {
		t.Fatalf("expected fields, roster, timeline, and payments tables, got %d", len(doc.Tables))
	}
	fields := doc.Tables[0]
	if fields.Theme != TableThemeGrid || len(fields.Body) != 5 {
		t.Fatalf("unexpected fields table %+v", fields)
	}
	if fields.Body[2][1] != "N/A" {
		t.Fatalf("missing rescheduled date renders N/A, got %q", fields.Body[2][1])
	}
	if doc.Tables[1].Theme != TableThemeStriped {
		t.Fatalf("roster table uses the striped theme")
	}
}

func TestExportSummaryErrors(t *testing.T) {
	svc := NewService(Options{})
	defer svc.Close()
	ctx := context.Background()

	if _, _, err := svc.ExportSummary(ctx, 1, "es"); err == nil {
		t.Fatalf("expected missing exporter error")
	}

	failing := NewService(Options{Exporter: &stubExporter{err: errors.New("render failed")}})
	defer failing.Close()
	_, _, err := failing.ExportSummary(ctx, 1, "es")
	if err == nil || !strings.Contains(err.Error(), "render failed") {
		t.Fatalf("expected wrapped exporter error, got %v", err)
	}
	_, _, err = failing.ExportSummary(ctx, 42, "es")
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
