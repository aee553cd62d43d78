package export

import (
	"bytes"
	"context"
	"testing"

	projects "github.com/goliatone/go-projects/components/projects"
)

func summaryFixture() projects.SummaryDocument {
	return projects.SummaryDocument{
		Title:    "Torre Corporativa Delta",
		Subtitle: "Resumen del Proyecto - 30/08/2026",
		Tables: []projects.SummaryTable{
			{
				Head: []string{"Campo", "Valor"},
				Body: [][]string{
					{"Status", "En Pausa"},
					{"Presupuesto Total", "$150,000"},
				},
				Theme: projects.TableThemeGrid,
			},
			{
				Head:  []string{"Miembros del Equipo"},
				Body:  [][]string{{"Sofía Martínez"}, {"Andrés García"}},
				Theme: projects.TableThemeStriped,
			},
		},
	}
}

func TestExportSummaryProducesPDF(t *testing.T) {
	exporter := NewPDFExporter()
	data, err := exporter.ExportSummary(context.Background(), summaryFixture())
	if err != nil {
		t.Fatalf("ExportSummary returned error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected PDF magic, got %q", data[:min(len(data), 8)])
	}
	if len(data) < 500 {
		t.Fatalf("suspiciously small document: %d bytes", len(data))
	}
}

func TestExportSummaryHonorsCancelledContext(t *testing.T) {
	exporter := NewPDFExporter()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := exporter.ExportSummary(ctx, summaryFixture()); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestExportSummaryRejectsHeaderlessTable(t *testing.T) {
	exporter := NewPDFExporter()
	doc := projects.SummaryDocument{
		Title:  "Proyecto",
		Tables: []projects.SummaryTable{{Body: [][]string{{"x"}}}},
	}
	if _, err := exporter.ExportSummary(context.Background(), doc); err == nil {
		t.Fatalf("expected error for table without header")
	}
}

func TestExportSummaryPadsShortRows(t *testing.T) {
	exporter := NewPDFExporter()
	doc := projects.SummaryDocument{
		Title: "Proyecto",
		Tables: []projects.SummaryTable{{
			Head:  []string{"Fecha", "Hito", "Estado"},
			Body:  [][]string{{"2024-01-15"}},
			Theme: projects.TableThemeGrid,
		}},
	}
	data, err := exporter.ExportSummary(context.Background(), doc)
	if err != nil {
		t.Fatalf("ExportSummary returned error: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected document bytes")
	}
}
