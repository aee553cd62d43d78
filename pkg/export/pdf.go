// Package export renders summary documents to PDF.
package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	projects "github.com/goliatone/go-projects/components/projects"
)

// Layout constants, millimeters on an A4 portrait page.
const (
	pageMargin   = 14.0
	titleY       = 22.0
	subtitleY    = 30.0
	firstTableY  = 40.0
	tableGap     = 10.0
	headerHeight = 8.0
	rowHeight    = 7.0
)

// PDFExporter implements the document exporter port with a pure-Go PDF
// backend. It needs no external binaries or font files.
type PDFExporter struct {
	fontFamily string
}

// Option customizes the exporter.
type Option func(*PDFExporter)

// WithFontFamily overrides the built-in font family (Helvetica by default).
func WithFontFamily(family string) Option {
	return func(e *PDFExporter) {
		if family != "" {
			e.fontFamily = family
		}
	}
}

// NewPDFExporter builds an exporter with defaults.
func NewPDFExporter(opts ...Option) *PDFExporter {
	e := &PDFExporter{fontFamily: "Helvetica"}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ projects.DocumentExporter = (*PDFExporter)(nil)

// ExportSummary renders the document: title, dated subtitle, then each table
// below the previous one, paginating as needed.
func (e *PDFExporter) ExportSummary(ctx context.Context, doc projects.SummaryDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(e.fontFamily, "B", 18)
	pdf.SetTextColor(30, 41, 59)
	pdf.SetXY(pageMargin, titleY-8)
	pdf.CellFormat(0, 8, tr(doc.Title), "", 1, "L", false, 0, "")

	pdf.SetFont(e.fontFamily, "", 11)
	pdf.SetTextColor(100, 116, 139)
	pdf.SetXY(pageMargin, subtitleY-5)
	pdf.CellFormat(0, 5, tr(doc.Subtitle), "", 1, "L", false, 0, "")

	pdf.SetY(firstTableY)
	for _, table := range doc.Tables {
		if err := e.renderTable(pdf, tr, table); err != nil {
			return nil, err
		}
		pdf.SetY(pdf.GetY() + tableGap)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *PDFExporter) renderTable(pdf *fpdf.Fpdf, tr func(string) string, table projects.SummaryTable) error {
	if len(table.Head) == 0 {
		return fmt.Errorf("export: table without header")
	}
	pageWidth, _ := pdf.GetPageSize()
	printable := pageWidth - 2*pageMargin
	colWidth := printable / float64(len(table.Head))

	grid := table.Theme != projects.TableThemeStriped
	border := ""
	if grid {
		border = "1"
	}

	// Header row.
	pdf.SetFont(e.fontFamily, "B", 10)
	if grid {
		pdf.SetFillColor(226, 232, 240)
		pdf.SetTextColor(30, 41, 59)
	} else {
		pdf.SetFillColor(51, 65, 85)
		pdf.SetTextColor(255, 255, 255)
	}
	pdf.SetX(pageMargin)
	for _, cell := range table.Head {
		pdf.CellFormat(colWidth, headerHeight, tr(cell), border, 0, "L", true, 0, "")
	}
	pdf.Ln(headerHeight)

	// Body rows.
	pdf.SetFont(e.fontFamily, "", 10)
	pdf.SetTextColor(51, 65, 85)
	for i, row := range table.Body {
		fill := false
		if !grid && i%2 == 1 {
			pdf.SetFillColor(241, 245, 249)
			fill = true
		}
		pdf.SetX(pageMargin)
		for col := 0; col < len(table.Head); col++ {
			cell := ""
			if col < len(row) {
				cell = row[col]
			}
			pdf.CellFormat(colWidth, rowHeight, tr(cell), border, 0, "L", fill, 0, "")
		}
		pdf.Ln(rowHeight)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("export: render table: %w", err)
	}
	return nil
}
