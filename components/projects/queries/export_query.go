package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
)

type exportService interface {
	ExportSummary(ctx context.Context, projectID int, locale string) ([]byte, string, error)
}

// SummaryExportRequest identifies the project to export.
type SummaryExportRequest struct {
	ProjectID int    `json:"project_id"`
	Locale    string `json:"locale"`
}

// SummaryExport is the rendered document plus its download filename.
type SummaryExport struct {
	Data     []byte `json:"-"`
	Filename string `json:"filename"`
}

// SummaryExportQuery renders a project summary document.
type SummaryExportQuery struct {
	service exportService
}

// NewSummaryExportQuery builds the query.
func NewSummaryExportQuery(service exportService) *SummaryExportQuery {
	return &SummaryExportQuery{service: service}
}

var _ gocommand.Querier[SummaryExportRequest, SummaryExport] = (*SummaryExportQuery)(nil)

// Query renders the document through the configured exporter.
func (q *SummaryExportQuery) Query(ctx context.Context, req SummaryExportRequest) (SummaryExport, error) {
	data, filename, err := q.service.ExportSummary(ctx, req.ProjectID, req.Locale)
	if err != nil {
		return SummaryExport{}, err
	}
	return SummaryExport{Data: data, Filename: filename}, nil
}
