package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	projects "github.com/goliatone/go-projects/components/projects"
)

type dashboardService interface {
	Dashboard(ctx context.Context, locale string) (projects.DashboardPayload, error)
}

// DashboardRequest selects the locale the dashboard is resolved for.
type DashboardRequest struct {
	Locale string `json:"locale"`
}

// DashboardQuery executes read-only dashboard resolution.
type DashboardQuery struct {
	service dashboardService
}

// NewDashboardQuery builds the query.
func NewDashboardQuery(service dashboardService) *DashboardQuery {
	return &DashboardQuery{service: service}
}

var _ gocommand.Querier[DashboardRequest, projects.DashboardPayload] = (*DashboardQuery)(nil)

// Query resolves the KPI tiles and chart cards.
func (q *DashboardQuery) Query(ctx context.Context, req DashboardRequest) (projects.DashboardPayload, error) {
	return q.service.Dashboard(ctx, req.Locale)
}
