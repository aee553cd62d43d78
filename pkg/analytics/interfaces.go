package analytics

import (
	"context"

	projects "github.com/goliatone/go-projects/components/projects"
)

// KPIClient fetches portfolio KPI tiles from an upstream metrics service.
type KPIClient interface {
	FetchKPIs(ctx context.Context) ([]projects.KPIEntry, error)
}

// SeriesClient fetches chart series from BI systems.
type SeriesClient interface {
	FetchMonthlySales(ctx context.Context) ([]projects.ChartPoint, error)
	FetchTrafficSources(ctx context.Context) ([]projects.ChartPoint, error)
}

// Client is a convenience union for services that implement all metrics calls.
type Client interface {
	KPIClient
	SeriesClient
}
