package analytics

import (
	"context"

	projects "github.com/goliatone/go-projects/components/projects"
)

// NewKPIFeed adapts a metrics client into the dashboard's KPI feed.
func NewKPIFeed(client KPIClient) projects.KPIFeed {
	return &kpiFeed{client: client}
}

type kpiFeed struct {
	client KPIClient
}

func (f *kpiFeed) KPIs(ctx context.Context) ([]projects.KPIEntry, error) {
	return f.client.FetchKPIs(ctx)
}

// NewSeriesRepository adapts the metrics client for the chart cards.
func NewSeriesRepository(client SeriesClient) projects.SeriesRepository {
	return &seriesRepository{client: client}
}

type seriesRepository struct {
	client SeriesClient
}

func (r *seriesRepository) MonthlySales(ctx context.Context) ([]projects.ChartPoint, error) {
	return r.client.FetchMonthlySales(ctx)
}

func (r *seriesRepository) TrafficSources(ctx context.Context) ([]projects.ChartPoint, error) {
	return r.client.FetchTrafficSources(ctx)
}
