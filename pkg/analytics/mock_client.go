package analytics

import (
	"context"
	"sync"

	projects "github.com/goliatone/go-projects/components/projects"
)

// MockData seeds deterministic metrics responses for tests or local demos.
type MockData struct {
	KPIs    []projects.KPIEntry
	Sales   []projects.ChartPoint
	Traffic []projects.ChartPoint
}

// MockClient implements Client using in-memory fixtures.
type MockClient struct {
	data MockData
	mu   sync.RWMutex
}

// NewMockClient builds a mock metrics client from the provided fixtures.
func NewMockClient(data MockData) *MockClient {
	return &MockClient{data: data}
}

// FetchKPIs returns the configured KPI tiles.
func (c *MockClient) FetchKPIs(context.Context) ([]projects.KPIEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]projects.KPIEntry(nil), c.data.KPIs...), nil
}

// FetchMonthlySales returns the configured sales series.
func (c *MockClient) FetchMonthlySales(context.Context) ([]projects.ChartPoint, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]projects.ChartPoint(nil), c.data.Sales...), nil
}

// FetchTrafficSources returns the configured traffic series.
func (c *MockClient) FetchTrafficSources(context.Context) ([]projects.ChartPoint, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]projects.ChartPoint(nil), c.data.Traffic...), nil
}
