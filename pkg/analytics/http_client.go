package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	projects "github.com/goliatone/go-projects/components/projects"
)

// HTTPConfig configures the HTTP metrics client.
type HTTPConfig struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// HTTPClient talks to a remote metrics service via REST endpoints.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPClient builds a client capable of hitting live metrics APIs.
func NewHTTPClient(cfg HTTPConfig) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("analytics: base url is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  httpClient,
	}, nil
}

// FetchKPIs implements KPIClient by calling the remote KPI endpoint.
func (c *HTTPClient) FetchKPIs(ctx context.Context) ([]projects.KPIEntry, error) {
	var resp kpiResponse
	if err := c.do(ctx, http.MethodGet, "/kpis", nil, &resp); err != nil {
		return nil, err
	}
	return resp.toEntries()
}

// FetchMonthlySales implements SeriesClient via the sales series endpoint.
func (c *HTTPClient) FetchMonthlySales(ctx context.Context) ([]projects.ChartPoint, error) {
	var resp seriesResponse
	if err := c.do(ctx, http.MethodGet, "/series/monthly-sales", nil, &resp); err != nil {
		return nil, err
	}
	return resp.toPoints(), nil
}

// FetchTrafficSources implements SeriesClient via the traffic series endpoint.
func (c *HTTPClient) FetchTrafficSources(ctx context.Context) ([]projects.ChartPoint, error) {
	var resp seriesResponse
	if err := c.do(ctx, http.MethodGet, "/series/traffic-sources", nil, &resp); err != nil {
		return nil, err
	}
	return resp.toPoints(), nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload any, target any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("analytics: encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("analytics: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("analytics: http request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(resp.Body)
		return fmt.Errorf("analytics: remote error %d: %s", resp.StatusCode, buf.String())
	}
	if target == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("analytics: decode response: %w", err)
	}
	return nil
}

type kpiEntry struct {
	Title     string `json:"title"`
	Value     string `json:"value"`
	Icon      string `json:"icon"`
	Change    string `json:"change"`
	Direction string `json:"direction"`
}

type kpiResponse struct {
	Entries []kpiEntry `json:"entries"`
}

func (r kpiResponse) toEntries() ([]projects.KPIEntry, error) {
	entries := make([]projects.KPIEntry, len(r.Entries))
	for i, entry := range r.Entries {
		direction := projects.KPIDirection(entry.Direction)
		switch direction {
		case projects.KPIIncrease, projects.KPIDecrease:
		default:
			return nil, fmt.Errorf("analytics: unknown KPI direction %q", entry.Direction)
		}
		entries[i] = projects.KPIEntry{
			Title:     entry.Title,
			Value:     entry.Value,
			Icon:      entry.Icon,
			Change:    entry.Change,
			Direction: direction,
		}
	}
	return entries, nil
}

type seriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type seriesResponse struct {
	Points []seriesPoint `json:"points"`
}

func (r seriesResponse) toPoints() []projects.ChartPoint {
	points := make([]projects.ChartPoint, len(r.Points))
	for i, point := range r.Points {
		points[i] = projects.ChartPoint{Label: point.Label, Value: point.Value}
	}
	return points
}
