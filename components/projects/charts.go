package projects

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const defaultChartHeight = "360px"

// ChartPalette is the fixed 6-color palette; segment colors repeat beyond
// six categories.
var ChartPalette = []string{"#38BDF8", "#34D399", "#FBBF24", "#A78BFA", "#F87171", "#60A5FA"}

// SegmentColor assigns the palette color for the item at index i.
func SegmentColor(i int) string {
	if i < 0 {
		i = -i
	}
	return ChartPalette[i%len(ChartPalette)]
}

var sharedChartCache = NewChartCache(5 * time.Minute)

// ChartRenderer renders server-side chart HTML for the dashboard and the
// project detail view. Rendering is a pure function of its input series.
type ChartRenderer struct {
	cache      RenderCache
	theme      string
	assetsHost string
}

// ChartRendererOption customizes renderer behavior.
type ChartRendererOption func(*ChartRenderer)

// WithChartCache injects a render cache.
func WithChartCache(cache RenderCache) ChartRendererOption {
	return func(r *ChartRenderer) {
		r.cache = cache
	}
}

// WithChartTheme sets a static theme (defaults to Westeros).
func WithChartTheme(theme string) ChartRendererOption {
	return func(r *ChartRenderer) {
		r.theme = theme
	}
}

// WithChartAssetsHost rewrites the assets host so ECharts JS loads from a CDN.
func WithChartAssetsHost(host string) ChartRendererOption {
	return func(r *ChartRenderer) {
		r.assetsHost = host
	}
}

// NewChartRenderer builds a renderer with the shared render cache.
func NewChartRenderer(optFns ...ChartRendererOption) *ChartRenderer {
	r := &ChartRenderer{
		cache: sharedChartCache,
		theme: types.ThemeWesteros,
	}
	for _, opt := range optFns {
		opt(r)
	}
	return r
}

// Bar renders the monthly bar chart: a single gradient-filled series over the
// points' labels. An empty series renders the frame with no data.
func (r *ChartRenderer) Bar(title, subtitle string, points []ChartPoint) (string, error) {
	key := fmt.Sprintf("bar:%s:%s", title, seriesHash(points))
	return r.cached(key, func() (string, error) {
		bar := charts.NewBar()
		bar.SetGlobalOptions(r.globalChartOptions(title, subtitle)...)
		bar.SetXAxis(pointLabels(points))
		if len(points) > 0 {
			bar.AddSeries(title, toBarData(points), charts.WithItemStyleOpts(opts.ItemStyle{
				Color:   SegmentColor(0),
				Opacity: 0.8,
			}))
		}
		return renderChart(bar)
	})
}

// Pie renders the traffic donut with a side legend. Slice colors follow the
// palette by index, repeating after six entries.
func (r *ChartRenderer) Pie(title, subtitle string, points []ChartPoint) (string, error) {
	key := fmt.Sprintf("pie:%s:%s", title, seriesHash(points))
	return r.cached(key, func() (string, error) {
		pie := charts.NewPie()
		globalOpts := append(r.globalChartOptions(title, subtitle),
			charts.WithLegendOpts(opts.Legend{
				Show:   opts.Bool(true),
				Orient: "vertical",
				Right:  "5%",
				Top:    "middle",
			}),
		)
		pie.SetGlobalOptions(globalOpts...)
		if len(points) > 0 {
			pie.AddSeries(title, toPieData(points), charts.WithPieChartOpts(opts.PieChart{
				Radius: []string{"45%", "75%"},
				Center: []string{"40%", "50%"},
			}))
		}
		return renderChart(pie)
	})
}

// PaymentBar renders the single stacked horizontal bar decomposing the budget
// into paid, spent-but-unpaid, and remaining segments.
func (r *ChartRenderer) PaymentBar(title string, breakdown PaymentBreakdown, locale string) (string, error) {
	key := fmt.Sprintf("payments:%s:%.2f:%.2f:%.2f", title, breakdown.Paid, breakdown.SpentUnpaid, breakdown.Remaining)
	return r.cached(key, func() (string, error) {
		bar := charts.NewBar()
		bar.SetGlobalOptions(r.globalChartOptions(title, "")...)
		bar.SetXAxis([]string{ResolveLocalizedValue(map[string]string{
			"es": "Finanzas", "en": "Finances",
		}, locale, "Finanzas")})
		segments := []struct {
			labels map[string]string
			value  float64
			color  string
		}{
			{map[string]string{"es": "Pagado", "en": "Paid"}, breakdown.Paid, "#34D399"},
			{map[string]string{"es": "Gastado (no pagado)", "en": "Spent (unpaid)"}, breakdown.SpentUnpaid, "#F87171"},
			{map[string]string{"es": "Presupuesto restante", "en": "Remaining budget"}, breakdown.Remaining, "rgba(107, 114, 128, 0.3)"},
		}
		for _, segment := range segments {
			name := ResolveLocalizedValue(segment.labels, locale, "")
			bar.AddSeries(name, []opts.BarData{{Name: name, Value: segment.value}},
				charts.WithBarChartOpts(opts.BarChart{Stack: "budget"}),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: segment.color}),
			)
		}
		bar.XYReversal()
		return renderChart(bar)
	})
}

func (r *ChartRenderer) cached(key string, render func() (string, error)) (string, error) {
	if r.cache == nil {
		return render()
	}
	return r.cache.GetOrRender(key, render)
}

func (r *ChartRenderer) globalChartOptions(title, subtitle string) []charts.GlobalOpts {
	initOpts := opts.Initialization{
		Theme:  r.theme,
		Width:  "100%",
		Height: defaultChartHeight,
	}
	if r.assetsHost != "" {
		initOpts.AssetsHost = r.assetsHost
	}
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(initOpts),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func toBarData(points []ChartPoint) []opts.BarData {
	data := make([]opts.BarData, len(points))
	for i, point := range points {
		data[i] = opts.BarData{Name: point.Label, Value: point.Value}
	}
	return data
}

func toPieData(points []ChartPoint) []opts.PieData {
	data := make([]opts.PieData, len(points))
	for i, point := range points {
		name := point.Label
		if name == "" {
			name = fmt.Sprintf("Slice %d", i+1)
		}
		data[i] = opts.PieData{
			Name:      name,
			Value:     point.Value,
			ItemStyle: &opts.ItemStyle{Color: SegmentColor(i)},
		}
	}
	return data
}

func pointLabels(points []ChartPoint) []string {
	labels := make([]string, len(points))
	for i, point := range points {
		if point.Label != "" {
			labels[i] = point.Label
		} else {
			labels[i] = fmt.Sprintf("Item %d", i+1)
		}
	}
	return labels
}

// SeriesRepository fetches the dashboard's static chart series.
type SeriesRepository interface {
	MonthlySales(ctx context.Context) ([]ChartPoint, error)
	TrafficSources(ctx context.Context) ([]ChartPoint, error)
}

// NewBarCardProvider builds the provider behind the monthly sales card.
func NewBarCardProvider(repo SeriesRepository, renderer *ChartRenderer) CardProvider {
	if renderer == nil {
		renderer = NewChartRenderer()
	}
	return CardProviderFunc(func(ctx context.Context, meta CardContext) (CardData, error) {
		if repo == nil {
			return nil, fmt.Errorf("projects: bar card provider requires a series repository")
		}
		points, err := repo.MonthlySales(ctx)
		if err != nil {
			return nil, fmt.Errorf("projects: monthly sales: %w", err)
		}
		title := meta.Definition.NameForLocale(meta.Locale)
		html, err := renderer.Bar(title, "", points)
		if err != nil {
			return nil, err
		}
		return CardData{
			"chart_html":  html,
			"chart_type":  "bar",
			"title":       title,
			"description": meta.Definition.DescriptionForLocale(meta.Locale),
		}, nil
	})
}

// NewPieCardProvider builds the provider behind the traffic distribution card.
func NewPieCardProvider(repo SeriesRepository, renderer *ChartRenderer) CardProvider {
	if renderer == nil {
		renderer = NewChartRenderer()
	}
	return CardProviderFunc(func(ctx context.Context, meta CardContext) (CardData, error) {
		if repo == nil {
			return nil, fmt.Errorf("projects: pie card provider requires a series repository")
		}
		points, err := repo.TrafficSources(ctx)
		if err != nil {
			return nil, fmt.Errorf("projects: traffic sources: %w", err)
		}
		title := meta.Definition.NameForLocale(meta.Locale)
		html, err := renderer.Pie(title, "", points)
		if err != nil {
			return nil, err
		}
		return CardData{
			"chart_html":  html,
			"chart_type":  "pie",
			"title":       title,
			"description": meta.Definition.DescriptionForLocale(meta.Locale),
		}, nil
	})
}

func seriesHash(points []ChartPoint) string {
	var buf bytes.Buffer
	for _, point := range points {
		fmt.Fprintf(&buf, "%s=%.4f;", point.Label, point.Value)
	}
	return configHash(map[string]any{"series": buf.String()})
}
