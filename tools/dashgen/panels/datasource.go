package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CallsByOperation returns a timeseries panel showing booking API calls per
// second by operation.
func CallsByOperation() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Booking API Calls").
		Description("Booking API calls per second by operation").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`upsell:datasource_calls:rate5m`, "{{operation}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CallErrors returns a timeseries panel showing failed booking API calls per
// second by operation. Not-found responses are not counted.
func CallErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Booking API Errors").
		Description("Failed booking API calls per second by operation").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`upsell:datasource_errors:rate5m`, "{{operation}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CacheHitRatio returns a stat panel showing the Redis catalog cache hit
// ratio over the last hour.
func CacheHitRatio() *stat.PanelBuilder {
	hits := `sum(increase(upsell_cache_hits_total` + sel("") + `[1h]))`
	misses := `sum(increase(upsell_cache_misses_total` + sel("") + `[1h]))`
	return stat.NewPanelBuilder().
		Title("Cache Hit Ratio").
		Description("Catalog lookups served from Redis in the last hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(hits+` / (`+hits+` + `+misses+`) * 100`, "", "A")).
		Unit("percent").
		Thresholds(ThresholdsRedGreen(50)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
