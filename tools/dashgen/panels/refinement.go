package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RefinementLatency returns a timeseries panel showing the p95 LLM refinement
// latency by message type.
func RefinementLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Refinement Latency (p95)").
		Description("95th percentile LLM refinement duration by message type").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`upsell:refinement_duration:p95_5m`, "{{message_type}}", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(2, 5)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RefinementFallbacks returns a timeseries panel showing how often refinement
// fell back to the formal explanation.
func RefinementFallbacks() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Refinement Fallbacks").
		Description("Refinements per second that returned the formal explanation").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(upsell_refinement_fallbacks_total`+sel("")+`[5m])) by (message_type)`,
			"{{message_type}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
