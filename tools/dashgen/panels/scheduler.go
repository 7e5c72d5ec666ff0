package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CanaryRuns returns a timeseries panel showing scheduled canary
// recommendations by result.
func CanaryRuns() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Canary Runs").
		Description("Scheduled end-to-end recommendations by result").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(upsell_canary_runs_total`+sel("")+`[1h])) by (result)`,
			"{{result}}", "A",
		)).
		FillOpacity(30).
		LineWidth(1).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// HealthCheckFailures returns a stat panel showing failed scheduled data
// source health checks in the last 24 hours.
func HealthCheckFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Health Check Failures (24h)").
		Description("Scheduled data source health checks that failed").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`increase(upsell_health_check_failures_total`+sel("")+`[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
