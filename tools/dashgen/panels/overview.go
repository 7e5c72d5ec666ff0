package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

func upDownStat(title, description, metric string) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(metric+sel(""), "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

// HealthyStat returns a stat panel showing the liveness status.
func HealthyStat() *stat.PanelBuilder {
	return upDownStat("Healthy", "Liveness status (1 = ok, 0 = failing)", "upsell_healthy")
}

// ReadyStat returns a stat panel showing the readiness status, which follows
// the scheduled data source health check.
func ReadyStat() *stat.PanelBuilder {
	return upDownStat("Ready", "Readiness status (1 = data source reachable, 0 = not ready)", "upsell_ready")
}

// QuotaHits returns a stat panel showing how often the booking API quota was
// reached in the last 24 hours.
func QuotaHits() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Quota Hits (24h)").
		Description("Booking API calls rejected by the local quota").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`increase(upsell_datasource_quota_hits_total`+sel("")+`[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// UptimeStat returns a stat panel showing process uptime.
func UptimeStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Uptime").
		Description("Time since process start").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`time() - process_start_time_seconds`+sel(""), "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeNone)
}
