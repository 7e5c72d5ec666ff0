package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// OffersByType returns a timeseries panel showing recommendations per second
// split by final offer type.
func OffersByType() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Offers by Type").
		Description("Recommendations per second by final offer (car, protection, none)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`upsell:recommendations:rate5m`, "{{offer_type}}", "A")).
		Unit("reqps").
		FillOpacity(20).
		LineWidth(1).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RecommendationLatency returns a timeseries panel showing the p95 duration
// of a full recommendation, data source calls included.
func RecommendationLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Recommendation Latency (p95)").
		Description("95th percentile duration of a full recommendation").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(upsell_recommendation_duration_seconds_bucket`+sel("")+`[5m])) by (le))`,
			"p95", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// UpgradeFoundRatio returns a stat panel showing the share of upgrade
// pairings that found a better car.
func UpgradeFoundRatio() *stat.PanelBuilder {
	expr := `sum(increase(upsell_car_upgrade_total` + sel(`outcome="found"`) + `[1h])) / sum(increase(upsell_car_upgrade_total` + sel("") + `[1h])) * 100`
	return stat.NewPanelBuilder().
		Title("Upgrade Found %").
		Description("Share of upgrade searches in the last hour that found a better car").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(8).
		WithTarget(PromQuery(expr, "", "A")).
		Unit("percent").
		Thresholds(ThresholdsRedGreen(20)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// RecommendationErrors returns a stat panel showing failed recommendations
// in the last hour.
func RecommendationErrors() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Recommendation Errors (1h)").
		Description("Recommendations that failed because the data source failed").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(8).
		WithTarget(PromQuery(`increase(upsell_recommendation_errors_total`+sel("")+`[1h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// PrimaryOfferSplit returns a stat panel showing the legacy primary offer
// classification over the last hour.
func PrimaryOfferSplit() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Primary Offer (1h)").
		Description("Legacy car/protection/both/none classification").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(increase(upsell_primary_offer_total`+sel("")+`[1h])) by (primary_offer_type)`,
			"{{primary_offer_type}}", "A",
		)).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		GraphMode(common.BigValueGraphModeNone)
}

func scoreDistribution(title, description, metric string) *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(`+metric+`_bucket`+sel("")+`[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// VehicleScoreDistribution returns a bar gauge panel showing the total score
// of the best-ranked vehicle across histogram buckets.
func VehicleScoreDistribution() *bargauge.PanelBuilder {
	return scoreDistribution(
		"Vehicle Score Distribution",
		"Total score of the best vehicle candidate per recommendation",
		"upsell_vehicle_score_distribution",
	)
}

// ProtectionScoreDistribution returns a bar gauge panel showing the total
// score of the best-ranked protection package.
func ProtectionScoreDistribution() *bargauge.PanelBuilder {
	return scoreDistribution(
		"Protection Score Distribution",
		"Total score of the best protection candidate per recommendation",
		"upsell_protection_score_distribution",
	)
}
