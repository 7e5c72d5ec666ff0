// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/rental-upsell/tools/dashgen/panels"
)

// BuildOverview constructs the Upsell Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Upsell Overview").
		Uid("upsell-overview").
		Tags([]string{"upsell", "upsell-engine"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthyStat()).
		WithPanel(panels.ReadyStat()).
		WithPanel(panels.QuotaHits()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.Panics()))

	// Row 3: Recommendations.
	b.WithRow(dashboard.NewRowBuilder("Recommendations").
		WithPanel(panels.OffersByType()).
		WithPanel(panels.RecommendationLatency()).
		WithPanel(panels.UpgradeFoundRatio()).
		WithPanel(panels.RecommendationErrors()).
		WithPanel(panels.PrimaryOfferSplit()))

	// Row 4: Scoring.
	b.WithRow(dashboard.NewRowBuilder("Scoring").
		WithPanel(panels.VehicleScoreDistribution()).
		WithPanel(panels.ProtectionScoreDistribution()))

	// Row 5: Booking API.
	b.WithRow(dashboard.NewRowBuilder("Booking API").
		WithPanel(panels.CallsByOperation()).
		WithPanel(panels.CallErrors()).
		WithPanel(panels.CacheHitRatio()))

	// Row 6: Messaging.
	b.WithRow(dashboard.NewRowBuilder("Messaging").
		WithPanel(panels.RefinementLatency()).
		WithPanel(panels.RefinementFallbacks()))

	// Row 7: Scheduler.
	b.WithRow(dashboard.NewRowBuilder("Scheduler").
		WithPanel(panels.CanaryRuns()).
		WithPanel(panels.HealthCheckFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
