package main

import "errors"

// KnownMetrics is the set of metric names exported by upsell-engine plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"upsell_http_request_duration_seconds_bucket": true,
	"upsell_http_requests_total":                  true,
	"upsell_http_panics_total":                    true,

	// Health metrics.
	"upsell_healthy": true,
	"upsell_ready":   true,

	// Scheduler metrics.
	"upsell_canary_runs_total":           true,
	"upsell_health_check_failures_total": true,

	// Recommendation metrics.
	"upsell_recommendations_total":                  true,
	"upsell_primary_offer_total":                    true,
	"upsell_car_upgrade_total":                      true,
	"upsell_recommendation_duration_seconds_bucket": true,
	"upsell_recommendation_errors_total":            true,
	"upsell_vehicle_score_distribution_bucket":      true,
	"upsell_protection_score_distribution_bucket":   true,

	// Refinement metrics.
	"upsell_refinement_duration_seconds_bucket": true,
	"upsell_refinement_fallbacks_total":         true,

	// Data source metrics.
	"upsell_datasource_calls_total":      true,
	"upsell_datasource_errors_total":     true,
	"upsell_datasource_quota_hits_total": true,
	"upsell_cache_hits_total":            true,
	"upsell_cache_misses_total":          true,
	"upsell_cache_up":                    true,

	// Notification metrics.
	"upsell_notification_duration_seconds_bucket": true,
	"upsell_notification_failures_total":          true,

	// Recording rules.
	"upsell:http_requests:rate5m":       true,
	"upsell:http_errors:rate5m":         true,
	"upsell:recommendations:rate5m":     true,
	"upsell:datasource_calls:rate5m":    true,
	"upsell:datasource_errors:rate5m":   true,
	"upsell:refinement_duration:p95_5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
