package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newPrometheusRule("upsell-recording-rules",
		RuleGroup{
			Name: "upsell-recording",
			Rules: []Rule{
				{
					Record: "upsell:http_requests:rate5m",
					Expr:   `sum(rate(upsell_http_requests_total[5m]))`,
				},
				{
					Record: "upsell:http_errors:rate5m",
					Expr:   `sum(rate(upsell_http_requests_total{status=~"5.."}[5m]))`,
				},
				{
					Record: "upsell:recommendations:rate5m",
					Expr:   `sum(rate(upsell_recommendations_total[5m])) by (offer_type)`,
				},
				{
					Record: "upsell:datasource_calls:rate5m",
					Expr:   `sum(rate(upsell_datasource_calls_total[5m])) by (operation)`,
				},
				{
					Record: "upsell:datasource_errors:rate5m",
					Expr:   `sum(rate(upsell_datasource_errors_total[5m])) by (operation)`,
				},
				{
					Record: "upsell:refinement_duration:p95_5m",
					Expr:   `histogram_quantile(0.95, sum(rate(upsell_refinement_duration_seconds_bucket[5m])) by (le, message_type))`,
				},
			},
		},
	)
}
