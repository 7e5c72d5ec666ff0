package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// upsell-engine operational monitoring.
func AlertRules() PrometheusRule {
	return newPrometheusRule("upsell-alerts",
		RuleGroup{
			Name: "upsell-alerts",
			Rules: []Rule{
				{
					Alert: "UpsellDown",
					Expr:  `absent(up{job="upsell-engine"})`,
					For:   "2m",
					Labels: map[string]string{
						"severity": "critical",
					},
					Annotations: map[string]string{
						"summary":     "Upsell engine is down",
						"description": "The upsell-engine job has been absent for more than 2 minutes.",
					},
				},
				{
					Alert: "UpsellNotReady",
					Expr:  `upsell_ready == 0`,
					For:   "2m",
					Labels: map[string]string{
						"severity": "critical",
					},
					Annotations: map[string]string{
						"summary":     "Upsell engine cannot reach its data source",
						"description": "The scheduled data source health check has failed for more than 2 minutes.",
					},
				},
				{
					Alert: "UpsellHighErrorRate",
					Expr:  `upsell:http_errors:rate5m / upsell:http_requests:rate5m > 0.05`,
					For:   "5m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "High HTTP error rate on the upsell engine",
						"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
					},
				},
				{
					Alert: "UpsellBookingAPIErrors",
					Expr:  `sum(upsell:datasource_errors:rate5m) > 0.1`,
					For:   "5m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Booking API errors detected",
						"description": "Calls to the booking API have been failing at more than 0.1/s for 5 minutes.",
					},
				},
				{
					Alert: "UpsellQuotaReached",
					Expr:  `increase(upsell_datasource_quota_hits_total[5m]) > 0`,
					For:   "0m",
					Labels: map[string]string{
						"severity": "critical",
					},
					Annotations: map[string]string{
						"summary":     "Booking API quota has been reached",
						"description": "The local booking API quota is exhausted. Recommendations fail until the window resets.",
					},
				},
				{
					Alert: "UpsellCanaryFailing",
					Expr:  `increase(upsell_canary_runs_total{result="error"}[30m]) > 0`,
					For:   "10m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Canary recommendations are failing",
						"description": "The scheduled end-to-end recommendation has failed within the last 30 minutes.",
					},
				},
				{
					Alert: "UpsellRefinementFallbacks",
					Expr:  `sum(rate(upsell_refinement_fallbacks_total[5m])) > 0.5`,
					For:   "10m",
					Labels: map[string]string{
						"severity": "info",
					},
					Annotations: map[string]string{
						"summary":     "LLM refinement is falling back",
						"description": "Message refinement keeps returning the formal explanation. Check the LLM backend.",
					},
				},
			},
		},
	)
}
