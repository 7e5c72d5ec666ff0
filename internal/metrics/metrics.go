// Package metrics defines Prometheus metrics for rental-upsell.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "upsell"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HTTPPanicsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_panics_total",
		Help:      "Total number of recovered handler panics.",
	})
)

// Health metrics.
var (
	HealthyGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthy",
		Help:      "Whether the service is healthy (1) or not (0).",
	})

	ReadyGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ready",
		Help:      "Whether the service is ready to serve (1) or not (0).",
	})
)

// Scheduler metrics.
var (
	CanaryRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "canary_runs_total",
		Help:      "Scheduled end-to-end canary recommendations by result.",
	}, []string{"result"})

	HealthCheckFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "health_check_failures_total",
		Help:      "Total scheduled data source health checks that failed.",
	})
)

// Recommendation metrics.
var (
	RecommendationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recommendations_total",
		Help:      "Total number of recommendations by final offer type.",
	}, []string{"offer_type"})

	PrimaryOfferTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "primary_offer_total",
		Help:      "Total number of recommendations by legacy primary offer type.",
	}, []string{"primary_offer_type"})

	CarUpgradeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "car_upgrade_total",
		Help:      "Total number of upgrade pairing attempts by outcome.",
	}, []string{"outcome"})

	RecommendationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "recommendation_duration_seconds",
		Help:      "Duration of a full recommendation in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	RecommendationErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recommendation_errors_total",
		Help:      "Total number of failed recommendations.",
	})
)

// Scoring metrics.
var (
	VehicleScoreDistribution = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "vehicle_score_distribution",
		Help:      "Distribution of total scores of the best vehicle candidate.",
		Buckets:   prometheus.LinearBuckets(-10, 5, 11), // -10, -5, ..., 40
	})

	ProtectionScoreDistribution = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "protection_score_distribution",
		Help:      "Distribution of total scores of the best protection candidate.",
		Buckets:   prometheus.LinearBuckets(-10, 5, 11),
	})
)

// Refinement metrics.
var (
	RefinementDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "refinement_duration_seconds",
		Help:      "Duration of LLM message refinement calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"message_type"})

	RefinementFallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "refinement_fallbacks_total",
		Help:      "Total number of refinements that fell back to the formal explanation.",
	}, []string{"message_type"})
)

// Data source metrics.
var (
	DataSourceCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "datasource_calls_total",
		Help:      "Total number of booking API calls by operation.",
	}, []string{"operation"})

	DataSourceErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "datasource_errors_total",
		Help:      "Total number of failed booking API calls by operation.",
	}, []string{"operation"})

	DataSourceQuotaHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "datasource_quota_hits_total",
		Help:      "Total number of times the booking API call quota was reached.",
	})

	CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_hits_total",
		Help:      "Total number of catalog cache hits by kind.",
	}, []string{"kind"})

	CacheUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "cache_up",
		Help:      "Whether the Redis catalog cache answered the last health check (1) or not (0).",
	})

	CacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_misses_total",
		Help:      "Total number of catalog cache misses by kind.",
	}, []string{"kind"})
)

// Notification metrics.
var (
	NotificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_duration_seconds",
		Help:      "Duration of alert webhook deliveries in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of notification send failures.",
	})
)
