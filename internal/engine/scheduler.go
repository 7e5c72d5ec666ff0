package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/rental-upsell/internal/metrics"
	"github.com/donaldgifford/rental-upsell/internal/notify"
)

const scheduledJobTimeout = 30 * time.Second

// Scheduled job names used in logs and alerts.
const (
	jobHealthCheck = "health_check"
	jobCanary      = "canary"
)

// Scheduler runs periodic data source health checks and, optionally, an
// end-to-end canary recommendation. Failures and recoveries are reported
// to the configured notifier once per state change.
type Scheduler struct {
	cron     *cron.Cron
	engine   *Engine
	log      *slog.Logger
	notifier notify.Notifier
	source   string

	mu      sync.Mutex
	failing map[string]bool
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithNotifier sets the notifier that receives job failure alerts.
func WithNotifier(n notify.Notifier) SchedulerOption {
	return func(s *Scheduler) {
		s.notifier = n
	}
}

// WithAlertSource labels alerts with the data source kind.
func WithAlertSource(kind string) SchedulerOption {
	return func(s *Scheduler) {
		s.source = kind
	}
}

// NewScheduler creates a new Scheduler. A zero canaryInterval disables the
// canary job.
func NewScheduler(
	eng *Engine,
	healthInterval time.Duration,
	canaryInterval time.Duration,
	log *slog.Logger,
	opts ...SchedulerOption,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:    c,
		engine:  eng,
		log:     log,
		failing: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = notify.NewNoOpNotifier(log)
	}

	if _, err := c.AddFunc(
		"@every "+healthInterval.String(),
		s.runHealthCheck,
	); err != nil {
		return nil, err
	}

	if canaryInterval > 0 {
		if _, err := c.AddFunc(
			"@every "+canaryInterval.String(),
			s.runCanary,
		); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Start runs an initial health check and begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "jobs", len(s.cron.Entries()))
	s.runHealthCheck()
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runHealthCheck() {
	ctx, cancel := context.WithTimeout(context.Background(), scheduledJobTimeout)
	defer cancel()

	if err := s.engine.CheckHealth(ctx); err != nil {
		metrics.HealthCheckFailuresTotal.Inc()
		metrics.ReadyGauge.Set(0)
		s.log.Warn("scheduled health check failed", "error", err)
		s.report(ctx, jobHealthCheck, err)
		return
	}
	metrics.ReadyGauge.Set(1)
	s.report(ctx, jobHealthCheck, nil)
}

func (s *Scheduler) runCanary() {
	ctx, cancel := context.WithTimeout(context.Background(), scheduledJobTimeout)
	defer cancel()

	s.log.Info("scheduled canary starting")
	if err := s.engine.RunCanary(ctx); err != nil {
		metrics.CanaryRunsTotal.WithLabelValues("error").Inc()
		s.log.Error("scheduled canary failed", "error", err)
		s.report(ctx, jobCanary, err)
		return
	}
	metrics.CanaryRunsTotal.WithLabelValues("ok").Inc()
	s.report(ctx, jobCanary, nil)
}

// report sends an alert when a job starts failing or recovers. Repeated
// results in the same state are not re-sent.
func (s *Scheduler) report(ctx context.Context, job string, jobErr error) {
	s.mu.Lock()
	wasFailing := s.failing[job]
	nowFailing := jobErr != nil
	s.failing[job] = nowFailing
	s.mu.Unlock()

	if wasFailing == nowFailing {
		return
	}

	alert := &notify.AlertPayload{
		Job:    job,
		Source: s.source,
		At:     time.Now(),
	}
	switch {
	case nowFailing && job == jobCanary:
		alert.Severity = notify.SeverityCritical
		alert.Summary = "Canary recommendation failed"
		alert.Detail = jobErr.Error()
	case nowFailing:
		alert.Severity = notify.SeverityWarning
		alert.Summary = "Data source health check failed"
		alert.Detail = jobErr.Error()
	default:
		alert.Severity = notify.SeverityResolved
		alert.Summary = job + " recovered"
	}

	if err := s.notifier.SendAlert(ctx, alert); err != nil {
		s.log.Warn("sending alert", "job", job, "error", err)
	}
}
