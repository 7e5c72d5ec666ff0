// Package notify delivers operational alerts raised by the background
// scheduler (failed data source health checks, failed canaries and their
// recoveries).
package notify

import (
	"context"
	"time"
)

// Severity classifies an alert.
type Severity string

// Alert severities.
const (
	SeverityResolved Severity = "resolved"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// AlertPayload contains the data needed to send an operational alert.
type AlertPayload struct {
	Job      string // health_check, canary
	Summary  string
	Detail   string
	Severity Severity
	Source   string // data source kind
	At       time.Time
}

// Notifier sends operational alerts.
type Notifier interface {
	SendAlert(ctx context.Context, alert *AlertPayload) error
	SendBatchAlert(ctx context.Context, alerts []AlertPayload, job string) error
}
