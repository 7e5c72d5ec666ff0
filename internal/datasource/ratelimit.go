package datasource

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ErrQuotaExhausted is returned when the call quota for the current window
// has been used up.
var ErrQuotaExhausted = errors.New("API call quota exhausted")

// RateLimiter throttles calls to the booking API with a token bucket and an
// optional call quota per rolling window.
type RateLimiter struct {
	limiter *rate.Limiter

	mu      sync.Mutex
	quota   int64
	window  time.Duration
	used    int64
	resetAt time.Time
	nowFunc func() time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithQuota caps the number of calls per window. A zero quota disables the
// cap.
func WithQuota(quota int64, window time.Duration) RateLimiterOption {
	return func(r *RateLimiter) {
		r.quota = quota
		r.window = window
	}
}

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a rate limiter allowing perSecond calls with the
// given burst.
func NewRateLimiter(perSecond float64, burst int, opts ...RateLimiterOption) *RateLimiter {
	r := &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nowFunc().Add(r.window)
	return r
}

// Wait blocks until a call is allowed or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.reserveQuota(); err != nil {
		return err
	}
	if err := r.limiter.Wait(ctx); err != nil {
		r.releaseQuota()
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}

// Used returns the number of calls made in the current window.
func (r *RateLimiter) Used() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.used
}

// Remaining returns the calls left in the current window, or -1 when no
// quota is configured.
func (r *RateLimiter) Remaining() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.quota <= 0 {
		return -1
	}
	return max(r.quota-r.used, 0)
}

func (r *RateLimiter) reserveQuota() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.quota <= 0 {
		r.used++
		return nil
	}

	now := r.nowFunc()
	if now.After(r.resetAt) {
		r.used = 0
		r.resetAt = now.Add(r.window)
	}
	if r.used >= r.quota {
		return fmt.Errorf("%w (%d/%d, resets %s)", ErrQuotaExhausted, r.used, r.quota, r.resetAt.Format(time.RFC3339))
	}
	r.used++
	return nil
}

func (r *RateLimiter) releaseQuota() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.used > 0 {
		r.used--
	}
}
