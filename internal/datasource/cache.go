package datasource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/donaldgifford/rental-upsell/internal/metrics"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

const (
	defaultCacheTTL    = 10 * time.Minute
	defaultCachePrefix = "upsell:catalog"

	kindVehicles    = "vehicles"
	kindProtections = "protections"
	kindAddons      = "addons"
)

// CachedSource decorates a Source with a Redis cache for the per-booking
// catalogs. Bookings themselves are always read from the underlying source.
// Cache failures are logged and the underlying source is used instead.
type CachedSource struct {
	next   Source
	client *redis.Client
	ttl    time.Duration
	prefix string
	log    *slog.Logger
}

// CacheOption configures the CachedSource.
type CacheOption func(*CachedSource)

// WithCacheTTL sets how long catalogs stay cached.
func WithCacheTTL(ttl time.Duration) CacheOption {
	return func(c *CachedSource) {
		c.ttl = ttl
	}
}

// WithCachePrefix sets the Redis key prefix.
func WithCachePrefix(prefix string) CacheOption {
	return func(c *CachedSource) {
		c.prefix = prefix
	}
}

// WithCacheLogger sets the logger for cache failures.
func WithCacheLogger(l *slog.Logger) CacheOption {
	return func(c *CachedSource) {
		c.log = l
	}
}

// NewCachedSource wraps next with a Redis-backed catalog cache.
func NewCachedSource(next Source, client *redis.Client, opts ...CacheOption) *CachedSource {
	c := &CachedSource{
		next:   next,
		client: client,
		ttl:    defaultCacheTTL,
		prefix: defaultCachePrefix,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ping reports the health of the wrapped source. Redis only backs the
// cache, so an unreachable Redis marks the cache degraded without failing
// the check.
func (c *CachedSource) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		metrics.CacheUp.Set(0)
		c.log.Warn("catalog cache degraded, serving from source", "error", err)
	} else {
		metrics.CacheUp.Set(1)
	}

	if p, ok := c.next.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// CreateBooking implements Source.CreateBooking.
func (c *CachedSource) CreateBooking(ctx context.Context) (domain.Booking, error) {
	return c.next.CreateBooking(ctx)
}

// GetBooking implements Source.GetBooking.
func (c *CachedSource) GetBooking(ctx context.Context, bookingID string) (domain.Booking, error) {
	return c.next.GetBooking(ctx, bookingID)
}

// GetAvailableVehicles implements Source.GetAvailableVehicles.
func (c *CachedSource) GetAvailableVehicles(ctx context.Context, bookingID string) ([]domain.Vehicle, error) {
	return cached(ctx, c, kindVehicles, bookingID, c.next.GetAvailableVehicles)
}

// GetAvailableProtections implements Source.GetAvailableProtections.
func (c *CachedSource) GetAvailableProtections(
	ctx context.Context,
	bookingID string,
) ([]domain.ProtectionPackage, error) {
	return cached(ctx, c, kindProtections, bookingID, c.next.GetAvailableProtections)
}

// GetAvailableAddons implements Source.GetAvailableAddons.
func (c *CachedSource) GetAvailableAddons(ctx context.Context, bookingID string) ([]domain.Addon, error) {
	return cached(ctx, c, kindAddons, bookingID, c.next.GetAvailableAddons)
}

// Invalidate drops every cached catalog of a booking.
func (c *CachedSource) Invalidate(ctx context.Context, bookingID string) error {
	keys := []string{
		c.key(kindVehicles, bookingID),
		c.key(kindProtections, bookingID),
		c.key(kindAddons, bookingID),
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("invalidating catalogs for booking %s: %w", bookingID, err)
	}
	return nil
}

func (c *CachedSource) key(kind, bookingID string) string {
	return c.prefix + ":" + kind + ":" + bookingID
}

func cached[T any](
	ctx context.Context,
	c *CachedSource,
	kind, bookingID string,
	fetch func(context.Context, string) ([]T, error),
) ([]T, error) {
	key := c.key(kind, bookingID)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var items []T
		if jerr := json.Unmarshal(raw, &items); jerr == nil {
			metrics.CacheHitsTotal.WithLabelValues(kind).Inc()
			return items, nil
		}
		c.log.Warn("discarding corrupt cache entry", "key", key)
	case errors.Is(err, redis.Nil):
	default:
		c.log.Warn("catalog cache read failed", "key", key, "error", err)
	}
	metrics.CacheMissesTotal.WithLabelValues(kind).Inc()

	items, err := fetch(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(items)
	if err != nil {
		c.log.Warn("encoding catalog for cache failed", "key", key, "error", err)
		return items, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("catalog cache write failed", "key", key, "error", err)
	}
	return items, nil
}
