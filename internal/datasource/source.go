// Package datasource provides the booking and catalog data the upsell engine
// works on, abstracted behind the Source interface for testability.
package datasource

import (
	"context"
	"errors"

	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// ErrNotFound is returned when a booking does not exist.
var ErrNotFound = errors.New("not found")

// Source supplies bookings and the catalogs available for them.
type Source interface {
	CreateBooking(ctx context.Context) (domain.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (domain.Booking, error)
	GetAvailableVehicles(ctx context.Context, bookingID string) ([]domain.Vehicle, error)
	GetAvailableProtections(ctx context.Context, bookingID string) ([]domain.ProtectionPackage, error)
	GetAvailableAddons(ctx context.Context, bookingID string) ([]domain.Addon, error)
}

// Pinger is implemented by sources that can report whether their backing
// store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
