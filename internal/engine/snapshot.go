package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// Snapshot is everything the data source holds for one booking.
type Snapshot struct {
	Booking     domain.Booking             `json:"booking"`
	Vehicles    []domain.Vehicle           `json:"vehicles"`
	Protections []domain.ProtectionPackage `json:"protections"`
	Addons      []domain.Addon             `json:"addons"`
}

// CreateBooking opens a new booking at the data source.
func (eng *Engine) CreateBooking(ctx context.Context) (domain.Booking, error) {
	b, err := eng.source.CreateBooking(ctx)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("creating booking: %w", err)
	}
	eng.log.Debug("booking created", "booking_id", b.ID)
	return b, nil
}

// Snapshot creates a booking and loads its details and catalogs
// concurrently. It is a smoke test of the data source.
func (eng *Engine) Snapshot(ctx context.Context) (*Snapshot, error) {
	created, err := eng.CreateBooking(ctx)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{}
	id := created.ID

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := eng.source.GetBooking(gctx, id)
		if err != nil {
			return fmt.Errorf("fetching booking %s: %w", id, err)
		}
		snap.Booking = b
		return nil
	})
	g.Go(func() error {
		v, err := eng.source.GetAvailableVehicles(gctx, id)
		if err != nil {
			return fmt.Errorf("fetching vehicles for booking %s: %w", id, err)
		}
		snap.Vehicles = v
		return nil
	})
	g.Go(func() error {
		p, err := eng.source.GetAvailableProtections(gctx, id)
		if err != nil {
			return fmt.Errorf("fetching protections for booking %s: %w", id, err)
		}
		snap.Protections = p
		return nil
	})
	g.Go(func() error {
		a, err := eng.source.GetAvailableAddons(gctx, id)
		if err != nil {
			return fmt.Errorf("fetching addons for booking %s: %w", id, err)
		}
		snap.Addons = a
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return snap, nil
}
