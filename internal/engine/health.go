package engine

import (
	"context"
	"fmt"

	"github.com/donaldgifford/rental-upsell/internal/datasource"
)

// CheckHealth reports whether the data source is reachable. Sources that
// cannot be health checked are assumed healthy.
func (eng *Engine) CheckHealth(ctx context.Context) error {
	p, ok := eng.source.(datasource.Pinger)
	if !ok {
		return nil
	}
	if err := p.Ping(ctx); err != nil {
		return fmt.Errorf("checking data source: %w", err)
	}
	return nil
}

// RunCanary creates a fresh booking and computes a recommendation for it,
// exercising the whole pipeline against the live data source.
func (eng *Engine) RunCanary(ctx context.Context) error {
	b, err := eng.CreateBooking(ctx)
	if err != nil {
		return fmt.Errorf("running canary: %w", err)
	}

	result, err := eng.Recommend(ctx, b.ID, "", "")
	if err != nil {
		return fmt.Errorf("recommending for canary booking: %w", err)
	}

	eng.log.Info("canary recommendation complete",
		"booking_id", b.ID,
		"persona_id", result.Persona.ID,
		"final_offer", result.FinalOffer.Type,
	)
	return nil
}
