package engine

import (
	"context"
	"fmt"

	"github.com/donaldgifford/rental-upsell/pkg/decision"
	"github.com/donaldgifford/rental-upsell/pkg/persona"
	score "github.com/donaldgifford/rental-upsell/pkg/scorer"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// PersonaOutcome is how one catalog persona ranks a vehicle catalog.
type PersonaOutcome struct {
	PersonaID    string               `json:"persona_id"`
	PersonaLabel string               `json:"persona_label"`
	Best         domain.ScoredVehicle `json:"best"`
	Worst        domain.ScoredVehicle `json:"worst"`
	// Upgrade is the upgrade from Worst, nil when none qualifies.
	Upgrade         *domain.ScoredVehicle `json:"upgrade,omitempty"`
	PriceDifference float64               `json:"price_difference"`
}

// Simulation is the result of running every catalog persona against the
// vehicles of one booking.
type Simulation struct {
	BookingID string           `json:"booking_id"`
	Outcomes  []PersonaOutcome `json:"outcomes"`
}

// Simulate ranks the vehicle catalog of bookingID for each catalog persona
// and looks for an upgrade from the lowest-ranked vehicle. An empty
// bookingID creates a new booking first.
func (eng *Engine) Simulate(ctx context.Context, bookingID string) (*Simulation, error) {
	if bookingID == "" {
		b, err := eng.CreateBooking(ctx)
		if err != nil {
			return nil, err
		}
		bookingID = b.ID
	}

	vehicles, err := eng.source.GetAvailableVehicles(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("fetching vehicles for booking %s: %w", bookingID, err)
	}

	catalog := persona.Catalog()
	sim := &Simulation{
		BookingID: bookingID,
		Outcomes:  make([]PersonaOutcome, 0, len(catalog)),
	}

	for _, p := range catalog {
		tags := persona.UserTags(p)
		ranked := score.RankVehicles(p, tags, vehicles)
		if len(ranked) == 0 {
			eng.log.Debug("no vehicles left after ranking", "persona_id", p.ID)
			continue
		}

		out := PersonaOutcome{
			PersonaID:    p.ID,
			PersonaLabel: p.Label,
			Best:         ranked[0],
			Worst:        ranked[len(ranked)-1],
		}
		if pairing, ok := decision.SelectUpgrade(ranked, vehicles, nil, "", nil); ok {
			out.Upgrade = &pairing.To
			out.PriceDifference = pairing.PriceDifference
		}
		sim.Outcomes = append(sim.Outcomes, out)
	}

	eng.log.Info("simulation complete",
		"booking_id", bookingID,
		"personas", len(sim.Outcomes),
		"vehicles", len(vehicles),
	)

	return sim, nil
}
