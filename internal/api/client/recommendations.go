package client

import (
	"context"
	"net/url"

	"github.com/donaldgifford/rental-upsell/internal/engine"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// RecommendationParams selects what to recommend. Every field is optional;
// without a booking id the server creates a new booking.
type RecommendationParams struct {
	BookingID string
	PersonaID string
	VehicleID string
}

// RecommendationResponse is the body of GET /api/v1/recommendations.
type RecommendationResponse struct {
	BookingID         string                       `json:"booking_id"`
	CreatedNewBooking bool                         `json:"created_new_booking"`
	Recommendations   *domain.RecommendationResult `json:"recommendations"`
}

// GetRecommendations computes the recommendation for a booking.
func (c *Client) GetRecommendations(ctx context.Context, p RecommendationParams) (*RecommendationResponse, error) {
	q := url.Values{}
	q.Set("booking_id", p.BookingID)
	q.Set("persona_id", p.PersonaID)
	q.Set("vehicle_id", p.VehicleID)

	var resp RecommendationResponse
	if err := c.get(ctx, "/api/v1/recommendations", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Simulate ranks a booking's vehicles for every catalog persona. An empty
// bookingID lets the server create one.
func (c *Client) Simulate(ctx context.Context, bookingID string) (*engine.Simulation, error) {
	q := url.Values{}
	q.Set("booking_id", bookingID)

	var sim engine.Simulation
	if err := c.get(ctx, "/api/v1/simulate", q, &sim); err != nil {
		return nil, err
	}
	return &sim, nil
}
