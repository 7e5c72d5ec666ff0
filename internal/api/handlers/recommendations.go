package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/rental-upsell/internal/datasource"
	"github.com/donaldgifford/rental-upsell/internal/engine"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// Recommender computes recommendations for bookings.
type Recommender interface {
	CreateBooking(ctx context.Context) (domain.Booking, error)
	Recommend(ctx context.Context, bookingID, personaID, fromVehicleID string) (*domain.RecommendationResult, error)
}

// Simulator runs every catalog persona against a booking.
type Simulator interface {
	Simulate(ctx context.Context, bookingID string) (*engine.Simulation, error)
}

// Snapshotter loads a fresh booking and its catalogs from the data source.
type Snapshotter interface {
	Snapshot(ctx context.Context) (*engine.Snapshot, error)
}

// RecommendationHandler handles recommendation, simulation and data source
// debug endpoints.
type RecommendationHandler struct {
	recommender Recommender
	simulator   Simulator
	snapshotter Snapshotter
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(r Recommender, s Simulator, snap Snapshotter) *RecommendationHandler {
	return &RecommendationHandler{recommender: r, simulator: s, snapshotter: snap}
}

// --- Input/Output types ---

// RecommendationInput is the input for computing a recommendation.
type RecommendationInput struct {
	BookingID string `query:"booking_id" doc:"Booking to recommend for; a new booking is created when empty"`
	PersonaID string `query:"persona_id" doc:"Force a catalog persona instead of inferring one"`
	VehicleID string `query:"vehicle_id" doc:"Vehicle the customer currently has"`
}

// RecommendationOutput is the response for a recommendation.
type RecommendationOutput struct {
	Body struct {
		BookingID         string                       `json:"booking_id"`
		CreatedNewBooking bool                         `json:"created_new_booking"`
		Recommendations   *domain.RecommendationResult `json:"recommendations"`
	}
}

// SimulateInput is the input for a persona simulation.
type SimulateInput struct {
	BookingID string `query:"booking_id" doc:"Booking whose vehicles are ranked; a new booking is created when empty"`
}

// SimulateOutput is the response for a persona simulation.
type SimulateOutput struct {
	Body *engine.Simulation
}

// SnapshotOutput is the response for the data source debug endpoint.
type SnapshotOutput struct {
	Body *engine.Snapshot
}

// --- Handlers ---

// GetRecommendation computes the final offer, car upgrade and protection
// offer for a booking.
func (h *RecommendationHandler) GetRecommendation(
	ctx context.Context,
	input *RecommendationInput,
) (*RecommendationOutput, error) {
	bookingID := input.BookingID
	created := false

	if bookingID == "" {
		b, err := h.recommender.CreateBooking(ctx)
		if err != nil {
			return nil, huma.Error500InternalServerError("creating booking failed: " + err.Error())
		}
		bookingID = b.ID
		created = true
	}

	result, err := h.recommender.Recommend(ctx, bookingID, input.PersonaID, input.VehicleID)
	if err != nil {
		if errors.Is(err, datasource.ErrNotFound) {
			return nil, huma.Error404NotFound("booking not found")
		}
		return nil, huma.Error500InternalServerError("recommendation failed: " + err.Error())
	}

	resp := &RecommendationOutput{}
	resp.Body.BookingID = bookingID
	resp.Body.CreatedNewBooking = created
	resp.Body.Recommendations = result
	return resp, nil
}

// Simulate ranks a booking's vehicles for every catalog persona.
func (h *RecommendationHandler) Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error) {
	sim, err := h.simulator.Simulate(ctx, input.BookingID)
	if err != nil {
		if errors.Is(err, datasource.ErrNotFound) {
			return nil, huma.Error404NotFound("booking not found")
		}
		return nil, huma.Error500InternalServerError("simulation failed: " + err.Error())
	}
	return &SimulateOutput{Body: sim}, nil
}

// Snapshot creates a booking and returns everything the data source holds
// for it.
func (h *RecommendationHandler) Snapshot(ctx context.Context, _ *struct{}) (*SnapshotOutput, error) {
	snap, err := h.snapshotter.Snapshot(ctx)
	if err != nil {
		return nil, huma.Error502BadGateway("data source error: " + err.Error())
	}
	return &SnapshotOutput{Body: snap}, nil
}

// RegisterRecommendationRoutes registers recommendation endpoints with the
// Huma API.
func RegisterRecommendationRoutes(api huma.API, h *RecommendationHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-recommendations",
		Method:      http.MethodGet,
		Path:        "/api/v1/recommendations",
		Summary:     "Get recommendations for a booking",
		Description: "Infers a persona for the booking, scores its vehicles and protection packages " +
			"and returns the car upgrade, the protection offer and the single final offer.",
		Tags:   []string{"recommendations"},
		Errors: []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetRecommendation)

	huma.Register(api, huma.Operation{
		OperationID: "simulate-personas",
		Method:      http.MethodGet,
		Path:        "/api/v1/simulate",
		Summary:     "Simulate every persona",
		Description: "Ranks the booking's vehicles for each catalog persona and reports the best, " +
			"worst and upgrade outcome per persona.",
		Tags:   []string{"recommendations"},
		Errors: []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.Simulate)

	huma.Register(api, huma.Operation{
		OperationID: "debug-datasource",
		Method:      http.MethodGet,
		Path:        "/api/v1/debug/datasource",
		Summary:     "Snapshot the data source",
		Description: "Creates a booking and fetches its details, vehicles, protections and addons.",
		Tags:        []string{"debug"},
		Errors:      []int{http.StatusBadGateway},
	}, h.Snapshot)
}
