// Package engine orchestrates a recommendation: it loads a booking and its
// catalogs, scores every candidate for the booking's persona, arbitrates
// between a car upgrade and a protection offer, and builds the sales copy.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/rental-upsell/internal/datasource"
	"github.com/donaldgifford/rental-upsell/internal/metrics"
	"github.com/donaldgifford/rental-upsell/pkg/decision"
	"github.com/donaldgifford/rental-upsell/pkg/message"
	"github.com/donaldgifford/rental-upsell/pkg/persona"
	score "github.com/donaldgifford/rental-upsell/pkg/scorer"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// Engine computes recommendations for bookings.
type Engine struct {
	source   datasource.Source
	selector *persona.Selector
	builder  *message.Builder
	log      *slog.Logger
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithSelector sets the persona selector.
func WithSelector(s *persona.Selector) EngineOption {
	return func(e *Engine) {
		e.selector = s
	}
}

// WithBuilder sets the message builder. The default builder never refines.
func WithBuilder(b *message.Builder) EngineOption {
	return func(e *Engine) {
		e.builder = b
	}
}

// NewEngine creates a new Engine reading from src.
func NewEngine(src datasource.Source, opts ...EngineOption) *Engine {
	eng := &Engine{
		source: src,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.selector == nil {
		eng.selector = persona.NewSelector(persona.WithSelectorLogger(eng.log))
	}
	if eng.builder == nil {
		eng.builder = message.NewBuilder(message.Config{}, message.WithLogger(eng.log))
	}
	return eng
}

// Source returns the data source the engine reads from.
func (eng *Engine) Source() datasource.Source {
	return eng.source
}

// Recommend computes the recommendation for bookingID. personaID forces a
// catalog persona and fromVehicleID forces the vehicle the customer is
// assumed to have; both may be empty. Only data source failures are
// returned as errors.
func (eng *Engine) Recommend(
	ctx context.Context,
	bookingID, personaID, fromVehicleID string,
) (*domain.RecommendationResult, error) {
	start := time.Now()
	defer func() {
		metrics.RecommendationDuration.Observe(time.Since(start).Seconds())
	}()

	result, err := eng.recommend(ctx, bookingID, personaID, fromVehicleID)
	if err != nil {
		metrics.RecommendationErrorsTotal.Inc()
		return nil, err
	}

	metrics.RecommendationsTotal.WithLabelValues(string(result.FinalOffer.Type)).Inc()
	metrics.PrimaryOfferTotal.WithLabelValues(string(result.PrimaryOfferType)).Inc()
	if len(result.CarCandidates) > 0 {
		metrics.VehicleScoreDistribution.Observe(result.CarCandidates[0].TotalScore)
	}
	if len(result.ProtectionCandidates) > 0 {
		metrics.ProtectionScoreDistribution.Observe(result.ProtectionCandidates[0].TotalScore)
	}

	eng.log.Info("recommendation computed",
		"booking_id", result.BookingID,
		"persona_id", result.Persona.ID,
		"final_offer", result.FinalOffer.Type,
		"primary_offer_type", result.PrimaryOfferType,
		"car_candidates", len(result.CarCandidates),
		"protection_candidates", len(result.ProtectionCandidates),
		"car_upgrade", result.BestCarOffer != nil,
	)

	return result, nil
}

func (eng *Engine) recommend(
	ctx context.Context,
	bookingID, personaID, fromVehicleID string,
) (*domain.RecommendationResult, error) {
	booking, err := eng.source.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("fetching booking %s: %w", bookingID, err)
	}

	sel := eng.selector.ForBooking(booking, personaID)
	p, userTags := sel.Persona, sel.UserTags

	vehicles, protections, err := eng.fetchCatalogs(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	scoredVehicles := score.RankVehicles(p, userTags, vehicles)
	scoredProtections := score.RankProtections(p, userTags, protections)

	var (
		bestCar        *domain.ScoredVehicle
		bestProtection *domain.ScoredProtection
	)
	if len(scoredVehicles) > 0 {
		bestCar = &scoredVehicles[0]
	}
	if len(scoredProtections) > 0 {
		bestProtection = &scoredProtections[0]
	}

	dec := decision.Arbitrate(&p, bestCar, bestProtection)

	result := &domain.RecommendationResult{
		BookingID:            bookingID,
		Booking:              booking,
		Persona:              p,
		UserTags:             userTags,
		CarCandidates:        scoredVehicles,
		ProtectionCandidates: scoredProtections,
		PrimaryOfferType:     dec.PrimaryOfferType,
		FinalOffer:           dec.FinalOffer,
	}

	rescore := func(v domain.Vehicle) domain.ScoredVehicle {
		return score.ScoreVehicle(p, userTags, v)
	}
	if pairing, ok := decision.SelectUpgrade(scoredVehicles, vehicles, &booking, fromVehicleID, rescore); ok {
		metrics.CarUpgradeTotal.WithLabelValues("found").Inc()
		result.BestCarOffer = eng.carOffer(ctx, p, userTags, pairing)
	} else {
		metrics.CarUpgradeTotal.WithLabelValues("missing").Inc()
		eng.log.Debug("no car upgrade available",
			"booking_id", bookingID,
			"from_vehicle_id", pairing.From.Vehicle.ID,
		)
	}

	if bestProtection != nil {
		result.BestProtectionOffer = eng.protectionOffer(ctx, p, userTags, bestProtection)
	}

	return result, nil
}

// fetchCatalogs loads vehicles and protections concurrently.
func (eng *Engine) fetchCatalogs(
	ctx context.Context,
	bookingID string,
) ([]domain.Vehicle, []domain.ProtectionPackage, error) {
	var (
		vehicles    []domain.Vehicle
		protections []domain.ProtectionPackage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		vehicles, err = eng.source.GetAvailableVehicles(gctx, bookingID)
		if err != nil {
			return fmt.Errorf("fetching vehicles for booking %s: %w", bookingID, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		protections, err = eng.source.GetAvailableProtections(gctx, bookingID)
		if err != nil {
			return fmt.Errorf("fetching protections for booking %s: %w", bookingID, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return vehicles, protections, nil
}

func (eng *Engine) carOffer(
	ctx context.Context,
	p domain.Persona,
	userTags []domain.Tag,
	pairing decision.Pairing,
) *domain.CarUpgradeOffer {
	msg := eng.builder.CarUpgrade(ctx, &message.CarUpgrade{
		Persona:  p,
		UserTags: userTags,
		From:     pairing.From.Vehicle,
		FromTags: pairing.From.Tags,
		To:       pairing.To.Vehicle,
		ToTags:   pairing.To.Tags,
	})
	return &domain.CarUpgradeOffer{
		FromVehicle:     pairing.From.Vehicle,
		ToVehicle:       pairing.To.Vehicle,
		FromTags:        pairing.From.Tags,
		ToTags:          pairing.To.Tags,
		Message:         msg,
		Score:           pairing.To.TotalScore,
		PriceDifference: pairing.PriceDifference,
	}
}

func (eng *Engine) protectionOffer(
	ctx context.Context,
	p domain.Persona,
	userTags []domain.Tag,
	best *domain.ScoredProtection,
) *domain.ProtectionUpgradeOffer {
	msg := eng.builder.Protection(ctx, &message.ProtectionUpgrade{
		Persona:    p,
		UserTags:   userTags,
		Protection: best.Protection,
		Tags:       best.Tags,
	})
	return &domain.ProtectionUpgradeOffer{
		Protection:      best.Protection,
		Tags:            best.Tags,
		Message:         msg,
		Score:           best.TotalScore,
		PriceDifference: best.Protection.DailyPrice(),
	}
}

// ObserveRefinement records refinement metrics. Pass it to
// message.WithRefineObserver.
func ObserveRefinement(kind domain.MessageType, elapsed time.Duration, err error) {
	metrics.RefinementDuration.WithLabelValues(string(kind)).Observe(elapsed.Seconds())
	if err != nil {
		metrics.RefinementFallbacksTotal.WithLabelValues(string(kind)).Inc()
	}
}
