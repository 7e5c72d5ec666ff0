// Package score computes weighted multi-factor scores for vehicles and
// protection packages against a customer persona.
package score

import (
	"slices"

	"github.com/donaldgifford/rental-upsell/pkg/tagging"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// VehicleWeights defines the relative importance of each vehicle factor.
// Positive factors are added, penalties subtracted.
type VehicleWeights struct {
	TagMatch      float64 `json:"tag_match"`
	SpaceFit      float64 `json:"space_fit"`
	EcoMatch      float64 `json:"eco_match"`
	BrandPremium  float64 `json:"brand_premium"`
	CategoryMatch float64 `json:"category_match"`
	PricePenalty  float64 `json:"price_penalty"`
	Distance      float64 `json:"distance_penalty"`
}

// DefaultVehicleWeights returns the base vehicle weights before persona
// adjustments.
func DefaultVehicleWeights() VehicleWeights {
	return VehicleWeights{
		TagMatch:      4,
		SpaceFit:      3,
		EcoMatch:      2,
		BrandPremium:  1,
		CategoryMatch: 3,
		PricePenalty:  2,
		Distance:      1,
	}
}

// VehicleWeightsFor returns the default weights adjusted for p.
func VehicleWeightsFor(p *domain.Persona) VehicleWeights {
	w := DefaultVehicleWeights()

	if p.GroupType == domain.GroupFamily {
		w.SpaceFit += 2
		w.TagMatch++
	}
	if p.TripPurpose == domain.TripBusiness {
		w.BrandPremium++
	}
	if p.EcoPreference == domain.EcoWantsEV {
		w.EcoMatch += 2
	}
	if p.PriceSensitivity == domain.LevelHigh {
		w.PricePenalty += 2
	}

	return w
}

// SensitivityMultiplier scales price penalties by how price-sensitive the
// persona is. Unknown levels are treated as low.
func SensitivityMultiplier(level domain.Level) float64 {
	switch level {
	case domain.LevelHigh:
		return 2
	case domain.LevelMedium:
		return 1
	default:
		return 0.5
	}
}

// ScoreVehicle scores one vehicle against a persona and its user tags. It is
// a pure function of its inputs.
func ScoreVehicle(p domain.Persona, userTags []domain.Tag, v domain.Vehicle) domain.ScoredVehicle {
	tags := tagging.CarTags(v)
	w := VehicleWeightsFor(&p)

	sv := domain.ScoredVehicle{
		Vehicle:         v,
		Tags:            tags,
		MatchScore:      tagMatch(userTags, tags),
		SpaceFit:        spaceFit(&p, userTags, &v, tags),
		EcoMatch:        ecoMatch(p.EcoPreference, tags),
		BrandPremium:    indicator(domain.HasTag(tags, tagging.TagPremiumBrand)),
		CategoryMatch:   categoryMatch(&p, v),
		PricePenalty:    vehiclePricePenalty(&v, p.PriceSensitivity),
		DistancePenalty: 0,
	}

	sv.TotalScore = w.TagMatch*sv.MatchScore +
		w.SpaceFit*sv.SpaceFit +
		w.EcoMatch*sv.EcoMatch +
		w.BrandPremium*sv.BrandPremium +
		w.CategoryMatch*sv.CategoryMatch -
		w.PricePenalty*sv.PricePenalty -
		w.Distance*sv.DistancePenalty

	return sv
}

// tagMatch is the fraction of user tags the vehicle satisfies.
func tagMatch(userTags, carTags []domain.Tag) float64 {
	if len(userTags) == 0 {
		return 0
	}
	n := 0
	for _, t := range userTags {
		if slices.Contains(carTags, t) {
			n++
		}
	}
	return float64(n) / float64(len(userTags))
}

func spaceFit(p *domain.Persona, userTags []domain.Tag, v *domain.Vehicle, tags []domain.Tag) float64 {
	seatsFit := v.Seats >= p.GroupSize

	needsSpace := p.GroupType == domain.GroupFamily || domain.HasTag(userTags, tagging.TagNeedsSpacious)
	if !needsSpace {
		return indicator(seatsFit)
	}

	roomy := domain.HasTag(tags, tagging.TagNeedsSpacious) ||
		domain.HasTag(tags, tagging.TagSevenSeats) ||
		domain.HasTag(tags, tagging.TagVan) ||
		domain.HasTag(tags, tagging.TagSUV)
	return indicator(seatsFit || roomy)
}

func ecoMatch(pref domain.EcoPreference, tags []domain.Tag) float64 {
	switch pref {
	case domain.EcoWantsEV:
		switch {
		case domain.HasTag(tags, tagging.TagEV):
			return 1
		case domain.HasTag(tags, tagging.TagHybrid):
			return 0.5
		}
	case domain.EcoLikesHybrid:
		switch {
		case domain.HasTag(tags, tagging.TagHybrid):
			return 1
		case domain.HasTag(tags, tagging.TagEV):
			return 0.8
		case domain.HasTag(tags, tagging.TagLikesEco):
			return 0.5
		}
	}
	return 0
}

func categoryMatch(p *domain.Persona, v domain.Vehicle) float64 {
	if len(p.IdealCategory) == 0 {
		return 0
	}
	code, ok := tagging.CategoryCode(v)
	if !ok {
		return 0
	}
	return indicator(p.PrefersCategory(code))
}

func vehiclePricePenalty(v *domain.Vehicle, sensitivity domain.Level) float64 {
	if v.Price == nil {
		return 0
	}
	return *v.Price / 100 * SensitivityMultiplier(sensitivity)
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
