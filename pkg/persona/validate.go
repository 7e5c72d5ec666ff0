package persona

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// ErrInvalidPersona is returned by Validate for personas outside the allowed
// enum values or ranges.
var ErrInvalidPersona = errors.New("invalid persona")

var (
	tripPurposes = []domain.TripPurpose{
		domain.TripBusiness, domain.TripVacation, domain.TripVisitingFamily,
		domain.TripWeekend, domain.TripMoving,
	}
	groupTypes = []domain.GroupType{
		domain.GroupSolo, domain.GroupCouple, domain.GroupFamily, domain.GroupFriends,
	}
	levels   = []domain.Level{domain.LevelLow, domain.LevelMedium, domain.LevelHigh}
	luggages = []domain.LuggageLevel{
		domain.LuggageLight, domain.LuggageNormal, domain.LuggageALot,
	}
	brands = []domain.BrandPreference{
		domain.BrandNone, domain.BrandLikesPremium, domain.BrandMustBePremium,
	}
	ecos = []domain.EcoPreference{
		domain.EcoNoPreference, domain.EcoLikesHybrid, domain.EcoWantsEV,
	}
	styles = []domain.DrivingStyle{
		domain.DrivingCalm, domain.DrivingNormal, domain.DrivingSporty,
	}
	risks   = []domain.RiskAttitude{domain.RiskAverse, domain.RiskBalanced, domain.RiskTaker}
	uptakes = []domain.InsuranceUptake{
		domain.UptakeAlways, domain.UptakeSometimes, domain.UptakeNever,
	}
	tones = []domain.Tone{domain.ToneFormal, domain.ToneCasual}
)

const acrissClasses = "MECISFPLX"

// Validate checks that every enum field holds an allowed value, that group
// size and trip duration are positive, and that ideal categories are known
// single-letter ACRISS classes. All problems are reported together.
func Validate(p *domain.Persona) error {
	var errs []error

	if p.ID == "" {
		errs = append(errs, errors.New("id is required"))
	}
	if p.GroupSize < 1 {
		errs = append(errs, fmt.Errorf("group_size %d must be at least 1", p.GroupSize))
	}
	if p.TripDurationDays < 1 {
		errs = append(errs, fmt.Errorf("trip_duration_days %d must be at least 1", p.TripDurationDays))
	}

	errs = appendEnum(errs, "trip_purpose", p.TripPurpose, tripPurposes)
	errs = appendEnum(errs, "group_type", p.GroupType, groupTypes)
	errs = appendEnum(errs, "luggage_level", p.LuggageLevel, luggages)
	errs = appendEnum(errs, "comfort_preference", p.ComfortPreference, levels)
	errs = appendEnum(errs, "brand_preference", p.BrandPreference, brands)
	errs = appendEnum(errs, "eco_preference", p.EcoPreference, ecos)
	errs = appendEnum(errs, "driving_style", p.DrivingStyle, styles)
	errs = appendEnum(errs, "tech_affinity", p.TechAffinity, levels)
	errs = appendEnum(errs, "price_sensitivity", p.PriceSensitivity, levels)
	errs = appendEnum(errs, "risk_attitude", p.RiskAttitude, risks)
	errs = appendEnum(errs, "previous_insurance_uptake", p.PreviousInsuranceUptake, uptakes)
	errs = appendEnum(errs, "franchise_tolerance", p.FranchiseTolerance, levels)
	errs = appendEnum(errs, "tone_of_voice", p.ToneOfVoice, tones)

	for _, c := range p.IdealCategory {
		if len(c) != 1 || !strings.Contains(acrissClasses, c) {
			errs = append(errs, fmt.Errorf("ideal_category %q is not an ACRISS class", c))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPersona, errors.Join(errs...))
	}
	return nil
}

func appendEnum[T ~string](errs []error, field string, v T, allowed []T) []error {
	if slices.Contains(allowed, v) {
		return errs
	}
	return append(errs, fmt.Errorf("%s %q is not one of %v", field, v, allowed))
}
