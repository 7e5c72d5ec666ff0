// Package persona holds the built-in customer persona catalog, the mapping
// from a persona to user-intent tags, and the heuristics that pick a persona
// for a booking.
package persona

import domain "github.com/donaldgifford/rental-upsell/pkg/types"

// Catalog persona ids.
const (
	FamilyHolidayPlanner  = "family_holiday_planner"
	TimePressedConsultant = "time_pressed_consultant"
	BudgetBackpacker      = "budget_backpacker"
	EcoConsciousUrbanite  = "eco_conscious_urbanite"
	WeekendGetawayCouple  = "weekend_getaway_couple"
	LuxuryEnthusiast      = "luxury_enthusiast"
	DigitalNomad          = "digital_nomad"
	SportsTeamOrganizer   = "sports_team_organizer"
	RelocatingMover       = "relocating_mover"
	RetiredExplorers      = "retired_explorers"
)

var catalog = []domain.Persona{
	{
		ID:                      FamilyHolidayPlanner,
		Label:                   "Family Holiday Planner",
		Description:             "Organizing the annual family vacation. Values safety and space above all else and wants a stress-free experience.",
		TripPurpose:             domain.TripVacation,
		GroupType:               domain.GroupFamily,
		GroupSize:               4,
		TripDurationDays:        10,
		LuggageLevel:            domain.LuggageALot,
		ComfortPreference:       domain.LevelHigh,
		BrandPreference:         domain.BrandNone,
		EcoPreference:           domain.EcoNoPreference,
		DrivingStyle:            domain.DrivingCalm,
		TechAffinity:            domain.LevelMedium,
		PriceSensitivity:        domain.LevelMedium,
		RiskAttitude:            domain.RiskAverse,
		PreviousInsuranceUptake: domain.UptakeAlways,
		FranchiseTolerance:      domain.LevelLow,
		Language:                "en",
		ToneOfVoice:             domain.ToneCasual,
	},
	{
		ID:                      TimePressedConsultant,
		Label:                   "Time-Pressed Consultant",
		Description:             "Traveling for business. Needs efficiency and reliability and will pay for convenience and premium comfort.",
		TripPurpose:             domain.TripBusiness,
		GroupType:               domain.GroupSolo,
		GroupSize:               1,
		TripDurationDays:        2,
		LuggageLevel:            domain.LuggageLight,
		ComfortPreference:       domain.LevelHigh,
		BrandPreference:         domain.BrandLikesPremium,
		EcoPreference:           domain.EcoNoPreference,
		DrivingStyle:            domain.DrivingNormal,
		TechAffinity:            domain.LevelHigh,
		PriceSensitivity:        domain.LevelLow,
		RiskAttitude:            domain.RiskBalanced,
		PreviousInsuranceUptake: domain.UptakeSometimes,
		FranchiseTolerance:      domain.LevelMedium,
		WantsFastPickup:         true,
		Language:                "en",
		ToneOfVoice:             domain.ToneFormal,
	},
	{
		ID:                      BudgetBackpacker,
		Label:                   "Budget Backpacker",
		Description:             "Exploring on a shoestring budget. Prioritizes cost over comfort.",
		TripPurpose:             domain.TripVacation,
		GroupType:               domain.GroupFriends,
		GroupSize:               2,
		TripDurationDays:        14,
		LuggageLevel:            domain.LuggageNormal,
		ComfortPreference:       domain.LevelLow,
		BrandPreference:         domain.BrandNone,
		EcoPreference:           domain.EcoNoPreference,
		DrivingStyle:            domain.DrivingNormal,
		TechAffinity:            domain.LevelLow,
		PriceSensitivity:        domain.LevelHigh,
		RiskAttitude:            domain.RiskTaker,
		PreviousInsuranceUptake: domain.UptakeNever,
		FranchiseTolerance:      domain.LevelHigh,
		Language:                "en",
		ToneOfVoice:             domain.ToneCasual,
	},
	{
		ID:                      EcoConsciousUrbanite,
		Label:                   "Eco-Conscious Urbanite",
		Description:             "City dweller going on a trip. Cares about sustainability and carbon footprint and prefers modern tech.",
		TripPurpose:             domain.TripVisitingFamily,
		GroupType:               domain.GroupCouple,
		GroupSize:               2,
		TripDurationDays:        3,
		LuggageLevel:            domain.LuggageNormal,
		ComfortPreference:       domain.LevelMedium,
		BrandPreference:         domain.BrandNone,
		EcoPreference:           domain.EcoWantsEV,
		DrivingStyle:            domain.DrivingCalm,
		TechAffinity:            domain.LevelHigh,
		PriceSensitivity:        domain.LevelMedium,
		RiskAttitude:            domain.RiskBalanced,
		PreviousInsuranceUptake: domain.UptakeSometimes,
		FranchiseTolerance:      domain.LevelMedium,
		Language:                "en",
		ToneOfVoice:             domain.ToneCasual,
	},
	{
		ID:                      WeekendGetawayCouple,
		Label:                   "Weekend Getaway Couple",
		Description:             "Escaping the daily grind for a romantic weekend. Wants a nice car but minds the budget.",
		TripPurpose:             domain.TripWeekend,
		GroupType:               domain.GroupCouple,
		GroupSize:               2,
		TripDurationDays:        3,
		LuggageLevel:            domain.LuggageLight,
		ComfortPreference:       domain.LevelMedium,
		BrandPreference:         domain.BrandLikesPremium,
		EcoPreference:           domain.EcoLikesHybrid,
		DrivingStyle:            domain.DrivingNormal,
		TechAffinity:            domain.LevelMedium,
		PriceSensitivity:        domain.LevelMedium,
		RiskAttitude:            domain.RiskBalanced,
		PreviousInsuranceUptake: domain.UptakeSometimes,
		FranchiseTolerance:      domain.LevelMedium,
		WantsFastPickup:         true,
		Language:                "en",
		ToneOfVoice:             domain.ToneCasual,
	},
	{
		ID:                      LuxuryEnthusiast,
		Label:                   "Luxury Enthusiast",
		Description:             "Wants to drive the best cars available. Values status, performance and premium features over price.",
		TripPurpose:             domain.TripVacation,
		GroupType:               domain.GroupSolo,
		GroupSize:               1,
		TripDurationDays:        5,
		LuggageLevel:            domain.LuggageNormal,
		ComfortPreference:       domain.LevelHigh,
		BrandPreference:         domain.BrandMustBePremium,
		EcoPreference:           domain.EcoNoPreference,
		DrivingStyle:            domain.DrivingSporty,
		TechAffinity:            domain.LevelHigh,
		PriceSensitivity:        domain.LevelLow,
		RiskAttitude:            domain.RiskTaker,
		PreviousInsuranceUptake: domain.UptakeAlways,
		FranchiseTolerance:      domain.LevelLow,
		WantsFastPickup:         true,
		Language:                "en",
		ToneOfVoice:             domain.ToneFormal,
	},
	{
		ID:                      DigitalNomad,
		Label:                   "Digital Nomad",
		Description:             "Working remotely while traveling. Needs a reliable car with good connectivity and long-term comfort.",
		TripPurpose:             domain.TripBusiness,
		GroupType:               domain.GroupSolo,
		GroupSize:               1,
		TripDurationDays:        30,
		LuggageLevel:            domain.LuggageALot,
		ComfortPreference:       domain.LevelMedium,
		BrandPreference:         domain.BrandNone,
		EcoPreference:           domain.EcoLikesHybrid,
		DrivingStyle:            domain.DrivingNormal,
		TechAffinity:            domain.LevelHigh,
		PriceSensitivity:        domain.LevelMedium,
		RiskAttitude:            domain.RiskBalanced,
		PreviousInsuranceUptake: domain.UptakeSometimes,
		FranchiseTolerance:      domain.LevelMedium,
		Language:                "en",
		ToneOfVoice:             domain.ToneCasual,
	},
	{
		ID:                      SportsTeamOrganizer,
		Label:                   "Sports Team Organizer",
		Description:             "Driving a small group to a tournament. Needs maximum space for people and gear.",
		TripPurpose:             domain.TripWeekend,
		GroupType:               domain.GroupFriends,
		GroupSize:               7,
		TripDurationDays:        3,
		LuggageLevel:            domain.LuggageALot,
		ComfortPreference:       domain.LevelLow,
		BrandPreference:         domain.BrandNone,
		EcoPreference:           domain.EcoNoPreference,
		DrivingStyle:            domain.DrivingNormal,
		TechAffinity:            domain.LevelLow,
		PriceSensitivity:        domain.LevelMedium,
		RiskAttitude:            domain.RiskBalanced,
		PreviousInsuranceUptake: domain.UptakeAlways,
		FranchiseTolerance:      domain.LevelLow,
		Language:                "en",
		ToneOfVoice:             domain.ToneCasual,
	},
	{
		ID:                      RelocatingMover,
		Label:                   "Relocating Mover",
		Description:             "Moving apartments or transporting large items. Needs a van or large utility vehicle.",
		TripPurpose:             domain.TripMoving,
		GroupType:               domain.GroupSolo,
		GroupSize:               1,
		TripDurationDays:        1,
		LuggageLevel:            domain.LuggageALot,
		ComfortPreference:       domain.LevelLow,
		BrandPreference:         domain.BrandNone,
		EcoPreference:           domain.EcoNoPreference,
		DrivingStyle:            domain.DrivingCalm,
		TechAffinity:            domain.LevelLow,
		PriceSensitivity:        domain.LevelHigh,
		RiskAttitude:            domain.RiskAverse,
		PreviousInsuranceUptake: domain.UptakeAlways,
		FranchiseTolerance:      domain.LevelLow,
		WantsFastPickup:         true,
		Language:                "en",
		ToneOfVoice:             domain.ToneCasual,
	},
	{
		ID:                      RetiredExplorers,
		Label:                   "Retired Explorers",
		Description:             "Senior couple enjoying a leisurely road trip. Values comfort, ease of use and clear navigation.",
		TripPurpose:             domain.TripVacation,
		GroupType:               domain.GroupCouple,
		GroupSize:               2,
		TripDurationDays:        12,
		LuggageLevel:            domain.LuggageNormal,
		ComfortPreference:       domain.LevelHigh,
		BrandPreference:         domain.BrandLikesPremium,
		EcoPreference:           domain.EcoNoPreference,
		DrivingStyle:            domain.DrivingCalm,
		TechAffinity:            domain.LevelLow,
		PriceSensitivity:        domain.LevelMedium,
		RiskAttitude:            domain.RiskAverse,
		PreviousInsuranceUptake: domain.UptakeAlways,
		FranchiseTolerance:      domain.LevelLow,
		Language:                "en",
		ToneOfVoice:             domain.ToneFormal,
	},
}

// Catalog returns a copy of the built-in personas. The first entry is the
// default used when a requested persona does not exist.
func Catalog() []domain.Persona {
	out := make([]domain.Persona, len(catalog))
	for i, p := range catalog {
		p.IdealCategory = append([]string(nil), p.IdealCategory...)
		out[i] = p
	}
	return out
}

// Lookup returns the catalog persona with the given id.
func Lookup(id string) (domain.Persona, bool) {
	for _, p := range catalog {
		if p.ID == id {
			p.IdealCategory = append([]string(nil), p.IdealCategory...)
			return p, true
		}
	}
	return domain.Persona{}, false
}

// Default returns the first catalog persona.
func Default() domain.Persona {
	p := catalog[0]
	p.IdealCategory = append([]string(nil), p.IdealCategory...)
	return p
}
