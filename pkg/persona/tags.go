package persona

import (
	"github.com/donaldgifford/rental-upsell/pkg/tagging"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

const largeGroupSize = 5

// UserTags maps a persona onto the user-intent tag vocabulary. The result is
// deterministic and duplicate-free.
func UserTags(p domain.Persona) []domain.Tag {
	var tags []domain.Tag
	add := func(t ...domain.Tag) { tags = append(tags, t...) }

	switch p.TripPurpose {
	case domain.TripBusiness:
		add(tagging.TagBusinessTrip)
	case domain.TripVacation:
		add(tagging.TagVacationTrip)
	case domain.TripWeekend:
		add(tagging.TagWeekendTrip)
	}

	if p.GroupType == domain.GroupFamily {
		add(tagging.TagFamilyTrip, tagging.TagNeedsSpacious)
	}
	if p.GroupSize >= largeGroupSize {
		add(tagging.TagLargeGroup)
	}
	if p.LuggageLevel == domain.LuggageALot {
		add(tagging.TagHeavyLuggage)
	}

	if p.ComfortPreference == domain.LevelHigh {
		add(tagging.TagComfortSeeker)
	}
	if p.BrandPreference == domain.BrandLikesPremium || p.BrandPreference == domain.BrandMustBePremium {
		add(tagging.TagBrandConscious)
	}

	switch p.EcoPreference {
	case domain.EcoWantsEV:
		add(tagging.TagLikesEco, tagging.TagEVFriendly)
	case domain.EcoLikesHybrid:
		add(tagging.TagLikesEco)
	}

	switch p.PriceSensitivity {
	case domain.LevelHigh:
		add(tagging.TagBudgetSensitive)
	case domain.LevelLow:
		add(tagging.TagPriceInsensitive)
	}

	if p.TechAffinity == domain.LevelHigh {
		add(tagging.TagTechLover)
	}

	switch p.RiskAttitude {
	case domain.RiskAverse:
		add(tagging.TagSafetyFocused, tagging.TagInsuranceLikely)
	case domain.RiskTaker:
		add(tagging.TagMinimalCoverage)
	}

	if p.WantsFastPickup {
		add(tagging.TagWantsFastPickup)
	}
	if p.DrivingStyle == domain.DrivingSporty {
		add(tagging.TagSportyDriver)
	}

	return dedupe(tags)
}

func dedupe(tags []domain.Tag) []domain.Tag {
	seen := make(map[domain.Tag]struct{}, len(tags))
	out := make([]domain.Tag, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}
