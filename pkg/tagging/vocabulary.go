// Package tagging derives semantic tags from raw vehicle, protection and addon
// records. Every derivation is a pure function of a single record, evaluated
// as an ordered table of (predicate, tags) rules.
package tagging

import domain "github.com/donaldgifford/rental-upsell/pkg/types"

// User intent tags.
const (
	TagBusinessTrip     domain.Tag = "business_trip"
	TagVacationTrip     domain.Tag = "vacation_trip"
	TagFamilyTrip       domain.Tag = "family_trip"
	TagWeekendTrip      domain.Tag = "weekend_trip"
	TagHeavyLuggage     domain.Tag = "heavy_luggage"
	TagComfortSeeker    domain.Tag = "comfort_seeker"
	TagEVFriendly       domain.Tag = "ev_friendly"
	TagTechLover        domain.Tag = "tech_lover"
	TagBudgetSensitive  domain.Tag = "budget_sensitive"
	TagPriceInsensitive domain.Tag = "price_insensitive"
	TagSafetyFocused    domain.Tag = "safety_focused"
	TagInsuranceLikely  domain.Tag = "insurance_likely"
	TagMinimalCoverage  domain.Tag = "minimal_coverage"
	TagWantsFastPickup  domain.Tag = "wants_fast_pickup"
	TagLargeGroup       domain.Tag = "large_group"
	TagBrandConscious   domain.Tag = "brand_conscious"
	TagSportyDriver     domain.Tag = "sporty_driver"
)

// Tags shared between the user and car vocabularies. A persona tagged with
// one of these matches a vehicle carrying the same tag.
const (
	TagNeedsSpacious domain.Tag = "needs_spacious"
	TagLikesEco      domain.Tag = "likes_eco"
)

// Car tags.
const (
	TagCompact       domain.Tag = "compact"
	TagSedan         domain.Tag = "sedan"
	TagSUV           domain.Tag = "suv"
	TagWagon         domain.Tag = "wagon"
	TagVan           domain.Tag = "van"
	TagUtility       domain.Tag = "utility"
	TagSevenSeats    domain.Tag = "7_seats"
	TagAutomatic     domain.Tag = "automatic"
	TagManual        domain.Tag = "manual"
	TagEV            domain.Tag = "ev"
	TagHybrid        domain.Tag = "hybrid"
	TagPetrol        domain.Tag = "petrol"
	TagDiesel        domain.Tag = "diesel"
	TagPremiumBrand  domain.Tag = "premium_brand"
	TagMidRangeBrand domain.Tag = "mid_range_brand"
	TagBudgetBrand   domain.Tag = "budget_brand"
	TagSporty        domain.Tag = "sporty"
	TagCityFriendly  domain.Tag = "city_friendly"
	TagLongDistance  domain.Tag = "long_distance"
	TagTechRich      domain.Tag = "tech_rich"
	TagLuxury        domain.Tag = "luxury"
	TagConvertible   domain.Tag = "convertible"
)

// Protection tags.
const (
	TagFullCoverage          domain.Tag = "full_coverage"
	TagBasicCoverage         domain.Tag = "basic_coverage"
	TagGlassProtection       domain.Tag = "glass_protection"
	TagTyreProtection        domain.Tag = "tyre_protection"
	TagRoadsideAssistance    domain.Tag = "roadside_assistance"
	TagYoungDriverProtection domain.Tag = "young_driver_protection"
	TagPremiumProtection     domain.Tag = "premium_protection"
	TagBudgetProtection      domain.Tag = "budget_protection"
	TagPersonalAccident      domain.Tag = "personal_accident"
	TagTheftProtection       domain.Tag = "theft_protection"
)

// Addon tags.
const (
	TagChildSeat     domain.Tag = "child_seat"
	TagGPSNavigation domain.Tag = "gps_navigation"
	TagSkiRack       domain.Tag = "ski_rack"
	TagExtraDriver   domain.Tag = "extra_driver"
	TagWifi          domain.Tag = "wifi"
	TagSnowChains    domain.Tag = "snow_chains"
	TagTollService   domain.Tag = "toll_service"
	TagDieselOption  domain.Tag = "diesel_option"
)

// UserTagVocabulary lists every tag a persona can carry.
var UserTagVocabulary = []domain.Tag{
	TagBusinessTrip, TagVacationTrip, TagFamilyTrip, TagWeekendTrip,
	TagNeedsSpacious, TagHeavyLuggage, TagComfortSeeker, TagLikesEco,
	TagEVFriendly, TagTechLover, TagBudgetSensitive, TagPriceInsensitive,
	TagSafetyFocused, TagInsuranceLikely, TagMinimalCoverage, TagWantsFastPickup,
	TagLargeGroup, TagBrandConscious, TagSportyDriver,
}

// CarTagVocabulary lists every tag a vehicle can carry.
var CarTagVocabulary = []domain.Tag{
	TagCompact, TagSedan, TagSUV, TagWagon, TagVan, TagUtility, TagSevenSeats,
	TagAutomatic, TagManual, TagEV, TagHybrid, TagPetrol, TagDiesel,
	TagPremiumBrand, TagMidRangeBrand, TagBudgetBrand, TagSporty,
	TagNeedsSpacious, TagCityFriendly, TagLongDistance, TagTechRich,
	TagLuxury, TagConvertible, TagLikesEco,
}

// ProtectionTagVocabulary lists every tag a protection package can carry.
var ProtectionTagVocabulary = []domain.Tag{
	TagFullCoverage, TagGlassProtection, TagTyreProtection, TagRoadsideAssistance,
	TagYoungDriverProtection, TagPremiumProtection, TagBudgetProtection,
	TagBasicCoverage, TagPersonalAccident, TagTheftProtection,
}

// AddonTagVocabulary lists every tag an addon can carry.
var AddonTagVocabulary = []domain.Tag{
	TagChildSeat, TagGPSNavigation, TagSkiRack, TagExtraDriver,
	TagWifi, TagSnowChains, TagTollService, TagDieselOption,
}

// unique returns tags with duplicates removed, keeping first-seen order.
func unique(tags []domain.Tag) []domain.Tag {
	seen := make(map[domain.Tag]struct{}, len(tags))
	out := make([]domain.Tag, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
