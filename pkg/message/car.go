// Package message turns a chosen offer into customer-facing upsell copy.
//
// Every message starts from a deterministic, rule-based explanation. An
// optional Refiner may polish that text, but the formal explanation is always
// the fallback.
package message

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/rental-upsell/pkg/tagging"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

const maxBullets = 3

// CarUpgrade is the input for car-upgrade copy.
type CarUpgrade struct {
	Persona  domain.Persona
	UserTags []domain.Tag
	From     domain.Vehicle
	FromTags []domain.Tag
	To       domain.Vehicle
	ToTags   []domain.Tag
}

// AddedTags returns the tags the upgrade has that the current vehicle lacks,
// in ToTags order.
func (u *CarUpgrade) AddedTags() []domain.Tag {
	var added []domain.Tag
	for _, t := range u.ToTags {
		if !domain.HasTag(u.FromTags, t) && !domain.HasTag(added, t) {
			added = append(added, t)
		}
	}
	return added
}

type carReason struct {
	applies func(u *CarUpgrade, added []domain.Tag) bool
	phrase  func(u *CarUpgrade) string
}

func isFamily(p *domain.Persona, userTags []domain.Tag) bool {
	return p.GroupType == domain.GroupFamily || domain.HasTag(userTags, tagging.TagFamilyTrip)
}

func fixed(s string) func(*CarUpgrade) string {
	return func(*CarUpgrade) string { return s }
}

// carReasons is evaluated in order; the first two matches are used.
var carReasons = []carReason{
	{
		applies: func(_ *CarUpgrade, added []domain.Tag) bool {
			return domain.HasTag(added, tagging.TagNeedsSpacious) || domain.HasTag(added, tagging.TagSevenSeats)
		},
		phrase: func(u *CarUpgrade) string {
			if isFamily(&u.Persona, u.UserTags) {
				return "more space for your family and luggage"
			}
			return "extra room for passengers and luggage"
		},
	},
	{
		applies: func(_ *CarUpgrade, added []domain.Tag) bool {
			return domain.HasTag(added, tagging.TagEV) || domain.HasTag(added, tagging.TagHybrid)
		},
		phrase: func(u *CarUpgrade) string {
			if u.Persona.EcoPreference == domain.EcoWantsEV || domain.HasTag(u.UserTags, tagging.TagLikesEco) {
				return "a more eco-friendly drive that matches your preferences"
			}
			return "a more environmentally friendly driving option"
		},
	},
	{
		applies: func(_ *CarUpgrade, added []domain.Tag) bool {
			return domain.HasTag(added, tagging.TagPremiumBrand)
		},
		phrase: func(u *CarUpgrade) string {
			if u.Persona.TripPurpose == domain.TripBusiness {
				return "a more premium, comfortable experience for your business trip"
			}
			return "a more comfortable and premium driving experience"
		},
	},
	{
		applies: func(u *CarUpgrade, added []domain.Tag) bool {
			return domain.HasTag(added, tagging.TagTechRich) || domain.HasTag(u.UserTags, tagging.TagTechLover)
		},
		phrase: fixed("more modern in-car technology like navigation and infotainment"),
	},
	{
		applies: func(u *CarUpgrade, added []domain.Tag) bool {
			return domain.HasTag(added, tagging.TagCityFriendly) && u.Persona.TripPurpose != domain.TripBusiness
		},
		phrase: fixed("an easier car to handle in city traffic and tight parking spots"),
	},
	{
		applies: func(_ *CarUpgrade, added []domain.Tag) bool {
			return domain.HasTag(added, tagging.TagLongDistance)
		},
		phrase: fixed("more comfort for longer distances"),
	},
}

const genericCarReason = "a better match for your trip and preferences"

// CarReasons returns the reason phrases that apply to u in priority order.
// It never returns an empty slice.
func CarReasons(u *CarUpgrade) []string {
	added := u.AddedTags()
	var reasons []string
	for _, r := range carReasons {
		if r.applies(u, added) {
			reasons = append(reasons, r.phrase(u))
		}
	}
	if len(reasons) == 0 {
		reasons = append(reasons, genericCarReason)
	}
	return reasons
}

// CarUpgradeExplanationFormal builds the deterministic explanation for a car
// upgrade. The same input always yields the same sentence.
func CarUpgradeExplanationFormal(u *CarUpgrade) string {
	reasons := CarReasons(u)
	fromName := u.From.DisplayName()
	toName := u.To.DisplayName()

	var b strings.Builder
	switch {
	case u.Persona.GroupType == domain.GroupFamily:
		fmt.Fprintf(&b, "For your family trip, %s offers %s", toName, reasons[0])
	case u.Persona.TripPurpose == domain.TripBusiness:
		fmt.Fprintf(&b, "For your business trip, %s offers %s", toName, reasons[0])
	case u.Persona.TripPurpose == domain.TripVacation:
		fmt.Fprintf(&b, "For your vacation, %s offers %s", toName, reasons[0])
	default:
		fmt.Fprintf(&b, "For your journey, %s offers %s", toName, reasons[0])
	}

	if len(reasons) > 1 {
		fmt.Fprintf(&b, " and also gives you %s.", reasons[1])
	} else {
		b.WriteString(".")
	}

	if fromName != toName {
		fmt.Fprintf(&b, " Compared to %s, it is simply a better fit for this trip.", fromName)
	}
	return b.String()
}

// CarUpgradeHeadline picks the headline for a car upgrade.
func CarUpgradeHeadline(u *CarUpgrade) string {
	switch {
	case u.Persona.GroupType == domain.GroupFamily:
		return "More space and comfort for your family"
	case u.Persona.TripPurpose == domain.TripBusiness:
		return "Arrive more relaxed and in comfort"
	case u.Persona.EcoPreference == domain.EcoWantsEV:
		return "Make your trip greener with " + u.To.DisplayName()
	default:
		return "A better fit for your trip"
	}
}

// CarUpgradeBullets lists at most three selling points of the upgrade.
func CarUpgradeBullets(toTags []domain.Tag) []string {
	has := func(tags ...domain.Tag) bool {
		for _, t := range tags {
			if domain.HasTag(toTags, t) {
				return true
			}
		}
		return false
	}

	var bullets []string
	if has(tagging.TagNeedsSpacious, tagging.TagSevenSeats) {
		bullets = append(bullets, "More space for passengers and luggage")
	}
	if has(tagging.TagEV, tagging.TagHybrid) {
		bullets = append(bullets, "Lower-emission driving option")
	}
	if has(tagging.TagPremiumBrand) {
		bullets = append(bullets, "Premium driving comfort and feel")
	}
	if has(tagging.TagTechRich) {
		bullets = append(bullets, "Modern in-car tech and navigation")
	}
	if len(bullets) == 0 {
		bullets = append(bullets, "Better aligned with your trip needs")
	}
	return truncate(bullets)
}

// CarUpgradeStat returns the supporting social-proof line.
func CarUpgradeStat(p *domain.Persona) string {
	switch {
	case p.GroupType == domain.GroupFamily:
		return "Most families on longer trips choose a more spacious car."
	case p.TripPurpose == domain.TripBusiness:
		return "Many business travelers upgrade for extra comfort and quiet."
	default:
		return "Customers with similar trips often choose this category."
	}
}

func truncate(bullets []string) []string {
	if len(bullets) > maxBullets {
		return bullets[:maxBullets]
	}
	return bullets
}
