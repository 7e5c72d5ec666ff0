package tagging

import (
	"strings"

	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

type addonRule struct {
	match func(name, desc string) bool
	tag   domain.Tag
}

var addonRules = []addonRule{
	{func(n, _ string) bool { return containsAny(n, "child", "baby", "booster", "toddler") }, TagChildSeat},
	{func(n, d string) bool { return containsAny(n, "gps", "nav") || strings.Contains(d, "navigation") }, TagGPSNavigation},
	{func(n, d string) bool { return strings.Contains(n, "ski") || strings.Contains(d, "ski") }, TagSkiRack},
	{func(n, _ string) bool {
		return strings.Contains(n, "driver") && containsAny(n, "extra", "additional")
	}, TagExtraDriver},
	{func(n, _ string) bool { return containsAny(n, "wifi", "wi-fi", "internet", "hotspot") }, TagWifi},
	{func(n, _ string) bool { return containsAny(n, "snow", "chain") }, TagSnowChains},
	{func(n, _ string) bool { return strings.Contains(n, "toll") }, TagTollService},
	{func(n, _ string) bool { return strings.Contains(n, "diesel") && strings.Contains(n, "option") }, TagDieselOption},
}

// AddonTags derives the tag set of an addon.
func AddonTags(a domain.Addon) []domain.Tag {
	name := strings.ToLower(a.Name)
	desc := strings.ToLower(a.Description)

	var tags []domain.Tag
	for _, r := range addonRules {
		if r.match(name, desc) {
			tags = append(tags, r.tag)
		}
	}
	return unique(tags)
}
