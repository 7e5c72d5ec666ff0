package tagging

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

func TestProtectionTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pkg  domain.ProtectionPackage
		want []domain.Tag
	}{
		{
			name: "full coverage with extras",
			pkg: domain.ProtectionPackage{
				Name:        "Full Coverage Plus",
				Description: "Zero deductible, includes glass & tyre protection, roadside assistance.",
				Price:       domain.Price(35),
			},
			want: []domain.Tag{
				TagFullCoverage, TagPremiumProtection, TagGlassProtection,
				TagTyreProtection, TagRoadsideAssistance,
			},
		},
		{
			name: "basic by name",
			pkg:  domain.ProtectionPackage{Name: "Basic Protection", Price: domain.Price(15)},
			want: []domain.Tag{TagBasicCoverage, TagBudgetProtection},
		},
		{
			name: "price in the untiered band",
			pkg:  domain.ProtectionPackage{Name: "Glass & Tyre Protection", Price: domain.Price(10)},
			want: []domain.Tag{TagGlassProtection, TagTyreProtection},
		},
		{
			name: "expensive unnamed tier",
			pkg:  domain.ProtectionPackage{Name: "Theft Protection", Price: domain.Price(25)},
			want: []domain.Tag{TagTheftProtection, TagPremiumProtection},
		},
		{
			name: "cheap unnamed tier",
			pkg:  domain.ProtectionPackage{Name: "Personal Accident", Price: domain.Price(5)},
			want: []domain.Tag{TagPersonalAccident, TagBudgetProtection},
		},
		{
			name: "no price no tier",
			pkg:  domain.ProtectionPackage{Name: "Young Driver Cover"},
			want: []domain.Tag{TagYoungDriverProtection},
		},
		{
			name: "included coverage titles count",
			pkg: domain.ProtectionPackage{
				Name:     "Smart Protection",
				Price:    domain.Price(18),
				Includes: []domain.CoverageItem{{Title: "Windscreen damage"}, {Title: "Roadside help"}},
			},
			want: []domain.Tag{TagGlassProtection, TagRoadsideAssistance},
		},
		{
			name: "complete beats basic",
			pkg:  domain.ProtectionPackage{Name: "Complete basic bundle", Price: domain.Price(5)},
			want: []domain.Tag{TagFullCoverage, TagPremiumProtection},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ProtectionTags(tt.pkg)
			assert.ElementsMatch(t, tt.want, got)
			for _, tag := range got {
				assert.Contains(t, ProtectionTagVocabulary, tag)
			}
		})
	}
}

func TestProtectionTags_AtMostOneCoverageTier(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"Full Coverage", "Basic", "Peace of Mind", "Minimum Cover", "Other"} {
		tags := ProtectionTags(domain.ProtectionPackage{Name: name, Price: domain.Price(30)})
		assert.False(t,
			domain.HasTag(tags, TagFullCoverage) && domain.HasTag(tags, TagBasicCoverage),
			"%s: %v", name, tags)
		assert.False(t,
			domain.HasTag(tags, TagPremiumProtection) && domain.HasTag(tags, TagBudgetProtection),
			"%s: %v", name, tags)
	}
}

func TestProtectionRules_Names(t *testing.T) {
	t.Parallel()

	var names []string
	for _, r := range ProtectionRules() {
		names = append(names, r.Name)
		assert.NotEmpty(t, r.Tags, r.Name)
	}
	assert.Equal(t, "full_coverage", names[0])
	assert.Contains(t, names, "premium_by_price")
	assert.Contains(t, names, "budget_by_price")
}

func TestAddonTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		addon domain.Addon
		want  []domain.Tag
	}{
		{name: "child seat", addon: domain.Addon{Name: "Child Seat"}, want: []domain.Tag{TagChildSeat}},
		{name: "booster", addon: domain.Addon{Name: "Booster cushion"}, want: []domain.Tag{TagChildSeat}},
		{name: "gps", addon: domain.Addon{Name: "GPS Navigation"}, want: []domain.Tag{TagGPSNavigation}},
		{name: "wifi", addon: domain.Addon{Name: "Mobile Wi-Fi"}, want: []domain.Tag{TagWifi}},
		{name: "additional driver", addon: domain.Addon{Name: "Additional Driver"}, want: []domain.Tag{TagExtraDriver}},
		{name: "driver alone", addon: domain.Addon{Name: "Driver"}, want: []domain.Tag{}},
		{name: "snow chains", addon: domain.Addon{Name: "Snow chains"}, want: []domain.Tag{TagSnowChains}},
		{name: "ski rack by description", addon: domain.Addon{Name: "Roof box", Description: "Fits ski equipment"}, want: []domain.Tag{TagSkiRack}},
		{name: "toll", addon: domain.Addon{Name: "Toll pass"}, want: []domain.Tag{TagTollService}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ElementsMatch(t, tt.want, AddonTags(tt.addon))
		})
	}
}
