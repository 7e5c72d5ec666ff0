package tagging

import (
	"strings"

	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// Daily price bounds used to infer a protection tier when no coverage
// keyword decides it.
const (
	premiumProtectionPrice = 20.0
	budgetProtectionPrice  = 10.0
)

// ProtectionFields is the lower-cased view of a protection package.
type ProtectionFields struct {
	Name string
	// Text holds the description and included coverage titles.
	Text  string
	Price float64
}

// NewProtectionFields normalizes p for rule matching.
func NewProtectionFields(p *domain.ProtectionPackage) ProtectionFields {
	parts := []string{p.Description}
	for _, inc := range p.Includes {
		parts = append(parts, inc.Title)
	}
	return ProtectionFields{
		Name:  strings.ToLower(p.Name),
		Text:  strings.ToLower(strings.Join(parts, " ")),
		Price: p.DailyPrice(),
	}
}

func (f *ProtectionFields) full() bool {
	return containsAny(f.Name, "full", "complete", "peace of mind")
}

func (f *ProtectionFields) basic() bool {
	return !f.full() && containsAny(f.Name, "basic", "minimum")
}

func (f *ProtectionFields) mentions(words ...string) bool {
	return containsAny(f.Name, words...) || containsAny(f.Text, words...)
}

// ProtectionRule grants Tags to every package whose fields satisfy Match.
type ProtectionRule struct {
	Name  string
	Match func(f *ProtectionFields) bool
	Tags  []domain.Tag
}

var protectionRules = []ProtectionRule{
	{
		Name:  "full_coverage",
		Match: (*ProtectionFields).full,
		Tags:  []domain.Tag{TagFullCoverage, TagPremiumProtection},
	},
	{
		Name:  "basic_coverage",
		Match: (*ProtectionFields).basic,
		Tags:  []domain.Tag{TagBasicCoverage, TagBudgetProtection},
	},
	{
		Name: "glass",
		Match: func(f *ProtectionFields) bool {
			return strings.Contains(f.Name, "glass") || containsAny(f.Text, "glass", "windscreen")
		},
		Tags: []domain.Tag{TagGlassProtection},
	},
	{
		Name:  "tyre",
		Match: func(f *ProtectionFields) bool { return f.mentions("tire", "tyre") },
		Tags:  []domain.Tag{TagTyreProtection},
	},
	{
		Name:  "roadside",
		Match: func(f *ProtectionFields) bool { return f.mentions("roadside") },
		Tags:  []domain.Tag{TagRoadsideAssistance},
	},
	{
		Name:  "young_driver",
		Match: func(f *ProtectionFields) bool { return f.mentions("young") },
		Tags:  []domain.Tag{TagYoungDriverProtection},
	},
	{
		Name:  "theft",
		Match: func(f *ProtectionFields) bool { return f.mentions("theft") },
		Tags:  []domain.Tag{TagTheftProtection},
	},
	{
		Name: "personal_accident",
		Match: func(f *ProtectionFields) bool {
			return strings.Contains(f.Name, "personal") || strings.Contains(f.Text, "personal accident")
		},
		Tags: []domain.Tag{TagPersonalAccident},
	},
	{
		Name: "premium_by_price",
		Match: func(f *ProtectionFields) bool {
			return !f.full() && !f.basic() && f.Price > premiumProtectionPrice
		},
		Tags: []domain.Tag{TagPremiumProtection},
	},
	{
		Name: "budget_by_price",
		Match: func(f *ProtectionFields) bool {
			return !f.full() && !f.basic() && f.Price > 0 && f.Price < budgetProtectionPrice
		},
		Tags: []domain.Tag{TagBudgetProtection},
	},
}

// ProtectionRules returns a copy of the ordered protection rule table.
func ProtectionRules() []ProtectionRule {
	return append([]ProtectionRule(nil), protectionRules...)
}

// ProtectionTags derives the tag set of a protection package.
func ProtectionTags(p domain.ProtectionPackage) []domain.Tag {
	f := NewProtectionFields(&p)
	var tags []domain.Tag
	for i := range protectionRules {
		if protectionRules[i].Match(&f) {
			tags = append(tags, protectionRules[i].Tags...)
		}
	}
	return unique(tags)
}
