package tagging

import (
	"regexp"
	"strings"

	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// Brands granted the premium tier regardless of ACRISS class.
var premiumBrands = []string{
	"bmw", "audi", "mercedes", "mercedes-benz", "tesla",
	"porsche", "land rover", "jaguar", "volvo",
}

// Brands granted the budget tier.
var budgetBrands = []string{
	"dacia", "fiat", "seat", "skoda", "kia",
	"hyundai", "opel", "vauxhall", "ford",
}

var sportyModel = regexp.MustCompile(`\b(gti|amg|m sport|rs\d*)\b`)

// VehicleFields is the lower-cased view of a vehicle the car rules match on.
type VehicleFields struct {
	Group        string // groupType and group joined
	Model        string
	Brand        string
	Fuel         string
	Transmission string
	ACRISS       string
	Seats        int
}

// NewVehicleFields normalizes v for rule matching.
func NewVehicleFields(v *domain.Vehicle) VehicleFields {
	return VehicleFields{
		Group:        strings.TrimSpace(strings.ToLower(v.GroupType + " " + v.Group)),
		Model:        strings.ToLower(v.Model),
		Brand:        strings.ToLower(v.Brand),
		Fuel:         strings.ToLower(v.FuelType),
		Transmission: strings.ToLower(v.Transmission),
		ACRISS:       strings.ToLower(v.ACRISSCode),
		Seats:        v.Seats,
	}
}

func (f *VehicleFields) groupHas(words ...string) bool {
	return containsAny(f.Group, words...)
}

func (f *VehicleFields) codeStarts(prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(f.ACRISS, p) {
			return true
		}
	}
	return false
}

func (f *VehicleFields) codeHas(letters ...string) bool {
	return containsAny(f.ACRISS, letters...)
}

func (f *VehicleFields) spacious() bool {
	return f.groupHas("van", "truck") || f.Seats >= 7 || f.codeStarts("f", "v")
}

func (f *VehicleFields) premium() bool {
	return f.codeStarts("l", "x") || containsAny(f.Brand, premiumBrands...)
}

func (f *VehicleFields) budget() bool {
	return containsAny(f.Brand, budgetBrands...)
}

// CarRule grants Tags to every vehicle whose fields satisfy Match.
type CarRule struct {
	Name  string
	Match func(f *VehicleFields) bool
	Tags  []domain.Tag
}

// carRules is evaluated top to bottom. The three brand-tier rules are
// mutually exclusive and exhaustive.
var carRules = []CarRule{
	{
		Name:  "suv",
		Match: func(f *VehicleFields) bool { return f.groupHas("suv") || f.codeHas("f", "j") },
		Tags:  []domain.Tag{TagSUV},
	},
	{
		Name:  "sedan",
		Match: func(f *VehicleFields) bool { return f.groupHas("sedan", "limousine") },
		Tags:  []domain.Tag{TagSedan},
	},
	{
		Name:  "wagon",
		Match: func(f *VehicleFields) bool { return f.groupHas("wagon", "estate") || f.codeHas("w") },
		Tags:  []domain.Tag{TagWagon},
	},
	{
		Name:  "convertible",
		Match: func(f *VehicleFields) bool { return f.groupHas("convertible") || f.codeHas("t") },
		Tags:  []domain.Tag{TagConvertible},
	},
	{
		Name:  "van",
		Match: (*VehicleFields).spacious,
		Tags:  []domain.Tag{TagVan, TagNeedsSpacious},
	},
	{
		Name:  "seven_seats",
		Match: func(f *VehicleFields) bool { return f.Seats >= 7 },
		Tags:  []domain.Tag{TagSevenSeats},
	},
	{
		Name: "utility",
		Match: func(f *VehicleFields) bool {
			return f.spacious() &&
				(f.groupHas("panel", "cargo", "special", "truck") || f.codeStarts("f", "v"))
		},
		Tags: []domain.Tag{TagUtility},
	},
	{
		Name:  "compact",
		Match: func(f *VehicleFields) bool { return f.groupHas("compact", "economy", "mini") },
		Tags:  []domain.Tag{TagCompact, TagCityFriendly},
	},
	{
		Name:  "automatic",
		Match: func(f *VehicleFields) bool { return strings.Contains(f.Transmission, "auto") },
		Tags:  []domain.Tag{TagAutomatic},
	},
	{
		Name:  "manual",
		Match: func(f *VehicleFields) bool { return strings.Contains(f.Transmission, "manual") },
		Tags:  []domain.Tag{TagManual},
	},
	{
		Name: "electric",
		Match: func(f *VehicleFields) bool {
			return strings.Contains(f.Fuel, "electric") || f.Fuel == "ev" || f.Fuel == "bev"
		},
		Tags: []domain.Tag{TagEV, TagLikesEco, TagCityFriendly},
	},
	{
		Name:  "hybrid",
		Match: func(f *VehicleFields) bool { return strings.Contains(f.Fuel, "hybrid") || f.Fuel == "phev" },
		Tags:  []domain.Tag{TagHybrid, TagLikesEco},
	},
	{
		Name:  "diesel",
		Match: func(f *VehicleFields) bool { return strings.Contains(f.Fuel, "diesel") },
		Tags:  []domain.Tag{TagDiesel, TagLongDistance},
	},
	{
		Name:  "petrol",
		Match: func(f *VehicleFields) bool { return strings.Contains(f.Fuel, "petrol") },
		Tags:  []domain.Tag{TagPetrol},
	},
	{
		Name:  "luxury_class",
		Match: func(f *VehicleFields) bool { return f.codeStarts("l", "x") },
		Tags:  []domain.Tag{TagLuxury},
	},
	{
		Name:  "premium_brand",
		Match: (*VehicleFields).premium,
		Tags:  []domain.Tag{TagPremiumBrand},
	},
	{
		Name:  "budget_brand",
		Match: func(f *VehicleFields) bool { return !f.premium() && f.budget() },
		Tags:  []domain.Tag{TagBudgetBrand},
	},
	{
		Name:  "mid_range_brand",
		Match: func(f *VehicleFields) bool { return !f.premium() && !f.budget() },
		Tags:  []domain.Tag{TagMidRangeBrand},
	},
	{
		Name:  "sporty",
		Match: func(f *VehicleFields) bool { return sportyModel.MatchString(f.Model) },
		Tags:  []domain.Tag{TagSporty},
	},
}

// CarRules returns a copy of the ordered car rule table.
func CarRules() []CarRule {
	return append([]CarRule(nil), carRules...)
}

// CarTags derives the tag set of a vehicle.
func CarTags(v domain.Vehicle) []domain.Tag {
	f := NewVehicleFields(&v)
	var tags []domain.Tag
	for i := range carRules {
		if carRules[i].Match(&f) {
			tags = append(tags, carRules[i].Tags...)
		}
	}
	return unique(tags)
}

// CategoryCode returns the single-letter ACRISS class of v. When the ACRISS
// code is missing the class is inferred from the group label.
func CategoryCode(v domain.Vehicle) (string, bool) {
	if v.ACRISSCode != "" {
		return strings.ToUpper(v.ACRISSCode[:1]), true
	}
	g := strings.ToLower(v.GroupType)
	if g == "" {
		return "", false
	}
	for _, c := range groupCategories {
		if containsAny(g, c.words...) {
			return c.code, true
		}
	}
	return "", false
}

var groupCategories = []struct {
	words []string
	code  string
}{
	{[]string{"luxury"}, "L"},
	{[]string{"premium"}, "P"},
	{[]string{"full"}, "F"},
	{[]string{"standard"}, "S"},
	{[]string{"intermediate"}, "I"},
	{[]string{"compact"}, "C"},
	{[]string{"economy"}, "E"},
	{[]string{"mini"}, "M"},
	{[]string{"suv", "special"}, "X"},
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
