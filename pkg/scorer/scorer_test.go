package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/rental-upsell/pkg/persona"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

func familyPlanner(t *testing.T) (domain.Persona, []domain.Tag) {
	t.Helper()
	p, ok := persona.Lookup(persona.FamilyHolidayPlanner)
	require.True(t, ok)
	return p, persona.UserTags(p)
}

var (
	evCoupe = domain.Vehicle{
		ID: "ev-coupe", Brand: "Porsche", Model: "Taycan Coupe", GroupType: "Coupe",
		ACRISSCode: "PCAE", Seats: 2, FuelType: "Electric", Transmission: "Automatic",
		Price: domain.Price(160),
	}
	sevenSeatSUV = domain.Vehicle{
		ID: "q7", Brand: "Audi", Model: "Q7", GroupType: "SUV",
		ACRISSCode: "PFAR", Seats: 7, FuelType: "Petrol", Transmission: "Automatic",
		Price: domain.Price(120),
	}
)

func TestVehicleWeightsFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(p *domain.Persona)
		want   VehicleWeights
	}{
		{
			name:   "base",
			modify: func(*domain.Persona) {},
			want:   DefaultVehicleWeights(),
		},
		{
			name:   "family",
			modify: func(p *domain.Persona) { p.GroupType = domain.GroupFamily },
			want: VehicleWeights{
				TagMatch: 5, SpaceFit: 5, EcoMatch: 2, BrandPremium: 1,
				CategoryMatch: 3, PricePenalty: 2, Distance: 1,
			},
		},
		{
			name: "business ev high sensitivity",
			modify: func(p *domain.Persona) {
				p.TripPurpose = domain.TripBusiness
				p.EcoPreference = domain.EcoWantsEV
				p.PriceSensitivity = domain.LevelHigh
			},
			want: VehicleWeights{
				TagMatch: 4, SpaceFit: 3, EcoMatch: 4, BrandPremium: 2,
				CategoryMatch: 3, PricePenalty: 4, Distance: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := domain.Persona{GroupType: domain.GroupSolo, TripPurpose: domain.TripVacation}
			tt.modify(&p)
			assert.Equal(t, tt.want, VehicleWeightsFor(&p))
		})
	}
}

func TestScoreVehicle_FamilyPlanner(t *testing.T) {
	t.Parallel()

	p, tags := familyPlanner(t)

	coupe := ScoreVehicle(p, tags, evCoupe)
	assert.Equal(t, 0.0, coupe.SpaceFit)
	assert.Equal(t, 1.0, coupe.BrandPremium)
	assert.Equal(t, 0.0, coupe.MatchScore)
	assert.InDelta(t, 1.6, coupe.PricePenalty, 1e-9)
	assert.InDelta(t, -2.2, coupe.TotalScore, 1e-9)

	suv := ScoreVehicle(p, tags, sevenSeatSUV)
	assert.Contains(t, suv.Tags, domain.Tag("needs_spacious"))
	assert.Contains(t, suv.Tags, domain.Tag("premium_brand"))
	assert.Equal(t, 1.0, suv.SpaceFit)
	assert.Equal(t, 1.0, suv.BrandPremium)
	assert.InDelta(t, 1.0/7.0, suv.MatchScore, 1e-9)
	// 5*(1/7) + 5*1 + 1*1 - 2*1.2
	assert.InDelta(t, 5.0/7.0+3.6, suv.TotalScore, 1e-9)

	assert.Greater(t, suv.TotalScore-coupe.TotalScore, 5.0)
}

func TestScoreVehicle_SubScores(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		persona domain.Persona
		vehicle domain.Vehicle
		check   func(t *testing.T, sv domain.ScoredVehicle)
	}{
		{
			name:    "ev wanted and ev offered",
			persona: domain.Persona{GroupSize: 2, EcoPreference: domain.EcoWantsEV},
			vehicle: domain.Vehicle{FuelType: "Electric", Seats: 4},
			check: func(t *testing.T, sv domain.ScoredVehicle) {
				assert.Equal(t, 1.0, sv.EcoMatch)
				assert.Equal(t, 1.0, sv.SpaceFit)
			},
		},
		{
			name:    "ev wanted hybrid offered",
			persona: domain.Persona{EcoPreference: domain.EcoWantsEV},
			vehicle: domain.Vehicle{FuelType: "Hybrid"},
			check: func(t *testing.T, sv domain.ScoredVehicle) {
				assert.Equal(t, 0.5, sv.EcoMatch)
			},
		},
		{
			name:    "hybrid liked ev offered",
			persona: domain.Persona{EcoPreference: domain.EcoLikesHybrid},
			vehicle: domain.Vehicle{FuelType: "Electric"},
			check: func(t *testing.T, sv domain.ScoredVehicle) {
				assert.Equal(t, 0.8, sv.EcoMatch)
			},
		},
		{
			name:    "no eco preference",
			persona: domain.Persona{EcoPreference: domain.EcoNoPreference},
			vehicle: domain.Vehicle{FuelType: "Electric"},
			check: func(t *testing.T, sv domain.ScoredVehicle) {
				assert.Equal(t, 0.0, sv.EcoMatch)
			},
		},
		{
			name:    "too few seats without space need",
			persona: domain.Persona{GroupSize: 5},
			vehicle: domain.Vehicle{Seats: 4, GroupType: "SUV"},
			check: func(t *testing.T, sv domain.ScoredVehicle) {
				assert.Equal(t, 0.0, sv.SpaceFit)
			},
		},
		{
			name:    "suv counts as roomy for families",
			persona: domain.Persona{GroupSize: 5, GroupType: domain.GroupFamily},
			vehicle: domain.Vehicle{Seats: 4, GroupType: "SUV"},
			check: func(t *testing.T, sv domain.ScoredVehicle) {
				assert.Equal(t, 1.0, sv.SpaceFit)
			},
		},
		{
			name:    "category match",
			persona: domain.Persona{IdealCategory: []string{"E", "C"}},
			vehicle: domain.Vehicle{ACRISSCode: "ECMR"},
			check: func(t *testing.T, sv domain.ScoredVehicle) {
				assert.Equal(t, 1.0, sv.CategoryMatch)
			},
		},
		{
			name:    "no ideal categories",
			persona: domain.Persona{},
			vehicle: domain.Vehicle{ACRISSCode: "ECMR"},
			check: func(t *testing.T, sv domain.ScoredVehicle) {
				assert.Equal(t, 0.0, sv.CategoryMatch)
			},
		},
		{
			name:    "undeterminable class",
			persona: domain.Persona{IdealCategory: []string{"E"}},
			vehicle: domain.Vehicle{GroupType: "Coupe"},
			check: func(t *testing.T, sv domain.ScoredVehicle) {
				assert.Equal(t, 0.0, sv.CategoryMatch)
			},
		},
		{
			name:    "missing price has no penalty",
			persona: domain.Persona{PriceSensitivity: domain.LevelHigh},
			vehicle: domain.Vehicle{},
			check: func(t *testing.T, sv domain.ScoredVehicle) {
				assert.Equal(t, 0.0, sv.PricePenalty)
			},
		},
		{
			name:    "unknown sensitivity treated as low",
			persona: domain.Persona{PriceSensitivity: "whatever"},
			vehicle: domain.Vehicle{Price: domain.Price(100)},
			check: func(t *testing.T, sv domain.ScoredVehicle) {
				assert.Equal(t, 0.5, sv.PricePenalty)
				assert.Equal(t, 0.0, sv.DistancePenalty)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, ScoreVehicle(tt.persona, persona.UserTags(tt.persona), tt.vehicle))
		})
	}
}

func TestScoreVehicle_Pure(t *testing.T) {
	t.Parallel()

	for _, p := range persona.Catalog() {
		tags := persona.UserTags(p)
		for _, v := range []domain.Vehicle{evCoupe, sevenSeatSUV} {
			a := ScoreVehicle(p, tags, v)
			b := ScoreVehicle(p, tags, v)
			assert.Equal(t, a, b, "%s / %s", p.ID, v.ID)
		}
	}
}

func TestScoreVehicle_EmptyUserTags(t *testing.T) {
	t.Parallel()

	sv := ScoreVehicle(domain.Persona{}, nil, sevenSeatSUV)
	assert.Equal(t, 0.0, sv.MatchScore)
}
