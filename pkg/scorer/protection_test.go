package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/rental-upsell/pkg/persona"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

var (
	fullCoverage = domain.ProtectionPackage{
		ID: "full", Name: "Full Coverage Plus",
		Description: "Zero deductible, includes glass & tyre protection, roadside assistance.",
		Price:       domain.Price(35),
	}
	basicCoverage = domain.ProtectionPackage{
		ID: "basic", Name: "Basic Protection", Price: domain.Price(15),
	}
)

func TestProtectionWeightsFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		risk domain.RiskAttitude
		want ProtectionWeights
	}{
		{risk: domain.RiskAverse, want: ProtectionWeights{RiskCoverage: 6, PricePenalty: 2}},
		{risk: domain.RiskBalanced, want: ProtectionWeights{RiskCoverage: 4, PricePenalty: 2}},
		{risk: domain.RiskTaker, want: ProtectionWeights{RiskCoverage: 4, PricePenalty: 3}},
	}

	for _, tt := range tests {
		t.Run(string(tt.risk), func(t *testing.T) {
			t.Parallel()
			p := domain.Persona{RiskAttitude: tt.risk}
			assert.Equal(t, tt.want, ProtectionWeightsFor(&p))
		})
	}
}

func TestScoreProtection(t *testing.T) {
	t.Parallel()

	family, _ := persona.Lookup(persona.FamilyHolidayPlanner)
	backpacker, _ := persona.Lookup(persona.BudgetBackpacker)

	tests := []struct {
		name      string
		persona   domain.Persona
		pkg       domain.ProtectionPackage
		wantRisk  float64
		wantPen   float64
		wantTotal float64
	}{
		{
			name:    "risk averse full coverage",
			persona: family, pkg: fullCoverage,
			wantRisk: 7, wantPen: 0.7, wantTotal: 6*7 - 2*0.7,
		},
		{
			name:    "risk averse basic",
			persona: family, pkg: basicCoverage,
			wantRisk: 1, wantPen: 0.3, wantTotal: 6*1 - 2*0.3,
		},
		{
			name:    "price sensitive risk taker full coverage",
			persona: backpacker, pkg: fullCoverage,
			wantRisk: 6, wantPen: 1.4, wantTotal: 4*6 - 3*1.4,
		},
		{
			name:    "no price",
			persona: backpacker, pkg: domain.ProtectionPackage{Name: "Roadside"},
			wantRisk: 1, wantPen: 0, wantTotal: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sp := ScoreProtection(tt.persona, persona.UserTags(tt.persona), tt.pkg)
			assert.InDelta(t, tt.wantRisk, sp.RiskCoverageScore, 1e-9)
			assert.InDelta(t, tt.wantPen, sp.PricePenalty, 1e-9)
			assert.InDelta(t, tt.wantTotal, sp.TotalScore, 1e-9)
			assert.Equal(t, tt.pkg, sp.Protection)
		})
	}
}
