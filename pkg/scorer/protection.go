package score

import (
	"github.com/donaldgifford/rental-upsell/pkg/tagging"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// ProtectionWeights defines the relative importance of coverage versus price.
type ProtectionWeights struct {
	RiskCoverage float64 `json:"risk_coverage"`
	PricePenalty float64 `json:"price_penalty"`
}

// DefaultProtectionWeights returns the base protection weights.
func DefaultProtectionWeights() ProtectionWeights {
	return ProtectionWeights{RiskCoverage: 4, PricePenalty: 2}
}

// ProtectionWeightsFor returns the default weights adjusted for p's risk
// attitude.
func ProtectionWeightsFor(p *domain.Persona) ProtectionWeights {
	w := DefaultProtectionWeights()
	switch p.RiskAttitude {
	case domain.RiskAverse:
		w.RiskCoverage += 2
	case domain.RiskTaker:
		w.PricePenalty++
	}
	return w
}

// coverage points per protection tag.
var coveragePoints = []struct {
	tag    domain.Tag
	points float64
}{
	{tagging.TagFullCoverage, 3},
	{tagging.TagGlassProtection, 1},
	{tagging.TagTyreProtection, 1},
	{tagging.TagRoadsideAssistance, 1},
}

// ScoreProtection scores one protection package against a persona. userTags
// is accepted for symmetry with ScoreVehicle and does not affect the score.
func ScoreProtection(p domain.Persona, _ []domain.Tag, pkg domain.ProtectionPackage) domain.ScoredProtection {
	tags := tagging.ProtectionTags(pkg)
	w := ProtectionWeightsFor(&p)

	risk := 0.0
	for _, c := range coveragePoints {
		if domain.HasTag(tags, c.tag) {
			risk += c.points
		}
	}
	if p.RiskAttitude == domain.RiskAverse {
		risk++
	}

	penalty := 0.0
	if pkg.Price != nil {
		penalty = *pkg.Price / 50 * SensitivityMultiplier(p.PriceSensitivity)
	}

	return domain.ScoredProtection{
		Protection:        pkg,
		Tags:              tags,
		RiskCoverageScore: risk,
		PricePenalty:      penalty,
		TotalScore:        w.RiskCoverage*risk - w.PricePenalty*penalty,
	}
}
