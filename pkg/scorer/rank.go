package score

import (
	"slices"

	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// MinTotalScore is the sanity floor: candidates scoring at or below it are
// dropped before ranking.
const MinTotalScore = -10.0

// RankVehicles scores every vehicle, drops those at or below MinTotalScore
// and returns the rest sorted by TotalScore descending. Ties keep input order.
func RankVehicles(p domain.Persona, userTags []domain.Tag, vehicles []domain.Vehicle) []domain.ScoredVehicle {
	out := make([]domain.ScoredVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		sv := ScoreVehicle(p, userTags, v)
		if sv.TotalScore > MinTotalScore {
			out = append(out, sv)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.ScoredVehicle) int {
		return compareDesc(a.TotalScore, b.TotalScore)
	})
	return out
}

// RankProtections is the protection counterpart of RankVehicles.
func RankProtections(p domain.Persona, userTags []domain.Tag, pkgs []domain.ProtectionPackage) []domain.ScoredProtection {
	out := make([]domain.ScoredProtection, 0, len(pkgs))
	for _, pkg := range pkgs {
		sp := ScoreProtection(p, userTags, pkg)
		if sp.TotalScore > MinTotalScore {
			out = append(out, sp)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.ScoredProtection) int {
		return compareDesc(a.TotalScore, b.TotalScore)
	})
	return out
}

func compareDesc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}
