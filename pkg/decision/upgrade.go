package decision

import (
	"strings"

	"github.com/donaldgifford/rental-upsell/pkg/tagging"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// Pairing is a current vehicle and the upgrade suggested in its place.
type Pairing struct {
	From            domain.ScoredVehicle `json:"from"`
	To              domain.ScoredVehicle `json:"to"`
	PriceDifference float64              `json:"price_difference"`
}

// CurrentVehicle resolves the vehicle the customer is assumed to have.
//
// Resolution order: forcedID in scored, else forcedID in raw (scored with
// rescore, since it may have been filtered out of the ranking), else the
// lowest-scoring vehicle of the booked class, else the lowest-scoring
// vehicle overall. scored must be sorted by TotalScore descending.
func CurrentVehicle(
	scored []domain.ScoredVehicle,
	raw []domain.Vehicle,
	booking *domain.Booking,
	forcedID string,
	rescore func(domain.Vehicle) domain.ScoredVehicle,
) (domain.ScoredVehicle, bool) {
	if forcedID != "" {
		for i := range scored {
			if scored[i].Vehicle.ID == forcedID {
				return scored[i], true
			}
		}
		if rescore != nil {
			for _, v := range raw {
				if v.ID == forcedID {
					return rescore(v), true
				}
			}
		}
	}

	if len(scored) == 0 {
		return domain.ScoredVehicle{}, false
	}

	if class := bookedClass(booking); class != "" {
		for i := len(scored) - 1; i >= 0; i-- {
			if code, ok := tagging.CategoryCode(scored[i].Vehicle); ok && code == class {
				return scored[i], true
			}
		}
	}

	return scored[len(scored)-1], true
}

func bookedClass(b *domain.Booking) string {
	if b == nil || b.BookedCategory == "" {
		return ""
	}
	return strings.ToUpper(b.BookedCategory[:1])
}

// FindUpgrade returns the first vehicle in scored, which must be sorted by
// TotalScore descending, that is not from, costs strictly more and scores
// strictly higher. A missing price counts as zero.
func FindUpgrade(scored []domain.ScoredVehicle, from domain.ScoredVehicle) (domain.ScoredVehicle, bool) {
	fromPrice := from.Vehicle.DailyPrice()
	for i := range scored {
		sv := scored[i]
		if sv.Vehicle.ID == from.Vehicle.ID {
			continue
		}
		if sv.Vehicle.DailyPrice() <= fromPrice {
			continue
		}
		if sv.TotalScore > from.TotalScore {
			return sv, true
		}
	}
	return domain.ScoredVehicle{}, false
}

// SelectUpgrade resolves the current vehicle and searches for an upgrade.
// The boolean is false when no vehicle qualifies, which is an expected
// outcome and not an error.
func SelectUpgrade(
	scored []domain.ScoredVehicle,
	raw []domain.Vehicle,
	booking *domain.Booking,
	forcedID string,
	rescore func(domain.Vehicle) domain.ScoredVehicle,
) (Pairing, bool) {
	from, ok := CurrentVehicle(scored, raw, booking, forcedID, rescore)
	if !ok {
		return Pairing{}, false
	}
	to, ok := FindUpgrade(scored, from)
	if !ok {
		return Pairing{From: from}, false
	}
	return Pairing{
		From:            from,
		To:              to,
		PriceDifference: to.Vehicle.DailyPrice() - from.Vehicle.DailyPrice(),
	}, true
}
