package decision

import (
	"math"

	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// ReasonNoViableOffer is attached to a FinalOffer of type none.
const ReasonNoViableOffer = "No suitable car upgrade or protection offer found for this trip."

// Decision is the outcome of one arbitration strategy. A strategy fills only
// the fields it owns: FinalOfferArbiter sets FinalOffer, LegacyArbiter sets
// PrimaryOfferType.
type Decision struct {
	FinalOffer       domain.FinalOffer       `json:"final_offer"`
	PrimaryOfferType domain.PrimaryOfferType `json:"primary_offer_type"`
}

// Arbiter decides what to offer given the best car and best protection
// candidates. Either candidate may be nil.
type Arbiter interface {
	Decide(p *domain.Persona, bestCar *domain.ScoredVehicle, bestProtection *domain.ScoredProtection) Decision
}

// FinalOfferArbiter biases both raw scores by persona, requires MinScore on
// the biased score and breaks near-ties (within Margin) on risk attitude and
// trip purpose.
type FinalOfferArbiter struct {
	MinScore float64
	Margin   float64
}

// NewFinalOfferArbiter returns a FinalOfferArbiter with the standard
// threshold of 0.5 and tie margin of 0.2.
func NewFinalOfferArbiter() FinalOfferArbiter {
	return FinalOfferArbiter{MinScore: 0.5, Margin: 0.2}
}

// OfferScores returns the biased car and protection scores. A missing
// candidate scores negative infinity.
func OfferScores(p *domain.Persona, bestCar *domain.ScoredVehicle, bestProtection *domain.ScoredProtection) (car, protection float64) {
	car, protection = math.Inf(-1), math.Inf(-1)
	if bestCar != nil {
		car = bestCar.TotalScore + CarBias(p)
	}
	if bestProtection != nil {
		protection = bestProtection.TotalScore + ProtectionBias(p)
	}
	return car, protection
}

// Decide implements Arbiter.
func (a FinalOfferArbiter) Decide(p *domain.Persona, bestCar *domain.ScoredVehicle, bestProtection *domain.ScoredProtection) Decision {
	return Decision{FinalOffer: a.decide(p, bestCar, bestProtection)}
}

func (a FinalOfferArbiter) decide(p *domain.Persona, bestCar *domain.ScoredVehicle, bestProtection *domain.ScoredProtection) domain.FinalOffer {
	carScore, protScore := OfferScores(p, bestCar, bestProtection)
	carOK := bestCar != nil && carScore >= a.MinScore
	protOK := bestProtection != nil && protScore >= a.MinScore

	switch {
	case !carOK && !protOK:
		return domain.NoOffer(ReasonNoViableOffer)
	case carOK && !protOK:
		return domain.CarOffer(*bestCar)
	case !carOK && protOK:
		return domain.ProtectionOffer(*bestProtection)
	}

	switch {
	case carScore > protScore+a.Margin:
		return domain.CarOffer(*bestCar)
	case protScore > carScore+a.Margin:
		return domain.ProtectionOffer(*bestProtection)
	case p.RiskAttitude == domain.RiskAverse:
		return domain.ProtectionOffer(*bestProtection)
	default:
		// Business travellers and everyone else lean towards the car.
		return domain.CarOffer(*bestCar)
	}
}

// LegacyArbiter is the three-way classifier kept for display fields. It
// compares raw scores against fixed thresholds and can answer "both".
type LegacyArbiter struct {
	CarThreshold        float64
	ProtectionThreshold float64
}

// NewLegacyArbiter returns a LegacyArbiter with thresholds 2.0 (car) and
// 3.0 (protection).
func NewLegacyArbiter() LegacyArbiter {
	return LegacyArbiter{CarThreshold: 2.0, ProtectionThreshold: 3.0}
}

// Decide implements Arbiter.
func (a LegacyArbiter) Decide(p *domain.Persona, bestCar *domain.ScoredVehicle, bestProtection *domain.ScoredProtection) Decision {
	return Decision{PrimaryOfferType: a.classify(p, bestCar, bestProtection)}
}

func (a LegacyArbiter) classify(p *domain.Persona, bestCar *domain.ScoredVehicle, bestProtection *domain.ScoredProtection) domain.PrimaryOfferType {
	switch {
	case bestCar == nil && bestProtection == nil:
		return domain.PrimaryNone
	case bestProtection == nil:
		return domain.PrimaryCar
	case bestCar == nil:
		return domain.PrimaryProtection
	}

	carGood := bestCar.TotalScore > a.CarThreshold
	protGood := bestProtection.TotalScore > a.ProtectionThreshold

	if p.RiskAttitude == domain.RiskAverse {
		switch {
		case protGood && carGood:
			return domain.PrimaryBoth
		case protGood:
			return domain.PrimaryProtection
		case carGood:
			return domain.PrimaryCar
		}
		return domain.PrimaryNone
	}

	switch {
	case carGood && protGood:
		return domain.PrimaryBoth
	case carGood:
		return domain.PrimaryCar
	case protGood:
		return domain.PrimaryProtection
	}
	return domain.PrimaryNone
}

// Arbitrate runs both strategies and returns their outputs side by side.
// The two are not reconciled and may disagree.
func Arbitrate(p *domain.Persona, bestCar *domain.ScoredVehicle, bestProtection *domain.ScoredProtection) Decision {
	return merge(p, bestCar, bestProtection, NewFinalOfferArbiter(), NewLegacyArbiter())
}

func merge(p *domain.Persona, bestCar *domain.ScoredVehicle, bestProtection *domain.ScoredProtection, arbiters ...Arbiter) Decision {
	var out Decision
	for _, a := range arbiters {
		d := a.Decide(p, bestCar, bestProtection)
		if d.FinalOffer.Type != "" {
			out.FinalOffer = d.FinalOffer
		}
		if d.PrimaryOfferType != "" {
			out.PrimaryOfferType = d.PrimaryOfferType
		}
	}
	return out
}

// DecideFinalOffer runs the standard FinalOfferArbiter.
func DecideFinalOffer(p *domain.Persona, bestCar *domain.ScoredVehicle, bestProtection *domain.ScoredProtection) domain.FinalOffer {
	return NewFinalOfferArbiter().decide(p, bestCar, bestProtection)
}

// DecidePrimaryOfferType runs the standard LegacyArbiter.
func DecidePrimaryOfferType(p *domain.Persona, bestCar *domain.ScoredVehicle, bestProtection *domain.ScoredProtection) domain.PrimaryOfferType {
	return NewLegacyArbiter().classify(p, bestCar, bestProtection)
}
