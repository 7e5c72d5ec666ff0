// Package decision pairs a current vehicle with an upgrade candidate and
// arbitrates between a car upgrade and a protection offer.
package decision

import domain "github.com/donaldgifford/rental-upsell/pkg/types"

// CarBias is the persona's general appetite for a car upgrade, added to the
// best raw car score before thresholding.
func CarBias(p *domain.Persona) float64 {
	b := 0.0

	if p.ComfortPreference == domain.LevelHigh {
		b += 0.8
	}
	switch p.BrandPreference {
	case domain.BrandLikesPremium:
		b += 0.5
	case domain.BrandMustBePremium:
		b += 1.0
	}
	if p.TripPurpose == domain.TripBusiness {
		b += 0.5
	}
	if p.EcoPreference == domain.EcoWantsEV {
		b += 0.3
	}

	switch p.PriceSensitivity {
	case domain.LevelHigh:
		b -= 1.0
	case domain.LevelMedium:
		b -= 0.4
	}

	return b
}

// ProtectionBias is the persona's general appetite for extra protection.
func ProtectionBias(p *domain.Persona) float64 {
	b := 0.0

	switch p.RiskAttitude {
	case domain.RiskAverse:
		b += 1.0
	case domain.RiskBalanced:
		b += 0.3
	case domain.RiskTaker:
		b -= 0.3
	}

	switch p.PreviousInsuranceUptake {
	case domain.UptakeAlways:
		b += 0.7
	case domain.UptakeNever:
		b -= 0.5
	}

	if p.FranchiseTolerance == domain.LevelLow {
		b += 0.5
	}

	switch p.PriceSensitivity {
	case domain.LevelHigh:
		b -= 0.3
	case domain.LevelMedium:
		b -= 0.1
	}

	return b
}
