package domain

import "slices"

// ScoredVehicle is one vehicle scored against one persona.
type ScoredVehicle struct {
	Vehicle         Vehicle `json:"vehicle"`
	Tags            []Tag   `json:"tags"`
	MatchScore      float64 `json:"match_score"`
	SpaceFit        float64 `json:"space_fit"`
	EcoMatch        float64 `json:"eco_match"`
	BrandPremium    float64 `json:"brand_premium"`
	CategoryMatch   float64 `json:"category_match"`
	PricePenalty    float64 `json:"price_penalty"`
	DistancePenalty float64 `json:"distance_penalty"`
	TotalScore      float64 `json:"total_score"`
}

// ScoredProtection is one protection package scored against one persona.
type ScoredProtection struct {
	Protection        ProtectionPackage `json:"protection"`
	Tags              []Tag             `json:"tags"`
	RiskCoverageScore float64           `json:"risk_coverage_score"`
	PricePenalty      float64           `json:"price_penalty"`
	TotalScore        float64           `json:"total_score"`
}

// OfferType identifies which variant of FinalOffer is populated.
type OfferType string

// Offer type constants.
const (
	OfferCar        OfferType = "car"
	OfferProtection OfferType = "protection"
	OfferNone       OfferType = "none"
)

// FinalOffer is the single offer chosen for a booking. Exactly one of Car,
// Protection or Reason is set, matching Type. Build it with CarOffer,
// ProtectionOffer or NoOffer.
type FinalOffer struct {
	Type       OfferType         `json:"type"`
	Car        *ScoredVehicle    `json:"car,omitempty"`
	Protection *ScoredProtection `json:"protection,omitempty"`
	Reason     string            `json:"reason,omitempty"`
}

// CarOffer returns a car FinalOffer.
func CarOffer(sv ScoredVehicle) FinalOffer {
	return FinalOffer{Type: OfferCar, Car: &sv}
}

// ProtectionOffer returns a protection FinalOffer.
func ProtectionOffer(sp ScoredProtection) FinalOffer {
	return FinalOffer{Type: OfferProtection, Protection: &sp}
}

// NoOffer returns a FinalOffer explaining why nothing is offered.
func NoOffer(reason string) FinalOffer {
	return FinalOffer{Type: OfferNone, Reason: reason}
}

// PrimaryOfferType is the legacy three-way offer classification.
type PrimaryOfferType string

// Primary offer type constants.
const (
	PrimaryCar        PrimaryOfferType = "car"
	PrimaryProtection PrimaryOfferType = "protection"
	PrimaryBoth       PrimaryOfferType = "both"
	PrimaryNone       PrimaryOfferType = "none"
)

// MessageType identifies the kind of upsell message.
type MessageType string

// Message type constants.
const (
	MessageCarUpgrade MessageType = "car_upgrade"
	MessageProtection MessageType = "protection"
)

// UpsellMessage is the customer-facing copy for an offer.
type UpsellMessage struct {
	Type              MessageType `json:"type"`
	Headline          string      `json:"headline"`
	Bullets           []string    `json:"bullets"`
	Stat              string      `json:"stat,omitempty"`
	FormalExplanation string      `json:"formal_explanation"`
	LLMExplanation    string      `json:"llm_explanation,omitempty"`
}

// CarUpgradeOffer pairs the vehicle the customer has with the suggested upgrade.
type CarUpgradeOffer struct {
	FromVehicle     Vehicle       `json:"from_vehicle"`
	ToVehicle       Vehicle       `json:"to_vehicle"`
	FromTags        []Tag         `json:"from_tags"`
	ToTags          []Tag         `json:"to_tags"`
	Message         UpsellMessage `json:"message"`
	Score           float64       `json:"score"`
	PriceDifference float64       `json:"price_difference"`
}

// ProtectionUpgradeOffer is the suggested protection package.
type ProtectionUpgradeOffer struct {
	Protection      ProtectionPackage `json:"protection"`
	Tags            []Tag             `json:"tags"`
	Message         UpsellMessage     `json:"message"`
	Score           float64           `json:"score"`
	PriceDifference float64           `json:"price_difference"`
}

// RecommendationResult is everything computed for one recommendation request.
type RecommendationResult struct {
	BookingID            string                  `json:"booking_id"`
	Booking              Booking                 `json:"booking"`
	Persona              Persona                 `json:"persona"`
	UserTags             []Tag                   `json:"user_tags"`
	CarCandidates        []ScoredVehicle         `json:"car_candidates"`
	ProtectionCandidates []ScoredProtection      `json:"protection_candidates"`
	PrimaryOfferType     PrimaryOfferType        `json:"primary_offer_type"`
	BestCarOffer         *CarUpgradeOffer        `json:"best_car_offer,omitempty"`
	BestProtectionOffer  *ProtectionUpgradeOffer `json:"best_protection_offer,omitempty"`
	FinalOffer           FinalOffer              `json:"final_offer"`
}

// HasTag reports whether tags contains t.
func HasTag(tags []Tag, t Tag) bool {
	return slices.Contains(tags, t)
}
