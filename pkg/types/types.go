// Package domain defines the core business types for the rental upsell engine.
package domain

import (
	"slices"
	"time"
)

// Tag is a short machine-readable label describing one attribute of a persona,
// vehicle, protection package or addon.
type Tag string

// TripPurpose is why the customer is renting.
type TripPurpose string

// Trip purpose constants.
const (
	TripBusiness       TripPurpose = "business"
	TripVacation       TripPurpose = "vacation"
	TripVisitingFamily TripPurpose = "visiting_family"
	TripWeekend        TripPurpose = "weekend_trip"
	TripMoving         TripPurpose = "moving"
)

// GroupType describes who travels with the customer.
type GroupType string

// Group type constants.
const (
	GroupSolo    GroupType = "solo"
	GroupCouple  GroupType = "couple"
	GroupFamily  GroupType = "family"
	GroupFriends GroupType = "friends"
)

// Level is a generic low/medium/high preference level.
type Level string

// Level constants.
const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// LuggageLevel describes how much luggage the group carries.
type LuggageLevel string

// Luggage level constants.
const (
	LuggageLight  LuggageLevel = "light"
	LuggageNormal LuggageLevel = "normal"
	LuggageALot   LuggageLevel = "a_lot"
)

// BrandPreference describes the appetite for premium brands.
type BrandPreference string

// Brand preference constants.
const (
	BrandNone          BrandPreference = "none"
	BrandLikesPremium  BrandPreference = "likes_premium"
	BrandMustBePremium BrandPreference = "must_be_premium"
)

// EcoPreference describes the appetite for electrified vehicles.
type EcoPreference string

// Eco preference constants.
const (
	EcoNoPreference EcoPreference = "no_preference"
	EcoLikesHybrid  EcoPreference = "likes_hybrid"
	EcoWantsEV      EcoPreference = "wants_ev"
)

// DrivingStyle describes how the customer drives.
type DrivingStyle string

// Driving style constants.
const (
	DrivingCalm   DrivingStyle = "calm"
	DrivingNormal DrivingStyle = "normal"
	DrivingSporty DrivingStyle = "sporty"
)

// RiskAttitude describes how the customer feels about uninsured risk.
type RiskAttitude string

// Risk attitude constants.
const (
	RiskAverse   RiskAttitude = "risk_averse"
	RiskBalanced RiskAttitude = "balanced"
	RiskTaker    RiskAttitude = "risk_taker"
)

// InsuranceUptake describes how often the customer bought protection before.
type InsuranceUptake string

// Insurance uptake constants.
const (
	UptakeAlways    InsuranceUptake = "always"
	UptakeSometimes InsuranceUptake = "sometimes"
	UptakeNever     InsuranceUptake = "never"
)

// Tone is the register used when talking to the customer.
type Tone string

// Tone constants.
const (
	ToneFormal Tone = "formal"
	ToneCasual Tone = "casual"
)

// Persona is an immutable profile describing a customer archetype.
type Persona struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`

	TripPurpose      TripPurpose  `json:"trip_purpose"`
	GroupType        GroupType    `json:"group_type"`
	GroupSize        int          `json:"group_size"`
	TripDurationDays int          `json:"trip_duration_days"`
	LuggageLevel     LuggageLevel `json:"luggage_level"`

	ComfortPreference Level           `json:"comfort_preference"`
	BrandPreference   BrandPreference `json:"brand_preference"`
	EcoPreference     EcoPreference   `json:"eco_preference"`
	DrivingStyle      DrivingStyle    `json:"driving_style"`
	TechAffinity      Level           `json:"tech_affinity"`
	PriceSensitivity  Level           `json:"price_sensitivity"`

	RiskAttitude            RiskAttitude    `json:"risk_attitude"`
	PreviousInsuranceUptake InsuranceUptake `json:"previous_insurance_uptake"`
	// FranchiseTolerance is the tolerance for a high deductible.
	FranchiseTolerance Level `json:"franchise_tolerance"`

	WantsFastPickup bool `json:"wants_fast_pickup"`
	// IdealCategory holds single-letter ACRISS class codes in order of preference.
	IdealCategory []string `json:"ideal_category,omitempty"`
	Language      string   `json:"language"`
	ToneOfVoice   Tone     `json:"tone_of_voice"`
}

// PrefersCategory reports whether code is one of the persona's ideal categories.
func (p *Persona) PrefersCategory(code string) bool {
	return slices.Contains(p.IdealCategory, code)
}

// Booking is the rental booking snapshot returned by the data source.
type Booking struct {
	ID             string     `json:"id"`
	Status         string     `json:"status,omitempty"`
	BookedCategory string     `json:"booked_category,omitempty"`
	PickupLocation string     `json:"pickup_location,omitempty"`
	Start          *time.Time `json:"start,omitempty"`
	End            *time.Time `json:"end,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// DurationDays returns the booked rental duration in days, or 0 when either
// end of the booking window is unknown.
func (b *Booking) DurationDays() float64 {
	if b.Start == nil || b.End == nil {
		return 0
	}
	return b.End.Sub(*b.Start).Hours() / 24
}

// Vehicle is a rental car offered for a booking.
type Vehicle struct {
	ID           string   `json:"id"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	ACRISSCode   string   `json:"acriss_code,omitempty"`
	Group        string   `json:"group,omitempty"`
	GroupType    string   `json:"group_type,omitempty"`
	Seats        int      `json:"seats,omitempty"`
	Bags         int      `json:"bags,omitempty"`
	FuelType     string   `json:"fuel_type,omitempty"`
	Transmission string   `json:"transmission,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Currency     string   `json:"currency,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
}

// DailyPrice returns the daily price, or 0 when the vehicle carries no price.
func (v *Vehicle) DailyPrice() float64 {
	if v.Price == nil {
		return 0
	}
	return *v.Price
}

// DisplayName returns the best human-readable name for the vehicle.
func (v *Vehicle) DisplayName() string {
	if v.Model != "" {
		return v.Model
	}
	return v.ID
}

// CoverageItem is a single included or excluded protection line item.
type CoverageItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ProtectionPackage is an insurance/protection bundle offered for a booking.
type ProtectionPackage struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Description      string         `json:"description,omitempty"`
	Price            *float64       `json:"price,omitempty"`
	Currency         string         `json:"currency,omitempty"`
	DeductibleAmount *float64       `json:"deductible_amount,omitempty"`
	RatingStars      int            `json:"rating_stars,omitempty"`
	Includes         []CoverageItem `json:"includes,omitempty"`
	Excludes         []CoverageItem `json:"excludes,omitempty"`
}

// DailyPrice returns the daily price, or 0 when the package carries no price.
func (p *ProtectionPackage) DailyPrice() float64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}

// Addon is an optional extra (child seat, GPS, ...) offered for a booking.
type Addon struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency,omitempty"`
	Selected     bool    `json:"selected,omitempty"`
	CategoryName string  `json:"category_name,omitempty"`
}

// Price returns a pointer to v, for building optional price fields.
func Price(v float64) *float64 {
	return &v
}
