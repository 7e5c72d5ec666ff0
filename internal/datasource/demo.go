package datasource

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

const (
	demoPickupLocation = "HackaTUM Campus"
	demoBookedCategory = "ECMR"
	demoDurationDays   = 3
	imageBase          = "https://www.sixt.com/fileadmin/files/global/user_upload/fleet/png/350x200/"
)

// demoNamespace seeds the deterministic booking ids of DemoSource.
var demoNamespace = uuid.MustParse("6f1c0a52-8d0b-4d6e-9b6a-0e3f3c2a9d11")

// DemoVehicles returns the in-memory demo fleet.
func DemoVehicles() []domain.Vehicle {
	return []domain.Vehicle{
		{
			ID: "demo-economy-corsa", Brand: "Opel", Model: "Corsa", ACRISSCode: "ECMR",
			Group: "Economy", GroupType: "Economy", Seats: 5, Bags: 1,
			FuelType: "Petrol", Transmission: "Manual",
			Price: domain.Price(50), Currency: "EUR", ImageURL: imageBase + "opel-corsa-5d-weiss-2020.png",
		},
		{
			ID: "demo-ev-compact", Brand: "Volkswagen", Model: "ID.3", ACRISSCode: "CDAE",
			Group: "Compact", GroupType: "Compact", Seats: 4, Bags: 2,
			FuelType: "EV", Transmission: "Automatic",
			Price: domain.Price(75), Currency: "EUR", ImageURL: imageBase + "vw-id3-5d-weiss-2020.png",
		},
		{
			ID: "demo-premium-sedan", Brand: "BMW", Model: "5 Series", ACRISSCode: "PDAR",
			Group: "Sedan", GroupType: "Sedan", Seats: 5, Bags: 3,
			FuelType: "Petrol", Transmission: "Automatic",
			Price: domain.Price(105), Currency: "EUR", ImageURL: imageBase + "bmw-5er-limousine-4d-schwarz-2020.png",
		},
		{
			ID: "demo-suv-family", Brand: "Audi", Model: "Q7", ACRISSCode: "PFAR",
			Group: "SUV", GroupType: "SUV", Seats: 7, Bags: 4,
			FuelType: "Petrol", Transmission: "Automatic",
			Price: domain.Price(120), Currency: "EUR", ImageURL: imageBase + "audi-q7-5d-grau-2020.png",
		},
		{
			ID: "demo-suv-x5", Brand: "BMW", Model: "X5", ACRISSCode: "LFAR",
			Group: "SUV", GroupType: "SUV", Seats: 5, Bags: 4,
			FuelType: "Diesel", Transmission: "Automatic",
			Price: domain.Price(130), Currency: "EUR", ImageURL: imageBase + "bmw-x5-5d-schwarz-2023.png",
		},
		{
			ID: "demo-convertible", Brand: "BMW", Model: "4 Series Convertible", ACRISSCode: "STAR",
			Group: "Convertible", GroupType: "Convertible", Seats: 4, Bags: 2,
			FuelType: "Petrol", Transmission: "Automatic",
			Price: domain.Price(140), Currency: "EUR", ImageURL: imageBase + "bmw-4er-cabrio-2d-schwarz-2021.png",
		},
		{
			ID: "demo-ev-coupe", Brand: "Porsche", Model: "911 EV", ACRISSCode: "XTAE",
			Group: "Sports", GroupType: "Coupe", Seats: 2, Bags: 1,
			FuelType: "Electric", Transmission: "Automatic",
			Price: domain.Price(160), Currency: "EUR", ImageURL: imageBase + "porsche-911-2d-rot-2024.png",
		},
	}
}

// DemoProtections returns the in-memory demo protection packages.
func DemoProtections() []domain.ProtectionPackage {
	return []domain.ProtectionPackage{
		{
			ID:               "demo-full-coverage-plus",
			Name:             "Full Coverage Plus",
			Description:      "Zero deductible, includes glass & tyre protection, roadside assistance.",
			Price:            domain.Price(35),
			Currency:         "EUR",
			DeductibleAmount: domain.Price(0),
			RatingStars:      5,
			Includes: []domain.CoverageItem{
				{Title: "Collision damage", Description: "Damage to the rental car with no deductible."},
				{Title: "Glass and tyres", Description: "Windscreen, windows and tyres."},
				{Title: "Roadside assistance", Description: "24/7 breakdown help."},
			},
		},
		{
			ID:               "demo-basic-protection",
			Name:             "Basic Protection",
			Description:      "Reduced deductible for major damage.",
			Price:            domain.Price(15),
			Currency:         "EUR",
			DeductibleAmount: domain.Price(1100),
			RatingStars:      2,
			Excludes: []domain.CoverageItem{
				{Title: "Glass and tyres"},
			},
		},
		{
			ID:          "demo-glass-tyre",
			Name:        "Glass & Tyre Protection",
			Description: "Covers damage to windscreen and tyres.",
			Price:       domain.Price(10),
			Currency:    "EUR",
			RatingStars: 3,
		},
	}
}

// DemoAddons returns the in-memory demo addons.
func DemoAddons() []domain.Addon {
	return []domain.Addon{
		{
			ID: "demo-child-seat", Name: "Child Seat", Description: "Safety seat for children up to 4 years.",
			Price: 12, Currency: "EUR", CategoryName: "Child seats",
		},
		{
			ID: "demo-gps", Name: "GPS Navigation", Description: "Satellite navigation system.",
			Price: 8, Currency: "EUR", CategoryName: "Navigation",
		},
		{
			ID: "demo-wifi", Name: "Mobile Wi-Fi", Description: "Unlimited data hotspot.",
			Price: 10, Currency: "EUR", CategoryName: "Connectivity",
		},
	}
}

// DemoSource is an in-memory Source backed by a fixed catalog. Booking ids
// are derived from a counter so a fresh DemoSource always hands out the same
// sequence.
type DemoSource struct {
	mu       sync.Mutex
	bookings map[string]domain.Booking
	seq      int
	nowFunc  func() time.Time
}

// DemoOption configures the DemoSource.
type DemoOption func(*DemoSource)

// WithDemoNowFunc overrides the time function for testing.
func WithDemoNowFunc(f func() time.Time) DemoOption {
	return func(d *DemoSource) {
		d.nowFunc = f
	}
}

// NewDemoSource creates an empty DemoSource.
func NewDemoSource(opts ...DemoOption) *DemoSource {
	d := &DemoSource{
		bookings: make(map[string]domain.Booking),
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// CreateBooking implements Source.CreateBooking.
func (d *DemoSource) CreateBooking(_ context.Context) (domain.Booking, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	now := d.nowFunc().UTC()
	start := now.Truncate(time.Hour).Add(24 * time.Hour)
	end := start.AddDate(0, 0, demoDurationDays)

	b := domain.Booking{
		ID:             uuid.NewSHA1(demoNamespace, []byte(strconv.Itoa(d.seq))).String(),
		Status:         "booking",
		BookedCategory: demoBookedCategory,
		PickupLocation: demoPickupLocation,
		Start:          &start,
		End:            &end,
		CreatedAt:      &now,
	}
	d.bookings[b.ID] = b
	return b, nil
}

// GetBooking implements Source.GetBooking.
func (d *DemoSource) GetBooking(_ context.Context, bookingID string) (domain.Booking, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.bookings[bookingID]
	if !ok {
		return domain.Booking{}, ErrNotFound
	}
	return b, nil
}

// GetAvailableVehicles implements Source.GetAvailableVehicles.
func (d *DemoSource) GetAvailableVehicles(ctx context.Context, bookingID string) ([]domain.Vehicle, error) {
	if _, err := d.GetBooking(ctx, bookingID); err != nil {
		return nil, err
	}
	return DemoVehicles(), nil
}

// GetAvailableProtections implements Source.GetAvailableProtections.
func (d *DemoSource) GetAvailableProtections(
	ctx context.Context,
	bookingID string,
) ([]domain.ProtectionPackage, error) {
	if _, err := d.GetBooking(ctx, bookingID); err != nil {
		return nil, err
	}
	return DemoProtections(), nil
}

// GetAvailableAddons implements Source.GetAvailableAddons.
func (d *DemoSource) GetAvailableAddons(ctx context.Context, bookingID string) ([]domain.Addon, error) {
	if _, err := d.GetBooking(ctx, bookingID); err != nil {
		return nil, err
	}
	return DemoAddons(), nil
}

// Bookings returns the ids of all bookings created so far, sorted.
func (d *DemoSource) Bookings() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	ids := make([]string, 0, len(d.bookings))
	for id := range d.bookings {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
