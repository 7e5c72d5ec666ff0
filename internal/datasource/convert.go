package datasource

import (
	"time"

	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

const defaultCurrency = "EUR"

// ToBooking converts a wire booking. Unparseable timestamps are left nil.
func ToBooking(w *BookingWire) domain.Booking {
	return domain.Booking{
		ID:             w.ID,
		Status:         w.Status,
		BookedCategory: w.BookedCategory,
		PickupLocation: w.PickupLocation,
		Start:          parseTime(w.Start),
		End:            parseTime(w.End),
		CreatedAt:      parseTime(w.CreatedAt),
	}
}

func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

// ToVehicles converts deals into domain vehicles. A deal without a display
// price yields a vehicle with a nil Price.
func ToVehicles(deals []Deal) []domain.Vehicle {
	vehicles := make([]domain.Vehicle, 0, len(deals))
	for i := range deals {
		vehicles = append(vehicles, toVehicle(&deals[i]))
	}
	return vehicles
}

func toVehicle(d *Deal) domain.Vehicle {
	w := &d.Vehicle
	v := domain.Vehicle{
		ID:           w.ID,
		Brand:        w.Brand,
		Model:        w.Model,
		ACRISSCode:   w.ACRISSCode,
		GroupType:    w.GroupType,
		Seats:        w.PassengersCount,
		Bags:         w.BagsCount,
		FuelType:     w.FuelType,
		Transmission: w.TransmissionType,
	}

	if len(w.Images) > 0 {
		v.ImageURL = w.Images[0]
	}

	if p := d.Pricing.DisplayPrice; p != nil {
		v.Price = domain.Price(p.Amount)
		v.Currency = p.Currency
	}

	return v
}

// ToProtections converts wire protection packages.
func ToProtections(pkgs []ProtectionWire) []domain.ProtectionPackage {
	out := make([]domain.ProtectionPackage, 0, len(pkgs))
	for i := range pkgs {
		out = append(out, toProtection(&pkgs[i]))
	}
	return out
}

func toProtection(w *ProtectionWire) domain.ProtectionPackage {
	amount, currency := displayAmount(w.Price)
	p := domain.ProtectionPackage{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Price:       domain.Price(amount),
		Currency:    currency,
		RatingStars: w.RatingStars,
		Includes:    toCoverage(w.Includes),
		Excludes:    toCoverage(w.Excludes),
	}

	if w.DeductibleAmount != nil {
		p.DeductibleAmount = domain.Price(w.DeductibleAmount.Value)
	}

	return p
}

func toCoverage(items []CoverageWire) []domain.CoverageItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]domain.CoverageItem, len(items))
	for i, c := range items {
		out[i] = domain.CoverageItem{Title: c.Title, Description: c.Description}
	}
	return out
}

// ToAddons flattens addon categories into a list of addons.
func ToAddons(categories []AddonCategory) []domain.Addon {
	out := []domain.Addon{}
	for _, cat := range categories {
		for i := range cat.Options {
			opt := &cat.Options[i]
			amount, currency := displayAmount(opt.AdditionalInfo.Price)
			out = append(out, domain.Addon{
				ID:           opt.ChargeDetail.ID,
				Name:         opt.ChargeDetail.Title,
				Description:  opt.ChargeDetail.Description,
				Price:        amount,
				Currency:     currency,
				Selected:     opt.AdditionalInfo.IsSelected,
				CategoryName: cat.Name,
			})
		}
	}
	return out
}

// displayAmount returns the display price, defaulting to 0 EUR.
func displayAmount(p DisplayPrice) (float64, string) {
	if p.DisplayPrice == nil {
		return 0, defaultCurrency
	}
	currency := p.DisplayPrice.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	return p.DisplayPrice.Amount, currency
}
