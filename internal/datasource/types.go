package datasource

// Wire types for the Sixt booking API. They are converted to domain types in
// convert.go and never leave this package.

// Money is a Sixt amount with currency.
type Money struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
}

// DisplayPrice wraps the price shown to the customer.
type DisplayPrice struct {
	DisplayPrice *Money `json:"displayPrice,omitempty"`
}

// BookingWire is a booking as returned by /api/booking.
type BookingWire struct {
	ID             string `json:"id"`
	Status         string `json:"status,omitempty"`
	BookedCategory string `json:"bookedCategory,omitempty"`
	PickupLocation string `json:"pickupLocation,omitempty"`
	Start          string `json:"start,omitempty"`
	End            string `json:"end,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// VehicleWire is the vehicle part of a deal.
type VehicleWire struct {
	ID               string   `json:"id"`
	Brand            string   `json:"brand"`
	Model            string   `json:"model"`
	ACRISSCode       string   `json:"acrissCode"`
	Images           []string `json:"images,omitempty"`
	BagsCount        int      `json:"bagsCount"`
	PassengersCount  int      `json:"passengersCount"`
	GroupType        string   `json:"groupType"`
	TransmissionType string   `json:"transmissionType"`
	FuelType         string   `json:"fuelType"`
}

// Deal is one vehicle offer with its pricing.
type Deal struct {
	Vehicle VehicleWire `json:"vehicle"`
	Pricing struct {
		DisplayPrice *Money `json:"displayPrice,omitempty"`
		TotalPrice   *Money `json:"totalPrice,omitempty"`
	} `json:"pricing"`
}

// VehiclesResponse is the body of /api/booking/{id}/vehicles.
type VehiclesResponse struct {
	ReservationID string `json:"reservationId"`
	Deals         []Deal `json:"deals"`
}

// CoverageWire is an included or excluded coverage line.
type CoverageWire struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProtectionWire is a protection package.
type ProtectionWire struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Description      string       `json:"description,omitempty"`
	Price            DisplayPrice `json:"price"`
	DeductibleAmount *struct {
		Value float64 `json:"value"`
	} `json:"deductibleAmount,omitempty"`
	RatingStars int            `json:"ratingStars,omitempty"`
	Includes    []CoverageWire `json:"includes,omitempty"`
	Excludes    []CoverageWire `json:"excludes,omitempty"`
}

// ProtectionsResponse is the body of /api/booking/{id}/protections.
type ProtectionsResponse struct {
	ProtectionPackages []ProtectionWire `json:"protectionPackages"`
}

// AddonOption is one purchasable option inside an addon category.
type AddonOption struct {
	ChargeDetail struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description,omitempty"`
	} `json:"chargeDetail"`
	AdditionalInfo struct {
		Price      DisplayPrice `json:"price"`
		IsSelected bool         `json:"isSelected,omitempty"`
	} `json:"additionalInfo"`
}

// AddonCategory groups addon options.
type AddonCategory struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Options []AddonOption `json:"options"`
}

// AddonsResponse is the body of /api/booking/{id}/addons.
type AddonsResponse struct {
	Addons []AddonCategory `json:"addons"`
}
