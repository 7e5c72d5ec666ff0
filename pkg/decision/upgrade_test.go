package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/rental-upsell/pkg/persona"
	score "github.com/donaldgifford/rental-upsell/pkg/scorer"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

func sv(id, acriss string, price *float64, total float64) domain.ScoredVehicle {
	return domain.ScoredVehicle{
		Vehicle:    domain.Vehicle{ID: id, ACRISSCode: acriss, Price: price},
		TotalScore: total,
	}
}

func TestSelectUpgrade_EconomyBooking(t *testing.T) {
	t.Parallel()

	p, ok := persona.Lookup(persona.LuxuryEnthusiast)
	require.True(t, ok)
	tags := persona.UserTags(p)

	raw := []domain.Vehicle{
		{
			ID: "corsa", Brand: "Opel", Model: "Corsa", GroupType: "Economy", ACRISSCode: "ECMR",
			Seats: 5, FuelType: "Petrol", Transmission: "Manual", Price: domain.Price(50),
		},
		{
			ID: "panda", Brand: "Fiat", Model: "Panda", GroupType: "Economy", ACRISSCode: "EDMR",
			Seats: 4, FuelType: "Petrol", Transmission: "Manual", Price: domain.Price(45),
		},
		{
			ID: "x5", Brand: "BMW", Model: "X5", GroupType: "SUV", ACRISSCode: "LFAR",
			Seats: 5, FuelType: "Diesel", Transmission: "Automatic", Price: domain.Price(130),
		},
	}
	scored := score.RankVehicles(p, tags, raw)
	booking := &domain.Booking{ID: "b1", BookedCategory: "ECAR"}

	pair, ok := SelectUpgrade(scored, raw, booking, "", nil)
	require.True(t, ok)
	assert.Equal(t, "corsa", pair.From.Vehicle.ID, "worst vehicle in the booked class")
	assert.Equal(t, "x5", pair.To.Vehicle.ID)
	assert.InDelta(t, 80.0, pair.PriceDifference, 1e-9)
	assert.Greater(t, pair.To.TotalScore, pair.From.TotalScore)
	assert.Greater(t, pair.To.Vehicle.DailyPrice(), pair.From.Vehicle.DailyPrice())
}

func TestCurrentVehicle(t *testing.T) {
	t.Parallel()

	scored := []domain.ScoredVehicle{
		sv("lux", "LDAR", domain.Price(150), 6),
		sv("eco-good", "EDMR", domain.Price(40), 4),
		sv("eco-bad", "ECMR", domain.Price(45), 2),
		sv("mini", "MBMR", domain.Price(30), 1),
	}
	raw := []domain.Vehicle{{ID: "filtered", Price: domain.Price(20)}}
	rescore := func(v domain.Vehicle) domain.ScoredVehicle {
		return domain.ScoredVehicle{Vehicle: v, TotalScore: -50}
	}

	tests := []struct {
		name     string
		booking  *domain.Booking
		forcedID string
		want     string
	}{
		{name: "forced in ranking", booking: &domain.Booking{BookedCategory: "ECAR"}, forcedID: "lux", want: "lux"},
		{name: "forced outside ranking is rescored", forcedID: "filtered", want: "filtered"},
		{name: "unknown forced falls back to class", booking: &domain.Booking{BookedCategory: "ECAR"}, forcedID: "ghost", want: "eco-bad"},
		{name: "lower case booked class", booking: &domain.Booking{BookedCategory: "edmr"}, want: "eco-bad"},
		{name: "class with no vehicles", booking: &domain.Booking{BookedCategory: "PDAR"}, want: "mini"},
		{name: "no booked class", booking: &domain.Booking{}, want: "mini"},
		{name: "nil booking", want: "mini"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := CurrentVehicle(scored, raw, tt.booking, tt.forcedID, rescore)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.Vehicle.ID)
		})
	}
}

func TestCurrentVehicle_Empty(t *testing.T) {
	t.Parallel()

	_, ok := CurrentVehicle(nil, nil, &domain.Booking{BookedCategory: "ECAR"}, "", nil)
	assert.False(t, ok)

	_, ok = SelectUpgrade(nil, nil, nil, "", nil)
	assert.False(t, ok)
}

func TestFindUpgrade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		scored []domain.ScoredVehicle
		from   domain.ScoredVehicle
		want   string
		wantOK bool
	}{
		{
			name: "first qualifying in score order",
			scored: []domain.ScoredVehicle{
				sv("cheap-great", "", domain.Price(40), 9),
				sv("pricey-good", "", domain.Price(90), 7),
				sv("pricier-ok", "", domain.Price(120), 6),
				sv("from", "", domain.Price(50), 3),
			},
			from:   sv("from", "", domain.Price(50), 3),
			want:   "pricey-good",
			wantOK: true,
		},
		{
			name: "equal price rejected",
			scored: []domain.ScoredVehicle{
				sv("same-price", "", domain.Price(50), 9),
				sv("from", "", domain.Price(50), 3),
			},
			from: sv("from", "", domain.Price(50), 3),
		},
		{
			name: "equal score rejected",
			scored: []domain.ScoredVehicle{
				sv("same-score", "", domain.Price(80), 3),
				sv("from", "", domain.Price(50), 3),
			},
			from: sv("from", "", domain.Price(50), 3),
		},
		{
			name: "missing price counts as zero",
			scored: []domain.ScoredVehicle{
				sv("priced", "", domain.Price(10), 5),
				sv("from", "", nil, 1),
			},
			from:   sv("from", "", nil, 1),
			want:   "priced",
			wantOK: true,
		},
		{
			name:   "only the current vehicle",
			scored: []domain.ScoredVehicle{sv("from", "", domain.Price(50), 3)},
			from:   sv("from", "", domain.Price(50), 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := FindUpgrade(tt.scored, tt.from)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got.Vehicle.ID)
			}
		})
	}
}

func TestSelectUpgrade_NoUpgradeKeepsFrom(t *testing.T) {
	t.Parallel()

	scored := []domain.ScoredVehicle{
		sv("a", "EDMR", domain.Price(40), 5),
		sv("b", "ECMR", domain.Price(60), 2),
	}
	pair, ok := SelectUpgrade(scored, nil, &domain.Booking{BookedCategory: "ECAR"}, "", nil)
	assert.False(t, ok)
	assert.Equal(t, "b", pair.From.Vehicle.ID)
	assert.Zero(t, pair.PriceDifference)
}
