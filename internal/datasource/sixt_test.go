package datasource_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/rental-upsell/internal/datasource"
)

const vehiclesBody = `{
	"reservationId": "b-1",
	"deals": [
		{
			"vehicle": {
				"id": "v-x5", "brand": "BMW", "model": "X5", "acrissCode": "LFAR",
				"images": ["https://img/x5.png", "https://img/x5-2.png"],
				"bagsCount": 4, "passengersCount": 5, "groupType": "SUV",
				"transmissionType": "Automatic", "fuelType": "Diesel"
			},
			"pricing": {"displayPrice": {"currency": "EUR", "amount": 130}}
		},
		{
			"vehicle": {"id": "v-corsa", "brand": "Opel", "model": "Corsa", "acrissCode": "ECMR"},
			"pricing": {}
		}
	]
}`

func TestSixtClient_GetAvailableVehicles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantErr    bool
		errIs      error
		errContain string
		wantCount  int
	}{
		{
			name: "deals converted",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/booking/b-1/vehicles", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(vehiclesBody))
			},
			wantCount: 2,
		},
		{
			name: "no deals",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"reservationId": "b-1"}`))
			},
			wantCount: 0,
		},
		{
			name: "booking not found",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantErr: true,
			errIs:   datasource.ErrNotFound,
		},
		{
			name: "server error with json body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"boom"}`))
			},
			wantErr:    true,
			errContain: `sixt API error (status 500): {"error":"boom"}`,
		},
		{
			name: "server error without body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr:    true,
			errContain: "status 502): Bad Gateway",
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"deals": [`))
			},
			wantErr:    true,
			errContain: "parsing /api/booking/b-1/vehicles response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := datasource.NewSixtClient(srv.URL + "/")
			vehicles, err := client.GetAvailableVehicles(context.Background(), "b-1")

			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
				if tt.errContain != "" {
					assert.Contains(t, err.Error(), tt.errContain)
				}
				return
			}

			require.NoError(t, err)
			assert.Len(t, vehicles, tt.wantCount)
		})
	}
}

func TestSixtClient_VehicleFields(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(vehiclesBody))
	}))
	defer srv.Close()

	vehicles, err := datasource.NewSixtClient(srv.URL).GetAvailableVehicles(context.Background(), "b-1")
	require.NoError(t, err)
	require.Len(t, vehicles, 2)

	x5 := vehicles[0]
	assert.Equal(t, "v-x5", x5.ID)
	assert.Equal(t, "https://img/x5.png", x5.ImageURL)
	assert.Equal(t, 5, x5.Seats)
	assert.Equal(t, 4, x5.Bags)
	assert.Equal(t, "Automatic", x5.Transmission)
	require.NotNil(t, x5.Price)
	assert.InDelta(t, 130.0, *x5.Price, 0.001)
	assert.Equal(t, "EUR", x5.Currency)

	assert.Nil(t, vehicles[1].Price)
}

func TestSixtClient_Bookings(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		paths []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.Method+" "+r.URL.Path)
		mu.Unlock()
		switch r.URL.Path {
		case "/api/booking/b-1/complete":
			w.WriteHeader(http.StatusNoContent)
		default:
			_, _ = w.Write([]byte(`{
				"id": "b-1",
				"status": "booking",
				"bookedCategory": "ECMR",
				"start": "2025-11-21T09:00:00Z",
				"end": "2025-11-24T09:00:00Z",
				"createdAt": "not-a-time"
			}`))
		}
	}))
	defer srv.Close()

	client := datasource.NewSixtClient(srv.URL)
	ctx := context.Background()

	created, err := client.CreateBooking(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b-1", created.ID)
	assert.Equal(t, "ECMR", created.BookedCategory)
	require.NotNil(t, created.Start)
	require.NotNil(t, created.End)
	assert.Nil(t, created.CreatedAt)
	assert.InDelta(t, 3.0, created.DurationDays(), 0.001)

	_, err = client.GetBooking(ctx, "b-1")
	require.NoError(t, err)

	_, err = client.AssignVehicle(ctx, "b-1", "v-x5")
	require.NoError(t, err)

	_, err = client.AssignProtection(ctx, "b-1", "p-full")
	require.NoError(t, err)

	completed, err := client.CompleteBooking(ctx, "b-1")
	require.NoError(t, err)
	assert.Empty(t, completed.ID)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"POST /api/booking",
		"GET /api/booking/b-1",
		"POST /api/booking/b-1/vehicles/v-x5",
		"POST /api/booking/b-1/protections/p-full",
		"POST /api/booking/b-1/complete",
	}, paths)
}

func TestSixtClient_ProtectionsAndAddons(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/booking/b-1/protections":
			_, _ = w.Write([]byte(`{"protectionPackages": [
				{
					"id": "p-full", "name": "Full Coverage",
					"price": {"displayPrice": {"currency": "EUR", "amount": 35}},
					"deductibleAmount": {"value": 0},
					"ratingStars": 5,
					"includes": [{"title": "Glass", "description": "Windscreen"}]
				},
				{"id": "p-none", "name": "Nothing"}
			]}`))
		case "/api/booking/b-1/addons":
			_, _ = w.Write([]byte(`{"addons": [
				{"id": 1, "name": "Child seats", "options": [
					{"chargeDetail": {"id": "a-seat", "title": "Child Seat"},
					 "additionalInfo": {"price": {"displayPrice": {"currency": "EUR", "amount": 12}}, "isSelected": true}},
					{"chargeDetail": {"id": "a-booster", "title": "Booster"}, "additionalInfo": {}}
				]},
				{"id": 2, "name": "Navigation", "options": []}
			]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := datasource.NewSixtClient(srv.URL)

	prots, err := client.GetAvailableProtections(context.Background(), "b-1")
	require.NoError(t, err)
	require.Len(t, prots, 2)
	require.NotNil(t, prots[0].DeductibleAmount)
	assert.Zero(t, *prots[0].DeductibleAmount)
	assert.Len(t, prots[0].Includes, 1)
	require.NotNil(t, prots[1].Price)
	assert.Zero(t, *prots[1].Price)
	assert.Equal(t, "EUR", prots[1].Currency)
	assert.Nil(t, prots[1].DeductibleAmount)

	addons, err := client.GetAvailableAddons(context.Background(), "b-1")
	require.NoError(t, err)
	require.Len(t, addons, 2)
	assert.Equal(t, "a-seat", addons[0].ID)
	assert.True(t, addons[0].Selected)
	assert.Equal(t, "Child seats", addons[0].CategoryName)
	assert.Zero(t, addons[1].Price)
}

func TestSixtClient_RateLimited(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"id": "b-1"}`))
	}))
	defer srv.Close()

	rl := datasource.NewRateLimiter(100, 10, datasource.WithQuota(1, time.Hour))
	client := datasource.NewSixtClient(srv.URL, datasource.WithRateLimiter(rl))

	_, err := client.GetBooking(context.Background(), "b-1")
	require.NoError(t, err)

	_, err = client.GetBooking(context.Background(), "b-1")
	require.ErrorIs(t, err, datasource.ErrQuotaExhausted)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSixtClient_Ping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		wantErr    bool
		errContain string
	}{
		{name: "unknown booking means reachable", status: http.StatusNotFound},
		{name: "ok", status: http.StatusOK},
		{name: "server error", status: http.StatusInternalServerError, wantErr: true, errContain: "pinging sixt API"},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: true, errContain: "status 502"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/booking/healthcheck", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := datasource.NewSixtClient(srv.URL).Ping(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContain)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSixtClient_PingUnreachable(t *testing.T) {
	t.Parallel()

	err := datasource.NewSixtClient("http://127.0.0.1:1").Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pinging sixt API")
}
