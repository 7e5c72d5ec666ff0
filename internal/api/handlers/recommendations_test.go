package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/rental-upsell/internal/api/handlers"
	"github.com/donaldgifford/rental-upsell/internal/datasource"
	dsMocks "github.com/donaldgifford/rental-upsell/internal/datasource/mocks"
	"github.com/donaldgifford/rental-upsell/internal/engine"
	"github.com/donaldgifford/rental-upsell/pkg/persona"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newDemoAPI registers recommendation routes backed by the in-memory demo
// source and returns one booking id created on it.
func newDemoAPI(t *testing.T) (humatest.TestAPI, string) {
	t.Helper()

	fixed := time.Date(2025, 11, 21, 9, 0, 0, 0, time.UTC)
	src := datasource.NewDemoSource(datasource.WithDemoNowFunc(func() time.Time { return fixed }))
	eng := engine.NewEngine(src, engine.WithLogger(quietLogger()))

	b, err := eng.CreateBooking(t.Context())
	require.NoError(t, err)

	_, api := humatest.New(t)
	handlers.RegisterRecommendationRoutes(api, handlers.NewRecommendationHandler(eng, eng, eng))
	return api, b.ID
}

type recommendationBody struct {
	BookingID         string                      `json:"booking_id"`
	CreatedNewBooking bool                        `json:"created_new_booking"`
	Recommendations   domain.RecommendationResult `json:"recommendations"`
}

func TestRecommendationHandler_GetRecommendation(t *testing.T) {
	t.Parallel()

	t.Run("existing booking", func(t *testing.T) {
		t.Parallel()

		api, bookingID := newDemoAPI(t)
		resp := api.Get("/api/v1/recommendations?booking_id=" + bookingID)
		require.Equal(t, http.StatusOK, resp.Code)

		var body recommendationBody
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Equal(t, bookingID, body.BookingID)
		assert.False(t, body.CreatedNewBooking)
		assert.Equal(t, bookingID, body.Recommendations.BookingID)
		assert.NotEmpty(t, body.Recommendations.CarCandidates)
		assert.NotEmpty(t, body.Recommendations.FinalOffer.Type)
	})

	t.Run("creates booking when absent", func(t *testing.T) {
		t.Parallel()

		api, existing := newDemoAPI(t)
		resp := api.Get("/api/v1/recommendations")
		require.Equal(t, http.StatusOK, resp.Code)

		var body recommendationBody
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.True(t, body.CreatedNewBooking)
		assert.NotEmpty(t, body.BookingID)
		assert.NotEqual(t, existing, body.BookingID)
	})

	t.Run("forced persona", func(t *testing.T) {
		t.Parallel()

		api, bookingID := newDemoAPI(t)
		resp := api.Get("/api/v1/recommendations?booking_id=" + bookingID +
			"&persona_id=" + persona.LuxuryEnthusiast)
		require.Equal(t, http.StatusOK, resp.Code)

		var body recommendationBody
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Equal(t, persona.LuxuryEnthusiast, body.Recommendations.Persona.ID)
	})
}

func TestRecommendationHandler_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*dsMocks.MockSource)
		wantStatus int
		wantBody   string
	}{
		{
			name: "unknown booking returns 404",
			path: "/api/v1/recommendations?booking_id=missing",
			setupMock: func(m *dsMocks.MockSource) {
				m.EXPECT().GetBooking(mock.Anything, "missing").Return(domain.Booking{}, datasource.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "booking not found",
		},
		{
			name: "upstream error returns 500",
			path: "/api/v1/recommendations?booking_id=b-1",
			setupMock: func(m *dsMocks.MockSource) {
				m.EXPECT().GetBooking(mock.Anything, "b-1").Return(domain.Booking{}, errors.New("timeout")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "recommendation failed",
		},
		{
			name: "create booking error returns 500",
			path: "/api/v1/recommendations",
			setupMock: func(m *dsMocks.MockSource) {
				m.EXPECT().CreateBooking(mock.Anything).Return(domain.Booking{}, errors.New("quota")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "creating booking failed",
		},
		{
			name: "simulate unknown booking returns 404",
			path: "/api/v1/simulate?booking_id=missing",
			setupMock: func(m *dsMocks.MockSource) {
				m.EXPECT().GetAvailableVehicles(mock.Anything, "missing").Return(nil, datasource.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "booking not found",
		},
		{
			name: "snapshot error returns 502",
			path: "/api/v1/debug/datasource",
			setupMock: func(m *dsMocks.MockSource) {
				m.EXPECT().CreateBooking(mock.Anything).Return(domain.Booking{}, errors.New("down")).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   "data source error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := dsMocks.NewMockSource(t)
			tt.setupMock(src)
			eng := engine.NewEngine(src, engine.WithLogger(quietLogger()))

			_, api := humatest.New(t)
			handlers.RegisterRecommendationRoutes(api, handlers.NewRecommendationHandler(eng, eng, eng))

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestRecommendationHandler_Simulate(t *testing.T) {
	t.Parallel()

	api, bookingID := newDemoAPI(t)
	resp := api.Get("/api/v1/simulate?booking_id=" + bookingID)
	require.Equal(t, http.StatusOK, resp.Code)

	var sim engine.Simulation
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &sim))
	assert.Equal(t, bookingID, sim.BookingID)
	assert.Len(t, sim.Outcomes, len(persona.Catalog()))
}

func TestRecommendationHandler_Snapshot(t *testing.T) {
	t.Parallel()

	api, _ := newDemoAPI(t)
	resp := api.Get("/api/v1/debug/datasource")
	require.Equal(t, http.StatusOK, resp.Code)

	var snap engine.Snapshot
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &snap))
	assert.NotEmpty(t, snap.Booking.ID)
	assert.Len(t, snap.Addons, len(datasource.DemoAddons()))
}
