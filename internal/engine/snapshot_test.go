package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/rental-upsell/internal/datasource"
	dsMocks "github.com/donaldgifford/rental-upsell/internal/datasource/mocks"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

func TestSnapshot(t *testing.T) {
	t.Parallel()

	eng, _ := newDemoEngine(t)

	snap, err := eng.Snapshot(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, snap.Booking.ID)
	assert.Len(t, snap.Vehicles, len(datasource.DemoVehicles()))
	assert.Len(t, snap.Protections, len(datasource.DemoProtections()))
	assert.Len(t, snap.Addons, len(datasource.DemoAddons()))
}

func TestSnapshot_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*dsMocks.MockSource)
		errContain string
	}{
		{
			name: "create fails",
			setupMock: func(m *dsMocks.MockSource) {
				m.EXPECT().CreateBooking(mock.Anything).Return(domain.Booking{}, errors.New("quota")).Once()
			},
			errContain: "creating booking: quota",
		},
		{
			name: "addons fail",
			setupMock: func(m *dsMocks.MockSource) {
				m.EXPECT().CreateBooking(mock.Anything).Return(domain.Booking{ID: "b-1"}, nil).Once()
				m.EXPECT().GetBooking(mock.Anything, "b-1").Return(domain.Booking{ID: "b-1"}, nil).Maybe()
				m.EXPECT().GetAvailableVehicles(mock.Anything, "b-1").Return(nil, nil).Maybe()
				m.EXPECT().GetAvailableProtections(mock.Anything, "b-1").Return(nil, nil).Maybe()
				m.EXPECT().GetAvailableAddons(mock.Anything, "b-1").Return(nil, errors.New("boom")).Once()
			},
			errContain: "fetching addons for booking b-1: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := dsMocks.NewMockSource(t)
			tt.setupMock(src)

			_, err := NewEngine(src, WithLogger(quietLogger())).Snapshot(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContain)
		})
	}
}
