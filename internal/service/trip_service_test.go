package service

import (
	"context"
	"testing"

	"github.com/jchau/itin/internal/domain"
	"github.com/jchau/itin/internal/repository"
	"github.com/jchau/itin/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripService_CreateStampsDefaults(t *testing.T) {
	trips, _ := newServices(t)
	ctx := context.Background()

	trip := &domain.Trip{Name: "Osaka", StartDate: testutil.FixtureDate}
	require.NoError(t, trips.Create(ctx, trip))

	assert.NotEmpty(t, trip.ID)
	assert.Equal(t, domain.TripActive, trip.Status)
	assert.False(t, trip.CreatedAt.IsZero())

	got, err := trips.GetByID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "Osaka", got.Name)
}

func TestTripService_Rename(t *testing.T) {
	trips, _ := newServices(t)
	ctx := context.Background()

	trip := newTrip(t, trips)
	require.NoError(t, trips.Rename(ctx, trip.ID, "Tokyo + Hakone"))

	got, err := trips.GetByID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tokyo + Hakone", got.Name)

	assert.ErrorIs(t, trips.Rename(ctx, "ghost", "x"), repository.ErrNotFound)
}
