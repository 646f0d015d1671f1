package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jchau/itin/internal/domain"
	"github.com/jchau/itin/internal/repository"
	"github.com/jchau/itin/internal/service"
	"github.com/jchau/itin/internal/testutil"
)

func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	tripRepo := repository.NewSQLiteTripRepo(db)
	itemRepo := repository.NewSQLiteItemRepo(db)

	return &App{
		Trips:         service.NewTripService(tripRepo),
		Itineraries:   service.NewItineraryService(tripRepo, itemRepo, service.Defaults{}),
		IsInteractive: func() bool { return false },
	}
}

// seedTrip creates one trip with two spots and a parked transit.
func seedTrip(t *testing.T, app *App) *domain.Trip {
	t.Helper()
	ctx := context.Background()

	trip := testutil.NewTrip("Tokyo")
	require.NoError(t, app.Trips.Create(ctx, trip))

	_, err := app.Itineraries.AddSpot(ctx, trip.ID, service.NewSpotRequest{Title: "Senso-ji"})
	require.NoError(t, err)
	_, err = app.Itineraries.AddSpot(ctx, trip.ID, service.NewSpotRequest{Title: "Nakamise"})
	require.NoError(t, err)

	it, err := app.Itineraries.AddTransit(ctx, trip.ID, service.NewTransitRequest{
		Origin: "Asakusa", Destination: "Ueno", Mode: domain.ModeMetro,
	})
	require.NoError(t, err)
	_, err = app.Itineraries.ParkItem(ctx, trip.ID, it.Items[2].ID)
	require.NoError(t, err)

	return trip
}

func TestResolveTrip_SoleActiveTrip(t *testing.T) {
	app := testApp(t)
	trip := seedTrip(t, app)

	got, err := resolveTrip(context.Background(), app, "")
	require.NoError(t, err)
	assert.Equal(t, trip.ID, got.ID)
}

func TestResolveTrip_ByNameCaseInsensitive(t *testing.T) {
	app := testApp(t)
	trip := seedTrip(t, app)

	got, err := resolveTrip(context.Background(), app, "tokyo")
	require.NoError(t, err)
	assert.Equal(t, trip.ID, got.ID)
}

func TestResolveTrip_IDPrefix(t *testing.T) {
	app := testApp(t)
	trip := seedTrip(t, app)

	got, err := resolveTrip(context.Background(), app, trip.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, trip.ID, got.ID)
}

func TestResolveTrip_AmbiguousWithoutInput(t *testing.T) {
	app := testApp(t)
	seedTrip(t, app)
	other := testutil.NewTrip("Kyoto")
	require.NoError(t, app.Trips.Create(context.Background(), other))

	_, err := resolveTrip(context.Background(), app, "")
	assert.ErrorContains(t, err, "active trips")
}

func TestResolveItem_ByPosition(t *testing.T) {
	app := testApp(t)
	trip := seedTrip(t, app)

	it, err := app.Itineraries.Load(context.Background(), trip.ID)
	require.NoError(t, err)

	id, err := resolveItem(it, "2")
	require.NoError(t, err)
	assert.Equal(t, it.Items[1].ID, id)

	_, err = resolveItem(it, "3")
	assert.ErrorContains(t, err, "out of range")
}

func TestResolveItem_ParkedByTitleAndPrefix(t *testing.T) {
	app := testApp(t)
	trip := seedTrip(t, app)

	it, err := app.Itineraries.Load(context.Background(), trip.ID)
	require.NoError(t, err)
	require.Len(t, it.Parked, 1)

	id, err := resolveItem(it, it.Parked[0].ID[:8])
	require.NoError(t, err)
	assert.Equal(t, it.Parked[0].ID, id)

	_, err = resolveItem(it, "nope")
	assert.ErrorContains(t, err, "not found")
}

func TestItemLabel(t *testing.T) {
	spot := testutil.NewSpot("t", "Senso-ji", 600, 60)
	assert.Equal(t, "Senso-ji", itemLabel(spot))

	transit := testutil.NewTransit("t", "Asakusa", "Ueno", 600, 20)
	assert.Equal(t, "Asakusa → Ueno", itemLabel(transit))

	assert.Equal(t, "(gone)", itemLabel(nil))
}
