package service

import (
	"context"
	"testing"

	"github.com/jchau/itin/internal/domain"
	"github.com/jchau/itin/internal/repository"
	"github.com/jchau/itin/internal/testutil"
	"github.com/jchau/itin/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServices(t *testing.T) (TripService, ItineraryService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	trips := repository.NewSQLiteTripRepo(database)
	items := repository.NewSQLiteItemRepo(database)
	defaults := Defaults{
		DayStart:     domain.NewTimeOfDay(9, 0),
		ItemDuration: domain.Duration(60),
		TransitMode:  domain.ModeMetro,
	}
	return NewTripService(trips), NewItineraryService(trips, items, defaults)
}

func newTrip(t *testing.T, trips TripService) *domain.Trip {
	t.Helper()
	trip := &domain.Trip{Name: "Tokyo", StartDate: testutil.FixtureDate}
	require.NoError(t, trips.Create(context.Background(), trip))
	return trip
}

func TestAddSpot_DefaultsChainOffPredecessor(t *testing.T) {
	trips, itins := newServices(t)
	ctx := context.Background()
	trip := newTrip(t, trips)

	it, err := itins.AddSpot(ctx, trip.ID, NewSpotRequest{Title: "Senso-ji"})
	require.NoError(t, err)
	require.Len(t, it.Items, 1)

	first := it.Items[0]
	assert.Equal(t, "09:00", first.Start.String())
	assert.Equal(t, "10:00", first.End.String())
	assert.Equal(t, "01:00", first.Duration.String())
	assert.True(t, first.Date.Equal(trip.StartDate))
	assert.NotEmpty(t, first.ID)

	it, err = itins.AddSpot(ctx, trip.ID, NewSpotRequest{Title: "Nakamise"})
	require.NoError(t, err)
	require.Len(t, it.Items, 2)
	assert.Equal(t, "10:00", it.Items[1].Start.String())
	assert.Equal(t, "11:00", it.Items[1].End.String())
}

func TestAddSpot_ExplicitStartSurvivesAppend(t *testing.T) {
	trips, itins := newServices(t)
	ctx := context.Background()
	trip := newTrip(t, trips)

	_, err := itins.AddSpot(ctx, trip.ID, NewSpotRequest{Title: "Senso-ji"})
	require.NoError(t, err)

	// The predecessor ends at 10:00; the explicit start must win over
	// the inherited one.
	start := domain.NewTimeOfDay(14, 0)
	it, err := itins.AddSpot(ctx, trip.ID, NewSpotRequest{Title: "Lunch", Start: &start})
	require.NoError(t, err)
	require.Len(t, it.Items, 2)
	assert.Equal(t, "14:00", it.Items[1].Start.String())
	assert.Equal(t, "15:00", it.Items[1].End.String())

	// Still there after a reload, and the predecessor kept its times.
	it, err = itins.Load(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "14:00", it.Items[1].Start.String())
	assert.Equal(t, "10:00", it.Items[0].End.String())

	// The next default-timed item chains off the explicit item's end.
	it, err = itins.AddSpot(ctx, trip.ID, NewSpotRequest{Title: "Nakamise"})
	require.NoError(t, err)
	require.Len(t, it.Items, 3)
	assert.Equal(t, "15:00", it.Items[2].Start.String())
}

func TestAddTransit_DefaultMode(t *testing.T) {
	trips, itins := newServices(t)
	ctx := context.Background()
	trip := newTrip(t, trips)

	dur := domain.Duration(25)
	it, err := itins.AddTransit(ctx, trip.ID, NewTransitRequest{
		Origin:      "Asakusa",
		Destination: "Ueno",
		Duration:    &dur,
		Legs: []domain.Leg{
			{Mode: domain.ModeMetro, Line: "Ginza line", BoardAt: "Asakusa", AlightAt: "Ueno"},
		},
	})
	require.NoError(t, err)
	require.Len(t, it.Items, 1)
	assert.Equal(t, domain.ModeMetro, it.Items[0].Mode)
	assert.Equal(t, "09:25", it.Items[0].End.String())
}

func TestUpdateItem_EditClassesPersist(t *testing.T) {
	trips, itins := newServices(t)
	ctx := context.Background()
	trip := newTrip(t, trips)

	it, err := itins.AddSpot(ctx, trip.ID, NewSpotRequest{Title: "market"})
	require.NoError(t, err)
	id := it.Items[0].ID

	// Duration edit rederives the end.
	dur := domain.Duration(90)
	it, err = itins.UpdateItem(ctx, trip.ID, id, ItemPatch{Duration: &dur})
	require.NoError(t, err)
	assert.Equal(t, "10:30", it.Items[0].End.String())

	// Start edit rederives the end from the unchanged duration.
	start := domain.NewTimeOfDay(8, 0)
	it, err = itins.UpdateItem(ctx, trip.ID, id, ItemPatch{Start: &start})
	require.NoError(t, err)
	assert.Equal(t, "09:30", it.Items[0].End.String())

	// End edit is reverse mode: the typed end survives a reload.
	end := domain.NewTimeOfDay(12, 15)
	_, err = itins.UpdateItem(ctx, trip.ID, id, ItemPatch{End: &end})
	require.NoError(t, err)

	reloaded, err := itins.Load(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "12:15", reloaded.Items[0].End.String())
	assert.Equal(t, "04:15", reloaded.Items[0].Duration.String())
}

func TestUpdateItem_UnknownIDIsNotFound(t *testing.T) {
	trips, itins := newServices(t)
	ctx := context.Background()
	trip := newTrip(t, trips)

	title := "x"
	_, err := itins.UpdateItem(ctx, trip.ID, "ghost", ItemPatch{Title: &title})
	assert.ErrorIs(t, err, timeline.ErrItemNotFound)
}

func TestReorder_PersistsCascadedTimes(t *testing.T) {
	trips, itins := newServices(t)
	ctx := context.Background()
	trip := newTrip(t, trips)

	start := domain.NewTimeOfDay(9, 0)
	durA := domain.Duration(60)
	it, err := itins.AddSpot(ctx, trip.ID, NewSpotRequest{Title: "A", Start: &start, Duration: &durA})
	require.NoError(t, err)
	aID := it.Items[0].ID

	durB := domain.Duration(120)
	it, err = itins.AddSpot(ctx, trip.ID, NewSpotRequest{Title: "B", Duration: &durB})
	require.NoError(t, err)
	bID := it.Items[1].ID

	// Move B first; it keeps A's old head start after its own start is
	// set by the user.
	startB := domain.NewTimeOfDay(9, 0)
	_, err = itins.UpdateItem(ctx, trip.ID, bID, ItemPatch{Start: &startB})
	require.NoError(t, err)

	it, err = itins.Reorder(ctx, trip.ID, []string{bID, aID})
	require.NoError(t, err)

	assert.Equal(t, "09:00", it.Items[0].Start.String())
	assert.Equal(t, "11:00", it.Items[0].End.String())
	assert.Equal(t, "11:00", it.Items[1].Start.String())
	assert.Equal(t, "12:00", it.Items[1].End.String())

	reloaded, err := itins.Load(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "11:00", reloaded.Items[1].Start.String())
}

func TestReorder_BadPermutationLeavesStateAlone(t *testing.T) {
	trips, itins := newServices(t)
	ctx := context.Background()
	trip := newTrip(t, trips)

	it, err := itins.AddSpot(ctx, trip.ID, NewSpotRequest{Title: "A"})
	require.NoError(t, err)
	aID := it.Items[0].ID

	_, err = itins.Reorder(ctx, trip.ID, []string{aID, "ghost"})
	assert.ErrorIs(t, err, timeline.ErrBadOrder)

	reloaded, err := itins.Load(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, "A", reloaded.Items[0].Title)
}

func TestParkRestore_EndToEnd(t *testing.T) {
	trips, itins := newServices(t)
	ctx := context.Background()
	trip := newTrip(t, trips)

	it, err := itins.AddSpot(ctx, trip.ID, NewSpotRequest{Title: "A"})
	require.NoError(t, err)
	aID := it.Items[0].ID
	it, err = itins.AddSpot(ctx, trip.ID, NewSpotRequest{Title: "B"})
	require.NoError(t, err)
	bID := it.Items[1].ID

	it, err = itins.ParkItem(ctx, trip.ID, aID)
	require.NoError(t, err)
	require.Len(t, it.Items, 1)
	require.Len(t, it.Parked, 1)

	// B moved up to the head start after the gap closed.
	assert.Equal(t, bID, it.Items[0].ID)

	it, err = itins.RestoreItem(ctx, trip.ID, aID, 1)
	require.NoError(t, err)
	require.Len(t, it.Items, 2)
	assert.Empty(t, it.Parked)
	assert.Equal(t, it.Items[0].End, it.Items[1].Start)
}

func TestRemoveItem_Persisted(t *testing.T) {
	trips, itins := newServices(t)
	ctx := context.Background()
	trip := newTrip(t, trips)

	it, err := itins.AddSpot(ctx, trip.ID, NewSpotRequest{Title: "A"})
	require.NoError(t, err)
	aID := it.Items[0].ID

	it, err = itins.RemoveItem(ctx, trip.ID, aID)
	require.NoError(t, err)
	assert.Empty(t, it.Items)

	_, err = itins.RemoveItem(ctx, trip.ID, aID)
	assert.ErrorIs(t, err, timeline.ErrItemNotFound)
}

func TestLoad_UnknownTrip(t *testing.T) {
	_, itins := newServices(t)

	_, err := itins.Load(context.Background(), "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
