package formatter

import (
	"testing"

	"github.com/jchau/itin/internal/domain"
	"github.com/jchau/itin/internal/export"
	"github.com/jchau/itin/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatItinerary_Empty(t *testing.T) {
	trip := testutil.NewTrip("Tokyo")
	out := FormatItinerary(trip, &domain.Itinerary{})

	assert.Contains(t, out, "TOKYO")
	assert.Contains(t, out, "No items yet")
}

func TestFormatItinerary_CardsAndParkedSection(t *testing.T) {
	trip := testutil.NewTrip("Tokyo")
	it := &domain.Itinerary{}
	it.Insert(testutil.NewSpot(trip.ID, "Senso-ji", domain.NewTimeOfDay(9, 0), 90), 0)
	tr := testutil.NewTransit(trip.ID, "Asakusa", "Ueno", domain.NewTimeOfDay(10, 30), 20)
	it.Insert(tr, 1)
	parked := testutil.NewSpot(trip.ID, "maybe museum", domain.NewTimeOfDay(15, 0), 60)
	it.Insert(parked, 2)
	require.True(t, it.Park(parked.ID))

	out := FormatItinerary(trip, it)

	assert.Contains(t, out, "Senso-ji")
	assert.Contains(t, out, "09:00–10:30 (01:30)")
	assert.Contains(t, out, "Asakusa → Ueno")
	assert.Contains(t, out, "not yet scheduled")
	assert.Contains(t, out, "maybe museum")
	assert.Contains(t, out, "2026-01-05")
}

func TestFormatItinerary_MidnightWrapFlagged(t *testing.T) {
	trip := testutil.NewTrip("Tokyo")
	it := &domain.Itinerary{}
	it.Insert(testutil.NewSpot(trip.ID, "night cruise", domain.NewTimeOfDay(23, 0), 120), 0)

	out := FormatItinerary(trip, it)
	assert.Contains(t, out, "past midnight")
}

func TestFormatItemInspect_TransitLegs(t *testing.T) {
	tr := testutil.NewTransit("t1", "Ueno", "Nikko", domain.NewTimeOfDay(8, 0), 110)

	out := FormatItemInspect(tr)
	assert.Contains(t, out, "Ueno → Nikko")
	assert.Contains(t, out, "leg 1")
	assert.Contains(t, out, "Ginza line")
}

func TestFormatGrid_CompactCollapsesRuns(t *testing.T) {
	it := &domain.Itinerary{}
	it.Insert(testutil.NewSpot("t1", "museum", domain.NewTimeOfDay(10, 0), 90), 0)

	slots := export.BuildGrid(it, export.GridOptions{RestLabel: "rest"})

	full := FormatGrid(slots, false)
	compact := FormatGrid(slots, true)

	assert.Contains(t, full, "10:15")
	// The museum's six slots collapse into one span row.
	assert.Contains(t, compact, "10:00–11:15")
	assert.NotContains(t, compact, "10:15–")
}
