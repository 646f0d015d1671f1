package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spot(id string) *ScheduleItem {
	return &ScheduleItem{ID: id, Kind: KindSpot, Title: id}
}

func TestItinerary_InsertClampsPosition(t *testing.T) {
	it := &Itinerary{}
	it.Insert(spot("a"), 99)
	it.Insert(spot("b"), -5)
	it.Insert(spot("c"), 1)

	assert.Equal(t, []string{"b", "c", "a"}, it.IDs())
}

func TestItinerary_RemoveUnknownIsNoop(t *testing.T) {
	it := &Itinerary{}
	it.Insert(spot("a"), 0)

	assert.False(t, it.Remove("ghost"))
	assert.Equal(t, []string{"a"}, it.IDs())
	assert.True(t, it.Remove("a"))
	assert.Empty(t, it.Items)
}

func TestItinerary_MoveToEnd(t *testing.T) {
	it := &Itinerary{}
	it.Insert(spot("a"), 0)
	it.Insert(spot("b"), 1)
	it.Insert(spot("c"), 2)

	require.True(t, it.Move("a", 2))
	assert.Equal(t, []string{"b", "c", "a"}, it.IDs())
}

func TestItinerary_ParkAndRestore(t *testing.T) {
	it := &Itinerary{}
	it.Insert(spot("a"), 0)
	it.Insert(spot("b"), 1)

	require.True(t, it.Park("a"))
	assert.Equal(t, []string{"b"}, it.IDs())
	require.Len(t, it.Parked, 1)

	// Parked items stay findable but have no committed index.
	assert.NotNil(t, it.Find("a"))
	assert.Equal(t, -1, it.IndexOf("a"))

	require.True(t, it.Restore("a", 0))
	assert.Equal(t, []string{"a", "b"}, it.IDs())
	assert.Empty(t, it.Parked)
}

func TestItinerary_CloneIsDeep(t *testing.T) {
	it := &Itinerary{TripID: "t1"}
	orig := spot("a")
	orig.Legs = []Leg{{Mode: ModeMetro, BoardAt: "x"}}
	it.Insert(orig, 0)

	c := it.Clone()
	c.Items[0].Title = "changed"
	c.Items[0].Legs[0].BoardAt = "y"

	assert.Equal(t, "a", orig.Title)
	assert.Equal(t, "x", orig.Legs[0].BoardAt)
}
