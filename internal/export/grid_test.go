package export

import (
	"testing"
	"time"

	"github.com/jchau/itin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridItem(id string, startH, startM, durMin int) *domain.ScheduleItem {
	s := &domain.ScheduleItem{
		ID:       id,
		Kind:     domain.KindSpot,
		Title:    id,
		Start:    domain.NewTimeOfDay(startH, startM),
		Duration: domain.Duration(durMin),
	}
	s.RecomputeEnd()
	return s
}

func TestBuildGrid_EmptyItineraryProduces96Rows(t *testing.T) {
	slots := BuildGrid(&domain.Itinerary{}, GridOptions{RestLabel: "rest"})

	require.Len(t, slots, 96)
	assert.Equal(t, "00:00", slots[0].Start.String())
	assert.Equal(t, "23:45", slots[95].Start.String())

	// Default awake window: before 10:00 and after (incl.) 21:00 rest,
	// blank in between.
	assert.Equal(t, "rest", slots[0].Label)
	assert.Equal(t, "rest", slots[39].Label) // 09:45
	assert.Equal(t, "", slots[40].Label)     // 10:00
	assert.Equal(t, "", slots[83].Label)     // 20:45
	assert.Equal(t, "rest", slots[84].Label) // 21:00
	assert.Equal(t, "rest", slots[95].Label)
}

func TestBuildGrid_HalfOpenCoverage(t *testing.T) {
	// 09:00–10:30 covers exactly six slots and not 10:30.
	it := &domain.Itinerary{}
	it.Insert(gridItem("museum", 9, 0, 90), 0)

	slots := BuildGrid(it, GridOptions{})

	covered := 0
	for _, s := range slots {
		if s.Item != nil {
			covered++
		}
	}
	assert.Equal(t, 6, covered)
	assert.Equal(t, "museum", slots[36].Label) // 09:00
	assert.Equal(t, "museum", slots[41].Label) // 10:15
	assert.Nil(t, slots[42].Item)              // 10:30 belongs to the next item
}

func TestBuildGrid_SlotAtEndBelongsToNextItem(t *testing.T) {
	it := &domain.Itinerary{}
	it.Insert(gridItem("a", 9, 0, 60), 0)
	it.Insert(gridItem("b", 10, 0, 60), 1)

	slots := BuildGrid(it, GridOptions{})
	assert.Equal(t, "b", slots[40].Label) // 10:00, a's end == b's start
}

func TestBuildGrid_FirstMatchBySequenceOrderWins(t *testing.T) {
	it := &domain.Itinerary{}
	it.Insert(gridItem("second", 9, 0, 60), 0)
	it.Insert(gridItem("first", 9, 0, 60), 1)

	slots := BuildGrid(it, GridOptions{})
	// Overlap is a data problem; sequence order decides, no error.
	assert.Equal(t, "second", slots[36].Label)
}

func TestBuildGrid_MidnightWrapCoversBothEdgesOfTheDay(t *testing.T) {
	it := &domain.Itinerary{}
	it.Insert(gridItem("night train", 23, 30, 60), 0) // 23:30–00:30

	slots := BuildGrid(it, GridOptions{})
	assert.Equal(t, "night train", slots[94].Label) // 23:30
	assert.Equal(t, "night train", slots[95].Label) // 23:45
	assert.Equal(t, "night train", slots[0].Label)  // 00:00
	assert.Equal(t, "night train", slots[1].Label)  // 00:15
	assert.Nil(t, slots[2].Item)                    // 00:30
}

func TestBuildGrid_ZeroDurationCoversNothing(t *testing.T) {
	it := &domain.Itinerary{}
	it.Insert(gridItem("ghost", 9, 0, 0), 0)

	slots := BuildGrid(it, GridOptions{})
	for _, s := range slots {
		assert.Nil(t, s.Item)
	}
}

func TestBuildGrid_FullDayItemCoversEverything(t *testing.T) {
	it := &domain.Itinerary{}
	it.Insert(gridItem("retreat", 9, 0, 24*60), 0)

	slots := BuildGrid(it, GridOptions{})
	for _, s := range slots {
		assert.Equal(t, "retreat", s.Label)
	}
}

func TestBuildGrid_ParkedItemsNeverAppear(t *testing.T) {
	it := &domain.Itinerary{}
	it.Insert(gridItem("a", 9, 0, 60), 0)
	require.True(t, it.Park("a"))

	slots := BuildGrid(it, GridOptions{})
	for _, s := range slots {
		assert.Nil(t, s.Item)
	}
}

func TestBuildGrid_DateFilter(t *testing.T) {
	day1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	a := gridItem("a", 9, 0, 60)
	a.Date = day1
	b := gridItem("b", 9, 0, 60)
	b.Date = day2

	it := &domain.Itinerary{}
	it.Insert(a, 0)
	it.Insert(b, 1)

	slots := BuildGrid(it, GridOptions{Date: day2})
	assert.Equal(t, "b", slots[36].Label)

	// Zero date keeps every committed item; first match wins.
	slots = BuildGrid(it, GridOptions{})
	assert.Equal(t, "a", slots[36].Label)
}

func TestBuildGrid_CustomAwakeWindow(t *testing.T) {
	win := AwakeWindow{
		WakeAt:  domain.NewTimeOfDay(6, 0),
		SleepAt: domain.NewTimeOfDay(23, 0),
	}
	slots := BuildGrid(&domain.Itinerary{}, GridOptions{Awake: &win, RestLabel: "zzz"})

	assert.Equal(t, "zzz", slots[23].Label) // 05:45
	assert.Equal(t, "", slots[24].Label)    // 06:00
	assert.Equal(t, "", slots[91].Label)    // 22:45
	assert.Equal(t, "zzz", slots[92].Label) // 23:00
}

func TestBuildGrid_ZeroAwakeWindowIsAllRest(t *testing.T) {
	// An explicit empty window contains nothing, unlike nil, which
	// means the 10:00-21:00 default.
	it := &domain.Itinerary{}
	it.Insert(gridItem("a", 9, 0, 60), 0)

	slots := BuildGrid(it, GridOptions{Awake: &AwakeWindow{}, RestLabel: "zzz"})
	assert.Equal(t, "a", slots[36].Label) // 09:00, occupied
	assert.Equal(t, "zzz", slots[0].Label)
	assert.Equal(t, "zzz", slots[40].Label)
	assert.Equal(t, "zzz", slots[95].Label)
}

func TestBuildGrid_Idempotent(t *testing.T) {
	it := &domain.Itinerary{}
	it.Insert(gridItem("a", 9, 0, 90), 0)

	first := BuildGrid(it, GridOptions{})
	second := BuildGrid(it, GridOptions{})

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Label, second[i].Label)
	}
	// And the itinerary itself was not touched.
	assert.Equal(t, "09:00", it.Items[0].Start.String())
}
