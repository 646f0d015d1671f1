// Package export projects an itinerary onto external consumption
// formats: the fixed-resolution slot grid, CSV for spreadsheet
// tooling, and iCalendar. Everything here is read-only over the
// itinerary and safe to invoke repeatedly.
package export

import (
	"time"

	"github.com/jchau/itin/internal/domain"
)

const (
	// SlotMinutes is the grid resolution.
	SlotMinutes = 15
	// SlotsPerDay partitions a day at that resolution.
	SlotsPerDay = 24 * 60 / SlotMinutes
)

// AwakeWindow is the time-of-day range inside which unoccupied slots
// stay blank. Outside it they get the rest label instead.
type AwakeWindow struct {
	WakeAt  domain.TimeOfDay
	SleepAt domain.TimeOfDay
}

// DefaultAwakeWindow covers 10:00 to 21:00.
func DefaultAwakeWindow() AwakeWindow {
	return AwakeWindow{
		WakeAt:  domain.NewTimeOfDay(10, 0),
		SleepAt: domain.NewTimeOfDay(21, 0),
	}
}

// Contains reports whether t falls inside the window (half-open).
func (w AwakeWindow) Contains(t domain.TimeOfDay) bool {
	return t >= w.WakeAt && t < w.SleepAt
}

// Slot is one 15-minute row of the grid. Item is nil for unoccupied
// slots; Label then carries either the rest label or "".
type Slot struct {
	Start domain.TimeOfDay
	Label string
	Item  *domain.ScheduleItem
}

// GridOptions configures a grid projection.
type GridOptions struct {
	// Date filters the committed sequence; the zero value takes every
	// committed item regardless of date.
	Date time.Time
	// Awake is the awake window; nil means DefaultAwakeWindow. An
	// explicit zero window (00:00-00:00) contains nothing, so every
	// unoccupied slot gets the rest label.
	Awake *AwakeWindow
	// RestLabel fills unoccupied slots outside the awake window.
	RestLabel string
}

// BuildGrid projects the itinerary's committed sequence onto the
// 96-slot table. A slot belongs to the first item, in sequence order,
// whose half-open [start, end) interval contains the slot start, so a
// slot exactly at an item's end belongs to the next item, never both.
// Overlapping items are a data problem, not an exporter fault: the
// first match simply wins. Parked items never appear.
func BuildGrid(it *domain.Itinerary, opts GridOptions) []Slot {
	awake := DefaultAwakeWindow()
	if opts.Awake != nil {
		awake = *opts.Awake
	}

	var candidates []*domain.ScheduleItem
	for _, item := range it.Items {
		if opts.Date.IsZero() || sameDate(item.Date, opts.Date) {
			candidates = append(candidates, item)
		}
	}

	slots := make([]Slot, SlotsPerDay)
	for i := range slots {
		start := domain.TimeOfDay(i * SlotMinutes)
		slot := Slot{Start: start}
		for _, item := range candidates {
			if covers(item, start) {
				slot.Item = item
				slot.Label = item.Title
				break
			}
		}
		if slot.Item == nil && !awake.Contains(start) {
			slot.Label = opts.RestLabel
		}
		slots[i] = slot
	}
	return slots
}

// covers applies the half-open containment test, reading end < start
// as an interval wrapping midnight. A zero-length interval covers
// nothing; a full-day item (duration 24h, end == start) covers
// everything.
func covers(item *domain.ScheduleItem, slot domain.TimeOfDay) bool {
	if item.Duration == 0 {
		return false
	}
	if item.Duration >= 24*60 {
		return true
	}
	if item.End > item.Start {
		return slot >= item.Start && slot < item.End
	}
	return slot >= item.Start || slot < item.End
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
