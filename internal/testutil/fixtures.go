package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/jchau/itin/internal/domain"
)

// FixtureDate is the calendar date fixtures default to.
var FixtureDate = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

// NewTrip builds a persisted-shape trip with sane defaults.
func NewTrip(name string) *domain.Trip {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Trip{
		ID:        uuid.New().String(),
		Name:      name,
		StartDate: FixtureDate,
		Status:    domain.TripActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewSpot builds a spot item with a derived end time.
func NewSpot(tripID, title string, start domain.TimeOfDay, dur domain.Duration) *domain.ScheduleItem {
	now := time.Now().UTC().Truncate(time.Second)
	s := &domain.ScheduleItem{
		ID:        uuid.New().String(),
		TripID:    tripID,
		Kind:      domain.KindSpot,
		Title:     title,
		Date:      FixtureDate,
		Start:     start,
		Duration:  dur,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.RecomputeEnd()
	return s
}

// NewTransit builds a transit item with one leg and a derived end time.
func NewTransit(tripID, origin, destination string, start domain.TimeOfDay, dur domain.Duration) *domain.ScheduleItem {
	now := time.Now().UTC().Truncate(time.Second)
	s := &domain.ScheduleItem{
		ID:          uuid.New().String(),
		TripID:      tripID,
		Kind:        domain.KindTransit,
		Date:        FixtureDate,
		Start:       start,
		Duration:    dur,
		Origin:      origin,
		Destination: destination,
		Mode:        domain.ModeMetro,
		Legs: []domain.Leg{
			{Mode: domain.ModeMetro, Line: "Ginza line", BoardAt: origin, AlightAt: destination},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.RecomputeEnd()
	return s
}
