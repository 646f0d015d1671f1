package service

import (
	"context"
	"time"

	"github.com/jchau/itin/internal/domain"
)

type TripService interface {
	Create(ctx context.Context, t *domain.Trip) error
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Trip, error)
	Rename(ctx context.Context, id, name string) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// ItemPatch carries the fields of an item update. Nil means "leave
// alone". Timing fields select the edit class: Duration and Start
// rederive the item's end; End flips to reverse mode and derives the
// duration instead. End wins if combined with the others.
type ItemPatch struct {
	Title    *string
	Date     *time.Time
	Start    *domain.TimeOfDay
	Duration *domain.Duration
	End      *domain.TimeOfDay
	Note     *string

	// Spot fields.
	Location     *string
	Area         *string
	Category     *string
	PhotoRef     *string
	Goal         *string
	OpeningHours *string
	MapURL       *string

	// Transit fields.
	Origin      *string
	Destination *string
	Mode        *domain.TransitMode
	Legs        []domain.Leg // nil leaves legs alone; empty slice clears them
}

// NewSpotRequest carries user input for a new spot item. Zero-value
// timing fields fall back to the configured defaults and the
// predecessor's end time.
type NewSpotRequest struct {
	Title        string
	Date         time.Time
	Start        *domain.TimeOfDay
	Duration     *domain.Duration
	Location     string
	Area         string
	Category     string
	PhotoRef     string
	Goal         string
	OpeningHours string
	MapURL       string
	Note         string
}

// NewTransitRequest carries user input for a new transit item.
type NewTransitRequest struct {
	Title       string
	Date        time.Time
	Start       *domain.TimeOfDay
	Duration    *domain.Duration
	Origin      string
	Destination string
	Mode        domain.TransitMode
	Legs        []domain.Leg
	Note        string
}

// ItineraryService owns every itinerary mutation. Each call loads the
// trip's sequence, applies one timeline edit to completion, persists
// the result, and returns the fresh, internally consistent itinerary.
// Edits are strictly serialized; there is never more than one cascade
// in flight.
type ItineraryService interface {
	Load(ctx context.Context, tripID string) (*domain.Itinerary, error)

	AddSpot(ctx context.Context, tripID string, req NewSpotRequest) (*domain.Itinerary, error)
	AddTransit(ctx context.Context, tripID string, req NewTransitRequest) (*domain.Itinerary, error)
	UpdateItem(ctx context.Context, tripID, itemID string, patch ItemPatch) (*domain.Itinerary, error)
	RemoveItem(ctx context.Context, tripID, itemID string) (*domain.Itinerary, error)
	MoveItem(ctx context.Context, tripID, itemID string, pos int) (*domain.Itinerary, error)
	Reorder(ctx context.Context, tripID string, order []string) (*domain.Itinerary, error)
	ParkItem(ctx context.Context, tripID, itemID string) (*domain.Itinerary, error)
	RestoreItem(ctx context.Context, tripID, itemID string, pos int) (*domain.Itinerary, error)
}
