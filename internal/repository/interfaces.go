package repository

import (
	"context"
	"errors"

	"github.com/jchau/itin/internal/domain"
)

// ErrNotFound is returned when a lookup names a row that does not exist.
var ErrNotFound = errors.New("not found")

type TripRepo interface {
	Create(ctx context.Context, t *domain.Trip) error
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Trip, error)
	Update(ctx context.Context, t *domain.Trip) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// ItemRepo persists one trip's itinerary. The core never calls this
// directly; services load an itinerary, run the timeline edit, and
// write the result back through ReplaceAll so a cascade commits
// atomically.
type ItemRepo interface {
	GetByID(ctx context.Context, id string) (*domain.ScheduleItem, error)
	LoadItinerary(ctx context.Context, tripID string) (*domain.Itinerary, error)
	ReplaceAll(ctx context.Context, tripID string, it *domain.Itinerary) error
}
