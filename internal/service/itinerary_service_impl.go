package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jchau/itin/internal/domain"
	"github.com/jchau/itin/internal/repository"
	"github.com/jchau/itin/internal/timeline"
)

// Defaults supplies the configured fallbacks for freshly created items.
type Defaults struct {
	DayStart     domain.TimeOfDay
	ItemDuration domain.Duration
	TransitMode  domain.TransitMode
}

type itineraryService struct {
	trips    repository.TripRepo
	items    repository.ItemRepo
	defaults Defaults
}

func NewItineraryService(trips repository.TripRepo, items repository.ItemRepo, defaults Defaults) ItineraryService {
	if defaults.ItemDuration == 0 {
		defaults.ItemDuration = domain.DefaultItemDuration
	}
	return &itineraryService{trips: trips, items: items, defaults: defaults}
}

func (s *itineraryService) Load(ctx context.Context, tripID string) (*domain.Itinerary, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, err
	}
	return s.items.LoadItinerary(ctx, tripID)
}

func (s *itineraryService) AddSpot(ctx context.Context, tripID string, req NewSpotRequest) (*domain.Itinerary, error) {
	item := &domain.ScheduleItem{
		Kind:         domain.KindSpot,
		Title:        req.Title,
		Date:         req.Date,
		Location:     req.Location,
		Area:         req.Area,
		Category:     req.Category,
		PhotoRef:     req.PhotoRef,
		Goal:         req.Goal,
		OpeningHours: req.OpeningHours,
		MapURL:       req.MapURL,
		Note:         req.Note,
	}
	return s.appendItem(ctx, tripID, item, req.Start, req.Duration)
}

func (s *itineraryService) AddTransit(ctx context.Context, tripID string, req NewTransitRequest) (*domain.Itinerary, error) {
	mode := req.Mode
	if mode == "" {
		mode = s.defaults.TransitMode
	}
	item := &domain.ScheduleItem{
		Kind:        domain.KindTransit,
		Title:       req.Title,
		Date:        req.Date,
		Origin:      req.Origin,
		Destination: req.Destination,
		Mode:        mode,
		Legs:        req.Legs,
		Note:        req.Note,
	}
	return s.appendItem(ctx, tripID, item, req.Start, req.Duration)
}

// appendItem fills lifecycle defaults and inserts at the end of the
// committed sequence: start inherited from the predecessor's end (or
// the configured day start when first), default duration when none
// given. The cascade settles the inherited times; an explicit start
// is reapplied afterwards, like any other direct retime.
func (s *itineraryService) appendItem(ctx context.Context, tripID string, item *domain.ScheduleItem, start *domain.TimeOfDay, dur *domain.Duration) (*domain.Itinerary, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	it, err := s.items.LoadItinerary(ctx, tripID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item.ID = uuid.New().String()
	item.TripID = tripID
	item.CreatedAt = now
	item.UpdatedAt = now

	if item.Date.IsZero() {
		if n := len(it.Items); n > 0 {
			item.Date = it.Items[n-1].Date
		} else {
			item.Date = trip.StartDate
		}
	}

	switch {
	case start != nil:
		item.Start = *start
	case len(it.Items) > 0:
		item.Start = it.Items[len(it.Items)-1].End
	default:
		item.Start = s.defaults.DayStart
	}

	if dur != nil {
		item.Duration = *dur
	} else {
		item.Duration = s.defaults.ItemDuration
	}

	timeline.InsertAt(it, item, len(it.Items))
	if start != nil {
		if err := timeline.SetStart(it, item.ID, *start); err != nil {
			return nil, err
		}
	}
	return s.save(ctx, tripID, it)
}

func (s *itineraryService) UpdateItem(ctx context.Context, tripID, itemID string, patch ItemPatch) (*domain.Itinerary, error) {
	it, err := s.items.LoadItinerary(ctx, tripID)
	if err != nil {
		return nil, err
	}

	item := it.Find(itemID)
	if item == nil {
		return nil, timeline.ErrItemNotFound
	}

	item.Title = domain.StrFromPtrWithDefault(item.Title, patch.Title)
	item.Note = domain.StrFromPtrWithDefault(item.Note, patch.Note)
	item.Location = domain.StrFromPtrWithDefault(item.Location, patch.Location)
	item.Area = domain.StrFromPtrWithDefault(item.Area, patch.Area)
	item.Category = domain.StrFromPtrWithDefault(item.Category, patch.Category)
	item.PhotoRef = domain.StrFromPtrWithDefault(item.PhotoRef, patch.PhotoRef)
	item.Goal = domain.StrFromPtrWithDefault(item.Goal, patch.Goal)
	item.OpeningHours = domain.StrFromPtrWithDefault(item.OpeningHours, patch.OpeningHours)
	item.MapURL = domain.StrFromPtrWithDefault(item.MapURL, patch.MapURL)
	item.Origin = domain.StrFromPtrWithDefault(item.Origin, patch.Origin)
	item.Destination = domain.StrFromPtrWithDefault(item.Destination, patch.Destination)
	if patch.Date != nil {
		item.Date = *patch.Date
	}
	if patch.Mode != nil {
		item.Mode = *patch.Mode
	}
	if patch.Legs != nil {
		item.Legs = patch.Legs
	}

	// Timing edits, one authoritative rule per class. A direct end
	// edit is reverse mode and takes precedence: the user's typed end
	// is preserved and the duration derived from it.
	if patch.Start != nil {
		if err := timeline.SetStart(it, itemID, *patch.Start); err != nil {
			return nil, err
		}
	}
	if patch.Duration != nil {
		if err := timeline.SetDuration(it, itemID, *patch.Duration); err != nil {
			return nil, err
		}
	}
	if patch.End != nil {
		if err := timeline.SetEnd(it, itemID, *patch.End); err != nil {
			return nil, err
		}
	}

	item.UpdatedAt = time.Now().UTC()
	return s.save(ctx, tripID, it)
}

func (s *itineraryService) RemoveItem(ctx context.Context, tripID, itemID string) (*domain.Itinerary, error) {
	return s.edit(ctx, tripID, func(it *domain.Itinerary) error {
		return timeline.Remove(it, itemID)
	})
}

func (s *itineraryService) MoveItem(ctx context.Context, tripID, itemID string, pos int) (*domain.Itinerary, error) {
	return s.edit(ctx, tripID, func(it *domain.Itinerary) error {
		return timeline.Move(it, itemID, pos)
	})
}

func (s *itineraryService) Reorder(ctx context.Context, tripID string, order []string) (*domain.Itinerary, error) {
	return s.edit(ctx, tripID, func(it *domain.Itinerary) error {
		return timeline.Reorder(it, order)
	})
}

func (s *itineraryService) ParkItem(ctx context.Context, tripID, itemID string) (*domain.Itinerary, error) {
	return s.edit(ctx, tripID, func(it *domain.Itinerary) error {
		return timeline.Park(it, itemID)
	})
}

func (s *itineraryService) RestoreItem(ctx context.Context, tripID, itemID string, pos int) (*domain.Itinerary, error) {
	return s.edit(ctx, tripID, func(it *domain.Itinerary) error {
		return timeline.Restore(it, itemID, pos)
	})
}

func (s *itineraryService) edit(ctx context.Context, tripID string, apply func(*domain.Itinerary) error) (*domain.Itinerary, error) {
	it, err := s.items.LoadItinerary(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if err := apply(it); err != nil {
		return nil, err
	}
	return s.save(ctx, tripID, it)
}

func (s *itineraryService) save(ctx context.Context, tripID string, it *domain.Itinerary) (*domain.Itinerary, error) {
	if err := s.items.ReplaceAll(ctx, tripID, it); err != nil {
		return nil, err
	}
	return it, nil
}
