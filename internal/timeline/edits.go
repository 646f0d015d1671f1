package timeline

import (
	"errors"
	"fmt"

	"github.com/jchau/itin/internal/domain"
)

var (
	// ErrItemNotFound is returned when an edit names an unknown item id.
	// The itinerary is left untouched.
	ErrItemNotFound = errors.New("item not found")

	// ErrBadOrder is returned when a reorder request is not a complete,
	// id-consistent permutation of the committed sequence.
	ErrBadOrder = errors.New("order is not a permutation of the committed sequence")
)

// SetDuration changes one item's duration and rederives its end.
// Other items keep their times; only resequencing cascades.
func SetDuration(it *domain.Itinerary, id string, d domain.Duration) error {
	item := it.Find(id)
	if item == nil {
		return fmt.Errorf("set duration %s: %w", id, ErrItemNotFound)
	}
	item.Duration = d
	item.RecomputeEnd()
	return nil
}

// SetStart changes one item's start and rederives its end from the
// unchanged duration. Neighbors are not retimed.
func SetStart(it *domain.Itinerary, id string, t domain.TimeOfDay) error {
	item := it.Find(id)
	if item == nil {
		return fmt.Errorf("set start %s: %w", id, ErrItemNotFound)
	}
	item.Start = t
	item.RecomputeEnd()
	return nil
}

// SetEnd is the reverse edit: the typed end time is kept literally and
// the duration is derived instead. An end earlier than the start reads
// as a midnight crossing; an end equal to the start means zero length,
// not a full day.
func SetEnd(it *domain.Itinerary, id string, t domain.TimeOfDay) error {
	item := it.Find(id)
	if item == nil {
		return fmt.Errorf("set end %s: %w", id, ErrItemNotFound)
	}
	item.End = t
	item.Duration = domain.SubtractTimes(t, item.Start)
	return nil
}

// InsertAt adds an item to the committed sequence at pos and cascades.
func InsertAt(it *domain.Itinerary, item *domain.ScheduleItem, pos int) {
	it.Insert(item, pos)
	Cascade(it.Items)
}

// Remove deletes an item (committed or parked) and cascades the
// remaining sequence so the gap closes.
func Remove(it *domain.Itinerary, id string) error {
	if !it.Remove(id) {
		return fmt.Errorf("remove %s: %w", id, ErrItemNotFound)
	}
	Cascade(it.Items)
	return nil
}

// Move relocates a committed item to a new position and cascades.
func Move(it *domain.Itinerary, id string, pos int) error {
	if !it.Move(id, pos) {
		return fmt.Errorf("move %s: %w", id, ErrItemNotFound)
	}
	Cascade(it.Items)
	return nil
}

// Park moves a committed item into the holding area. The parked item
// keeps its current times verbatim; the remaining sequence cascades.
func Park(it *domain.Itinerary, id string) error {
	if !it.Park(id) {
		return fmt.Errorf("park %s: %w", id, ErrItemNotFound)
	}
	Cascade(it.Items)
	return nil
}

// Restore re-inserts a parked item into the committed sequence at pos.
// From that point the cascade owns its start time again.
func Restore(it *domain.Itinerary, id string, pos int) error {
	if !it.Restore(id, pos) {
		return fmt.Errorf("restore %s: %w", id, ErrItemNotFound)
	}
	Cascade(it.Items)
	return nil
}

// Reorder replaces the committed order with the given id sequence and
// cascades. The request must be a complete permutation of the current
// committed ids: omitted, duplicated, parked, or unknown ids reject
// the whole request before anything is mutated.
func Reorder(it *domain.Itinerary, order []string) error {
	if len(order) != len(it.Items) {
		return fmt.Errorf("reorder: got %d ids, itinerary has %d: %w",
			len(order), len(it.Items), ErrBadOrder)
	}
	reordered := make([]*domain.ScheduleItem, 0, len(order))
	seen := make(map[string]bool, len(order))
	for _, id := range order {
		if seen[id] {
			return fmt.Errorf("reorder: duplicate id %s: %w", id, ErrBadOrder)
		}
		seen[id] = true
		i := it.IndexOf(id)
		if i < 0 {
			return fmt.Errorf("reorder: unknown id %s: %w", id, ErrBadOrder)
		}
		reordered = append(reordered, it.Items[i])
	}
	it.Items = reordered
	Cascade(it.Items)
	return nil
}
