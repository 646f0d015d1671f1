package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jchau/itin/internal/domain"
)

// resolveTrip maps user input to a trip. Empty input resolves to the
// only active trip, if there is exactly one. Otherwise the input
// matches a trip name (case-insensitive), a full ID, or an ID prefix.
func resolveTrip(ctx context.Context, app *App, input string) (*domain.Trip, error) {
	trips, err := app.Trips.List(ctx, true)
	if err != nil {
		return nil, err
	}

	if input == "" {
		var active []*domain.Trip
		for _, t := range trips {
			if t.Status == domain.TripActive {
				active = append(active, t)
			}
		}
		if len(active) == 1 {
			return active[0], nil
		}
		return nil, fmt.Errorf("%d active trips; pick one with --trip", len(active))
	}

	for _, t := range trips {
		if strings.EqualFold(t.Name, input) || t.ID == input {
			return t, nil
		}
	}

	var matches []*domain.Trip
	for _, t := range trips {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("trip not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("trip %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveItem maps user input to an item id within an itinerary. A
// bare number is a 1-based committed position; anything else matches a
// title (case-insensitive), a full ID, or an ID prefix, searching the
// committed sequence first and then the holding area.
func resolveItem(it *domain.Itinerary, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("item is required")
	}

	if pos, err := strconv.Atoi(input); err == nil {
		if pos < 1 || pos > len(it.Items) {
			return "", fmt.Errorf("position %d out of range 1..%d", pos, len(it.Items))
		}
		return it.Items[pos-1].ID, nil
	}

	all := make([]*domain.ScheduleItem, 0, len(it.Items)+len(it.Parked))
	all = append(all, it.Items...)
	all = append(all, it.Parked...)

	for _, item := range all {
		if strings.EqualFold(item.Title, input) || item.ID == input {
			return item.ID, nil
		}
	}

	var matches []string
	for _, item := range all {
		if strings.HasPrefix(item.ID, input) {
			matches = append(matches, item.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("item not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("item %q is ambiguous (%d matches)", input, len(matches))
	}
}
