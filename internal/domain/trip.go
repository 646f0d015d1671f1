package domain

import "time"

// Trip groups one itinerary. Items belong to exactly one trip; the
// itinerary's dates may span the whole trip range.
type Trip struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   *time.Time
	Status    TripStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}
