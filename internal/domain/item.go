package domain

import "time"

// DefaultItemDuration is the duration a freshly created item starts with.
const DefaultItemDuration = Duration(60)

// Leg is one sub-leg of a transit item (one ride of a multi-ride
// connection). Legs describe the route only; they never participate in
// sequencing; only the parent item's start and end do.
type Leg struct {
	Mode     TransitMode
	Line     string // line or service name, e.g. "Ginza line, bound for Shibuya"
	BoardAt  string
	AlightAt string
}

// ScheduleItem is one itinerary entry: a spot visit or a transit
// connection. End is derived from Start and Duration except when the
// user edits the end directly, in which case the duration is derived
// instead (see timeline.SetEnd).
type ScheduleItem struct {
	ID     string
	TripID string
	Kind   ItemKind
	Title  string // may be empty pending user input

	Date     time.Time // calendar date the item occupies (midnight, UTC)
	Start    TimeOfDay
	Duration Duration
	End      TimeOfDay

	Note string

	// Spot fields.
	Location     string
	Area         string
	Category     string
	PhotoRef     string
	Goal         string
	OpeningHours string
	MapURL       string

	// Transit fields.
	Origin      string
	Destination string
	Mode        TransitMode
	Legs        []Leg

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecomputeEnd rederives End from Start and Duration.
func (s *ScheduleItem) RecomputeEnd() {
	s.End = AddDuration(s.Start, s.Duration)
}

// Clone returns a deep copy of the item.
func (s *ScheduleItem) Clone() *ScheduleItem {
	c := *s
	if s.Legs != nil {
		c.Legs = make([]Leg, len(s.Legs))
		copy(c.Legs, s.Legs)
	}
	return &c
}
