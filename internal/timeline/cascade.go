// Package timeline restores the back-to-back timing invariant of an
// itinerary after each edit. It is pure sequence arithmetic: no I/O, no
// storage, no awareness of how items are rendered or persisted.
package timeline

import "github.com/jchau/itin/internal/domain"

// Cascade runs the forward pass over a committed sequence: the first
// item keeps its own start, every later item inherits its
// predecessor's end as its start, and each end is recomputed from the
// item's own duration. One left-to-right pass is enough: the result
// depends only on the order and the durations, so running it again
// changes nothing.
//
// Dates are left alone; a sequence may legitimately span several
// calendar dates and the user owns the date field. Parked items are
// never passed here.
func Cascade(items []*domain.ScheduleItem) {
	for i, item := range items {
		if i > 0 {
			item.Start = items[i-1].End
		}
		item.RecomputeEnd()
	}
}
