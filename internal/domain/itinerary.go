package domain

// Itinerary is the ordered sequence of schedule items for one trip,
// plus the parked holding area of items deliberately left out of the
// sequence. Position in Items is both presentation and temporal order.
//
// The intended invariant, that each committed item starts where its
// predecessor ends, is not enforced here. Structural methods only
// rearrange; the timeline package restores consistency after every
// edit, and parked items are exempt.
type Itinerary struct {
	TripID string
	Items  []*ScheduleItem // committed sequence, in order
	Parked []*ScheduleItem // holding area, user-entered times kept verbatim
}

// Find returns the item with the given id from the committed sequence
// or the holding area, or nil.
func (it *Itinerary) Find(id string) *ScheduleItem {
	if i := it.IndexOf(id); i >= 0 {
		return it.Items[i]
	}
	for _, p := range it.Parked {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// IndexOf returns the committed position of the item with the given
// id, or -1 if it is parked or unknown.
func (it *Itinerary) IndexOf(id string) int {
	for i, s := range it.Items {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Insert places item into the committed sequence at pos. Positions are
// clamped to [0, len(Items)].
func (it *Itinerary) Insert(item *ScheduleItem, pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(it.Items) {
		pos = len(it.Items)
	}
	it.Items = append(it.Items, nil)
	copy(it.Items[pos+1:], it.Items[pos:])
	it.Items[pos] = item
}

// Remove deletes the item with the given id from the committed
// sequence or the holding area. It reports whether anything was removed.
func (it *Itinerary) Remove(id string) bool {
	if i := it.IndexOf(id); i >= 0 {
		it.Items = append(it.Items[:i], it.Items[i+1:]...)
		return true
	}
	for i, p := range it.Parked {
		if p.ID == id {
			it.Parked = append(it.Parked[:i], it.Parked[i+1:]...)
			return true
		}
	}
	return false
}

// Move relocates a committed item to a new position, clamped to the
// valid range. It reports whether the id named a committed item.
func (it *Itinerary) Move(id string, pos int) bool {
	i := it.IndexOf(id)
	if i < 0 {
		return false
	}
	item := it.Items[i]
	it.Items = append(it.Items[:i], it.Items[i+1:]...)
	it.Insert(item, pos)
	return true
}

// Park moves a committed item into the holding area. It reports
// whether the id named a committed item.
func (it *Itinerary) Park(id string) bool {
	i := it.IndexOf(id)
	if i < 0 {
		return false
	}
	item := it.Items[i]
	it.Items = append(it.Items[:i], it.Items[i+1:]...)
	it.Parked = append(it.Parked, item)
	return true
}

// Restore moves a parked item back into the committed sequence at pos.
// It reports whether the id named a parked item.
func (it *Itinerary) Restore(id string, pos int) bool {
	for i, p := range it.Parked {
		if p.ID == id {
			it.Parked = append(it.Parked[:i], it.Parked[i+1:]...)
			it.Insert(p, pos)
			return true
		}
	}
	return false
}

// IDs returns the ids of the committed sequence in order.
func (it *Itinerary) IDs() []string {
	ids := make([]string, len(it.Items))
	for i, s := range it.Items {
		ids[i] = s.ID
	}
	return ids
}

// Clone returns a deep copy of the itinerary.
func (it *Itinerary) Clone() *Itinerary {
	c := &Itinerary{TripID: it.TripID}
	for _, s := range it.Items {
		c.Items = append(c.Items, s.Clone())
	}
	for _, p := range it.Parked {
		c.Parked = append(c.Parked, p.Clone())
	}
	return c
}
