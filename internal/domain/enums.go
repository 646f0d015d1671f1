package domain

type ItemKind string

const (
	KindSpot    ItemKind = "spot"
	KindTransit ItemKind = "transit"
)

type TransitMode string

const (
	ModeMetro TransitMode = "metro"
	ModeJR    TransitMode = "jr"
	ModeBus   TransitMode = "bus"
	ModeWalk  TransitMode = "walk"
	ModeTaxi  TransitMode = "taxi"
)

// TransitModes lists selectable modes in menu order.
var TransitModes = []TransitMode{ModeMetro, ModeJR, ModeBus, ModeWalk, ModeTaxi}

type TripStatus string

const (
	TripActive   TripStatus = "active"
	TripArchived TripStatus = "archived"
)

// SpotCategories lists the suggested spot categories in menu order.
// Category remains a free string on the item; these are defaults only.
var SpotCategories = []string{"food", "shopping", "boutique", "photo", "sight"}
