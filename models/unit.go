package models

// Unit identifies one of the three bookable units of the house. It is a
// closed enumeration: the two junior suites and the combined villa.
type Unit string

const (
	UnitRoom1 Unit = "room_1"
	UnitRoom2 Unit = "room_2"
	UnitVilla Unit = "full_villa"
)

// AllUnits lists every unit in a fixed order.
var AllUnits = []Unit{UnitRoom1, UnitRoom2, UnitVilla}

// Valid reports whether u is one of the three known units.
func (u Unit) Valid() bool {
	switch u {
	case UnitRoom1, UnitRoom2, UnitVilla:
		return true
	}
	return false
}

// Label returns the public room name used in guest-facing messages.
func (u Unit) Label() string {
	switch u {
	case UnitRoom1:
		return "Junior Suite I"
	case UnitRoom2:
		return "Junior Suite II"
	case UnitVilla:
		return "TWO-BEDROOM SUITE (Full Villa)"
	}
	return string(u)
}

// BlockingGroup returns the set of units whose blocks affect u. The villa
// comprises both rooms: occupying either room occupies the villa, and
// occupying the villa occupies both rooms.
//
//	room_1     ← {room_1, full_villa}
//	room_2     ← {room_2, full_villa}
//	full_villa ← {room_1, room_2, full_villa}
func (u Unit) BlockingGroup() []Unit {
	switch u {
	case UnitRoom1:
		return []Unit{UnitRoom1, UnitVilla}
	case UnitRoom2:
		return []Unit{UnitRoom2, UnitVilla}
	case UnitVilla:
		return []Unit{UnitRoom1, UnitRoom2, UnitVilla}
	}
	return nil
}

// calendarSlugs maps the public export slugs onto blocking groups. The
// full-villa feed carries every unit's intervals so a channel manager sees
// the house as fully busy whenever any part of it is.
var calendarSlugs = map[string][]Unit{
	"room-1":     {UnitRoom1, UnitVilla},
	"room-2":     {UnitRoom2, UnitVilla},
	"full-villa": {UnitRoom1, UnitRoom2, UnitVilla},
}

// UnitsForCalendarSlug resolves an export slug ("room-1", "room-2",
// "full-villa") to the units included in that calendar. ok is false for an
// unrecognized slug.
func UnitsForCalendarSlug(slug string) (units []Unit, ok bool) {
	units, ok = calendarSlugs[slug]
	return units, ok
}
