package availability

import (
	"sort"

	"casaherenia/models"
)

// DaySet is a set of canonical day keys (YYYY-MM-DD). The key format sorts
// lexicographically in calendar order, so serialization is a plain sort.
type DaySet map[string]struct{}

// Add inserts a single day key.
func (s DaySet) Add(key string) {
	s[key] = struct{}{}
}

// AddAll inserts a sequence of day keys.
func (s DaySet) AddAll(keys []string) {
	for _, k := range keys {
		s[k] = struct{}{}
	}
}

// AddSet unions another set into s.
func (s DaySet) AddSet(other DaySet) {
	for k := range other {
		s[k] = struct{}{}
	}
}

// Contains reports membership of a day key.
func (s DaySet) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// Sorted returns the day keys in ascending calendar order. Never nil, so
// JSON serialization produces [] rather than null.
func (s DaySet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// UnitDays holds one DaySet per unit.
type UnitDays map[models.Unit]DaySet

// NewUnitDays returns a UnitDays with an empty set for every unit.
func NewUnitDays() UnitDays {
	ud := make(UnitDays, len(models.AllUnits))
	for _, u := range models.AllUnits {
		ud[u] = DaySet{}
	}
	return ud
}
