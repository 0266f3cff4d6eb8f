package availability

import "casaherenia/models"

// ApplyContainment folds the villa/room relation into per-unit day sets:
// each unit receives the union of its own days and those of every unit in
// its blocking group. A day that blocks the villa blocks both rooms, and a
// day that blocks either room blocks the villa.
func ApplyContainment(own UnitDays) UnitDays {
	merged := NewUnitDays()
	for _, unit := range models.AllUnits {
		for _, partner := range unit.BlockingGroup() {
			merged[unit].AddSet(own[partner])
		}
	}
	return merged
}

// MergeSources applies containment to every source independently and
// unions the results per unit. Callers that include only a subset of
// sources (the admin two-color view) still get containment within that
// subset; no query path may skip it.
func MergeSources(sources ...UnitDays) UnitDays {
	merged := NewUnitDays()
	for _, source := range sources {
		contained := ApplyContainment(source)
		for _, unit := range models.AllUnits {
			merged[unit].AddSet(contained[unit])
		}
	}
	return merged
}
