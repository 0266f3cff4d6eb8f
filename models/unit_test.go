package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitValid(t *testing.T) {
	for _, u := range AllUnits {
		assert.True(t, u.Valid(), u)
	}
	assert.False(t, Unit("penthouse").Valid())
	assert.False(t, Unit("").Valid())
	assert.False(t, Unit("room-1").Valid()) // slug, not unit ID
}

func TestBlockingGroupSymmetry(t *testing.T) {
	// Each room shares fate with the villa; the villa with everything.
	assert.ElementsMatch(t, []Unit{UnitRoom1, UnitVilla}, UnitRoom1.BlockingGroup())
	assert.ElementsMatch(t, []Unit{UnitRoom2, UnitVilla}, UnitRoom2.BlockingGroup())
	assert.ElementsMatch(t, []Unit{UnitRoom1, UnitRoom2, UnitVilla}, UnitVilla.BlockingGroup())

	// Rooms never affect each other directly.
	assert.NotContains(t, UnitRoom1.BlockingGroup(), UnitRoom2)
	assert.NotContains(t, UnitRoom2.BlockingGroup(), UnitRoom1)
}

func TestUnitsForCalendarSlug(t *testing.T) {
	units, ok := UnitsForCalendarSlug("room-1")
	assert.True(t, ok)
	assert.ElementsMatch(t, []Unit{UnitRoom1, UnitVilla}, units)

	units, ok = UnitsForCalendarSlug("full-villa")
	assert.True(t, ok)
	assert.Len(t, units, 3)

	_, ok = UnitsForCalendarSlug("room_1")
	assert.False(t, ok)

	_, ok = UnitsForCalendarSlug("")
	assert.False(t, ok)
}
