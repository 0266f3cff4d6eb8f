package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"casaherenia/models"
)

func TestApplyContainmentVillaBlocksBothRooms(t *testing.T) {
	own := NewUnitDays()
	own[models.UnitVilla].Add("2026-03-10")

	merged := ApplyContainment(own)

	assert.True(t, merged[models.UnitRoom1].Contains("2026-03-10"))
	assert.True(t, merged[models.UnitRoom2].Contains("2026-03-10"))
	assert.True(t, merged[models.UnitVilla].Contains("2026-03-10"))
}

func TestApplyContainmentRoomBlocksVillaOnly(t *testing.T) {
	own := NewUnitDays()
	own[models.UnitRoom1].Add("2026-03-10")

	merged := ApplyContainment(own)

	assert.True(t, merged[models.UnitRoom1].Contains("2026-03-10"))
	assert.True(t, merged[models.UnitVilla].Contains("2026-03-10"))
	// The sibling room stays sellable.
	assert.False(t, merged[models.UnitRoom2].Contains("2026-03-10"))
}

func TestApplyContainmentSingleApplication(t *testing.T) {
	// Containment runs once over a source's own days. A room day reaches
	// the villa but must never travel onward into the sibling room.
	own := NewUnitDays()
	own[models.UnitRoom1].Add("2026-03-10")
	own[models.UnitVilla].Add("2026-04-01")

	merged := ApplyContainment(own)

	assert.Equal(t, []string{"2026-03-10"}, merged[models.UnitRoom1].Sorted())
	assert.Equal(t, []string{"2026-04-01"}, merged[models.UnitRoom2].Sorted())
	assert.Equal(t, []string{"2026-03-10", "2026-04-01"}, merged[models.UnitVilla].Sorted())
}

func TestMergeSourcesAppliesContainmentPerSource(t *testing.T) {
	feed := NewUnitDays()
	feed[models.UnitRoom2].Add("2026-03-11")

	manual := NewUnitDays()
	manual[models.UnitVilla].Add("2026-03-12")

	merged := MergeSources(feed, manual)

	// Room 2 day propagates to the villa through the first source.
	assert.True(t, merged[models.UnitVilla].Contains("2026-03-11"))
	assert.False(t, merged[models.UnitRoom1].Contains("2026-03-11"))

	// Villa closure propagates to both rooms through the second source.
	assert.True(t, merged[models.UnitRoom1].Contains("2026-03-12"))
	assert.True(t, merged[models.UnitRoom2].Contains("2026-03-12"))
}

func TestMergeSourcesEmptyInput(t *testing.T) {
	merged := MergeSources()
	for _, unit := range models.AllUnits {
		assert.Empty(t, merged[unit].Sorted())
		assert.NotNil(t, merged[unit].Sorted())
	}
}
