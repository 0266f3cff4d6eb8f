package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casaherenia/models"
)

func TestPriceForNightIncludedGuests(t *testing.T) {
	room := models.Properties[models.UnitRoom1]

	p := PriceForNight(room, 1)
	assert.Equal(t, 0, p.ExtraGuests)
	assert.Equal(t, 55.0, p.TotalNightlyRate)
}

func TestPriceForNightExtraGuestSupplement(t *testing.T) {
	room := models.Properties[models.UnitRoom1]

	p := PriceForNight(room, 3)
	assert.Equal(t, 2, p.ExtraGuests)
	assert.Equal(t, 20.0, p.NightlyExtraFee)
	assert.Equal(t, 75.0, p.TotalNightlyRate)
}

func TestPriceForNightVillaBase(t *testing.T) {
	villa := models.Properties[models.UnitVilla]

	p := PriceForNight(villa, 4)
	assert.Equal(t, 0, p.ExtraGuests)
	assert.Equal(t, 120.0, p.TotalNightlyRate)

	p = PriceForNight(villa, 6)
	assert.Equal(t, 2, p.ExtraGuests)
	assert.Equal(t, 150.0, p.TotalNightlyRate)
}

func TestTotalPriceMultipliesNights(t *testing.T) {
	room := models.Properties[models.UnitRoom2]

	// Three nights, exclusive checkout day.
	total, err := TotalPrice(room, "2026-03-10", "2026-03-13", 2)
	require.NoError(t, err)
	assert.Equal(t, 195.0, total) // (55 + 10) * 3
}

func TestTotalPriceRejectsNonPositiveStay(t *testing.T) {
	room := models.Properties[models.UnitRoom1]

	_, err := TotalPrice(room, "2026-03-10", "2026-03-10", 1)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = TotalPrice(room, "2026-03-13", "2026-03-10", 1)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestTotalPriceRejectsMalformedDates(t *testing.T) {
	room := models.Properties[models.UnitRoom1]

	_, err := TotalPrice(room, "garbage", "2026-03-13", 1)
	assert.Error(t, err)

	_, err = TotalPrice(room, "2026-03-10", "13/03/2026", 1)
	assert.Error(t, err)
}
