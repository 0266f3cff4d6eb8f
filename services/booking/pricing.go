package booking

import (
	"casaherenia/models"
	"casaherenia/services/availability"
)

// NightlyPricing breaks down the per-night price of a unit for a guest
// count. The base price covers a number of included guests; each guest
// above that adds a fixed per-person supplement.
type NightlyPricing struct {
	BasePrice        float64 `json:"base_price"`
	ExtraGuests      int     `json:"extra_guests"`
	NightlyExtraFee  float64 `json:"nightly_extra_fee"`
	TotalNightlyRate float64 `json:"total_nightly_rate"`
}

// PriceForNight computes the nightly rate of a unit for the selected
// guest count.
func PriceForNight(property models.Property, guests int) NightlyPricing {
	extraGuests := guests - property.BaseGuestsIncluded
	if extraGuests < 0 {
		extraGuests = 0
	}
	nightlyExtraFee := float64(extraGuests) * property.ExtraPersonFee
	return NightlyPricing{
		BasePrice:        property.PricePerNight,
		ExtraGuests:      extraGuests,
		NightlyExtraFee:  nightlyExtraFee,
		TotalNightlyRate: property.PricePerNight + nightlyExtraFee,
	}
}

// TotalPrice computes the stay total: nightly rate times the number of
// nights, where nights follow the exclusive-end convention.
func TotalPrice(property models.Property, checkIn, checkOut string, guests int) (float64, error) {
	start, err := availability.ParseDay(checkIn)
	if err != nil {
		return 0, err
	}
	end, err := availability.ParseDay(checkOut)
	if err != nil {
		return 0, err
	}
	nights := availability.WholeDaysBetween(start, end)
	if nights <= 0 {
		return 0, ErrInvalidDateRange
	}
	return PriceForNight(property, guests).TotalNightlyRate * float64(nights), nil
}
