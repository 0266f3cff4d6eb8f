package models

// Property describes the pricing profile of a unit. The catalog is fixed;
// it mirrors the public room cards.
type Property struct {
	Unit                Unit
	PricePerNight       float64
	BaseGuestsIncluded  int
	ExtraPersonFee      float64
	MaxGuests           int
}

// Properties is the fixed unit catalog.
var Properties = map[Unit]Property{
	UnitRoom1: {
		Unit:               UnitRoom1,
		PricePerNight:      55,
		BaseGuestsIncluded: 1,
		ExtraPersonFee:     10,
		MaxGuests:          3,
	},
	UnitRoom2: {
		Unit:               UnitRoom2,
		PricePerNight:      55,
		BaseGuestsIncluded: 1,
		ExtraPersonFee:     10,
		MaxGuests:          3,
	},
	UnitVilla: {
		Unit:               UnitVilla,
		PricePerNight:      120,
		BaseGuestsIncluded: 4,
		ExtraPersonFee:     15,
		MaxGuests:          6,
	},
}
