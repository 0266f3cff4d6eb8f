package models

import "time"

// Taxi service types.
const (
	TaxiColectivo = "colectivo"
	TaxiPrivado   = "privado"
)

// TaxiRequest is a transport request from Havana to the house.
type TaxiRequest struct {
	ID              string    `bson:"id" json:"id"`
	ClientName      string    `bson:"client_name" json:"client_name"`
	ClientWhatsapp  string    `bson:"client_whatsapp" json:"client_whatsapp"`
	PickupAddress   string    `bson:"pickup_address" json:"pickup_address"`
	PickupDate      string    `bson:"pickup_date" json:"pickup_date"` // YYYY-MM-DD
	ServiceType     string    `bson:"service_type" json:"service_type"`
	PassengersCount int       `bson:"passengers_count" json:"passengers_count"`
	TotalPrice      float64   `bson:"total_price" json:"total_price"`
	PayOnline       bool      `bson:"pay_online" json:"pay_online"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
