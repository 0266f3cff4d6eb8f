package models

import "time"

// Booking statuses. A booking is created pending (online payment flow) or
// confirmed (direct booking); cancellation states are terminal.
const (
	BookingStatusPending           = "pending"
	BookingStatusConfirmed         = "confirmed"
	BookingStatusCancelledRefund   = "cancelled_refund"
	BookingStatusCancelledNoRefund = "cancelled_no_refund"
)

// Booking represents a guest reservation for one unit.
type Booking struct {
	ID           string     `bson:"id" json:"id"`
	RoomID       Unit       `bson:"room_id" json:"room_id"`
	CheckIn      string     `bson:"check_in" json:"check_in"`   // YYYY-MM-DD
	CheckOut     string     `bson:"check_out" json:"check_out"` // YYYY-MM-DD
	GuestsCount  int        `bson:"guests_count" json:"guests_count"`
	TotalPrice   float64    `bson:"total_price" json:"total_price"`
	GuestName    string     `bson:"guest_name" json:"guest_name"`
	GuestEmail   string     `bson:"guest_email" json:"guest_email"`
	GuestPhone   string     `bson:"guest_phone,omitempty" json:"guest_phone,omitempty"`
	Status       string     `bson:"status" json:"status"`
	SurveySentAt *time.Time `bson:"survey_sent_at,omitempty" json:"survey_sent_at,omitempty"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
}

// Cancelled reports whether the booking is in a terminal cancellation state.
func (b Booking) Cancelled() bool {
	return b.Status == BookingStatusCancelledRefund || b.Status == BookingStatusCancelledNoRefund
}
