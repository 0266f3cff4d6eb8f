package models

import "time"

// Review is a guest opinion. Reviews are listed publicly only after an
// admin approves them.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	GuestName  string    `bson:"guest_name" json:"guest_name"`
	Rating     int       `bson:"rating" json:"rating"` // 1..5
	Comment    string    `bson:"comment" json:"comment"`
	Approved   bool      `bson:"approved" json:"approved"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
