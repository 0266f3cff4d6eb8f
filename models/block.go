package models

import "time"

// ManualBlock closes a unit for a date range by admin decision. Unlike a
// reservation, both boundary days are blocked: the range is inclusive on
// both ends. There is no update-in-place; an admin deletes and recreates a
// block to change its range.
type ManualBlock struct {
	BlockID   string    `bson:"block_id" json:"block_id"`
	RoomID    Unit      `bson:"room_id" json:"room_id"`
	StartDate string    `bson:"start_date" json:"start_date"` // YYYY-MM-DD, inclusive
	EndDate   string    `bson:"end_date" json:"end_date"`     // YYYY-MM-DD, inclusive
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
