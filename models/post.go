package models

import "time"

// Post is a blog entry shown on the discover page.
type Post struct {
	ID        string    `bson:"id" json:"id"`
	Slug      string    `bson:"slug" json:"slug"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body" json:"body"`
	CoverURL  string    `bson:"cover_url,omitempty" json:"cover_url,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
