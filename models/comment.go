package models

import "time"

// Comment is one entry in the append-only review ledger. There is no
// uniqueness constraint; the ledger is independent of scheduling.
type Comment struct {
	ID      string    `bson:"id" json:"id"`
	Name    string    `bson:"name" json:"name"`
	Message string    `bson:"message" json:"message"`
	Rating  int       `bson:"rating" json:"rating"`
	Image   string    `bson:"image,omitempty" json:"image,omitempty"`
	Date    time.Time `bson:"date" json:"date"`
}
