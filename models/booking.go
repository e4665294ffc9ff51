package models

import "time"

// BookingStatus is the lifecycle state of a booking. The lifecycle is
// created -> confirmed -> cancelled; cancelled is terminal.
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is an appointment occupying one (technician, date, time) triple.
// At most one booking with status "confirmed" may exist per triple; the
// booking store enforces that with a partial unique index.
type Booking struct {
	ID            string        `bson:"id" json:"id"`
	Technician    string        `bson:"technician" json:"technician"`
	Name          string        `bson:"name" json:"name"`
	Email         string        `bson:"email" json:"email"`
	Service       string        `bson:"service" json:"service"`
	Date          string        `bson:"date" json:"date"` // YYYY-MM-DD
	Time          string        `bson:"time" json:"time"` // e.g. "09:00"
	Status        BookingStatus `bson:"status" json:"status"`
	Note          string        `bson:"note" json:"note"`
	Link          string        `bson:"link" json:"link"`
	AttachmentRef string        `bson:"attachmentRef,omitempty" json:"attachmentRef,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// BookingDraft carries the client-supplied fields of a booking request.
// Identity, status and timestamps are assigned by the store on create.
type BookingDraft struct {
	Technician    string `json:"technician"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Service       string `json:"service"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Note          string `json:"note"`
	Link          string `json:"link"`
	AttachmentRef string `json:"attachmentRef"`
}
