// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"onibook/database"
	"onibook/models"
	"onibook/utils"
)

var (
	// ErrNotFound signals that no booking matches the requested identity.
	ErrNotFound = errors.New("booking not found")
	// ErrSlotTaken signals that the conditional insert lost against an
	// existing confirmed booking on the same (technician, date, time) triple.
	ErrSlotTaken = errors.New("slot already has a confirmed booking")
)

type BookingRepository interface {
	// Create assigns identity and timestamps, sets status to confirmed, and
	// inserts the booking as a single conditional operation. The uniqueness
	// of (technician, date, time, status=confirmed) is enforced by the store
	// itself, not by a prior read; a lost race returns ErrSlotTaken.
	Create(ctx context.Context, draft models.BookingDraft) (*models.Booking, error)
	// FindConfirmed returns the confirmed booking occupying the triple, or
	// ErrNotFound.
	FindConfirmed(ctx context.Context, technician, date, timeSlot string) (*models.Booking, error)
	// ListByDateRange returns bookings with the given status sorted by
	// (date, time) ascending. Empty from/to leave that bound open.
	ListByDateRange(ctx context.Context, technician string, status models.BookingStatus, fromDate, toDate string) ([]models.Booking, error)
	// ListByEmail returns all of a client's bookings sorted by (date, time).
	ListByEmail(ctx context.Context, technician, email string) ([]models.Booking, error)
	// Cancel sets the booking's status to cancelled. Unknown ids return
	// ErrNotFound; cancelling twice is a no-op.
	Cancel(ctx context.Context, id string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB-backed BookingRepository. The
// partial unique index is what makes Create race-free, so failing to create
// it is fatal.
func NewMongoBookingRepo() BookingRepository {
	repo := &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Sugar().Fatalf("booking repo: %v", err)
	}
	return repo
}
