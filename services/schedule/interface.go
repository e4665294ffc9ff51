package schedule

import (
	"context"
	"time"

	availabilityRepo "onibook/database/repository/availability"
	bookingRepo "onibook/database/repository/booking"
	"onibook/models"
)

// BookingScope selects which bookings an admin listing covers.
type BookingScope string

const (
	ScopeUpcoming BookingScope = "upcoming"
	ScopePast     BookingScope = "past"
	ScopeAll      BookingScope = "all"
)

// Service is the slot reconciler: it derives bookable slots for a date and
// commits new bookings against the store's uniqueness constraint. It also
// fronts the admin availability operations so every date entering the stores
// passes through the normalizer.
type Service interface {
	// AvailableSlots returns the bookable times for a date: the offered
	// slots minus the times of confirmed bookings, sorted ascending.
	AvailableSlots(ctx context.Context, date string) ([]string, error)
	// Book validates the draft and commits it as a single conditional
	// insert. A lost race returns SlotTakenError.
	Book(ctx context.Context, draft models.BookingDraft) (*models.Booking, error)
	// Bookings returns confirmed bookings in the scope, (date, time) ascending.
	Bookings(ctx context.Context, scope BookingScope) ([]models.Booking, error)
	// BookingsByEmail returns a client's own bookings.
	BookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
	// CancelBooking soft-cancels by id. Unknown ids return NotFoundError;
	// cancelling twice is a no-op.
	CancelBooking(ctx context.Context, id string) error

	// SetAvailability upserts the offered slot set for a date.
	SetAvailability(ctx context.Context, date string, slots []string) error
	// RemoveAvailabilitySlot removes one offered slot from a date.
	RemoveAvailabilitySlot(ctx context.Context, date, slot string) error
	// AvailabilityForDate returns the record for a date, or an empty-slots
	// record when none exists.
	AvailabilityForDate(ctx context.Context, date string) (*models.Availability, error)
	// ListAvailability returns all availability records, date ascending.
	ListAvailability(ctx context.Context) ([]models.Availability, error)
}

// DefaultScheduleService implements Service over the two stores. Availability
// and booking existence are independent collections; "available" is always a
// derived view, never materialized state that can drift.
type DefaultScheduleService struct {
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	BookingRepo      bookingRepo.BookingRepository
	Technician       string
	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultScheduleService) today() string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return now().Format(DateKeyLayout)
}
