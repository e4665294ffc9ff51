package schedule

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	availabilityRepo "onibook/database/repository/availability"
	bookingRepo "onibook/database/repository/booking"
	"onibook/models"
	"onibook/utils"
)

// AvailableSlots derives the bookable times for a date: offered slots minus
// the times of confirmed bookings on that date.
func (s *DefaultScheduleService) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	dateKey, err := NormalizeDate(date)
	if err != nil {
		return nil, err
	}

	offered := []string{}
	avail, err := s.AvailabilityRepo.Get(ctx, s.Technician, dateKey)
	switch {
	case err == nil:
		offered = avail.Slots
	case errors.Is(err, availabilityRepo.ErrNotFound):
		// No record means nothing is offered that day.
	default:
		return nil, StorageUnavailableError{Err: err}
	}

	confirmed, err := s.BookingRepo.ListByDateRange(ctx, s.Technician, models.BookingStatusConfirmed, dateKey, dateKey)
	if err != nil {
		return nil, StorageUnavailableError{Err: err}
	}

	taken := make(map[string]struct{}, len(confirmed))
	for _, b := range confirmed {
		taken[strings.TrimSpace(b.Time)] = struct{}{}
	}

	free := []string{}
	for _, slot := range offered {
		if _, booked := taken[slot]; !booked {
			free = append(free, slot)
		}
	}
	sort.Strings(free)
	return free, nil
}

// Book validates the draft and commits it as one conditional insert against
// the booking store. The uniqueness check happens at write time inside the
// store, not here: a prior read would leave a race window between two
// clients that both saw the slot as free.
func (s *DefaultScheduleService) Book(ctx context.Context, draft models.BookingDraft) (*models.Booking, error) {
	dateKey, err := NormalizeDate(draft.Date)
	if err != nil {
		return nil, err
	}
	draft.Date = dateKey
	draft.Technician = s.Technician

	draft.Time = strings.TrimSpace(draft.Time)
	if draft.Time == "" {
		return nil, ValidationError{Field: "time", Reason: "must not be empty"}
	}
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Name == "" {
		return nil, ValidationError{Field: "name", Reason: "must not be empty"}
	}
	draft.Email = strings.TrimSpace(draft.Email)
	if draft.Email == "" {
		return nil, ValidationError{Field: "email", Reason: "must not be empty"}
	}
	draft.Service = strings.TrimSpace(draft.Service)
	if draft.Service == "" {
		return nil, ValidationError{Field: "service", Reason: "must not be empty"}
	}

	booking, err := s.BookingRepo.Create(ctx, draft)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, SlotTakenError{Date: dateKey, Time: draft.Time}
		}
		return nil, StorageUnavailableError{Err: err}
	}

	utils.GetLogger().Info("booking confirmed",
		zap.String("id", booking.ID),
		zap.String("date", booking.Date),
		zap.String("time", booking.Time),
	)
	return booking, nil
}

// Bookings returns confirmed bookings in the given scope, sorted by
// (date, time) ascending.
func (s *DefaultScheduleService) Bookings(ctx context.Context, scope BookingScope) ([]models.Booking, error) {
	var from, to string
	switch scope {
	case ScopeUpcoming:
		from = s.today()
	case ScopePast:
		// Past means strictly before today; the range bound is inclusive.
		to = previousDay(s.today())
	case ScopeAll, "":
		// No bounds.
	default:
		return nil, ValidationError{Field: "scope", Reason: "must be upcoming, past or all"}
	}

	bookings, err := s.BookingRepo.ListByDateRange(ctx, s.Technician, models.BookingStatusConfirmed, from, to)
	if err != nil {
		return nil, StorageUnavailableError{Err: err}
	}
	return bookings, nil
}

// BookingsByEmail returns all bookings made under the given email.
func (s *DefaultScheduleService) BookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	bookings, err := s.BookingRepo.ListByEmail(ctx, s.Technician, strings.TrimSpace(email))
	if err != nil {
		return nil, StorageUnavailableError{Err: err}
	}
	return bookings, nil
}

// CancelBooking soft-cancels by id. The record survives with
// status=cancelled and stops occupying its slot in the derived view.
func (s *DefaultScheduleService) CancelBooking(ctx context.Context, id string) error {
	if err := s.BookingRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return NotFoundError{Resource: "booking", Key: id}
		}
		return StorageUnavailableError{Err: err}
	}
	return nil
}
