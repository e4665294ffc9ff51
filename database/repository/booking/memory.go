// File: database/repository/booking/memory.go
package bookingRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"onibook/models"
)

// memoryBookingRepo is an in-process BookingRepository used by tests and
// local development. The mutex makes the confirmed-triple check and the
// insert one atomic step, mirroring the mongo partial unique index.
type memoryBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking // key: booking id
}

// NewMemoryBookingRepo constructs an in-memory BookingRepository.
func NewMemoryBookingRepo() BookingRepository {
	return &memoryBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *memoryBookingRepo) confirmedAtLocked(technician, date, timeSlot string) *models.Booking {
	for _, b := range r.bookings {
		if b.Technician == technician && b.Date == date && b.Time == timeSlot &&
			b.Status == models.BookingStatusConfirmed {
			return b
		}
	}
	return nil
}

func (r *memoryBookingRepo) Create(ctx context.Context, draft models.BookingDraft) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.confirmedAtLocked(draft.Technician, draft.Date, draft.Time) != nil {
		return nil, ErrSlotTaken
	}

	now := time.Now()
	booking := &models.Booking{
		ID:            uuid.New().String(),
		Technician:    draft.Technician,
		Name:          draft.Name,
		Email:         draft.Email,
		Service:       draft.Service,
		Date:          draft.Date,
		Time:          draft.Time,
		Status:        models.BookingStatusConfirmed,
		Note:          draft.Note,
		Link:          draft.Link,
		AttachmentRef: draft.AttachmentRef,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.bookings[booking.ID] = booking

	cp := *booking
	return &cp, nil
}

func (r *memoryBookingRepo) FindConfirmed(ctx context.Context, technician, date, timeSlot string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b := r.confirmedAtLocked(technician, date, timeSlot); b != nil {
		cp := *b
		return &cp, nil
	}
	return nil, ErrNotFound
}

func sortByDateTime(bookings []models.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].Date != bookings[j].Date {
			return bookings[i].Date < bookings[j].Date
		}
		return bookings[i].Time < bookings[j].Time
	})
}

func (r *memoryBookingRepo) ListByDateRange(ctx context.Context, technician string, status models.BookingStatus, fromDate, toDate string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var bookings []models.Booking
	for _, b := range r.bookings {
		if b.Technician != technician || b.Status != status {
			continue
		}
		if fromDate != "" && b.Date < fromDate {
			continue
		}
		if toDate != "" && b.Date > toDate {
			continue
		}
		bookings = append(bookings, *b)
	}
	sortByDateTime(bookings)
	return bookings, nil
}

func (r *memoryBookingRepo) ListByEmail(ctx context.Context, technician, email string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var bookings []models.Booking
	for _, b := range r.bookings {
		if b.Technician == technician && b.Email == email {
			bookings = append(bookings, *b)
		}
	}
	sortByDateTime(bookings)
	return bookings, nil
}

func (r *memoryBookingRepo) Cancel(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	if b.Status != models.BookingStatusCancelled {
		b.Status = models.BookingStatusCancelled
		b.UpdatedAt = time.Now()
	}
	return nil
}
