package schedule

import (
	"context"
	"errors"
	"strings"

	availabilityRepo "onibook/database/repository/availability"
	"onibook/models"
)

// SetAvailability upserts the offered slot set for a date. The repository
// trims, dedupes and drops empty slot strings, so re-applying the same set
// is idempotent.
func (s *DefaultScheduleService) SetAvailability(ctx context.Context, date string, slots []string) error {
	dateKey, err := NormalizeDate(date)
	if err != nil {
		return err
	}
	if err := s.AvailabilityRepo.Upsert(ctx, s.Technician, dateKey, slots); err != nil {
		return StorageUnavailableError{Err: err}
	}
	return nil
}

// RemoveAvailabilitySlot removes one offered slot from a date. Removing a
// slot that is not offered is a no-op; a date with no record at all is
// NotFoundError.
func (s *DefaultScheduleService) RemoveAvailabilitySlot(ctx context.Context, date, slot string) error {
	dateKey, err := NormalizeDate(date)
	if err != nil {
		return err
	}
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return ValidationError{Field: "time", Reason: "must not be empty"}
	}
	if err := s.AvailabilityRepo.RemoveSlot(ctx, s.Technician, dateKey, slot); err != nil {
		if errors.Is(err, availabilityRepo.ErrNotFound) {
			return NotFoundError{Resource: "availability", Key: dateKey}
		}
		return StorageUnavailableError{Err: err}
	}
	return nil
}

// AvailabilityForDate returns the record for a date, or an empty-slots shape
// when none exists, so the client always receives a well-formed record.
func (s *DefaultScheduleService) AvailabilityForDate(ctx context.Context, date string) (*models.Availability, error) {
	dateKey, err := NormalizeDate(date)
	if err != nil {
		return nil, err
	}
	avail, err := s.AvailabilityRepo.Get(ctx, s.Technician, dateKey)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrNotFound) {
			return &models.Availability{Technician: s.Technician, Date: dateKey, Slots: []string{}}, nil
		}
		return nil, StorageUnavailableError{Err: err}
	}
	if avail.Slots == nil {
		avail.Slots = []string{}
	}
	return avail, nil
}

// ListAvailability returns every availability record, date ascending.
func (s *DefaultScheduleService) ListAvailability(ctx context.Context) ([]models.Availability, error) {
	records, err := s.AvailabilityRepo.List(ctx, s.Technician)
	if err != nil {
		return nil, StorageUnavailableError{Err: err}
	}
	for i := range records {
		if records[i].Slots == nil {
			records[i].Slots = []string{}
		}
	}
	return records, nil
}
