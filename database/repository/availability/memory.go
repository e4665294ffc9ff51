// File: database/repository/availability/memory.go
package availabilityRepo

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"onibook/models"
)

// memoryAvailabilityRepo is an in-process AvailabilityRepository used by
// tests and local development. It honors the same (technician, date)
// uniqueness the mongo index enforces.
type memoryAvailabilityRepo struct {
	mu      sync.Mutex
	records map[string]*models.Availability // key: technician + "|" + date
}

// NewMemoryAvailabilityRepo constructs an in-memory AvailabilityRepository.
func NewMemoryAvailabilityRepo() AvailabilityRepository {
	return &memoryAvailabilityRepo{records: make(map[string]*models.Availability)}
}

func availKey(technician, date string) string {
	return technician + "|" + date
}

func (r *memoryAvailabilityRepo) Get(ctx context.Context, technician, date string) (*models.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[availKey(technician, date)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *rec
	cp.Slots = append([]string(nil), rec.Slots...)
	return &cp, nil
}

func (r *memoryAvailabilityRepo) List(ctx context.Context, technician string) ([]models.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var records []models.Availability
	for _, rec := range r.records {
		if rec.Technician != technician {
			continue
		}
		cp := *rec
		cp.Slots = append([]string(nil), rec.Slots...)
		records = append(records, cp)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date < records[j].Date })
	return records, nil
}

func (r *memoryAvailabilityRepo) Upsert(ctx context.Context, technician, date string, slots []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	key := availKey(technician, date)
	if rec, ok := r.records[key]; ok {
		rec.Slots = models.NormalizeSlots(slots)
		rec.UpdatedAt = now
		return nil
	}
	r.records[key] = &models.Availability{
		Technician: technician,
		Date:       date,
		Slots:      models.NormalizeSlots(slots),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return nil
}

func (r *memoryAvailabilityRepo) RemoveSlot(ctx context.Context, technician, date, slot string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[availKey(technician, date)]
	if !ok {
		return ErrNotFound
	}
	slot = strings.TrimSpace(slot)
	kept := rec.Slots[:0]
	for _, s := range rec.Slots {
		if s != slot {
			kept = append(kept, s)
		}
	}
	rec.Slots = kept
	rec.UpdatedAt = time.Now()
	return nil
}
