// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"onibook/database"
	"onibook/models"
	"onibook/utils"
)

// ErrNotFound signals that no availability record exists for the requested date.
var ErrNotFound = errors.New("availability record not found")

type AvailabilityRepository interface {
	// Get returns the record for (technician, date), or ErrNotFound.
	Get(ctx context.Context, technician, date string) (*models.Availability, error)
	// List returns all of a technician's records sorted by date ascending.
	List(ctx context.Context, technician string) ([]models.Availability, error)
	// Upsert atomically replaces the slot set for (technician, date). Slots
	// are trimmed, deduplicated and stripped of empties before persisting;
	// re-applying the same slots yields the same state.
	Upsert(ctx context.Context, technician, date string, slots []string) error
	// RemoveSlot removes one slot string (trim-compared) from the date's set.
	// Removing an absent slot is a no-op; a missing date record is ErrNotFound.
	RemoveSlot(ctx context.Context, technician, date, slot string) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a MongoDB-backed AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	repo := &mongoAvailabilityRepo{
		coll: database.DB().Collection("availability"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("availability repo: %v", err)
	}
	return repo
}
