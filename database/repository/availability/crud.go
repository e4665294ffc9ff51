// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"onibook/models"
)

func (r *mongoAvailabilityRepo) Get(ctx context.Context, technician, date string) (*models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"technician": technician, "date": date}
	var avail models.Availability
	if err := r.coll.FindOne(ctx, filter).Decode(&avail); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &avail, nil
}

func (r *mongoAvailabilityRepo) List(ctx context.Context, technician string) ([]models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"technician": technician}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.Availability
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *mongoAvailabilityRepo) Upsert(ctx context.Context, technician, date string, slots []string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{"technician": technician, "date": date}
	update := bson.M{
		"$set": bson.M{
			"slots":     models.NormalizeSlots(slots),
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"technician": technician,
			"date":       date,
			"createdAt":  now,
		},
	}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoAvailabilityRepo) RemoveSlot(ctx context.Context, technician, date, slot string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"technician": technician, "date": date}
	update := bson.M{
		"$pull": bson.M{"slots": strings.TrimSpace(slot)},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
