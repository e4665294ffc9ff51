// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"onibook/models"
)

func (r *mongoBookingRepo) Create(ctx context.Context, draft models.BookingDraft) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	booking := models.Booking{
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

	// The insert and the uniqueness check are one operation: the partial
	// unique index rejects a second confirmed booking on the same triple no
	// matter how the writers interleave.
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	return &booking, nil
}

func (r *mongoBookingRepo) FindConfirmed(ctx context.Context, technician, date, timeSlot string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"technician": technician,
		"date":       date,
		"time":       timeSlot,
		"status":     models.BookingStatusConfirmed,
	}
	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *mongoBookingRepo) ListByDateRange(ctx context.Context, technician string, status models.BookingStatus, fromDate, toDate string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"technician": technician, "status": status}
	dateBounds := bson.M{}
	if fromDate != "" {
		dateBounds["$gte"] = fromDate
	}
	if toDate != "" {
		dateBounds["$lte"] = toDate
	}
	if len(dateBounds) > 0 {
		filter["date"] = dateBounds
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *mongoBookingRepo) ListByEmail(ctx context.Context, technician, email string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"technician": technician, "email": email}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *mongoBookingRepo) Cancel(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":    models.BookingStatusCancelled,
		"updatedAt": time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
