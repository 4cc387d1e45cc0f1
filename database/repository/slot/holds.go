// File: database/repository/slot/holds.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"counselhub/models"
)

func (r *mongoSlotRepo) AttachHold(ctx context.Context, slotID, meetingBookingID string, expiresIn time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"meetingBookingId": meetingBookingID,
		"expiresIn":        expiresIn,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": slotID, "booked": false}, update)
	if err != nil {
		return fmt.Errorf("failed to attach hold: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoSlotRepo) AttachClientAndPayment(ctx context.Context, slotID, clientID, bookingPaymentID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"clientId":         clientID,
		"bookingPaymentId": bookingPaymentID,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": slotID}, update)
	if err != nil {
		return fmt.Errorf("failed to attach client/payment: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoSlotRepo) MarkBooked(ctx context.Context, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set":   bson.M{"booked": true},
		"$unset": bson.M{"expiresIn": ""},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": slotID}, update)
	if err != nil {
		return fmt.Errorf("failed to mark slot booked: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoSlotRepo) ReleaseHold(ctx context.Context, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$unset": bson.M{
		"meetingBookingId": "",
		"bookingPaymentId": "",
		"clientId":         "",
		"expiresIn":        "",
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": slotID, "booked": false}, update)
	if err != nil {
		return fmt.Errorf("failed to release hold: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoSlotRepo) ListExpiredHolds(ctx context.Context, now time.Time) ([]models.ScheduleSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{
		"booked":           false,
		"meetingBookingId": bson.M{"$exists": true, "$ne": ""},
		"expiresIn":        bson.M{"$lt": now},
	}
	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expired holds: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.ScheduleSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding expired holds: %w", err)
	}
	return slots, nil
}
