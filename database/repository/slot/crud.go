// File: database/repository/slot/crud.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"counselhub/models"
)

func (r *mongoSlotRepo) Create(ctx context.Context, slot models.ScheduleSlot) (*models.ScheduleSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	if slot.CreatedAt.IsZero() {
		slot.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		return nil, fmt.Errorf("failed to insert slot: %w", err)
	}
	return &slot, nil
}

func (r *mongoSlotRepo) GetByID(ctx context.Context, id string) (*models.ScheduleSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.ScheduleSlot
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *mongoSlotRepo) GetByMeetingBookingID(ctx context.Context, meetingBookingID string) (*models.ScheduleSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.ScheduleSlot
	if err := r.coll.FindOne(ctx, bson.M{"meetingBookingId": meetingBookingID}).Decode(&slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *mongoSlotRepo) GetByPaymentID(ctx context.Context, bookingPaymentID string) (*models.ScheduleSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.ScheduleSlot
	if err := r.coll.FindOne(ctx, bson.M{"bookingPaymentId": bookingPaymentID}).Decode(&slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *mongoSlotRepo) List(ctx context.Context, filter models.SlotFilter) ([]models.ScheduleSlot, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.CounsellorID != "" {
		query["counsellorId"] = filter.CounsellorID
	}
	if filter.RoomID != "" {
		query["roomId"] = filter.RoomID
	}
	if filter.MeetingType != "" {
		query["meetingType"] = filter.MeetingType
	}
	if filter.BookedOnly != nil {
		query["booked"] = *filter.BookedOnly
	}
	if filter.Date != "" {
		day, err := time.Parse("2006-01-02", filter.Date)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid date filter %q: %w", filter.Date, err)
		}
		query["startTime"] = bson.M{"$gte": day, "$lt": day.AddDate(0, 0, 1)}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count slots: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		opts.SetSkip(int64((page - 1) * filter.PageSize))
		opts.SetLimit(int64(filter.PageSize))
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.ScheduleSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, 0, fmt.Errorf("error decoding slots: %w", err)
	}
	return slots, total, nil
}

func (r *mongoSlotRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
