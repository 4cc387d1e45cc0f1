// File: database/repository/meeting/crud.go
package meetingRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"counselhub/models"
)

func (r *mongoMeetingBookingRepo) Create(ctx context.Context, booking models.MeetingBooking) (*models.MeetingBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = now
	}
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to insert meeting booking: %w", err)
	}
	return &booking, nil
}

func (r *mongoMeetingBookingRepo) GetByID(ctx context.Context, id string) (*models.MeetingBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.MeetingBooking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *mongoMeetingBookingRepo) UpdateStatus(ctx context.Context, id string, status models.MeetingBookingStatus) error {
	return r.setFields(ctx, id, bson.M{"status": status})
}

func (r *mongoMeetingBookingRepo) SetBookingPaymentID(ctx context.Context, id, bookingPaymentID string) error {
	return r.setFields(ctx, id, bson.M{"bookingPaymentId": bookingPaymentID})
}

func (r *mongoMeetingBookingRepo) SetClientID(ctx context.Context, id, clientID string) error {
	return r.setFields(ctx, id, bson.M{"clientId": clientID})
}

func (r *mongoMeetingBookingRepo) SetServiceID(ctx context.Context, id, serviceID string) error {
	return r.setFields(ctx, id, bson.M{"serviceId": serviceID})
}

func (r *mongoMeetingBookingRepo) SetCalendarEventID(ctx context.Context, id, eventID string) error {
	return r.setFields(ctx, id, bson.M{"calendarEventId": eventID})
}

func (r *mongoMeetingBookingRepo) DeleteByID(ctx context.Context, id string) error {
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

func (r *mongoMeetingBookingRepo) setFields(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update meeting booking: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
