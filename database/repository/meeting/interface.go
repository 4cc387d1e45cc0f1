// File: database/repository/meeting/interface.go
package meetingRepo

import (
	"context"

	"counselhub/database"
	"counselhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MeetingBookingRepository persists meeting bookings. Owned exclusively by
// the schedule booking orchestrator.
type MeetingBookingRepository interface {
	Create(ctx context.Context, booking models.MeetingBooking) (*models.MeetingBooking, error)
	GetByID(ctx context.Context, id string) (*models.MeetingBooking, error)
	UpdateStatus(ctx context.Context, id string, status models.MeetingBookingStatus) error
	SetBookingPaymentID(ctx context.Context, id, bookingPaymentID string) error
	SetClientID(ctx context.Context, id, clientID string) error
	SetServiceID(ctx context.Context, id, serviceID string) error
	SetCalendarEventID(ctx context.Context, id, eventID string) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoMeetingBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoMeetingBookingRepo constructs a new MongoDB MeetingBookingRepository.
func NewMongoMeetingBookingRepo() MeetingBookingRepository {
	return &mongoMeetingBookingRepo{
		coll: database.DB().Collection("meeting_bookings"),
	}
}
