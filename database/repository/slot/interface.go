// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"
	"log"
	"time"

	"counselhub/database"
	"counselhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SlotRepository persists schedule slots and their hold/booking linkage.
type SlotRepository interface {
	Create(ctx context.Context, slot models.ScheduleSlot) (*models.ScheduleSlot, error)
	GetByID(ctx context.Context, id string) (*models.ScheduleSlot, error)
	GetByMeetingBookingID(ctx context.Context, meetingBookingID string) (*models.ScheduleSlot, error)
	GetByPaymentID(ctx context.Context, bookingPaymentID string) (*models.ScheduleSlot, error)
	List(ctx context.Context, filter models.SlotFilter) ([]models.ScheduleSlot, int64, error)
	DeleteByID(ctx context.Context, id string) error

	// AttachHold links a meeting booking and sets the advisory expiry.
	AttachHold(ctx context.Context, slotID, meetingBookingID string, expiresIn time.Time) error
	// AttachClientAndPayment links the captured client and payment ids.
	AttachClientAndPayment(ctx context.Context, slotID, clientID, bookingPaymentID string) error
	// MarkBooked flips booked=true and clears the expiry window.
	MarkBooked(ctx context.Context, slotID string) error
	// ReleaseHold clears the hold linkage on a lapsed slot.
	ReleaseHold(ctx context.Context, slotID string) error
	// ListExpiredHolds returns unbooked slots whose hold lapsed before now.
	ListExpiredHolds(ctx context.Context, now time.Time) ([]models.ScheduleSlot, error)
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a new MongoDB SlotRepository.
func NewMongoSlotRepo() SlotRepository {
	repo := &mongoSlotRepo{
		coll: database.DB().Collection("slots"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		log.Printf("slot repo: failed to ensure indexes: %v", err)
	}
	return repo
}
