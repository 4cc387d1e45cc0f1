// File: database/repository/bookingpayment/interface.go
package bookingPaymentRepo

import (
	"context"

	"counselhub/database"
	"counselhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingPaymentRepository persists booking payments. Mutated only by the
// booking payment ledger.
type BookingPaymentRepository interface {
	Create(ctx context.Context, payment models.BookingPayment) (*models.BookingPayment, error)
	GetByID(ctx context.Context, id string) (*models.BookingPayment, error)
	Update(ctx context.Context, payment *models.BookingPayment) error
}

type mongoBookingPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingPaymentRepo constructs a new MongoDB BookingPaymentRepository.
func NewMongoBookingPaymentRepo() BookingPaymentRepository {
	return &mongoBookingPaymentRepo{
		coll: database.DB().Collection("booking_payments"),
	}
}
