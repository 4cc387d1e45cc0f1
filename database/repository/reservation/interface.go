// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"
	"log"
	"time"

	"counselhub/database"
	"counselhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReservationRepository is the persistence boundary for reservation
// intervals. Intervals are inserted in bulk (one recurrence expansion at a
// time) and only ever deleted whole.
type ReservationRepository interface {
	CreateMany(ctx context.Context, intervals []models.ReservationInterval) ([]string, error)
	GetByID(ctx context.Context, id string) (*models.ReservationInterval, error)
	List(ctx context.Context, filter models.ReservationFilter) ([]models.ReservationInterval, int64, error)
	DeleteByID(ctx context.Context, id string) error

	// ListOverlapping returns stored intervals for either resource that
	// overlap [from, to) under half-open semantics.
	ListOverlapping(ctx context.Context, counsellorID, locationID string, from, to time.Time) ([]models.ReservationInterval, error)
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a new MongoDB ReservationRepository.
func NewMongoReservationRepo() ReservationRepository {
	repo := &mongoReservationRepo{
		coll: database.DB().Collection("reservations"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		log.Printf("reservation repo: failed to ensure indexes: %v", err)
	}
	return repo
}
