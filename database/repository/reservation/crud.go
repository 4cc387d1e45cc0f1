// File: database/repository/reservation/crud.go
package reservationRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"counselhub/models"
)

func (r *mongoReservationRepo) CreateMany(ctx context.Context, intervals []models.ReservationInterval) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	docs := make([]interface{}, len(intervals))
	ids := make([]string, len(intervals))
	for i, iv := range intervals {
		if iv.ID == "" {
			iv.ID = uuid.New().String()
		}
		if iv.CreatedAt.IsZero() {
			iv.CreatedAt = now
		}
		ids[i] = iv.ID
		docs[i] = iv
	}

	if _, err := r.coll.InsertMany(ctx, docs, &options.InsertManyOptions{Ordered: boolPtr(true)}); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *mongoReservationRepo) GetByID(ctx context.Context, id string) (*models.ReservationInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var iv models.ReservationInterval
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&iv); err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r *mongoReservationRepo) DeleteByID(ctx context.Context, id string) error {
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

func boolPtr(b bool) *bool { return &b }
