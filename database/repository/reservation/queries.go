// File: database/repository/reservation/queries.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"counselhub/models"
)

func (r *mongoReservationRepo) List(ctx context.Context, filter models.ReservationFilter) ([]models.ReservationInterval, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.ResourceType != "" {
		query["resourceType"] = filter.ResourceType
	}
	if filter.ResourceID != "" {
		query["resourceId"] = filter.ResourceID
	}
	if filter.From != nil {
		query["to"] = bson.M{"$gt": *filter.From}
	}
	if filter.To != nil {
		query["from"] = bson.M{"$lt": *filter.To}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reservations: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "from", Value: 1}})
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
		return nil, 0, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var intervals []models.ReservationInterval
	if err := cursor.All(ctx, &intervals); err != nil {
		return nil, 0, fmt.Errorf("error decoding reservations: %w", err)
	}
	return intervals, total, nil
}

// ListOverlapping applies the half-open overlap test (from < existing.to
// AND to > existing.from) against both resource calendars at once.
func (r *mongoReservationRepo) ListOverlapping(ctx context.Context, counsellorID, locationID string, from, to time.Time) ([]models.ReservationInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resourceClauses := bson.A{}
	if counsellorID != "" {
		resourceClauses = append(resourceClauses, bson.M{
			"resourceType": models.ResourceCounsellor,
			"resourceId":   counsellorID,
		})
	}
	if locationID != "" {
		resourceClauses = append(resourceClauses, bson.M{
			"resourceType": models.ResourceLocation,
			"resourceId":   locationID,
		})
	}
	if len(resourceClauses) == 0 {
		return nil, nil
	}

	query := bson.M{
		"$or":  resourceClauses,
		"from": bson.M{"$lt": to},
		"to":   bson.M{"$gt": from},
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch overlapping reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var intervals []models.ReservationInterval
	if err := cursor.All(ctx, &intervals); err != nil {
		return nil, fmt.Errorf("error decoding overlapping reservations: %w", err)
	}
	return intervals, nil
}
