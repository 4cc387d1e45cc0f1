// File: database/repository/rate/queries.go
package rateRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"counselhub/models"
)

func (r *mongoRateRepo) Find(ctx context.Context, q RateQuery) ([]models.RateRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{
		"counsellorId": q.CounsellorID,
		"hourFrom":     q.HourFrom,
		"hourTo":       q.HourTo,
	}
	if q.WithService {
		query["serviceId"] = q.ServiceID
	}
	if q.Country != "" {
		query["country"] = q.Country
	}
	if q.Nationality != "" {
		query["nationality"] = q.Nationality
	}
	if q.DefaultOnly {
		query["isDefault"] = true
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rate records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.RateRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("error decoding rate records: %w", err)
	}
	return records, nil
}

func (r *mongoRateRepo) ListByCounsellor(ctx context.Context, counsellorID string) ([]models.RateRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"counsellorId": counsellorID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rate records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.RateRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("error decoding rate records: %w", err)
	}
	return records, nil
}
