// File: database/repository/rate/crud.go
package rateRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"counselhub/models"
)

// ErrDuplicateRate is returned when an identical rate record already exists.
var ErrDuplicateRate = errors.New("identical rate record already exists")

func (r *mongoRateRepo) Create(ctx context.Context, record models.RateRecord) (*models.RateRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Reject exact duplicates on the identifying tuple.
	dupFilter := bson.M{
		"counsellorId": record.CounsellorID,
		"serviceId":    record.ServiceID,
		"currency":     record.Currency,
		"country":      record.Country,
		"nationality":  record.Nationality,
		"hourFrom":     record.HourFrom,
		"hourTo":       record.HourTo,
		"rate":         record.Rate,
	}
	count, err := r.coll.CountDocuments(ctx, dupFilter)
	if err != nil {
		return nil, fmt.Errorf("duplicate check failed: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicateRate
	}

	// At most one default per (counsellor, service, hour window).
	if record.IsDefault {
		defFilter := bson.M{
			"counsellorId": record.CounsellorID,
			"serviceId":    record.ServiceID,
			"hourFrom":     record.HourFrom,
			"hourTo":       record.HourTo,
			"isDefault":    true,
		}
		count, err := r.coll.CountDocuments(ctx, defFilter)
		if err != nil {
			return nil, fmt.Errorf("default-rate check failed: %w", err)
		}
		if count > 0 {
			return nil, ErrDuplicateRate
		}
	}

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to insert rate record: %w", err)
	}
	return &record, nil
}

func (r *mongoRateRepo) GetByID(ctx context.Context, id string) (*models.RateRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var record models.RateRecord
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *mongoRateRepo) DeleteByID(ctx context.Context, id string) error {
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
