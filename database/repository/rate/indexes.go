// FILE: database/repository/rate/indexes.go
package rateRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the rates collection.
func (r *mongoRateRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "counsellorId", Value: 1}, {Key: "hourFrom", Value: 1}, {Key: "hourTo", Value: 1}},
			Options: options.Index().SetName("counsellor_window_idx"),
		},
		{
			Keys:    bson.D{{Key: "counsellorId", Value: 1}, {Key: "country", Value: 1}, {Key: "nationality", Value: 1}},
			Options: options.Index().SetName("counsellor_locale_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create rate indexes: %w", err)
	}
	return nil
}
