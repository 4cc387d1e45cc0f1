// FILE: database/repository/reservation/indexes.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the reservations collection.
func (r *mongoReservationRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary overlap-scan pattern: resource plus interval bounds.
		{
			Keys:    bson.D{{Key: "resourceType", Value: 1}, {Key: "resourceId", Value: 1}, {Key: "from", Value: 1}, {Key: "to", Value: 1}},
			Options: options.Index().SetName("resource_interval_idx"),
		},
		// Backstop for the window between conflict check and insert: two
		// concurrent requests cannot both land an interval starting at
		// the same instant on the same resource.
		{
			Keys:    bson.D{{Key: "resourceId", Value: 1}, {Key: "from", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_resource_from"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create reservation indexes: %w", err)
	}
	return nil
}
