// File: database/repository/counsellor/crud.go
package counsellorRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"counselhub/models"
)

func (r *mongoCounsellorRepo) GetByID(ctx context.Context, id string) (*models.Counsellor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var counsellor models.Counsellor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&counsellor); err != nil {
		return nil, err
	}
	return &counsellor, nil
}
