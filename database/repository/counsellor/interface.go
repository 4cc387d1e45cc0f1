// File: database/repository/counsellor/interface.go
package counsellorRepo

import (
	"context"

	"counselhub/database"
	"counselhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CounsellorRepository is the read boundary for counsellor reference data.
// Administrative CRUD lives outside the booking core; the flow only reads.
type CounsellorRepository interface {
	GetByID(ctx context.Context, id string) (*models.Counsellor, error)
}

type mongoCounsellorRepo struct {
	coll *mongo.Collection
}

// NewMongoCounsellorRepo constructs a new MongoDB CounsellorRepository.
func NewMongoCounsellorRepo() CounsellorRepository {
	return &mongoCounsellorRepo{
		coll: database.DB().Collection("counsellors"),
	}
}
