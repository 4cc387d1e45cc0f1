// File: database/repository/client/interface.go
package clientRepo

import (
	"context"

	"counselhub/database"
	"counselhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ClientRepository persists clients keyed by email.
type ClientRepository interface {
	// UpsertByEmail merges the given fields onto the record for this email,
	// creating it if absent. Last writer wins on shared fields.
	UpsertByEmail(ctx context.Context, client models.Client) (*models.Client, error)
	GetByID(ctx context.Context, id string) (*models.Client, error)
	GetByEmail(ctx context.Context, email string) (*models.Client, error)
	MarkExisting(ctx context.Context, id string) error
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a new MongoDB ClientRepository.
func NewMongoClientRepo() ClientRepository {
	return &mongoClientRepo{
		coll: database.DB().Collection("clients"),
	}
}
