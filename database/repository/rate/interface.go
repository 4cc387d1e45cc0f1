// File: database/repository/rate/interface.go
package rateRepo

import (
	"context"
	"log"

	"counselhub/database"
	"counselhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RateQuery narrows rate lookups. Optional string fields are ignored when
// empty; WithService distinguishes "match this service" from "match records
// with no service at all".
type RateQuery struct {
	CounsellorID string
	ServiceID    string
	WithService  bool
	HourFrom     int
	HourTo       int
	Country      string
	Nationality  string
	DefaultOnly  bool
}

// RateRepository is the read boundary the resolver cascade runs against,
// plus the administrative create with duplicate rejection.
type RateRepository interface {
	Create(ctx context.Context, record models.RateRecord) (*models.RateRecord, error)
	GetByID(ctx context.Context, id string) (*models.RateRecord, error)
	Find(ctx context.Context, q RateQuery) ([]models.RateRecord, error)
	ListByCounsellor(ctx context.Context, counsellorID string) ([]models.RateRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoRateRepo struct {
	coll *mongo.Collection
}

// NewMongoRateRepo constructs a new MongoDB RateRepository.
func NewMongoRateRepo() RateRepository {
	repo := &mongoRateRepo{
		coll: database.DB().Collection("rates"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		log.Printf("rate repo: failed to ensure indexes: %v", err)
	}
	return repo
}
