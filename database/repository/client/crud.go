// File: database/repository/client/crud.go
package clientRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"counselhub/models"
)

func (r *mongoClientRepo) UpsertByEmail(ctx context.Context, client models.Client) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	email := strings.ToLower(strings.TrimSpace(client.Email))
	now := time.Now()

	set := bson.M{
		"email":     email,
		"updatedAt": now,
	}
	if client.FirstName != "" {
		set["firstName"] = client.FirstName
	}
	if client.LastName != "" {
		set["lastName"] = client.LastName
	}
	if client.Phone != "" {
		set["phone"] = client.Phone
	}
	if client.Country != "" {
		set["country"] = client.Country
	}
	if client.Nationality != "" {
		set["nationality"] = client.Nationality
	}
	if client.Timezone != "" {
		set["timezone"] = client.Timezone
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"id":        uuid.New().String(),
			"existing":  false,
			"createdAt": now,
		},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var result models.Client
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to upsert client: %w", err)
	}
	return &result, nil
}

func (r *mongoClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var client models.Client
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *mongoClientRepo) GetByEmail(ctx context.Context, email string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var client models.Client
	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
	if err := r.coll.FindOne(ctx, filter).Decode(&client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *mongoClientRepo) MarkExisting(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"existing": true, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to mark client existing: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
