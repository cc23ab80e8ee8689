// Package mongorepo implements the repositories on MongoDB, keeping the
// document layout of the users, foods and pets collections.
package mongorepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection = "users"
	foodsCollection = "foods"
	petsCollection  = "pets"
)

// EnsureIndexes creates the unique email index and the ordering indexes.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("idx_users_email"),
	}); err != nil {
		return fmt.Errorf("users index: %w", err)
	}
	for _, name := range []string{foodsCollection, petsCollection} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}},
		}); err != nil {
			return fmt.Errorf("%s index: %w", name, err)
		}
	}
	return nil
}

// NewStore wires all repositories to db. Closing the store disconnects client.
func NewStore(client *mongo.Client, db *mongo.Database) *repository.Store {
	return repository.NewStore("mongo",
		NewUserRepo(db),
		NewFoodRepo(db),
		NewPetRepo(db),
		func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		client.Disconnect,
	)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return repository.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return repository.ErrDuplicate
	}
	return err
}

var byCreation = bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}
