// Package docstore implements the repository interfaces on MongoDB.
package docstore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	goalsCollection      = "goals"
	milestonesCollection = "milestones"
	usersCollection      = "users"
	budgetsCollection    = "budgets"
)

// Store owns the MongoDB client shared by the document repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a client on uri, verifies it with a ping and ensures the
// indexes the repositories rely on.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	store := &Store{client: client, db: client.Database(database)}
	if err := store.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return store, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "login", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users index: %w", err)
	}
	return nil
}

// Database returns the database the repositories write to.
func (s *Store) Database() *mongo.Database {
	return s.db
}

// Ping reports whether the server answers.
func (s *Store) Ping(ctx context.Context) bool {
	return s.client.Ping(ctx, nil) == nil
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// byID filters a collection on its string primary key.
func byID(id string) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

var insertionOrder = options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
