package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
)

type goalRepository struct {
	coll *mongo.Collection
}

// NewGoalRepository creates a goal repository on the goals collection.
func NewGoalRepository(db *mongo.Database) adapter.GoalRepository {
	return &goalRepository{coll: db.Collection(goalsCollection)}
}

func (r *goalRepository) List(ctx context.Context) ([]*entity.GoalRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, insertionOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}

	var docs []goalDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode goals: %w", err)
	}

	goals := make([]*entity.GoalRecord, len(docs))
	for i, d := range docs {
		goals[i] = d.toEntity()
	}
	return goals, nil
}

func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GoalRecord, error) {
	var doc goalDocument
	err := r.coll.FindOne(ctx, byID(id.String())).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domainerror.ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *goalRepository) Save(ctx context.Context, goal *entity.GoalRecord) error {
	doc := goalFromEntity(goal)
	_, err := r.coll.ReplaceOne(ctx, byID(doc.ID), doc, options.Replace().SetUpsert(true))
	return err
}

func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.coll.DeleteOne(ctx, byID(id.String()))
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

func (r *goalRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
