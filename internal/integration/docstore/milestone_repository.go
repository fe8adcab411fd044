package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
)

type milestoneRepository struct {
	coll *mongo.Collection
}

// NewMilestoneRepository creates a milestone repository on the milestones collection.
func NewMilestoneRepository(db *mongo.Database) adapter.MilestoneRepository {
	return &milestoneRepository{coll: db.Collection(milestonesCollection)}
}

func (r *milestoneRepository) List(ctx context.Context) ([]*entity.MilestoneStep, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, insertionOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to query milestones: %w", err)
	}

	var docs []milestoneDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode milestones: %w", err)
	}

	steps := make([]*entity.MilestoneStep, len(docs))
	for i, d := range docs {
		steps[i] = d.toEntity()
	}
	return steps, nil
}

func (r *milestoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MilestoneStep, error) {
	var doc milestoneDocument
	err := r.coll.FindOne(ctx, byID(id.String())).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domainerror.ErrMilestoneNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *milestoneRepository) Save(ctx context.Context, step *entity.MilestoneStep) error {
	doc := milestoneFromEntity(step)
	_, err := r.coll.ReplaceOne(ctx, byID(doc.ID), doc, options.Replace().SetUpsert(true))
	return err
}

func (r *milestoneRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.MilestoneStatus) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: string(status)},
		{Key: "updated_at", Value: time.Now().UTC()},
	}}}

	result, err := r.coll.UpdateOne(ctx, byID(id.String()), update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domainerror.ErrMilestoneNotFound
	}
	return nil
}

func (r *milestoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.coll.DeleteOne(ctx, byID(id.String()))
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domainerror.ErrMilestoneNotFound
	}
	return nil
}
