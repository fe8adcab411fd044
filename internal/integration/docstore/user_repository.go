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

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a user repository on the users collection.
func NewUserRepository(db *mongo.Database) adapter.UserRepository {
	return &userRepository{coll: db.Collection(usersCollection)}
}

func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "login", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	users := make([]*entity.User, len(docs))
	for i, d := range docs {
		users[i] = d.toEntity()
	}
	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := r.findOne(ctx, byID(id.String()))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *userRepository) FindByLogin(ctx context.Context, login string) (*entity.User, error) {
	return r.findOne(ctx, bson.D{{Key: "login", Value: login}})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.D) (*entity.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *userRepository) Save(ctx context.Context, user *entity.User) error {
	doc := userFromEntity(user)
	_, err := r.coll.ReplaceOne(ctx, byID(doc.ID), doc, options.Replace().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		return domainerror.ErrLoginAlreadyExists
	}
	return err
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.coll.DeleteOne(ctx, byID(id.String()))
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domainerror.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}
