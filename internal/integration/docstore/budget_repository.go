package docstore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
)

type budgetRepository struct {
	coll *mongo.Collection
}

// NewBudgetRepository creates a budget repository keyed by area name.
func NewBudgetRepository(db *mongo.Database) adapter.BudgetRepository {
	return &budgetRepository{coll: db.Collection(budgetsCollection)}
}

func (r *budgetRepository) List(ctx context.Context) (entity.Budgets, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}

	var docs []budgetDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode budgets: %w", err)
	}

	budgets := make(entity.Budgets, len(docs))
	for _, d := range docs {
		budgets[d.Area] = d.amount()
	}
	return budgets, nil
}

func (r *budgetRepository) Save(ctx context.Context, budget *entity.AreaBudget) error {
	doc := budgetFromEntity(budget)
	_, err := r.coll.ReplaceOne(ctx, byID(doc.Area), doc, options.Replace().SetUpsert(true))
	return err
}
