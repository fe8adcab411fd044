// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/integration/persistence/model"
)

// milestoneRepository implements the adapter.MilestoneRepository interface.
type milestoneRepository struct {
	db *gorm.DB
}

// NewMilestoneRepository creates a new milestone repository instance.
func NewMilestoneRepository(db *gorm.DB) adapter.MilestoneRepository {
	return &milestoneRepository{
		db: db,
	}
}

// List retrieves every milestone step in insertion order.
func (r *milestoneRepository) List(ctx context.Context) ([]*entity.MilestoneStep, error) {
	var stepModels []model.MilestoneModel
	result := r.db.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Find(&stepModels)
	if result.Error != nil {
		return nil, result.Error
	}

	steps := make([]*entity.MilestoneStep, len(stepModels))
	for i := range stepModels {
		steps[i] = stepModels[i].ToEntity()
	}
	return steps, nil
}

// FindByID retrieves a milestone step by its ID.
func (r *milestoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MilestoneStep, error) {
	var stepModel model.MilestoneModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&stepModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMilestoneNotFound
		}
		return nil, result.Error
	}
	return stepModel.ToEntity(), nil
}

// Save creates or replaces a milestone step.
func (r *milestoneRepository) Save(ctx context.Context, step *entity.MilestoneStep) error {
	stepModel := model.MilestoneFromEntity(step)
	return r.db.WithContext(ctx).Save(stepModel).Error
}

// UpdateStatus changes the status of a milestone step.
func (r *milestoneRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.MilestoneStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.MilestoneModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMilestoneNotFound
	}
	return nil
}

// Delete removes a milestone step.
func (r *milestoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.MilestoneModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMilestoneNotFound
	}
	return nil
}
