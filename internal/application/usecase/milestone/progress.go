// Package milestone contains milestone checklist use cases.
package milestone

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/scoring"
)

// GoalLocks serializes the read-modify-write of milestone steps and the
// attainment of the goals they drive, keyed by step or goal id.
type GoalLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewGoalLocks creates an empty lock map.
func NewGoalLocks() *GoalLocks {
	return &GoalLocks{
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// Lock acquires the locks of every distinct id, in a fixed order, and
// returns the function releasing them.
func (l *GoalLocks) Lock(ids []uuid.UUID) func() {
	seen := make(map[uuid.UUID]bool, len(ids))
	sorted := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			sorted = append(sorted, id)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].String() < sorted[j].String()
	})

	held := make([]*sync.Mutex, 0, len(sorted))
	for _, id := range sorted {
		m := l.get(id)
		m.Lock()
		held = append(held, m)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

func (l *GoalLocks) get(id uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}

// ProgressSyncer keeps the attainment of milestone-driven goals in step with
// their checklist.
type ProgressSyncer struct {
	goalRepo      adapter.GoalRepository
	milestoneRepo adapter.MilestoneRepository
	cache         adapter.ScoreCache
	locks         *GoalLocks
}

// NewProgressSyncer creates a new ProgressSyncer instance.
func NewProgressSyncer(
	goalRepo adapter.GoalRepository,
	milestoneRepo adapter.MilestoneRepository,
	cache adapter.ScoreCache,
	locks *GoalLocks,
) *ProgressSyncer {
	return &ProgressSyncer{
		goalRepo:      goalRepo,
		milestoneRepo: milestoneRepo,
		cache:         cache,
		locks:         locks,
	}
}

// linkedGoals returns the project goal records a step drives: the head of
// every logical goal it belongs to plus the record it references by id.
// Goals of any other type keep their own attainment.
func (s *ProgressSyncer) linkedGoals(ctx context.Context, steps ...entity.MilestoneStep) ([]*entity.GoalRecord, error) {
	records, err := s.goalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	byID := make(map[uuid.UUID]*entity.GoalRecord, len(records))
	plain := make([]entity.GoalRecord, len(records))
	for i, r := range records {
		byID[r.ID] = r
		plain[i] = *r
	}

	seen := make(map[uuid.UUID]bool)
	var linked []*entity.GoalRecord
	add := func(id uuid.UUID) {
		if g, ok := byID[id]; ok && g.IsProject() && !seen[id] {
			seen[id] = true
			linked = append(linked, g)
		}
	}

	heads := scoring.Heads(scoring.Group(plain))
	for _, step := range steps {
		for _, head := range heads {
			if scoring.MilestoneBelongsTo(step, head) {
				add(head.ID)
			}
		}
		if step.GoalID != uuid.Nil {
			add(step.GoalID)
		}
	}

	return linked, nil
}

// Apply runs mutate while holding the locks of the steps and of every goal
// they drive, then recomputes and stores the attainment of those goals. A
// non-nil authorize is consulted with the driven goals before anything
// changes. mutate must read any state it depends on itself.
func (s *ProgressSyncer) Apply(
	ctx context.Context,
	steps []entity.MilestoneStep,
	authorize func(goals []*entity.GoalRecord) error,
	mutate func(ctx context.Context) error,
) ([]*entity.GoalRecord, error) {
	goals, err := s.linkedGoals(ctx, steps...)
	if err != nil {
		return nil, err
	}

	if authorize != nil {
		if err := authorize(goals); err != nil {
			return nil, err
		}
	}

	ids := make([]uuid.UUID, len(goals))
	for i, g := range goals {
		ids[i] = g.ID
	}
	held := append([]uuid.UUID{}, ids...)
	for _, step := range steps {
		if step.ID != uuid.Nil {
			held = append(held, step.ID)
		}
	}
	unlock := s.locks.Lock(held)
	defer unlock()

	if err := mutate(ctx); err != nil {
		return nil, err
	}

	all, err := s.milestoneRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}
	current := make([]entity.MilestoneStep, len(all))
	for i, m := range all {
		current[i] = *m
	}

	updated := make([]*entity.GoalRecord, 0, len(ids))
	for _, id := range ids {
		goal, err := s.goalRepo.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to reload goal %s: %w", id, err)
		}

		next := scoring.ApplyMilestoneProgress(*goal, scoring.LinkedMilestones(current, *goal))
		next.UpdatedAt = time.Now().UTC()
		if err := s.goalRepo.Save(ctx, &next); err != nil {
			return nil, fmt.Errorf("failed to save goal %s: %w", id, err)
		}
		updated = append(updated, &next)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			slog.Warn("Failed to invalidate score cache", "error", err)
		}
	}

	return updated, nil
}
