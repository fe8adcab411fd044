package user

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
)

// ListAreasInput represents the input for listing known areas.
type ListAreasInput struct {
	Actor *entity.User
}

// ListAreasOutput represents the output of listing known areas.
type ListAreasOutput struct {
	Areas []string
}

// ListAreasUseCase collects the distinct areas named by goals and users.
type ListAreasUseCase struct {
	goalRepo adapter.GoalRepository
	userRepo adapter.UserRepository
}

// NewListAreasUseCase creates a new ListAreasUseCase instance.
func NewListAreasUseCase(goalRepo adapter.GoalRepository, userRepo adapter.UserRepository) *ListAreasUseCase {
	return &ListAreasUseCase{
		goalRepo: goalRepo,
		userRepo: userRepo,
	}
}

// Execute returns the sorted distinct area names.
func (uc *ListAreasUseCase) Execute(ctx context.Context, input ListAreasInput) (*ListAreasOutput, error) {
	if err := requireAdmin(input.Actor); err != nil {
		return nil, err
	}

	goals, err := uc.goalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	seen := make(map[string]struct{})
	add := func(area string) {
		area = strings.TrimSpace(area)
		if area == "" || area == entity.AllAreas {
			return
		}
		seen[area] = struct{}{}
	}
	for _, g := range goals {
		add(g.Area)
	}
	for _, u := range users {
		add(u.Area)
	}

	areas := make([]string, 0, len(seen))
	for area := range seen {
		areas = append(areas, area)
	}
	sort.Strings(areas)

	return &ListAreasOutput{
		Areas: areas,
	}, nil
}
