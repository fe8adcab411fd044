package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
)

// SaveUserInput represents the input for creating or updating a user.
type SaveUserInput struct {
	Actor        *entity.User
	UserID       *uuid.UUID // nil creates a new user
	Login        string
	Password     string // empty keeps the current password on update
	Role         string
	DisplayLabel string
	Area         string
}

// SaveUserOutput represents the output of saving a user.
type SaveUserOutput struct {
	User    *entity.User
	Created bool
}

// SaveUserUseCase handles user creation and update logic.
type SaveUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewSaveUserUseCase creates a new SaveUserUseCase instance.
func NewSaveUserUseCase(userRepo adapter.UserRepository, passwordService adapter.PasswordService) *SaveUserUseCase {
	return &SaveUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute validates and persists the user.
func (uc *SaveUserUseCase) Execute(ctx context.Context, input SaveUserInput) (*SaveUserOutput, error) {
	if err := requireAdmin(input.Actor); err != nil {
		return nil, err
	}

	login := strings.TrimSpace(input.Login)
	if login == "" {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeMissingUserFields,
			"login is required",
			nil,
		)
	}

	role := entity.Role(strings.ToUpper(strings.TrimSpace(input.Role)))
	if !entity.IsValidRole(role) {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeInvalidRole,
			"role must be ADMIN, CEO or AREA",
			domainerror.ErrInvalidRole,
		)
	}

	area := strings.TrimSpace(input.Area)
	if role == entity.RoleArea && (area == "" || area == entity.AllAreas) {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeAreaRequired,
			"area is required for AREA users",
			domainerror.ErrAreaRequired,
		)
	}
	if role != entity.RoleArea {
		area = entity.AllAreas
	}

	existing, err := uc.userRepo.FindByLogin(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("failed to check login: %w", err)
	}
	if existing != nil && (input.UserID == nil || existing.ID != *input.UserID) {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeLoginExists,
			"login already exists",
			domainerror.ErrLoginAlreadyExists,
		)
	}

	var user *entity.User
	created := input.UserID == nil
	if created {
		if input.Password == "" {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodePasswordRequired,
				"password is required",
				domainerror.ErrPasswordRequired,
			)
		}
		user = entity.NewUser(login, "", role, input.DisplayLabel, area)
	} else {
		user, err = findUser(ctx, uc.userRepo, *input.UserID)
		if err != nil {
			return nil, err
		}
		user.Login = login
		user.Role = role
		user.DisplayLabel = input.DisplayLabel
		user.Area = area
		user.UpdatedAt = time.Now().UTC()
	}

	if input.Password != "" {
		hash, err := uc.passwordService.HashPassword(input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hash
	}

	if err := uc.userRepo.Save(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrLoginAlreadyExists) {
			return nil, domainerror.NewUserError(domainerror.ErrCodeLoginExists, "login already exists", err)
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	return &SaveUserOutput{
		User:    user,
		Created: created,
	}, nil
}
