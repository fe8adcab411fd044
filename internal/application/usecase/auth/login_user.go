// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
)

// BootstrapConfig enables an emergency administrator login while the user
// store is still empty.
type BootstrapConfig struct {
	Enabled  bool
	Login    string
	Password string
}

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Login    string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *entity.User
	Temporary   bool
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	bootstrap       BootstrapConfig
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	bootstrap BootstrapConfig,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		bootstrap:       bootstrap,
	}
}

// Execute performs the user login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	login := strings.TrimSpace(input.Login)
	if login == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"login and password are required",
			domainerror.ErrInvalidCredentials,
		)
	}

	user, err := uc.userRepo.FindByLogin(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	temporary := false
	if user == nil {
		user, err = uc.bootstrapUser(ctx, login, input.Password)
		if err != nil {
			return nil, err
		}
		temporary = true
	} else if err := uc.passwordService.VerifyPassword(user.Password, input.Password); err != nil {
		return nil, invalidCredentials()
	}

	token, expiresAt, err := uc.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginUserOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
		Temporary:   temporary,
	}, nil
}

// bootstrapUser returns the temporary administrator when bootstrap is
// enabled, no user exists yet and the bootstrap credentials match.
func (uc *LoginUserUseCase) bootstrapUser(ctx context.Context, login, password string) (*entity.User, error) {
	if !uc.bootstrap.Enabled || login != uc.bootstrap.Login || password != uc.bootstrap.Password {
		return nil, invalidCredentials()
	}

	count, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil, invalidCredentials()
	}

	slog.Warn("Bootstrap administrator login used, user store is empty", "login", login)

	user := entity.NewUser(login, "", entity.RoleAdmin, "Admin Temporário", entity.AllAreas)
	return user, nil
}

// invalidCredentials is the generic error that does not reveal whether the login exists.
func invalidCredentials() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid login or password",
		domainerror.ErrInvalidCredentials,
	)
}
