package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
)

func TestPasswordService_VerifyPassword(t *testing.T) {
	svc := NewPasswordServiceWithCost(4)
	hash, err := svc.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}

	tests := []struct {
		name     string
		stored   string
		password string
		wantErr  bool
	}{
		{name: "bcrypt match", stored: hash, password: "s3cret"},
		{name: "bcrypt mismatch", stored: hash, password: "other", wantErr: true},
		{name: "legacy plain text match", stored: "1234", password: "1234"},
		{name: "legacy plain text mismatch", stored: "1234", password: "12345", wantErr: true},
		{name: "empty stored password", stored: "", password: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.VerifyPassword(tt.stored, tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	user := entity.NewUser("financeiro", "", entity.RoleArea, "Financeiro", "Financeiro")

	token, expiresAt, err := svc.GenerateAccessToken(context.Background(), user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Errorf("expected expiry in the future, got %v", expiresAt)
	}

	claims, err := svc.ValidateAccessToken(context.Background(), token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.UserID != user.ID || claims.Login != "financeiro" || claims.Role != entity.RoleArea || claims.Area != "Financeiro" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestTokenService_Rejects(t *testing.T) {
	user := entity.NewUser("admin", "", entity.RoleAdmin, "Admin", entity.AllAreas)
	token, _, err := NewTokenService("secret-a", time.Hour).GenerateAccessToken(context.Background(), user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := NewTokenService("secret-b", time.Hour).ValidateAccessToken(context.Background(), token); !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}

	if _, err := NewTokenService("secret-a", time.Hour).ValidateAccessToken(context.Background(), "not-a-token"); !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for garbage, got %v", err)
	}

	expiredSvc := &tokenService{secret: []byte("secret-a"), duration: -time.Hour}
	expired, _, err := expiredSvc.GenerateAccessToken(context.Background(), user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if _, err := expiredSvc.ValidateAccessToken(context.Background(), expired); !errors.Is(err, domainerror.ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}
