// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// Role represents what a user is allowed to see and manage.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleCEO   Role = "CEO"
	RoleArea  Role = "AREA"
)

// AllAreas is the area label given to users that are not bound to a single area.
const AllAreas = "Todas"

// User represents a dashboard user.
type User struct {
	ID           uuid.UUID
	Login        string
	Password     string // bcrypt hash, or plaintext for legacy records
	Role         Role
	DisplayLabel string
	Area         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User entity.
func NewUser(login, password string, role Role, displayLabel, area string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Login:        login,
		Password:     password,
		Role:         role,
		DisplayLabel: displayLabel,
		Area:         area,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// SeesAllAreas reports whether the user has organization-wide visibility.
func (u *User) SeesAllAreas() bool {
	return u.Role == RoleAdmin || u.Role == RoleCEO
}

// IsAdmin reports whether the user may manage goals, users and budgets.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanSee reports whether the user may see goals of the given area or
// directorate. AREA users only see their own area.
func (u *User) CanSee(area, directorate string) bool {
	if u.SeesAllAreas() {
		return true
	}
	if valueobject.NormalizeText(u.Area) == "" {
		return false
	}
	return valueobject.SameText(u.Area, area) || valueobject.SameText(u.Area, directorate)
}

// IsValidRole reports whether role is one of the known roles.
func IsValidRole(role Role) bool {
	switch Role(strings.ToUpper(string(role))) {
	case RoleAdmin, RoleCEO, RoleArea:
		return true
	}
	return false
}
