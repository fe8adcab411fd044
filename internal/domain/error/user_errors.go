// Package error defines domain-specific errors for the goal tracker.
package error

import "errors"

// User management errors.
var (
	// ErrUserNotFound is returned when a user is not found in the store.
	ErrUserNotFound = errors.New("user not found")

	// ErrLoginAlreadyExists is returned when another user already has the login.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrInvalidRole is returned when the role is not ADMIN, CEO or AREA.
	ErrInvalidRole = errors.New("invalid role")

	// ErrAreaRequired is returned when an AREA user has no area.
	ErrAreaRequired = errors.New("area is required for AREA users")

	// ErrPasswordRequired is returned when a new user has no password.
	ErrPasswordRequired = errors.New("password is required")
)

// UserErrorCode defines error codes for user errors.
// Format: USR-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUserNotFound      UserErrorCode = "USR-010001"
	ErrCodeLoginExists       UserErrorCode = "USR-010002"
	ErrCodeInvalidRole       UserErrorCode = "USR-010003"
	ErrCodeAreaRequired      UserErrorCode = "USR-010004"
	ErrCodePasswordRequired  UserErrorCode = "USR-010005"
	ErrCodeMissingUserFields UserErrorCode = "USR-010006"

	// Authorization errors (02XXXX)
	ErrCodeUserAdminOnly UserErrorCode = "USR-020001"

	// Internal errors (99XXXX)
	ErrCodeUserInternal UserErrorCode = "USR-990001"
)

// UserError represents a user management error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
