// Package error defines domain-specific errors for the goal tracker.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal record is not found in the store.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrGoalMissingArea is returned when a goal record has no area.
	ErrGoalMissingArea = errors.New("goal area is required")

	// ErrGoalMissingIdentity is returned when a goal record has neither a KPI name nor a key result.
	ErrGoalMissingIdentity = errors.New("goal requires a kpi name or a key result")

	// ErrInvalidGoalType is returned when the goal type is not recognized.
	ErrInvalidGoalType = errors.New("invalid goal type")

	// ErrInvalidReferenceDate is returned when the reference date cannot be parsed.
	ErrInvalidReferenceDate = errors.New("invalid reference date, expected YYYY-MM-DD or DD/MM/YYYY")

	// ErrUnauthorizedGoalAccess is returned when a user tries to read or change a goal outside their area.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound           GoalErrorCode = "GOL-010001"
	ErrCodeGoalMissingArea        GoalErrorCode = "GOL-010002"
	ErrCodeGoalMissingIdentity    GoalErrorCode = "GOL-010003"
	ErrCodeInvalidGoalType        GoalErrorCode = "GOL-010004"
	ErrCodeInvalidReferenceDate   GoalErrorCode = "GOL-010005"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-010006"
	ErrCodeMissingGoalFields      GoalErrorCode = "GOL-010008"
	ErrCodeGoalAdminOnly          GoalErrorCode = "GOL-020001"
	ErrCodeGoalInternal           GoalErrorCode = "GOL-990001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
