// Package error defines domain-specific errors for the goal tracker.
package error

import "errors"

// Milestone domain errors.
var (
	// ErrMilestoneNotFound is returned when a milestone step is not found.
	ErrMilestoneNotFound = errors.New("milestone not found")

	// ErrMilestoneStepRequired is returned when a milestone has no step description.
	ErrMilestoneStepRequired = errors.New("milestone step is required")

	// ErrMilestoneUnlinked is returned when a milestone references no goal at all.
	ErrMilestoneUnlinked = errors.New("milestone must reference a goal id, custom id or project")

	// ErrMilestoneGoalNotProject is returned when a milestone references a goal
	// that is not a project goal.
	ErrMilestoneGoalNotProject = errors.New("milestones can only reference project goals")

	// ErrInvalidMilestoneBody is returned when a milestone request cannot be decoded.
	ErrInvalidMilestoneBody = errors.New("invalid milestone request body")

	// ErrInvalidMilestoneStatus is returned when the status is not pending or done.
	ErrInvalidMilestoneStatus = errors.New("invalid milestone status, expected pending or done")
)

// MilestoneErrorCode defines error codes for milestone errors.
// Format: MIL-XXYYYY where XX is category and YYYY is specific error.
type MilestoneErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMilestoneNotFound       MilestoneErrorCode = "MIL-010001"
	ErrCodeMilestoneStepRequired   MilestoneErrorCode = "MIL-010002"
	ErrCodeMilestoneUnlinked       MilestoneErrorCode = "MIL-010003"
	ErrCodeInvalidMilestoneStatus  MilestoneErrorCode = "MIL-010004"
	ErrCodeMilestoneGoalNotProject MilestoneErrorCode = "MIL-010005"
	ErrCodeInvalidMilestoneBody    MilestoneErrorCode = "MIL-010006"

	// Authorization errors (02XXXX)
	ErrCodeMilestoneForbidden MilestoneErrorCode = "MIL-020001"

	// Internal errors (99XXXX)
	ErrCodeMilestoneInternal MilestoneErrorCode = "MIL-990001"
)

// MilestoneError represents a milestone error with code and message.
type MilestoneError struct {
	Code    MilestoneErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MilestoneError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MilestoneError) Unwrap() error {
	return e.Err
}

// NewMilestoneError creates a new MilestoneError with the given code and message.
func NewMilestoneError(code MilestoneErrorCode, message string, err error) *MilestoneError {
	return &MilestoneError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
