// Package error defines domain-specific errors for the goal tracker.
package error

import "errors"

// Dashboard and simulation errors.
var (
	// ErrAreaNotSpecified is returned when an area dashboard is requested without an area.
	ErrAreaNotSpecified = errors.New("area is required")

	// ErrInvalidSalary is returned when the salary is missing or negative.
	ErrInvalidSalary = errors.New("salary must be a non-negative amount")

	// ErrInvalidScore is returned when a score is negative.
	ErrInvalidScore = errors.New("scores must not be negative")

	// ErrUnknownLevel is returned when the level key is not part of the bonus policy.
	ErrUnknownLevel = errors.New("unknown level")

	// ErrInvalidHireDate is returned when the hire date cannot be parsed.
	ErrInvalidHireDate = errors.New("invalid hire date, expected YYYY-MM-DD or DD/MM/YYYY")

	// ErrInvalidGrossAmount is returned when the gross amount for a tax lookup is invalid.
	ErrInvalidGrossAmount = errors.New("gross amount must be a non-negative number")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAreaNotSpecified   DashboardErrorCode = "DSH-010001"
	ErrCodeInvalidSalary      DashboardErrorCode = "DSH-010002"
	ErrCodeInvalidScore       DashboardErrorCode = "DSH-010003"
	ErrCodeUnknownLevel       DashboardErrorCode = "DSH-010004"
	ErrCodeInvalidHireDate    DashboardErrorCode = "DSH-010005"
	ErrCodeInvalidGrossAmount DashboardErrorCode = "DSH-010006"

	// Permission errors (02XXXX)
	ErrCodeDashboardForbidden DashboardErrorCode = "DSH-020001"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternal DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
