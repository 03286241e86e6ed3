// Package error defines domain-specific errors for the Trip Planner application.
package error

import (
	"errors"
	"strings"
)

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense does not exist or is
	// outside the caller's group scope.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidSplitType is returned when the split type is not one of
	// equal, manual, or itemized.
	ErrInvalidSplitType = errors.New("invalid split type")

	// ErrInvalidExpenseAmount is returned when the expense amount is not positive.
	ErrInvalidExpenseAmount = errors.New("expense amount must be positive")

	// ErrSplitInvalid is returned when a split specification fails validation.
	ErrSplitInvalid = errors.New("split specification is invalid")

	// ErrParticipantNotInGroup is returned when a split references a user
	// who is not a member of the expense's group.
	ErrParticipantNotInGroup = errors.New("participant not in group")

	// ErrExpenseDescriptionRequired is returned when the description is empty.
	ErrExpenseDescriptionRequired = errors.New("expense description is required")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeExpenseNotFound ExpenseErrorCode = "EXP-010001"

	// Validation errors (02XXXX)
	ErrCodeInvalidSplitType           ExpenseErrorCode = "EXP-020001"
	ErrCodeInvalidExpenseAmount       ExpenseErrorCode = "EXP-020002"
	ErrCodeSplitInvalid               ExpenseErrorCode = "EXP-020003"
	ErrCodeParticipantNotInGroup      ExpenseErrorCode = "EXP-020004"
	ErrCodeExpenseDescriptionRequired ExpenseErrorCode = "EXP-020005"
	ErrCodeExpenseDayNotInTrip        ExpenseErrorCode = "EXP-020006"
	ErrCodeMissingExpenseFields       ExpenseErrorCode = "EXP-020007"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// SplitValidationError carries every violation found in a split
// specification. Validation never stops at the first problem, so callers
// can fix the whole split in one round trip.
type SplitValidationError struct {
	Violations []string
}

// Error implements the error interface.
func (e *SplitValidationError) Error() string {
	return "split validation failed: " + strings.Join(e.Violations, "; ")
}

// Unwrap returns the sentinel split error so callers can match with errors.Is.
func (e *SplitValidationError) Unwrap() error {
	return ErrSplitInvalid
}

// NewSplitValidationError creates a SplitValidationError from violations.
func NewSplitValidationError(violations []string) *SplitValidationError {
	return &SplitValidationError{Violations: violations}
}
