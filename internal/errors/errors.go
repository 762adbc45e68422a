// Package errors provides custom error types for dashboard-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrEmptyTopic      = errors.New("please enter a course topic or description")
	ErrEmptyMessage    = errors.New("message is empty")
	ErrEmptyCredential = errors.New("email and password are required")
	ErrActionPending   = errors.New("action already in progress")
	ErrActionIdle      = errors.New("action has not been triggered")
	ErrActionCanceled  = errors.New("action canceled")
	ErrRecordNotFound  = errors.New("record not found")
	ErrEmptyCollection = errors.New("collection is empty")
	ErrUnknownSetting  = errors.New("unknown setting")
	ErrConfigInvalid   = errors.New("invalid configuration")
	ErrSessionStore    = errors.New("session store error")
	ErrInputValidation = errors.New("input validation failed")
)

// ValidationError represents a validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInputValidation
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ViewError represents a failure raised by a view operation.
type ViewError struct {
	View      string
	Operation string
	Err       error
}

func (e *ViewError) Error() string {
	return fmt.Sprintf("view error [%s] %s: %v", e.View, e.Operation, e.Err)
}

func (e *ViewError) Unwrap() error {
	return e.Err
}

// NewViewError creates a new ViewError.
func NewViewError(view, operation string, err error) *ViewError {
	return &ViewError{
		View:      view,
		Operation: operation,
		Err:       err,
	}
}

// ActionError represents an error from a simulated action.
type ActionError struct {
	Action string
	Err    error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("action error [%s]: %v", e.Action, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// NewActionError creates a new ActionError.
func NewActionError(action string, err error) *ActionError {
	return &ActionError{
		Action: action,
		Err:    err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
