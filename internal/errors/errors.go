package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common error conditions
var (
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSettings is returned when search settings fail validation
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrEmptyMultiSearch is returned when a multi-search carries no queries
	ErrEmptyMultiSearch = errors.New("at least one query is required")

	// ErrQueryFailed is returned when one query of a multi-search fails
	ErrQueryFailed = errors.New("query failed")
)

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// SettingsError lists every problem found in a settings value
type SettingsError struct {
	Problems []string
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("invalid search settings: %s", strings.Join(e.Problems, "; "))
}

func (e *SettingsError) Is(target error) bool {
	return target == ErrInvalidSettings
}

// NewSettingsError creates a new SettingsError
func NewSettingsError(problems []string) *SettingsError {
	return &SettingsError{Problems: problems}
}

// QueryError wraps the failure of a named query inside a multi-search
type QueryError struct {
	Name string
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("error executing query '%s': %v", e.Name, e.Err)
}

func (e *QueryError) Is(target error) bool {
	return target == ErrQueryFailed
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewQueryError creates a new QueryError
func NewQueryError(name string, err error) *QueryError {
	return &QueryError{Name: name, Err: err}
}
