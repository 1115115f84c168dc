package errors

import (
	"context"
	"errors"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("query", "must not exceed 512 characters")

	expectedMsg := "validation error for field 'query': must not exceed 512 characters"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("Expected error to match ErrInvalidInput sentinel")
	}

	if errors.Is(err, ErrInvalidSettings) {
		t.Error("Error should not match ErrInvalidSettings")
	}

	// Test without field
	err2 := NewValidationError("", "something went wrong")
	expectedMsg2 := "validation error: something went wrong"
	if err2.Error() != expectedMsg2 {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg2, err2.Error())
	}
}

func TestSettingsError(t *testing.T) {
	err := NewSettingsError([]string{"max_results cannot be negative", "history_threshold cannot be negative"})

	expectedMsg := "invalid search settings: max_results cannot be negative; history_threshold cannot be negative"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrInvalidSettings) {
		t.Error("Expected error to match ErrInvalidSettings sentinel")
	}
}

func TestQueryError(t *testing.T) {
	err := NewQueryError("by-title", context.Canceled)

	expectedMsg := "error executing query 'by-title': context canceled"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrQueryFailed) {
		t.Error("Expected error to match ErrQueryFailed sentinel")
	}

	if !errors.Is(err, context.Canceled) {
		t.Error("Expected wrapped cause to be reachable")
	}
}

func TestErrorWrapping(t *testing.T) {
	originalErr := NewValidationError("records", "duplicate id 7")
	wrappedErr := errors.Join(errors.New("decoding request"), originalErr)

	if !errors.Is(wrappedErr, ErrInvalidInput) {
		t.Error("Expected wrapped error to match ErrInvalidInput sentinel")
	}

	var validationErr *ValidationError
	if !errors.As(wrappedErr, &validationErr) {
		t.Error("Expected to extract ValidationError from wrapped error")
	}
	if validationErr.Field != "records" {
		t.Errorf("Expected field 'records', got '%s'", validationErr.Field)
	}
}
