// Package api provides validation utilities for API request handling.
package api

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MaxQueryLength bounds a query in runes.
	MaxQueryLength = 512
	// MaxRecords bounds the record set of a single request.
	MaxRecords = 10000
	// MaxMultiSearchQueries bounds the number of named queries in a multi-search.
	MaxMultiSearchQueries = 20
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateQuery validates a query string. Empty queries are allowed.
func ValidateQuery(field, query string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if !utf8.ValidString(query) {
		result.AddError(field, "Query must be valid UTF-8")
		return result
	}

	if utf8.RuneCountInString(query) > MaxQueryLength {
		result.AddError(field, fmt.Sprintf("Query cannot exceed %d characters", MaxQueryLength))
	}

	return result
}

// ValidateTimestamp validates an optional millisecond timestamp
func ValidateTimestamp(field string, ms *int64) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if ms != nil && *ms < 0 {
		result.AddError(field, "Timestamp must be milliseconds since the Unix epoch")
	}

	return result
}

// ValidateSearchRequest validates a single search request
func ValidateSearchRequest(req *SearchRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if len(req.Records) > MaxRecords {
		result.AddError("records", fmt.Sprintf("Cannot search more than %d records", MaxRecords))
	}
	result.merge(ValidateQuery("query", req.Query))
	result.merge(ValidateTimestamp("now", req.Now))

	return result
}

// ValidateMultiSearchRequest validates a multi-search request
func ValidateMultiSearchRequest(req *MultiSearchRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if len(req.Records) > MaxRecords {
		result.AddError("records", fmt.Sprintf("Cannot search more than %d records", MaxRecords))
	}

	switch {
	case len(req.Queries) == 0:
		result.AddError("queries", "At least one query is required")
	case len(req.Queries) > MaxMultiSearchQueries:
		result.AddError("queries", fmt.Sprintf("Cannot run more than %d queries", MaxMultiSearchQueries))
	}

	seen := make(map[string]bool, len(req.Queries))
	for i, q := range req.Queries {
		field := fmt.Sprintf("queries[%d]", i)
		if strings.TrimSpace(q.Name) == "" {
			result.AddError(field+".name", "Query name is required")
		} else if seen[q.Name] {
			result.AddError(field+".name", "Query names must be unique: '"+q.Name+"' appears multiple times")
		}
		seen[q.Name] = true
		result.merge(ValidateQuery(field+".query", q.Query))
	}

	result.merge(ValidateTimestamp("now", req.Now))

	return result
}

func (vr *ValidationResult) merge(other *ValidationResult) {
	for _, err := range other.Errors {
		vr.AddError(err.Field, err.Message)
	}
}
