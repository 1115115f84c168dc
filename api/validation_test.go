package api

import (
	"strings"
	"testing"

	"github.com/gcbaptista/go-tab-search/model"
)

func TestValidationResult_AddError(t *testing.T) {
	result := &ValidationResult{Valid: true}

	result.AddError("field1", "error message")

	if result.Valid {
		t.Error("Expected Valid to be false after adding error")
	}

	if len(result.Errors) != 1 {
		t.Errorf("Expected 1 error, got %d", len(result.Errors))
	}

	if result.Errors[0].Field != "field1" {
		t.Errorf("Expected field 'field1', got '%s'", result.Errors[0].Field)
	}

	if result.Errors[0].Message != "error message" {
		t.Errorf("Expected message 'error message', got '%s'", result.Errors[0].Message)
	}
}

func TestValidationResult_HasErrors(t *testing.T) {
	result := &ValidationResult{Valid: true}

	if result.HasErrors() {
		t.Error("Expected HasErrors to be false for empty result")
	}

	result.AddError("field", "message")

	if !result.HasErrors() {
		t.Error("Expected HasErrors to be true after adding error")
	}
}

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantValid bool
	}{
		{name: "empty query", query: "", wantValid: true},
		{name: "plain query", query: "github", wantValid: true},
		{name: "at the limit", query: strings.Repeat("é", MaxQueryLength), wantValid: true},
		{name: "over the limit", query: strings.Repeat("a", MaxQueryLength+1), wantValid: false},
		{name: "invalid utf-8", query: "bad\xffquery", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateQuery("query", tt.query)
			if result.HasErrors() == tt.wantValid {
				t.Errorf("Expected valid=%v, got errors %v", tt.wantValid, result.Errors)
			}
		})
	}
}

func TestValidateSearchRequest(t *testing.T) {
	negative := int64(-1)

	tests := []struct {
		name       string
		req        SearchRequest
		wantFields []string
	}{
		{
			name: "valid request",
			req:  SearchRequest{Records: []model.Record{{ID: 1}}, Query: "go"},
		},
		{
			name:       "negative now",
			req:        SearchRequest{Query: "go", Now: &negative},
			wantFields: []string{"now"},
		},
		{
			name:       "too many records",
			req:        SearchRequest{Records: make([]model.Record, MaxRecords+1)},
			wantFields: []string{"records"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateSearchRequest(&tt.req)
			if len(result.Errors) != len(tt.wantFields) {
				t.Fatalf("Expected %d errors, got %v", len(tt.wantFields), result.Errors)
			}
			for i, field := range tt.wantFields {
				if result.Errors[i].Field != field {
					t.Errorf("Expected error on %s, got %s", field, result.Errors[i].Field)
				}
			}
		})
	}
}

func TestValidateMultiSearchRequest(t *testing.T) {
	tests := []struct {
		name       string
		req        MultiSearchRequest
		wantFields []string
	}{
		{
			name: "valid request",
			req:  MultiSearchRequest{Queries: []NamedSearchRequest{{Name: "a", Query: "x"}, {Name: "b", Query: ""}}},
		},
		{
			name:       "no queries",
			req:        MultiSearchRequest{},
			wantFields: []string{"queries"},
		},
		{
			name:       "missing name",
			req:        MultiSearchRequest{Queries: []NamedSearchRequest{{Name: " ", Query: "x"}}},
			wantFields: []string{"queries[0].name"},
		},
		{
			name:       "duplicate name",
			req:        MultiSearchRequest{Queries: []NamedSearchRequest{{Name: "a"}, {Name: "a"}}},
			wantFields: []string{"queries[1].name"},
		},
		{
			name:       "too many queries",
			req:        MultiSearchRequest{Queries: manyQueries(MaxMultiSearchQueries + 1)},
			wantFields: []string{"queries"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateMultiSearchRequest(&tt.req)
			if len(result.Errors) != len(tt.wantFields) {
				t.Fatalf("Expected %d errors, got %v", len(tt.wantFields), result.Errors)
			}
			for i, field := range tt.wantFields {
				if result.Errors[i].Field != field {
					t.Errorf("Expected error on %s, got %s", field, result.Errors[i].Field)
				}
			}
		})
	}
}

func manyQueries(n int) []NamedSearchRequest {
	queries := make([]NamedSearchRequest, n)
	for i := range queries {
		queries[i] = NamedSearchRequest{Name: string(rune('a' + i)), Query: "q"}
	}
	return queries
}
