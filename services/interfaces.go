package services

import (
	"context"
	"time"

	"github.com/gcbaptista/go-tab-search/config"
	"github.com/gcbaptista/go-tab-search/model"
)

// SearchQuery is one search over a caller-supplied record set.
// Now is the reference time for tiering and recency; the zero value means "current time".
type SearchQuery struct {
	Records []model.Record
	Query   string
	Now     time.Time
}

// SearchResponse wraps the ranked results with request metadata.
type SearchResponse struct {
	Hits        []model.SearchResult `json:"hits"`
	Total       int                  `json:"total"`
	WinningTier string               `json:"winning_tier"` // SearchTier of the producing pass, "empty_query" or "none"
	Passes      int                  `json:"passes"`       // Number of tier passes executed
	Destination string               `json:"destination"`  // Where to navigate when nothing matched
	Took        int64                `json:"took"`         // microseconds
	QueryId     string               `json:"query_id"`     // unique UUID for this search query
}

// MultiSearchQuery represents a request to execute multiple named queries over one record set
type MultiSearchQuery struct {
	Records []model.Record
	Queries []NamedSearchQuery
	Now     time.Time
}

// NamedSearchQuery represents a single named query within a multi-search request
type NamedSearchQuery struct {
	Name  string `json:"name"`
	Query string `json:"query"`
}

// MultiSearchResult represents the response from a multi-search operation
type MultiSearchResult struct {
	Results          map[string]SearchResponse `json:"results"`
	TotalQueries     int                       `json:"total_queries"`
	ProcessingTimeMs float64                   `json:"processing_time_ms"`
}

// Searcher defines operations for querying a record set
type Searcher interface {
	Search(records []model.Record, query string, now time.Time) []model.SearchResult
	Execute(query SearchQuery) SearchResponse
	Settings() config.SearchSettings
}

// MultiSearcher defines operations for performing multiple queries in a single request
type MultiSearcher interface {
	MultiSearch(ctx context.Context, query MultiSearchQuery) (*MultiSearchResult, error)
}

// TabSearcher combines single and multi-query searching
type TabSearcher interface {
	Searcher
	MultiSearcher
}

// EventTracker records search events for analytics
type EventTracker interface {
	TrackSearchEvent(event model.SearchEvent) error
}
