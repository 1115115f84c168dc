package search

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	internalErrors "github.com/gcbaptista/go-tab-search/internal/errors"
	"github.com/gcbaptista/go-tab-search/services"
)

// MultiSearch executes multiple named queries over the same record set in parallel.
// All queries share one reference time so their tiering agrees.
func (s *Service) MultiSearch(ctx context.Context, multiQuery services.MultiSearchQuery) (*services.MultiSearchResult, error) {
	startTime := time.Now()

	if len(multiQuery.Queries) == 0 {
		return nil, internalErrors.ErrEmptyMultiSearch
	}

	seen := make(map[string]struct{}, len(multiQuery.Queries))
	for _, namedQuery := range multiQuery.Queries {
		if namedQuery.Name == "" {
			return nil, internalErrors.NewValidationError("queries", "each query must have a non-empty name")
		}
		if _, dup := seen[namedQuery.Name]; dup {
			return nil, internalErrors.NewValidationError("queries", fmt.Sprintf("duplicate query name '%s'", namedQuery.Name))
		}
		seen[namedQuery.Name] = struct{}{}
	}

	now := multiQuery.Now
	if now.IsZero() {
		now = startTime
	}

	responses := make([]services.SearchResponse, len(multiQuery.Queries))
	g, gctx := errgroup.WithContext(ctx)

	for i, namedQuery := range multiQuery.Queries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return internalErrors.NewQueryError(namedQuery.Name, err)
			}
			responses[i] = s.Execute(services.SearchQuery{
				Records: multiQuery.Records,
				Query:   namedQuery.Query,
				Now:     now,
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("multi-search cancelled: %w", err)
	}

	results := make(map[string]services.SearchResponse, len(responses))
	for i, namedQuery := range multiQuery.Queries {
		results[namedQuery.Name] = responses[i]
	}

	processingTime := time.Since(startTime)

	return &services.MultiSearchResult{
		Results:          results,
		TotalQueries:     len(multiQuery.Queries),
		ProcessingTimeMs: float64(processingTime.Nanoseconds()) / 1e6,
	}, nil
}
