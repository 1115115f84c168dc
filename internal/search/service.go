package search

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gcbaptista/go-tab-search/config"
	"github.com/gcbaptista/go-tab-search/internal/destination"
	internalErrors "github.com/gcbaptista/go-tab-search/internal/errors"
	"github.com/gcbaptista/go-tab-search/internal/logger"
	"github.com/gcbaptista/go-tab-search/internal/metrics"
	"github.com/gcbaptista/go-tab-search/internal/scoring"
	"github.com/gcbaptista/go-tab-search/internal/tiering"
	"github.com/gcbaptista/go-tab-search/model"
	"github.com/gcbaptista/go-tab-search/services"
)

// Service implements tiered tab search.
// It fulfills the services.TabSearcher interface.
type Service struct {
	settings    config.SearchSettings
	classifier  *tiering.Classifier
	destination *destination.Builder
	tracker     services.EventTracker
}

// NewService creates a new search Service. A nil settings pointer uses the defaults;
// tracker may be nil.
func NewService(settings *config.SearchSettings, tracker services.EventTracker) (*Service, error) {
	effective := config.DefaultSearchSettings()
	if settings != nil {
		if problems := settings.Validate(); len(problems) > 0 {
			return nil, internalErrors.NewSettingsError(problems)
		}
		effective = *settings
		effective.ApplyDefaults()
	}

	return &Service{
		settings:    effective,
		classifier:  tiering.NewClassifier(effective.HistoryThreshold),
		destination: destination.NewBuilder(effective.SearchURLTemplate),
		tracker:     tracker,
	}, nil
}

// Settings returns the effective settings.
func (s *Service) Settings() config.SearchSettings {
	return s.settings
}

// outcome is the result of one orchestrated search.
type outcome struct {
	results     []model.SearchResult
	winningTier string
	passes      int
}

// Search ranks records against query. now is the reference time for tiering
// and the recency bonus.
func (s *Service) Search(records []model.Record, query string, now time.Time) []model.SearchResult {
	return s.search(records, query, now).results
}

func (s *Service) search(records []model.Record, query string, now time.Time) outcome {
	trimmed := strings.TrimSpace(query)

	active, history := s.classifier.Partition(records, now)

	if trimmed == "" {
		return outcome{results: listActive(active), winningTier: model.WinningTierEmptyQuery}
	}

	passes := 0
	for _, p := range passOrder {
		candidates := active
		if p.tier == model.TierHistory {
			candidates = history
		}

		passes++
		results := s.runPass(candidates, trimmed, p, now)
		if len(results) > 0 {
			return outcome{results: results, winningTier: string(p.tag), passes: passes}
		}
	}

	return outcome{results: []model.SearchResult{}, winningTier: model.WinningTierNone, passes: passes}
}

// runPass scores every candidate on the pass field and returns the sorted matches.
func (s *Service) runPass(candidates []model.Record, query string, p pass, now time.Time) []model.SearchResult {
	var results []model.SearchResult

	for _, record := range candidates {
		text := record.FieldValue(p.field)
		match, ok := scoring.Score(text, query)
		if !ok {
			continue
		}

		score := match.Score
		if s.settings.RecencyBonus {
			score += RecencyBonus(record.LastAccessed, now)
		}

		results = append(results, model.SearchResult{
			Item:         record,
			Score:        score,
			MatchedField: p.field,
			SearchTier:   p.tag,
			Highlight: model.Highlight{
				Text:      text,
				Positions: match.Positions,
			},
		})
	}

	sortResults(results, s.settings.TieBreak)
	return results
}

// listActive returns the active records unranked, as shown for an empty query.
func listActive(active []model.Record) []model.SearchResult {
	results := make([]model.SearchResult, 0, len(active))
	for _, record := range active {
		results = append(results, model.SearchResult{
			Item:         record,
			Score:        0,
			MatchedField: model.FieldTitle,
			SearchTier:   model.SearchTierTabsTitle,
			Highlight: model.Highlight{
				Text:      record.Title,
				Positions: []int{},
			},
		})
	}
	return results
}

// Execute runs a search and wraps the results with timing, a query ID and a
// fallback destination. It also records metrics and analytics.
func (s *Service) Execute(query services.SearchQuery) services.SearchResponse {
	startTime := time.Now()

	now := query.Now
	if now.IsZero() {
		now = startTime
	}

	out := s.search(query.Records, query.Query, now)

	hits := out.results
	total := len(hits)
	if s.settings.MaxResults > 0 && len(hits) > s.settings.MaxResults {
		hits = hits[:s.settings.MaxResults]
	}

	response := services.SearchResponse{
		Hits:        hits,
		Total:       total,
		WinningTier: out.winningTier,
		Passes:      out.passes,
		QueryId:     uuid.New().String(),
	}
	if total == 0 && strings.TrimSpace(query.Query) != "" {
		response.Destination = s.destination.Build(query.Query)
	}

	took := time.Since(startTime)
	response.Took = took.Microseconds()

	metrics.RecordSearch(out.winningTier, out.passes, len(query.Records), took.Seconds())

	if s.tracker != nil {
		event := model.SearchEvent{
			QueryID:      response.QueryId,
			Query:        query.Query,
			WinningTier:  out.winningTier,
			RecordCount:  len(query.Records),
			ResultCount:  total,
			ResponseTime: took,
		}
		if err := s.tracker.TrackSearchEvent(event); err != nil {
			logger.Default().Warn("failed to track search event", "query_id", response.QueryId, "error", err)
		}
	}

	logger.Default().Debug("search executed",
		"query_id", response.QueryId,
		"winning_tier", out.winningTier,
		"passes", out.passes,
		"results", total,
		"took_us", response.Took,
	)

	return response
}

var defaultService, _ = NewService(nil, nil)

// Search ranks records against query with the default settings.
func Search(records []model.Record, query string, now time.Time) []model.SearchResult {
	return defaultService.Search(records, query, now)
}
