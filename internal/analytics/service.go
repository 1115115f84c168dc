package analytics

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gcbaptista/go-tab-search/model"
	"github.com/gcbaptista/go-tab-search/services"
)

const (
	maxEventsToKeep    = 10000 // Keep last 10k events for performance
	popularSearchLimit = 5
	dashboardWindow    = 24 * time.Hour
)

// Service implements analytics tracking and reporting.
// Events are kept in memory only.
type Service struct {
	mutex  sync.RWMutex
	events []model.SearchEvent
	clock  func() time.Time
}

var _ services.EventTracker = (*Service)(nil)

// NewService creates a new analytics service
func NewService() *Service {
	return &Service{
		events: make([]model.SearchEvent, 0),
		clock:  time.Now,
	}
}

// TrackSearchEvent records a new search event
func (s *Service) TrackSearchEvent(event model.SearchEvent) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = s.clock()
	}
	s.events = append(s.events, event)

	// Keep only the latest events to prevent unbounded growth
	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}

	return nil
}

// EventCount returns the number of retained events.
func (s *Service) EventCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.events)
}

// GetDashboardData returns analytics for the 24 hours before now
func (s *Service) GetDashboardData(now time.Time) model.AnalyticsDashboard {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	recent := s.filterEventsByTime(s.events, now.Add(-dashboardWindow), now)

	return model.AnalyticsDashboard{
		TotalSearches:     len(recent),
		AvgResponseTimeUs: s.calculateAvgResponseTime(recent),
		AvgRecordCount:    s.calculateAvgRecordCount(recent),
		ZeroResultRate:    s.calculateZeroResultRate(recent),
		PopularSearches:   s.getPopularSearches(recent),
		Tiers:             s.getTierDistribution(recent),
		GeneratedAt:       now,
	}
}

// filterEventsByTime returns events within (after, until]
func (s *Service) filterEventsByTime(events []model.SearchEvent, after, until time.Time) []model.SearchEvent {
	var filtered []model.SearchEvent
	for _, event := range events {
		if event.Timestamp.After(after) && !event.Timestamp.After(until) {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// calculateAvgResponseTime calculates average response time for events in microseconds
func (s *Service) calculateAvgResponseTime(events []model.SearchEvent) int64 {
	if len(events) == 0 {
		return 0
	}

	var total time.Duration
	for _, event := range events {
		total += event.ResponseTime
	}
	return (total / time.Duration(len(events))).Microseconds()
}

func (s *Service) calculateAvgRecordCount(events []model.SearchEvent) float64 {
	if len(events) == 0 {
		return 0
	}

	total := 0
	for _, event := range events {
		total += event.RecordCount
	}
	return float64(total) / float64(len(events))
}

// calculateZeroResultRate returns the share of non-empty queries that found nothing
func (s *Service) calculateZeroResultRate(events []model.SearchEvent) float64 {
	queried, empty := 0, 0
	for _, event := range events {
		if strings.TrimSpace(event.Query) == "" {
			continue
		}
		queried++
		if event.ResultCount == 0 {
			empty++
		}
	}
	if queried == 0 {
		return 0
	}
	return float64(empty) / float64(queried)
}

// getPopularSearches returns the most popular search terms
func (s *Service) getPopularSearches(events []model.SearchEvent) []model.PopularSearch {
	queryCounts := make(map[string]int)

	for _, event := range events {
		query := strings.ToLower(strings.TrimSpace(event.Query))
		if query != "" {
			queryCounts[query]++
		}
	}

	popular := make([]model.PopularSearch, 0, len(queryCounts))
	for query, count := range queryCounts {
		popular = append(popular, model.PopularSearch{Query: query, SearchCount: count})
	}

	// Sort by count descending, then alphabetically for a stable dashboard
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].SearchCount != popular[j].SearchCount {
			return popular[i].SearchCount > popular[j].SearchCount
		}
		return popular[i].Query < popular[j].Query
	})

	if len(popular) > popularSearchLimit {
		popular = popular[:popularSearchLimit]
	}
	return popular
}

// getTierDistribution counts which pass produced the results of each search
func (s *Service) getTierDistribution(events []model.SearchEvent) model.TierDistribution {
	var tiers model.TierDistribution

	for _, event := range events {
		switch event.WinningTier {
		case string(model.SearchTierTabsURL):
			tiers.TabsURL++
		case string(model.SearchTierTabsTitle):
			tiers.TabsTitle++
		case string(model.SearchTierHistoryURL):
			tiers.HistoryURL++
		case string(model.SearchTierHistoryTitle):
			tiers.HistoryTitle++
		case model.WinningTierEmptyQuery:
			tiers.EmptyQuery++
		default:
			tiers.NoMatch++
		}
	}

	return tiers
}
