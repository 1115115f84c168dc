package model

import "time"

// SearchEvent represents a single search event for analytics tracking
type SearchEvent struct {
	QueryID      string        `json:"query_id"`
	Query        string        `json:"query"`
	WinningTier  string        `json:"winning_tier"` // SearchTier of the pass that produced results, "empty_query" or "none"
	RecordCount  int           `json:"record_count"`
	ResultCount  int           `json:"result_count"`
	ResponseTime time.Duration `json:"response_time"`
	Timestamp    time.Time     `json:"timestamp"`
}

// PopularSearch represents aggregated data for popular search terms
type PopularSearch struct {
	Query       string `json:"query"`
	SearchCount int    `json:"search_count"`
}

// TierDistribution counts how often each pass won over a period.
type TierDistribution struct {
	TabsURL      int `json:"tabs_url"`
	TabsTitle    int `json:"tabs_title"`
	HistoryURL   int `json:"history_url"`
	HistoryTitle int `json:"history_title"`
	EmptyQuery   int `json:"empty_query"`
	NoMatch      int `json:"no_match"`
}

// AnalyticsDashboard represents the complete analytics dashboard data
type AnalyticsDashboard struct {
	TotalSearches     int              `json:"total_searches"`
	AvgResponseTimeUs int64            `json:"avg_response_time_us"`
	AvgRecordCount    float64          `json:"avg_record_count"`
	ZeroResultRate    float64          `json:"zero_result_rate"`
	PopularSearches   []PopularSearch  `json:"popular_searches"`
	Tiers             TierDistribution `json:"tiers"`
	GeneratedAt       time.Time        `json:"generated_at"`
}

// Winning tier labels for searches that did not run a pass or found nothing.
const (
	WinningTierEmptyQuery = "empty_query"
	WinningTierNone       = "none"
)
