package analytics

import (
	"testing"
	"time"

	"github.com/gcbaptista/go-tab-search/model"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService() *Service {
	service := NewService()
	service.clock = func() time.Time { return testNow }
	return service
}

func TestAnalyticsService_TrackSearchEvent(t *testing.T) {
	service := newTestService()

	event := model.SearchEvent{
		QueryID:      "q-1",
		Query:        "github",
		WinningTier:  string(model.SearchTierTabsURL),
		RecordCount:  12,
		ResultCount:  2,
		ResponseTime: 50 * time.Microsecond,
	}

	if err := service.TrackSearchEvent(event); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if service.EventCount() != 1 {
		t.Fatalf("Expected 1 event, got %d", service.EventCount())
	}

	stored := service.events[0]
	if stored.QueryID != event.QueryID {
		t.Errorf("Expected QueryID %s, got %s", event.QueryID, stored.QueryID)
	}
	if !stored.Timestamp.Equal(testNow) {
		t.Errorf("Expected timestamp to default to %v, got %v", testNow, stored.Timestamp)
	}
}

func TestAnalyticsService_KeepsExplicitTimestamp(t *testing.T) {
	service := newTestService()
	at := testNow.Add(-time.Hour)

	_ = service.TrackSearchEvent(model.SearchEvent{Query: "x", Timestamp: at})

	if !service.events[0].Timestamp.Equal(at) {
		t.Errorf("Expected timestamp %v, got %v", at, service.events[0].Timestamp)
	}
}

func TestAnalyticsService_EventLimit(t *testing.T) {
	service := newTestService()

	for i := 0; i < maxEventsToKeep+25; i++ {
		_ = service.TrackSearchEvent(model.SearchEvent{Query: "q", RecordCount: i})
	}

	if service.EventCount() != maxEventsToKeep {
		t.Fatalf("Expected %d events, got %d", maxEventsToKeep, service.EventCount())
	}
	// Oldest events are dropped first
	if service.events[0].RecordCount != 25 {
		t.Errorf("Expected oldest retained RecordCount 25, got %d", service.events[0].RecordCount)
	}
}

func TestAnalyticsService_GetDashboardData(t *testing.T) {
	service := newTestService()

	events := []model.SearchEvent{
		{Query: "GitHub", WinningTier: string(model.SearchTierTabsURL), RecordCount: 10, ResultCount: 2, ResponseTime: 100 * time.Microsecond},
		{Query: "github ", WinningTier: string(model.SearchTierTabsURL), RecordCount: 20, ResultCount: 1, ResponseTime: 300 * time.Microsecond},
		{Query: "docs", WinningTier: string(model.SearchTierHistoryTitle), RecordCount: 30, ResultCount: 1, ResponseTime: 200 * time.Microsecond},
		{Query: "zzz", WinningTier: model.WinningTierNone, RecordCount: 40, ResultCount: 0, ResponseTime: 400 * time.Microsecond},
		{Query: "", WinningTier: model.WinningTierEmptyQuery, RecordCount: 0, ResultCount: 5, ResponseTime: 0},
		// Outside the 24h window
		{Query: "stale", WinningTier: string(model.SearchTierTabsTitle), Timestamp: testNow.Add(-25 * time.Hour)},
	}
	for _, event := range events {
		if err := service.TrackSearchEvent(event); err != nil {
			t.Fatalf("Failed to track event: %v", err)
		}
	}

	dashboard := service.GetDashboardData(testNow)

	if dashboard.TotalSearches != 5 {
		t.Errorf("Expected 5 searches, got %d", dashboard.TotalSearches)
	}
	if dashboard.AvgResponseTimeUs != 200 {
		t.Errorf("Expected average response time 200us, got %d", dashboard.AvgResponseTimeUs)
	}
	if dashboard.AvgRecordCount != 20 {
		t.Errorf("Expected average record count 20, got %f", dashboard.AvgRecordCount)
	}
	if dashboard.ZeroResultRate != 0.25 {
		t.Errorf("Expected zero result rate 0.25, got %f", dashboard.ZeroResultRate)
	}
	if !dashboard.GeneratedAt.Equal(testNow) {
		t.Errorf("Expected GeneratedAt %v, got %v", testNow, dashboard.GeneratedAt)
	}

	want := model.TierDistribution{TabsURL: 2, HistoryTitle: 1, EmptyQuery: 1, NoMatch: 1}
	if dashboard.Tiers != want {
		t.Errorf("Expected tiers %+v, got %+v", want, dashboard.Tiers)
	}

	if len(dashboard.PopularSearches) != 3 {
		t.Fatalf("Expected 3 popular searches, got %d", len(dashboard.PopularSearches))
	}
	if dashboard.PopularSearches[0].Query != "github" || dashboard.PopularSearches[0].SearchCount != 2 {
		t.Errorf("Expected top search github x2, got %+v", dashboard.PopularSearches[0])
	}
	if dashboard.PopularSearches[1].Query != "docs" || dashboard.PopularSearches[2].Query != "zzz" {
		t.Errorf("Expected ties ordered alphabetically, got %+v", dashboard.PopularSearches[1:])
	}
}

func TestAnalyticsService_EmptyDashboard(t *testing.T) {
	service := newTestService()

	dashboard := service.GetDashboardData(testNow)

	if dashboard.TotalSearches != 0 {
		t.Errorf("Expected 0 searches, got %d", dashboard.TotalSearches)
	}
	if dashboard.AvgResponseTimeUs != 0 || dashboard.AvgRecordCount != 0 || dashboard.ZeroResultRate != 0 {
		t.Errorf("Expected zeroed averages, got %+v", dashboard)
	}
	if len(dashboard.PopularSearches) != 0 {
		t.Errorf("Expected no popular searches, got %d", len(dashboard.PopularSearches))
	}
}

func TestAnalyticsService_PopularSearchLimit(t *testing.T) {
	service := newTestService()

	for _, q := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		_ = service.TrackSearchEvent(model.SearchEvent{Query: q, ResultCount: 1})
	}
	_ = service.TrackSearchEvent(model.SearchEvent{Query: "g", ResultCount: 1})

	popular := service.GetDashboardData(testNow).PopularSearches
	if len(popular) != popularSearchLimit {
		t.Fatalf("Expected %d popular searches, got %d", popularSearchLimit, len(popular))
	}
	if popular[0].Query != "g" {
		t.Errorf("Expected most searched term first, got %s", popular[0].Query)
	}
}
