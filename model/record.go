package model

import "sort"

// Record is a tab-like entry supplied by the caller.
// Records come either from the live tab list or from browsing history; the
// search engine never mutates them.
type Record struct {
	ID           int64  `json:"id"`                       // Opaque identifier; negative for history-derived entries by convention
	Title        string `json:"title"`                    // Page title, may be empty
	URL          string `json:"url"`                      // Page address, may be empty
	FavIconURL   string `json:"fav_icon_url,omitempty"`   // Carried through for renderers
	WindowID     int64  `json:"window_id"`                // -1 for history-derived entries
	Active       bool   `json:"active"`                   // Focused tab of the current window
	LastAccessed int64  `json:"last_accessed"`            // Milliseconds since the Unix epoch
	IsHistoryTab *bool  `json:"is_history_tab,omitempty"` // Explicit tier; nil lets the classifier decide
}

// HistoryWindowID is the window identifier given to history-derived records.
const HistoryWindowID int64 = -1

// HistoryFavIconPrefix is prepended to a history URL to fetch its icon from the browser cache.
const HistoryFavIconPrefix = "chrome://favicon/"

// NewHistoryRecord builds a record for a browsing history entry.
// The index is the entry's position in the history list and is turned into
// a negative ID so it can never collide with a live tab ID.
func NewHistoryRecord(index int, title, url string, lastVisited int64) Record {
	history := true
	return Record{
		ID:           -int64(index + 1),
		Title:        title,
		URL:          url,
		FavIconURL:   HistoryFavIconPrefix + url,
		WindowID:     HistoryWindowID,
		LastAccessed: lastVisited,
		IsHistoryTab: &history,
	}
}

// MergeHistory appends history entries to the open tabs, skipping history
// URLs that are already open in a tab. Open tabs are marked explicitly as
// non-history. History entries without a visit time get unknownVisit, and
// entries without an icon get the browser favicon URL.
func MergeHistory(tabs, history []Record, unknownVisit int64) []Record {
	merged := make([]Record, 0, len(tabs)+len(history))
	openURLs := make(map[string]struct{}, len(tabs))

	for _, tab := range tabs {
		notHistory := false
		tab.IsHistoryTab = &notHistory
		merged = append(merged, tab)
		openURLs[tab.URL] = struct{}{}
	}

	next := 0
	for _, entry := range history {
		if entry.URL == "" {
			continue
		}
		if _, open := openURLs[entry.URL]; open {
			continue
		}
		lastVisited := entry.LastAccessed
		if lastVisited == 0 {
			lastVisited = unknownVisit
		}
		record := NewHistoryRecord(next, entry.Title, entry.URL, lastVisited)
		if entry.FavIconURL != "" {
			record.FavIconURL = entry.FavIconURL
		}
		merged = append(merged, record)
		next++
	}

	return merged
}

// SortForDisplay orders records the way a tab switcher lists them: records of
// the current window first, then most recently accessed first.
func SortForDisplay(records []Record, currentWindowID int64) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		iCurrent := sorted[i].WindowID == currentWindowID
		jCurrent := sorted[j].WindowID == currentWindowID
		if iCurrent != jCurrent {
			return iCurrent
		}
		return sorted[i].LastAccessed > sorted[j].LastAccessed
	})

	return sorted
}
