// Package config provides configuration structures for the tab search engine.
// It defines search settings (tiering, ranking, destinations) and the server configuration.
package config

import (
	"strings"
	"time"
)

// Tie-break strategies applied when two results of the same pass score identically.
const (
	TieBreakInputOrder = "input_order" // Keep the caller's order (stable sort)
	TieBreakRecency    = "recency"     // Most recently accessed first, then caller's order
)

// DefaultSearchURLTemplate is used to build a web search destination for queries that are not URLs.
const DefaultSearchURLTemplate = "https://www.google.com/search?q=%s"

// DefaultHistoryThreshold is the record age after which a record belongs to the history tier.
const DefaultHistoryThreshold = 24 * time.Hour

// SearchSettings contains all configuration options for tab searching.
//
// IMPORTANT: pass order is fixed and not configurable. The search engine will:
// 1. Search active records by URL
// 2. Search active records by title
// 3. Search history records by URL
// 4. Search history records by title
//
// and stop at the first pass that yields a match. Settings only influence tiering,
// ordering within a pass and the fallback destination.
type SearchSettings struct {
	HistoryThreshold  time.Duration `json:"history_threshold" yaml:"history_threshold"`     // Age after which a record is history (e.g., 24h)
	RecencyBonus      bool          `json:"recency_bonus" yaml:"recency_bonus"`             // Add up to 50 points for recently accessed records
	TieBreak          string        `json:"tie_break" yaml:"tie_break"`                     // "input_order" or "recency"
	SearchURLTemplate string        `json:"search_url_template" yaml:"search_url_template"` // Web search URL with a single %s placeholder
	MaxResults        int           `json:"max_results" yaml:"max_results"`                 // Truncate responses to this many results (0 = unlimited)
}

// DefaultSearchSettings returns settings with every default applied.
func DefaultSearchSettings() SearchSettings {
	settings := SearchSettings{}
	settings.ApplyDefaults()
	return settings
}

// Validate checks the settings and returns human-readable problems.
// An empty slice means the settings are usable.
func (settings *SearchSettings) Validate() []string {
	var errors []string

	if settings.HistoryThreshold < 0 {
		errors = append(errors, "history_threshold cannot be negative")
	}

	if settings.TieBreak != "" && settings.TieBreak != TieBreakInputOrder && settings.TieBreak != TieBreakRecency {
		errors = append(errors, "Invalid tie_break '"+settings.TieBreak+"' (must be '"+TieBreakInputOrder+"' or '"+TieBreakRecency+"')")
	}

	if settings.SearchURLTemplate != "" {
		if strings.Count(settings.SearchURLTemplate, "%s") != 1 {
			errors = append(errors, "search_url_template must contain exactly one %s placeholder")
		}
		if !strings.HasPrefix(settings.SearchURLTemplate, "http://") && !strings.HasPrefix(settings.SearchURLTemplate, "https://") {
			errors = append(errors, "search_url_template must be an http or https URL")
		}
	}

	if settings.MaxResults < 0 {
		errors = append(errors, "max_results cannot be negative")
	}

	return errors
}

// ApplyDefaults applies default values to the search settings
func (settings *SearchSettings) ApplyDefaults() {
	if settings.HistoryThreshold == 0 {
		settings.HistoryThreshold = DefaultHistoryThreshold
	}
	if settings.TieBreak == "" {
		settings.TieBreak = TieBreakInputOrder
	}
	if settings.SearchURLTemplate == "" {
		settings.SearchURLTemplate = DefaultSearchURLTemplate
	}
}
