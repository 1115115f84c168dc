// Package tiering decides whether a record is a recently active tab or a
// history-derived entry.
package tiering

import (
	"time"

	"github.com/gcbaptista/go-tab-search/model"
)

// DefaultHistoryThreshold is the age after which a record counts as history.
const DefaultHistoryThreshold = 24 * time.Hour

// Classifier assigns records to a tier based on their last access time.
type Classifier struct {
	threshold time.Duration
}

// NewClassifier creates a classifier with the given age threshold.
// A non-positive threshold falls back to DefaultHistoryThreshold.
func NewClassifier(threshold time.Duration) *Classifier {
	if threshold <= 0 {
		threshold = DefaultHistoryThreshold
	}
	return &Classifier{threshold: threshold}
}

// Threshold returns the configured age threshold.
func (c *Classifier) Threshold() time.Duration {
	return c.threshold
}

// IsHistoryTab reports whether now - lastAccessed is strictly greater than
// the threshold. Future timestamps are never history.
func (c *Classifier) IsHistoryTab(lastAccessed int64, now time.Time) bool {
	// lastAccessed < now - threshold is the overflow-free form of the age check
	cutoff := now.UnixMilli() - c.threshold.Milliseconds()
	return lastAccessed < cutoff
}

// Tier returns the tier of a record. An explicit flag on the record wins over
// the age rule.
func (c *Classifier) Tier(record model.Record, now time.Time) model.Tier {
	if record.IsHistoryTab != nil {
		if *record.IsHistoryTab {
			return model.TierHistory
		}
		return model.TierActive
	}
	if c.IsHistoryTab(record.LastAccessed, now) {
		return model.TierHistory
	}
	return model.TierActive
}

// Partition splits records into active and history tiers, preserving input
// order within each tier.
func (c *Classifier) Partition(records []model.Record, now time.Time) (active, history []model.Record) {
	for _, record := range records {
		if c.Tier(record, now) == model.TierHistory {
			history = append(history, record)
		} else {
			active = append(active, record)
		}
	}
	return active, history
}

var defaultClassifier = NewClassifier(DefaultHistoryThreshold)

// IsHistoryTab classifies lastAccessed with the default 24h threshold.
func IsHistoryTab(lastAccessed int64, now time.Time) bool {
	return defaultClassifier.IsHistoryTab(lastAccessed, now)
}
