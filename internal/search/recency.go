package search

import (
	"math"
	"time"
)

const (
	maxRecencyBonus      = 50.0
	minRecencyBonus      = 5.0
	fullBonusWindowMins  = 5.0
	recencyDecayWindowMs = float64(time.Hour / time.Millisecond)
)

// RecencyBonus returns up to 50 points for recently accessed records. Records
// touched in the last five minutes (or in the future) get the full bonus, the
// bonus then decays linearly over the hour and never drops below 5.
func RecencyBonus(lastAccessed int64, now time.Time) float64 {
	ageMs := float64(now.UnixMilli()) - float64(lastAccessed)
	if ageMs < fullBonusWindowMins*float64(time.Minute/time.Millisecond) {
		return maxRecencyBonus
	}
	if ageMs < recencyDecayWindowMs {
		return math.Max(minRecencyBonus, maxRecencyBonus*(1-ageMs/recencyDecayWindowMs))
	}
	return minRecencyBonus
}
