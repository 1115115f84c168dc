package search

import (
	"sort"

	"github.com/gcbaptista/go-tab-search/config"
	"github.com/gcbaptista/go-tab-search/model"
)

// pass is one (tier, field) combination tried by the orchestrator.
type pass struct {
	tier  model.Tier
	field model.Field
	tag   model.SearchTier
}

// passOrder is the fixed escalation order. The first pass with at least one
// match ends the search.
var passOrder = []pass{
	{tier: model.TierActive, field: model.FieldURL, tag: model.SearchTierTabsURL},
	{tier: model.TierActive, field: model.FieldTitle, tag: model.SearchTierTabsTitle},
	{tier: model.TierHistory, field: model.FieldURL, tag: model.SearchTierHistoryURL},
	{tier: model.TierHistory, field: model.FieldTitle, tag: model.SearchTierHistoryTitle},
}

// sortResults orders results by descending score. Equal scores keep input
// order, or with the recency tie-break, most recently accessed first.
func sortResults(results []model.SearchResult, tieBreak string) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if tieBreak == config.TieBreakRecency {
			return results[i].Item.LastAccessed > results[j].Item.LastAccessed
		}
		return false
	})
}
