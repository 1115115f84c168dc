package model

// Tier is the recency tier a record belongs to for the duration of one search.
type Tier int

const (
	TierActive Tier = iota
	TierHistory
)

func (t Tier) String() string {
	if t == TierHistory {
		return "history"
	}
	return "active"
}

// Field names the record field a result was matched on.
type Field string

const (
	FieldTitle Field = "title"
	FieldURL   Field = "url"
)

// SearchTier tags the (tier, field) pass that produced a result.
type SearchTier string

const (
	SearchTierTabsURL      SearchTier = "tabs-url"
	SearchTierTabsTitle    SearchTier = "tabs-title"
	SearchTierHistoryURL   SearchTier = "history-url"
	SearchTierHistoryTitle SearchTier = "history-title"
)

// Highlight holds the matched field text and the rune indices to emphasize.
type Highlight struct {
	Text      string `json:"text"`
	Positions []int  `json:"positions"`
}

// SearchResult is one ranked record.
type SearchResult struct {
	Item         Record     `json:"item"`
	Score        float64    `json:"score"`
	MatchedField Field      `json:"matched_field"`
	SearchTier   SearchTier `json:"search_tier"`
	Highlight    Highlight  `json:"highlight"`
}

// FieldValue returns the text of the given field.
func (r Record) FieldValue(field Field) string {
	if field == FieldURL {
		return r.URL
	}
	return r.Title
}
