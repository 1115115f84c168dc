package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/gcbaptista/go-tab-search/model"
)

func TestSegments(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		positions []int
		want      []Segment
	}{
		{
			name: "no positions",
			text: "GitHub",
			want: []Segment{{Text: "GitHub"}},
		},
		{
			name:      "prefix match",
			text:      "GitHub",
			positions: []int{0, 1, 2},
			want:      []Segment{{Text: "Git", Matched: true}, {Text: "Hub"}},
		},
		{
			name:      "scattered match",
			text:      "Google Search Results",
			positions: []int{7, 10, 11, 12},
			want: []Segment{
				{Text: "Google "},
				{Text: "S", Matched: true},
				{Text: "ea"},
				{Text: "rch", Matched: true},
				{Text: " Results"},
			},
		},
		{
			name:      "whole text",
			text:      "go",
			positions: []int{0, 1},
			want:      []Segment{{Text: "go", Matched: true}},
		},
		{
			name:      "rune indices",
			text:      "Café Über",
			positions: []int{5, 6, 7, 8},
			want:      []Segment{{Text: "Café "}, {Text: "Über", Matched: true}},
		},
		{
			name:      "out of range and duplicates ignored",
			text:      "abc",
			positions: []int{-1, 1, 1, 9},
			want:      []Segment{{Text: "a"}, {Text: "b", Matched: true}, {Text: "c"}},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Segments(tt.text, tt.positions))
		})
	}
}

func TestHighlight_PlainStyles(t *testing.T) {
	plain := lipgloss.NewStyle()
	h := model.Highlight{Text: "GitHub", Positions: []int{0, 1, 2}}

	assert.Equal(t, "GitHub", Highlight(h, plain, plain))
}

func TestResultLine_ContainsFields(t *testing.T) {
	result := model.SearchResult{
		Item:         model.Record{Title: "GitHub", URL: "https://github.com"},
		MatchedField: model.FieldURL,
		SearchTier:   model.SearchTierTabsURL,
		Highlight:    model.Highlight{Text: "https://github.com", Positions: []int{8, 9, 10}},
	}

	line := ResultLine(result)

	assert.Contains(t, line, "tabs-url")
	assert.Contains(t, line, "GitHub")
}
