package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gcbaptista/go-tab-search/model"
)

// Segment is a run of consecutive runes that are either all matched or all unmatched.
type Segment struct {
	Text    string
	Matched bool
}

// Segments splits text into matched and unmatched runs. Positions are rune
// indices; out-of-range and duplicate positions are ignored.
func Segments(text string, positions []int) []Segment {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	matched := make([]bool, len(runes))
	for _, p := range positions {
		if p >= 0 && p < len(runes) {
			matched[p] = true
		}
	}

	var segments []Segment
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i == len(runes) || matched[i] != matched[start] {
			segments = append(segments, Segment{Text: string(runes[start:i]), Matched: matched[start]})
			start = i
		}
	}
	return segments
}

// Highlight renders text with the matched runs styled by match and the rest by base.
func Highlight(h model.Highlight, base, match lipgloss.Style) string {
	var b strings.Builder
	for _, seg := range Segments(h.Text, h.Positions) {
		if seg.Matched {
			b.WriteString(match.Render(seg.Text))
		} else {
			b.WriteString(base.Render(seg.Text))
		}
	}
	return b.String()
}

// ResultLine renders a result as a single terminal line: the highlighted
// matched field, then the other field muted and the pass tag.
func ResultLine(result model.SearchResult) string {
	other := result.Item.URL
	if result.MatchedField == model.FieldURL {
		other = result.Item.Title
	}

	tagStyle := StyleInfo
	if strings.HasPrefix(string(result.SearchTier), "history") {
		tagStyle = StyleHistory
	}

	line := Highlight(result.Highlight, lipgloss.NewStyle(), StyleMatch)
	if other != "" {
		line += "  " + StyleMuted.Render(other)
	}
	return fmt.Sprintf("%s %s", tagStyle.Render(fmt.Sprintf("[%s]", result.SearchTier)), line)
}
