// Package scoring computes how well a single text field matches a query and
// which characters justify the match.
//
// Matching is case-insensitive, but exact case is rewarded. Strategies are
// tried in a fixed order and the first one that succeeds decides the score:
//
//  1. exact match
//  2. prefix match
//  3. contiguous substring (queries of three or more characters)
//  4. greedy fuzzy scan with quality gates
//
// Positions are rune indices into the field.
package scoring

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	exactWeight     = 100
	prefixWeight    = 50
	tierBaseWeight  = 8
	substringWeight = 20
	boundaryWeight  = 8

	minSubstringLength = 3

	matchBase         = 1.0
	consecutiveBonus  = 5.0
	gapPenalty        = 0.5
	firstCharBonus    = 8.0
	separatorBonus    = 4.0
	camelCaseBonus    = 2.0
	caseMatchBonus    = 1.0
	longestRunWeight  = 3.0
	minDensityPerChar = 2.0
	maxSpanRatio      = 8.0
	maxAverageGap     = 15.0
)

// Strategy identifies which matching strategy produced a Match.
type Strategy int

const (
	StrategyExact Strategy = iota + 1
	StrategyPrefix
	StrategySubstring
	StrategyFuzzy
)

func (s Strategy) String() string {
	switch s {
	case StrategyExact:
		return "exact"
	case StrategyPrefix:
		return "prefix"
	case StrategySubstring:
		return "substring"
	case StrategyFuzzy:
		return "fuzzy"
	default:
		return "unknown"
	}
}

// Match is a successful scoring of one field against one query.
type Match struct {
	Score     float64
	Positions []int
	Strategy  Strategy
}

// Score matches query against field. The second return value is false when
// the field does not match; a non-matching field never yields a Match.
// The query is expected to be non-empty and already trimmed.
func Score(field, query string) (Match, bool) {
	if field == "" || query == "" {
		return Match{}, false
	}

	fieldRunes := []rune(field)
	queryRunes := []rune(query)
	fieldLower := lowerRunes(fieldRunes)
	queryLower := lowerRunes(queryRunes)
	q := float64(len(queryRunes))

	if equalRunes(fieldLower, queryLower) {
		return Match{
			Score:     tierBaseWeight*q + exactWeight*q,
			Positions: runPositions(0, len(queryRunes)),
			Strategy:  StrategyExact,
		}, true
	}

	if hasRunePrefix(fieldLower, queryLower) {
		return Match{
			Score:     tierBaseWeight*q + prefixWeight*q,
			Positions: runPositions(0, len(queryRunes)),
			Strategy:  StrategyPrefix,
		}, true
	}

	if len(queryRunes) >= minSubstringLength {
		if start := indexRunes(fieldLower, queryLower); start >= 0 {
			score := substringWeight * q
			if start == 0 || IsSeparator(fieldRunes[start-1]) {
				score += boundaryWeight * q
			}
			return Match{
				Score:     score,
				Positions: runPositions(start, len(queryRunes)),
				Strategy:  StrategySubstring,
			}, true
		}
	}

	return fuzzyScan(fieldRunes, queryRunes, fieldLower, queryLower)
}

// fuzzyScan greedily consumes query characters left to right and applies the
// density, span and gap gates to the result.
func fuzzyScan(fieldRunes, queryRunes, fieldLower, queryLower []rune) (Match, bool) {
	positions := make([]int, 0, len(queryRunes))
	score := 0.0
	prev := -1
	qi := 0

	for i := 0; i < len(fieldLower) && qi < len(queryLower); i++ {
		if fieldLower[i] != queryLower[qi] {
			continue
		}

		charScore := matchBase
		if prev >= 0 {
			if i == prev+1 {
				charScore += consecutiveBonus
			}
			score -= gapPenalty * float64(i-prev-1)
		}
		charScore += positionBonus(fieldRunes, i)
		if fieldRunes[i] == queryRunes[qi] {
			charScore += caseMatchBonus
		}

		score += charScore
		positions = append(positions, i)
		prev = i
		qi++
	}

	if qi < len(queryLower) {
		return Match{}, false
	}

	q := float64(len(queryRunes))
	if score < minDensityPerChar*q {
		return Match{}, false
	}

	span := float64(positions[len(positions)-1] - positions[0] + 1)
	if span/q > maxSpanRatio {
		return Match{}, false
	}

	// Implied by the span gate (span/q <= 8 keeps the mean gap at 14 or less); kept as its own check.
	if averageGap(positions) > maxAverageGap {
		return Match{}, false
	}

	score += longestRunWeight * float64(longestRun(positions))

	return Match{Score: score, Positions: positions, Strategy: StrategyFuzzy}, true
}

// positionBonus rewards matches at the start of the field, after a separator
// or at a camelCase / digit-to-letter boundary.
func positionBonus(field []rune, i int) float64 {
	if i == 0 {
		return firstCharBonus
	}
	prev, cur := field[i-1], field[i]
	if IsSeparator(prev) {
		return separatorBonus
	}
	if unicode.IsLower(prev) && unicode.IsUpper(cur) {
		return camelCaseBonus
	}
	if unicode.IsDigit(prev) && !unicode.IsDigit(cur) {
		return camelCaseBonus
	}
	return 0
}

func averageGap(positions []int) float64 {
	if len(positions) < 2 {
		return 0
	}
	total := 0
	for i := 1; i < len(positions); i++ {
		total += positions[i] - positions[i-1] - 1
	}
	return float64(total) / float64(len(positions)-1)
}

func longestRun(positions []int) int {
	if len(positions) == 0 {
		return 0
	}
	longest, current := 1, 1
	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			current++
		} else {
			current = 1
		}
		if current > longest {
			longest = current
		}
	}
	return longest
}

func runPositions(start, length int) []int {
	positions := make([]int, length)
	for i := range positions {
		positions[i] = start + i
	}
	return positions
}

// lowerRunes lowercases rune by rune so indices stay aligned with the input.
func lowerRunes(runes []rune) []rune {
	lowered := make([]rune, len(runes))
	for i, r := range runes {
		lowered[i] = unicode.ToLower(r)
	}
	return lowered
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func hasRunePrefix(s, prefix []rune) bool {
	return len(s) >= len(prefix) && equalRunes(s[:len(prefix)], prefix)
}

// indexRunes returns the rune index of the first occurrence of sub in s, or -1.
func indexRunes(s, sub []rune) int {
	haystack := string(s)
	byteIndex := strings.Index(haystack, string(sub))
	if byteIndex < 0 {
		return -1
	}
	return utf8.RuneCountInString(haystack[:byteIndex])
}
