// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify detects the subject-matter category of raw document
// text by scoring it against fixed keyword sets.
//
// Classification is a pure function of the text: each category's score
// is the sum of non-overlapping, case-insensitive occurrence counts of
// its keywords, and the highest score wins. Ties, including the
// degenerate all-zero case for text with no keyword matches, resolve to
// the first category in types.Categories order.
package classify

import (
	"strings"

	"github.com/pdiddy/explain-engine/pkg/types"
)

// markers maps each category to its fixed keyword set. Iteration uses
// types.Categories so tie-breaking stays deterministic.
var markers = map[types.Category][]string{
	types.CategoryTechnical:   {"algorithm", "implementation", "system", "process", "technical", "architecture"},
	types.CategoryScientific:  {"experiment", "research", "study", "analysis", "data", "methodology"},
	types.CategoryTheoretical: {"theory", "concept", "principle", "framework", "model", "approach"},
	types.CategoryEducational: {"learn", "understand", "explain", "example", "practice", "exercise"},
	types.CategoryBusiness:    {"strategy", "market", "business", "management", "organization", "planning"},
}

// Detect returns the dominant category of text. It never fails: text
// with no keyword matches classifies to the first enumerated category.
func Detect(text string) types.Category {
	scores := Scores(text)

	best := types.Categories[0]
	bestScore := scores[best]
	for _, c := range types.Categories[1:] {
		if scores[c] > bestScore {
			best = c
			bestScore = scores[c]
		}
	}
	return best
}

// Scores returns the keyword score of every category for text.
func Scores(text string) map[types.Category]int {
	lower := strings.ToLower(text)

	scores := make(map[types.Category]int, len(types.Categories))
	for _, c := range types.Categories {
		total := 0
		for _, kw := range markers[c] {
			total += strings.Count(lower, kw)
		}
		scores[c] = total
	}
	return scores
}
