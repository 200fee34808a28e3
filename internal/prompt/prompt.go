// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt maps a detected category to per-tier prompt prefixes.
package prompt

import (
	"github.com/pdiddy/explain-engine/pkg/types"
)

// prefixes is the fixed category x tier template table.
var prefixes = map[types.Category]map[types.Tier]string{
	types.CategoryTechnical: {
		types.TierBeginner:     "Please explain this technical content in simple terms for beginners: ",
		types.TierIntermediate: "Please provide a detailed technical explanation of: ",
		types.TierAdvanced:     "Please provide an in-depth technical analysis of: ",
	},
	types.CategoryScientific: {
		types.TierBeginner:     "Please explain this scientific content in accessible terms: ",
		types.TierIntermediate: "Please provide a detailed scientific explanation of: ",
		types.TierAdvanced:     "Please provide an in-depth scientific analysis of: ",
	},
	types.CategoryTheoretical: {
		types.TierBeginner:     "Please explain these theoretical concepts in simple terms: ",
		types.TierIntermediate: "Please provide a detailed theoretical explanation of: ",
		types.TierAdvanced:     "Please provide an in-depth theoretical analysis of: ",
	},
	types.CategoryEducational: {
		types.TierBeginner:     "Please explain this educational material in student-friendly terms: ",
		types.TierIntermediate: "Please provide a comprehensive educational explanation of: ",
		types.TierAdvanced:     "Please provide an in-depth educational analysis of: ",
	},
	types.CategoryBusiness: {
		types.TierBeginner:     "Please explain this business content in simple terms: ",
		types.TierIntermediate: "Please provide a detailed business analysis of: ",
		types.TierAdvanced:     "Please provide an in-depth business analysis of: ",
	},
}

// Prefixes returns the tier-to-prefix mapping for a category. Unknown
// categories fall back to the educational row; the classifier's closed
// set means that path only covers hand-built inputs.
func Prefixes(c types.Category) map[types.Tier]string {
	if p, ok := prefixes[c]; ok {
		return p
	}
	return prefixes[types.CategoryEducational]
}

// Build concatenates a tier prefix and a chunk into one generation prompt.
func Build(prefix, chunk string) string {
	return prefix + "\n\n" + chunk
}
