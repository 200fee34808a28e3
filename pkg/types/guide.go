// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Tier is the difficulty level of a generated explanation.
type Tier string

const (
	TierBeginner     Tier = "beginner"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
)

// Tiers lists every tier in generation order. One guide is produced per
// tier on every run.
var Tiers = []Tier{TierBeginner, TierIntermediate, TierAdvanced}

// Valid reports whether t is a known tier value.
func (t Tier) Valid() bool {
	switch t {
	case TierBeginner, TierIntermediate, TierAdvanced:
		return true
	}
	return false
}

// Category is the detected subject-matter class of a source document.
// It selects the prompt wording used for generation.
type Category string

const (
	CategoryTechnical   Category = "technical"
	CategoryScientific  Category = "scientific"
	CategoryTheoretical Category = "theoretical"
	CategoryEducational Category = "educational"
	CategoryBusiness    Category = "business"
)

// Categories lists every category in the fixed enumeration order used
// for score tie-breaking. The order is part of the classifier contract.
var Categories = []Category{
	CategoryTechnical,
	CategoryScientific,
	CategoryTheoretical,
	CategoryEducational,
	CategoryBusiness,
}

// Document is the extracted content of a source file: a working title
// and the raw text to explain.
type Document struct {
	// Title is the document title. Callers fall back to the first
	// non-empty line of Text when extraction yields none.
	Title string `json:"title" yaml:"title"`

	// Text is the full extracted text.
	Text string `json:"text" yaml:"text"`
}

// Guide records one rendered guide in the library index.
type Guide struct {
	// SourcePath is the path of the source document.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// Title is the guide's title paragraph.
	Title string `json:"title" yaml:"title"`

	// Category is the detected source category.
	Category Category `json:"category" yaml:"category"`

	// Tier is the guide's difficulty level.
	Tier Tier `json:"tier" yaml:"tier"`

	// OutputPath is where the rendered guide was written.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// CreatedAt is when the guide was rendered.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
