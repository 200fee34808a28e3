// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render converts a tier's explanation text into a structured
// guide document: an ordered sequence of typed blocks consumed by a
// format-specific writer.
//
// Section structure is a best-effort heuristic over paragraph breaks: a
// short block containing an uppercase character reads as a heading,
// everything else as a paragraph. Malformed or unstructured input still
// renders; it just lands in paragraphs.
package render

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/explain-engine/pkg/types"
)

// BlockKind tags one structural element of a rendered guide.
type BlockKind string

const (
	BlockTitle     BlockKind = "title"
	BlockSubtitle  BlockKind = "subtitle"
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockSpacer    BlockKind = "spacer"
)

// Block is one typed element of a guide document.
type Block struct {
	Kind BlockKind
	Text string
}

// headingMaxRunes is the length threshold below which a block with an
// uppercase character classifies as a heading.
const headingMaxRunes = 100

// tierLabels maps each tier to its guide subtitle label.
var tierLabels = map[types.Tier]string{
	types.TierBeginner:     "Beginner-Friendly Guide",
	types.TierIntermediate: "Comprehensive Guide",
	types.TierAdvanced:     "Advanced Analysis",
}

// Blocks lays out one tier's guide: title, tier subtitle, then the
// explanation classified into headings and paragraphs on paragraph
// boundaries. Order follows the explanation text.
func Blocks(explanation, title string, tier types.Tier, category types.Category) []Block {
	blocks := []Block{
		{Kind: BlockTitle, Text: title},
		{Kind: BlockSubtitle, Text: Subtitle(tier, category)},
		{Kind: BlockSpacer},
	}

	for _, section := range strings.Split(explanation, "\n\n") {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}

		if isHeading(section) {
			blocks = append(blocks, Block{Kind: BlockHeading, Text: section})
			continue
		}

		// Embedded single line breaks collapse into flowing text.
		para := strings.Join(strings.Fields(strings.ReplaceAll(section, "\n", " ")), " ")
		blocks = append(blocks,
			Block{Kind: BlockParagraph, Text: para},
			Block{Kind: BlockSpacer},
		)
	}

	return blocks
}

// Subtitle combines the tier label and the category name, e.g.
// "Beginner-Friendly Guide - Technical Content".
func Subtitle(tier types.Tier, category types.Category) string {
	label, ok := tierLabels[tier]
	if !ok {
		label = "Guide"
	}
	return fmt.Sprintf("%s - %s Content", label, titleCase(string(category)))
}

// isHeading reports whether a trimmed section reads as a short
// heading-like fragment.
func isHeading(section string) bool {
	if utf8.RuneCountInString(section) >= headingMaxRunes {
		return false
	}
	for _, r := range section {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// titleCase upper-cases the first rune of s.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
