// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package explain splits source text into bounded chunks, drives the
// generation invoker per chunk per tier, and reassembles the surviving
// chunk results into one explanation per tier.
package explain

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/explain-engine/internal/generate"
	"github.com/pdiddy/explain-engine/internal/prompt"
	"github.com/pdiddy/explain-engine/pkg/types"
)

// NoExplanation is the degraded-state explanation used when every chunk
// of a tier fails generation. A guide is still rendered from it.
const NoExplanation = "No explanation generated."

// Engine runs per-tier chunked generation. It owns no retry logic;
// failure handling is the invoker's job, and the engine only filters
// out sentinel results.
type Engine struct {
	inv       *generate.Invoker
	chunkSize int
	log       io.Writer
}

// NewEngine builds an Engine over inv. A non-positive chunk size takes
// the 3000-byte default.
func NewEngine(inv *generate.Invoker, chunkSize int, log io.Writer) *Engine {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	if log == nil {
		log = io.Discard
	}
	return &Engine{inv: inv, chunkSize: chunkSize, log: log}
}

// Explanations generates one explanation per tier from text, using the
// tier-to-prefix mapping. Chunks are processed sequentially and in
// order; results equal to the invoker's failure sentinel are dropped,
// and the survivors join with a paragraph separator. A tier whose
// chunks all fail yields NoExplanation.
func (e *Engine) Explanations(ctx context.Context, text string, prefixes map[types.Tier]string) map[types.Tier]string {
	chunks := Chunks(text, e.chunkSize)

	out := make(map[types.Tier]string, len(types.Tiers))
	for _, tier := range types.Tiers {
		fmt.Fprintf(e.log, "generating %s explanation (%d chunks)\n", tier, len(chunks))

		var parts []string
		for i, chunk := range chunks {
			result := e.inv.Invoke(ctx, prompt.Build(prefixes[tier], chunk))
			if result == generate.FailureSentinel {
				fmt.Fprintf(e.log, "chunk %d/%d failed for %s tier, skipping\n", i+1, len(chunks), tier)
				continue
			}
			parts = append(parts, result)
		}

		if len(parts) == 0 {
			out[tier] = NoExplanation
			continue
		}
		out[tier] = strings.Join(parts, "\n\n")
	}
	return out
}
