// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package explain

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/explain-engine/internal/classify"
	"github.com/pdiddy/explain-engine/internal/prompt"
	"github.com/pdiddy/explain-engine/internal/render"
	"github.com/pdiddy/explain-engine/pkg/types"
)

// Pipeline runs one source document through classification, per-tier
// generation, and rendering, producing one guide file per tier.
type Pipeline struct {
	engine    *Engine
	writer    render.Writer
	outputDir string
	log       io.Writer
}

// Result holds the outcome of one pipeline run.
type Result struct {
	// Category is the detected source category.
	Category types.Category

	// Explanations holds the aggregated explanation text per tier.
	Explanations map[types.Tier]string

	// Outputs maps each successfully rendered tier to its guide path.
	// A tier whose writer failed is absent.
	Outputs map[types.Tier]string
}

// GuidePath returns the rendered guide path for a tier, or "" when
// rendering failed for it.
func (r *Result) GuidePath(tier types.Tier) string {
	return r.Outputs[tier]
}

// NewPipeline assembles a pipeline. Progress lines go to log.
func NewPipeline(engine *Engine, writer render.Writer, outputDir string, log io.Writer) *Pipeline {
	if log == nil {
		log = io.Discard
	}
	return &Pipeline{
		engine:    engine,
		writer:    writer,
		outputDir: outputDir,
		log:       log,
	}
}

// Run classifies doc, generates per-tier explanations, and renders one
// guide per tier named <tier>_guide with the writer's extension. All
// three tiers are always generated. A writer failure loses that tier's
// guide only; it never aborts the remaining tiers.
func (p *Pipeline) Run(ctx context.Context, doc types.Document) (*Result, error) {
	category := classify.Detect(doc.Text)
	fmt.Fprintf(p.log, "detected content type: %s\n", category)

	explanations := p.engine.Explanations(ctx, doc.Text, prompt.Prefixes(category))

	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	outputs := make(map[types.Tier]string, len(types.Tiers))
	for _, tier := range types.Tiers {
		path := filepath.Join(p.outputDir, string(tier)+"_guide"+p.writer.Ext())
		blocks := render.Blocks(explanations[tier], doc.Title, tier, category)

		if err := p.writer.Write(blocks, path); err != nil {
			fmt.Fprintf(p.log, "failed: %s guide (%v)\n", tier, err)
			continue
		}
		fmt.Fprintf(p.log, "created: %s\n", path)
		outputs[tier] = path
	}

	return &Result{
		Category:     category,
		Explanations: explanations,
		Outputs:      outputs,
	}, nil
}
