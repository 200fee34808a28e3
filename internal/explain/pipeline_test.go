// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package explain

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/explain-engine/internal/generate"
	"github.com/pdiddy/explain-engine/internal/render"
	"github.com/pdiddy/explain-engine/pkg/types"
)

// echoGenerator returns the full prompt so tests can inspect what the
// pipeline sent to generation.
type echoGenerator struct{}

func (echoGenerator) Generate(_ context.Context, prompt string) (string, error) {
	return prompt, nil
}

func testPipeline(t *testing.T, gen generate.Generator, outputDir string) *Pipeline {
	t.Helper()
	cfg := types.AIConfig{MaxRetries: 1, Backoff: time.Millisecond}
	engine := NewEngine(generate.NewInvoker(gen, cfg, io.Discard), 0, io.Discard)
	return NewPipeline(engine, &render.MarkdownWriter{}, outputDir, io.Discard)
}

func TestPipelineRunScientificDocument(t *testing.T) {
	dir := t.TempDir()
	p := testPipeline(t, echoGenerator{}, dir)

	doc := types.Document{
		Title: "Lab Notes",
		Text:  strings.Repeat("experiment data methodology ", 10),
	}

	result, err := p.Run(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, types.CategoryScientific, result.Category)

	// One guide per tier, each starting with the same title paragraph,
	// and every tier's prompt wording names the scientific category.
	for _, tier := range types.Tiers {
		path := result.GuidePath(tier)
		require.NotEmpty(t, path, "tier %s", tier)
		assert.Equal(t, filepath.Join(dir, string(tier)+"_guide.md"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(content), "# Lab Notes\n"), "tier %s", tier)
		assert.Contains(t, result.Explanations[tier], "scientific")
	}
}

func TestPipelineRunIdempotent(t *testing.T) {
	doc := types.Document{
		Title: "Notes",
		Text:  strings.Repeat("algorithm system process ", 300),
	}

	first, err := testPipeline(t, echoGenerator{}, t.TempDir()).Run(context.Background(), doc)
	require.NoError(t, err)
	second, err := testPipeline(t, echoGenerator{}, t.TempDir()).Run(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, first.Category, second.Category)
	assert.Equal(t, first.Explanations, second.Explanations)
}

func TestPipelineRunAllGenerationFailed(t *testing.T) {
	gen := generatorFunc(func(_ context.Context, _ string) (string, error) {
		return "", errors.New("model offline")
	})
	dir := t.TempDir()
	p := testPipeline(t, gen, dir)

	result, err := p.Run(context.Background(), types.Document{Title: "T", Text: "experiment"})
	require.NoError(t, err, "total generation failure is a degraded state, not an error")

	for _, tier := range types.Tiers {
		assert.Equal(t, NoExplanation, result.Explanations[tier])

		// The guide is still rendered.
		content, err := os.ReadFile(result.GuidePath(tier))
		require.NoError(t, err)
		assert.Contains(t, string(content), NoExplanation)
	}
}

func TestPipelineRunWriterFailureLosesOnlyThatTier(t *testing.T) {
	dir := t.TempDir()
	cfg := types.AIConfig{MaxRetries: 1, Backoff: time.Millisecond}
	engine := NewEngine(generate.NewInvoker(echoGenerator{}, cfg, io.Discard), 0, io.Discard)

	w := &failingWriter{failTier: "intermediate_guide.md", inner: &render.MarkdownWriter{}}
	p := NewPipeline(engine, w, dir, io.Discard)

	result, err := p.Run(context.Background(), types.Document{Title: "T", Text: "data"})
	require.NoError(t, err)

	assert.NotEmpty(t, result.GuidePath(types.TierBeginner))
	assert.Empty(t, result.GuidePath(types.TierIntermediate))
	assert.NotEmpty(t, result.GuidePath(types.TierAdvanced))
}

// failingWriter fails for one target file and delegates the rest.
type failingWriter struct {
	failTier string
	inner    render.Writer
}

func (w *failingWriter) Ext() string { return w.inner.Ext() }

func (w *failingWriter) Write(blocks []render.Block, path string) error {
	if filepath.Base(path) == w.failTier {
		return errors.New("disk full")
	}
	return w.inner.Write(blocks, path)
}
