// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/explain-engine/pkg/types"
)

func guideBlocks() []Block {
	return []Block{
		{Kind: BlockTitle, Text: "Process Scheduling"},
		{Kind: BlockSubtitle, Text: "Advanced Analysis - Technical Content"},
		{Kind: BlockSpacer},
		{Kind: BlockHeading, Text: "OVERVIEW"},
		{Kind: BlockParagraph, Text: "Schedulers share the CPU between processes."},
		{Kind: BlockSpacer},
	}
}

func TestMarkdownWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advanced_guide.md")

	w := &MarkdownWriter{}
	require.NoError(t, w.Write(guideBlocks(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	got := string(content)
	assert.Contains(t, got, "# Process Scheduling\n")
	assert.Contains(t, got, "## Advanced Analysis - Technical Content\n")
	assert.Contains(t, got, "### OVERVIEW\n")
	assert.Contains(t, got, "Schedulers share the CPU between processes.\n")
}

func TestHTMLWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advanced_guide.html")

	w := &HTMLWriter{}
	require.NoError(t, w.Write(guideBlocks(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	got := string(content)
	assert.Contains(t, got, "<title>Process Scheduling</title>")
	assert.Contains(t, got, "<h1>Process Scheduling</h1>")
	assert.Contains(t, got, "<h3>OVERVIEW</h3>")
	assert.Contains(t, got, "Schedulers share the CPU between processes.")
}

func TestWriterFailsOnMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope", "guide.md")
	err := (&MarkdownWriter{}).Write(guideBlocks(), missing)
	assert.Error(t, err)
}

func TestForFormat(t *testing.T) {
	w, err := ForFormat(types.OutputMarkdown)
	require.NoError(t, err)
	assert.Equal(t, ".md", w.Ext())

	w, err = ForFormat(types.OutputHTML)
	require.NoError(t, err)
	assert.Equal(t, ".html", w.Ext())

	w, err = ForFormat("")
	require.NoError(t, err)
	assert.Equal(t, ".md", w.Ext(), "empty format defaults to markdown")

	_, err = ForFormat("pdf")
	assert.Error(t, err)
}
