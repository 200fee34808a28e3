// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/explain-engine/pkg/types"
)

// Writer renders a block sequence into one guide file. Implementations
// are format-specific sinks; I/O failure is theirs to report and the
// caller's to scope to that one guide.
type Writer interface {
	// Ext returns the writer's native file extension, with dot.
	Ext() string

	// Write renders blocks to the file at path.
	Write(blocks []Block, path string) error
}

// ForFormat returns the writer for an output format.
func ForFormat(format types.OutputFormat) (Writer, error) {
	switch format {
	case types.OutputMarkdown, "":
		return &MarkdownWriter{}, nil
	case types.OutputHTML:
		return &HTMLWriter{}, nil
	}
	return nil, fmt.Errorf("unsupported output format %q: use markdown or html", format)
}

// MarkdownWriter renders guides as Markdown.
type MarkdownWriter struct{}

func (w *MarkdownWriter) Ext() string { return ".md" }

func (w *MarkdownWriter) Write(blocks []Block, path string) error {
	content := markdownContent(blocks)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing guide %s: %w", path, err)
	}
	return nil
}

// markdownContent assembles the Markdown form of a block sequence.
// Shared with the HTML writer, which converts this form.
func markdownContent(blocks []Block) string {
	var b strings.Builder
	for _, blk := range blocks {
		switch blk.Kind {
		case BlockTitle:
			fmt.Fprintf(&b, "# %s\n\n", blk.Text)
		case BlockSubtitle:
			fmt.Fprintf(&b, "## %s\n\n", blk.Text)
		case BlockHeading:
			fmt.Fprintf(&b, "### %s\n\n", blk.Text)
		case BlockParagraph:
			fmt.Fprintf(&b, "%s\n", blk.Text)
		case BlockSpacer:
			b.WriteString("\n")
		}
	}
	return b.String()
}
