// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reader

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/pdiddy/explain-engine/pkg/types"
)

// MarkdownReader handles Markdown files using goldmark. The first
// level-1 heading becomes the title; remaining headings and block text
// flatten into paragraph-separated plain text.
type MarkdownReader struct{}

func (r *MarkdownReader) Read(path string) (types.Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("reading markdown file: %w", err)
	}

	md := goldmark.New()
	doc := md.Parser().Parse(gmtext.NewReader(src))

	var (
		title string
		parts []string
	)

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			heading := nodeText(node, src)
			if node.Level == 1 && title == "" {
				title = heading
				continue
			}
			if heading != "" {
				parts = append(parts, heading)
			}
		default:
			if t := nodeText(n, src); t != "" {
				parts = append(parts, t)
			}
		}
	}

	return types.Document{
		Title: title,
		Text:  strings.Join(parts, "\n\n"),
	}, nil
}

// nodeText gets the text content of a goldmark AST node, including
// nested inlines.
func nodeText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.FirstChild() == nil {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(nodeText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
