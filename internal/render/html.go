// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	"html"
	"os"

	"github.com/yuin/goldmark"
)

// HTMLWriter renders guides as standalone HTML pages. Blocks are
// assembled in their Markdown form and converted with goldmark.
type HTMLWriter struct{}

func (w *HTMLWriter) Ext() string { return ".html" }

func (w *HTMLWriter) Write(blocks []Block, path string) error {
	md := markdownContent(blocks)

	var body bytes.Buffer
	if err := goldmark.New().Convert([]byte(md), &body); err != nil {
		return fmt.Errorf("converting guide to HTML: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&page, "<meta charset=\"utf-8\">\n<title>%s</title>\n", html.EscapeString(pageTitle(blocks)))
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")

	if err := os.WriteFile(path, page.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing guide %s: %w", path, err)
	}
	return nil
}

func pageTitle(blocks []Block) string {
	for _, blk := range blocks {
		if blk.Kind == BlockTitle {
			return blk.Text
		}
	}
	return "Guide"
}
