// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reader

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/pdiddy/explain-engine/pkg/types"
)

// HTMLReader handles HTML files. The <title> tag supplies the title;
// headings and content elements flatten into paragraph-separated text.
type HTMLReader struct{}

func (r *HTMLReader) Read(path string) (types.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("opening html file: %w", err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return types.Document{}, fmt.Errorf("parsing html: %w", err)
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "h1", "h2", "h3", "h4", "h5", "h6", "p", "li", "td", "blockquote", "pre":
				if t := textContent(n); t != "" {
					parts = append(parts, t)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return types.Document{
		Title: findTitle(doc),
		Text:  strings.Join(parts, "\n\n"),
	}, nil
}

// findTitle returns the text of the first <title> element, if any.
func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

// textContent collects the trimmed text beneath a node.
func textContent(n *html.Node) string {
	var b strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
