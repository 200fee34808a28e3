// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reader

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/pdiddy/explain-engine/pkg/types"
)

// DOCXReader handles .docx files. The first Heading1-styled paragraph
// supplies the title; paragraphs flatten into paragraph-separated text.
type DOCXReader struct{}

func (r *DOCXReader) Read(path string) (types.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("opening docx: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return types.Document{}, fmt.Errorf("stat docx: %w", err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return types.Document{}, fmt.Errorf("parsing docx: %w", err)
	}

	var (
		title string
		parts []string
	)

	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}

		text := paragraphText(para)
		if text == "" {
			continue
		}

		if title == "" && headingLevel(para) == 1 {
			title = text
			continue
		}
		parts = append(parts, text)
	}

	return types.Document{
		Title: title,
		Text:  strings.Join(parts, "\n\n"),
	}, nil
}

func headingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	for level := 1; level <= 6; level++ {
		if style == fmt.Sprintf("heading%d", level) {
			return level
		}
	}
	return 0
}

func paragraphText(para *docx.Paragraph) string {
	var b strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				b.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(b.String())
}
