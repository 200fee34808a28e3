// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reader

import (
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/pdiddy/explain-engine/pkg/types"
)

// PDFReader handles PDF files. The document-info Title entry supplies
// the title when present; page texts join into one body, space
// separated the way the rest of the pipeline expects.
type PDFReader struct{}

func (r *PDFReader) Read(path string) (types.Document, error) {
	f, pr, err := pdflib.Open(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= pr.NumPage(); i++ {
		page := pr.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page degrades that page only.
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		return types.Document{}, fmt.Errorf("pdf %s contains no extractable text", path)
	}

	return types.Document{
		Title: metadataTitle(pr),
		Text:  strings.Join(pages, " "),
	}, nil
}

// metadataTitle reads the /Info /Title entry, or "" when absent.
func metadataTitle(pr *pdflib.Reader) string {
	info := pr.Trailer().Key("Info")
	if info.IsNull() {
		return ""
	}
	title := info.Key("Title")
	if title.Kind() != pdflib.String {
		return ""
	}
	return strings.TrimSpace(title.RawString())
}
