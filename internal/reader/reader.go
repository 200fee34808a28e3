// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reader extracts a working title and raw text from source
// documents. Format-specific readers handle PDF, DOCX, HTML, Markdown,
// and plain text; extraction failure is fatal to a run.
package reader

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/explain-engine/pkg/types"
)

// Reader extracts a Document from a source file.
type Reader interface {
	Read(path string) (types.Document, error)
}

// readers maps supported extensions to their implementations.
var readers = map[string]Reader{
	".txt":      &TextReader{},
	".md":       &MarkdownReader{},
	".markdown": &MarkdownReader{},
	".html":     &HTMLReader{},
	".htm":      &HTMLReader{},
	".pdf":      &PDFReader{},
	".docx":     &DOCXReader{},
}

// ForFile returns the reader for a filename's extension.
func ForFile(path string) (Reader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if r, ok := readers[ext]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("unsupported document type %q: supported extensions are %s",
		ext, strings.Join(supportedExtensions(), ", "))
}

// Read extracts the document at path, dispatching on extension. When
// extraction yields no title, the first non-empty line of the text
// serves as the working title.
func Read(path string) (types.Document, error) {
	r, err := ForFile(path)
	if err != nil {
		return types.Document{}, err
	}

	doc, err := r.Read(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("extracting %s: %w", path, err)
	}

	doc.Title = strings.TrimSpace(doc.Title)
	if doc.Title == "" {
		doc.Title = firstLine(doc.Text)
	}
	return doc, nil
}

func supportedExtensions() []string {
	exts := make([]string, 0, len(readers))
	for ext := range readers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// firstLine returns the first non-empty trimmed line of text.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
