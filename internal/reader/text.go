// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reader

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/explain-engine/pkg/types"
)

// TextReader handles plain text files. The title is left empty so the
// dispatch-level first-line fallback applies.
type TextReader struct{}

func (r *TextReader) Read(path string) (types.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("opening text file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var b strings.Builder
	for scanner.Scan() {
		b.WriteString(scanner.Text())
		b.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return types.Document{}, fmt.Errorf("reading text file: %w", err)
	}

	return types.Document{Text: strings.TrimRight(b.String(), "\n")}, nil
}
