// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestForFile(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"notes.txt", false},
		{"notes.md", false},
		{"notes.markdown", false},
		{"notes.html", false},
		{"notes.htm", false},
		{"notes.pdf", false},
		{"notes.docx", false},
		{"NOTES.PDF", false},
		{"notes.xlsx", true},
		{"notes", true},
	}
	for _, tt := range tests {
		_, err := ForFile(tt.path)
		if tt.wantErr {
			assert.Error(t, err, tt.path)
		} else {
			assert.NoError(t, err, tt.path)
		}
	}
}

func TestReadPlainText(t *testing.T) {
	path := writeFile(t, t.TempDir(), "notes.txt",
		"Process Scheduling Concepts\n\nThe scheduler shares CPU time.\n")

	doc, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "Process Scheduling Concepts", doc.Title,
		"title falls back to the first non-empty line")
	assert.Contains(t, doc.Text, "The scheduler shares CPU time.")
}

func TestReadPlainTextLeadingBlankLines(t *testing.T) {
	path := writeFile(t, t.TempDir(), "notes.txt", "\n\n  \nActual Title\nbody")

	doc, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "Actual Title", doc.Title)
}

func TestReadMarkdown(t *testing.T) {
	content := "# Scheduling Basics\n\nPreemption lets the kernel interrupt.\n\n## Queues\n\nJobs wait in queues.\n"
	path := writeFile(t, t.TempDir(), "notes.md", content)

	doc, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "Scheduling Basics", doc.Title, "first h1 becomes the title")
	assert.Contains(t, doc.Text, "Preemption lets the kernel interrupt.")
	assert.Contains(t, doc.Text, "Queues")
	assert.Contains(t, doc.Text, "Jobs wait in queues.")
	assert.NotContains(t, doc.Text, "#")
}

func TestReadMarkdownNoHeading(t *testing.T) {
	path := writeFile(t, t.TempDir(), "notes.md", "just a paragraph of text\n")

	doc, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "just a paragraph of text", doc.Title)
}

func TestReadHTML(t *testing.T) {
	content := `<!DOCTYPE html>
<html>
<head><title>Scheduling Notes</title><style>body { color: red }</style></head>
<body>
<header>site chrome</header>
<h1>Scheduling</h1>
<p>The scheduler shares
CPU time.</p>
<script>console.log("skip me")</script>
</body>
</html>`
	path := writeFile(t, t.TempDir(), "notes.html", content)

	doc, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "Scheduling Notes", doc.Title)
	assert.Contains(t, doc.Text, "Scheduling")
	assert.Contains(t, doc.Text, "The scheduler shares CPU time.")
	assert.NotContains(t, doc.Text, "skip me")
	assert.NotContains(t, doc.Text, "site chrome")
	assert.NotContains(t, doc.Text, "color: red")
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestReadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, t.TempDir(), "notes.xlsx", "data")
	_, err := Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported document type")
}

func TestReadCorruptPDF(t *testing.T) {
	path := writeFile(t, t.TempDir(), "notes.pdf", "not a real pdf")
	_, err := Read(path)
	assert.Error(t, err)
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "a", firstLine("a\nb"))
	assert.Equal(t, "b", firstLine("\n  \nb"))
	assert.Equal(t, "", firstLine("   \n\t\n"))
	assert.Equal(t, "", firstLine(""))
}
