// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package explain

// defaultChunkSize bounds the text handed to one generation call.
const defaultChunkSize = 3000

// Chunks splits text into contiguous fixed-width slices. Every chunk
// except possibly the last has exactly size bytes, and concatenating
// the chunks in order reproduces text exactly. Slicing is positional,
// not word-aware: a chunk boundary may fall mid-word, which keeps
// reassembly trivial and exact.
func Chunks(text string, size int) []string {
	if size <= 0 {
		size = defaultChunkSize
	}
	if text == "" {
		return nil
	}

	chunks := make([]string, 0, (len(text)+size-1)/size)
	for start := 0; start < len(text); start += size {
		end := start + size
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[start:end])
	}
	return chunks
}
