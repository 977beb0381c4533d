package session

// Chunk splits text into consecutive pieces of at most size characters
// (runes). The last piece may be shorter. A non-positive size yields text as a
// single piece; empty text yields no pieces.
func Chunk(text string, size int) []string {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	if size <= 0 || len(runes) <= size {
		return []string{text}
	}

	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := min(start+size, len(runes))
		chunks = append(chunks, string(runes[start:end]))
	}

	return chunks
}
