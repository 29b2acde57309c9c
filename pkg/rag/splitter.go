package rag

import "strings"

// Default chunking geometry. Tuned for transcript prose: big enough that a
// chunk carries a full thought, overlapping enough that context is not lost
// at chunk boundaries.
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

// defaultSeparators in preference order: paragraph break, line break,
// sentence end, word boundary. A chunk edge snaps to the best separator
// available inside the window; when none fits, it falls back to a hard
// character cut.
var defaultSeparators = []string{"\n\n", "\n", ". ", " "}

// Splitter slices a long text into overlapping windows of at most ChunkSize
// runes, stepping ChunkSize-ChunkOverlap forward each time. Window ends snap
// backward to the highest-preference separator inside the window so words
// and sentences survive intact.
type Splitter struct {
	ChunkSize    int
	ChunkOverlap int
	Separators   []string
}

func NewSplitter(chunkSize, chunkOverlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		chunkOverlap = chunkSize / 5
	}
	return &Splitter{
		ChunkSize:    chunkSize,
		ChunkOverlap: chunkOverlap,
		Separators:   defaultSeparators,
	}
}

// Split returns the chunks in text order. Chunks are trimmed of surrounding
// whitespace but otherwise untouched: concatenating them with the overlap
// regions removed reproduces the input.
func (s *Splitter) Split(text string) []string {
	runes := []rune(text)
	total := len(runes)

	if total <= s.ChunkSize {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return []string{trimmed}
		}
		return nil
	}

	var chunks []string
	start := 0
	for start < total {
		end := start + s.ChunkSize
		if end >= total {
			end = total
		} else {
			end = s.snapEnd(runes, start, end)
		}

		if chunk := strings.TrimSpace(string(runes[start:end])); chunk != "" {
			chunks = append(chunks, chunk)
		}
		if end == total {
			break
		}
		start = end - s.ChunkOverlap
	}
	return chunks
}

// snapEnd walks the separator preference list and moves the window end
// backward to sit just after the last occurrence inside the window. The end
// never retreats into the overlap region, otherwise the window would stop
// making progress.
func (s *Splitter) snapEnd(runes []rune, start, end int) int {
	window := string(runes[start:end])
	floor := s.ChunkOverlap + 1

	for _, sep := range s.Separators {
		idx := strings.LastIndex(window, sep)
		if idx < 0 {
			continue
		}
		snapped := len([]rune(window[:idx+len(sep)]))
		if snapped >= floor {
			return start + snapped
		}
	}
	// No separator in range: hard character cut.
	return end
}
