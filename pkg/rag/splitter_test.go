package rag

import (
	"strings"
	"testing"
)

func TestSplitShortText(t *testing.T) {
	s := NewSplitter(1000, 200)

	chunks := s.Split("hello world")
	if len(chunks) != 1 || chunks[0] != "hello world" {
		t.Errorf("chunks = %v, want [hello world]", chunks)
	}

	if chunks := s.Split("   \n  "); chunks != nil {
		t.Errorf("whitespace-only input: chunks = %v, want nil", chunks)
	}
}

func TestSplitParagraphs(t *testing.T) {
	// 2500 chars of paragraph-structured text: breaks near offsets 700,
	// 1340 and 1980 so every window edge snaps to a paragraph boundary.
	text := strings.Repeat("transcript", 70) +
		"\n\n" + strings.Repeat("transcript", 63) + "dialogue" +
		"\n\n" + strings.Repeat("transcript", 63) + "dialogue" +
		"\n\n" + strings.Repeat("transcript", 51) + "epilogue"
	if len(text) != 2500 {
		t.Fatalf("fixture length = %d, want 2500", len(text))
	}

	s := NewSplitter(1000, 200)
	chunks := s.Split(text)

	if len(chunks) != 4 {
		t.Fatalf("chunk count = %d, want 4", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > 1000 {
			t.Errorf("chunk %d length = %d, exceeds 1000", i, len(chunk))
		}
	}

	// Consecutive chunks share the overlap region near the boundary.
	for i := 0; i < len(chunks)-1; i++ {
		tail := chunks[i][len(chunks[i])-100:]
		if !strings.Contains(chunks[i+1], tail) {
			t.Errorf("chunk %d does not share overlap with chunk %d", i+1, i)
		}
	}
}

func TestSplitProse(t *testing.T) {
	sentence := "All work and no play makes Jack a dull boy. "
	text := strings.Repeat(sentence, 57)[:2500]

	s := NewSplitter(1000, 200)
	chunks := s.Split(text)

	if len(chunks) < 3 {
		t.Fatalf("chunk count = %d, want at least 3", len(chunks))
	}

	for i, chunk := range chunks {
		if len(chunk) > 1000 {
			t.Errorf("chunk %d length = %d, exceeds 1000", i, len(chunk))
		}
		if chunk != strings.TrimSpace(chunk) {
			t.Errorf("chunk %d not trimmed: %q", i, chunk)
		}
	}

	// Window ends snap to sentence boundaries for prose like this.
	for i := 0; i < len(chunks)-1; i++ {
		if !strings.HasSuffix(chunks[i], "boy.") {
			t.Errorf("chunk %d ends mid-sentence: %q", i, chunks[i][len(chunks[i])-30:])
		}
	}

	// Nothing is lost: every chunk is a contiguous slice of the input, and
	// each chunk begins inside the previous one.
	pos := 0
	for i, chunk := range chunks {
		at := strings.Index(text[pos:], chunk)
		if at < 0 {
			t.Fatalf("chunk %d is not a contiguous slice of the input", i)
		}
		pos += at
	}
	last := chunks[len(chunks)-1]
	if !strings.HasSuffix(strings.TrimSpace(text), last) {
		t.Error("last chunk does not reach the end of the input")
	}
}

func TestSplitDeterministic(t *testing.T) {
	text := strings.Repeat("some transcript words here. ", 100)
	s := NewSplitter(1000, 200)

	first := s.Split(text)
	second := s.Split(text)

	if len(first) != len(second) {
		t.Fatalf("chunk counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("chunk %d differs between runs", i)
		}
	}
}

func TestNewSplitterDefaults(t *testing.T) {
	s := NewSplitter(0, -1)
	if s.ChunkSize != DefaultChunkSize {
		t.Errorf("ChunkSize = %d, want %d", s.ChunkSize, DefaultChunkSize)
	}
	if s.ChunkOverlap != DefaultChunkSize/5 {
		t.Errorf("ChunkOverlap = %d, want %d", s.ChunkOverlap, DefaultChunkSize/5)
	}
}
