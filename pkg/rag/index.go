package rag

import "sort"

// SourceTranscript tags every segment produced from a video transcript.
const SourceTranscript = "youtube_transcript"

// Segment is the unit of retrieval: a bounded slice of transcript text with
// its position in the original order.
type Segment struct {
	Ordinal int    `json:"ordinal"`
	Content string `json:"content"`
	Source  string `json:"source"`
}

// ScoredSegment pairs a retrieved segment with its cosine similarity score.
type ScoredSegment struct {
	Segment Segment `json:"segment"`
	Score   float32 `json:"score"`
}

// Index is a similarity-searchable collection of segments and their
// unit-normalized embedding vectors. It is built in one shot and never
// mutated afterwards; queries only read.
type Index struct {
	segments []Segment
	vectors  [][]float32
}

// NewIndex pairs segments with their embeddings. Both slices are aligned by
// position and must have the same length.
func NewIndex(segments []Segment, vectors [][]float32) *Index {
	return &Index{segments: segments, vectors: vectors}
}

// Len reports the number of indexed segments.
func (ix *Index) Len() int {
	return len(ix.segments)
}

// All returns the segments in insertion (ordinal) order.
func (ix *Index) All() []Segment {
	out := make([]Segment, len(ix.segments))
	copy(out, ix.segments)
	return out
}

// Search returns the k segments most similar to the query vector, best
// first. Vectors are unit length, so the dot product is the cosine
// similarity.
func (ix *Index) Search(query []float32, k int) []ScoredSegment {
	if k <= 0 || len(ix.segments) == 0 {
		return nil
	}

	scored := make([]ScoredSegment, len(ix.segments))
	for i, vec := range ix.vectors {
		scored[i] = ScoredSegment{
			Segment: ix.segments[i],
			Score:   dot(query, vec),
		}
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})

	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k]
}

func dot(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// Snapshot is the serializable form of an Index, written by the IndexStore.
type Snapshot struct {
	Segments []Segment   `json:"segments"`
	Vectors  [][]float32 `json:"vectors"`
}

// Snapshot captures the index state for persistence.
func (ix *Index) Snapshot() *Snapshot {
	return &Snapshot{Segments: ix.All(), Vectors: ix.vectors}
}

// FromSnapshot rebuilds an Index from its persisted form.
func FromSnapshot(snap *Snapshot) *Index {
	return NewIndex(snap.Segments, snap.Vectors)
}
