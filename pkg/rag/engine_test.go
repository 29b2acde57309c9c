package rag

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"yt-video-chat-be/pkg/llm"
)

// fakeEmbedder maps each text to a fixed unit vector so similarity ranking
// is fully deterministic.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if vec, ok := f.vectors[text]; ok {
		return vec, nil
	}
	return []float32{1, 0, 0}, nil
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := f.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

// fakeLLM echoes a canned response and records the last prompt it saw.
type fakeLLM struct {
	response   string
	err        error
	lastPrompt string
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.response, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.lastPrompt = prompt
	return f.response, f.err
}

func newTestEngine(embedder *fakeEmbedder) (*Engine, *MemoryStore) {
	store := NewMemoryStore()
	return NewEngine(NewSplitter(1000, 200), embedder, store), store
}

func TestProcessTranscriptEmpty(t *testing.T) {
	engine, _ := newTestEngine(&fakeEmbedder{})

	for _, input := range []string{"", "   ", "\n\t "} {
		if _, err := engine.ProcessTranscript(context.Background(), input); !errors.Is(err, ErrEmptyTranscript) {
			t.Errorf("input %q: err = %v, want ErrEmptyTranscript", input, err)
		}
	}
}

func TestProcessTranscriptOrdinals(t *testing.T) {
	engine, _ := newTestEngine(&fakeEmbedder{})

	text := strings.Repeat("the speaker makes another point about the topic. ", 80)
	ix, err := engine.ProcessTranscript(context.Background(), text)
	if err != nil {
		t.Fatalf("ProcessTranscript: %v", err)
	}

	segments := ix.All()
	if len(segments) < 2 {
		t.Fatalf("segment count = %d, want at least 2", len(segments))
	}
	for i, seg := range segments {
		if seg.Ordinal != i {
			t.Errorf("segment %d has ordinal %d", i, seg.Ordinal)
		}
		if seg.Source != SourceTranscript {
			t.Errorf("segment %d has source %q", i, seg.Source)
		}
		if seg.Content == "" {
			t.Errorf("segment %d is empty", i)
		}
	}
}

func TestProcessTranscriptClearsStore(t *testing.T) {
	engine, store := newTestEngine(&fakeEmbedder{})

	ix, err := engine.ProcessTranscript(context.Background(), "some transcript text")
	if err != nil {
		t.Fatalf("ProcessTranscript: %v", err)
	}
	if err := engine.PersistIndex(ix); err != nil {
		t.Fatalf("PersistIndex: %v", err)
	}
	if _, err := store.Load(); err != nil {
		t.Fatalf("Load after persist: %v", err)
	}

	// A rebuild wipes the persisted snapshot before the new index exists.
	if _, err := engine.ProcessTranscript(context.Background(), "entirely new text"); err != nil {
		t.Fatalf("second ProcessTranscript: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("Load after rebuild: err = %v, want ErrNoSnapshot", err)
	}
}

func TestProcessTranscriptIdempotent(t *testing.T) {
	engine, _ := newTestEngine(&fakeEmbedder{})
	text := strings.Repeat("the narrator explains the next step of the argument. ", 60)

	first, err := engine.ProcessTranscript(context.Background(), text)
	if err != nil {
		t.Fatalf("first ProcessTranscript: %v", err)
	}
	second, err := engine.ProcessTranscript(context.Background(), text)
	if err != nil {
		t.Fatalf("second ProcessTranscript: %v", err)
	}

	if first.Len() != second.Len() {
		t.Fatalf("segment counts differ: %d vs %d", first.Len(), second.Len())
	}
	a, b := first.All(), second.All()
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("segment %d differs between builds", i)
		}
	}
}

func TestIsSummaryRequest(t *testing.T) {
	tests := []struct {
		question string
		want     bool
	}{
		{"Summarize this video", true},
		{"summarize this video", true},
		{"Give me a brief overview", true},
		{"What is this video about?", true},
		{"इस वीडियो का सारांश दो", true},
		{"What did the speaker say about neural networks?", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsSummaryRequest(tt.question); got != tt.want {
			t.Errorf("IsSummaryRequest(%q) = %v, want %v", tt.question, got, tt.want)
		}
	}
}

func TestAnswerEmptyQuestion(t *testing.T) {
	engine, _ := newTestEngine(&fakeEmbedder{})
	ix := NewIndex(nil, nil)

	for _, q := range []string{"", "   "} {
		if got := engine.Answer(context.Background(), q, ix, &fakeLLM{}); got != MsgEmptyQuestion {
			t.Errorf("question %q: answer = %q, want %q", q, got, MsgEmptyQuestion)
		}
	}
}

func TestAnswerNothingFound(t *testing.T) {
	engine, _ := newTestEngine(&fakeEmbedder{})
	ix := NewIndex(nil, nil)

	got := engine.Answer(context.Background(), "what happened?", ix, &fakeLLM{response: "should not be used"})
	if got != MsgNothingFound {
		t.Errorf("answer = %q, want %q", got, MsgNothingFound)
	}
}

func TestAnswerRetrievesClosestSegments(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"what about cats?": {0, 1, 0},
	}}
	engine, _ := newTestEngine(embedder)

	segments := []Segment{
		{Ordinal: 0, Content: "dogs bark loudly", Source: SourceTranscript},
		{Ordinal: 1, Content: "cats purr softly", Source: SourceTranscript},
		{Ordinal: 2, Content: "fish swim quietly", Source: SourceTranscript},
	}
	vectors := [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	ix := NewIndex(segments, vectors)
	provider := &fakeLLM{response: "  Cats purr.  "}

	got := engine.Answer(context.Background(), "what about cats?", ix, provider)
	if got != "Cats purr." {
		t.Errorf("answer = %q, want trimmed response", got)
	}

	// The best-matching segment leads the context block, labeled with its
	// ordinal.
	if !strings.Contains(provider.lastPrompt, "[Chunk 1]: cats purr softly") {
		t.Errorf("prompt missing best segment:\n%s", provider.lastPrompt)
	}
	if !strings.Contains(provider.lastPrompt, "Question: what about cats?") {
		t.Errorf("prompt missing question:\n%s", provider.lastPrompt)
	}
}

func TestAnswerProviderError(t *testing.T) {
	engine, _ := newTestEngine(&fakeEmbedder{})
	ix := NewIndex(
		[]Segment{{Ordinal: 0, Content: "some content", Source: SourceTranscript}},
		[][]float32{{1, 0, 0}},
	)

	boom := errors.New("model unavailable")
	got := engine.Answer(context.Background(), "anything?", ix, &fakeLLM{err: boom})
	want := fmt.Sprintf("An error occurred while processing your question: %s", boom)
	if got != want {
		t.Errorf("answer = %q, want %q", got, want)
	}
}

func TestAnswerEmbedError(t *testing.T) {
	engine, _ := newTestEngine(&fakeEmbedder{err: errors.New("embedder down")})
	ix := NewIndex(
		[]Segment{{Ordinal: 0, Content: "some content", Source: SourceTranscript}},
		[][]float32{{1, 0, 0}},
	)

	got := engine.Answer(context.Background(), "anything?", ix, &fakeLLM{response: "unused"})
	if !strings.Contains(got, "embedder down") {
		t.Errorf("answer = %q, want embed error surfaced", got)
	}
}

func TestSummaryUsesStorageOrder(t *testing.T) {
	engine, _ := newTestEngine(&fakeEmbedder{})

	segments := make([]Segment, 12)
	vectors := make([][]float32, 12)
	for i := range segments {
		segments[i] = Segment{Ordinal: i, Content: fmt.Sprintf("segment number %d", i), Source: SourceTranscript}
		vectors[i] = []float32{1, 0, 0}
	}
	ix := NewIndex(segments, vectors)
	provider := &fakeLLM{response: "a summary"}

	got := engine.Summary(context.Background(), ix, provider, SummaryMaxSegments)
	if got != "a summary" {
		t.Errorf("summary = %q", got)
	}

	if !strings.Contains(provider.lastPrompt, "segment number 0") {
		t.Error("prompt missing first segment")
	}
	if !strings.Contains(provider.lastPrompt, "segment number 9") {
		t.Error("prompt missing tenth segment")
	}
	if strings.Contains(provider.lastPrompt, "segment number 10") {
		t.Error("prompt includes segment beyond max")
	}
}

func TestSummaryProviderError(t *testing.T) {
	engine, _ := newTestEngine(&fakeEmbedder{})
	ix := NewIndex(
		[]Segment{{Ordinal: 0, Content: "content", Source: SourceTranscript}},
		[][]float32{{1, 0, 0}},
	)

	got := engine.Summary(context.Background(), ix, &fakeLLM{err: errors.New("down")}, 10)
	if got != MsgSummaryFailed {
		t.Errorf("summary = %q, want %q", got, MsgSummaryFailed)
	}
}
