package rag

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"yt-video-chat-be/pkg/embedding"
	"yt-video-chat-be/pkg/llm"
)

// Retrieval widths. Broad/summary questions pull more context than targeted
// ones.
const (
	TopKResults = 4
	TopKSummary = 8

	SummaryMaxSegments = 10
)

// User-facing fixed messages. Failures degrade to these strings, never to a
// crash.
const (
	MsgEmptyQuestion  = "Please ask a valid question."
	MsgNothingFound   = "I cannot find relevant information in the video transcript to answer your question."
	MsgSummaryFailed  = "Could not generate summary."
	answerErrorFormat = "An error occurred while processing your question: %s"
)

// ErrEmptyTranscript rejects transcripts with no usable text.
var ErrEmptyTranscript = errors.New("transcript cannot be empty")

// summaryKeywords flag broad/overview requests. Matching is case-insensitive
// substring; the Hindi entries cover the bilingual audience the original
// tool served.
var summaryKeywords = []string{
	"summarize", "summary", "overview", "gist", "brief",
	"what is this video about", "main topic", "main points",
	"सारांश", "संक्षेप", "मुख्य बिंदु", "विषय", "बारे में",
}

// Engine owns the retrieval pipeline: chunk, embed, index, retrieve,
// prompt, complete.
type Engine struct {
	splitter *Splitter
	embedder embedding.Provider
	store    IndexStore
}

func NewEngine(splitter *Splitter, embedder embedding.Provider, store IndexStore) *Engine {
	return &Engine{
		splitter: splitter,
		embedder: embedder,
		store:    store,
	}
}

// ProcessTranscript chunks the transcript, embeds every segment in one
// batch and builds a fresh index. Whatever index was persisted before is
// wiped first; two indices never coexist.
func (e *Engine) ProcessTranscript(ctx context.Context, transcript string) (*Index, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, ErrEmptyTranscript
	}

	if err := e.store.Clear(); err != nil {
		return nil, fmt.Errorf("clear index store: %w", err)
	}

	chunks := e.splitter.Split(transcript)
	segments := make([]Segment, len(chunks))
	contents := make([]string, len(chunks))
	for i, chunk := range chunks {
		segments[i] = Segment{
			Ordinal: i,
			Content: chunk,
			Source:  SourceTranscript,
		}
		contents[i] = chunk
	}

	vectors, err := e.embedder.EmbedBatch(ctx, contents)
	if err != nil {
		return nil, fmt.Errorf("embed segments: %w", err)
	}

	return NewIndex(segments, vectors), nil
}

// PersistIndex writes the index snapshot to the store.
func (e *Engine) PersistIndex(ix *Index) error {
	return e.store.Save(ix)
}

// IsSummaryRequest reports whether the question reads like a broad/overview
// request rather than a targeted one.
func IsSummaryRequest(question string) bool {
	lowered := strings.ToLower(question)
	for _, keyword := range summaryKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// Answer runs one retrieval-augmented completion for the question. Every
// failure path returns a message string; this method never returns an
// error to the caller.
func (e *Engine) Answer(ctx context.Context, question string, ix *Index, provider llm.Provider) string {
	if strings.TrimSpace(question) == "" {
		return MsgEmptyQuestion
	}

	k := TopKResults
	if IsSummaryRequest(question) {
		k = TopKSummary
	}

	queryVec, err := e.embedder.Embed(ctx, question)
	if err != nil {
		return fmt.Sprintf(answerErrorFormat, err)
	}

	hits := ix.Search(queryVec, k)
	if len(hits) == 0 {
		return MsgNothingFound
	}

	prompt := buildAnswerPrompt(question, hits)

	response, err := provider.Generate(ctx, prompt)
	if err != nil {
		return fmt.Sprintf(answerErrorFormat, err)
	}
	return strings.TrimSpace(response)
}

// Summary condenses the first maxSegments segments in storage order; it
// does not rank by similarity.
func (e *Engine) Summary(ctx context.Context, ix *Index, provider llm.Provider, maxSegments int) string {
	if maxSegments <= 0 {
		maxSegments = SummaryMaxSegments
	}

	segments := ix.All()
	if len(segments) > maxSegments {
		segments = segments[:maxSegments]
	}

	contents := make([]string, len(segments))
	for i, seg := range segments {
		contents[i] = seg.Content
	}

	prompt := buildSummaryPrompt(strings.Join(contents, "\n\n"))

	response, err := provider.Generate(ctx, prompt)
	if err != nil {
		return MsgSummaryFailed
	}
	return strings.TrimSpace(response)
}

func buildAnswerPrompt(question string, hits []ScoredSegment) string {
	var prompt strings.Builder

	prompt.WriteString("You are a helpful AI assistant analyzing a YouTube video transcript.\n\n")
	prompt.WriteString("Your task is to answer questions based on the provided transcript context. Follow these rules:\n")
	prompt.WriteString("- Answer directly and concisely in the SAME LANGUAGE as the question\n")
	prompt.WriteString("- If the question is in Hindi, respond in Hindi\n")
	prompt.WriteString("- If the question is in English, respond in English\n")
	prompt.WriteString("- Use information ONLY from the context provided\n")
	prompt.WriteString("- For summary requests, provide a comprehensive summary of the context given\n")
	prompt.WriteString("- For specific questions, find and extract the relevant information\n")
	prompt.WriteString("- If you cannot find specific information to answer the question, respond with: ")
	prompt.WriteString("\"I cannot find that specific information in the video transcript.\" ")
	prompt.WriteString("(or in Hindi: \"मुझे वीडियो ट्रांसक्रिप्ट में यह विशिष्ट जानकारी नहीं मिली।\")\n")
	prompt.WriteString("- Do not make assumptions or add external knowledge\n\n")

	prompt.WriteString("Context from video transcript:\n")
	for _, hit := range hits {
		prompt.WriteString(fmt.Sprintf("[Chunk %d]: %s\n\n", hit.Segment.Ordinal, hit.Segment.Content))
	}

	prompt.WriteString("Question: ")
	prompt.WriteString(question)
	prompt.WriteString("\n\nAnswer:")

	return prompt.String()
}

func buildSummaryPrompt(context string) string {
	var prompt strings.Builder
	prompt.WriteString("Provide a concise summary of this YouTube video transcript:\n\n")
	prompt.WriteString(context)
	prompt.WriteString("\n\nSummary:")
	return prompt.String()
}
