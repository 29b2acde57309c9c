package transcript

import (
	"context"
	"errors"
)

// Record is the outcome of a successful acquisition. Language is a
// best-effort tag: proxy services cannot report it reliably, so "en",
// "auto" and "unknown" are all legal values.
type Record struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// Sentinel errors a Strategy may return. Only ErrCaptionsDisabled is
// terminal for the whole fallback chain.
var (
	// ErrNoTranscript means this strategy found no caption text; the next
	// strategy should be tried.
	ErrNoTranscript = errors.New("no transcript available")

	// ErrCaptionsDisabled means the video owner turned captions off. No
	// strategy will ever succeed, so the chain aborts.
	ErrCaptionsDisabled = errors.New("captions are disabled for this video")

	// ErrRateLimited means the upstream throttled us. The strategy backs
	// off once internally; if it surfaces this error the strategy is
	// given up but the chain continues.
	ErrRateLimited = errors.New("rate limited by upstream")
)

// Strategy is one independent way of obtaining caption text for a video id.
// Implementations absorb their own transport errors and translate them into
// the sentinel errors above where the distinction matters.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, videoID string) (*Record, error)
}
