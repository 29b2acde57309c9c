package transcript

import (
	"context"
	"errors"
	"strings"
	"time"

	"yt-video-chat-be/internal/pkg/logger"
)

// Fetcher runs an ordered list of strategies until one yields non-empty
// text. The fallback policy is the list itself, not control flow: each
// strategy is independent and testable in isolation.
type Fetcher struct {
	strategies    []Strategy
	strategyDelay time.Duration
	log           logger.ILogger
	sleep         func(time.Duration)
}

func NewFetcher(strategies []Strategy, strategyDelay time.Duration, log logger.ILogger) *Fetcher {
	return &Fetcher{
		strategies:    strategies,
		strategyDelay: strategyDelay,
		log:           log,
		sleep:         time.Sleep,
	}
}

// Fetch tries each strategy in order. A static sleep between strategies
// keeps upstream rate limiters calm. ErrCaptionsDisabled aborts the chain;
// every other failure just moves on to the next strategy.
func (f *Fetcher) Fetch(ctx context.Context, videoID string) (*Record, error) {
	for i, strategy := range f.strategies {
		if i > 0 {
			f.sleep(f.strategyDelay)
		}

		record, err := strategy.Attempt(ctx, videoID)
		if err == nil && record != nil && strings.TrimSpace(record.Text) != "" {
			f.log.Info("transcript", "Transcript acquired", map[string]interface{}{
				"video_id": videoID,
				"strategy": strategy.Name(),
				"language": record.Language,
				"chars":    len(record.Text),
			})
			return record, nil
		}

		if errors.Is(err, ErrCaptionsDisabled) {
			f.log.Warn("transcript", "Captions disabled, aborting fallback chain", map[string]interface{}{
				"video_id": videoID,
				"strategy": strategy.Name(),
			})
			return nil, ErrCaptionsDisabled
		}

		f.log.Warn("transcript", "Strategy failed, trying next", map[string]interface{}{
			"video_id": videoID,
			"strategy": strategy.Name(),
			"error":    errString(err),
		})
	}

	return nil, ErrNoTranscript
}

func errString(err error) string {
	if err == nil {
		return "empty transcript"
	}
	return err.Error()
}
