package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"yt-video-chat-be/pkg/transcript"
)

// TranscriptCache remembers acquired transcripts by video id so reloading a
// recently seen video does not hit the upstream services again.
type TranscriptCache struct {
	cache *cache.Cache
}

func NewTranscriptCache(ttl time.Duration) *TranscriptCache {
	return &TranscriptCache{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *TranscriptCache) Set(videoID string, record *transcript.Record) {
	r.cache.Set(videoID, record, cache.DefaultExpiration)
}

func (r *TranscriptCache) Get(videoID string) (*transcript.Record, bool) {
	if x, found := r.cache.Get(videoID); found {
		return x.(*transcript.Record), true
	}
	return nil, false
}
