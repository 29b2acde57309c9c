package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"yt-video-chat-be/pkg/store"
)

// currentSessionKey: this design runs exactly one logical "current video"
// at a time.
const currentSessionKey = "current"

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Sessions never expire on their own; a new video load replaces them.
	c := cache.New(cache.NoExpiration, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) SaveCurrent(session *store.VideoSession) {
	r.cache.Set(currentSessionKey, session, cache.NoExpiration)
}

func (r *SessionRepository) Current() (*store.VideoSession, bool) {
	if x, found := r.cache.Get(currentSessionKey); found {
		return x.(*store.VideoSession), true
	}
	return nil, false
}

func (r *SessionRepository) ClearCurrent() {
	r.cache.Delete(currentSessionKey)
}
