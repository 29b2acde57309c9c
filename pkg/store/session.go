package store

import (
	"time"

	"yt-video-chat-be/pkg/rag"
)

// Chat roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one entry of the append-only conversation for the current
// video.
type ChatTurn struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // "user" | "assistant"
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// VideoSession is the in-memory state for the single active video: the
// transcript, its derived index and the chat history. A new load fully
// replaces it.
type VideoSession struct {
	ID         string     `json:"id"`
	VideoID    string     `json:"video_id"`
	Transcript string     `json:"transcript"`
	Language   string     `json:"language"`
	LoadedAt   time.Time  `json:"loaded_at"`
	History    []ChatTurn `json:"history"`
	Index      *rag.Index `json:"-"`
}
