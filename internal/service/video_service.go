package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"yt-video-chat-be/internal/constant"
	"yt-video-chat-be/internal/dto"
	"yt-video-chat-be/internal/pkg/logger"
	"yt-video-chat-be/internal/pkg/serverutils"
	"yt-video-chat-be/internal/repository/memory"
	"yt-video-chat-be/pkg/rag"
	"yt-video-chat-be/pkg/store"
	"yt-video-chat-be/pkg/transcript"
	"yt-video-chat-be/pkg/youtube"
)

const transcriptPreviewLen = 500

// IVideoService drives the load pipeline: parse URL, acquire transcript,
// chunk and index.
type IVideoService interface {
	LoadFromURL(ctx context.Context, url string) (*dto.LoadVideoResponse, error)
	LoadFromTranscript(ctx context.Context, transcriptText string) (*dto.LoadVideoResponse, error)
	Current(ctx context.Context) (*dto.CurrentVideoResponse, error)
	Reset(ctx context.Context) error
}

type videoService struct {
	fetcher         *transcript.Fetcher
	transcriptCache *memory.TranscriptCache
	engine          *rag.Engine
	sessionRepo     *memory.SessionRepository
	publisher       message.Publisher
	log             logger.ILogger
}

func NewVideoService(
	fetcher *transcript.Fetcher,
	transcriptCache *memory.TranscriptCache,
	engine *rag.Engine,
	sessionRepo *memory.SessionRepository,
	publisher message.Publisher,
	log logger.ILogger,
) IVideoService {
	return &videoService{
		fetcher:         fetcher,
		transcriptCache: transcriptCache,
		engine:          engine,
		sessionRepo:     sessionRepo,
		publisher:       publisher,
		log:             log,
	}
}

func (s *videoService) LoadFromURL(ctx context.Context, url string) (*dto.LoadVideoResponse, error) {
	videoID, ok := youtube.ExtractVideoID(url)
	if !ok {
		return nil, serverutils.BadRequest("Invalid YouTube URL. Please check and try again.")
	}

	// Reloading the identical video keeps the existing index and history.
	if current, found := s.sessionRepo.Current(); found && current.VideoID == videoID {
		return &dto.LoadVideoResponse{
			VideoId:       videoID,
			Language:      current.Language,
			TranscriptLen: len(current.Transcript),
			SegmentCount:  current.Index.Len(),
			AlreadyLoaded: true,
		}, nil
	}

	record, fromCache := s.transcriptCache.Get(videoID)
	if !fromCache {
		var err error
		record, err = s.fetcher.Fetch(ctx, videoID)
		if err != nil {
			return nil, err
		}
		s.transcriptCache.Set(videoID, record)
	}

	res, err := s.startSession(ctx, videoID, record)
	if err != nil {
		return nil, err
	}
	res.FromCache = fromCache
	return res, nil
}

func (s *videoService) LoadFromTranscript(ctx context.Context, transcriptText string) (*dto.LoadVideoResponse, error) {
	record := &transcript.Record{Text: transcriptText, Language: "unknown"}
	return s.startSession(ctx, constant.ManualVideoId, record)
}

// startSession rebuilds the index from a transcript record and replaces the
// current session wholesale. Chat history does not survive a new load.
func (s *videoService) startSession(ctx context.Context, videoID string, record *transcript.Record) (*dto.LoadVideoResponse, error) {
	index, err := s.engine.ProcessTranscript(ctx, record.Text)
	if err != nil {
		return nil, err
	}

	session := &store.VideoSession{
		ID:         uuid.NewString(),
		VideoID:    videoID,
		Transcript: record.Text,
		Language:   record.Language,
		LoadedAt:   time.Now(),
		History:    []store.ChatTurn{},
		Index:      index,
	}
	s.sessionRepo.SaveCurrent(session)

	s.log.Info("video", "Video loaded and indexed", map[string]interface{}{
		"video_id": videoID,
		"language": record.Language,
		"chars":    len(record.Text),
		"segments": index.Len(),
	})

	s.publishVideoIndexed(videoID, record.Language, index.Len())

	return &dto.LoadVideoResponse{
		VideoId:       videoID,
		Language:      record.Language,
		TranscriptLen: len(record.Text),
		SegmentCount:  index.Len(),
	}, nil
}

func (s *videoService) publishVideoIndexed(videoID, language string, segments int) {
	payload, err := json.Marshal(dto.PublishVideoIndexedMessage{
		VideoId:      videoID,
		Language:     language,
		SegmentCount: segments,
	})
	if err != nil {
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.publisher.Publish(constant.TopicVideoIndexed, msg); err != nil {
		s.log.Warn("video", "Failed to publish index event", map[string]interface{}{
			"video_id": videoID,
			"error":    err.Error(),
		})
	}
}

func (s *videoService) Current(ctx context.Context) (*dto.CurrentVideoResponse, error) {
	session, found := s.sessionRepo.Current()
	if !found {
		return nil, serverutils.NotFound("No video loaded. Load a YouTube URL first.")
	}

	preview := session.Transcript
	if runes := []rune(preview); len(runes) > transcriptPreviewLen {
		preview = string(runes[:transcriptPreviewLen]) + "..."
	}

	return &dto.CurrentVideoResponse{
		VideoId:           session.VideoID,
		Language:          session.Language,
		TranscriptPreview: preview,
		TranscriptLen:     len(session.Transcript),
		SegmentCount:      session.Index.Len(),
		LoadedAt:          session.LoadedAt,
	}, nil
}

func (s *videoService) Reset(ctx context.Context) error {
	s.sessionRepo.ClearCurrent()
	s.log.Info("video", "Session reset", nil)
	return nil
}
