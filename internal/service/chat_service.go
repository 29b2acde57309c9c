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
	"yt-video-chat-be/pkg/llm"
	"yt-video-chat-be/pkg/rag"
	"yt-video-chat-be/pkg/store"
)

// IChatService answers questions about the currently loaded video and keeps
// the conversation history.
type IChatService interface {
	Ask(ctx context.Context, request *dto.AskRequest) (*dto.AskResponse, error)
	History(ctx context.Context) ([]*dto.ChatTurnDTO, error)
	Summary(ctx context.Context) (*dto.SummaryResponse, error)
}

type chatService struct {
	engine      *rag.Engine
	llmProvider llm.Provider
	sessionRepo *memory.SessionRepository
	publisher   message.Publisher
	log         logger.ILogger
}

func NewChatService(
	engine *rag.Engine,
	llmProvider llm.Provider,
	sessionRepo *memory.SessionRepository,
	publisher message.Publisher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		engine:      engine,
		llmProvider: llmProvider,
		sessionRepo: sessionRepo,
		publisher:   publisher,
		log:         log,
	}
}

func (s *chatService) Ask(ctx context.Context, request *dto.AskRequest) (*dto.AskResponse, error) {
	session, found := s.sessionRepo.Current()
	if !found {
		return nil, serverutils.NotFound("No video loaded. Load a YouTube URL first.")
	}

	broad := rag.IsSummaryRequest(request.Question)
	answer := s.engine.Answer(ctx, request.Question, session.Index, s.llmProvider)

	now := time.Now()
	sent := store.ChatTurn{
		ID:        uuid.NewString(),
		Role:      store.RoleUser,
		Content:   request.Question,
		CreatedAt: now,
	}
	reply := store.ChatTurn{
		ID:        uuid.NewString(),
		Role:      store.RoleAssistant,
		Content:   answer,
		CreatedAt: now,
	}

	session.History = append(session.History, sent, reply)
	s.sessionRepo.SaveCurrent(session)

	s.publishChatAnswered(session.VideoID, request.Question, broad)

	return &dto.AskResponse{
		Sent:  turnToDTO(sent),
		Reply: turnToDTO(reply),
		Broad: broad,
	}, nil
}

func (s *chatService) History(ctx context.Context) ([]*dto.ChatTurnDTO, error) {
	session, found := s.sessionRepo.Current()
	if !found {
		return nil, serverutils.NotFound("No video loaded. Load a YouTube URL first.")
	}

	history := make([]*dto.ChatTurnDTO, 0, len(session.History))
	for _, turn := range session.History {
		history = append(history, turnToDTO(turn))
	}
	return history, nil
}

func (s *chatService) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	session, found := s.sessionRepo.Current()
	if !found {
		return nil, serverutils.NotFound("No video loaded. Load a YouTube URL first.")
	}

	summary := s.engine.Summary(ctx, session.Index, s.llmProvider, rag.SummaryMaxSegments)
	return &dto.SummaryResponse{Summary: summary}, nil
}

func (s *chatService) publishChatAnswered(videoID, question string, broad bool) {
	payload, err := json.Marshal(dto.PublishChatAnsweredMessage{
		VideoId:  videoID,
		Question: question,
		Broad:    broad,
	})
	if err != nil {
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.publisher.Publish(constant.TopicChatAnswered, msg); err != nil {
		s.log.Warn("chat", "Failed to publish chat event", map[string]interface{}{
			"video_id": videoID,
			"error":    err.Error(),
		})
	}
}

func turnToDTO(turn store.ChatTurn) *dto.ChatTurnDTO {
	return &dto.ChatTurnDTO{
		Id:        turn.ID,
		Role:      turn.Role,
		Content:   turn.Content,
		CreatedAt: turn.CreatedAt,
	}
}
