package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"

	"yt-video-chat-be/internal/constant"
	"yt-video-chat-be/internal/dto"
	"yt-video-chat-be/internal/pkg/logger"
	"yt-video-chat-be/internal/repository/memory"
	"yt-video-chat-be/pkg/rag"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService takes the slow I/O off the request path: it persists the
// index snapshot after a rebuild and writes the chat audit trail.
type consumerService struct {
	subscriber  message.Subscriber
	engine      *rag.Engine
	sessionRepo *memory.SessionRepository
	log         logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	engine *rag.Engine,
	sessionRepo *memory.SessionRepository,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:  subscriber,
		engine:      engine,
		sessionRepo: sessionRepo,
		log:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	indexed, err := cs.subscriber.Subscribe(ctx, constant.TopicVideoIndexed)
	if err != nil {
		return err
	}
	answered, err := cs.subscriber.Subscribe(ctx, constant.TopicChatAnswered)
	if err != nil {
		return err
	}

	go func() {
		for msg := range indexed {
			cs.processVideoIndexed(msg)
		}
	}()
	go func() {
		for msg := range answered {
			cs.processChatAnswered(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processVideoIndexed(msg *message.Message) {
	var payload dto.PublishVideoIndexedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "Failed to unmarshal index event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	session, found := cs.sessionRepo.Current()
	if !found || session.VideoID != payload.VideoId {
		// The session was replaced or reset before we got here; the next
		// rebuild will persist its own snapshot.
		msg.Ack()
		return
	}

	if err := cs.engine.PersistIndex(session.Index); err != nil {
		cs.log.Error("consumer", "Failed to persist index snapshot", map[string]interface{}{
			"video_id": payload.VideoId,
			"error":    err.Error(),
		})
		msg.Ack()
		return
	}

	cs.log.Info("consumer", "Index snapshot persisted", map[string]interface{}{
		"video_id": payload.VideoId,
		"segments": payload.SegmentCount,
	})
	msg.Ack()
}

func (cs *consumerService) processChatAnswered(msg *message.Message) {
	var payload dto.PublishChatAnsweredMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "Failed to unmarshal chat event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	cs.log.Info("consumer", "Question answered", map[string]interface{}{
		"video_id": payload.VideoId,
		"question": payload.Question,
		"broad":    payload.Broad,
	})
	msg.Ack()
}
