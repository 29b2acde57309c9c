package bootstrap

import (
	"log"

	"yt-video-chat-be/internal/config"
	"yt-video-chat-be/internal/controller"
	"yt-video-chat-be/internal/pkg/logger"
	"yt-video-chat-be/internal/repository/memory"
	"yt-video-chat-be/internal/service"
	"yt-video-chat-be/pkg/embedding"
	"yt-video-chat-be/pkg/llm/factory"
	"yt-video-chat-be/pkg/rag"
	"yt-video-chat-be/pkg/transcript"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	VideoController controller.IVideoController
	ChatController  controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaEmbedModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbedModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiApiKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIApiKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Transcript Acquisition
	// Strategy order matters: cheapest and most reliable first.
	strategies := []transcript.Strategy{
		transcript.NewProxyStrategy(cfg.Transcript.ProxyEndpoints, cfg.Transcript.HTTPTimeout),
		transcript.NewInnertubeStrategy(cfg.Transcript.Language, cfg.Transcript.HTTPTimeout, cfg.Transcript.RetryDelay),
		transcript.NewScrapeStrategy(cfg.Transcript.HTTPTimeout),
	}
	fetcher := transcript.NewFetcher(strategies, cfg.Transcript.StrategyDelay, sysLogger)

	// 5. In-Memory Storage
	sessionRepo := memory.NewSessionRepository()
	transcriptCache := memory.NewTranscriptCache(cfg.Transcript.CacheTTL)

	// 6. RAG Engine
	splitter := rag.NewSplitter(cfg.Rag.ChunkSize, cfg.Rag.ChunkOverlap)
	indexStore := rag.NewFileStore(cfg.Rag.StoreDir)
	engine := rag.NewEngine(splitter, embeddingProvider, indexStore)

	// 7. Services
	videoService := service.NewVideoService(
		fetcher,
		transcriptCache,
		engine,
		sessionRepo,
		pubSub,
		sysLogger,
	)
	chatService := service.NewChatService(
		engine,
		llmProvider,
		sessionRepo,
		pubSub,
		sysLogger,
	)
	consumerService := service.NewConsumerService(
		pubSub,
		engine,
		sessionRepo,
		sysLogger,
	)

	// 8. Controllers
	return &Container{
		VideoController: controller.NewVideoController(videoService),
		ChatController:  controller.NewChatController(chatService),

		ConsumerService: consumerService,
	}
}
