package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Ai         AIConfig
	Rag        RagConfig
	Transcript TranscriptConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type AIConfig struct {
	EmbeddingProvider string // "ollama" or "gemini"
	OllamaBaseURL     string
	OllamaEmbedModel  string
	GeminiApiKey      string
	LLMProvider       string // "ollama" or "openai"
	LLMModel          string
	OpenAIApiKey      string
}

type RagConfig struct {
	ChunkSize    int
	ChunkOverlap int
	StoreDir     string
}

type TranscriptConfig struct {
	ProxyEndpoints []string
	Language       string
	HTTPTimeout    time.Duration
	StrategyDelay  time.Duration
	RetryDelay     time.Duration
	CacheTTL       time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "ollama"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaEmbedModel:  getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			GeminiApiKey:      getEnv("GOOGLE_GEMINI_API_KEY", ""),
			LLMProvider:       getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:          getEnv("LLM_MODEL", "llama3"),
			OpenAIApiKey:      getEnv("OPENAI_API_KEY", ""),
		},
		Rag: RagConfig{
			ChunkSize:    getEnvAsInt("RAG_CHUNK_SIZE", 1000),
			ChunkOverlap: getEnvAsInt("RAG_CHUNK_OVERLAP", 200),
			StoreDir:     getEnv("VECTOR_STORE_DIR", "./vector_store"),
		},
		Transcript: TranscriptConfig{
			ProxyEndpoints: getEnvAsList("TRANSCRIPT_PROXY_ENDPOINTS",
				"https://getproxytube.com/api/transcript/%s"),
			Language:      getEnv("TRANSCRIPT_LANGUAGE", "en"),
			HTTPTimeout:   getEnvAsDuration("TRANSCRIPT_HTTP_TIMEOUT", 15*time.Second),
			StrategyDelay: getEnvAsDuration("TRANSCRIPT_STRATEGY_DELAY", 2*time.Second),
			RetryDelay:    getEnvAsDuration("TRANSCRIPT_RETRY_DELAY", 5*time.Second),
			CacheTTL:      getEnvAsDuration("TRANSCRIPT_CACHE_TTL", 1*time.Hour),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsList(key, fallback string) []string {
	raw := getEnv(key, fallback)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
