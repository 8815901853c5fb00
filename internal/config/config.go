package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string // Empty selects the in-memory store
	CORSOrigins string
	TablePrefix string
	// Sessions
	SessionTimeout         time.Duration
	SessionRetention       time.Duration
	SessionCleanupInterval time.Duration
	MaxSessionsPerUser     int
	ContextWindowSize      int
	// Rate limiting
	RateLimitRequests int
	RateLimitWindow   time.Duration
	// Auth
	AuthRequired bool
	JWTSecret    string
	JWKSURL      string
	// Response generation
	ResponseGenerator   string // template, anthropic, lorem
	AnthropicAPIKey     string
	DefaultModel        string
	ResponseMaxTokens   int
	ResponseTemperature float64
	// Knowledge base
	KnowledgeBasePath string
	// Logging
	LogDir      string
	LogMaxFiles int
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:                   getEnv("PORT", "8000"),
		Environment:            env,
		DatabaseURL:            getEnv("DATABASE_URL", ""),
		CORSOrigins:            getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001"),
		TablePrefix:            getTablePrefix(env),
		SessionTimeout:         getDuration("SESSION_TIMEOUT", 30*time.Minute),
		SessionRetention:       getDuration("SESSION_RETENTION", 24*time.Hour),
		SessionCleanupInterval: getDuration("SESSION_CLEANUP_INTERVAL", 10*time.Minute),
		MaxSessionsPerUser:     getInt("MAX_SESSIONS_PER_USER", 10),
		ContextWindowSize:      getInt("CONTEXT_WINDOW_SIZE", 10),
		RateLimitRequests:      getInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:        getDuration("RATE_LIMIT_WINDOW", time.Hour),
		AuthRequired:           getEnv("AUTH_REQUIRED", "false") == "true",
		JWTSecret:              getEnv("JWT_SECRET", ""),
		JWKSURL:                getEnv("JWKS_URL", ""),
		ResponseGenerator:      getEnv("RESPONSE_GENERATOR", "template"),
		AnthropicAPIKey:        getEnv("ANTHROPIC_API_KEY", ""),
		DefaultModel:           getEnv("DEFAULT_MODEL", "claude-haiku-4-5-20251001"),
		ResponseMaxTokens:      getInt("RESPONSE_MAX_TOKENS", 1000),
		ResponseTemperature:    getFloat("RESPONSE_TEMPERATURE", 0.7),
		KnowledgeBasePath:      getEnv("KNOWLEDGE_BASE_PATH", ""),
		LogDir:                 getEnv("LOG_DIR", ""),
		LogMaxFiles:            getInt("LOG_MAX_FILES", 10),
	}
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func getFloat(key string, defaultValue float64) float64 {
	f, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// getDuration accepts Go durations ("30m") or plain seconds ("1800").
func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
