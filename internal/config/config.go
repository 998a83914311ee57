package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Matcher  MatcherConfig
	Keys     TopicKeys
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JWTSecret      string
	TokenExpiryHrs int
}

type MatcherConfig struct {
	SimilarityThreshold float64
	MaxFeatures         int
	NgramMin            int
	NgramMax            int
	AnalyticsCacheTTL   int // seconds
}

type TopicKeys struct {
	KnowledgeChangedTopic string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", "default_secret"),
			TokenExpiryHrs: getEnvAsInt("JWT_EXPIRY_HOURS", 24),
		},
		Matcher: MatcherConfig{
			SimilarityThreshold: getEnvAsFloat("MATCH_SIMILARITY_THRESHOLD", 0.3),
			MaxFeatures:         getEnvAsInt("MATCH_MAX_FEATURES", 1000),
			NgramMin:            getEnvAsInt("MATCH_NGRAM_MIN", 1),
			NgramMax:            getEnvAsInt("MATCH_NGRAM_MAX", 2),
			AnalyticsCacheTTL:   getEnvAsInt("ANALYTICS_CACHE_TTL_SECONDS", 60),
		},
		Keys: TopicKeys{
			KnowledgeChangedTopic: getEnv("KNOWLEDGE_CHANGED_TOPIC_NAME", "KNOWLEDGE_CHANGED"),
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

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
