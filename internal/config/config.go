package config

import (
	"fmt"
	"log"
	"os"
)

// Transcription provider names
const (
	ProviderOpenAI = "openai"
	ProviderGoogle = "google"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	DatabaseURL        string
	RedisURL           string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string
	SessionSecret      string
	Env                string
	Port               string

	// AI vendor configuration
	TranscriptionProvider string
	OpenAIAPIKey          string
	GoogleCredentials     string
	GoogleCloudProject    string

	// Upload handling
	UploadDir   string
	MaxUploadMB int64

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisURL:           os.Getenv("REDIS_URL"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleCallbackURL:  os.Getenv("GOOGLE_CALLBACK_URL"),
		SessionSecret:      os.Getenv("SESSION_SECRET"),
		Env:                getEnvWithDefault("ENV", "development"),
		Port:               getEnvWithDefault("PORT", "8080"),

		TranscriptionProvider: getEnvWithDefault("TRANSCRIPTION_PROVIDER", ProviderGoogle),
		OpenAIAPIKey:          os.Getenv("OPENAI_API_KEY"),
		GoogleCredentials:     os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		GoogleCloudProject:    os.Getenv("GOOGLE_CLOUD_PROJECT"),

		UploadDir:   getEnvWithDefault("UPLOAD_DIR", "uploads"),
		MaxUploadMB: 10,

		LogLevel:  getEnvWithDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvWithDefault("LOG_FORMAT", "text"),
	}

	// Warn if using default session secret (insecure for production)
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "dev-secret-change-in-production-use-openssl-rand-hex-32"
		log.Println("WARNING: Using default SESSION_SECRET. Generate a secure secret with: openssl rand -hex 32")
	}

	return cfg
}

// Validate checks that the selected transcription provider has its
// credentials present. Runs once at startup so a misconfigured provider
// fails the process, not a request.
func (c *Config) Validate() error {
	switch c.TranscriptionProvider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when using OpenAI transcription")
		}
	case ProviderGoogle:
		if c.GoogleCredentials == "" && c.GoogleCloudProject == "" {
			return fmt.Errorf("google cloud credentials are required when using Google transcription: set GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_CLOUD_PROJECT")
		}
	default:
		return fmt.Errorf("invalid transcription provider %q: must be %q or %q", c.TranscriptionProvider, ProviderOpenAI, ProviderGoogle)
	}
	return nil
}

// IsProduction reports whether the app runs with production settings
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
