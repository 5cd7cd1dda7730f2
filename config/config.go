package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the generation relay service
type Config struct {
	// Server configuration
	Port string

	// Gemini configuration
	GeminiAPIKey  string
	TextModel     string
	ImageModel    string
	DocumentModel string
	AudioModel    string

	// Upload configuration
	UploadDir      string
	InlineMaxBytes int64
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		// Server defaults
		Port: getEnv("PORT", "8080"),

		// Gemini defaults
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		TextModel:     getEnv("GEMINI_TEXT_MODEL", "gemini-1.5-flash"),
		ImageModel:    getEnv("GEMINI_IMAGE_MODEL", "gemini-1.5-flash"),
		DocumentModel: getEnv("GEMINI_DOCUMENT_MODEL", "gemini-1.5-flash"),
		AudioModel:    getEnv("GEMINI_AUDIO_MODEL", "gemini-1.5-flash"),

		// Upload defaults. The inline ceiling matches the Gemini 20 MiB
		// request size limit; larger media goes through the file storage.
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		InlineMaxBytes: getInt64Env("INLINE_MAX_BYTES", 20<<20),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getInt64Env gets an int64 environment variable or returns a default value
func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
