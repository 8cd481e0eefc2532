package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DatabaseURL string

	// Redis (optional; in-memory rate limiting when unset)
	RedisURL string

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// Rate limiting for /api routes
	RateLimit      int
	RateWindowSecs int

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:        getEnvOrDefault("PORT", "8080"),
		Env:         getEnvOrDefault("ENV", "development"),
		DatabaseURL: mustGetEnv("DATABASE_URL"),
		RedisURL:    getEnvOrDefault("REDIS_URL", ""),
		// The Gemini key is deliberately optional: startup reports whether
		// it was found and the server still comes up without it.
		GeminiAPIKey:   getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:    getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		RateLimit:      getEnvAsIntOrDefault("RATE_LIMIT", 60),
		RateWindowSecs: getEnvAsIntOrDefault("RATE_WINDOW_SECONDS", 60),
		FrontendURL:    getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
