package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	AnthropicAPIKey string
	AnthropicBase   string
	AnthropicModel  string
	MaxTokens       int

	PhishNetAPIKey string
	PhishNetBase   string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "3001"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicBase:   os.Getenv("ANTHROPIC_BASE_URL"),
		AnthropicModel:  os.Getenv("ANTHROPIC_MODEL"),
		MaxTokens:       getEnvInt("ANTHROPIC_MAX_TOKENS", 2048),
		PhishNetAPIKey:  os.Getenv("PHISHNET_API_KEY"),
		PhishNetBase:    os.Getenv("PHISHNET_BASE_URL"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
