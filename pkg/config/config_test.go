package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("ANTHROPIC_MAX_TOKENS", "")
	t.Setenv("PHISHNET_API_KEY", "")

	cfg := Load()
	assert.Equal(t, "3001", cfg.Port)
	assert.Empty(t, cfg.AnthropicAPIKey, "credential has no default")
	assert.Equal(t, 2048, cfg.MaxTokens)
	assert.Empty(t, cfg.PhishNetAPIKey)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("ANTHROPIC_MODEL", "claude-haiku-4-5")
	t.Setenv("ANTHROPIC_MAX_TOKENS", "512")
	t.Setenv("PHISHNET_API_KEY", "pn-test")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "sk-test", cfg.AnthropicAPIKey)
	assert.Equal(t, "claude-haiku-4-5", cfg.AnthropicModel)
	assert.Equal(t, 512, cfg.MaxTokens)
	assert.Equal(t, "pn-test", cfg.PhishNetAPIKey)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("ANTHROPIC_MAX_TOKENS", "lots")
	cfg := Load()
	assert.Equal(t, 2048, cfg.MaxTokens)
}
