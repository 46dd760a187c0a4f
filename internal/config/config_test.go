package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/dreamteacher/internal/guidance"
	"github.com/abhisek/dreamteacher/internal/mentor"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DREAMTEACHER_PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, mentor.SourceLLM, cfg.MentorSource)
	assert.Equal(t, guidance.ModeTemplate, cfg.GuidanceMode)
	assert.Equal(t, 30*time.Second, cfg.Timeout)

	g := cfg.Gateway()
	assert.Equal(t, 500, g.Chat.MaxTokens)
	assert.Equal(t, 1200, g.Profile.MaxTokens)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DREAMTEACHER_MENTOR_SOURCE", "local")
	t.Setenv("DREAMTEACHER_GUIDANCE_MODE", "llm")
	t.Setenv("DREAMTEACHER_SEED", "42")
	t.Setenv("DREAMTEACHER_LLM_TIMEOUT", "5s")
	t.Setenv("DREAMTEACHER_ALLOW_ORIGINS", "http://localhost:3000, https://dream.example")
	t.Setenv("DREAMTEACHER_CHAT_MAX_TOKENS", "256")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, mentor.SourceLocal, cfg.MentorSource)
	assert.Equal(t, guidance.ModeLLM, cfg.GuidanceMode)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 5*time.Second, cfg.Gateway().Timeout)
	assert.Equal(t, []string{"http://localhost:3000", "https://dream.example"}, cfg.AllowOrigins)
	assert.Equal(t, 256, cfg.Gateway().Chat.MaxTokens)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("DREAMTEACHER_GUIDANCE_MODE", "both")
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{Port: "8080", ChatMaxTokens: 1, ProfileMaxTokens: 1, GuidanceMaxTokens: 1}
	require.NoError(t, base.Validate())

	bad := base
	bad.GatewayURL = "localhost:8080"
	assert.Error(t, bad.Validate())

	bad = base
	bad.Temperature = 1.5
	assert.Error(t, bad.Validate())

	bad = base
	bad.Timeout = -time.Second
	assert.Error(t, bad.Validate())
}
