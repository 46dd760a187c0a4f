// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/dreamteacher/internal/gateway"
	"github.com/abhisek/dreamteacher/internal/guidance"
	"github.com/abhisek/dreamteacher/internal/mentor"
)

// Config holds all application configuration.
type Config struct {
	Port         string
	AllowOrigins []string

	// GatewayURL points the terminal client at a remote gateway server.
	// Empty means completions run in-process.
	GatewayURL string

	MentorSource mentor.Source
	GuidanceMode guidance.Mode

	// Seed drives the wizard's random choices. Zero means pick one at
	// startup.
	Seed uint64

	DBPath string
	Log    LogConfig

	Timeout           time.Duration
	ChatMaxTokens     int
	ProfileMaxTokens  int
	GuidanceMaxTokens int
	Temperature       float64
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Mode  string
	Path  string
	Level string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	source, err := mentor.ParseSource(getEnv("DREAMTEACHER_MENTOR_SOURCE", "llm"))
	if err != nil {
		return nil, err
	}
	mode, err := guidance.ParseMode(getEnv("DREAMTEACHER_GUIDANCE_MODE", "template"))
	if err != nil {
		return nil, err
	}

	def := gateway.DefaultConfig()
	cfg := &Config{
		Port:         getEnv("DREAMTEACHER_PORT", getEnv("PORT", "8080")),
		AllowOrigins: getEnvList("DREAMTEACHER_ALLOW_ORIGINS"),
		GatewayURL:   getEnv("DREAMTEACHER_GATEWAY_URL", ""),
		MentorSource: source,
		GuidanceMode: mode,
		Seed:         getEnvUint("DREAMTEACHER_SEED", 0),
		DBPath:       getEnv("DREAMTEACHER_DB", ""),
		Log: LogConfig{
			Mode:  getEnv("DREAMTEACHER_LOG_MODE", "dev"),
			Path:  getEnv("DREAMTEACHER_LOG_FILE", defaultLogPath()),
			Level: getEnv("DREAMTEACHER_LOG_LEVEL", "info"),
		},
		Timeout:           getEnvDuration("DREAMTEACHER_LLM_TIMEOUT", def.Timeout),
		ChatMaxTokens:     getEnvInt("DREAMTEACHER_CHAT_MAX_TOKENS", def.Chat.MaxTokens),
		ProfileMaxTokens:  getEnvInt("DREAMTEACHER_PROFILE_MAX_TOKENS", def.Profile.MaxTokens),
		GuidanceMaxTokens: getEnvInt("DREAMTEACHER_GUIDANCE_MAX_TOKENS", def.Guidance.MaxTokens),
		Temperature:       getEnvFloat("DREAMTEACHER_TEMPERATURE", def.Chat.Temperature),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("DREAMTEACHER_PORT cannot be empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("DREAMTEACHER_LLM_TIMEOUT must be >= 0")
	}
	if c.ChatMaxTokens <= 0 || c.ProfileMaxTokens <= 0 || c.GuidanceMaxTokens <= 0 {
		return fmt.Errorf("max token settings must be > 0")
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		return fmt.Errorf("DREAMTEACHER_TEMPERATURE must be between 0 and 1")
	}
	if c.GatewayURL != "" && !strings.HasPrefix(c.GatewayURL, "http://") && !strings.HasPrefix(c.GatewayURL, "https://") {
		return fmt.Errorf("DREAMTEACHER_GATEWAY_URL must be an http(s) URL")
	}
	return nil
}

// Gateway returns the per-kind completion settings. The profile kind keeps
// its own higher temperature.
func (c *Config) Gateway() gateway.Config {
	g := gateway.DefaultConfig()
	g.Timeout = c.Timeout
	g.Chat = gateway.Settings{MaxTokens: c.ChatMaxTokens, Temperature: c.Temperature}
	g.Guidance = gateway.Settings{MaxTokens: c.GuidanceMaxTokens, Temperature: c.Temperature}
	g.Profile.MaxTokens = c.ProfileMaxTokens
	return g
}

// Addr is the listen address for the gateway server.
func (c *Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func defaultLogPath() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "dreamteacher", "dreamteacher.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "dreamteacher.log"
	}
	return filepath.Join(home, ".local", "state", "dreamteacher", "dreamteacher.log")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvUint(key string, fallback uint64) uint64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}
