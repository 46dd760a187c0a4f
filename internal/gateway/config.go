package gateway

import "time"

// Config holds per-kind completion settings.
type Config struct {
	Chat     Settings
	Profile  Settings
	Guidance Settings

	// Timeout bounds a single completion. Zero disables it.
	Timeout time.Duration
}

// DefaultConfig returns the default bounds for each kind.
func DefaultConfig() Config {
	return Config{
		Chat:     Settings{MaxTokens: 500, Temperature: 0.7},
		Profile:  Settings{MaxTokens: 1200, Temperature: 0.9},
		Guidance: Settings{MaxTokens: 700, Temperature: 0.7},
		Timeout:  30 * time.Second,
	}
}

// For returns the settings for kind k.
func (c Config) For(k Kind) Settings {
	switch k {
	case KindProfile:
		return c.Profile
	case KindGuidance:
		return c.Guidance
	default:
		return c.Chat
	}
}
