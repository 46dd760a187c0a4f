package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/dreamteacher/internal/logging"
	"github.com/abhisek/dreamteacher/internal/store"
)

// ErrNotConfigured is returned by NewProviderFromEnv when no provider
// credentials can be found.
var ErrNotConfigured = errors.New("no LLM provider configured")

// NewProvider creates a Provider from configuration, wrapped as
// caller → timeout → logging → base. Failed calls are not retried.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, log *logging.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, eventRepo, log)
	return WithTimeout(logged, cfg.Timeout), nil
}

// NewProviderFromEnv resolves configuration from DREAMTEACHER_* variables
// when a provider is named explicitly, otherwise from the standard
// provider API key variables.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo, log *logging.Logger) (Provider, error) {
	cfg, err := ResolveConfig()
	if err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, eventRepo, log)
}

// ResolveConfig picks the explicit configuration if present, else discovery.
func ResolveConfig() (Config, error) {
	if HasExplicitProvider() {
		return ConfigFromEnv(), nil
	}
	cfg, ok := DiscoverConfig()
	if !ok {
		return Config{}, ErrNotConfigured
	}
	env := ConfigFromEnv()
	cfg.Timeout = env.Timeout
	return cfg, nil
}
