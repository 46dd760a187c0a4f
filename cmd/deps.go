package cmd

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/abhisek/dreamteacher/internal/config"
	"github.com/abhisek/dreamteacher/internal/gateway"
	"github.com/abhisek/dreamteacher/internal/llm"
	"github.com/abhisek/dreamteacher/internal/logging"
	"github.com/abhisek/dreamteacher/internal/store"
)

// openEventRepo opens the diagnostics store. A store that cannot be opened
// is logged and skipped: completions still work without it.
func openEventRepo(cfg *config.Config, log *logging.Logger) (store.EventRepo, func()) {
	path := cfg.DBPath
	if path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			log.Warn("diagnostics store disabled", "error", err)
			return nil, func() {}
		}
		path = p
	} else if err := store.EnsureDir(path); err != nil {
		log.Warn("diagnostics store disabled", "error", err)
		return nil, func() {}
	}

	st, err := store.Open(path)
	if err != nil {
		log.Warn("diagnostics store disabled", "path", path, "error", err)
		return nil, func() {}
	}
	return st.EventRepo(), func() { st.Close() }
}

// newService builds the in-process completion service. When no provider is
// configured it returns gateway.Offline so every request falls back.
func newService(ctx context.Context, cfg *config.Config, repo store.EventRepo, log *logging.Logger) gateway.Completer {
	provider, err := llm.NewProviderFromEnv(ctx, repo, log)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			log.Warn("no LLM provider configured; mentor replies will use fallbacks")
		} else {
			log.Error("LLM provider unavailable", "error", err)
		}
		return gateway.Offline{}
	}
	log.Info("LLM provider ready", "model", provider.ModelID())
	return gateway.NewService(provider, cfg.Gateway(), log)
}

// newCompleter picks the remote gateway when one is configured, else the
// in-process service.
func newCompleter(ctx context.Context, cfg *config.Config, repo store.EventRepo, log *logging.Logger) gateway.Completer {
	if cfg.GatewayURL != "" {
		log.Info("using remote gateway", "url", cfg.GatewayURL)
		return gateway.NewClient(cfg.GatewayURL, cfg.Timeout, log)
	}
	return newService(ctx, cfg, repo, log)
}

func resolveSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return rand.Uint64()
}
