package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/dreamteacher/internal/llm"
	"github.com/abhisek/dreamteacher/internal/logging"
)

// Service answers requests in-process through an llm.Provider.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *logging.Logger
}

// NewService creates a Service. A nil logger discards output.
func NewService(provider llm.Provider, cfg Config, log *logging.Logger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{provider: provider, cfg: cfg, log: log}
}

// Complete sends exactly one upstream call for req. It never retries.
func (s *Service) Complete(ctx context.Context, req Request) (string, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return "", reject(err)
	}
	if s.provider == nil {
		return "", ErrUnavailable
	}

	ctx = llm.WithPurpose(ctx, "mentor-"+string(req.Kind))
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	resp, err := s.provider.Generate(ctx, BuildRequest(req, s.cfg.For(req.Kind)))
	if err != nil {
		s.log.Warn("completion failed",
			"kind", req.Kind,
			"model", s.provider.ModelID(),
			"error", err,
		)
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		s.log.Warn("completion returned no text", "kind", req.Kind, "model", resp.Model)
		return "", fmt.Errorf("%w: empty reply", ErrUnavailable)
	}
	return text, nil
}

// IsUnavailable reports whether err is a gateway failure that calls for the
// caller's fallback.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
