package mentor

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/dreamteacher/internal/gateway"
	"github.com/abhisek/dreamteacher/internal/logging"
)

// Source selects where profiles come from.
type Source string

const (
	SourceLLM   Source = "llm"
	SourceLocal Source = "local"
)

// ParseSource maps a config value to a Source.
func ParseSource(s string) (Source, error) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourceLLM, "":
		return SourceLLM, nil
	case SourceLocal:
		return SourceLocal, nil
	}
	return "", fmt.Errorf("unknown mentor source %q (want llm or local)", s)
}

// Result is the outcome of Build. Profile is never nil and always valid.
type Result struct {
	Profile  *Profile
	Fallback bool
}

// Builder produces mentor profiles.
type Builder struct {
	source    Source
	completer gateway.Completer
	log       *logging.Logger
}

// NewBuilder creates a Builder. completer is only used by SourceLLM.
func NewBuilder(source Source, completer gateway.Completer, log *logging.Logger) *Builder {
	if log == nil {
		log = logging.Nop()
	}
	if completer == nil {
		completer = gateway.Offline{}
	}
	return &Builder{source: source, completer: completer, log: log}
}

// Source returns the configured source.
func (b *Builder) Source() Source { return b.source }

// Build creates a profile for the description. seed drives every random
// choice so a given seed always yields the same local profile.
func (b *Builder) Build(ctx context.Context, description, studentName string, seed uint64) Result {
	if b.source == SourceLocal {
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		return Result{Profile: Derive(description, rng)}
	}

	text, err := b.completer.Complete(ctx, gateway.Request{
		Kind:        gateway.KindProfile,
		Message:     description,
		StudentName: studentName,
	})
	if err != nil {
		b.log.Warn("mentor profile generation failed, using default", "error", err)
		return Result{Profile: Default(), Fallback: true}
	}

	p, err := Parse(text)
	if err != nil {
		b.log.Warn("mentor profile unusable, using default", "error", err)
		return Result{Profile: Default(), Fallback: true}
	}
	return Result{Profile: p}
}
