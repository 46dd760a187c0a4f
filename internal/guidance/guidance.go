// Package guidance produces the career guidance message shown after the
// aptitude quiz.
package guidance

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/dreamteacher/internal/aptitude"
	"github.com/abhisek/dreamteacher/internal/gateway"
	"github.com/abhisek/dreamteacher/internal/logging"
	"github.com/abhisek/dreamteacher/internal/mentor"
)

// Mode selects the active generator.
type Mode string

const (
	ModeTemplate Mode = "template"
	ModeLLM      Mode = "llm"
)

// ParseMode maps a config value to a Mode. Empty means template.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeTemplate, "":
		return ModeTemplate, nil
	case ModeLLM:
		return ModeLLM, nil
	}
	return "", fmt.Errorf("unknown guidance mode %q (want template or llm)", s)
}

// Input is everything guidance is derived from.
type Input struct {
	StudentName string
	Interests   []string
	StudyStyle  string
	Score       int
	Total       int
	Mentor      *mentor.Profile
}

// Result is generated guidance. Fallback is set when the template stood in
// for a failed generation.
type Result struct {
	Text     string
	Fallback bool
}

// Generator produces guidance text. Implementations never fail; they
// degrade to the template instead.
type Generator interface {
	Generate(ctx context.Context, in Input) Result
}

// New returns the generator for mode.
func New(mode Mode, completer gateway.Completer, log *logging.Logger) Generator {
	if mode == ModeLLM {
		return NewLLM(completer, log)
	}
	return Template{}
}

// Template renders guidance locally.
type Template struct{}

func (Template) Generate(_ context.Context, in Input) Result {
	return Result{Text: Render(in)}
}

// Render builds the template guidance text.
func Render(in Input) string {
	total := in.Total
	if total <= 0 {
		total = aptitude.Count()
	}
	name := strings.TrimSpace(in.StudentName)
	if name == "" {
		name = "there"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s! 🌟\n\n", name)
	fmt.Fprintf(&b, "Based on your aptitude test (%d/%d correct) and interests in %s, here's your personalized career guidance...\n\n",
		in.Score, total, strings.Join(firstN(in.Interests, 3), ", "))

	b.WriteString(tierComment(aptitude.TierFor(in.Score)))
	b.WriteString("\n\n🎯 Career paths to explore:\n")
	for _, interest := range in.Interests {
		label, careers := CareersFor(interest)
		fmt.Fprintf(&b, "• %s: %s\n", label, strings.Join(careers, ", "))
	}

	b.WriteString("\n📚 Study technique for you:\n")
	b.WriteString(TechniqueFor(in.StudyStyle))
	b.WriteString("\n\n")

	if in.Mentor != nil && in.Mentor.Name != "" {
		fmt.Fprintf(&b, "Remember %s's motto: %q\n", in.Mentor.Name, in.Mentor.Motto)
		fmt.Fprintf(&b, "Keep exploring, and ask %s whenever you get stuck!", in.Mentor.Name)
	} else {
		b.WriteString("Keep exploring, and come back whenever you get stuck!")
	}
	return b.String()
}

func tierComment(t aptitude.Tier) string {
	switch t {
	case aptitude.TierStrong:
		return "Your reasoning skills are excellent. Challenging, analytical paths will suit you well."
	case aptitude.TierSolid:
		return "You have a solid foundation. Regular practice will sharpen your problem solving even further."
	default:
		return "Every expert starts somewhere. Build your confidence with small daily puzzles and practice."
	}
}

func firstN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
