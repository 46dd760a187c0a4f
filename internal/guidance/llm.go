package guidance

import (
	"context"

	"github.com/abhisek/dreamteacher/internal/gateway"
	"github.com/abhisek/dreamteacher/internal/logging"
)

// LLM asks the gateway to write guidance and falls back to the template.
type LLM struct {
	completer gateway.Completer
	log       *logging.Logger
}

// NewLLM creates an LLM generator.
func NewLLM(completer gateway.Completer, log *logging.Logger) *LLM {
	if completer == nil {
		completer = gateway.Offline{}
	}
	if log == nil {
		log = logging.Nop()
	}
	return &LLM{completer: completer, log: log}
}

func (g *LLM) Generate(ctx context.Context, in Input) Result {
	score := in.Score
	req := gateway.Request{
		Kind:        gateway.KindGuidance,
		Message:     "Give me personalized career guidance based on my aptitude, interests and learning style.",
		StudentName: in.StudentName,
		Context: gateway.StudentContext{
			Interests:     in.Interests,
			StudyStyle:    in.StudyStyle,
			CareerPath:    careerPath(in.Interests),
			AptitudeScore: &score,
		},
	}
	if in.Mentor != nil {
		req.MentorProfile = in.Mentor.Persona()
	}

	text, err := g.completer.Complete(ctx, req)
	if err != nil {
		g.log.Warn("guidance generation failed, using template", "error", err)
		return Result{Text: Render(in), Fallback: true}
	}
	return Result{Text: text}
}

// careerPath names the career area of the first interest.
func careerPath(interests []string) string {
	if len(interests) == 0 {
		return ""
	}
	label, _ := CareersFor(interests[0])
	return label
}
