package wizard

import (
	"context"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/dreamteacher/internal/aptitude"
	"github.com/abhisek/dreamteacher/internal/gateway"
	"github.com/abhisek/dreamteacher/internal/guidance"
	"github.com/abhisek/dreamteacher/internal/logging"
	"github.com/abhisek/dreamteacher/internal/mentor"
)

// Effect performs the slow part of an operation off the event loop and
// returns the action to Apply with its result. Effects capture their
// inputs when created and never read engine state.
type Effect func(ctx context.Context) Action

// MentorBuilder produces a mentor profile for a description.
type MentorBuilder interface {
	Build(ctx context.Context, description, studentName string, seed uint64) mentor.Result
}

// Deps are the collaborators of an Engine.
type Deps struct {
	Mentors  MentorBuilder
	Guidance guidance.Generator
	Chat     gateway.Completer

	// Seed drives quote selection and local mentor derivation.
	Seed  uint64
	Clock func() time.Time
	NewID func() string
	Log   *logging.Logger
}

// Engine owns a wizard session. It is not safe for concurrent use; call
// it from one goroutine and run Effects elsewhere.
type Engine struct {
	state State
	rng   *rand.Rand

	mentors  MentorBuilder
	guidance guidance.Generator
	chat     gateway.Completer

	clock func() time.Time
	newID func() string
	log   *logging.Logger
}

// NewEngine creates an Engine at the initial state.
func NewEngine(d Deps) *Engine {
	if d.Chat == nil {
		d.Chat = gateway.Offline{}
	}
	if d.Mentors == nil {
		d.Mentors = mentor.NewBuilder(mentor.SourceLLM, d.Chat, d.Log)
	}
	if d.Guidance == nil {
		d.Guidance = guidance.Template{}
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}
	if d.NewID == nil {
		d.NewID = uuid.NewString
	}
	if d.Log == nil {
		d.Log = logging.Nop()
	}
	return &Engine{
		state:    Initial(),
		rng:      rand.New(rand.NewPCG(d.Seed, d.Seed^0xda3e39cb94b95bdb)),
		mentors:  d.Mentors,
		guidance: d.Guidance,
		chat:     d.Chat,
		clock:    d.Clock,
		newID:    d.NewID,
		log:      d.Log,
	}
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	return e.state.Clone()
}

// Apply reduces a into the current state.
func (e *Engine) Apply(a Action) error {
	if r, ok := a.(ReplyReceived); ok && r.At.IsZero() {
		r.At = e.clock()
		a = r
	}
	next, err := Reduce(e.state, a)
	if err != nil {
		e.log.Debug("wizard action rejected", "action", actionName(a), "step", e.state.Step, "error", err)
		return err
	}
	if next.Step != e.state.Step {
		e.log.Debug("wizard step", "from", e.state.Step, "to", next.Step)
	}
	e.state = next
	return nil
}

// CreateMentor validates the inputs, enters the loading state and returns
// the effect that builds the profile.
func (e *Engine) CreateMentor(description, studentName string) (Effect, error) {
	if _, err := Reduce(e.state, StartMentor{Description: description, StudentName: studentName}); err != nil {
		return nil, err
	}
	quote := e.rng.IntN(QuoteCount())
	seed := e.rng.Uint64()
	if err := e.Apply(StartMentor{Description: description, StudentName: studentName, QuoteIndex: quote}); err != nil {
		return nil, err
	}

	desc, name := e.state.MentorDescription, e.state.StudentName
	mentors := e.mentors
	return func(ctx context.Context) Action {
		res := mentors.Build(ctx, desc, name, seed)
		return MentorReady{Profile: res.Profile, Fallback: res.Fallback}
	}, nil
}

// RecordAptitudeAnswer stores the option chosen for a question,
// overwriting any earlier choice.
func (e *Engine) RecordAptitudeAnswer(question, option int) error {
	return e.Apply(AnswerQuestion{Question: question, Option: option})
}

// ToggleInterest flips membership of tag.
func (e *Engine) ToggleInterest(tag string) error {
	return e.Apply(ToggleInterest{Tag: tag})
}

// Navigate performs a transition that has no side effects.
func (e *Engine) Navigate(to Step) error {
	return e.Apply(Navigate{To: to})
}

// RequestGuidance records the study style, scores the quiz and returns
// the effect that generates guidance.
func (e *Engine) RequestGuidance(studyStyle string) (Effect, error) {
	if _, err := Reduce(e.state, StartGuidance{StudyStyle: studyStyle}); err != nil {
		return nil, err
	}
	quote := e.rng.IntN(QuoteCount())
	if err := e.Apply(StartGuidance{StudyStyle: studyStyle, QuoteIndex: quote}); err != nil {
		return nil, err
	}

	s := e.state
	in := guidance.Input{
		StudentName: s.StudentName,
		Interests:   slices.Clone(s.Interests),
		StudyStyle:  s.StudyStyle,
		Score:       s.Score,
		Total:       aptitude.Count(),
		Mentor:      s.Mentor.Clone(),
	}
	gen := e.guidance
	return func(ctx context.Context) Action {
		res := gen.Generate(ctx, in)
		return GuidanceReady{Text: res.Text, Fallback: res.Fallback}
	}, nil
}

// SendChatMessage appends the student's message and returns the effect
// that asks the mentor for a reply. A second send is refused with ErrBusy
// until the reply has been applied.
func (e *Engine) SendChatMessage(text string) (Effect, error) {
	history := e.state.Chat
	if err := e.Apply(SendMessage{ID: e.newID(), Text: text, At: e.clock()}); err != nil {
		return nil, err
	}

	s := e.state
	score := aptitude.Score(s.Answers)
	req := gateway.Request{
		Kind:          gateway.KindChat,
		Message:       strings.TrimSpace(text),
		MentorProfile: s.Mentor.Persona(),
		StudentName:   s.StudentName,
		Context: gateway.StudentContext{
			Interests:     slices.Clone(s.Interests),
			StudyStyle:    s.StudyStyle,
			AptitudeScore: &score,
		},
		ChatHistory: turns(history),
	}
	replyID := e.newID()
	chat, log := e.chat, e.log
	return func(ctx context.Context) Action {
		reply, err := chat.Complete(ctx, req)
		if err != nil {
			log.Warn("mentor reply failed", "error", err)
			return ReplyReceived{ID: replyID, Failed: true}
		}
		return ReplyReceived{ID: replyID, Text: reply}
	}, nil
}

// SubmitFeedback records the student's verdict and ends the wizard.
func (e *Engine) SubmitFeedback(sentiment Sentiment) error {
	return e.Apply(SubmitFeedback{Sentiment: sentiment})
}

// Restart discards the session. It is refused until feedback has been
// submitted.
func (e *Engine) Restart() error {
	return e.Apply(Restart{})
}

func turns(log []ChatMessage) []gateway.Turn {
	if len(log) == 0 {
		return nil
	}
	out := make([]gateway.Turn, len(log))
	for i, m := range log {
		role := "assistant"
		if m.Role == RoleUser {
			role = "user"
		}
		out[i] = gateway.Turn{Role: role, Content: m.Content}
	}
	return out
}

func actionName(a Action) string {
	switch a.(type) {
	case StartMentor:
		return "start_mentor"
	case MentorReady:
		return "mentor_ready"
	case Navigate:
		return "navigate"
	case AnswerQuestion:
		return "answer"
	case ToggleInterest:
		return "toggle_interest"
	case StartGuidance:
		return "start_guidance"
	case GuidanceReady:
		return "guidance_ready"
	case SendMessage:
		return "send_message"
	case ReplyReceived:
		return "reply_received"
	case SubmitFeedback:
		return "submit_feedback"
	case Restart:
		return "restart"
	}
	return "unknown"
}
