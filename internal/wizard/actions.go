package wizard

import (
	"time"

	"github.com/abhisek/dreamteacher/internal/mentor"
)

// Action is an input to Reduce. The set of actions is closed.
type Action interface {
	isAction()
}

// StartMentor begins mentor creation from the hero step.
type StartMentor struct {
	Description string
	StudentName string
	QuoteIndex  int
}

// MentorReady delivers the built profile.
type MentorReady struct {
	Profile  *mentor.Profile
	Fallback bool
}

// Navigate moves between steps without side effects.
type Navigate struct {
	To Step
}

// AnswerQuestion records the chosen option for a question.
type AnswerQuestion struct {
	Question int
	Option   int
}

// ToggleInterest flips membership of Tag.
type ToggleInterest struct {
	Tag string
}

// StartGuidance submits the study style and begins guidance generation.
type StartGuidance struct {
	StudyStyle string
	QuoteIndex int
}

// GuidanceReady delivers generated guidance.
type GuidanceReady struct {
	Text     string
	Fallback bool
}

// SendMessage appends the student's message and starts composing.
type SendMessage struct {
	ID   string
	Text string
	At   time.Time
}

// ReplyReceived appends the mentor reply, or the apology when Failed.
type ReplyReceived struct {
	ID     string
	Text   string
	Failed bool
	At     time.Time
}

// SubmitFeedback records the sentiment and ends the wizard.
type SubmitFeedback struct {
	Sentiment Sentiment
}

// Restart discards the session.
type Restart struct{}

func (StartMentor) isAction()    {}
func (MentorReady) isAction()    {}
func (Navigate) isAction()       {}
func (AnswerQuestion) isAction() {}
func (ToggleInterest) isAction() {}
func (StartGuidance) isAction()  {}
func (GuidanceReady) isAction()  {}
func (SendMessage) isAction()    {}
func (ReplyReceived) isAction()  {}
func (SubmitFeedback) isAction() {}
func (Restart) isAction()        {}
