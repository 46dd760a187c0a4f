// Package wizard holds the guided session state and its transitions.
//
// Reduce is a pure function from (State, Action) to State. Engine owns the
// current State, runs the operations that start gateway work and applies
// the actions those effects return.
package wizard

import (
	"errors"
	"slices"
	"time"

	"github.com/abhisek/dreamteacher/internal/aptitude"
	"github.com/abhisek/dreamteacher/internal/mentor"
)

// Step is a wizard view.
type Step string

const (
	StepHero          Step = "hero"
	StepMentorProfile Step = "mentorProfile"
	StepChat          Step = "chat"
	StepAptitude      Step = "aptitude"
	StepInterests     Step = "interests"
	StepStudyStyle    Step = "studyStyle"
	StepGuidance      Step = "guidance"
	StepFeedback      Step = "feedback"
)

// Steps lists every step in wizard order.
func Steps() []Step {
	return []Step{
		StepHero, StepMentorProfile, StepChat, StepAptitude,
		StepInterests, StepStudyStyle, StepGuidance, StepFeedback,
	}
}

var (
	ErrIllegalTransition = errors.New("illegal transition")
	ErrBlankInput        = errors.New("required input is blank")
	ErrOutOfRange        = errors.New("index out of range")
	ErrBusy              = errors.New("operation already in progress")
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser   Role = "user"
	RoleMentor Role = "mentor"
)

// ChatMessage is one entry in the chat log.
type ChatMessage struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time
}

// Sentiment is the student's verdict on the guidance.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
)

// Valid reports whether s is a known sentiment.
func (s Sentiment) Valid() bool {
	return s == SentimentPositive || s == SentimentNegative
}

// Apology is appended in place of a mentor reply when chat fails.
const Apology = "Sorry, I cannot respond right now."

// State is one wizard session.
type State struct {
	Step Step

	StudentName       string
	MentorDescription string
	Mentor            *mentor.Profile
	MentorFallback    bool

	Chat      []ChatMessage
	Composing bool

	// Answers has one slot per catalog question, aptitude.Unanswered
	// until chosen.
	Answers []int
	// Interests is kept sorted so toggling is an exact inverse.
	Interests  []string
	StudyStyle string
	Score      int

	Guidance         string
	GuidanceFallback bool
	Feedback         Sentiment

	Loading    bool
	QuoteIndex int
}

// Initial returns the empty session.
func Initial() State {
	return State{
		Step:    StepHero,
		Answers: aptitude.NewAnswerSheet(),
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := s
	c.Mentor = s.Mentor.Clone()
	c.Chat = slices.Clone(s.Chat)
	c.Answers = slices.Clone(s.Answers)
	c.Interests = slices.Clone(s.Interests)
	return c
}

// HasInterest reports whether tag is selected.
func (s State) HasInterest(tag string) bool {
	_, found := slices.BinarySearch(s.Interests, tag)
	return found
}

// AnsweredCount returns how many questions have an answer.
func (s State) AnsweredCount() int {
	n := 0
	for _, a := range s.Answers {
		if a != aptitude.Unanswered {
			n++
		}
	}
	return n
}

// LoadingHeadline is the text shown while Loading is set.
func (s State) LoadingHeadline() string {
	if s.Step == StepHero {
		return "Summoning your dream mentor..."
	}
	return "Analyzing your responses..."
}

// Quote returns the motivational quote picked for the current load.
func (s State) Quote() string {
	return quoteAt(s.QuoteIndex)
}
