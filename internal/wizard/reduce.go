package wizard

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/abhisek/dreamteacher/internal/aptitude"
	"github.com/abhisek/dreamteacher/internal/mentor"
)

// Reduce returns the state after applying a. On error the input state is
// returned unchanged. s is never modified.
func Reduce(s State, a Action) (State, error) {
	var (
		next State
		err  error
	)
	switch a := a.(type) {
	case StartMentor:
		next, err = startMentor(s, a)
	case MentorReady:
		next, err = mentorReady(s, a)
	case Navigate:
		next, err = navigate(s, a.To)
	case AnswerQuestion:
		next, err = answer(s, a)
	case ToggleInterest:
		next, err = toggleInterest(s, a.Tag)
	case StartGuidance:
		next, err = startGuidance(s, a)
	case GuidanceReady:
		next, err = guidanceReady(s, a)
	case SendMessage:
		next, err = sendMessage(s, a)
	case ReplyReceived:
		next, err = replyReceived(s, a)
	case SubmitFeedback:
		next, err = submitFeedback(s, a.Sentiment)
	case Restart:
		next, err = restart(s)
	default:
		err = fmt.Errorf("%w: unknown action %T", ErrIllegalTransition, a)
	}
	if err != nil {
		return s, err
	}
	return next, nil
}

func illegal(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIllegalTransition, fmt.Sprintf(format, args...))
}

func startMentor(s State, a StartMentor) (State, error) {
	if s.Step != StepHero {
		return s, illegal("create mentor from %s", s.Step)
	}
	if s.Loading {
		return s, ErrBusy
	}
	desc := strings.TrimSpace(a.Description)
	name := strings.TrimSpace(a.StudentName)
	if desc == "" || name == "" {
		return s, ErrBlankInput
	}
	next := s.Clone()
	next.MentorDescription = desc
	next.StudentName = name
	next.Loading = true
	next.QuoteIndex = a.QuoteIndex
	return next, nil
}

func mentorReady(s State, a MentorReady) (State, error) {
	if s.Step != StepHero || !s.Loading {
		return s, illegal("mentor delivered outside mentor creation")
	}
	next := s.Clone()
	next.Loading = false
	next.Mentor = a.Profile.Clone()
	next.MentorFallback = a.Fallback
	if !next.Mentor.Valid() {
		next.Mentor = mentor.Default()
		next.MentorFallback = true
	}
	next.Step = StepMentorProfile
	return next, nil
}

type edge struct{ from, to Step }

var edges = map[edge]bool{
	{StepMentorProfile, StepChat}:     true,
	{StepMentorProfile, StepAptitude}: true,
	{StepChat, StepAptitude}:          true,
	{StepChat, StepMentorProfile}:     true,
	{StepAptitude, StepChat}:          true,
	{StepAptitude, StepInterests}:     true,
	{StepInterests, StepAptitude}:     true,
	{StepInterests, StepStudyStyle}:   true,
	{StepStudyStyle, StepInterests}:   true,
	{StepGuidance, StepChat}:          true,
}

// CanNavigate reports whether Navigate{To: to} would succeed from s.
func CanNavigate(s State, to Step) bool {
	_, err := navigate(s, to)
	return err == nil
}

func navigate(s State, to Step) (State, error) {
	if !edges[edge{s.Step, to}] {
		return s, illegal("%s -> %s", s.Step, to)
	}
	if s.Loading || s.Composing {
		return s, ErrBusy
	}
	switch to {
	case StepChat, StepAptitude, StepGuidance:
		if s.Mentor == nil {
			return s, illegal("%s requires a mentor", to)
		}
	}
	if s.Step == StepAptitude && to == StepInterests && !aptitude.Complete(s.Answers) {
		return s, illegal("answer every question before continuing")
	}
	if s.Step == StepInterests && to == StepStudyStyle && len(s.Interests) == 0 {
		return s, illegal("select at least one interest")
	}
	next := s.Clone()
	next.Step = to
	return next, nil
}

func answer(s State, a AnswerQuestion) (State, error) {
	if s.Step != StepAptitude {
		return s, illegal("answer outside aptitude")
	}
	if !aptitude.ValidAnswer(a.Question, a.Option) {
		return s, fmt.Errorf("%w: question %d option %d", ErrOutOfRange, a.Question, a.Option)
	}
	next := s.Clone()
	if len(next.Answers) != aptitude.Count() {
		sheet := aptitude.NewAnswerSheet()
		copy(sheet, next.Answers)
		next.Answers = sheet
	}
	next.Answers[a.Question] = a.Option
	return next, nil
}

func toggleInterest(s State, tag string) (State, error) {
	if s.Step != StepInterests {
		return s, illegal("toggle interest outside interests")
	}
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return s, ErrBlankInput
	}
	next := s.Clone()
	if i, found := slices.BinarySearch(next.Interests, tag); found {
		next.Interests = slices.Delete(next.Interests, i, i+1)
	} else {
		next.Interests = slices.Insert(next.Interests, i, tag)
	}
	if len(next.Interests) == 0 {
		next.Interests = nil
	}
	return next, nil
}

func startGuidance(s State, a StartGuidance) (State, error) {
	if s.Step != StepStudyStyle {
		return s, illegal("guidance from %s", s.Step)
	}
	if s.Loading {
		return s, ErrBusy
	}
	if s.Mentor == nil {
		return s, illegal("guidance requires a mentor")
	}
	style := strings.TrimSpace(a.StudyStyle)
	if style == "" {
		return s, ErrBlankInput
	}
	next := s.Clone()
	next.StudyStyle = style
	next.Score = aptitude.Score(next.Answers)
	next.Loading = true
	next.QuoteIndex = a.QuoteIndex
	return next, nil
}

func guidanceReady(s State, a GuidanceReady) (State, error) {
	if s.Step != StepStudyStyle || !s.Loading {
		return s, illegal("guidance delivered outside guidance generation")
	}
	next := s.Clone()
	next.Loading = false
	next.Guidance = a.Text
	next.GuidanceFallback = a.Fallback
	next.Step = StepGuidance
	return next, nil
}

func sendMessage(s State, a SendMessage) (State, error) {
	if s.Step != StepChat || s.Mentor == nil {
		return s, illegal("send outside chat")
	}
	if s.Composing {
		return s, ErrBusy
	}
	text := strings.TrimSpace(a.Text)
	if text == "" {
		return s, ErrBlankInput
	}
	next := s.Clone()
	next.Chat = appendMessage(next.Chat, ChatMessage{ID: a.ID, Role: RoleUser, Content: text, Timestamp: a.At})
	next.Composing = true
	return next, nil
}

func replyReceived(s State, a ReplyReceived) (State, error) {
	if !s.Composing {
		return s, illegal("reply without a pending message")
	}
	content := strings.TrimSpace(a.Text)
	if a.Failed || content == "" {
		content = Apology
	}
	next := s.Clone()
	next.Chat = appendMessage(next.Chat, ChatMessage{ID: a.ID, Role: RoleMentor, Content: content, Timestamp: a.At})
	next.Composing = false
	return next, nil
}

// appendMessage keeps timestamps strictly increasing.
func appendMessage(log []ChatMessage, m ChatMessage) []ChatMessage {
	if n := len(log); n > 0 {
		last := log[n-1].Timestamp
		if !m.Timestamp.After(last) {
			m.Timestamp = last.Add(time.Nanosecond)
		}
	}
	return append(log, m)
}

// restart is only legal once feedback is in. Every effect has been applied
// by then, so no result from the old session can land in the new one.
func restart(s State) (State, error) {
	if s.Step != StepFeedback {
		return s, illegal("restart from %s", s.Step)
	}
	return Initial(), nil
}

func submitFeedback(s State, sentiment Sentiment) (State, error) {
	if s.Step != StepGuidance || s.Feedback != "" {
		return s, illegal("feedback from %s", s.Step)
	}
	if !sentiment.Valid() {
		return s, fmt.Errorf("%w: sentiment %q", ErrOutOfRange, sentiment)
	}
	next := s.Clone()
	next.Feedback = sentiment
	next.Step = StepFeedback
	return next, nil
}
