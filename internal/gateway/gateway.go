// Package gateway turns a mentor request into a single completion call and
// returns the generated text.
//
// Every implementation collapses failures (transport, non-2xx status,
// timeout, malformed structured output) into ErrUnavailable. Callers must
// supply their own fallback value; details are only logged.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnavailable is the single failure signal returned to callers.
	ErrUnavailable = errors.New("completion unavailable")

	// ErrInvalidRequest means the request was rejected before any call
	// was made, for example because the message is blank.
	ErrInvalidRequest = errors.New("invalid completion request")
)

// FallbackReply is the body the HTTP surface returns on failure.
const FallbackReply = "Oops, something went wrong. Try again!"

// Kind selects the prompt family for a request.
type Kind string

const (
	KindChat     Kind = "chat"
	KindProfile  Kind = "profile"
	KindGuidance Kind = "guidance"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindChat, KindProfile, KindGuidance:
		return true
	}
	return false
}

// Persona carries the mentor profile fields used in the prompt preamble.
type Persona struct {
	Name          string   `json:"name"`
	Personality   string   `json:"personality"`
	Subjects      []string `json:"subjects"`
	Motto         string   `json:"motto,omitempty"`
	TeachingStyle string   `json:"teachingStyle,omitempty"`
}

// StudentContext carries derived facts about the student.
type StudentContext struct {
	Interests  []string `json:"interests"`
	StudyStyle string   `json:"studyStyle"`
	CareerPath string   `json:"careerPath,omitempty"`
	// AptitudeScore wins over AptitudeResults when both are present.
	AptitudeScore   *int  `json:"aptitudeScore,omitempty"`
	AptitudeResults []int `json:"aptitudeResults,omitempty"`
}

// Turn is one prior chat message.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// IsStudent reports whether the turn was written by the student.
func (t Turn) IsStudent() bool {
	return strings.EqualFold(t.Role, "user")
}

// Request is the gateway input. Its JSON shape is the POST /api/chat body.
type Request struct {
	Kind          Kind           `json:"kind,omitempty"`
	Message       string         `json:"message"`
	MentorProfile Persona        `json:"mentorProfile"`
	StudentName   string         `json:"studentName"`
	Context       StudentContext `json:"context"`
	ChatHistory   []Turn         `json:"chatHistory,omitempty"`
}

// Normalize fills defaults. An empty kind means chat.
func (r Request) Normalize() Request {
	if r.Kind == "" {
		r.Kind = KindChat
	}
	return r
}

// Validate checks the request can be sent.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidRequest)
	}
	if !r.Kind.Valid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidRequest, r.Kind)
	}
	return nil
}

// reject wraps a validation error so callers still see ErrUnavailable.
// errors.Is(err, ErrInvalidRequest) stays true for the HTTP surface.
func reject(err error) error {
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

// Completer is anything that can answer a Request with generated text.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Offline is a Completer for when no provider is configured. Every call
// fails, so callers take their fallback path.
type Offline struct{}

func (Offline) Complete(context.Context, Request) (string, error) {
	return "", ErrUnavailable
}
