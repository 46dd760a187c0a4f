package llm

import (
	"context"
	"encoding/json"
	"net/http"
)

// Provider is the core abstraction for completion model interaction.
type Provider interface {
	// Generate sends a prompt to the model and returns its output.
	// When the request carries a Schema the provider uses its native
	// structured output mechanism and the response Content is validated
	// JSON. Without a Schema, Content holds the raw reply text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Carries the mentor persona.
	System string

	// Messages is the conversation. Mentor chat sends prior turns as
	// alternating user/assistant messages followed by the new question.
	Messages []Message

	// Schema is the JSON Schema the response must conform to.
	// When nil, the response Content is raw text as json.RawMessage.
	Schema *Schema

	// MaxTokens bounds the reply length.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Zero leaves the provider default in place.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema (used as schema name for OpenAI and as
	// the compile cache key). Kebab-case, e.g. "mentor-profile".
	Name string

	// Description is a human-readable description of what this schema
	// represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Text returns Content as a string.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return string(r.Content)
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// finish builds the Response shared by every provider. A structured reply
// that was cut off is rejected before validation; a complete one must match
// its schema.
func finish(req Request, content json.RawMessage, truncated bool, usage Usage, model string) (*Response, error) {
	stop := "end"
	if truncated {
		stop = "max_tokens"
	}
	if req.Schema != nil {
		if truncated {
			return nil, &ErrMaxTokensExceeded{Content: content}
		}
		var err error
		if content, err = decodeStructured(req.Schema, content); err != nil {
			return nil, err
		}
	}
	return &Response{Content: content, Usage: usage, Model: model, StopReason: stop}, nil
}

// classifyStatus maps an SDK error carrying an HTTP status to a typed error.
// status is zero when the SDK error had none.
func classifyStatus(status int, err error) error {
	if status == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}
