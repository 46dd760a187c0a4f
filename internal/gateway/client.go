package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/abhisek/dreamteacher/internal/logging"
)

// ChatPath is the route served by Handler.
const ChatPath = "/api/chat"

// ChatReply is the JSON body of a chat response.
type ChatReply struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

// Client calls a remote gateway over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logging.Logger
}

// NewClient creates a Client for the gateway at baseURL.
func NewClient(baseURL string, timeout time.Duration, log *logging.Logger) *Client {
	if log == nil {
		log = logging.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Complete posts req to the gateway. Any non-200 status, transport error,
// or empty reply yields ErrUnavailable. Underlying errors are flattened to
// text and never exposed as types.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return "", reject(err)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", ErrUnavailable, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ChatPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Warn("gateway request failed", "kind", req.Kind, "error", err)
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Warn("gateway returned error status", "kind", req.Kind, "status", resp.StatusCode)
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var reply ChatReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return "", fmt.Errorf("%w: decode reply: %v", ErrUnavailable, err)
	}
	text := strings.TrimSpace(reply.Response)
	if text == "" {
		return "", fmt.Errorf("%w: empty reply", ErrUnavailable)
	}
	return text, nil
}
