package llm

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/abhisek/dreamteacher/internal/logging"
	"github.com/abhisek/dreamteacher/internal/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingRepo struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
	return r.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Content: []byte("hello student"), Usage: Usage{InputTokens: 12, OutputTokens: 3}})
	p := WithLogging(mock, "mock", repo, nil)

	ctx := WithPurpose(context.Background(), "mentor-chat")
	_, err := p.Generate(ctx, Request{
		System:   "persona",
		Messages: []Message{{Role: RoleUser, Content: "question"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Purpose != "mentor-chat" || !e.Success || e.InputTokens != 12 || e.Provider != "mock" {
		t.Fatalf("unexpected event %+v", e)
	}
	if !strings.Contains(e.RequestBody, "[system]\npersona") || !strings.Contains(e.RequestBody, "[user]\nquestion") {
		t.Fatalf("unexpected request body %q", e.RequestBody)
	}
	if e.ResponseBody != "hello student" {
		t.Fatalf("unexpected response body %q", e.ResponseBody)
	}
}

func TestLogging_RecordsFailureAndWarns(t *testing.T) {
	repo := &recordingRepo{}
	core, logs := observer.New(zap.DebugLevel)
	mock := NewMockProvider(MockResponse{Err: errors.New("boom")})
	p := WithLogging(mock, "mock", repo, logging.FromZap(zap.New(core)))

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(repo.events) != 1 || repo.events[0].Success || repo.events[0].ErrorMessage != "boom" {
		t.Fatalf("unexpected events %+v", repo.events)
	}
	if logs.FilterMessage("completion failed").Len() != 1 {
		t.Fatalf("expected a warning log entry, got %d entries", logs.Len())
	}
}

func TestLogging_RepoErrorDoesNotFailRequest(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	mock := NewMockProvider(TextResponse("ok"))
	p := WithLogging(mock, "mock", repo, nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("repo failure leaked into request: %v", err)
	}
}

func TestLogging_NilRepo(t *testing.T) {
	p := WithLogging(NewMockProvider(TextResponse("ok")), "mock", nil, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
