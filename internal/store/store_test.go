package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.db")
	s1, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	s2.Close()
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "chat", InputTokens: 100, OutputTokens: 40, LatencyMs: 200, Success: true, RequestBody: "[user]\nhi", ResponseBody: "hello"},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "mentor-profile", InputTokens: 300, OutputTokens: 120, LatencyMs: 800, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "chat", LatencyMs: 30000, Success: false, ErrorMessage: "deadline exceeded"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	if all[0].ErrorMessage != "deadline exceeded" {
		t.Errorf("expected newest first, got %+v", all[0])
	}
	if !all[0].Timestamp.Equal(fixed) {
		t.Errorf("timestamp = %v, want %v", all[0].Timestamp, fixed)
	}

	chats, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "chat", Limit: 1})
	if err != nil {
		t.Fatalf("query chat: %v", err)
	}
	if len(chats) != 1 || chats[0].Purpose != "chat" {
		t.Fatalf("expected one chat event, got %+v", chats)
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "guidance",
		Success: true, RequestBody: "req", ResponseBody: "resp",
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	e, err := repo.GetLLMEvent(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event 1")
	}
	if e.RequestBody != "req" || e.ResponseBody != "resp" || !e.Success {
		t.Errorf("unexpected event: %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 99)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Model: "gpt-4o-mini", Purpose: "chat", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true},
		{Model: "gpt-4o-mini", Purpose: "chat", InputTokens: 20, OutputTokens: 15, LatencyMs: 300, Success: true},
		{Model: "gpt-4o-mini", Purpose: "chat", LatencyMs: 200, Success: false},
		{Model: "gpt-4o", Purpose: "guidance", InputTokens: 50, OutputTokens: 60, LatencyMs: 400, Success: true},
	}
	for _, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	chat := byPurpose[0]
	if chat.Purpose != "chat" || chat.Calls != 3 || chat.Failures != 1 {
		t.Errorf("unexpected chat usage: %+v", chat)
	}
	if chat.InputTokens != 30 || chat.OutputTokens != 20 || chat.AvgLatencyMs != 200 {
		t.Errorf("unexpected chat totals: %+v", chat)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 models, got %d", len(byModel))
	}
	if byModel[1].Model != "gpt-4o-mini" || byModel[1].Calls != 2 {
		t.Errorf("failed calls should not count toward model usage: %+v", byModel[1])
	}
}

func TestDefaultDBPathFromEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "x.db")
	t.Setenv("DREAMTEACHER_DB", p)
	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != p {
		t.Errorf("got %q, want %q", got, p)
	}
}

func TestDefaultDBPathXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DREAMTEACHER_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	want := filepath.Join(dir, "dreamteacher", "dreamteacher.db")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
