package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"soundcheck/internal/adapters/summarize/openai"
)

func newClient(t *testing.T, handler http.HandlerFunc) *openai.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return openai.New(openai.Options{
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	})
}

func chatCompletion(content string) map[string]any {
	return map[string]any{
		"id":     "chatcmpl-1",
		"object": "chat.completion",
		"model":  "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			},
		},
	}
}

func TestSummarizeOK(t *testing.T) {
	var gotBody map[string]any
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatCompletion("  a condensed answer "))
	})

	out, err := c.Summarize(context.Background(), "a very long answer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a condensed answer" {
		t.Fatalf("summary = %q", out)
	}
	if gotBody["model"] != "gpt-4o-mini" {
		t.Fatalf("model = %v", gotBody["model"])
	}
	msgs, _ := gotBody["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("want system+user messages, got %d", len(msgs))
	}
	user, _ := msgs[1].(map[string]any)
	if user["content"] != "a very long answer" {
		t.Fatalf("user content = %v", user["content"])
	}
}

func TestSummarizeEmptyInputSkipsNetwork(t *testing.T) {
	called := false
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	out, err := c.Summarize(context.Background(), "  ")
	if err != nil || out != "" {
		t.Fatalf("got (%q, %v)", out, err)
	}
	if called {
		t.Fatalf("empty input must not hit the network")
	}
}

func TestSummarizeServerErrorSurfaces(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusServiceUnavailable)
	})
	if _, err := c.Summarize(context.Background(), "text"); err == nil {
		t.Fatalf("expected error on 503")
	}
}

func TestSummarizeNoChoices(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "chatcmpl-2", "object": "chat.completion", "choices": []any{},
		})
	})
	if _, err := c.Summarize(context.Background(), "text"); err == nil {
		t.Fatalf("expected error on empty choices")
	}
}
