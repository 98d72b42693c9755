package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func userMessage(text string) []ChatMessage {
	return []ChatMessage{{Role: RoleUser, Content: text}}
}

func TestOpenRouterCall_MissingKey(t *testing.T) {
	o := NewOpenRouter("", "")
	_, err := o.Call(context.Background(), "gpt-4o", userMessage("hi"))

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestOpenRouterCall_AltKeyFallback(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{"content": "ok"}},
			},
		})
	}))
	defer srv.Close()

	o := NewOpenRouter("", "alt-key")
	o.BaseURL = srv.URL

	if _, err := o.Call(context.Background(), "gpt-4o", userMessage("hi")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer alt-key" {
		t.Errorf("expected alternate key in Authorization header, got %q", gotAuth)
	}
}

func TestOpenRouterCall_Passthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body chatRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		if body.Model != "deepseek/deepseek-chat" {
			t.Errorf("model forwarded as %q", body.Model)
		}
		if body.Stream {
			t.Error("streaming must be disabled")
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id": "resp-1",
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{"content": "hello there"}},
			},
			"usage": map[string]interface{}{"total_tokens": 42},
		})
	}))
	defer srv.Close()

	o := NewOpenRouter("key", "")
	o.BaseURL = srv.URL

	resp, err := o.Call(context.Background(), "deepseek/deepseek-chat", userMessage("hi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Normalized {
		t.Error("openrouter responses must be raw passthrough")
	}
	if resp.Raw["id"] != "resp-1" {
		t.Errorf("raw envelope was not preserved: %v", resp.Raw)
	}
	if resp.Usage.TotalTokens() != 42 {
		t.Errorf("expected 42 total tokens, got %d", resp.Usage.TotalTokens())
	}
	if got := resp.ExtractContent(); got != "hello there" {
		t.Errorf("ExtractContent() = %q", got)
	}
}

func TestOpenRouterCall_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer srv.Close()

	o := NewOpenRouter("key", "")
	o.BaseURL = srv.URL

	_, err := o.Call(context.Background(), "gpt-4o", userMessage("hi"))
	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upErr.Status != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", upErr.Status)
	}
	if !strings.Contains(upErr.Body, "rate limited") {
		t.Errorf("body not surfaced: %q", upErr.Body)
	}
	if !strings.Contains(upErr.Error(), "API error: 429") {
		t.Errorf("unexpected error text: %q", upErr.Error())
	}
}

func TestMiniMaxCall_NormalizesChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("GroupId"); got != "group-7" {
			t.Errorf("expected GroupId query param, got %q", got)
		}
		var body chatRequest
		json.NewDecoder(r.Body).Decode(&body)
		if body.Model != "MiniMax-M1" {
			t.Errorf("expected resolved model MiniMax-M1, got %q", body.Model)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{"content": "normalized"}},
			},
			"usage": map[string]interface{}{"total_tokens": 10},
		})
	}))
	defer srv.Close()

	m := NewMiniMax("key", "group-7")
	m.BaseURL = srv.URL

	resp, err := m.Call(context.Background(), "minimax/MiniMax-M1", userMessage("hi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Normalized {
		t.Error("minimax responses must be normalized")
	}
	if resp.Content != "normalized" {
		t.Errorf("expected content %q, got %q", "normalized", resp.Content)
	}
}

func TestMiniMaxCall_ReplyFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"reply": "from reply field"})
	}))
	defer srv.Close()

	m := NewMiniMax("key", "")
	m.BaseURL = srv.URL

	resp, err := m.Call(context.Background(), "minimax/MiniMax-M1", userMessage("hi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "from reply field" {
		t.Errorf("expected reply fallback, got %q", resp.Content)
	}
}

func TestMiniMaxCall_DumpsUnknownEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"base_resp": map[string]interface{}{"status_code": 0}})
	}))
	defer srv.Close()

	m := NewMiniMax("key", "")
	m.BaseURL = srv.URL

	resp, err := m.Call(context.Background(), "minimax/MiniMax-M1", userMessage("hi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resp.Content, "base_resp") {
		t.Errorf("expected JSON dump of envelope, got %q", resp.Content)
	}
}

func TestMiniMaxCall_MissingKey(t *testing.T) {
	m := NewMiniMax("", "")
	_, err := m.Call(context.Background(), "minimax/MiniMax-M1", userMessage("hi"))

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestChutesCall_Passthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body chatRequest
		json.NewDecoder(r.Body).Decode(&body)
		if body.Model != "deepseek-ai/DeepSeek-R1" {
			t.Errorf("expected resolved model, got %q", body.Model)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{"content": "chutes says hi"}},
			},
		})
	}))
	defer srv.Close()

	c := NewChutes("key")
	c.BaseURL = srv.URL

	resp, err := c.Call(context.Background(), "deepseek-r1", userMessage("hi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Normalized {
		t.Error("chutes responses must be raw passthrough")
	}
	if got := resp.ExtractContent(); got != "chutes says hi" {
		t.Errorf("ExtractContent() = %q", got)
	}
}
