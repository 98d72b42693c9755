// Package provider routes chat-completion calls to upstream LLM vendors.
//
// A model identifier is classified to one of three providers (OpenRouter,
// MiniMax, Chutes) by substring matching, and the matching adapter translates
// the provider-agnostic request into the vendor's wire format. MiniMax
// responses are normalized into the canonical {content, usage} shape; the
// OpenRouter and Chutes adapters return the upstream envelope untouched, so
// callers must branch on Response.Normalized before reading Content.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jukeyman/jams-api/pkg/models"
)

// ChatMessage is one entry in an ordered conversation history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Usage carries the provider-reported usage object verbatim. Only the total
// token count is interpreted; everything else is passed through to the client.
type Usage map[string]interface{}

// TotalTokens returns the provider-reported total token count, or 0 when the
// field is absent or not numeric.
func (u Usage) TotalTokens() int64 {
	return jsonToInt64(u["total_tokens"])
}

// Response is the outcome of one adapter call. When Normalized is true,
// Content holds the assistant message text. When false the adapter returned
// the raw upstream envelope in Raw and Content must not be trusted; use
// ExtractContent instead.
type Response struct {
	Normalized bool
	Content    string
	Usage      Usage
	Raw        map[string]interface{}
}

// ExtractContent resolves the assistant text from a response of either kind.
// For raw envelopes it tries choices[0].message.content, then a flat
// message.content, and falls back to a JSON dump of the whole envelope.
func (r *Response) ExtractContent() string {
	if r.Normalized {
		return r.Content
	}
	if c := choiceContent(r.Raw); c != "" {
		return c
	}
	if msg, ok := r.Raw["message"].(map[string]interface{}); ok {
		if c, ok := msg["content"].(string); ok && c != "" {
			return c
		}
	}
	dump, err := json.Marshal(r.Raw)
	if err != nil {
		return ""
	}
	return string(dump)
}

// choiceContent pulls choices[0].message.content from an OpenAI-style envelope.
func choiceContent(data map[string]interface{}) string {
	choices, ok := data["choices"].([]interface{})
	if !ok || len(choices) == 0 {
		return ""
	}
	first, ok := choices[0].(map[string]interface{})
	if !ok {
		return ""
	}
	msg, ok := first["message"].(map[string]interface{})
	if !ok {
		return ""
	}
	c, _ := msg["content"].(string)
	return c
}

// usageOf pulls the usage object from an upstream envelope, never nil.
func usageOf(data map[string]interface{}) Usage {
	if u, ok := data["usage"].(map[string]interface{}); ok {
		return Usage(u)
	}
	return Usage{}
}

func jsonToInt64(v interface{}) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	default:
		return 0
	}
}

// Adapter is the common contract all provider adapters satisfy.
type Adapter interface {
	Name() models.LLMProvider
	Call(ctx context.Context, modelID string, messages []ChatMessage) (*Response, error)
}

// Classify maps a model identifier to its provider. The checks run in a fixed
// priority order; an id containing both "minimax" and "chutes" resolves to
// MiniMax because that check runs first. Unknown or empty ids default to
// OpenRouter.
func Classify(modelID string) models.LLMProvider {
	if modelID == "" {
		return models.ProviderOpenRouter
	}

	id := strings.ToLower(modelID)

	if strings.HasPrefix(id, "minimax/") || strings.Contains(id, "minimax") || strings.HasPrefix(id, "minimax-") {
		return models.ProviderMiniMax
	}

	if strings.HasPrefix(id, "chutesai/") || strings.Contains(id, "chutes") {
		return models.ProviderChutes
	}

	if strings.HasPrefix(id, "openrouter/") {
		return models.ProviderOpenRouter
	}

	return models.ProviderOpenRouter
}

// ConfigError reports a missing credential for a provider. It is a
// deployment fault and is never retried.
type ConfigError struct {
	Provider models.LLMProvider
	Missing  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s not configured", e.Provider, e.Missing)
}

// UpstreamError reports a non-success HTTP status from a provider. The
// status and body are surfaced to the caller, never masked.
type UpstreamError struct {
	Provider models.LLMProvider
	Status   int
	Body     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API error: %d - %s", e.Provider, e.Status, e.Body)
}

// modelRule is one entry in a sub-model resolution table: the first rule
// whose predicate matches the requested id wins.
type modelRule struct {
	match     func(string) bool
	canonical string
}

func resolveModel(modelID string, rules []modelRule, fallback string) string {
	for _, r := range rules {
		if r.match(modelID) {
			return r.canonical
		}
	}
	return fallback
}

func contains(sub string) func(string) bool {
	return func(id string) bool { return strings.Contains(id, sub) }
}
