package provider

import (
	"encoding/json"
	"testing"

	"github.com/jukeyman/jams-api/pkg/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		modelID  string
		expected models.LLMProvider
	}{
		{"minimax prefix", "minimax/MiniMax-M1", models.ProviderMiniMax},
		{"minimax substring", "abab-minimax-pro", models.ProviderMiniMax},
		{"minimax uppercase", "MiniMax-Text-01", models.ProviderMiniMax},
		{"chutesai prefix", "chutesai/Devstral-Small-2505", models.ProviderChutes},
		{"chutes substring", "my-chutes-model", models.ProviderChutes},
		{"openrouter prefix", "openrouter/auto", models.ProviderOpenRouter},
		{"vendor slug", "deepseek/deepseek-chat", models.ProviderOpenRouter},
		{"unknown", "gpt-4o", models.ProviderOpenRouter},
		{"empty", "", models.ProviderOpenRouter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.modelID)
			if got != tt.expected {
				t.Errorf("Classify(%q) = %q, expected %q", tt.modelID, got, tt.expected)
			}
		})
	}
}

// An id matching both vendors resolves to MiniMax because its check runs first.
func TestClassify_MiniMaxBeatsChutes(t *testing.T) {
	got := Classify("minimax-chutes-hybrid")
	if got != models.ProviderMiniMax {
		t.Errorf("expected minimax for ambiguous id, got %q", got)
	}
}

func TestMiniMaxResolveModel(t *testing.T) {
	m := NewMiniMax("key", "")

	tests := []struct {
		modelID  string
		expected string
	}{
		{"minimax/MiniMax-M1", "MiniMax-M1"},
		{"m1-preview", "MiniMax-M1"},
		{"minimax/MiniMax-Text-01", "MiniMax-Text-01"},
		{"text-01", "MiniMax-Text-01"},
		{"minimax/unknown", "MiniMax-M1"},
		{"", "MiniMax-M1"},
	}

	for _, tt := range tests {
		if got := m.ResolveModel(tt.modelID); got != tt.expected {
			t.Errorf("ResolveModel(%q) = %q, expected %q", tt.modelID, got, tt.expected)
		}
	}
}

func TestChutesResolveModel(t *testing.T) {
	c := NewChutes("key")

	tests := []struct {
		modelID  string
		expected string
	}{
		{"chutesai/Devstral-Small-2505", "Devstral-Small-2505"},
		{"chutesai/anything-at-all", "anything-at-all"},
		{"deepseek-r1", "deepseek-ai/DeepSeek-R1"},
		{"devstral", "chutesai/Devstral-Small-2505"},
		{"some-chutes-model", "deepseek-ai/DeepSeek-R1"},
	}

	for _, tt := range tests {
		if got := c.ResolveModel(tt.modelID); got != tt.expected {
			t.Errorf("ResolveModel(%q) = %q, expected %q", tt.modelID, got, tt.expected)
		}
	}
}

func TestExtractContent_Normalized(t *testing.T) {
	r := &Response{Normalized: true, Content: "hello"}
	if got := r.ExtractContent(); got != "hello" {
		t.Errorf("expected %q, got %q", "hello", got)
	}
}

func TestExtractContent_Choices(t *testing.T) {
	r := &Response{Raw: map[string]interface{}{
		"choices": []interface{}{
			map[string]interface{}{
				"message": map[string]interface{}{"content": "from choices"},
			},
		},
	}}
	if got := r.ExtractContent(); got != "from choices" {
		t.Errorf("expected %q, got %q", "from choices", got)
	}
}

func TestExtractContent_FlatMessage(t *testing.T) {
	r := &Response{Raw: map[string]interface{}{
		"message": map[string]interface{}{"content": "flat"},
	}}
	if got := r.ExtractContent(); got != "flat" {
		t.Errorf("expected %q, got %q", "flat", got)
	}
}

func TestExtractContent_FallsBackToDump(t *testing.T) {
	r := &Response{Raw: map[string]interface{}{"error": "rate limited"}}
	got := r.ExtractContent()

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("expected a JSON dump, got %q: %v", got, err)
	}
	if decoded["error"] != "rate limited" {
		t.Errorf("dump lost the envelope: %q", got)
	}
}

func TestUsageTotalTokens(t *testing.T) {
	tests := []struct {
		name     string
		usage    Usage
		expected int64
	}{
		{"float64", Usage{"total_tokens": float64(150)}, 150},
		{"absent", Usage{}, 0},
		{"non-numeric", Usage{"total_tokens": "150"}, 0},
		{"nil map", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.usage.TotalTokens(); got != tt.expected {
				t.Errorf("TotalTokens() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestRegistryFallsBackToOpenRouter(t *testing.T) {
	or := NewOpenRouter("key", "")
	reg := NewRegistry(or)

	if got := reg.For(models.ProviderChutes); got != Adapter(or) {
		t.Error("expected fallback to the OpenRouter adapter for an unregistered provider")
	}
}
