package catalog

import (
	"testing"

	"github.com/jukeyman/jams-api/pkg/models"
)

func TestPricePerMillion(t *testing.T) {
	tests := []struct {
		modelID  string
		expected float64
	}{
		{"deepseek/deepseek-chat", 0.00014},
		{"MiniMax-M1", 0.00020},
		{"chutesai/Devstral-Small-2505", 0.00006},
		{"deepseek/deepseek-r1:free", 0},
		{"unknown-model", DefaultPricePerMillion},
	}

	for _, tt := range tests {
		if got := PricePerMillion(tt.modelID); got != tt.expected {
			t.Errorf("PricePerMillion(%q) = %v, expected %v", tt.modelID, got, tt.expected)
		}
	}
}

// Pricing keys use each vendor's native id, so the catalog-prefixed form of
// the same model charges the default rate.
func TestPricePerMillion_PrefixedIdFallsThrough(t *testing.T) {
	if got := PricePerMillion("minimax/MiniMax-M1"); got != DefaultPricePerMillion {
		t.Errorf("expected the fallback rate for a prefixed id, got %v", got)
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 34 {
		t.Fatalf("expected 34 catalog entries, got %d", len(all))
	}

	byProvider := map[models.LLMProvider]int{}
	for _, m := range all {
		if m.ID == "" || m.Name == "" {
			t.Errorf("catalog entry missing id or name: %+v", m)
		}
		byProvider[m.Provider]++
	}
	if byProvider[models.ProviderOpenRouter] != 20 {
		t.Errorf("expected 20 openrouter models, got %d", byProvider[models.ProviderOpenRouter])
	}
	if byProvider[models.ProviderMiniMax] != 9 {
		t.Errorf("expected 9 minimax models, got %d", byProvider[models.ProviderMiniMax])
	}
	if byProvider[models.ProviderChutes] != 5 {
		t.Errorf("expected 5 chutes models, got %d", byProvider[models.ProviderChutes])
	}
}

func TestNonTextModelsCarryType(t *testing.T) {
	types := map[string]string{
		"minimax/music-1.5":             "music",
		"minimax/video-hailuo-02":       "video",
		"minimax/speech-2.5-hd-preview": "audio",
	}

	for _, m := range All() {
		if want, ok := types[m.ID]; ok && m.Type != want {
			t.Errorf("model %s: expected type %q, got %q", m.ID, want, m.Type)
		}
	}
}
