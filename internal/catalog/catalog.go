// Package catalog holds the static model catalog and pricing table.
//
// The catalog is read-only after process start. Pricing is a separate map
// keyed by model id; ids missing from the map are charged at a flat default
// rate rather than failing, since cost tracking is advisory.
package catalog

import "github.com/jukeyman/jams-api/pkg/models"

// DefaultPricePerMillion is the fallback USD rate per 1M tokens for models
// absent from the pricing table.
const DefaultPricePerMillion = 0.0001

// ModelDescriptor describes one model available through the gateway.
type ModelDescriptor struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Provider models.LLMProvider `json:"provider"`
	Cost     float64            `json:"cost"` // USD per 1M tokens
	Context  int                `json:"context,omitempty"`
	Type     string             `json:"type,omitempty"` // audio, music, video; empty = text
	Features []string           `json:"features,omitempty"`
}

// pricing maps model ids to USD per 1M tokens. The keys intentionally use
// each vendor's native id (e.g. "MiniMax-M1", not "minimax/MiniMax-M1"), so
// catalog-prefixed ids fall through to the default rate.
var pricing = map[string]float64{
	// OpenRouter models
	"google/gemini-2.0-flash-exp:free": 0,
	"deepseek/deepseek-chat":           0.00014,
	"deepseek/deepseek-r1":             0.00014,
	"deepseek/deepseek-r1:free":        0,
	"openai/gpt-4o-mini":               0.00015,
	"anthropic/claude-3-haiku":         0.00025,
	"qwen/qwen-2.5-72b-instruct":       0.00007,
	"mistralai/mistral-small":          0.00020,

	// MiniMax models
	"MiniMax-M1":      0.00020,
	"MiniMax-Text-01": 0.00015,

	// Chutes models
	"deepseek-ai/DeepSeek-R1":      0.00014,
	"chutesai/Devstral-Small-2505": 0.00006,
}

// PricePerMillion returns the USD price per 1M tokens for a model id,
// falling back to DefaultPricePerMillion for unknown ids.
func PricePerMillion(modelID string) float64 {
	if p, ok := pricing[modelID]; ok {
		return p
	}
	return DefaultPricePerMillion
}

// All returns the full model catalog.
func All() []ModelDescriptor {
	return allModels
}

var allModels = []ModelDescriptor{
	// OpenRouter - free models
	{ID: "openrouter/sherlock-dash-alpha", Name: "Sherlock Dash Alpha (Free)", Provider: models.ProviderOpenRouter, Cost: 0, Context: 1840000},
	{ID: "openrouter/sherlock-think-alpha", Name: "Sherlock Think Alpha (Free)", Provider: models.ProviderOpenRouter, Cost: 0, Context: 1840000},
	{ID: "google/gemini-2.0-flash-exp:free", Name: "Google Gemini 2.0 Flash Experimental (Free)", Provider: models.ProviderOpenRouter, Cost: 0, Context: 1048576},
	{ID: "deepseek/deepseek-r1:free", Name: "DeepSeek R1 (Free)", Provider: models.ProviderOpenRouter, Cost: 0, Context: 163840},
	{ID: "meta-llama/llama-3.3-70b-instruct:free", Name: "Meta Llama 3.3 70B (Free)", Provider: models.ProviderOpenRouter, Cost: 0, Context: 131072},
	{ID: "qwen/qwen-2.5-72b-instruct:free", Name: "Qwen 2.5 72B (Free)", Provider: models.ProviderOpenRouter, Cost: 0, Context: 32768},
	{ID: "mistralai/mistral-small-24b-instruct-2501:free", Name: "Mistral Small 3 (Free)", Provider: models.ProviderOpenRouter, Cost: 0, Context: 32768},

	// OpenRouter - paid models, best value
	{ID: "deepseek/deepseek-chat", Name: "DeepSeek Chat", Provider: models.ProviderOpenRouter, Cost: 0.00014, Context: 64000},
	{ID: "deepseek/deepseek-r1", Name: "DeepSeek R1", Provider: models.ProviderOpenRouter, Cost: 0.00014, Context: 163840},
	{ID: "qwen/qwen-2.5-72b-instruct", Name: "Qwen 2.5 72B Instruct", Provider: models.ProviderOpenRouter, Cost: 0.00007, Context: 32768},
	{ID: "openai/gpt-4o-mini", Name: "OpenAI GPT-4o Mini", Provider: models.ProviderOpenRouter, Cost: 0.00015, Context: 128000},
	{ID: "anthropic/claude-3-haiku", Name: "Anthropic Claude 3 Haiku", Provider: models.ProviderOpenRouter, Cost: 0.00025, Context: 200000},
	{ID: "mistralai/mistral-small", Name: "Mistral Small", Provider: models.ProviderOpenRouter, Cost: 0.00020, Context: 32768},
	{ID: "mistralai/mistral-nemo", Name: "Mistral Nemo", Provider: models.ProviderOpenRouter, Cost: 0.00002, Context: 131072},
	{ID: "meta-llama/llama-3.3-70b-instruct", Name: "Meta Llama 3.3 70B", Provider: models.ProviderOpenRouter, Cost: 0.00013, Context: 131072},
	{ID: "google/gemini-2.0-flash-001", Name: "Google Gemini 2.0 Flash", Provider: models.ProviderOpenRouter, Cost: 0.00010, Context: 1048576},

	// OpenRouter - code models
	{ID: "deepseek/deepseek-r1-distill-llama-70b", Name: "DeepSeek R1 Distill Llama 70B", Provider: models.ProviderOpenRouter, Cost: 0.00003, Context: 131072},
	{ID: "mistralai/codestral-2508", Name: "Mistral Codestral 2508", Provider: models.ProviderOpenRouter, Cost: 0.00030, Context: 256000},

	// OpenRouter - music production focused
	{ID: "qwen/qwen-2.5-vl-72b-instruct", Name: "Qwen 2.5 VL 72B (Multimodal)", Provider: models.ProviderOpenRouter, Cost: 0.00008, Context: 32768},
	{ID: "qwen/qwen3-30b-a3b", Name: "Qwen3 30B A3B", Provider: models.ProviderOpenRouter, Cost: 0.00006, Context: 40960},

	// MiniMax - text models
	{ID: "minimax/MiniMax-M1", Name: "MiniMax M1 (80K CoT, 1M Context)", Provider: models.ProviderMiniMax, Cost: 0.00020, Context: 1000192, Features: []string{"streaming", "function_calling", "reasoning"}},
	{ID: "minimax/MiniMax-Text-01", Name: "MiniMax Text-01", Provider: models.ProviderMiniMax, Cost: 0.00015, Context: 1000192},

	// MiniMax - audio models
	{ID: "minimax/speech-2.5-hd-preview", Name: "MiniMax Speech 2.5 HD (TTS)", Provider: models.ProviderMiniMax, Cost: 0.00015, Type: "audio"},
	{ID: "minimax/speech-2.5-turbo-preview", Name: "MiniMax Speech 2.5 Turbo (TTS)", Provider: models.ProviderMiniMax, Cost: 0.00010, Type: "audio"},
	{ID: "minimax/speech-02-hd", Name: "MiniMax Speech 02 HD", Provider: models.ProviderMiniMax, Cost: 0.00012, Type: "audio"},
	{ID: "minimax/speech-02-turbo", Name: "MiniMax Speech 02 Turbo", Provider: models.ProviderMiniMax, Cost: 0.00008, Type: "audio"},

	// MiniMax - music generation
	{ID: "minimax/music-1.5", Name: "MiniMax Music 1.5 (Music Generation)", Provider: models.ProviderMiniMax, Cost: 0.00050, Type: "music"},

	// MiniMax - video models
	{ID: "minimax/video-hailuo-02", Name: "MiniMax Hailuo 02 (Text/Image to Video)", Provider: models.ProviderMiniMax, Cost: 0.00100, Type: "video"},
	{ID: "minimax/video-t2v-director", Name: "MiniMax T2V Director (Text to Video)", Provider: models.ProviderMiniMax, Cost: 0.00080, Type: "video"},

	// Chutes models
	{ID: "chutesai/deepseek-ai/DeepSeek-R1", Name: "DeepSeek R1 (via Chutes)", Provider: models.ProviderChutes, Cost: 0.00014, Context: 163840},
	{ID: "chutesai/chutesai/Devstral-Small-2505", Name: "Devstral Small 2505", Provider: models.ProviderChutes, Cost: 0.00006, Context: 128000},
	{ID: "chutesai/moonshotai/Kimi-K2-Instruct-75k", Name: "Kimi K2 Instruct 75k", Provider: models.ProviderChutes, Cost: 0.00010, Context: 75000},
	{ID: "chutesai/all-hands/openhands-lm-32b-v0.1-ep3", Name: "OpenHands LM 32B", Provider: models.ProviderChutes, Cost: 0.00008, Context: 32768},
	{ID: "chutesai/nousresearch/DeepHermes-3-Mistral-24B-Preview", Name: "DeepHermes 3 Mistral 24B", Provider: models.ProviderChutes, Cost: 0.00015, Context: 32768},
}
