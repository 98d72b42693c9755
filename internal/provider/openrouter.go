package provider

import (
	"context"
	"net/http"

	"github.com/jukeyman/jams-api/pkg/models"
)

const defaultOpenRouterURL = "https://openrouter.ai/api/v1/chat/completions"

// OpenRouter forwards the model id and messages verbatim to the OpenRouter
// chat-completions endpoint. The upstream envelope is already OpenAI-shaped,
// so the response is returned as a raw passthrough.
type OpenRouter struct {
	APIKey    string
	APIKeyAlt string

	// BaseURL overrides the upstream endpoint, used by tests.
	BaseURL string

	client *http.Client
}

// NewOpenRouter creates the OpenRouter adapter. The primary key is tried
// first; the alternate key is a fallback for rotated deployments.
func NewOpenRouter(apiKey, apiKeyAlt string) *OpenRouter {
	return &OpenRouter{
		APIKey:    apiKey,
		APIKeyAlt: apiKeyAlt,
		BaseURL:   defaultOpenRouterURL,
		client:    newHTTPClient(),
	}
}

func (o *OpenRouter) Name() models.LLMProvider { return models.ProviderOpenRouter }

func (o *OpenRouter) Call(ctx context.Context, modelID string, messages []ChatMessage) (*Response, error) {
	key := o.APIKey
	if key == "" {
		key = o.APIKeyAlt
	}
	if key == "" {
		return nil, &ConfigError{Provider: models.ProviderOpenRouter, Missing: "API key"}
	}

	headers := map[string]string{
		"Authorization": "Bearer " + key,
		"HTTP-Referer":  "https://rjbizsolution.com",
		"X-Title":       "Jukeyman AGI Music Studio (JAMS) API",
	}

	data, err := postChat(ctx, o.client, models.ProviderOpenRouter, o.BaseURL, headers, chatRequest{
		Model:    modelID,
		Messages: messages,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Normalized: false,
		Usage:      usageOf(data),
		Raw:        data,
	}, nil
}
