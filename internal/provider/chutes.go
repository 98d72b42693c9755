package provider

import (
	"context"
	"net/http"
	"strings"

	"github.com/jukeyman/jams-api/pkg/models"
)

const (
	defaultChutesURL   = "https://llm.chutes.ai/v1/chat/completions"
	defaultChutesModel = "deepseek-ai/DeepSeek-R1"
	devstralModel      = "chutesai/Devstral-Small-2505"
)

// chutesRules resolves requested model ids to Chutes model names when the id
// does not carry an explicit chutesai/ prefix.
var chutesRules = []modelRule{
	{match: contains("deepseek"), canonical: defaultChutesModel},
	{match: contains("devstral"), canonical: devstralModel},
}

// Chutes calls the Chutes chat-completion endpoint. Unlike MiniMax, the
// response envelope is returned without reshaping; callers tolerate the
// non-canonical shape through Response.ExtractContent.
type Chutes struct {
	APIKey string

	// BaseURL overrides the upstream endpoint, used by tests.
	BaseURL string

	client *http.Client
}

func NewChutes(apiKey string) *Chutes {
	return &Chutes{
		APIKey:  apiKey,
		BaseURL: defaultChutesURL,
		client:  newHTTPClient(),
	}
}

func (c *Chutes) Name() models.LLMProvider { return models.ProviderChutes }

// ResolveModel maps a requested model id to the Chutes model name. An
// explicit chutesai/ prefix is stripped; otherwise the sniffing rules apply.
func (c *Chutes) ResolveModel(modelID string) string {
	if strings.Contains(modelID, "chutesai/") {
		return strings.Replace(modelID, "chutesai/", "", 1)
	}
	return resolveModel(modelID, chutesRules, defaultChutesModel)
}

func (c *Chutes) Call(ctx context.Context, modelID string, messages []ChatMessage) (*Response, error) {
	if c.APIKey == "" {
		return nil, &ConfigError{Provider: models.ProviderChutes, Missing: "API key"}
	}

	headers := map[string]string{
		"Authorization": "Bearer " + c.APIKey,
	}

	data, err := postChat(ctx, c.client, models.ProviderChutes, c.BaseURL, headers, chatRequest{
		Model:    c.ResolveModel(modelID),
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
