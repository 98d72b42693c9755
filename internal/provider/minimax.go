package provider

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jukeyman/jams-api/pkg/models"
)

const (
	defaultMiniMaxURL     = "https://api.minimax.io/v1/text/chatcompletion_v2"
	defaultMiniMaxModel   = "MiniMax-M1"
	minimaxTextModel      = "MiniMax-Text-01"
	defaultMiniMaxGroupID = "1935985499797721093"
)

// minimaxRules maps requested model ids to MiniMax's own model names.
// Evaluated top to bottom; the first match wins.
var minimaxRules = []modelRule{
	{match: contains("MiniMax-M1"), canonical: defaultMiniMaxModel},
	{match: contains("m1"), canonical: defaultMiniMaxModel},
	{match: contains("MiniMax-Text"), canonical: minimaxTextModel},
	{match: contains("text-01"), canonical: minimaxTextModel},
}

// MiniMax calls the MiniMax chat-completion endpoint and normalizes the
// vendor envelope into the canonical {content, usage} shape. MiniMax may
// return content under choices[0].message.content or a flat "reply" field;
// if neither is present the whole envelope is dumped as JSON text.
type MiniMax struct {
	APIKey  string
	GroupID string

	// BaseURL overrides the upstream endpoint, used by tests.
	BaseURL string

	client *http.Client
}

// NewMiniMax creates the MiniMax adapter. An empty group id falls back to
// the studio's default group.
func NewMiniMax(apiKey, groupID string) *MiniMax {
	if groupID == "" {
		groupID = defaultMiniMaxGroupID
	}
	return &MiniMax{
		APIKey:  apiKey,
		GroupID: groupID,
		BaseURL: defaultMiniMaxURL,
		client:  newHTTPClient(),
	}
}

func (m *MiniMax) Name() models.LLMProvider { return models.ProviderMiniMax }

// ResolveModel maps a requested model id to the MiniMax model name.
func (m *MiniMax) ResolveModel(modelID string) string {
	return resolveModel(modelID, minimaxRules, defaultMiniMaxModel)
}

func (m *MiniMax) Call(ctx context.Context, modelID string, messages []ChatMessage) (*Response, error) {
	if m.APIKey == "" {
		return nil, &ConfigError{Provider: models.ProviderMiniMax, Missing: "API key"}
	}

	url := m.BaseURL + "?GroupId=" + m.GroupID
	headers := map[string]string{
		"Authorization": "Bearer " + m.APIKey,
	}

	data, err := postChat(ctx, m.client, models.ProviderMiniMax, url, headers, chatRequest{
		Model:    m.ResolveModel(modelID),
		Messages: messages,
	})
	if err != nil {
		return nil, err
	}

	content := choiceContent(data)
	if content == "" {
		if reply, ok := data["reply"].(string); ok && reply != "" {
			content = reply
		}
	}
	if content == "" {
		// Last resort: hand the caller the whole envelope as text.
		if dump, mErr := json.Marshal(data); mErr == nil {
			content = string(dump)
		}
	}

	return &Response{
		Normalized: true,
		Content:    content,
		Usage:      usageOf(data),
		Raw:        data,
	}, nil
}
