package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jukeyman/jams-api/pkg/models"
)

// chatRequest is the wire body shared by all three upstreams. Streaming is
// always disabled; responses are consumed whole.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 5 * time.Minute}
}

// postChat sends a chat-completion request and decodes the JSON envelope.
// A non-2xx status becomes an UpstreamError carrying the body text.
func postChat(ctx context.Context, client *http.Client, tag models.LLMProvider, url string, headers map[string]string, body chatRequest) (map[string]interface{}, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%s: encoding request: %w", tag, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%s: building request: %w", tag, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: upstream request failed: %w", tag, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: reading upstream response: %w", tag, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{Provider: tag, Status: resp.StatusCode, Body: string(raw)}
	}

	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%s: decoding upstream response: %w", tag, err)
	}
	return data, nil
}
