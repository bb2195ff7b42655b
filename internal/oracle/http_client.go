package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mindstash/mindstash/internal/shared/domain"
)

// HTTPClient talks to an OpenAI-style chat completions endpoint.
type HTTPClient struct {
	endpoint   string
	apiKey     string
	model      string
	maxTokens  int
	httpClient *http.Client
}

// NewHTTPClient creates a completion client. The API key must already be
// validated by configuration loading.
func NewHTTPClient(endpoint, apiKey, model string, maxTokens int) *HTTPClient {
	return &HTTPClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		model:      model,
		maxTokens:  maxTokens,
		httpClient: http.DefaultClient,
	}
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// Complete performs one completion round trip. Transport failures map to
// NetworkError, non-200 statuses and unusable envelopes to ProtocolError.
func (c *HTTPClient) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := completionRequest{
		Model: c.model,
		Messages: []message{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.1,
		MaxTokens:   c.maxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return "", &domain.ProtocolError{Message: fmt.Sprintf("Invalid endpoint URL: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &domain.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &domain.ProtocolError{Message: fmt.Sprintf("API error: Status code %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.NetworkError{Err: err}
	}
	if len(body) == 0 {
		return "", &domain.ProtocolError{Message: "Empty response body"}
	}

	var envelope completionResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", &domain.ProtocolError{Message: fmt.Sprintf("Malformed response envelope: %v", err)}
	}
	if len(envelope.Choices) == 0 {
		return "", &domain.ProtocolError{Message: "Response contained no choices"}
	}

	return envelope.Choices[0].Message.Content, nil
}
