package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// anthropicEndpoint is the Anthropic messages API endpoint
	anthropicEndpoint = "https://api.anthropic.com/v1/messages"
	// anthropicAPIVersion is the API version header value
	anthropicAPIVersion = "2023-06-01"
	// anthropicMaxTokens bounds the response size for a single completion
	anthropicMaxTokens = 4096
)

// AnthropicClient implements Client for the Anthropic messages API over plain
// HTTP. Request deadlines come from the caller's context; the underlying HTTP
// client timeout is a backstop.
type AnthropicClient struct {
	apiKey     string
	config     *Config
	endpoint   string
	httpClient *http.Client
}

// anthropicRequest is the messages API request body
type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// anthropicResponse is the messages API response body
type anthropicResponse struct {
	Content []anthropicContentBlock `json:"content"`
}

type anthropicContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewAnthropicClient creates a new Anthropic client
func NewAnthropicClient(config *Config, apiKey string) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	return &AnthropicClient{
		apiKey:   apiKey,
		config:   config,
		endpoint: anthropicEndpoint,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}, nil
}

// GenerateContent generates text content using the specified model tier
func (c *AnthropicClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}
	return c.sendRequest(ctx, modelName, prompt)
}

// GenerateJSON generates JSON content using the specified model tier
func (c *AnthropicClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	text, err := c.GenerateContent(ctx, prompt, tier)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

// GetModel returns the model name for a tier
func (c *AnthropicClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *AnthropicClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *AnthropicClient) sendRequest(ctx context.Context, model, prompt string) (string, error) {
	reqBody, err := json.Marshal(anthropicRequest{
		Model:     model,
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)
	httpReq.Header.Set("Anthropic-Version", anthropicAPIVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", newTransportError(ProviderAnthropic, "HTTP request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newTransportError(ProviderAnthropic, "failed to read response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &TransportError{
			Provider: ProviderAnthropic,
			Message:  fmt.Sprintf("API request failed with status %d: %s", resp.StatusCode, string(respBody)),
		}
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", newTransportError(ProviderAnthropic, "failed to parse API response", err)
	}
	if len(parsed.Content) == 0 {
		return "", &TransportError{Provider: ProviderAnthropic, Message: "no content in response"}
	}

	return parsed.Content[0].Text, nil
}
