package suggestions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/cv-builder/internal/prompts"
	"github.com/jonathan/cv-builder/internal/types"
)

// ErrUnavailable indicates the provider is not configured. Callers must
// surface it as a labeled "unavailable" response, never as a crash.
var ErrUnavailable = errors.New("suggestion provider is not configured")

// Client is an abstraction over text-generation providers.
type Client interface {
	// RequestSuggestions sends one CV snapshot and returns the provider's
	// free-form advice verbatim.
	RequestSuggestions(ctx context.Context, cv *types.CVData) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a client for the configured provider. A missing API
// key returns ErrUnavailable.
func NewClient(config *Config) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.APIKey == "" {
		return nil, ErrUnavailable
	}
	return &OpenAIClient{
		config:     config.withDefaults(),
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// OpenAIClient implements Client against an OpenAI-compatible
// chat-completions endpoint.
type OpenAIClient struct {
	config     *Config
	httpClient *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// RequestSuggestions serializes the document and performs one outbound
// request. There is no retry, no streaming, and no conversation history:
// the call is one-shot and stateless.
func (c *OpenAIClient) RequestSuggestions(ctx context.Context, cv *types.CVData) (string, error) {
	cvJSON, err := json.Marshal(cv)
	if err != nil {
		return "", fmt.Errorf("failed to serialize CV data: %w", err)
	}

	reqBody := chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: prompts.MustGet("suggestions.json", "cv-advisor-system")},
			{Role: "user", Content: string(cvJSON)},
		},
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to build provider request: %w", err)
	}

	url := strings.TrimSuffix(c.config.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	if c.config.Organization != "" {
		req.Header.Set("OpenAI-Organization", c.config.Organization)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ProviderError{Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Message: "failed to read provider response", Cause: err}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", &ProviderError{StatusCode: resp.StatusCode, Message: "provider returned non-success status"}
		}
		return "", &ProviderError{Message: "provider returned malformed response", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		msg := "provider returned non-success status"
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return "", &ProviderError{StatusCode: resp.StatusCode, Message: msg}
	}

	if len(parsed.Choices) == 0 {
		return "", &ProviderError{Message: "no choices in provider response"}
	}

	return parsed.Choices[0].Message.Content, nil
}

// Close releases resources held by the client.
func (c *OpenAIClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// ProviderError represents a terminal failure of one suggestion request:
// transport errors, non-success statuses, and provider error payloads.
type ProviderError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *ProviderError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("provider error (status %d): %s", e.StatusCode, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	default:
		return fmt.Sprintf("provider error: %s", e.Message)
	}
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
