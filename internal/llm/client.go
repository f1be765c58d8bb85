package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client calls an OpenAI-compatible chat completions endpoint. OpenRouter,
// and any provider speaking the same wire format, works unchanged.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	referer     string
	title       string
	httpClient  *http.Client
}

// Config holds configuration for the chat client.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	// Referer and Title become the HTTP-Referer and X-Title headers that
	// OpenRouter uses for app attribution. Empty values omit the headers.
	Referer string
	Title   string
	Timeout time.Duration
}

// DefaultConfig returns OpenRouter defaults.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:      apiKey,
		BaseURL:     "https://openrouter.ai/api/v1",
		Model:       "google/gemma-2-9b-it",
		Temperature: 0.7,
		Timeout:     60 * time.Second,
	}
}

// NewClient creates a chat client from config.
func NewClient(config Config) *Client {
	if config.Timeout <= 0 {
		config.Timeout = 60 * time.Second
	}
	return &Client{
		apiKey:      config.APIKey,
		baseURL:     strings.TrimRight(config.BaseURL, "/"),
		model:       config.Model,
		temperature: config.Temperature,
		referer:     config.Referer,
		title:       config.Title,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

// Generate sends the system and user messages and returns the first choice.
func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	messages := make([]chatMessage, 0, 2)
	if system != "" {
		messages = append(messages, chatMessage{Role: "system", Content: system})
	}
	messages = append(messages, chatMessage{Role: "user", Content: user})

	jsonData, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if c.referer != "" {
		req.Header.Set("HTTP-Referer", c.referer)
	}
	if c.title != "" {
		req.Header.Set("X-Title", c.title)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &APIError{Class: ClassTransport, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &APIError{Class: ClassTransport, Message: "read response", Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", &APIError{Class: ClassAuth, StatusCode: resp.StatusCode, Message: string(body)}
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", &APIError{Class: ClassRateLimit, StatusCode: resp.StatusCode, Message: string(body)}
	case resp.StatusCode != http.StatusOK:
		return "", &APIError{Class: ClassAPI, StatusCode: resp.StatusCode, Message: string(body)}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", &APIError{Class: ClassAPI, Message: "parse response", Err: err}
	}
	if chatResp.Error != nil {
		return "", &APIError{Class: ClassAPI, Message: chatResp.Error.Message}
	}
	if len(chatResp.Choices) == 0 {
		return "", &APIError{Class: ClassAPI, Message: "no completion returned"}
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }
