// Package upstream calls the external text-generation service.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultURL is the free-tier Hugging Face Inference API endpoint for the
// instruction-tuned Mistral model.
const DefaultURL = "https://api-inference.huggingface.co/models/mistralai/Mistral-7B-Instruct-v0.2"

// Generator produces raw model text for an instruction prompt.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Error reports a failed upstream call. Callers treat any Generator error as
// a signal to fall back; the status and body snippet exist for logging only.
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Body)
}

// Client is the Hugging Face Inference API implementation of Generator.
type Client struct {
	url        string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithURL overrides the inference endpoint.
func WithURL(url string) Option {
	return func(c *Client) {
		c.url = url
	}
}

// WithHTTPClient injects a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Client. The token may be empty for anonymous free-tier use.
func New(token string, opts ...Option) *Client {
	c := &Client{
		url:        DefaultURL,
		token:      token,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	TopP           float64 `json:"top_p"`
	ReturnFullText bool    `json:"return_full_text"`
}

// GenerateText posts the prompt to the inference endpoint and returns the raw
// completion text.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(inferenceRequest{
		Inputs: prompt,
		Parameters: inferenceParameters{
			MaxNewTokens:   1024,
			Temperature:    0.5,
			TopP:           0.95,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call inference endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &Error{StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	var completions []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&completions); err != nil {
		return "", fmt.Errorf("decode inference response: %w", err)
	}
	if len(completions) == 0 {
		return "", &Error{StatusCode: resp.StatusCode, Body: "empty completion list"}
	}
	return completions[0].GeneratedText, nil
}
