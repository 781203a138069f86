// Package generation is the boundary to the external language-model service.
package generation

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Provider names a supported generation backend.
type Provider string

const (
	// ProviderOpenAI uses the OpenAI chat completions API.
	ProviderOpenAI Provider = "openai"
	// ProviderAnthropic uses the Anthropic messages API.
	ProviderAnthropic Provider = "anthropic"
	// ProviderGemini uses the Google Gemini API.
	ProviderGemini Provider = "gemini"
)

// ErrEmptyResponse is returned when the service answers without any
// candidate reply. A candidate with empty text is not an error; it is
// returned as "" for the caller to normalize.
var ErrEmptyResponse = errors.New("empty response from generation service")

// Request is one completion call: a system instruction, a task instruction,
// the model to use and a correlation token for the upstream service.
type Request struct {
	System    string
	Task      string
	Model     string
	SessionID string
}

// Client completes a Request into raw text. Implementations never retry.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Config selects and configures a Client.
type Config struct {
	Provider  Provider
	APIKey    string
	Model     string
	MaxTokens int64
	Timeout   time.Duration
	// BaseURL overrides the provider endpoint; empty uses the SDK default.
	BaseURL string
}

// New builds the Client for cfg.Provider, wrapped with cfg.Timeout when set.
func New(ctx context.Context, cfg Config) (Client, error) {
	var (
		client Client
		err    error
	)

	switch cfg.Provider {
	case ProviderOpenAI, "":
		client, err = NewOpenAIClient(cfg)
	case ProviderAnthropic:
		client, err = NewAnthropicClient(cfg)
	case ProviderGemini:
		client, err = NewGeminiClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown generation provider %q: must be openai, anthropic or gemini", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	return WithTimeout(client, cfg.Timeout), nil
}

// DefaultModel returns the model used when a request does not name one.
func DefaultModel(p Provider) string {
	switch p {
	case ProviderAnthropic:
		return defaultAnthropicModel
	case ProviderGemini:
		return defaultGeminiModel
	default:
		return defaultOpenAIModel
	}
}

type timeoutClient struct {
	next    Client
	timeout time.Duration
}

// WithTimeout bounds every Complete call on c by d. A non-positive d returns c.
func WithTimeout(c Client, d time.Duration) Client {
	if d <= 0 {
		return c
	}

	return &timeoutClient{next: c, timeout: d}
}

func (t *timeoutClient) Complete(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	return t.next.Complete(ctx, req)
}
