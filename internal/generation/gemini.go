package generation

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiClient completes requests with the Google Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini-backed Client.
func NewGeminiClient(ctx context.Context, cfg Config) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("API key required: set GEMINI_API_KEY or run 'creatorctl config set-key gemini <key>'")
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

// Complete sends the task block with the system block as system instruction.
// Gemini has no end-user field, so the session id is not forwarded.
func (c *GeminiClient) Complete(ctx context.Context, req Request) (string, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
	}

	result, err := c.client.Models.GenerateContent(ctx, model, genai.Text(req.Task), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate via Gemini API: %w", err)
	}

	if len(result.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	return result.Text(), nil
}
