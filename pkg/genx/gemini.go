package genx

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Gemini generates text using Google's Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed generator.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("genx: api key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("genx: create client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("genx: generate: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("genx: empty response")
	}
	return text, nil
}
