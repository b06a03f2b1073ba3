package genai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash-lite"

type Client struct {
	client *genai.Client
	model  string
}

type Config struct {
	APIKey string
	Model  string
}

func NewClient(cfg Config) (*Client, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

func (c *Client) GenerateTextWithSystemPrompt(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{
				{Text: systemPrompt},
			},
		},
	}

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(userPrompt),
		config,
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return result.Text(), nil
}
