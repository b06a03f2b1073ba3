// Package openaicompat talks to OpenAI and OpenAI-compatible chat APIs such as
// Groq through a configurable base URL.
package openaicompat

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	GroqBaseURL      = "https://api.groq.com/openai/v1"
	DefaultGroqModel = "llama-3.1-8b-instant"
	DefaultModel     = "gpt-4o-mini"
	maxReplyTokens   = 512
)

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

type Client struct {
	client *openai.Client
	model  string
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai-compatible API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

func (c *Client) GenerateTextWithSystemPrompt(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxCompletionTokens: maxReplyTokens,
		Temperature:         0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in chat completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
