package domain

import (
	"context"
	"encoding/json"
	"time"
)

type ChatRequest struct {
	Message string          `json:"message" validate:"max=4000"`
	Context json.RawMessage `json:"context"`
}

type ChatResponse struct {
	Response string `json:"response"`
	AIStatus string `json:"ai_status"`
}

// ChatModel is a text generation backend.
type ChatModel interface {
	GenerateTextWithSystemPrompt(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type ChatService interface {
	Reply(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}

type CacheRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

// EventPublisher delivers progress events to interested consumers.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, data []byte) error
}

// TextExtractor turns an uploaded document into plain text.
type TextExtractor interface {
	ExtractText(fileName string, data []byte) (string, error)
}
