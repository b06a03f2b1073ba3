package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/raflytch/skillorbit-server/internal/catalog"
	"github.com/raflytch/skillorbit-server/internal/config"
	"github.com/raflytch/skillorbit-server/internal/database"
	"github.com/raflytch/skillorbit-server/internal/domain"
	"github.com/raflytch/skillorbit-server/internal/repository"
	"github.com/raflytch/skillorbit-server/internal/sentiment"
	"github.com/raflytch/skillorbit-server/internal/service"
	"github.com/raflytch/skillorbit-server/pkg/broker"
	"github.com/raflytch/skillorbit-server/pkg/document"
	"github.com/raflytch/skillorbit-server/pkg/genai"
	"github.com/raflytch/skillorbit-server/pkg/objectstorage"
	"github.com/raflytch/skillorbit-server/pkg/openaicompat"
)

type dependencies struct {
	Analysis  domain.AnalysisService
	Interview domain.InterviewService
	Progress  domain.ProgressService
	Report    domain.ReportService
	Chat      domain.ChatService

	closers []func() error
}

func (d *dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			log.Printf("Failed to close resource: %v", err)
		}
	}
}

// buildDependencies connects the configured backends. Only the store is
// mandatory; Redis, RabbitMQ, object storage and the LLM degrade to local
// fallbacks when unconfigured.
func buildDependencies(ctx context.Context, cfg *config.Config, c *catalog.Catalog) (*dependencies, error) {
	deps := &dependencies{}

	store, err := repository.Open(ctx, cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store.Driver, err)
	}
	deps.closers = append(deps.closers, store.Close)
	log.Printf("Using %s store", cfg.Store.Driver)

	cacheRepo := repository.NewMemoryCache()
	if cfg.Redis.Enabled() {
		redisClient, err := database.NewRedisConnection(cfg.Redis)
		if err != nil {
			deps.Close()
			return nil, err
		}
		deps.closers = append(deps.closers, redisClient.Close)
		cacheRepo = repository.NewCacheRepository(redisClient)
	}

	var publisher domain.EventPublisher = broker.Noop{}
	if cfg.Broker.URL != "" {
		p, err := broker.NewPublisher(cfg.Broker.URL, cfg.Broker.Exchange)
		if err != nil {
			log.Printf("Event publishing disabled: %v", err)
		} else {
			deps.closers = append(deps.closers, p.Close)
			publisher = p
		}
	}

	var storage domain.ObjectStorage
	storageCfg := objectstorage.Config{
		AccountID: cfg.Storage.AccountID,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		Endpoint:  cfg.Storage.Endpoint,
	}
	if storageCfg.Enabled() {
		client, err := objectstorage.NewClient(ctx, storageCfg)
		if err != nil {
			log.Printf("Resume archiving disabled: %v", err)
		} else {
			storage = client
		}
	}

	model, err := newChatModel(cfg.LLM)
	if err != nil {
		log.Printf("Mentor chat uses rule-based replies: %v", err)
	}

	rnd := service.NewRandom(nil)

	progressService := service.NewProgressService(
		store.Analyses,
		store.Interviews,
		store.Courses,
		store.Achievements,
		cacheRepo,
		publisher,
		nil,
	)

	deps.Progress = progressService
	deps.Analysis = service.NewAnalysisService(c, document.NewReader(), rnd, progressService, storage)
	deps.Interview = service.NewInterviewService(c, sentiment.New(), progressService, rnd, nil)
	deps.Report = service.NewReportService(store.Analyses)
	deps.Chat = service.NewChatService(model)

	return deps, nil
}

var errNoLLMKey = errors.New("no API key configured")

// newChatModel picks the mentor backend from LLM_PROVIDER. With no provider
// set, Gemini is used when its key is present.
func newChatModel(cfg config.LLMConfig) (domain.ChatModel, error) {
	provider := cfg.Provider
	if provider == "" && cfg.GeminiAPIKey != "" {
		provider = "gemini"
	}

	switch provider {
	case "":
		return nil, errNoLLMKey
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("gemini: %w", errNoLLMKey)
		}
		client, err := genai.NewClient(genai.Config{APIKey: cfg.GeminiAPIKey, Model: cfg.Model})
		if err != nil {
			return nil, err
		}
		return client, nil
	case "groq":
		if cfg.GroqAPIKey == "" {
			return nil, fmt.Errorf("groq: %w", errNoLLMKey)
		}
		model := cfg.Model
		if model == "" {
			model = openaicompat.DefaultGroqModel
		}
		client, err := openaicompat.NewClient(openaicompat.Config{APIKey: cfg.GroqAPIKey, BaseURL: openaicompat.GroqBaseURL, Model: model})
		if err != nil {
			return nil, err
		}
		return client, nil
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai: %w", errNoLLMKey)
		}
		client, err := openaicompat.NewClient(openaicompat.Config{APIKey: cfg.OpenAIAPIKey, BaseURL: cfg.BaseURL, Model: cfg.Model})
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", provider)
	}
}
