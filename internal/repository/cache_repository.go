package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/raflytch/skillorbit-server/internal/domain"

	"github.com/redis/go-redis/v9"
)

type cacheRepository struct {
	client *redis.Client
}

func NewCacheRepository(client *redis.Client) domain.CacheRepository {
	return &cacheRepository{client: client}
}

func (r *cacheRepository) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

func (r *cacheRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, expiration).Err()
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// memoryCache is a process-local CacheRepository used when Redis is not
// configured.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCache() domain.CacheRepository {
	return &memoryCache{entries: make(map[string]memoryEntry), now: time.Now}
}

func (m *memoryCache) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return "", redis.Nil
	}
	if !e.expiresAt.IsZero() && m.now().After(e.expiresAt) {
		delete(m.entries, key)
		return "", redis.Nil
	}
	return e.value, nil
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e := memoryEntry{value: string(data)}
	if expiration > 0 {
		e.expiresAt = m.now().Add(expiration)
	}
	m.entries[key] = e
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
