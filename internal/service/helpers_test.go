package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/raflytch/skillorbit-server/internal/config"
	"github.com/raflytch/skillorbit-server/internal/domain"
	"github.com/raflytch/skillorbit-server/internal/repository"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
}

func (p *recordingPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, routingKey)
	return nil
}

func (p *recordingPublisher) count(key string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, k := range p.keys {
		if k == key {
			n++
		}
	}
	return n
}

type progressFixture struct {
	service   domain.ProgressService
	store     *repository.Store
	publisher *recordingPublisher
}

func newProgressFixture(t *testing.T) progressFixture {
	t.Helper()
	store, err := repository.Open(context.Background(), config.StoreConfig{Driver: config.StoreFile, DataDir: t.TempDir()})
	require.NoError(t, err)

	publisher := &recordingPublisher{}
	svc := NewProgressService(
		store.Analyses,
		store.Interviews,
		store.Courses,
		store.Achievements,
		repository.NewMemoryCache(),
		publisher,
		fixedClock,
	)
	return progressFixture{service: svc, store: store, publisher: publisher}
}

func achievementTypes(list []domain.Achievement) []domain.AchievementType {
	out := make([]domain.AchievementType, len(list))
	for i, a := range list {
		out[i] = a.Type
	}
	return out
}
