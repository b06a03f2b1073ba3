package service

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Random is the source of randomness used for question sampling and the radar
// filler dimensions.
type Random interface {
	IntN(n int) int
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandom wraps r for concurrent use. A nil r selects a time-seeded source.
func NewRandom(r *rand.Rand) Random {
	if r == nil {
		seed := uint64(time.Now().UnixNano())
		r = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &lockedRand{r: r}
}

// NewSeededRandom returns a deterministic source, mostly for tests and the CLI.
func NewSeededRandom(seed uint64) Random {
	return NewRandom(rand.New(rand.NewPCG(seed, seed)))
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// sample returns up to k distinct elements of items in random order using a
// partial Fisher-Yates shuffle over a copy.
func sample[T any](rnd Random, items []T, k int) []T {
	pool := make([]T, len(items))
	copy(pool, items)
	if k > len(pool) {
		k = len(pool)
	}
	for i := 0; i < k; i++ {
		j := i + rnd.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
