package service

import (
	"testing"

	"github.com/raflytch/skillorbit-server/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func TestExtractIsCaseInsensitive(t *testing.T) {
	e := NewSkillExtractor(catalog.Default().Skills)

	got := e.Extract("I know PYTHON and some sql")
	assert.Equal(t, []string{"Python", "SQL"}, got)
}

func TestExtractMatchesSubstrings(t *testing.T) {
	e := NewSkillExtractor(catalog.Default().Skills)

	got := e.Extract("Frontend work in JavaScript")
	assert.Equal(t, []string{"JavaScript", "Java"}, got)
}

func TestExtractNothing(t *testing.T) {
	e := NewSkillExtractor(catalog.Default().Skills)

	got := e.Extract("")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSampleReturnsDistinctItems(t *testing.T) {
	rnd := NewSeededRandom(7)
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}

	got := sample(rnd, items, 5)
	assert.Len(t, got, 5)
	seen := make(map[int]bool)
	for _, v := range got {
		assert.False(t, seen[v])
		seen[v] = true
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, items)

	assert.Len(t, sample(rnd, items[:3], 5), 3)
	assert.Empty(t, sample(rnd, []int{}, 5))
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 20.5, round1(20.45))
	assert.Equal(t, 66.7, round1(200.0/3))
	assert.Equal(t, 0.0, round1(0))
}
