package trivia

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawNeverReturnsSeenQuestion(t *testing.T) {
	pool := questionsN(6)
	rng := rand.New(rand.NewSource(42))

	previous := []int64{}
	for range pool {
		q := Draw(pool, previous, rng)
		require.NotNil(t, q)
		assert.NotContains(t, previous, q.ID)
		previous = append(previous, q.ID)
	}

	// Every question drawn exactly once, then exhaustion.
	assert.Len(t, previous, len(pool))
	assert.Nil(t, Draw(pool, previous, rng))
}

func TestDrawExhaustion(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	assert.Nil(t, Draw(nil, nil, rng))
	assert.Nil(t, Draw([]Question{}, nil, rng))

	pool := questionsN(2)
	assert.Nil(t, Draw(pool, []int64{1, 2}, rng))
}

func TestDrawIsSeedDeterministic(t *testing.T) {
	pool := questionsN(10)

	first := Draw(pool, nil, rand.New(rand.NewSource(7)))
	second := Draw(pool, nil, rand.New(rand.NewSource(7)))

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
}

func TestDrawSingleCandidate(t *testing.T) {
	pool := questionsN(3)
	rng := rand.New(rand.NewSource(99))

	q := Draw(pool, []int64{1, 3}, rng)
	require.NotNil(t, q)
	assert.Equal(t, int64(2), q.ID)
}

func TestDrawIgnoresUnknownPreviousIDs(t *testing.T) {
	pool := questionsN(2)
	rng := rand.New(rand.NewSource(5))

	q := Draw(pool, []int64{1000, 2000}, rng)
	require.NotNil(t, q)
}
