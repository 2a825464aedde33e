package trivia

// Source supplies uniform random indices for quiz draws. *math/rand.Rand
// satisfies it; tests inject a seeded instance for reproducible outcomes.
type Source interface {
	Intn(n int) int
}

// Draw selects one question uniformly at random from pool, excluding any
// question whose id appears in previous. It returns nil when the post-filter
// pool is empty, which signals quiz exhaustion rather than an error.
func Draw(pool []Question, previous []int64, rng Source) *Question {
	seen := make(map[int64]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	candidates := make([]Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := seen[q.ID]; ok {
			continue
		}
		candidates = append(candidates, q)
	}

	if len(candidates) == 0 {
		return nil
	}
	picked := candidates[rng.Intn(len(candidates))]
	return &picked
}
