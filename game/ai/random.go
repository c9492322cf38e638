package ai

import "math/rand"

// Source yields uniform random ints for movement choice. Injecting a
// seeded Source makes wander and guard movement reproducible in tests.
type Source interface {
	// Intn returns a uniform int in [0, n). n must be > 0.
	Intn(n int) int
}

type randSource struct {
	r *rand.Rand
}

// NewSource returns a Source backed by math/rand with the given seed.
func NewSource(seed int64) Source {
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Intn(n int) int {
	return s.r.Intn(n)
}
