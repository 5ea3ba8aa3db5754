package random

import (
	"math/rand"
	"sync"
	"time"
)

// lockedSource implements Source on top of math/rand. The embedded
// *rand.Rand is not safe for concurrent use, so calls are serialized.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource creates a time-seeded random source
func NewSource() Source {
	return &lockedSource{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededSource creates a deterministic source for reproducible runs
func NewSeededSource(seed int64) Source {
	return &lockedSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn implements Source.Intn
func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Float64 implements Source.Float64
func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}
