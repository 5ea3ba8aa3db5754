package mockrandom

import (
	"fmt"
	"sync"
)

// ScriptedSource implements random.Source for testing with predetermined
// values. Int and float draws are queued separately so a test can script
// one stream without counting draws on the other.
type ScriptedSource struct {
	mu         sync.Mutex
	ints       []int
	intIndex   int
	floats     []float64
	floatIndex int
}

// NewScriptedSource creates a new scripted random source
func NewScriptedSource() *ScriptedSource {
	return &ScriptedSource{
		ints:   []int{},
		floats: []float64{},
	}
}

// QueueInts appends predetermined Intn results
func (s *ScriptedSource) QueueInts(values ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ints = append(s.ints, values...)
}

// QueueFloats appends predetermined Float64 results
func (s *ScriptedSource) QueueFloats(values ...float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.floats = append(s.floats, values...)
}

// Reset clears all queued values and resets the indexes
func (s *ScriptedSource) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ints = []int{}
	s.intIndex = 0
	s.floats = []float64{}
	s.floatIndex = 0
}

// Intn implements random.Source.Intn
func (s *ScriptedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.intIndex >= len(s.ints) {
		panic(fmt.Sprintf("no more scripted ints available (used %d of %d)", s.intIndex, len(s.ints)))
	}

	value := s.ints[s.intIndex]
	s.intIndex++

	if value < 0 || value >= n {
		panic(fmt.Sprintf("scripted value %d out of range for Intn(%d)", value, n))
	}
	return value
}

// Float64 implements random.Source.Float64
func (s *ScriptedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.floatIndex >= len(s.floats) {
		panic(fmt.Sprintf("no more scripted floats available (used %d of %d)", s.floatIndex, len(s.floats)))
	}

	value := s.floats[s.floatIndex]
	s.floatIndex++

	if value < 0 || value >= 1 {
		panic(fmt.Sprintf("scripted value %f out of range for Float64", value))
	}
	return value
}
