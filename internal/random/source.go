package random

//go:generate mockgen -destination=mock/mock_source.go -package=mockrandom -source=source.go

// Source provides the randomness the generation pipeline draws from.
// This allows us to inject scripted implementations for testing.
type Source interface {
	// Intn returns a uniform int in [0, n). Panics if n <= 0.
	Intn(n int) int

	// Float64 returns a uniform float64 in [0.0, 1.0)
	Float64() float64
}
