package rng

import (
	"math/rand"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// NewSeeded returns a deterministic generator, for tests and reproducible deals
func NewSeeded(seed int64) Generator {
	return rand.New(rand.NewSource(seed))
}
