package errmodel

import "math/rand"

// UniformSource supplies uniform variates in [0,1). *math/rand.Rand
// satisfies it directly; tests inject deterministic sources.
type UniformSource interface {
	Float64() float64
}

// defaultSeed keeps out-of-the-box runs reproducible. Callers wanting
// different draws per run pass their own seed or source.
const defaultSeed int64 = 1

// NewDefaultSource returns a seeded uniform source.
func NewDefaultSource(seed int64) UniformSource {
	return rand.New(rand.NewSource(seed))
}
