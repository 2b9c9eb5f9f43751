package rand

import (
	"math"
)

// Generator is a handle around a single stream state for code which would
// rather not pass *uint64 around. Its zero value is a valid stream with seed
// zero.
type Generator struct {
	state uint64
}

func New(seed uint64) *Generator {
	return &Generator{seed}
}

// Seed returns the current stream state. Passing it to New reproduces the
// rest of the stream.
func (gen *Generator) Seed() uint64 { return gen.state }

// State exposes the stream state so the package-level kernels can advance
// it directly.
func (gen *Generator) State() *uint64 { return &gen.state }

// Next returns the next number in the stream.
func (gen *Generator) Next() float64 {
	return Sample(&gen.state)
}

func (gen *Generator) Uniform(low, high float64) float64 {
	if low == 0.0 && high == 1.0 {
		return gen.Next()
	}
	return (gen.Next() * (high - low)) + low
}

// UniformAt fills target with uniform numbers between low and high.
func (gen *Generator) UniformAt(low, high float64, target []float64) {
	for i := range target {
		target[i] = gen.Next()
	}
	if low == 0.0 && high == 1.0 {
		return
	}
	for i := range target {
		target[i] = target[i]*(high-low) + low
	}
}

// Exponential returns a sample from the unit-mean exponential distribution.
func (gen *Generator) Exponential() float64 {
	return -math.Log(gen.Next())
}

// Spawn returns a generator for an independent child stream and advances
// this one.
func (gen *Generator) Spawn() *Generator {
	return New(Spawn(&gen.state))
}
