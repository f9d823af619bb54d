// Package gen builds levels: a seeded procedural generator bounded by the
// movement constants so that every level it emits is traversable, plus the
// difficulty scaling that parameterizes it.
package gen

// RNG is a deterministic xorshift64 stream. Layouts must reproduce
// bit-for-bit from a seed, so generation does not depend on math/rand
// internals staying stable.
type RNG struct {
	state uint64
}

// NewRNG creates a stream for the given seed
func NewRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = 88172645463325252
	}
	return &RNG{state: seed}
}

// Next returns the next random uint64
func (r *RNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float returns a random float64 in [0, 1)
func (r *RNG) Float() float64 {
	return float64(r.Next()&0x7FFFFFFFFFFFFFFF) / float64(0x8000000000000000)
}

// Intn returns a random int in [0, n)
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// IntRange returns a random int in [lo, hi]
func (r *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// FloatRange returns a random float64 in [lo, hi)
func (r *RNG) FloatRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + (hi-lo)*r.Float()
}
