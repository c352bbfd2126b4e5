package testutil

import (
	"math/rand"
	"strconv"
	"sync"

	"github.com/hupe1980/labelframe/scalar"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Ints returns n Int values in [lo, hi).
func (r *RNG) Ints(n int, lo, hi int64) []scalar.Value {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.intsLocked(n, lo, hi)
}

func (r *RNG) intsLocked(n int, lo, hi int64) []scalar.Value {
	out := make([]scalar.Value, n)
	for i := range out {
		out[i] = scalar.Int(lo + r.rand.Int63n(hi-lo))
	}
	return out
}

// Floats returns n Float values in [0, 1).
func (r *RNG) Floats(n int) []scalar.Value {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]scalar.Value, n)
	for i := range out {
		out[i] = scalar.Float(r.rand.Float64())
	}
	return out
}

// IntMatrix returns a rows×cols row-major matrix of Ints in [lo, hi).
func (r *RNG) IntMatrix(rows, cols int, lo, hi int64) [][]scalar.Value {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]scalar.Value, rows)
	for i := range out {
		out[i] = r.intsLocked(cols, lo, hi)
	}
	return out
}

// Labels returns n distinct string labels prefix0..prefix(n-1) in random
// order.
func (r *RNG) Labels(n int, prefix string) []scalar.Value {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]scalar.Value, n)
	for i, p := range r.rand.Perm(n) {
		out[i] = scalar.String(prefix + strconv.Itoa(p))
	}
	return out
}

// WithMissing returns a copy of values where each element is replaced by the
// missing marker with probability rate.
func (r *RNG) WithMissing(values []scalar.Value, rate float64) []scalar.Value {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]scalar.Value, len(values))
	for i, v := range values {
		if r.rand.Float64() >= rate {
			out[i] = v
		}
	}
	return out
}

// Mask returns n booleans, each true with probability rate.
func (r *RNG) Mask(n int, rate float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Float64() < rate
	}
	return out
}
