// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"math/rand"
	"strconv"
)

// Sentinel errors. Wrap with method context using %w.
var (
	// ErrTooFewVertices indicates a size parameter smaller than allowed.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")
)

// Deterministic defaults.
const (
	defaultCost = int64(1)
	defaultTime = int64(1)
	sourceID    = "S"
	sinkID      = "T"
)

// IDFn maps a node index to its ID.
type IDFn func(i int) string

// WeightFn produces the (cost, time) pair for the next edge.
// rng may be nil when no randomness was configured.
type WeightFn func(rng *rand.Rand) (cost, time int64)

// Option configures a constructor.
type Option func(*config)

type config struct {
	idFn     IDFn
	weightFn WeightFn
	rng      *rand.Rand
}

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:     DecimalIDs,
		weightFn: ConstantWeights(defaultCost, defaultTime),
		rng:      nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed installs a rand.Rand seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs an existing RNG. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithIDs overrides the node ID scheme. A nil fn is ignored.
func WithIDs(fn IDFn) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithWeights overrides the edge weight generator. A nil fn is ignored.
func WithWeights(fn WeightFn) Option {
	return func(c *config) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// DecimalIDs renders indices as "0", "1", "2", …
func DecimalIDs(i int) string {
	return strconv.Itoa(i)
}

// LetterIDs renders indices as "A".."Z", then "AA", "AB", … like spreadsheet columns.
func LetterIDs(i int) string {
	var buf []byte
	for n := i + 1; n > 0; n = (n - 1) / 26 {
		buf = append([]byte{byte('A' + (n-1)%26)}, buf...)
	}

	return string(buf)
}

// ConstantWeights always yields (cost, time). Panics on negative input.
func ConstantWeights(cost, time int64) WeightFn {
	if cost < 0 || time < 0 {
		panic("builder: ConstantWeights requires non-negative cost and time")
	}

	return func(*rand.Rand) (int64, int64) { return cost, time }
}

// UniformWeights samples cost and time independently from [lo, hi].
// Without an RNG it yields (lo, lo). Panics unless 0 <= lo <= hi.
func UniformWeights(lo, hi int64) WeightFn {
	if lo < 0 || hi < lo {
		panic("builder: UniformWeights requires 0 <= lo <= hi")
	}
	span := hi - lo + 1

	return func(rng *rand.Rand) (int64, int64) {
		if rng == nil {
			return lo, lo
		}

		return lo + rng.Int63n(span), lo + rng.Int63n(span)
	}
}
