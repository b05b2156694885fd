// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/monkeypath/core"
)

const (
	methodChain     = "Chain"
	methodLadder    = "Ladder"
	methodLayered   = "Layered"
	methodRandomDAG = "RandomDAG"
)

// edge draws weights for u→v from cfg.
func (c config) edge(u, v string) core.Edge {
	cost, time := c.weightFn(c.rng)

	return core.Edge{From: u, To: v, Cost: cost, Time: time}
}

// Chain returns the path graph id(0)→id(1)→…→id(n-1). Requires n >= 2.
func Chain(n int, opts ...Option) ([]core.Edge, error) {
	if n < 2 {
		return nil, fmt.Errorf("%s: n=%d < 2: %w", methodChain, n, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)

	edges := make([]core.Edge, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, cfg.edge(cfg.idFn(i), cfg.idFn(i+1)))
	}

	return edges, nil
}

// Ladder returns two rails L0…Ln and R0…Rn (n = rungs) where every step
// from column i to i+1 may stay on its rail or cross to the other, plus a
// source S feeding L0 and R0 and a sink T fed by Ln and Rn.
// There are 2^(rungs+1) simple paths from S to T. Requires rungs >= 1.
// Node IDs are fixed ("S", "T", "L<i>", "R<i>"); WithIDs is ignored.
func Ladder(rungs int, opts ...Option) ([]core.Edge, error) {
	if rungs < 1 {
		return nil, fmt.Errorf("%s: rungs=%d < 1: %w", methodLadder, rungs, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	l := func(i int) string { return fmt.Sprintf("L%d", i) }
	r := func(i int) string { return fmt.Sprintf("R%d", i) }

	edges := make([]core.Edge, 0, 4*rungs+4)
	edges = append(edges, cfg.edge(sourceID, l(0)), cfg.edge(sourceID, r(0)))
	for i := 0; i < rungs; i++ {
		edges = append(edges,
			cfg.edge(l(i), l(i+1)),
			cfg.edge(l(i), r(i+1)),
			cfg.edge(r(i), r(i+1)),
			cfg.edge(r(i), l(i+1)),
		)
	}
	edges = append(edges, cfg.edge(l(rungs), sinkID), cfg.edge(r(rungs), sinkID))

	return edges, nil
}

// Layered returns S, then layers groups of width nodes, then T. Every node of
// a layer links to every node of the next one, giving width^layers paths.
// Layer nodes take IDs id(0)…id(layers*width-1) row by row.
// Requires layers >= 1 and width >= 1.
func Layered(layers, width int, opts ...Option) ([]core.Edge, error) {
	if layers < 1 || width < 1 {
		return nil, fmt.Errorf("%s: layers=%d width=%d: %w", methodLayered, layers, width, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	node := func(layer, k int) string { return cfg.idFn(layer*width + k) }

	edges := make([]core.Edge, 0, 2*width+(layers-1)*width*width)
	for k := 0; k < width; k++ {
		edges = append(edges, cfg.edge(sourceID, node(0, k)))
	}
	for layer := 0; layer < layers-1; layer++ {
		for a := 0; a < width; a++ {
			for b := 0; b < width; b++ {
				edges = append(edges, cfg.edge(node(layer, a), node(layer+1, b)))
			}
		}
	}
	for k := 0; k < width; k++ {
		edges = append(edges, cfg.edge(node(layers-1, k), sinkID))
	}

	return edges, nil
}

// RandomDAG samples each ordered pair i<j independently with probability p,
// trials in (i asc, j asc) order. Requires n >= 2 and 0 <= p <= 1; an RNG is
// required only when 0 < p < 1.
func RandomDAG(n int, p float64, opts ...Option) ([]core.Edge, error) {
	if n < 2 {
		return nil, fmt.Errorf("%s: n=%d < 2: %w", methodRandomDAG, n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomDAG, p, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("%s: %w", methodRandomDAG, ErrNeedRandSource)
	}

	edges := make([]core.Edge, 0, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if p < 1 && (p == 0 || cfg.rng.Float64() >= p) {
				continue
			}
			edges = append(edges, cfg.edge(cfg.idFn(i), cfg.idFn(j)))
		}
	}

	return edges, nil
}
