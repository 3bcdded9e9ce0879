// SPDX-License-Identifier: MIT
// Package: buddies/builder
//
// impl_complete.go: Complete(n) and Cliques(k, size, inner).
//
// Contract:
//   • Every unordered pair {i,j}, i<j, is emitted exactly once.
//   • Names come from cfg.idFn in index order.
//
// Complexity:
//   • Time O(n²), Space O(n²) for the returned slice.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/buddies/core"
)

const (
	methodComplete  = "Complete"
	methodCliques   = "Cliques"
	minParticipants = 2
)

// Complete returns the closeness table of n participants with weights
// drawn from the configured WeightFn.
func Complete(n int, opts ...BuilderOption) ([]core.Edge, error) {
	if n < minParticipants {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minParticipants, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)

	return emit(n, cfg, func(_, _ int) (float64, bool) { return 0, false }), nil
}

// Cliques returns k groups of size participants. Pairs inside a group
// weigh inner; pairs across groups come from the configured WeightFn.
// Participant i belongs to group i/size.
func Cliques(k, size int, inner float64, opts ...BuilderOption) ([]core.Edge, error) {
	if k < 1 || size < 1 || k*size < minParticipants {
		return nil, fmt.Errorf("%s: k=%d size=%d: %w", methodCliques, k, size, ErrTooFewVertices)
	}
	if inner < 0 || math.IsNaN(inner) || math.IsInf(inner, 0) {
		return nil, fmt.Errorf("%s: inner=%g: %w", methodCliques, inner, ErrBadWeight)
	}
	cfg := newBuilderConfig(opts...)

	return emit(k*size, cfg, func(i, j int) (float64, bool) {
		return inner, i/size == j/size
	}), nil
}

// emit walks pairs in (i,j) order. fixed overrides the WeightFn when its
// second result is true.
func emit(n int, cfg builderConfig, fixed func(i, j int) (float64, bool)) []core.Edge {
	ids := make([]string, n)
	var i, j int
	for i = 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
	}

	out := make([]core.Edge, 0, n*(n-1)/2)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w, ok := fixed(i, j)
			if !ok {
				w = cfg.weightFn(cfg.rng)
			}
			out = append(out, core.Edge{From: ids[i], To: ids[j], Weight: w})
		}
	}

	return out
}
