// File: methods_clone.go
// Role: Cloning and matrix snapshots.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

import "github.com/katalvlaran/buddies/matrix"

// Clone returns a deep copy: live weights, active set and placeholder state.
// The base table is immutable and therefore shared.
//
// Complexity: O(V²).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cp := &Graph{
		placeholderWeight: g.placeholderWeight,
		ids:               g.ids,
		index:             g.index,
		n:                 g.n,
		placeholder:       g.placeholder,
		base:              g.base,
		weights:           g.weights.Clone(),
		active:            make([]bool, len(g.active)),
		activeCount:       g.activeCount,
	}
	copy(cp.active, g.active)

	return cp
}

// Matrix returns a copy of the Build-time weight table (diagonal = +Inf).
func (g *Graph) Matrix() *matrix.Dense {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.base.Clone()
}

// Live returns a copy of the current weight table; removed edges are +Inf.
func (g *Graph) Live() *matrix.Dense {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weights.Clone()
}
