// File: methods_edges.go
// Role: Edge queries and removal/restoration on the live weight table.
// Determinism:
//   - HasEdges/EdgeCount scan the upper triangle in index order.
// Concurrency:
//   - Mutations under mu write lock, queries under read lock.

package core

import "math"

// absent is the table value of a removed edge (and of the diagonal).
var absent = math.Inf(1)

// Weight returns the live weight of edge {u,v}. ok is false when either
// vertex is unknown or inactive, u==v, or the edge was removed.
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) || !g.inRange(v) || u == v {
		return 0, false
	}
	if !g.active[u] || !g.active[v] {
		return 0, false
	}
	w, _ := g.weights.At(u, v)
	if math.IsInf(w, 1) {
		return 0, false
	}

	return w, true
}

// BaseWeight returns the weight {u,v} had at Build time, ignoring removals
// and the active set. Invalid pairs yield 0.
func (g *Graph) BaseWeight(u, v int) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) || !g.inRange(v) || u == v {
		return 0
	}
	w, _ := g.base.At(u, v)

	return w
}

// Removed reports whether edge {u,v} has been removed from the live table.
func (g *Graph) Removed(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) || !g.inRange(v) || u == v {
		return false
	}
	w, _ := g.weights.At(u, v)

	return math.IsInf(w, 1)
}

// HasEdges reports whether any present edge joins two active vertices.
// Complexity: O(V²) worst case, returns on the first hit.
func (g *Graph) HasEdges() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var u, v int
	for u = 0; u < g.n; u++ {
		if !g.active[u] {
			continue
		}
		for v = u + 1; v < g.n; v++ {
			if g.active[v] && g.present(u, v) {
				return true
			}
		}
	}

	return false
}

// EdgeCount returns the number of present edges between active vertices.
// Complexity: O(V²).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var u, v, c int
	for u = 0; u < g.n; u++ {
		if !g.active[u] {
			continue
		}
		for v = u + 1; v < g.n; v++ {
			if g.active[v] && g.present(u, v) {
				c++
			}
		}
	}

	return c
}

// RemoveEdge deletes the edge between participants a and b.
func (g *Graph) RemoveEdge(a, b string) error {
	u, ok := g.Index(a)
	if !ok {
		return ErrVertexNotFound
	}
	v, ok := g.Index(b)
	if !ok {
		return ErrVertexNotFound
	}

	return g.RemoveEdgeAt(u, v)
}

// RemoveEdgeAt deletes edge {u,v}. The edge becomes absent (+Inf), which is
// distinct from weight 0, so it is never offered to the matcher again.
//
// Errors:
//   - ErrVertexNotFound for indices out of range.
//   - ErrEdgeNotFound for u==v or an edge that is already absent.
//
// Complexity: O(1).
func (g *Graph) RemoveEdgeAt(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inRange(u) || !g.inRange(v) {
		return ErrVertexNotFound
	}
	if u == v || !g.present(u, v) {
		return ErrEdgeNotFound
	}

	return g.weights.SetSym(u, v, absent)
}

// RestoreEdgeAt puts edge {u,v} back with its Build-time weight.
// Restoring a present edge is a no-op.
func (g *Graph) RestoreEdgeAt(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inRange(u) || !g.inRange(v) {
		return ErrVertexNotFound
	}
	if u == v {
		return ErrEdgeNotFound
	}
	w, err := g.base.At(u, v)
	if err != nil {
		return err
	}

	return g.weights.SetSym(u, v, w)
}

func (g *Graph) inRange(i int) bool { return i >= 0 && i < g.n }

// present assumes a held lock and valid indices.
func (g *Graph) present(u, v int) bool {
	w, _ := g.weights.At(u, v)

	return !math.IsInf(w, 1)
}
