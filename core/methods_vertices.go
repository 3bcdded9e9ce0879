// File: methods_vertices.go
// Role: Vertex catalog and active-set queries/mutations.
//
// Determinism:
//   - Participants() and Active() return vertices in index (lexicographic) order.
//
// Concurrency:
//   - Reads under mu.RLock, mutations under mu.Lock.
package core

// Len returns the total number of vertices, placeholder included.
// Complexity: O(1).
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.n
}

// Participants returns a copy of the sorted real participant IDs.
// Complexity: O(V).
func (g *Graph) Participants() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// Name returns the participant ID at vertex i. The placeholder and
// out-of-range indices yield "".
func (g *Graph) Name(i int) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.ids) {
		return ""
	}

	return g.ids[i]
}

// Index returns the vertex index of participant id.
func (g *Graph) Index(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]

	return i, ok
}

// Placeholder returns the placeholder vertex index, if Build injected one.
func (g *Graph) Placeholder() (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.placeholder, g.placeholder >= 0
}

// HasPlaceholder reports whether the real participant count was odd.
func (g *Graph) HasPlaceholder() bool {
	_, ok := g.Placeholder()

	return ok
}

// IsPlaceholder reports whether vertex i is the placeholder.
func (g *Graph) IsPlaceholder(i int) bool {
	p, ok := g.Placeholder()

	return ok && i == p
}

// VertexCount returns the number of active vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.activeCount
}

// Active returns the active vertex indices in ascending order.
// Complexity: O(V).
func (g *Graph) Active() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, g.activeCount)
	var i int
	for i = 0; i < g.n; i++ {
		if g.active[i] {
			out = append(out, i)
		}
	}

	return out
}

// RemoveVertices deactivates the named participants. Their incident edges
// stay in the table but are no longer offered by Weight/HasEdges.
//
// All IDs are resolved before any mutation; an unknown ID leaves the graph
// untouched and returns ErrVertexNotFound. Removing an inactive vertex is a no-op.
//
// Complexity: O(k).
func (g *Graph) RemoveVertices(ids ...string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := make([]int, 0, len(ids))
	for _, id := range ids {
		i, ok := g.index[id]
		if !ok {
			return ErrVertexNotFound
		}
		idx = append(idx, i)
	}
	g.deactivate(idx)

	return nil
}

// RemoveVerticesAt is RemoveVertices by vertex index (the placeholder included).
func (g *Graph) RemoveVerticesAt(idx ...int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, i := range idx {
		if i < 0 || i >= g.n {
			return ErrVertexNotFound
		}
	}
	g.deactivate(idx)

	return nil
}

// deactivate assumes validated indices and a held write lock.
func (g *Graph) deactivate(idx []int) {
	for _, i := range idx {
		if g.active[i] {
			g.active[i] = false
			g.activeCount--
		}
	}
}
