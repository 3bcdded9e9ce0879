// File: build.go
// Role: Build validates input edges and materialises the weight table.
// Determinism:
//   - Participants are ordered by a red-black tree (lexicographic), so equal
//     inputs always yield equal vertex indices regardless of row order.
//   - Duplicate rows for the same pair: the last row wins.

package core

import (
	"math"

	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"

	"github.com/katalvlaran/buddies/matrix"
)

// Build creates a Graph from edge records.
//
// Implementation:
//   - Stage 1: validate every edge before touching any state (fail fast).
//   - Stage 2: collect names into an ordered tree and assign dense indices.
//   - Stage 3: allocate an n×n table, fill with 0 (diagonal +Inf), write
//     listed weights symmetrically.
//   - Stage 4: if the real count is odd, append the placeholder vertex with
//     edges of placeholderWeight to every real participant.
//
// Errors:
//   - *MalformedInputError (Row = 1-based position in edges).
//   - ErrNoParticipants for an empty slice.
//   - ErrBadPlaceholderWeight for an invalid WithPlaceholderWeight.
//
// Complexity:
//   - Time O(E log V + V²), Space O(V²).
func Build(edges []Edge, opts ...GraphOption) (*Graph, error) {
	g := &Graph{placeholderWeight: DefaultPlaceholderWeight, placeholder: -1}
	for _, opt := range opts {
		opt(g)
	}
	if g.placeholderWeight < 0 || math.IsNaN(g.placeholderWeight) || math.IsInf(g.placeholderWeight, 0) {
		return nil, ErrBadPlaceholderWeight
	}

	// Stage 1: validation.
	if len(edges) == 0 {
		return nil, ErrNoParticipants
	}
	var (
		i int
		e Edge
	)
	for i, e = range edges {
		if err := ValidateEdge(i+1, e); err != nil {
			return nil, err
		}
	}

	// Stage 2: ordered, deduplicated participant set.
	names := rbt.New[string, struct{}]()
	for _, e = range edges {
		names.Put(e.From, struct{}{})
		names.Put(e.To, struct{}{})
	}
	g.ids = names.Keys()
	g.index = make(map[string]int, len(g.ids))
	for i = range g.ids {
		g.index[g.ids[i]] = i
	}
	g.n = len(g.ids)
	if g.n%2 != 0 {
		g.placeholder = g.n
		g.n++
	}

	// Stage 3: weight table.
	base, err := matrix.NewSquare(g.n)
	if err != nil {
		return nil, err
	}
	base.Fill(0, math.Inf(1))
	for _, e = range edges {
		if err = base.SetSym(g.index[e.From], g.index[e.To], e.Weight); err != nil {
			return nil, err
		}
	}

	// Stage 4: placeholder edges.
	if g.placeholder >= 0 {
		for i = 0; i < g.placeholder; i++ {
			if err = base.SetSym(g.placeholder, i, g.placeholderWeight); err != nil {
				return nil, err
			}
		}
	}

	g.base = base
	g.weights = base.Clone()
	g.active = make([]bool, g.n)
	for i = range g.active {
		g.active[i] = true
	}
	g.activeCount = g.n

	return g, nil
}

// ValidateEdge checks one record. row is 1-based and only used in the error.
func ValidateEdge(row int, e Edge) error {
	switch {
	case e.From == "" || e.To == "":
		return &MalformedInputError{Row: row, Reason: "empty participant name"}
	case e.From == e.To:
		return &MalformedInputError{Row: row, Reason: "participant paired with itself"}
	case math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0):
		return &MalformedInputError{Row: row, Reason: "weight is not a finite number"}
	case e.Weight < 0:
		return &MalformedInputError{Row: row, Reason: "weight is negative"}
	}

	return nil
}
