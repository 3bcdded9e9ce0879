// Package core defines the participant graph that the round scheduler
// consumes: a complete, undirected, weighted graph over a sorted set of
// participant IDs, stored as a dense symmetric weight table.
//
// Model:
//
//   - Participants are deduplicated and sorted lexicographically at Build
//     time; the position in that order is the vertex index used everywhere
//     else (matching, scheduling, rendering).
//   - Every pair of distinct participants starts with an edge. Pairs that
//     the input never mentions weigh 0; listed pairs carry their weight.
//   - A removed edge is stored as +Inf, which is distinct from weight 0:
//     it is never offered to the matcher again.
//   - When the participant count is odd, Build appends one placeholder
//     vertex (no name, HasPlaceholder()==true) connected to every real
//     participant with the placeholder weight (default 100).
//   - An active set tracks which vertices the next matching may use.
//     RemoveVertices shrinks it; edges of inactive vertices are hidden.
//
// Core Methods:
//
//	Build(edges []Edge, opts ...GraphOption) (*Graph, error)
//	RemoveEdge(a, b string) error / RemoveEdgeAt(u, v int) error
//	RestoreEdgeAt(u, v int) error
//	RemoveVertices(ids ...string) error / RemoveVerticesAt(idx ...int) error
//	VertexCount() int, HasEdges() bool, EdgeCount() int
//	Active() []int, Weight(u, v int) (float64, bool), BaseWeight(u, v int) float64
//	Clone() *Graph
//
// Concurrency:
//
// A single sync.RWMutex guards the tables. The scheduler owns the graph it
// mutates; the lock only makes concurrent read-only renderers safe.
//
// Errors:
//
//	ErrMalformedInput (via *MalformedInputError) - bad edge row.
//	ErrNoParticipants   - Build received no edges.
//	ErrVertexNotFound   - unknown participant or index.
//	ErrEdgeNotFound     - self pair or edge already removed.
//	ErrBadPlaceholderWeight - negative or non-finite placeholder weight.
package core
