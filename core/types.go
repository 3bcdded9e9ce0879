// File: types.go
// Role: Edge, Graph, GraphOption, sentinel errors and MalformedInputError.
// Concurrency:
//   - Graph fields are guarded by mu; see methods_*.go for lock discipline.

package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/buddies/matrix"
)

// DefaultPlaceholderWeight is the weight from the placeholder to every real
// participant. It is high so that the placeholder is never a "natural" best
// match while real alternatives exist.
const DefaultPlaceholderWeight = 100.0

// Sentinel errors for graph operations.
var (
	// ErrMalformedInput is matched by every *MalformedInputError.
	ErrMalformedInput = errors.New("core: malformed input")

	// ErrNoParticipants indicates Build received an empty edge list.
	ErrNoParticipants = errors.New("core: no participants")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates a self pair or an edge that was already removed.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadPlaceholderWeight indicates WithPlaceholderWeight got a negative or non-finite value.
	ErrBadPlaceholderWeight = errors.New("core: bad placeholder weight")
)

// MalformedInputError reports an input row that cannot become an edge.
// Row is 1-based; 0 means the position is unknown.
type MalformedInputError struct {
	Row    int
	Reason string
	Err    error // optional cause, e.g. a strconv error
}

func (e *MalformedInputError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := "core: malformed input"
	if e.Row > 0 {
		msg += fmt.Sprintf(" at row %d", e.Row)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}

	return msg
}

// Is lets errors.Is(err, ErrMalformedInput) match any MalformedInputError.
func (e *MalformedInputError) Is(target error) bool { return target == ErrMalformedInput }

// Unwrap exposes the underlying cause.
func (e *MalformedInputError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// Edge is one input record: two participant names and their closeness weight.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// GraphOption configures Build.
type GraphOption func(g *Graph)

// WithPlaceholderWeight overrides DefaultPlaceholderWeight.
func WithPlaceholderWeight(w float64) GraphOption {
	return func(g *Graph) { g.placeholderWeight = w }
}

// Graph is the weighted participant graph.
//
// Vertex indices 0..len(ids)-1 are the sorted real participants; when
// placeholder >= 0 it is the last index. base keeps the initial weights so
// that removed edges can be restored; weights holds the live table, where
// +Inf marks a removed edge and the diagonal.
type Graph struct {
	mu sync.RWMutex

	placeholderWeight float64

	ids         []string       // sorted real participants
	index       map[string]int // participant → vertex index
	n           int            // total vertices, placeholder included
	placeholder int            // vertex index of the placeholder, or -1

	base    *matrix.Dense // immutable after Build
	weights *matrix.Dense // live table

	active      []bool
	activeCount int
}
