package matching

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors.
var (
	// ErrOddVertexCount signals an odd number of active vertices (a caller bug).
	ErrOddVertexCount = errors.New("matching: odd number of active vertices")

	// ErrTooFewVertices signals an empty active set.
	ErrTooFewVertices = errors.New("matching: need at least two active vertices")

	// ErrNoPerfectMatching signals that the present edges admit no perfect matching.
	ErrNoPerfectMatching = errors.New("matching: no perfect matching on present edges")

	// ErrMatchingTimeout signals that the computation exceeded its budget.
	ErrMatchingTimeout = errors.New("matching: time budget exceeded")

	// ErrUnsupportedAlgorithm signals an unknown Algo value.
	ErrUnsupportedAlgorithm = errors.New("matching: unsupported algorithm")

	// ErrTooManyVertices signals that Exhaustive was asked for more than MaxExhaustiveVertices.
	ErrTooManyVertices = errors.New("matching: too many vertices for exhaustive search")

	// ErrWeightRange signals a weight that does not fit the quantized integer range.
	ErrWeightRange = errors.New("matching: weight out of quantization range")

	// ErrBadScale signals a non-positive or non-finite Options.Scale.
	ErrBadScale = errors.New("matching: bad quantization scale")
)

// Graph is the read-only view the engines need.
type Graph interface {
	// Active returns the vertices to match, ascending.
	Active() []int
	// Weight returns the weight of edge {u,v}; ok is false when the edge is absent.
	Weight(u, v int) (w float64, ok bool)
}

// Pair is one matched edge, U < V.
type Pair struct {
	U, V int
}

// String renders the pair as "(U,V)".
func (p Pair) String() string { return fmt.Sprintf("(%d,%d)", p.U, p.V) }

// Result is a perfect matching of the active vertex set.
type Result struct {
	// Pairs are sorted by U ascending.
	Pairs []Pair
	// Cost is the sum of the pair weights as reported by Graph.Weight.
	Cost float64
	// Units is Cost in quantized units; use it for exact comparisons.
	Units int64
}

// Algo selects the matching engine.
type Algo int

const (
	// Blossom is the default O(n³) engine.
	Blossom Algo = iota
	// Exhaustive is the subset DP engine for small vertex sets.
	Exhaustive
)

func (a Algo) String() string {
	switch a {
	case Blossom:
		return "blossom"
	case Exhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("algo(%d)", int(a))
	}
}

// ParseAlgo maps "blossom" / "exhaustive" (case-insensitive) to an Algo.
func ParseAlgo(s string) (Algo, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "blossom":
		return Blossom, nil
	case "exhaustive":
		return Exhaustive, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
}

// DefaultScale quantizes weights to micro-units.
const DefaultScale = 1e6

// MaxExhaustiveVertices bounds the Exhaustive engine (2ⁿ int64 table).
const MaxExhaustiveVertices = 20

// Options tunes MinWeightPerfect.
type Options struct {
	// Algo selects the engine. Default Blossom.
	Algo Algo
	// TimeLimit bounds one call; 0 means no limit.
	TimeLimit time.Duration
	// Scale is the number of integer units per 1.0 of weight; 0 means DefaultScale.
	Scale float64
}

// DefaultOptions returns Blossom with no time limit and DefaultScale.
func DefaultOptions() Options {
	return Options{Algo: Blossom, Scale: DefaultScale}
}
