package schedule

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/buddies/matching"
)

// Sentinel errors.
var (
	// ErrSchedulerInvariant signals corrupted round bookkeeping: an odd
	// active vertex count mid-round (wrapping matching.ErrOddVertexCount)
	// or an accepted pair missing from the remaining edges.
	ErrSchedulerInvariant = errors.New("schedule: internal invariant violated")

	// ErrBudgetExceeded signals that MaxBacktracks was exhausted.
	ErrBudgetExceeded = fmt.Errorf("schedule: backtrack budget exceeded: %w", matching.ErrMatchingTimeout)

	// ErrNoCompletion signals that no sequence of perfect matchings uses
	// every remaining edge exactly once.
	ErrNoCompletion = errors.New("schedule: no round-robin completion exists")

	// ErrNilGraph signals a nil input graph.
	ErrNilGraph = errors.New("schedule: nil graph")

	// ErrUnknownTrioPolicy signals an unparseable TrioPolicy.
	ErrUnknownTrioPolicy = errors.New("schedule: unknown trio policy")
)

// State is the scheduler's lifecycle.
type State int

const (
	// Running means rounds are still being produced.
	Running State = iota
	// Done means the master graph has no edges left.
	Done
)

func (s State) String() string {
	if s == Done {
		return "done"
	}

	return "running"
}

// TrioPolicy picks the pair that absorbs the placeholder's partner.
type TrioPolicy int

const (
	// TrioLightest picks the pair with the lowest summed base weight to
	// the lone participant; ties go to the later pair.
	TrioLightest TrioPolicy = iota
	// TrioLast always picks the last pair of the round.
	TrioLast
)

func (p TrioPolicy) String() string {
	switch p {
	case TrioLightest:
		return "lightest"
	case TrioLast:
		return "last"
	default:
		return fmt.Sprintf("trio(%d)", int(p))
	}
}

// ParseTrioPolicy maps "lightest" / "last" to a TrioPolicy ("" → TrioLightest).
func ParseTrioPolicy(s string) (TrioPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lightest":
		return TrioLightest, nil
	case "last":
		return TrioLast, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownTrioPolicy, s)
}

// DefaultMaxBacktracks bounds round undo operations per Compute call.
const DefaultMaxBacktracks = 10000

// Options tunes Compute.
type Options struct {
	// Matching is passed to every matching.MinWeightPerfect call.
	Matching matching.Options
	// MaxBacktracks bounds how many rounds may be undone; 0 means
	// DefaultMaxBacktracks, negative disables backtracking.
	MaxBacktracks int
	// TrioPolicy selects the host pair for odd participant counts.
	TrioPolicy TrioPolicy
	// Logger receives debug events; nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns the blossom engine, DefaultMaxBacktracks and TrioLightest.
func DefaultOptions() Options {
	return Options{
		Matching:      matching.DefaultOptions(),
		MaxBacktracks: DefaultMaxBacktracks,
		TrioPolicy:    TrioLightest,
	}
}

// TrioMerge records how the placeholder's partner was folded into a round.
type TrioMerge struct {
	// Lone was matched with the placeholder.
	Lone string
	// Host is the pair Lone joined.
	Host [2]string
	// Reencounters counts Host members Lone was already grouped with in
	// earlier rounds.
	Reencounters int
}

// Round is one perfect matching of the schedule.
type Round struct {
	// Index is 1-based.
	Index int
	// Groups hold two names each, except the trio (host pair then Lone).
	Groups [][]string
	// Cost sums the weights of the matched pairs, the placeholder pair excluded.
	Cost float64
	// Trio is nil for even participant counts.
	Trio *TrioMerge
}

// String renders "(A, B), (C, D, E)".
func (r Round) String() string {
	parts := make([]string, len(r.Groups))
	for i, g := range r.Groups {
		parts[i] = "(" + strings.Join(g, ", ") + ")"
	}

	return strings.Join(parts, ", ")
}

// Schedule is the complete output of one Compute call.
type Schedule struct {
	// Participants are the real participant names, sorted.
	Participants []string
	// Rounds are in order; every real pair appears in exactly one of them.
	Rounds []Round
	// HasPlaceholder is true when the participant count is odd.
	HasPlaceholder bool
	// Backtracks is the number of rounds undone during the search.
	Backtracks int
}

// TotalCost sums Round.Cost over all rounds.
func (s Schedule) TotalCost() float64 {
	var total float64
	for _, r := range s.Rounds {
		total += r.Cost
	}

	return total
}
