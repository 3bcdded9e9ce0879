// File: scheduler.go
// Role: Round Scheduler. Produces one minimum-weight perfect matching per
// round until every edge of the master graph has been used once.
// Ownership:
//   - The scheduler clones the caller's graph; only the clone is mutated.
// Determinism:
//   - Fixed engines, fixed candidate order, no maps in the search path.

package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/buddies/core"
)

// Scheduler drives the round search over its own copy of a graph.
// It is not safe for concurrent use.
type Scheduler struct {
	opts       Options
	log        *slog.Logger
	origin     *core.Graph // untouched copy of the input
	master     *core.Graph // edges not yet used by accepted rounds
	levels     []*level
	state      State
	seq        uint64
	backtracks int
	limit      int
}

// New prepares a scheduler over a clone of g.
func New(g *core.Graph, opts Options) (*Scheduler, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if opts.TrioPolicy != TrioLightest && opts.TrioPolicy != TrioLast {
		return nil, fmt.Errorf("%w: %v", ErrUnknownTrioPolicy, opts.TrioPolicy)
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	limit := opts.MaxBacktracks
	switch {
	case limit == 0:
		limit = DefaultMaxBacktracks
	case limit < 0:
		limit = 0
	}

	origin := g.Clone()

	return &Scheduler{
		opts:   opts,
		log:    log,
		origin: origin,
		master: origin.Clone(),
		state:  Running,
		limit:  limit,
	}, nil
}

// State reports Running until Run has produced a complete schedule.
func (s *Scheduler) State() State { return s.state }

// Run searches for the full schedule.
//
// Implementation:
//   - Each round opens a level whose root candidate is the cheapest perfect
//     matching of the remaining edges.
//   - The dequeued candidate is accepted: its edges leave the master graph.
//   - A level with no candidate left is dropped; the previous round is
//     undone, its candidate expanded into alternatives, and the next
//     cheapest one is tried.
//   - Done when the master graph has no edges left.
//
// Errors:
//   - ErrNoCompletion when round 1 runs out of candidates.
//   - ErrBudgetExceeded after MaxBacktracks undo steps.
//   - ErrSchedulerInvariant, matching errors and ctx.Err() are passed through.
//
// A failed Run discards every partial round; the next Run starts over.
func (s *Scheduler) Run(ctx context.Context) (Schedule, error) {
	if err := s.search(ctx); err != nil {
		s.reset()
		return Schedule{}, err
	}

	return s.build(), nil
}

func (s *Scheduler) search(ctx context.Context) error {
	for s.state == Running {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !s.master.HasEdges() {
			s.state = Done
			break
		}
		if err := s.openRound(ctx); err != nil {
			return err
		}
		if err := s.advance(ctx); err != nil {
			return err
		}
	}

	return nil
}

// reset returns the scheduler to its state right after New.
func (s *Scheduler) reset() {
	s.master = s.origin.Clone()
	s.levels = nil
	s.state = Running
	s.seq = 0
	s.backtracks = 0
}

// openRound pushes a new level seeded with the unconstrained optimum.
func (s *Scheduler) openRound(ctx context.Context) error {
	lv := newLevel()
	root, err := s.solve(ctx, nil, nil)
	if err != nil {
		return err
	}
	if root != nil {
		s.push(lv, root)
	}
	s.levels = append(s.levels, lv)

	return nil
}

// advance accepts a candidate for the top level, backtracking as needed.
func (s *Scheduler) advance(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		top := s.levels[len(s.levels)-1]
		if c, ok := top.queue.Dequeue(); ok {
			return s.accept(top, c)
		}

		s.levels = s.levels[:len(s.levels)-1]
		if len(s.levels) == 0 {
			return ErrNoCompletion
		}
		s.backtracks++
		if s.backtracks > s.limit {
			return fmt.Errorf("%w: %d", ErrBudgetExceeded, s.limit)
		}
		prev := s.levels[len(s.levels)-1]
		if err := s.undo(prev.current); err != nil {
			return err
		}
		s.log.Debug("backtrack",
			slog.Int("round", len(s.levels)),
			slog.Int("backtracks", s.backtracks),
		)
		if err := s.expand(ctx, prev, prev.current); err != nil {
			return err
		}
		prev.current = nil
	}
}

// accept makes c the round's matching and removes its edges from master.
// c was solved against the current master, so every pair must be present.
func (s *Scheduler) accept(lv *level, c *candidate) error {
	for _, p := range c.pairs {
		if err := s.master.RemoveEdgeAt(p.U, p.V); err != nil {
			return fmt.Errorf("%w: accept %v: %w", ErrSchedulerInvariant, p, err)
		}
	}
	lv.current = c
	s.log.Debug("round accepted",
		slog.Int("round", len(s.levels)),
		slog.Int64("units", c.units),
		slog.Int("pairs", len(c.pairs)),
	)

	return nil
}

// undo gives c's edges back to master.
func (s *Scheduler) undo(c *candidate) error {
	for _, p := range c.pairs {
		if err := s.master.RestoreEdgeAt(p.U, p.V); err != nil {
			return fmt.Errorf("schedule: restore %v: %w", p, err)
		}
	}

	return nil
}

// Compute returns the complete schedule for g. g is not modified.
func Compute(ctx context.Context, g *core.Graph, opts Options) (Schedule, error) {
	s, err := New(g, opts)
	if err != nil {
		return Schedule{}, err
	}

	return s.Run(ctx)
}

// ComputeSchedule builds the graph from edges and computes its schedule.
// Malformed edges fail before any scheduling work.
func ComputeSchedule(ctx context.Context, edges []core.Edge, opts Options, gopts ...core.GraphOption) (Schedule, error) {
	g, err := core.Build(edges, gopts...)
	if err != nil {
		return Schedule{}, err
	}

	return Compute(ctx, g, opts)
}
