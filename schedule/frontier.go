// File: frontier.go
// Role: k-best matching enumeration for one round (Lawler partition).
// Determinism:
//   - Candidates are ordered by (units, seq); seq is the enqueue order.
//   - Children are generated from the parent's pairs in canonical (U-sorted) order.

package schedule

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	pq "github.com/emirpasic/gods/v2/queues/priorityqueue"
	"github.com/samber/lo"

	"github.com/katalvlaran/buddies/core"
	"github.com/katalvlaran/buddies/matching"
)

// candidate is one perfect matching of the master graph under the
// constraints that produced it.
type candidate struct {
	req   []matching.Pair // pairs that must appear
	forb  []matching.Pair // pairs that must not appear
	pairs []matching.Pair // the full matching, U-sorted
	units int64
	seq   uint64
}

func byCost(a, b *candidate) int {
	if c := cmp.Compare(a.units, b.units); c != 0 {
		return c
	}

	return cmp.Compare(a.seq, b.seq)
}

// level is the search state of one round: the candidate in use and the
// not-yet-tried alternatives.
type level struct {
	queue   *pq.Queue[*candidate]
	current *candidate
}

func newLevel() *level {
	return &level{queue: pq.NewWith(byCost)}
}

// solve returns the cheapest perfect matching of the master graph that
// contains every pair of req and none of forb. A nil candidate with a nil
// error means no such matching exists.
func (s *Scheduler) solve(ctx context.Context, req, forb []matching.Pair) (*candidate, error) {
	temp := s.master.Clone()
	for _, e := range forb {
		if err := temp.RemoveEdgeAt(e.U, e.V); err != nil && !errors.Is(err, core.ErrEdgeNotFound) {
			return nil, fmt.Errorf("schedule: forbid %v: %w", e, err)
		}
	}

	c := &candidate{req: req, forb: forb}
	c.pairs = make([]matching.Pair, 0, temp.VertexCount()/2)
	for _, e := range req {
		w, ok := temp.Weight(e.U, e.V)
		if !ok {
			return nil, nil
		}
		c.pairs = append(c.pairs, e)
		c.units += s.units(w)
		if err := temp.RemoveVerticesAt(e.U, e.V); err != nil {
			return nil, err
		}
	}

	for temp.VertexCount() > 0 {
		if temp.VertexCount()%2 != 0 {
			return nil, fmt.Errorf("%w: %w: %d active", ErrSchedulerInvariant, matching.ErrOddVertexCount, temp.VertexCount())
		}
		res, err := matching.MinWeightPerfect(ctx, temp, s.opts.Matching)
		switch {
		case errors.Is(err, matching.ErrNoPerfectMatching):
			return nil, nil
		case errors.Is(err, matching.ErrOddVertexCount):
			return nil, fmt.Errorf("%w: %w", ErrSchedulerInvariant, err)
		case err != nil:
			return nil, err
		}
		for _, p := range res.Pairs {
			c.pairs = append(c.pairs, p)
			if err = temp.RemoveVerticesAt(p.U, p.V); err != nil {
				return nil, err
			}
		}
		c.units += res.Units
	}
	slices.SortFunc(c.pairs, func(a, b matching.Pair) int { return cmp.Compare(a.U, b.U) })

	return c, nil
}

// push assigns the next sequence number and enqueues c.
func (s *Scheduler) push(lv *level, c *candidate) {
	s.seq++
	c.seq = s.seq
	lv.queue.Enqueue(c)
}

// expand enqueues the Lawler children of c: with f₁..f_k the pairs of c
// not already required, child i requires req ∪ {f₁..f_{i-1}} and forbids
// forb ∪ {f_i}. The children partition every other matching that satisfies
// c's constraints, so repeated Dequeue/expand walks them cheapest first.
func (s *Scheduler) expand(ctx context.Context, lv *level, c *candidate) error {
	free := lo.Filter(c.pairs, func(p matching.Pair, _ int) bool {
		return !lo.Contains(c.req, p)
	})
	var i int
	for i = range free {
		req := make([]matching.Pair, 0, len(c.req)+i)
		req = append(req, c.req...)
		req = append(req, free[:i]...)
		forb := make([]matching.Pair, 0, len(c.forb)+1)
		forb = append(forb, c.forb...)
		forb = append(forb, free[i])

		child, err := s.solve(ctx, req, forb)
		if err != nil {
			return err
		}
		if child != nil {
			s.push(lv, child)
		}
	}

	return nil
}

// units quantizes w with the matching scale so that required pairs and
// matched pairs are summed on the same integer grid.
func (s *Scheduler) units(w float64) int64 {
	scale := s.opts.Matching.Scale
	if scale == 0 {
		scale = matching.DefaultScale
	}

	return int64(math.Round(w * scale))
}
