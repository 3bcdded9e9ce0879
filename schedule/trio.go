package schedule

import (
	"github.com/samber/lo"

	"github.com/katalvlaran/buddies/matching"
)

// build turns the accepted candidates into named rounds.
func (s *Scheduler) build() Schedule {
	out := Schedule{
		Participants:   s.master.Participants(),
		HasPlaceholder: s.master.HasPlaceholder(),
		Backtracks:     s.backtracks,
		Rounds:         make([]Round, 0, len(s.levels)),
	}
	met := make(map[[2]int]bool)
	for i, lv := range s.levels {
		r := s.round(i+1, lv.current.pairs, met)
		out.Rounds = append(out.Rounds, r)
	}

	return out
}

// round names one matching and folds the placeholder pair into a trio.
// met collects every pair of participants grouped together so far.
func (s *Scheduler) round(index int, pairs []matching.Pair, met map[[2]int]bool) Round {
	r := Round{Index: index}

	ph, hasPh := s.master.Placeholder()
	lone := -1
	rest := make([]matching.Pair, 0, len(pairs))
	for _, p := range pairs {
		switch {
		case hasPh && p.V == ph:
			lone = p.U
		case hasPh && p.U == ph:
			lone = p.V
		default:
			rest = append(rest, p)
			r.Cost += s.master.BaseWeight(p.U, p.V)
		}
	}

	host := -1
	if lone >= 0 && len(rest) > 0 {
		host = s.pickHost(lone, rest)
		h := rest[host]
		r.Trio = &TrioMerge{
			Lone: s.master.Name(lone),
			Host: [2]string{s.master.Name(h.U), s.master.Name(h.V)},
			Reencounters: lo.CountBy([]int{h.U, h.V}, func(v int) bool {
				return met[key(lone, v)]
			}),
		}
	}

	r.Groups = make([][]string, 0, len(rest))
	for i, p := range rest {
		members := []int{p.U, p.V}
		if i == host {
			members = append(members, lone)
		}
		r.Groups = append(r.Groups, lo.Map(members, func(v int, _ int) string {
			return s.master.Name(v)
		}))
		markMet(met, members)
	}

	return r
}

// pickHost returns the index in rest of the pair that absorbs lone.
func (s *Scheduler) pickHost(lone int, rest []matching.Pair) int {
	if s.opts.TrioPolicy == TrioLast {
		return len(rest) - 1
	}
	best, bestW := -1, 0.0
	for i, p := range rest {
		w := s.master.BaseWeight(lone, p.U) + s.master.BaseWeight(lone, p.V)
		if best < 0 || w <= bestW {
			best, bestW = i, w
		}
	}

	return best
}

func key(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}

func markMet(met map[[2]int]bool, members []int) {
	for i := range members {
		for j := i + 1; j < len(members); j++ {
			met[key(members[i], members[j])] = true
		}
	}
}
