// Package schedule builds round-robin pairing schedules.
//
// Every round is a minimum-weight perfect matching over the edges not used
// by earlier rounds; the search ends when every pair of participants has
// met exactly once (N−1 rounds for N vertices, placeholder included).
//
// Greedy round-by-round choice can paint itself into a corner: at N=6 the
// edges left after three cheap rounds may form two disjoint triangles,
// which admit no perfect matching. Each round therefore keeps a frontier of
// alternative matchings ordered by cost (Lawler partition over a priority
// queue); when a round has no candidate left the previous round is undone
// and its next-cheapest alternative is tried. Options.MaxBacktracks bounds
// that search.
//
// For an odd participant count the graph carries a placeholder vertex. Its
// partner in each round joins another pair of the same round, forming a
// trio; Round.Trio records that decision.
//
//	s, err := schedule.ComputeSchedule(ctx, edges, schedule.DefaultOptions())
//	for _, r := range s.Rounds {
//		fmt.Printf("Set %d: %s\n", r.Index, r)
//	}
package schedule
