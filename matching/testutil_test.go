// Package matching_test provides lightweight helpers shared across *_test.go
// files in this package: a tiny Graph implementation over [][]float64 and a
// brute-force enumerator used as the optimality oracle.
package matching_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/buddies/matching"
)

// absent marks a missing edge in testGraph.
var absent = math.Inf(1)

// seedDet is a deterministic seed for random instances.
const seedDet = int64(7)

// testGraph is a square weight table; +Inf means "no edge". Every vertex
// not listed in skip is active.
type testGraph struct {
	w    [][]float64
	skip map[int]bool
}

var _ matching.Graph = testGraph{}

func (g testGraph) Active() []int {
	out := make([]int, 0, len(g.w))
	var i int
	for i = range g.w {
		if !g.skip[i] {
			out = append(out, i)
		}
	}

	return out
}

func (g testGraph) Weight(u, v int) (float64, bool) {
	if u == v || math.IsInf(g.w[u][v], 1) {
		return 0, false
	}

	return g.w[u][v], true
}

// table builds a symmetric n×n table from the upper triangle given row by row.
func table(n int, upper ...float64) [][]float64 {
	w := make([][]float64, n)
	var i, j, k int
	for i = range w {
		w[i] = make([]float64, n)
		w[i][i] = absent
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w[i][j], w[j][i] = upper[k], upper[k]
			k++
		}
	}

	return w
}

// randomTable returns an n×n table of integer weights in [0,maxW]; each edge
// is absent with probability pAbsent.
func randomTable(rng *rand.Rand, n, maxW int, pAbsent float64) [][]float64 {
	w := make([][]float64, n)
	var i, j int
	for i = range w {
		w[i] = make([]float64, n)
		w[i][i] = absent
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v := float64(rng.Intn(maxW + 1))
			if rng.Float64() < pAbsent {
				v = absent
			}
			w[i][j], w[j][i] = v, v
		}
	}

	return w
}

// bruteMin enumerates every perfect matching of the active vertices and
// returns the minimum cost, or ok=false if none exists.
func bruteMin(g testGraph) (best float64, ok bool) {
	verts := g.Active()
	best = math.Inf(1)
	var rec func(rest []int, acc float64)
	rec = func(rest []int, acc float64) {
		if len(rest) == 0 {
			if acc < best {
				best = acc
			}
			ok = true
			return
		}
		u := rest[0]
		var i int
		for i = 1; i < len(rest); i++ {
			w, present := g.Weight(u, rest[i])
			if !present {
				continue
			}
			next := make([]int, 0, len(rest)-2)
			next = append(next, rest[1:i]...)
			next = append(next, rest[i+1:]...)
			rec(next, acc+w)
		}
	}
	rec(verts, 0)

	return best, ok
}

// isPerfect reports whether pairs cover every active vertex exactly once
// using only present edges.
func isPerfect(g testGraph, pairs []matching.Pair) bool {
	seen := make(map[int]bool)
	for _, p := range pairs {
		if p.U >= p.V || seen[p.U] || seen[p.V] {
			return false
		}
		if _, ok := g.Weight(p.U, p.V); !ok {
			return false
		}
		seen[p.U], seen[p.V] = true, true
	}

	return len(seen) == len(g.Active())
}
