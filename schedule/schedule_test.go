package schedule_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/buddies/builder"
	"github.com/katalvlaran/buddies/core"
	"github.com/katalvlaran/buddies/matching"
	"github.com/katalvlaran/buddies/schedule"
)

// fourEdges is the A–D table: {A,D}+{B,C}=5 is the cheapest round.
func fourEdges() []core.Edge {
	return []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 5},
		{From: "A", To: "D", Weight: 3},
		{From: "B", To: "C", Weight: 2},
		{From: "B", To: "D", Weight: 4},
		{From: "C", To: "D", Weight: 6},
	}
}

// randomEdges lists every pair of n participants P00..P(n-1) with an
// integer weight in [0,9].
func randomEdges(rng *rand.Rand, n int) []core.Edge {
	edges, err := builder.Complete(n, builder.WithRand(rng), builder.WithWeightFn(builder.RatingWeightFn(0, 9)))
	if err != nil {
		panic(err)
	}

	return edges
}

// requireRoundRobin checks completeness and per-round validity.
func requireRoundRobin(t *testing.T, s schedule.Schedule) {
	t.Helper()

	n := len(s.Participants)
	wantRounds := n - 1
	if n%2 == 1 {
		wantRounds = n
	}
	require.Len(t, s.Rounds, wantRounds)
	require.Equal(t, n%2 == 1, s.HasPlaceholder)

	pairs := make(map[[2]string]int)
	for i, r := range s.Rounds {
		require.Equal(t, i+1, r.Index)

		seen := make(map[string]int)
		trios := 0
		for _, g := range r.Groups {
			require.True(t, len(g) == 2 || len(g) == 3, "round %d group %v", r.Index, g)
			if len(g) == 3 {
				trios++
			}
			for _, name := range g {
				require.NotEmpty(t, name, "round %d leaks the placeholder", r.Index)
				seen[name]++
			}
			a, b := g[0], g[1]
			if a > b {
				a, b = b, a
			}
			pairs[[2]string{a, b}]++
		}
		for _, name := range s.Participants {
			require.Equal(t, 1, seen[name], "round %d participant %s", r.Index, name)
		}
		if s.HasPlaceholder {
			require.Equal(t, 1, trios, "round %d", r.Index)
			require.NotNil(t, r.Trio)
		} else {
			require.Zero(t, trios, "round %d", r.Index)
			require.Nil(t, r.Trio)
		}
	}

	// The first two members of a group are the matched pair; a trio's
	// third member met the placeholder, so direct pairs stay unique.
	require.Len(t, pairs, n*(n-1)/2)
	for p, c := range pairs {
		require.Equal(t, 1, c, "pair %v", p)
	}
}

// -----------------------------------------------------------------------------
// Scenarios
// -----------------------------------------------------------------------------

func TestCompute_FourParticipants(t *testing.T) {
	for _, algo := range []matching.Algo{matching.Blossom, matching.Exhaustive} {
		t.Run(algo.String(), func(t *testing.T) {
			opts := schedule.DefaultOptions()
			opts.Matching.Algo = algo

			s, err := schedule.ComputeSchedule(context.Background(), fourEdges(), opts)
			require.NoError(t, err)
			requireRoundRobin(t, s)

			want := [][][]string{
				{{"A", "D"}, {"B", "C"}},
				{{"A", "B"}, {"C", "D"}},
				{{"A", "C"}, {"B", "D"}},
			}
			for i, r := range s.Rounds {
				assert.Equal(t, want[i], r.Groups, "round %d", r.Index)
			}
			assert.Equal(t, []float64{5, 7, 9}, []float64{s.Rounds[0].Cost, s.Rounds[1].Cost, s.Rounds[2].Cost})
			assert.Equal(t, 21.0, s.TotalCost())
			assert.Zero(t, s.Backtracks)
			assert.Equal(t, "(A, D), (B, C)", s.Rounds[0].String())
		})
	}
}

func TestCompute_ThreeParticipants(t *testing.T) {
	edges := []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 2},
		{From: "B", To: "C", Weight: 3},
	}
	s, err := schedule.ComputeSchedule(context.Background(), edges, schedule.DefaultOptions())
	require.NoError(t, err)
	requireRoundRobin(t, s)

	require.Len(t, s.Rounds, 3)
	assert.Equal(t, [][]string{{"A", "B", "C"}}, s.Rounds[0].Groups)
	assert.Equal(t, [][]string{{"A", "C", "B"}}, s.Rounds[1].Groups)
	assert.Equal(t, [][]string{{"B", "C", "A"}}, s.Rounds[2].Groups)

	assert.Equal(t, &schedule.TrioMerge{Lone: "C", Host: [2]string{"A", "B"}}, s.Rounds[0].Trio)
	assert.Equal(t, &schedule.TrioMerge{Lone: "B", Host: [2]string{"A", "C"}, Reencounters: 2}, s.Rounds[1].Trio)
	assert.Equal(t, 2, s.Rounds[2].Trio.Reencounters)
	assert.Equal(t, []float64{1, 2, 3}, []float64{s.Rounds[0].Cost, s.Rounds[1].Cost, s.Rounds[2].Cost})
}

// Two heavy triangles joined by free cross edges: the three free rounds
// leave both triangles behind, which has no perfect matching.
func TestCompute_RepairsGreedyDeadEnd(t *testing.T) {
	edges := []core.Edge{
		{From: "A", To: "B", Weight: 100},
		{From: "A", To: "C", Weight: 100},
		{From: "B", To: "C", Weight: 100},
		{From: "D", To: "E", Weight: 100},
		{From: "D", To: "F", Weight: 100},
		{From: "E", To: "F", Weight: 100},
	}

	s, err := schedule.ComputeSchedule(context.Background(), edges, schedule.DefaultOptions())
	require.NoError(t, err)
	requireRoundRobin(t, s)
	assert.Positive(t, s.Backtracks)
	assert.Equal(t, 600.0, s.TotalCost())

	opts := schedule.DefaultOptions()
	opts.MaxBacktracks = -1
	_, err = schedule.ComputeSchedule(context.Background(), edges, opts)
	require.ErrorIs(t, err, schedule.ErrBudgetExceeded)
	require.ErrorIs(t, err, matching.ErrMatchingTimeout)
}

// -----------------------------------------------------------------------------
// Properties
// -----------------------------------------------------------------------------

func TestCompute_RoundRobinProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var n, rep int
	for n = 2; n <= 9; n++ {
		for rep = 0; rep < 5; rep++ {
			s, err := schedule.ComputeSchedule(context.Background(), randomEdges(rng, n), schedule.DefaultOptions())
			require.NoError(t, err, "n=%d rep=%d", n, rep)
			requireRoundRobin(t, s)
		}
	}
}

// Without backtracking every round is the cheapest perfect matching of the
// edges still unused at that point.
func TestCompute_RoundsAreMinimal(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	checked := 0
	var rep int
	for rep = 0; rep < 20; rep++ {
		n := 4 + 2*(rep%2)
		edges := randomEdges(rng, n)
		s, err := schedule.ComputeSchedule(context.Background(), edges, schedule.DefaultOptions())
		require.NoError(t, err)
		if s.Backtracks > 0 {
			continue
		}
		checked++

		g, err := core.Build(edges)
		require.NoError(t, err)
		for _, r := range s.Rounds {
			best, err := matching.MinWeightPerfect(context.Background(), g, matching.Options{Algo: matching.Exhaustive})
			require.NoError(t, err)
			require.Equal(t, best.Cost, r.Cost, "rep=%d round=%d", rep, r.Index)
			for _, grp := range r.Groups {
				require.NoError(t, g.RemoveEdge(grp[0], grp[1]))
			}
		}
	}
	require.Positive(t, checked)
}

func TestCompute_Deterministic(t *testing.T) {
	edges := randomEdges(rand.New(rand.NewSource(3)), 7)
	first, err := schedule.ComputeSchedule(context.Background(), edges, schedule.DefaultOptions())
	require.NoError(t, err)
	var rep int
	for rep = 0; rep < 3; rep++ {
		again, err := schedule.ComputeSchedule(context.Background(), edges, schedule.DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestCompute_LeavesInputGraphIntact(t *testing.T) {
	g, err := core.Build(fourEdges())
	require.NoError(t, err)
	before := g.EdgeCount()

	s, err := schedule.Compute(context.Background(), g, schedule.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, s.Rounds, 3)
	assert.Equal(t, before, g.EdgeCount())
	assert.Equal(t, 4, g.VertexCount())
}

// -----------------------------------------------------------------------------
// Trio policies
// -----------------------------------------------------------------------------

func TestCompute_TrioPolicies(t *testing.T) {
	edges := randomEdges(rand.New(rand.NewSource(9)), 7)
	g, err := core.Build(edges)
	require.NoError(t, err)

	t.Run("last", func(t *testing.T) {
		opts := schedule.DefaultOptions()
		opts.TrioPolicy = schedule.TrioLast
		s, err := schedule.Compute(context.Background(), g, opts)
		require.NoError(t, err)
		requireRoundRobin(t, s)
		for _, r := range s.Rounds {
			last := r.Groups[len(r.Groups)-1]
			require.Len(t, last, 3, "round %d", r.Index)
			assert.Equal(t, r.Trio.Host, [2]string{last[0], last[1]})
			assert.Equal(t, r.Trio.Lone, last[2])
		}
	})

	t.Run("lightest", func(t *testing.T) {
		s, err := schedule.Compute(context.Background(), g, schedule.DefaultOptions())
		require.NoError(t, err)
		requireRoundRobin(t, s)
		closeness := func(lone string, grp []string) float64 {
			l, _ := g.Index(lone)
			a, _ := g.Index(grp[0])
			b, _ := g.Index(grp[1])
			return g.BaseWeight(l, a) + g.BaseWeight(l, b)
		}
		for _, r := range s.Rounds {
			var host []string
			for _, grp := range r.Groups {
				if len(grp) == 3 {
					host = grp
				}
			}
			require.NotNil(t, host)
			hostW := closeness(r.Trio.Lone, host)
			for _, grp := range r.Groups {
				if len(grp) == 2 {
					assert.LessOrEqual(t, hostW, closeness(r.Trio.Lone, grp), "round %d", r.Index)
				}
			}
		}
	})
}

func TestParseTrioPolicy(t *testing.T) {
	p, err := schedule.ParseTrioPolicy("LAST")
	require.NoError(t, err)
	assert.Equal(t, schedule.TrioLast, p)

	p, err = schedule.ParseTrioPolicy("")
	require.NoError(t, err)
	assert.Equal(t, schedule.TrioLightest, p)

	_, err = schedule.ParseTrioPolicy("random")
	require.ErrorIs(t, err, schedule.ErrUnknownTrioPolicy)
}

// -----------------------------------------------------------------------------
// Errors and lifecycle
// -----------------------------------------------------------------------------

func TestCompute_Errors(t *testing.T) {
	_, err := schedule.Compute(context.Background(), nil, schedule.DefaultOptions())
	require.ErrorIs(t, err, schedule.ErrNilGraph)

	g, err := core.Build(fourEdges())
	require.NoError(t, err)
	_, err = schedule.Compute(context.Background(), g, schedule.Options{TrioPolicy: schedule.TrioPolicy(5)})
	require.ErrorIs(t, err, schedule.ErrUnknownTrioPolicy)

	_, err = schedule.ComputeSchedule(context.Background(), []core.Edge{{From: "A", To: "A", Weight: 1}}, schedule.DefaultOptions())
	require.ErrorIs(t, err, core.ErrMalformedInput)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = schedule.Compute(ctx, g, schedule.DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
}

func TestCompute_OddActiveCountIsInvariantError(t *testing.T) {
	g, err := core.Build(fourEdges())
	require.NoError(t, err)
	require.NoError(t, g.RemoveVertices("D"))

	_, err = schedule.Compute(context.Background(), g, schedule.DefaultOptions())
	require.ErrorIs(t, err, schedule.ErrSchedulerInvariant)
	require.ErrorIs(t, err, matching.ErrOddVertexCount)
}

func TestCompute_NoCompletion(t *testing.T) {
	g, err := core.Build(fourEdges())
	require.NoError(t, err)
	for _, other := range []string{"B", "C", "D"} {
		require.NoError(t, g.RemoveEdge("A", other))
	}

	_, err = schedule.Compute(context.Background(), g, schedule.DefaultOptions())
	require.ErrorIs(t, err, schedule.ErrNoCompletion)
}

// countdownCtx reports Canceled once Err has been polled left times.
type countdownCtx struct {
	context.Context
	left int
}

func (c *countdownCtx) Err() error {
	if c.left <= 0 {
		return context.Canceled
	}
	c.left--

	return nil
}

func TestScheduler_RunAfterFailureStartsOver(t *testing.T) {
	edges, err := builder.Cliques(2, 3, 100, builder.WithIDScheme(builder.SymbolIDFn))
	require.NoError(t, err)
	g, err := core.Build(edges)
	require.NoError(t, err)
	want, err := schedule.Compute(context.Background(), g, schedule.DefaultOptions())
	require.NoError(t, err)

	var k, failed int
	for k = 0; k < 150; k++ {
		sc, err := schedule.New(g, schedule.DefaultOptions())
		require.NoError(t, err)

		_, err = sc.Run(&countdownCtx{Context: context.Background(), left: k})
		if err != nil {
			failed++
			require.ErrorIs(t, err, context.Canceled, "k=%d", k)
			require.Equal(t, schedule.Running, sc.State(), "k=%d", k)
		}

		s, err := sc.Run(context.Background())
		require.NoError(t, err, "k=%d", k)
		require.Equal(t, want, s, "k=%d", k)
	}
	assert.Positive(t, failed)
}

func TestScheduler_State(t *testing.T) {
	g, err := core.Build(fourEdges())
	require.NoError(t, err)

	sc, err := schedule.New(g, schedule.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, schedule.Running, sc.State())

	s, err := sc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, schedule.Done, sc.State())
	assert.Equal(t, "done", sc.State().String())

	again, err := sc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, s, again)
}
