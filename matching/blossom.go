package matching

// Edmonds' weighted matching (primal-dual, with blossom shrinking and
// expansion), maximum-cardinality variant, on int64 weights.
//
// Conventions:
//   - Edge k joins edges[k].i and edges[k].j. Endpoint p=2k is i and p=2k+1
//     is j; p^1 is the opposite endpoint of the same edge.
//   - mate[v] is the remote endpoint index of v's matched edge, or -1.
//   - Indices < n are vertices, n..2n-1 are (possibly unused) blossoms.
//   - label: 0 free, 1 S (outer), 2 T (inner); bit 4 marks a scan in progress.
//   - Slack uses 2·w, so S–S slacks stay even and all duals stay integral.

type wedge struct {
	i, j int
	w    int64
}

type blossomState struct {
	n     int
	edges []wedge

	endpoint  []int
	neighbend [][]int

	mate             []int
	label            []int
	labelend         []int
	inblossom        []int
	blossomparent    []int
	blossomchilds    [][]int
	blossombase      []int
	blossomendps     [][]int
	bestedge         []int
	blossombestedges [][]int
	unusedblossoms   []int
	dualvar          []int64
	allowedge        []bool
	queue            []int
}

// blossom runs the engine on the transformed weights maxU - u + 1.
// It returns a local mate array (partner index or -1).
func (pr *problem) blossom(check func() error) ([]int, error) {
	edges := make([]wedge, 0, pr.k*(pr.k-1)/2)
	var a, b int
	for a = 0; a < pr.k; a++ {
		for b = a + 1; b < pr.k; b++ {
			if pr.has[a][b] {
				edges = append(edges, wedge{i: a, j: b, w: pr.maxU - pr.units[a][b] + 1})
			}
		}
	}

	return maxWeightMatching(pr.k, edges, check)
}

// maxWeightMatching computes a maximum-cardinality matching of maximum
// weight among those of maximum cardinality.
//
// Complexity: O(n³) time, O(n + m) space.
func maxWeightMatching(n int, edges []wedge, check func() error) ([]int, error) {
	mate := make([]int, n)
	for i := range mate {
		mate[i] = -1
	}
	if len(edges) == 0 {
		return mate, nil
	}

	s := newBlossomState(n, edges)

	var (
		t, v, p, k, w, b int
		augmented        bool
	)
	for t = 0; t < n; t++ {
		if err := check(); err != nil {
			return nil, err
		}
		s.resetStage()
		for v = 0; v < n; v++ {
			if s.mate[v] == -1 && s.label[s.inblossom[v]] == 0 {
				s.assignLabel(v, 1, -1)
			}
		}

		augmented = false
		for {
			for len(s.queue) > 0 && !augmented {
				v = s.queue[len(s.queue)-1]
				s.queue = s.queue[:len(s.queue)-1]

				for _, p = range s.neighbend[v] {
					k = p / 2
					w = s.endpoint[p]
					if s.inblossom[v] == s.inblossom[w] {
						continue
					}
					var kslack int64
					if !s.allowedge[k] {
						kslack = s.slack(k)
						if kslack <= 0 {
							s.allowedge[k] = true
						}
					}
					if s.allowedge[k] {
						if s.label[s.inblossom[w]] == 0 {
							// w is free: label it T and its mate S.
							s.assignLabel(w, 2, p^1)
						} else if s.label[s.inblossom[w]] == 1 {
							// S–S edge: a new blossom or an augmenting path.
							base := s.scanBlossom(v, w)
							if base >= 0 {
								s.addBlossom(base, k)
							} else {
								s.augmentMatching(k)
								augmented = true
								break
							}
						} else if s.label[w] == 0 {
							// w is inside a T-blossom but not yet reached.
							s.label[w] = 2
							s.labelend[w] = p ^ 1
						}
					} else if s.label[s.inblossom[w]] == 1 {
						b = s.inblossom[v]
						if s.bestedge[b] == -1 || kslack < s.slack(s.bestedge[b]) {
							s.bestedge[b] = k
						}
					} else if s.label[w] == 0 {
						if s.bestedge[w] == -1 || kslack < s.slack(s.bestedge[w]) {
							s.bestedge[w] = k
						}
					}
				}
			}
			if augmented {
				break
			}
			if err := check(); err != nil {
				return nil, err
			}
			if s.dualStep() {
				break
			}
		}
		if !augmented {
			break
		}

		// End of stage: expand S-blossoms whose dual dropped to zero.
		for b = n; b < 2*n; b++ {
			if s.blossomparent[b] == -1 && s.blossombase[b] >= 0 && s.label[b] == 1 && s.dualvar[b] == 0 {
				s.expandBlossom(b, true)
			}
		}
	}

	for v = 0; v < n; v++ {
		if s.mate[v] >= 0 {
			mate[v] = s.endpoint[s.mate[v]]
		}
	}

	return mate, nil
}

func newBlossomState(n int, edges []wedge) *blossomState {
	var maxweight int64
	for _, e := range edges {
		if e.w > maxweight {
			maxweight = e.w
		}
	}

	s := &blossomState{
		n:                n,
		edges:            edges,
		endpoint:         make([]int, 2*len(edges)),
		neighbend:        make([][]int, n),
		mate:             make([]int, n),
		label:            make([]int, 2*n),
		labelend:         make([]int, 2*n),
		inblossom:        make([]int, n),
		blossomparent:    make([]int, 2*n),
		blossomchilds:    make([][]int, 2*n),
		blossombase:      make([]int, 2*n),
		blossomendps:     make([][]int, 2*n),
		bestedge:         make([]int, 2*n),
		blossombestedges: make([][]int, 2*n),
		unusedblossoms:   make([]int, 0, n),
		dualvar:          make([]int64, 2*n),
		allowedge:        make([]bool, len(edges)),
	}
	var i int
	for k, e := range edges {
		s.endpoint[2*k] = e.i
		s.endpoint[2*k+1] = e.j
		s.neighbend[e.i] = append(s.neighbend[e.i], 2*k+1)
		s.neighbend[e.j] = append(s.neighbend[e.j], 2*k)
	}
	for i = 0; i < n; i++ {
		s.mate[i] = -1
		s.inblossom[i] = i
		s.blossombase[i] = i
		s.dualvar[i] = maxweight
	}
	for i = n; i < 2*n; i++ {
		s.blossombase[i] = -1
		s.unusedblossoms = append(s.unusedblossoms, i)
	}
	for i = 0; i < 2*n; i++ {
		s.labelend[i] = -1
		s.blossomparent[i] = -1
		s.bestedge[i] = -1
	}

	return s
}

// resetStage clears per-stage labels and best-edge caches.
func (s *blossomState) resetStage() {
	var i int
	for i = 0; i < 2*s.n; i++ {
		s.label[i] = 0
		s.bestedge[i] = -1
	}
	for i = s.n; i < 2*s.n; i++ {
		s.blossombestedges[i] = nil
	}
	for i = range s.allowedge {
		s.allowedge[i] = false
	}
	s.queue = s.queue[:0]
}

func (s *blossomState) slack(k int) int64 {
	e := s.edges[k]

	return s.dualvar[e.i] + s.dualvar[e.j] - 2*e.w
}

// leaves appends the vertices contained in (sub-)blossom b to out.
func (s *blossomState) leaves(b int, out []int) []int {
	if b < s.n {
		return append(out, b)
	}
	for _, t := range s.blossomchilds[b] {
		if t < s.n {
			out = append(out, t)
		} else {
			out = s.leaves(t, out)
		}
	}

	return out
}

// child reads blossomchilds[b][j] with negative j counting from the end.
func (s *blossomState) child(b, j int) int {
	c := s.blossomchilds[b]
	if j < 0 {
		j += len(c)
	}

	return c[j]
}

// endp reads blossomendps[b][j] with negative j counting from the end.
func (s *blossomState) endp(b, j int) int {
	e := s.blossomendps[b]
	if j < 0 {
		j += len(e)
	}

	return e[j]
}

// assignLabel labels w (and its top-level blossom) with t, reached through endpoint p.
func (s *blossomState) assignLabel(w, t, p int) {
	b := s.inblossom[w]
	s.label[w], s.label[b] = t, t
	s.labelend[w], s.labelend[b] = p, p
	s.bestedge[w], s.bestedge[b] = -1, -1
	if t == 1 {
		s.queue = s.leaves(b, s.queue)
	} else if t == 2 {
		base := s.blossombase[b]
		s.assignLabel(s.endpoint[s.mate[base]], 1, s.mate[base]^1)
	}
}

// scanBlossom traces back from v and w to find a common base (new blossom)
// or returns -1 when the paths end at distinct roots (augmenting path).
func (s *blossomState) scanBlossom(v, w int) int {
	var path []int
	base := -1
	for v != -1 || w != -1 {
		b := s.inblossom[v]
		if s.label[b]&4 != 0 {
			base = s.blossombase[b]
			break
		}
		path = append(path, b)
		s.label[b] = 5
		if s.labelend[b] == -1 {
			v = -1
		} else {
			v = s.endpoint[s.labelend[b]]
			b = s.inblossom[v]
			v = s.endpoint[s.labelend[b]]
		}
		if w != -1 {
			v, w = w, v
		}
	}
	for _, b := range path {
		s.label[b] = 1
	}

	return base
}

// addBlossom shrinks the odd cycle closed by edge k into a new S-blossom with the given base.
func (s *blossomState) addBlossom(base, k int) {
	v, w := s.edges[k].i, s.edges[k].j
	bb := s.inblossom[base]
	bv := s.inblossom[v]
	bw := s.inblossom[w]

	b := s.unusedblossoms[len(s.unusedblossoms)-1]
	s.unusedblossoms = s.unusedblossoms[:len(s.unusedblossoms)-1]

	s.blossombase[b] = base
	s.blossomparent[b] = -1
	s.blossomparent[bb] = b

	path := make([]int, 0, 4)
	endps := make([]int, 0, 4)
	for bv != bb {
		s.blossomparent[bv] = b
		path = append(path, bv)
		endps = append(endps, s.labelend[bv])
		v = s.endpoint[s.labelend[bv]]
		bv = s.inblossom[v]
	}
	path = append(path, bb)
	reverseInts(path)
	reverseInts(endps)
	endps = append(endps, 2*k)
	for bw != bb {
		s.blossomparent[bw] = b
		path = append(path, bw)
		endps = append(endps, s.labelend[bw]^1)
		w = s.endpoint[s.labelend[bw]]
		bw = s.inblossom[w]
	}
	s.blossomchilds[b] = path
	s.blossomendps[b] = endps

	s.label[b] = 1
	s.labelend[b] = s.labelend[bb]
	s.dualvar[b] = 0

	for _, lv := range s.leaves(b, nil) {
		if s.label[s.inblossom[lv]] == 2 {
			// Former T-vertices become S and must be scanned.
			s.queue = append(s.queue, lv)
		}
		s.inblossom[lv] = b
	}

	// Recompute the least-slack edges from the new blossom to other S-blossoms.
	bestedgeto := make([]int, 2*s.n)
	for i := range bestedgeto {
		bestedgeto[i] = -1
	}
	for _, sub := range path {
		var nblists [][]int
		if s.blossombestedges[sub] == nil {
			for _, lv := range s.leaves(sub, nil) {
				lst := make([]int, len(s.neighbend[lv]))
				for i, p := range s.neighbend[lv] {
					lst[i] = p / 2
				}
				nblists = append(nblists, lst)
			}
		} else {
			nblists = [][]int{s.blossombestedges[sub]}
		}
		for _, nblist := range nblists {
			for _, kk := range nblist {
				j := s.edges[kk].j
				if s.inblossom[j] == b {
					j = s.edges[kk].i
				}
				bj := s.inblossom[j]
				if bj != b && s.label[bj] == 1 &&
					(bestedgeto[bj] == -1 || s.slack(kk) < s.slack(bestedgeto[bj])) {
					bestedgeto[bj] = kk
				}
			}
		}
		s.blossombestedges[sub] = nil
		s.bestedge[sub] = -1
	}
	best := make([]int, 0, len(bestedgeto))
	for _, kk := range bestedgeto {
		if kk != -1 {
			best = append(best, kk)
		}
	}
	s.blossombestedges[b] = best
	s.bestedge[b] = -1
	for _, kk := range best {
		if s.bestedge[b] == -1 || s.slack(kk) < s.slack(s.bestedge[b]) {
			s.bestedge[b] = kk
		}
	}
}

// expandBlossom dissolves top-level blossom b. Mid-stage expansion of a
// T-blossom relabels the children along the even path to the entry child.
func (s *blossomState) expandBlossom(b int, endstage bool) {
	for _, sub := range s.blossomchilds[b] {
		s.blossomparent[sub] = -1
		if sub < s.n {
			s.inblossom[sub] = sub
		} else if endstage && s.dualvar[sub] == 0 {
			s.expandBlossom(sub, endstage)
		} else {
			for _, lv := range s.leaves(sub, nil) {
				s.inblossom[lv] = sub
			}
		}
	}

	if !endstage && s.label[b] == 2 {
		entrychild := s.inblossom[s.endpoint[s.labelend[b]^1]]
		j := indexOf(s.blossomchilds[b], entrychild)
		var jstep, endptrick int
		if j&1 != 0 {
			j -= len(s.blossomchilds[b])
			jstep, endptrick = 1, 0
		} else {
			jstep, endptrick = -1, 1
		}

		p := s.labelend[b]
		for j != 0 {
			// Relabel the T-sub-blossom and the S-vertex behind it.
			s.label[s.endpoint[p^1]] = 0
			s.label[s.endpoint[s.endp(b, j-endptrick)^endptrick^1]] = 0
			s.assignLabel(s.endpoint[p^1], 2, p)
			s.allowedge[s.endp(b, j-endptrick)/2] = true
			j += jstep
			p = s.endp(b, j-endptrick) ^ endptrick
			s.allowedge[p/2] = true
			j += jstep
		}

		bv := s.child(b, j)
		s.label[s.endpoint[p^1]] = 2
		s.label[bv] = 2
		s.labelend[s.endpoint[p^1]] = p
		s.labelend[bv] = p
		s.bestedge[bv] = -1

		j += jstep
		for s.child(b, j) != entrychild {
			bv = s.child(b, j)
			if s.label[bv] == 1 {
				j += jstep
				continue
			}
			reached := -1
			for _, lv := range s.leaves(bv, nil) {
				if s.label[lv] != 0 {
					reached = lv
					break
				}
			}
			if reached >= 0 {
				s.label[reached] = 0
				s.label[s.endpoint[s.mate[s.blossombase[bv]]]] = 0
				s.assignLabel(reached, 2, s.labelend[reached])
			}
			j += jstep
		}
	}

	s.label[b] = -1
	s.labelend[b] = -1
	s.blossomchilds[b] = nil
	s.blossomendps[b] = nil
	s.blossombase[b] = -1
	s.blossombestedges[b] = nil
	s.bestedge[b] = -1
	s.unusedblossoms = append(s.unusedblossoms, b)
}

// augmentBlossom swaps matched/unmatched edges inside b so that vertex v
// becomes its base, recursing into sub-blossoms.
func (s *blossomState) augmentBlossom(b, v int) {
	t := v
	for s.blossomparent[t] != b {
		t = s.blossomparent[t]
	}
	if t >= s.n {
		s.augmentBlossom(t, v)
	}

	i := indexOf(s.blossomchilds[b], t)
	j := i
	var jstep, endptrick int
	if i&1 != 0 {
		j -= len(s.blossomchilds[b])
		jstep, endptrick = 1, 0
	} else {
		jstep, endptrick = -1, 1
	}
	for j != 0 {
		j += jstep
		t = s.child(b, j)
		p := s.endp(b, j-endptrick) ^ endptrick
		if t >= s.n {
			s.augmentBlossom(t, s.endpoint[p])
		}
		j += jstep
		t = s.child(b, j)
		if t >= s.n {
			s.augmentBlossom(t, s.endpoint[p^1])
		}
		s.mate[s.endpoint[p]] = p ^ 1
		s.mate[s.endpoint[p^1]] = p
	}

	s.blossomchilds[b] = rotateInts(s.blossomchilds[b], i)
	s.blossomendps[b] = rotateInts(s.blossomendps[b], i)
	s.blossombase[b] = s.blossombase[s.blossomchilds[b][0]]
}

// augmentMatching flips the augmenting path through edge k between two S-vertices.
func (s *blossomState) augmentMatching(k int) {
	v, w := s.edges[k].i, s.edges[k].j
	for _, start := range [2][2]int{{v, 2*k + 1}, {w, 2 * k}} {
		sv, p := start[0], start[1]
		for {
			bs := s.inblossom[sv]
			if bs >= s.n {
				s.augmentBlossom(bs, sv)
			}
			s.mate[sv] = p
			if s.labelend[bs] == -1 {
				// Reached a single root.
				break
			}
			t := s.endpoint[s.labelend[bs]]
			bt := s.inblossom[t]
			sv = s.endpoint[s.labelend[bt]]
			j := s.endpoint[s.labelend[bt]^1]
			if bt >= s.n {
				s.augmentBlossom(bt, j)
			}
			s.mate[j] = s.labelend[bt]
			p = s.labelend[bt] ^ 1
		}
	}
}

// dualStep computes the largest feasible dual adjustment and applies it.
// It reports true when no further progress is possible in this stage.
func (s *blossomState) dualStep() bool {
	deltatype := -1
	var delta int64
	deltaedge, deltablossom := -1, -1
	var v, b int

	// delta2: free vertex to S-vertex edge.
	for v = 0; v < s.n; v++ {
		if s.label[s.inblossom[v]] == 0 && s.bestedge[v] != -1 {
			d := s.slack(s.bestedge[v])
			if deltatype == -1 || d < delta {
				delta, deltatype, deltaedge = d, 2, s.bestedge[v]
			}
		}
	}
	// delta3: half the slack of an S–S edge between different blossoms.
	for b = 0; b < 2*s.n; b++ {
		if s.blossomparent[b] == -1 && s.label[b] == 1 && s.bestedge[b] != -1 {
			d := s.slack(s.bestedge[b]) / 2
			if deltatype == -1 || d < delta {
				delta, deltatype, deltaedge = d, 3, s.bestedge[b]
			}
		}
	}
	// delta4: dual of a T-blossom.
	for b = s.n; b < 2*s.n; b++ {
		if s.blossombase[b] >= 0 && s.blossomparent[b] == -1 && s.label[b] == 2 &&
			(deltatype == -1 || s.dualvar[b] < delta) {
			delta, deltatype, deltablossom = s.dualvar[b], 4, b
		}
	}
	if deltatype == -1 {
		// Maximum cardinality reached; one last update to keep duals optimal.
		deltatype = 1
		delta = s.dualvar[0]
		for v = 1; v < s.n; v++ {
			if s.dualvar[v] < delta {
				delta = s.dualvar[v]
			}
		}
		if delta < 0 {
			delta = 0
		}
	}

	for v = 0; v < s.n; v++ {
		switch s.label[s.inblossom[v]] {
		case 1:
			s.dualvar[v] -= delta
		case 2:
			s.dualvar[v] += delta
		}
	}
	for b = s.n; b < 2*s.n; b++ {
		if s.blossombase[b] >= 0 && s.blossomparent[b] == -1 {
			switch s.label[b] {
			case 1:
				s.dualvar[b] += delta
			case 2:
				s.dualvar[b] -= delta
			}
		}
	}

	switch deltatype {
	case 1:
		return true
	case 2:
		s.allowedge[deltaedge] = true
		i := s.edges[deltaedge].i
		if s.label[s.inblossom[i]] == 0 {
			i = s.edges[deltaedge].j
		}
		s.queue = append(s.queue, i)
	case 3:
		s.allowedge[deltaedge] = true
		s.queue = append(s.queue, s.edges[deltaedge].i)
	case 4:
		s.expandBlossom(deltablossom, false)
	}

	return false
}

func indexOf(xs []int, x int) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}

	return -1
}

func reverseInts(xs []int) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// rotateInts returns xs[i:] + xs[:i] in a fresh slice.
func rotateInts(xs []int, i int) []int {
	out := make([]int, 0, len(xs))
	out = append(out, xs[i:]...)

	return append(out, xs[:i]...)
}
