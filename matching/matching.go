package matching

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// maxUnits keeps quantized sums far away from int64 overflow.
const maxUnits = int64(1) << 52

// problem is the quantized, locally indexed view handed to the engines.
type problem struct {
	verts []int     // local index → graph vertex
	k     int       // len(verts)
	units [][]int64 // units[a][b] for a≠b; valid only where has[a][b]
	has   [][]bool
	raw   [][]float64
	maxU  int64
}

// MinWeightPerfect returns a minimum-weight perfect matching of g's active vertices.
//
// Implementation:
//   - Stage 1: validate parity and size of the active set.
//   - Stage 2: quantize present edge weights into int64 units.
//   - Stage 3: run the selected engine under ctx and opts.TimeLimit.
//   - Stage 4: map local indices back to graph vertices, sort pairs by U.
//
// Errors:
//   - ErrOddVertexCount, then ErrTooFewVertices (checked before any work).
//   - ErrNoPerfectMatching when present edges cannot cover every vertex.
//   - ErrMatchingTimeout when the time limit or ctx deadline expires.
//   - ctx.Err() on cancellation.
//   - ErrUnsupportedAlgorithm, ErrTooManyVertices, ErrWeightRange, ErrBadScale.
//
// Determinism:
//   - Equal inputs always produce equal pairs (no maps, fixed loop order).
func MinWeightPerfect(ctx context.Context, g Graph, opts Options) (Result, error) {
	verts := g.Active()
	if len(verts)%2 != 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrOddVertexCount, len(verts))
	}
	if len(verts) < 2 {
		return Result{}, fmt.Errorf("%w: %d", ErrTooFewVertices, len(verts))
	}
	scale := opts.Scale
	if scale == 0 {
		scale = DefaultScale
	}
	if scale < 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return Result{}, ErrBadScale
	}

	if opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.TimeLimit)
		defer cancel()
	}
	check := func() error {
		err := ctx.Err()
		if err == nil {
			return nil
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %w", ErrMatchingTimeout, err)
		}

		return err
	}

	pr, err := quantize(g, verts, scale)
	if err != nil {
		return Result{}, err
	}

	var mate []int
	switch opts.Algo {
	case Blossom:
		mate, err = pr.blossom(check)
	case Exhaustive:
		mate, err = pr.exhaustive(check)
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, opts.Algo)
	}
	if err != nil {
		return Result{}, err
	}

	return pr.result(mate)
}

// quantize builds the local problem. Absent edges stay has==false.
func quantize(g Graph, verts []int, scale float64) (*problem, error) {
	k := len(verts)
	pr := &problem{
		verts: verts,
		k:     k,
		units: make([][]int64, k),
		has:   make([][]bool, k),
		raw:   make([][]float64, k),
	}
	var a, b int
	for a = 0; a < k; a++ {
		pr.units[a] = make([]int64, k)
		pr.has[a] = make([]bool, k)
		pr.raw[a] = make([]float64, k)
	}
	for a = 0; a < k; a++ {
		for b = a + 1; b < k; b++ {
			w, ok := g.Weight(verts[a], verts[b])
			if !ok {
				continue
			}
			q := math.Round(w * scale)
			if math.IsNaN(q) || q < 0 || q > float64(maxUnits) {
				return nil, fmt.Errorf("%w: %v", ErrWeightRange, w)
			}
			u := int64(q)
			pr.units[a][b], pr.units[b][a] = u, u
			pr.has[a][b], pr.has[b][a] = true, true
			pr.raw[a][b], pr.raw[b][a] = w, w
			if u > pr.maxU {
				pr.maxU = u
			}
		}
	}
	// Sum of k/2 weights must stay in range as well.
	if pr.maxU > 0 && int64(k) > maxUnits/pr.maxU {
		return nil, ErrWeightRange
	}

	return pr, nil
}

// result converts a local mate array into a Result.
func (pr *problem) result(mate []int) (Result, error) {
	res := Result{Pairs: make([]Pair, 0, pr.k/2)}
	var a int
	for a = 0; a < pr.k; a++ {
		b := mate[a]
		if b < 0 {
			return Result{}, ErrNoPerfectMatching
		}
		if b < a {
			continue
		}
		res.Pairs = append(res.Pairs, Pair{U: pr.verts[a], V: pr.verts[b]})
		res.Cost += pr.raw[a][b]
		res.Units += pr.units[a][b]
	}

	return res, nil
}
