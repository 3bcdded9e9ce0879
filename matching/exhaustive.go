package matching

import (
	"fmt"
	"math"
	"math/bits"
)

// exhaustiveCheckEvery is how many subsets are processed between budget checks.
const exhaustiveCheckEvery = 1 << 14

// exhaustive solves the problem by subset DP.
//
// best[mask] is the minimum cost of perfectly matching the vertices NOT in
// mask, always pairing the lowest unmatched vertex first. Masks are filled
// in descending order because every transition adds bits. Reconstruction
// walks from mask 0 and takes the smallest optimal partner, which gives the
// lexicographic tie-break on vertex indices.
//
// Complexity: O(k·2ᵏ) time, O(2ᵏ) space.
func (pr *problem) exhaustive(check func() error) ([]int, error) {
	k := pr.k
	if k > MaxExhaustiveVertices {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyVertices, k, MaxExhaustiveVertices)
	}
	if err := check(); err != nil {
		return nil, err
	}
	const inf = int64(math.MaxInt64)
	full := (1 << k) - 1
	best := make([]int64, full+1)
	best[full] = 0

	var mask, i, j int
	for mask = full - 1; mask >= 0; mask-- {
		if (full-mask)%exhaustiveCheckEvery == 0 {
			if err := check(); err != nil {
				return nil, err
			}
		}
		best[mask] = inf
		i = bits.TrailingZeros(uint(^mask & full))
		for j = i + 1; j < k; j++ {
			if mask&(1<<j) != 0 || !pr.has[i][j] {
				continue
			}
			rest := best[mask|1<<i|1<<j]
			if rest == inf {
				continue
			}
			if c := rest + pr.units[i][j]; c < best[mask] {
				best[mask] = c
			}
		}
	}

	mate := make([]int, k)
	for i = range mate {
		mate[i] = -1
	}
	if best[0] == inf {
		return mate, nil
	}
	mask = 0
	for mask != full {
		i = bits.TrailingZeros(uint(^mask & full))
		for j = i + 1; j < k; j++ {
			if mask&(1<<j) != 0 || !pr.has[i][j] {
				continue
			}
			rest := best[mask|1<<i|1<<j]
			if rest != inf && rest+pr.units[i][j] == best[mask] {
				break
			}
		}
		mate[i], mate[j] = j, i
		mask |= 1<<i | 1<<j
	}

	return mate, nil
}
