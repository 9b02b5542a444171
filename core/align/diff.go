// core/align/diff.go
package align

import (
	"fmt"

	"seqscope-core/nuc"
)

// MaxInputLen is the hard per-sequence ceiling for Diff. Inputs beyond
// it are rejected before any search.
const MaxInputLen = 100000

// Diff computes the minimal edit script between a and b as a bounded
// shortest-edit-path search over diagonals k = posA - posB. maxDistance
// caps the search depth; a negative budget means exact (up to
// len(a)+len(b)). When the budget or MaxInputLen is exceeded the result
// comes back Truncated with a reason instead of running unbounded.
//
// Base equality is nuc.CodeEqual: case-folded, U as T, Ambiguous never
// equal to anything including itself.
func Diff(a, b *nuc.Seq, maxDistance int) Result {
	n, m := a.Len(), b.Len()
	if n > MaxInputLen || m > MaxInputLen {
		return Result{
			Truncated: true,
			Reason:    fmt.Sprintf("input length exceeds ceiling (%d/%d > %d)", n, m, MaxInputLen),
		}
	}

	// Fast paths are correctness contracts, not optimizations: they run
	// before the budget check and are always exact.
	switch {
	case n == 0 && m == 0:
		return Result{}
	case n == 0:
		r := Result{EditDistance: m, Insertions: m, MaskB: make([]Op, m)}
		for i := range r.MaskB {
			r.MaskB[i] = Insert
		}
		return r
	case m == 0:
		r := Result{EditDistance: n, Deletions: n, MaskA: make([]Op, n)}
		for i := range r.MaskA {
			r.MaskA[i] = Delete
		}
		return r
	}
	if n == m {
		if equalAll(a, b) {
			r := Result{Matches: n, MaskA: make([]Op, n), MaskB: make([]Op, m)}
			return r
		}
	}

	budget := n + m
	if maxDistance >= 0 && maxDistance < budget {
		budget = maxDistance
	}

	dist, vs, ok := forwardSearch(a, b, budget)
	if !ok {
		return Result{
			EditDistance: -1,
			Truncated:    true,
			Reason:       fmt.Sprintf("edit distance exceeds budget %d", budget),
		}
	}
	return traceback(a, b, dist, vs)
}

// forwardSearch runs the greedy diagonal search, snapshotting the
// furthest-reach table at every depth for the traceback. vs[d] is the
// table state entering depth d (covering diagonals -d-1..d+1).
func forwardSearch(a, b *nuc.Seq, budget int) (dist int, vs [][]int, ok bool) {
	n, m := a.Len(), b.Len()
	offset := budget + 1
	v := make([]int, 2*budget+3)
	v[offset+1] = 0

	for d := 0; d <= budget; d++ {
		snap := make([]int, 2*d+3)
		copy(snap, v[offset-d-1:offset+d+2])
		vs = append(vs, snap)

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
				x = v[offset+k+1]
			} else {
				x = v[offset+k-1] + 1
			}
			y := x - k
			for x < n && y < m && nuc.CodeEqual(a.At(x), b.At(y)) {
				x++
				y++
			}
			v[offset+k] = x
			if x >= n && y >= m {
				return d, vs, true
			}
		}
	}
	return 0, nil, false
}

// traceback walks the saved tables from depth dist back to 0, emitting
// the edit script in reverse, then fills the per-sequence masks forward.
func traceback(a, b *nuc.Seq, dist int, vs [][]int) Result {
	n, m := a.Len(), b.Len()
	r := Result{
		EditDistance: dist,
		MaskA:        make([]Op, n),
		MaskB:        make([]Op, m),
	}

	x, y := n, m
	for d := dist; d > 0; d-- {
		snap := vs[d] // table entering depth d = state after depth d-1
		at := func(k int) int { return snap[k+d+1] }

		k := x - y
		var prevK int
		if k == -d || (k != d && at(k-1) < at(k+1)) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := at(prevK)
		prevY := prevX - prevK

		// The snake of matches that followed the edit step.
		for x > prevX && y > prevY {
			x--
			y--
			r.MaskA[x] = Match
			r.MaskB[y] = Match
			r.Matches++
		}
		if prevK == k+1 {
			// Down move: b[prevY] was inserted.
			y--
			r.MaskB[y] = Insert
			r.Insertions++
		} else {
			// Right move: a[prevX] was deleted.
			x--
			r.MaskA[x] = Delete
			r.Deletions++
		}
	}
	// Leading snake on the zero diagonal.
	for x > 0 && y > 0 {
		x--
		y--
		r.MaskA[x] = Match
		r.MaskB[y] = Match
		r.Matches++
	}
	return r
}

func equalAll(a, b *nuc.Seq) bool {
	for i := 0; i < a.Len(); i++ {
		if !nuc.CodeEqual(a.At(i), b.At(i)) {
			return false
		}
	}
	return true
}
