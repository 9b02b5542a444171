// core/stats/skew.go
package stats

import "seqscope-core/nuc"

// GCSkew computes (G-C)/(G+C) over sliding windows of the given size,
// advanced by step. Window or step of zero, or a window longer than the
// sequence, yields nil. Windows with no G or C report 0.
//
// The slide is incremental: bases leaving and entering the window adjust
// the counts directly, so the whole scan is O(n) rather than
// O(windows * window).
func GCSkew(s *nuc.Seq, window, step int) []float64 {
	n := s.Len()
	if window <= 0 || step <= 0 || n < window {
		return nil
	}
	numWindows := (n-window)/step + 1
	out := make([]float64, 0, numWindows)

	var g, c int
	count := func(i, delta int) {
		switch s.At(i) {
		case nuc.G:
			g += delta
		case nuc.C:
			c += delta
		}
	}

	for i := 0; i < window; i++ {
		count(i, +1)
	}
	start := 0
	for w := 0; ; w++ {
		out = append(out, skewOf(g, c))
		next := start + step
		if next+window > n {
			break
		}
		if step >= window {
			// Disjoint windows: rebuild from scratch, still O(n) total.
			g, c = 0, 0
			for i := next; i < next+window; i++ {
				count(i, +1)
			}
		} else {
			for i := start; i < next; i++ {
				count(i, -1)
			}
			for i := start + window; i < next+window; i++ {
				count(i, +1)
			}
		}
		start = next
	}
	return out
}

// CumulativeGCSkew returns the running G-minus-C sum, one value per
// base. Its minimum marks a replication origin, the maximum the
// terminus. Bases other than G/C leave the sum unchanged.
func CumulativeGCSkew(s *nuc.Seq) []float64 {
	out := make([]float64, s.Len())
	sum := 0.0
	for i := 0; i < s.Len(); i++ {
		switch s.At(i) {
		case nuc.G:
			sum++
		case nuc.C:
			sum--
		}
		out[i] = sum
	}
	return out
}

func skewOf(g, c int) float64 {
	if g+c == 0 {
		return 0
	}
	return float64(g-c) / float64(g+c)
}
