// core/stats/hoeffding.go
package stats

import (
	"math"
	"sort"
)

// HoeffdingResult carries Hoeffding's D and the sample size it was
// computed over.
type HoeffdingResult struct {
	D float64
	N int
}

// HoeffdingsD measures statistical dependence between two equal-length
// vectors. Unlike Pearson or Spearman it detects arbitrary (also
// non-monotonic) relationships. D is roughly in [-0.5, 1]: near 0 means
// independent, 1 perfect dependence. Fewer than 5 observations or a
// length mismatch give D=0. O(n^2).
func HoeffdingsD(x, y []float64) HoeffdingResult {
	n := len(x)
	if n != len(y) || n < 5 {
		return HoeffdingResult{N: n}
	}
	nf := float64(n)

	r := averageRank(x)
	s := averageRank(y)

	// Q[i] = 1 + #(both below) + 1/4 #(both tied) + 1/2 #(one tied, one below).
	q := make([]float64, n)
	for i := 0; i < n; i++ {
		ri, si := r[i], s[i]
		var lessThan, equalBoth, equalR, equalS float64
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			rj, sj := r[j], s[j]
			switch {
			case rj < ri && sj < si:
				lessThan++
			case rj == ri && sj == si:
				equalBoth++
			case rj == ri && sj < si:
				equalR++
			case rj < ri && sj == si:
				equalS++
			}
		}
		q[i] = 1 + lessThan + 0.25*equalBoth + 0.5*(equalR+equalS)
	}

	var d1, d2, d3 float64
	for i := 0; i < n; i++ {
		d1 += (q[i] - 1) * (q[i] - 2)
		d2 += (r[i] - 1) * (r[i] - 2) * (s[i] - 1) * (s[i] - 2)
		d3 += (r[i] - 2) * (s[i] - 2) * (q[i] - 1)
	}

	denom := nf * (nf - 1) * (nf - 2) * (nf - 3) * (nf - 4)
	num := 30 * ((nf-2)*(nf-3)*d1 + d2 - 2*(nf-2)*d3)
	if math.Abs(denom) <= 1e-10 {
		return HoeffdingResult{N: n}
	}
	return HoeffdingResult{D: num / denom, N: n}
}

// averageRank assigns 1-based ranks with ties receiving the average of
// their positions.
func averageRank(data []float64) []float64 {
	n := len(data)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return data[idx[a]] < data[idx[b]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		total := 0.0
		for j < n && data[idx[j]] == data[idx[i]] {
			total += float64(j + 1)
			j++
		}
		avg := total / float64(j-i)
		for k := i; k < j; k++ {
			ranks[idx[k]] = avg
		}
		i = j
	}
	return ranks
}
