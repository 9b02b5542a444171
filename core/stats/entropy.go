// core/stats/entropy.go
package stats

import "math"

// ShannonEntropy computes H = -sum(p*log2 p) over a probability
// distribution, in bits. Entries outside (0,1] are skipped; the result
// is clamped at 0 against rounding.
func ShannonEntropy(probs []float64) float64 {
	h := 0.0
	for _, p := range probs {
		if p > 0 && p <= 1 {
			h -= p * math.Log2(p)
		}
	}
	return math.Max(h, 0)
}

// ShannonEntropyFromCounts normalizes a count array and returns its
// entropy in bits. A zero or empty count array has entropy 0.
func ShannonEntropyFromCounts(counts []float64) float64 {
	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total <= 0 {
		return 0
	}
	h := 0.0
	for _, c := range counts {
		if c > 0 {
			p := c / total
			h -= p * math.Log2(p)
		}
	}
	return math.Max(h, 0)
}

// JensenShannonDivergence is the symmetric, [0,1]-bounded divergence
// between two distributions of equal length (log base 2). Length
// mismatch or empty input gives 0.
func JensenShannonDivergence(p, q []float64) float64 {
	if len(p) != len(q) || len(p) == 0 {
		return 0
	}
	jsd := 0.0
	for i := range p {
		pi := math.Max(p[i], 0)
		qi := math.Max(q[i], 0)
		mi := 0.5 * (pi + qi)
		if mi > 0 {
			if pi > 0 {
				jsd += 0.5 * pi * math.Log2(pi/mi)
			}
			if qi > 0 {
				jsd += 0.5 * qi * math.Log2(qi/mi)
			}
		}
	}
	return math.Min(math.Max(jsd, 0), 1)
}

// JensenShannonDivergenceFromCounts normalizes two count arrays before
// taking the divergence. One empty side counts as maximally divergent.
func JensenShannonDivergenceFromCounts(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var totalA, totalB float64
	for i := range a {
		totalA += a[i]
		totalB += b[i]
	}
	if totalA <= 0 || totalB <= 0 {
		if totalA <= 0 && totalB <= 0 {
			return 0
		}
		return 1
	}
	p := make([]float64, len(a))
	q := make([]float64, len(b))
	for i := range a {
		p[i] = a[i] / totalA
		q[i] = b[i] / totalB
	}
	return JensenShannonDivergence(p, q)
}
