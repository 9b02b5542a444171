// core/kmer/compare.go
package kmer

import (
	"math"

	"seqscope-core/stats"
)

// Comparison holds set- and count-based similarity metrics between two
// k-mer tables of the same k.
type Comparison struct {
	K int

	UniqueA int // distinct k-mers in a
	UniqueB int // distinct k-mers in b
	Shared  int // distinct k-mers present in both

	Jaccard         float64 // shared / union over distinct sets; 1.0 when both sets are empty
	ContainmentAinB float64 // shared / UniqueA; 0 when a has no k-mers
	ContainmentBinA float64 // shared / UniqueB; 0 when b has no k-mers
	Cosine          float64 // count-vector cosine similarity; 0 when either vector is zero
	BrayCurtis      float64 // Σ|a−b| / Σ(a+b) over counts; 0 when both vectors are zero
}

// Compare computes all pairwise metrics over two count tables. The
// tables must come from the same k; a k mismatch or an out-of-domain
// table yields a zero-value Comparison.
func Compare(a, b Counts) Comparison {
	if a.K != b.K || a.K < 1 || a.K > MaxDenseK {
		return Comparison{}
	}
	if len(a.Counts) != len(b.Counts) {
		return Comparison{}
	}

	cmp := Comparison{K: a.K}
	var dot, normA, normB, sumDiff, sumTotal float64
	for i := range a.Counts {
		ca, cb := float64(a.Counts[i]), float64(b.Counts[i])
		if ca > 0 {
			cmp.UniqueA++
		}
		if cb > 0 {
			cmp.UniqueB++
		}
		if ca > 0 && cb > 0 {
			cmp.Shared++
		}
		dot += ca * cb
		normA += ca * ca
		normB += cb * cb
		sumDiff += math.Abs(ca - cb)
		sumTotal += ca + cb
	}

	union := cmp.UniqueA + cmp.UniqueB - cmp.Shared
	if union > 0 {
		cmp.Jaccard = float64(cmp.Shared) / float64(union)
	} else {
		cmp.Jaccard = 1.0
	}
	if cmp.UniqueA > 0 {
		cmp.ContainmentAinB = float64(cmp.Shared) / float64(cmp.UniqueA)
	}
	if cmp.UniqueB > 0 {
		cmp.ContainmentBinA = float64(cmp.Shared) / float64(cmp.UniqueB)
	}
	if normA > 0 && normB > 0 {
		cmp.Cosine = dot / (math.Sqrt(normA) * math.Sqrt(normB))
	}
	if sumTotal > 0 {
		cmp.BrayCurtis = sumDiff / sumTotal
	}
	return cmp
}

// HoeffdingsD measures the statistical dependence between two count
// tables over their aligned frequency vectors: one observation per
// k-mer present in either table, in index (alphabetical) order. Two
// empty tables agree perfectly (D=1, N=0); fewer than five shared
// observations is too little data (D=0).
func HoeffdingsD(a, b Counts) stats.HoeffdingResult {
	if a.K != b.K || a.K < 1 || a.K > MaxDenseK || len(a.Counts) != len(b.Counts) {
		return stats.HoeffdingResult{}
	}

	var x, y []float64
	for i := range a.Counts {
		if a.Counts[i] > 0 || b.Counts[i] > 0 {
			x = append(x, float64(a.Counts[i]))
			y = append(y, float64(b.Counts[i]))
		}
	}
	if len(x) == 0 {
		return stats.HoeffdingResult{D: 1.0, N: 0}
	}
	// Fewer than 5 observations gives D=0 inside stats.HoeffdingsD.
	return stats.HoeffdingsD(x, y)
}
