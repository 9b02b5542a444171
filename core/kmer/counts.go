// core/kmer/counts.go
package kmer

import (
	"math"

	"seqscope-core/nuc"
)

// Counts is a dense k-mer count table: Counts[idx] is the number of
// occurrences of the k-mer whose packed 2-bit index is idx. TotalValid
// is the number of ambiguity-free length-k windows counted.
type Counts struct {
	K          int
	Counts     []uint32
	TotalValid uint64
}

// CountK counts every ambiguity-free k-mer of s into a dense 4^k table.
// k outside [1, MaxDenseK] returns a zero-value result; a sequence
// shorter than k returns the sized table with all zeros. Callers sweep k
// interactively, so out-of-domain parameters are a safe empty, not an
// error.
func CountK(s *nuc.Seq, k int) Counts {
	return countK(s, k, false)
}

// CountKCanonical is CountK with strand-independent counting: each
// window is counted at min(forward, reverse-complement) index, so a
// sequence and its reverse complement produce identical tables.
func CountKCanonical(s *nuc.Seq, k int) Counts {
	return countK(s, k, true)
}

func countK(s *nuc.Seq, k int, canonical bool) Counts {
	if k < 1 || k > MaxDenseK {
		return Counts{}
	}
	out := Counts{K: k, Counts: make([]uint32, 1<<(2*uint(k)))}
	r := NewRoller(k)
	for i := 0; i < s.Len(); i++ {
		fwd, canon, ok := r.Feed(s.At(i))
		if !ok {
			continue
		}
		idx := fwd
		if canonical {
			idx = canon
		}
		if out.Counts[idx] < math.MaxUint32 {
			out.Counts[idx]++
		}
		out.TotalValid++
	}
	return out
}
