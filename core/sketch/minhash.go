// core/sketch/minhash.go
package sketch

import (
	"math"

	"seqscope-core/kmer"
	"seqscope-core/nuc"
)

// Hash schedule shared with the host: seed i is i*0x9e3779b9 and each
// k-mer letter feeds an FNV-1a round. Changing either constant breaks
// signature compatibility.
const (
	seedStep = 0x9e3779b9
	fnvPrime = 0x01000193
)

// Signature is a MinHash sketch: one running 32-bit minimum per seed.
// A signature still holding math.MaxUint32 in every slot has seen no
// k-mer and is "empty": it has zero similarity to everything, another
// empty signature included.
type Signature struct {
	K          int
	Mins       []uint32
	TotalKmers uint64
}

// Empty reports whether no k-mer was ever folded into the signature.
func (s Signature) Empty() bool {
	if len(s.Mins) == 0 {
		return true
	}
	for _, v := range s.Mins {
		if v != math.MaxUint32 {
			return false
		}
	}
	return true
}

// MinHash sketches the forward-strand k-mers of s under seedCount
// independent hash seeds. k outside [1, kmer.MaxK] or seedCount <= 0
// yields an empty signature; so does a sequence with no ambiguity-free
// k-mer. Output depends only on (content, k, seedCount).
func MinHash(s *nuc.Seq, k, seedCount int) Signature {
	return minhash(s, k, seedCount, false)
}

// MinHashCanonical sketches strand-independently: each window is hashed
// by its canonical (min of forward and reverse-complement) k-mer.
func MinHashCanonical(s *nuc.Seq, k, seedCount int) Signature {
	return minhash(s, k, seedCount, true)
}

func minhash(s *nuc.Seq, k, seedCount int, canonical bool) Signature {
	if k < 1 || k > kmer.MaxK || seedCount <= 0 {
		return Signature{K: k}
	}
	sig := Signature{K: k, Mins: make([]uint32, seedCount)}
	for i := range sig.Mins {
		sig.Mins[i] = math.MaxUint32
	}
	r := kmer.NewRoller(k)
	letters := make([]byte, k)
	for i := 0; i < s.Len(); i++ {
		fwd, canon, ok := r.Feed(s.At(i))
		if !ok {
			continue
		}
		idx := fwd
		if canonical {
			idx = canon
		}
		decodeInto(letters, idx, k)
		sig.TotalKmers++
		for seed := 0; seed < seedCount; seed++ {
			h := uint32(seed) * seedStep
			for _, b := range letters {
				h ^= uint32(b)
				h *= fnvPrime
			}
			if h < sig.Mins[seed] {
				sig.Mins[seed] = h
			}
		}
	}
	return sig
}

func decodeInto(dst []byte, idx uint64, k int) {
	for i := k - 1; i >= 0; i-- {
		dst[i] = nuc.Code(idx & 3).Letter()
		idx >>= 2
	}
}

// Jaccard estimates set similarity as the fraction of agreeing signature
// slots. Mismatched lengths or an empty signature on either side give 0.
func Jaccard(a, b Signature) float64 {
	if len(a.Mins) == 0 || len(a.Mins) != len(b.Mins) {
		return 0
	}
	if a.Empty() || b.Empty() {
		return 0
	}
	agree := 0
	for i := range a.Mins {
		if a.Mins[i] == b.Mins[i] {
			agree++
		}
	}
	return float64(agree) / float64(len(a.Mins))
}
