// core/kmer/roller.go
package kmer

import "seqscope-core/nuc"

// MaxK is the widest k-mer a 64-bit register can pack (2 bits per base).
const MaxK = 32

// MaxDenseK bounds dense count tables: 4^10 uint32 counters is ~4 MiB,
// the ceiling for caller-driven allocation.
const MaxDenseK = 10

// Roller maintains the forward packed index, the mirrored
// reverse-complement index, and the current run of unambiguous bases.
// Feeding an ambiguous code resets everything, so no emitted k-mer ever
// spans an ambiguous position.
type Roller struct {
	k     int
	mask  uint64
	shift uint // bit position of the top base in the rc register

	fwd uint64
	rc  uint64
	run int
}

// NewRoller returns a Roller for k in [1, MaxK]; k outside that range
// yields a Roller that never emits.
func NewRoller(k int) *Roller {
	r := &Roller{k: k}
	if k >= 1 && k <= MaxK {
		r.mask = (uint64(1) << (2 * uint(k))) - 1
		r.shift = 2 * uint(k-1)
	}
	return r
}

// Feed advances the register by one code. It returns the forward and
// canonical (min of forward and reverse-complement) indexes and whether
// a full ambiguity-free k-mer is in the window.
func (r *Roller) Feed(c nuc.Code) (fwd, canonical uint64, ok bool) {
	if r.mask == 0 {
		return 0, 0, false
	}
	if !c.Valid() {
		r.fwd, r.rc, r.run = 0, 0, 0
		return 0, 0, false
	}
	r.fwd = (r.fwd<<2 | uint64(c)) & r.mask
	// Complement enters at the top: the rc register reads the window
	// 3'→5' on the opposite strand.
	r.rc = (r.rc >> 2) | (uint64(nuc.Complement(c)) << r.shift)
	if r.run < r.k {
		r.run++
	}
	if r.run < r.k {
		return 0, 0, false
	}
	canonical = r.fwd
	if r.rc < canonical {
		canonical = r.rc
	}
	return r.fwd, canonical, true
}

// Reset clears the registers and run length.
func (r *Roller) Reset() { r.fwd, r.rc, r.run = 0, 0, 0 }

// Decode expands a packed index back into its k uppercase letters.
func Decode(idx uint64, k int) []byte {
	out := make([]byte, k)
	for i := k - 1; i >= 0; i-- {
		out[i] = nuc.Code(idx & 3).Letter()
		idx >>= 2
	}
	return out
}
