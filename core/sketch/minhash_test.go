// core/sketch/minhash_test.go
package sketch

import (
	"math"
	"strings"
	"testing"

	"seqscope-core/nuc"
)

func TestMinHashDeterministic(t *testing.T) {
	s := nuc.EncodeString("ACGTACGTGGCCAATT")
	a := MinHash(s, 4, 16)
	b := MinHash(nuc.EncodeString("ACGTACGTGGCCAATT"), 4, 16)
	if len(a.Mins) != 16 || len(b.Mins) != 16 {
		t.Fatalf("signature length %d/%d, want 16", len(a.Mins), len(b.Mins))
	}
	for i := range a.Mins {
		if a.Mins[i] != b.Mins[i] {
			t.Fatalf("slot %d differs: %d vs %d", i, a.Mins[i], b.Mins[i])
		}
	}
}

func TestMinHashCaseInsensitive(t *testing.T) {
	a := MinHash(nuc.EncodeString("acgtacgtggcc"), 3, 8)
	b := MinHash(nuc.EncodeString("ACGTACGTGGCC"), 3, 8)
	if Jaccard(a, b) != 1.0 {
		t.Errorf("case variants should sketch identically")
	}
}

func TestJaccardSelf(t *testing.T) {
	sig := MinHash(nuc.EncodeString("ACGTAGGCTTACGA"), 3, 32)
	if sig.Empty() {
		t.Fatalf("signature unexpectedly empty")
	}
	if got := Jaccard(sig, sig); got != 1.0 {
		t.Errorf("Jaccard(sig,sig) = %f, want 1.0", got)
	}
}

func TestJaccardEmptyAndMismatch(t *testing.T) {
	empty := MinHash(nuc.EncodeString("NNNN"), 3, 8)
	if !empty.Empty() {
		t.Fatalf("all-N sequence should produce an empty signature")
	}
	if Jaccard(empty, empty) != 0 {
		t.Errorf("two empty signatures must have similarity 0")
	}
	full := MinHash(nuc.EncodeString("ACGTACGT"), 3, 8)
	if Jaccard(empty, full) != 0 || Jaccard(full, empty) != 0 {
		t.Errorf("empty vs non-empty must be 0")
	}
	other := MinHash(nuc.EncodeString("ACGTACGT"), 3, 16)
	if Jaccard(full, other) != 0 {
		t.Errorf("mismatched signature lengths must be 0")
	}
}

func TestJaccardDisjointNearZero(t *testing.T) {
	// Two sequences sharing no 8-mer: homopolymer runs of different bases.
	a := MinHash(nuc.EncodeString(strings.Repeat("AC", 200)), 8, 128)
	b := MinHash(nuc.EncodeString(strings.Repeat("GT", 200)), 8, 128)
	if got := Jaccard(a, b); got > 0.1 {
		t.Errorf("disjoint k-mer sets: Jaccard = %f, want near 0", got)
	}
}

func TestMinHashCanonicalStrandSymmetry(t *testing.T) {
	s := nuc.EncodeString("ACGTAGGCTTACGATCCGGA")
	a := MinHashCanonical(s, 5, 32)
	b := MinHashCanonical(s.RevComp(), 5, 32)
	if got := Jaccard(a, b); got != 1.0 {
		t.Errorf("canonical sketch must be strand independent, Jaccard = %f", got)
	}
}

func TestMinHashOutOfDomain(t *testing.T) {
	s := nuc.EncodeString("ACGT")
	for _, tc := range []struct{ k, seeds int }{{0, 8}, {33, 8}, {3, 0}, {3, -1}} {
		sig := MinHash(s, tc.k, tc.seeds)
		if !sig.Empty() {
			t.Errorf("k=%d seeds=%d should be empty", tc.k, tc.seeds)
		}
	}
	// Sequence shorter than k.
	sig := MinHash(nuc.EncodeString("AC"), 3, 4)
	for _, v := range sig.Mins {
		if v != math.MaxUint32 {
			t.Errorf("short sequence should leave all-max signature")
		}
	}
}
