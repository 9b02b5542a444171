// core/kmer/compare_test.go
package kmer

import (
	"math"
	"testing"

	"seqscope-core/nuc"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCompareIdentical(t *testing.T) {
	c := CountK(nuc.EncodeString("ACGTACGTAC"), 2)
	cmp := Compare(c, c)
	if cmp.K != 2 {
		t.Fatalf("K = %d", cmp.K)
	}
	if cmp.UniqueA != cmp.UniqueB || cmp.Shared != cmp.UniqueA {
		t.Errorf("sets: %d/%d shared %d", cmp.UniqueA, cmp.UniqueB, cmp.Shared)
	}
	if !almostEqual(cmp.Jaccard, 1) || !almostEqual(cmp.ContainmentAinB, 1) || !almostEqual(cmp.ContainmentBinA, 1) {
		t.Errorf("set metrics: %+v", cmp)
	}
	if !almostEqual(cmp.Cosine, 1) || !almostEqual(cmp.BrayCurtis, 0) {
		t.Errorf("count metrics: %+v", cmp)
	}
}

func TestCompareDisjoint(t *testing.T) {
	a := CountK(nuc.EncodeString("AAAAAA"), 2) // only AA
	b := CountK(nuc.EncodeString("TTTTTT"), 2) // only TT
	cmp := Compare(a, b)
	if cmp.Shared != 0 {
		t.Errorf("shared = %d", cmp.Shared)
	}
	if cmp.Jaccard != 0 || cmp.ContainmentAinB != 0 || cmp.ContainmentBinA != 0 || cmp.Cosine != 0 {
		t.Errorf("similarities should be zero: %+v", cmp)
	}
	if !almostEqual(cmp.BrayCurtis, 1) {
		t.Errorf("BrayCurtis = %v, want 1", cmp.BrayCurtis)
	}
}

func TestComparePartialOverlap(t *testing.T) {
	// ACGT: {AC, CG, GT}; ACGA: {AC, CG, GA}. Two of four union members
	// shared, all counts 1.
	a := CountK(nuc.EncodeString("ACGT"), 2)
	b := CountK(nuc.EncodeString("ACGA"), 2)
	cmp := Compare(a, b)
	if cmp.UniqueA != 3 || cmp.UniqueB != 3 || cmp.Shared != 2 {
		t.Fatalf("sets: %+v", cmp)
	}
	if !almostEqual(cmp.Jaccard, 0.5) {
		t.Errorf("Jaccard = %v, want 0.5", cmp.Jaccard)
	}
	if !almostEqual(cmp.ContainmentAinB, 2.0/3.0) || !almostEqual(cmp.ContainmentBinA, 2.0/3.0) {
		t.Errorf("containment: %+v", cmp)
	}
	if !almostEqual(cmp.Cosine, 2.0/3.0) {
		t.Errorf("Cosine = %v, want 2/3", cmp.Cosine)
	}
	if !almostEqual(cmp.BrayCurtis, 1.0/3.0) {
		t.Errorf("BrayCurtis = %v, want 1/3", cmp.BrayCurtis)
	}
}

func TestCompareBothEmpty(t *testing.T) {
	a := CountK(nuc.EncodeString("A"), 2) // too short, sized zero table
	cmp := Compare(a, a)
	if !almostEqual(cmp.Jaccard, 1) {
		t.Errorf("empty-vs-empty Jaccard = %v, want 1", cmp.Jaccard)
	}
	if cmp.Cosine != 0 || cmp.BrayCurtis != 0 || cmp.ContainmentAinB != 0 {
		t.Errorf("count metrics should be zero: %+v", cmp)
	}
}

func TestCompareOutOfDomain(t *testing.T) {
	a := CountK(nuc.EncodeString("ACGT"), 2)
	b := CountK(nuc.EncodeString("ACGT"), 3)
	if cmp := Compare(a, b); cmp != (Comparison{}) {
		t.Errorf("k mismatch should yield a zero value: %+v", cmp)
	}
	if cmp := Compare(Counts{}, Counts{}); cmp != (Comparison{}) {
		t.Errorf("zero tables should yield a zero value: %+v", cmp)
	}
}

func TestHoeffdingsDMonotoneCounts(t *testing.T) {
	// Five distinct aligned counts, identical on both sides: perfect
	// dependence, D exactly 1.
	a := Counts{K: 2, Counts: make([]uint32, 16)}
	for i := 0; i < 5; i++ {
		a.Counts[i] = uint32(i + 1)
	}
	got := HoeffdingsD(a, a)
	if got.N != 5 {
		t.Fatalf("N = %d, want 5", got.N)
	}
	if !almostEqual(got.D, 1) {
		t.Errorf("D = %v, want 1", got.D)
	}
}

func TestHoeffdingsDEdges(t *testing.T) {
	empty := Counts{K: 2, Counts: make([]uint32, 16)}
	if got := HoeffdingsD(empty, empty); !almostEqual(got.D, 1) || got.N != 0 {
		t.Errorf("both empty: %+v", got)
	}

	// Union below five observations is too little data.
	a := CountK(nuc.EncodeString("ACGT"), 2)
	if got := HoeffdingsD(a, a); got.D != 0 || got.N != 3 {
		t.Errorf("small union: %+v", got)
	}

	mismatch := CountK(nuc.EncodeString("ACGT"), 3)
	if got := HoeffdingsD(a, mismatch); got.D != 0 || got.N != 0 {
		t.Errorf("k mismatch: %+v", got)
	}
}
