// core/stats/stats_test.go
package stats

import (
	"math"
	"strings"
	"testing"

	"seqscope-core/nuc"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestGCContent(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"GGCC", 100},
		{"AATT", 0},
		{"ACGT", 50},
		{"ACGN", 200.0 / 3.0},
		{"NNNN", 0},
		{"", 0},
	}
	for _, tc := range tests {
		if got := GCContent(nuc.EncodeString(tc.in)); !almostEqual(got, tc.want) {
			t.Errorf("GCContent(%q) = %f, want %f", tc.in, got, tc.want)
		}
	}
}

func TestGCSkewWindows(t *testing.T) {
	// GGGG -> +1, CCCC -> -1, AATT -> 0 (no G/C).
	s := nuc.EncodeString("GGGGCCCCAATT")
	got := GCSkew(s, 4, 4)
	want := []float64{1, -1, 0}
	if len(got) != len(want) {
		t.Fatalf("GCSkew len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("window %d: %f, want %f", i, got[i], want[i])
		}
	}
}

func TestGCSkewIncrementalMatchesRescan(t *testing.T) {
	in := "GCGCGGATCNGCCAGTACGGCATNGC"
	s := nuc.EncodeString(in)
	for _, wc := range []struct{ window, step int }{{5, 1}, {5, 2}, {4, 4}, {3, 7}} {
		got := GCSkew(s, wc.window, wc.step)
		// Reference: naive per-window rescan.
		var want []float64
		for start := 0; start+wc.window <= len(in); start += wc.step {
			var g, c int
			for _, b := range in[start : start+wc.window] {
				switch b {
				case 'G':
					g++
				case 'C':
					c++
				}
			}
			want = append(want, skewOf(g, c))
		}
		if len(got) != len(want) {
			t.Fatalf("w=%d s=%d: len %d, want %d", wc.window, wc.step, len(got), len(want))
		}
		for i := range want {
			if !almostEqual(got[i], want[i]) {
				t.Errorf("w=%d s=%d window %d: %f, want %f", wc.window, wc.step, i, got[i], want[i])
			}
		}
	}
}

func TestGCSkewOutOfDomain(t *testing.T) {
	s := nuc.EncodeString("ACGT")
	if GCSkew(s, 0, 1) != nil || GCSkew(s, 4, 0) != nil || GCSkew(s, 5, 1) != nil {
		t.Errorf("out-of-domain GCSkew should be nil")
	}
}

func TestCumulativeGCSkew(t *testing.T) {
	got := CumulativeGCSkew(nuc.EncodeString("GACNT"))
	want := []float64{1, 1, 0, 0, 0}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("pos %d: %f, want %f", i, got[i], want[i])
		}
	}
}

func TestShannonEntropy(t *testing.T) {
	if got := ShannonEntropy([]float64{0.25, 0.25, 0.25, 0.25}); !almostEqual(got, 2) {
		t.Errorf("uniform 4-way entropy = %f, want 2", got)
	}
	if got := ShannonEntropy([]float64{1}); !almostEqual(got, 0) {
		t.Errorf("point mass entropy = %f, want 0", got)
	}
	if got := ShannonEntropy(nil); got != 0 {
		t.Errorf("empty entropy = %f, want 0", got)
	}
	if got := ShannonEntropyFromCounts([]float64{10, 10}); !almostEqual(got, 1) {
		t.Errorf("two equal counts entropy = %f, want 1", got)
	}
}

func TestJensenShannonDivergence(t *testing.T) {
	p := []float64{0.5, 0.5, 0, 0}
	if got := JensenShannonDivergence(p, p); !almostEqual(got, 0) {
		t.Errorf("JSD(p,p) = %f, want 0", got)
	}
	q := []float64{0, 0, 0.5, 0.5}
	if got := JensenShannonDivergence(p, q); !almostEqual(got, 1) {
		t.Errorf("disjoint JSD = %f, want 1", got)
	}
	if got := JensenShannonDivergenceFromCounts([]float64{1, 1}, []float64{0, 0}); got != 1 {
		t.Errorf("one empty side = %f, want 1", got)
	}
}

func TestLinguisticComplexity(t *testing.T) {
	low := LinguisticComplexity(nuc.EncodeString(strings.Repeat("A", 40)), 4)
	high := LinguisticComplexity(nuc.EncodeString("ACGTAGCTTGACGTCAGATCGGATCCAGTCAGGATACGG"), 4)
	if low >= high {
		t.Errorf("homopolymer complexity %f should be below mixed %f", low, high)
	}
	if LinguisticComplexity(nuc.EncodeString(""), 3) != 0 {
		t.Errorf("empty sequence complexity should be 0")
	}
}

func TestWindowedComplexity(t *testing.T) {
	s := nuc.EncodeString("AAAAACGTACGTA")
	got := WindowedComplexity(s, 5, 4, 2)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0] >= got[1] {
		t.Errorf("homopolymer window %f should be below mixed %f", got[0], got[1])
	}
	if WindowedComplexity(s, 0, 1, 2) != nil || WindowedComplexity(s, 5, 1, 6) != nil {
		t.Errorf("out-of-domain WindowedComplexity should be nil")
	}
}

func TestHoeffdingsD(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if got := HoeffdingsD(x, x); !almostEqual(got.D, 1) {
		t.Errorf("perfect dependence D = %f, want 1", got.D)
	}
	if got := HoeffdingsD(x, []float64{1, 2, 3}); got.D != 0 {
		t.Errorf("length mismatch D = %f, want 0", got.D)
	}
	if got := HoeffdingsD(x[:4], x[:4]); got.D != 0 {
		t.Errorf("n<5 D = %f, want 0", got.D)
	}
}

func TestAverageRankTies(t *testing.T) {
	got := averageRank([]float64{10, 20, 20, 30})
	want := []float64{1, 2.5, 2.5, 4}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("rank[%d] = %f, want %f", i, got[i], want[i])
		}
	}
}
