// core/dotplot/dotplot.go
package dotplot

import "seqscope-core/nuc"

// MaxCells bounds the matrix allocation a caller can request: two
// float32 matrices of 2048x2048 stay under 64 MiB.
const MaxCells = 2048 * 2048

// Plot holds two row-major bins x bins identity matrices for a
// self-comparison: Direct compares windows as-is, Inverted compares each
// window against the reverse complement of the other.
type Plot struct {
	Bins     int
	Window   int
	Direct   []float32
	Inverted []float32
}

// Self samples bins evenly spaced windows of the given size and fills
// both identity matrices for every unordered window pair, mirroring
// (i,j) into (j,i). Ambiguous positions never match in either direction.
// Out-of-domain parameters (non-positive bins/window, window longer than
// the sequence, matrices over MaxCells) give a zero-value Plot.
func Self(s *nuc.Seq, bins, window int) Plot {
	n := s.Len()
	if bins <= 0 || window <= 0 || window > n || bins*bins > MaxCells {
		return Plot{}
	}
	p := Plot{
		Bins:     bins,
		Window:   window,
		Direct:   make([]float32, bins*bins),
		Inverted: make([]float32, bins*bins),
	}
	starts := make([]int, bins)
	for i := range starts {
		if bins == 1 {
			starts[i] = 0
		} else {
			starts[i] = i * (n - window) / (bins - 1)
		}
	}
	for i := 0; i < bins; i++ {
		for j := i; j < bins; j++ {
			direct, inverted := compareWindows(s, starts[i], starts[j], window)
			p.Direct[i*bins+j] = direct
			p.Direct[j*bins+i] = direct
			p.Inverted[i*bins+j] = inverted
			p.Inverted[j*bins+i] = inverted
		}
	}
	return p
}

// compareWindows returns the identity fraction of the two windows read
// forward, and of the first window against the reverse complement of the
// second.
func compareWindows(s *nuc.Seq, a, b, window int) (direct, inverted float32) {
	var dm, im int
	for off := 0; off < window; off++ {
		ca := s.At(a + off)
		if nuc.CodeEqual(ca, s.At(b+off)) {
			dm++
		}
		// Reverse complement of window b at offset off reads base
		// b+window-1-off on the opposite strand.
		if nuc.CodeEqual(ca, nuc.Complement(s.At(b+window-1-off))) {
			im++
		}
	}
	return float32(dm) / float32(window), float32(im) / float32(window)
}
