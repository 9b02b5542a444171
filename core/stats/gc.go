// core/stats/gc.go
package stats

import "seqscope-core/nuc"

// GCContent is the percentage of G+C among unambiguous bases. Ambiguous
// positions are excluded from numerator and denominator; a sequence with
// no valid base reports 0.
func GCContent(s *nuc.Seq) float64 {
	var gc, total int
	for i := 0; i < s.Len(); i++ {
		switch s.At(i) {
		case nuc.G, nuc.C:
			gc++
			total++
		case nuc.A, nuc.T:
			total++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(gc) / float64(total) * 100
}
