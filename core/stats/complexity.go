// core/stats/complexity.go
package stats

import "seqscope-core/nuc"

// LinguisticComplexity is the ratio of distinct substrings up to length
// maxK to the maximum possible for a 4-letter alphabet. Low values flag
// repetitive regions. Empty input or maxK 0 gives 0.
func LinguisticComplexity(s *nuc.Seq, maxK int) float64 {
	letters := s.Letters()
	n := len(letters)
	if n == 0 || maxK <= 0 {
		return 0
	}
	if maxK > n {
		maxK = n
	}
	var distinct, possible uint64
	for k := 1; k <= maxK; k++ {
		distinct += countDistinct(letters, k)
		possible += maxDistinct(k, n)
	}
	if possible == 0 {
		return 0
	}
	return float64(distinct) / float64(possible)
}

// WindowedComplexity reports the distinct-k-mer fraction for each
// sliding window. Out-of-domain parameters (zero window/step/k, k or
// window larger than available) give nil.
func WindowedComplexity(s *nuc.Seq, window, step, k int) []float64 {
	letters := s.Letters()
	n := len(letters)
	if window <= 0 || step <= 0 || k <= 0 || n < window || k > window {
		return nil
	}
	numWindows := (n-window)/step + 1
	out := make([]float64, 0, numWindows)
	for w := 0; w < numWindows; w++ {
		win := letters[w*step : w*step+window]
		distinct := countDistinct(win, k)
		max := maxDistinct(k, window)
		if max == 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, float64(distinct)/float64(max))
	}
	return out
}

func countDistinct(letters []byte, k int) uint64 {
	if k > len(letters) {
		return 0
	}
	seen := make(map[string]struct{}, len(letters)-k+1)
	for i := 0; i+k <= len(letters); i++ {
		seen[string(letters[i:i+k])] = struct{}{}
	}
	return uint64(len(seen))
}

// maxDistinct is min(4^k, windows) without overflowing 4^k for large k.
func maxDistinct(k, n int) uint64 {
	windows := uint64(n - k + 1)
	if k >= 32 {
		return windows
	}
	pow := uint64(1) << (2 * uint(k))
	if pow < windows {
		return pow
	}
	return windows
}
