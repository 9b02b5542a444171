// core/repeat/palindrome.go
package repeat

import "seqscope-core/nuc"

// Palindrome is an inverted repeat: two complementary arms of ArmLen
// around an optional spacer of Gap bases.
type Palindrome struct {
	Start  int
	End    int
	ArmLen int
	Gap    int
}

// Palindromes finds inverted repeats with arms of at least minArm and a
// spacer of at most maxGap. Centers are scanned with arms expanded
// outward while the flanking bases complement each other; ambiguous
// bases never complement anything.
func Palindromes(seq []byte, minArm, maxGap int) []Palindrome {
	n := len(seq)
	if minArm <= 0 || n < minArm*2 {
		return nil
	}
	var out []Palindrome
	for center := minArm; center <= n-minArm; center++ {
		for gap := 0; gap <= maxGap; gap++ {
			half := gap / 2
			if center < minArm+half || center+half+minArm > n {
				continue
			}
			armLen := 0
			for off := 0; ; off++ {
				left := center - half - off - 1
				right := center + half + off
				if left < 0 || right >= n {
					break
				}
				if !complementary(seq[left], seq[right]) {
					break
				}
				armLen = off + 1
			}
			if armLen >= minArm {
				out = append(out, Palindrome{
					Start:  center - half - armLen,
					End:    center + half + armLen,
					ArmLen: armLen,
					Gap:    gap,
				})
			}
		}
	}
	return out
}

func complementary(a, b byte) bool {
	ca := nuc.CodeOf(a)
	return ca.Valid() && nuc.Complement(ca) == nuc.CodeOf(b)
}
