// core/translate/codon.go
package translate

import "seqscope-core/nuc"

// codonTable is the standard genetic code (translation table 1), indexed
// by (b0<<4)|(b1<<2)|b2 over 2-bit base codes in AAA..TTT order.
const codonTable = "KNKNTTTTRSRSIIMIQHQHPPPPRRRRLLLLEDEDAAAAGGGGVVVV*Y*YSSSS*CWCLFLF"

// Unknown marks a codon containing an ambiguous base.
const Unknown = 'X'

// Codon translates one codon. Any ambiguous base yields Unknown.
func Codon(b0, b1, b2 byte) byte {
	c0, c1, c2 := nuc.CodeOf(b0), nuc.CodeOf(b1), nuc.CodeOf(b2)
	if !c0.Valid() || !c1.Valid() || !c2.Valid() {
		return Unknown
	}
	return codonTable[uint(c0)<<4|uint(c1)<<2|uint(c2)]
}

// Translate converts a DNA sequence to amino acids in the given reading
// frame (clamped to 0..2). Trailing bases short of a codon are dropped;
// input shorter than frame+3 yields nil.
func Translate(seq []byte, frame int) []byte {
	if frame < 0 {
		frame = 0
	} else if frame > 2 {
		frame = 2
	}
	if len(seq) < frame+3 {
		return nil
	}
	out := make([]byte, 0, (len(seq)-frame)/3)
	for i := frame; i+3 <= len(seq); i += 3 {
		out = append(out, Codon(seq[i], seq[i+1], seq[i+2]))
	}
	return out
}

// Usage counts codon occurrences (uppercased) in the given frame.
func Usage(seq []byte, frame int) map[string]int {
	if frame < 0 {
		frame = 0
	} else if frame > 2 {
		frame = 2
	}
	counts := make(map[string]int)
	var buf [3]byte
	for i := frame; i+3 <= len(seq); i += 3 {
		for j := 0; j < 3; j++ {
			b := seq[i+j]
			if 'a' <= b && b <= 'z' {
				b -= 'a' - 'A'
			}
			buf[j] = b
		}
		counts[string(buf[:])]++
	}
	return counts
}
