// core/nuc/rc.go
package nuc

var complement [256]byte

func init() {
	pairs := []struct{ a, b byte }{
		{'A', 'T'}, {'C', 'G'},
		{'R', 'Y'}, {'K', 'M'}, {'B', 'V'}, {'D', 'H'},
		{'S', 'S'}, {'W', 'W'}, {'N', 'N'},
	}
	for _, p := range pairs {
		complement[p.a] = p.b
		complement[p.b] = p.a
		complement[p.a|0x20] = p.b | 0x20
		complement[p.b|0x20] = p.a | 0x20
	}
	// RNA uracil complements to A, keeping case.
	complement['U'], complement['u'] = 'A', 'a'
}

// RevCompBytes reverse-complements raw sequence bytes, IUPAC codes
// included, preserving case. Bytes outside the alphabet pass through
// unchanged.
func RevCompBytes(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := seq[n-1-i]
		c := complement[b]
		if c == 0 {
			c = b
		}
		out[i] = c
	}
	return out
}
