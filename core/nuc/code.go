// core/nuc/code.go
package nuc

// Code is a nucleotide as a small integer: A=0 C=1 G=2 T=3, anything
// else (N, IUPAC degeneracies, garbage bytes) collapses to Ambiguous.
type Code uint8

const (
	A Code = iota
	C
	G
	T
	Ambiguous
)

// NumCodes counts the distinct Code values.
const NumCodes = 5

var byteToCode [256]Code

var codeToLetter = [NumCodes]byte{'A', 'C', 'G', 'T', 'N'}

func init() {
	for i := range byteToCode {
		byteToCode[i] = Ambiguous
	}
	byteToCode['A'], byteToCode['a'] = A, A
	byteToCode['C'], byteToCode['c'] = C, C
	byteToCode['G'], byteToCode['g'] = G, G
	byteToCode['T'], byteToCode['t'] = T, T
	// RNA input: U behaves as T everywhere.
	byteToCode['U'], byteToCode['u'] = T, T
}

// CodeOf maps a raw byte to its Code. Total and case-insensitive.
func CodeOf(b byte) Code { return byteToCode[b] }

// Letter is the canonical uppercase letter for a Code (Ambiguous = 'N').
func (c Code) Letter() byte { return codeToLetter[c] }

// Valid reports whether c is an unambiguous base.
func (c Code) Valid() bool { return c < Ambiguous }

// Complement maps A<->T, C<->G; Ambiguous stays Ambiguous.
func Complement(c Code) Code {
	if c >= Ambiguous {
		return Ambiguous
	}
	return 3 - c
}

// CodeEqual reports whether two codes match for comparison purposes.
// Ambiguous never equals anything, itself included; edit distances over
// N-containing input depend on that asymmetry.
func CodeEqual(a, b Code) bool {
	return a < Ambiguous && a == b
}

// BaseEqual is CodeEqual over raw bytes (case-folded, U treated as T).
func BaseEqual(a, b byte) bool {
	return CodeEqual(byteToCode[a], byteToCode[b])
}
