// core/nuc/seq.go
package nuc

// Seq is an encoded nucleotide sequence: one Code per input byte plus
// the count of unambiguous bases. Immutable after Encode; every analysis
// reads it and returns freshly allocated results, so concurrent use
// needs no locking.
type Seq struct {
	codes []Code
	valid int
}

// Encode converts raw bytes into a Seq. It is total: any byte maps to a
// Code, empty input yields a zero-length Seq.
func Encode(b []byte) *Seq {
	s := &Seq{codes: make([]Code, len(b))}
	for i, c := range b {
		code := byteToCode[c]
		s.codes[i] = code
		if code < Ambiguous {
			s.valid++
		}
	}
	return s
}

// EncodeString is Encode for string input.
func EncodeString(str string) *Seq { return Encode([]byte(str)) }

// Len is the number of encoded positions.
func (s *Seq) Len() int { return len(s.codes) }

// ValidCount is the number of unambiguous (A/C/G/T/U) positions.
func (s *Seq) ValidCount() int { return s.valid }

// At returns the Code at position i.
func (s *Seq) At(i int) Code { return s.codes[i] }

// Letters renders the sequence back to uppercase letters (Ambiguous = 'N').
func (s *Seq) Letters() []byte {
	out := make([]byte, len(s.codes))
	for i, c := range s.codes {
		out[i] = codeToLetter[c]
	}
	return out
}

// RevComp returns a newly allocated reverse complement of s.
func (s *Seq) RevComp() *Seq {
	n := len(s.codes)
	out := &Seq{codes: make([]Code, n), valid: s.valid}
	for i := 0; i < n; i++ {
		out.codes[i] = Complement(s.codes[n-1-i])
	}
	return out
}
