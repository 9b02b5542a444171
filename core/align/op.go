// core/align/op.go
package align

// Op tags one position of a diff mask.
type Op uint8

const (
	Match Op = iota
	Mismatch
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Match:
		return "M"
	case Mismatch:
		return "X"
	case Insert:
		return "I"
	case Delete:
		return "D"
	}
	return "?"
}

// Result is the outcome of a pairwise comparison. MaskA covers every
// position of the first sequence in order (Match/Mismatch/Delete), MaskB
// every position of the second (Match/Mismatch/Insert). Truncated means
// a guardrail fired before an exact answer; Reason says which.
type Result struct {
	EditDistance int
	MaskA        []Op
	MaskB        []Op

	Matches    int
	Mismatches int
	Insertions int
	Deletions  int

	Truncated bool
	Reason    string
}

// Identity is matches over all classified positions, defined as 1.0
// when nothing was classified.
func (r Result) Identity() float64 {
	denom := r.Matches + r.Mismatches + r.Insertions + r.Deletions
	if denom == 0 {
		return 1.0
	}
	return float64(r.Matches) / float64(denom)
}
