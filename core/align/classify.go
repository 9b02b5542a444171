// core/align/classify.go
package align

import (
	"fmt"

	"seqscope-core/nuc"
)

// EqualLengthDiff classifies two same-length sequences position by
// position as Match or Mismatch, assuming no indels. O(n). Unequal
// lengths are an error, not something to truncate silently: the result
// comes back Truncated with a reason and empty masks.
func EqualLengthDiff(a, b *nuc.Seq) Result {
	n, m := a.Len(), b.Len()
	if n != m {
		return Result{
			Truncated: true,
			Reason:    fmt.Sprintf("sequence lengths differ (%d vs %d)", n, m),
		}
	}
	r := Result{
		MaskA: make([]Op, n),
		MaskB: make([]Op, n),
	}
	for i := 0; i < n; i++ {
		if nuc.CodeEqual(a.At(i), b.At(i)) {
			r.Matches++
			continue
		}
		r.MaskA[i] = Mismatch
		r.MaskB[i] = Mismatch
		r.Mismatches++
	}
	r.EditDistance = r.Mismatches
	return r
}
