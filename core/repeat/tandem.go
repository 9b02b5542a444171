// core/repeat/tandem.go
package repeat

import "bytes"

// Tandem is a run of consecutive copies of a repeat unit.
type Tandem struct {
	Start  int
	End    int
	Unit   string
	Copies int
}

// TandemRepeats finds runs of at least minCopies consecutive copies of
// units between minUnit and maxUnit bases, case-insensitively. Every
// qualifying (start, unit length) run is reported, nested-unit hits
// included, matching how a caller sweeps unit sizes.
func TandemRepeats(seq []byte, minUnit, maxUnit, minCopies int) []Tandem {
	n := len(seq)
	if minUnit <= 0 || minCopies <= 0 || n < minUnit*minCopies {
		return nil
	}
	var out []Tandem
	for start := 0; start < n; start++ {
		limit := maxUnit
		if limit > n-start {
			limit = n - start
		}
		for unitLen := minUnit; unitLen <= limit; unitLen++ {
			unit := seq[start : start+unitLen]
			copies := 1
			for pos := start + unitLen; pos+unitLen <= n; pos += unitLen {
				if !equalFold(seq[pos:pos+unitLen], unit) {
					break
				}
				copies++
			}
			if copies >= minCopies {
				out = append(out, Tandem{
					Start:  start,
					End:    start + copies*unitLen,
					Unit:   string(bytes.ToUpper(unit)),
					Copies: copies,
				})
			}
		}
	}
	return out
}

func equalFold(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		ca, cb := a[i], b[i]
		if 'a' <= ca && ca <= 'z' {
			ca -= 'a' - 'A'
		}
		if 'a' <= cb && cb <= 'z' {
			cb -= 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
