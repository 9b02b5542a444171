// internal/output/output.go
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"syscall"

	"seqscope/pkg/api"
)

// WriteScanText prints one TSV line per scan row.
func WriteScanText(w io.Writer, rows []api.ScanV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, "sequence_id\tlength\tvalid_bases\tgc_percent\tentropy\tcomplexity\tk\ttotal_kmers\tdistinct_kmers"); err != nil {
			return err
		}
	}
	for _, r := range rows {
		_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%.3f\t%.4f\t%.4f\t%d\t%d\t%d\n",
			r.SequenceID, r.Length, r.ValidBases,
			r.GCPercent, r.Entropy, r.Complexity,
			r.K, r.TotalKmers, r.DistinctKmers,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteScanJSON emits the rows as a JSON array.
func WriteScanJSON(w io.Writer, rows []api.ScanV1) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// WriteDiffText prints a key<TAB>value summary followed by optional masks.
func WriteDiffText(w io.Writer, d api.DiffV1) error {
	lines := []string{
		"query\t" + d.QueryID,
		"target\t" + d.TargetID,
		"edit_distance\t" + strconv.Itoa(d.EditDistance),
		"matches\t" + strconv.Itoa(d.Matches),
		"mismatches\t" + strconv.Itoa(d.Mismatches),
		"insertions\t" + strconv.Itoa(d.Insertions),
		"deletions\t" + strconv.Itoa(d.Deletions),
		fmt.Sprintf("identity\t%.4f", d.Identity),
		"truncated\t" + strconv.FormatBool(d.Truncated),
	}
	if d.Error != "" {
		lines = append(lines, "error\t"+d.Error)
	}
	if d.MaskA != "" {
		lines = append(lines, "mask_a\t"+d.MaskA)
	}
	if d.MaskB != "" {
		lines = append(lines, "mask_b\t"+d.MaskB)
	}
	if k := d.Kmers; k != nil {
		lines = append(lines,
			"kmer_k\t"+strconv.Itoa(k.K),
			"kmer_unique_query\t"+strconv.Itoa(k.UniqueQuery),
			"kmer_unique_target\t"+strconv.Itoa(k.UniqueTarget),
			"kmer_shared\t"+strconv.Itoa(k.Shared),
			fmt.Sprintf("kmer_jaccard\t%.4f", k.Jaccard),
			fmt.Sprintf("kmer_containment_query\t%.4f", k.ContainmentQuery),
			fmt.Sprintf("kmer_containment_target\t%.4f", k.ContainmentTarget),
			fmt.Sprintf("kmer_cosine\t%.4f", k.Cosine),
			fmt.Sprintf("kmer_bray_curtis\t%.4f", k.BrayCurtis),
			fmt.Sprintf("kmer_hoeffding_d\t%.4f", k.HoeffdingD),
		)
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// WriteDiffJSON emits the diff result as one JSON object.
func WriteDiffJSON(w io.Writer, d api.DiffV1) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
