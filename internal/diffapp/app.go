// internal/diffapp/app.go
package diffapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"seqscope/internal/diffcli"
	"seqscope/internal/output"
	"seqscope/internal/version"
	"seqscope/pkg/api"

	"seqscope-core/align"
	"seqscope-core/fasta"
	"seqscope-core/kmer"
	"seqscope-core/nuc"
)

// RunContext parses argv, resolves both input sequences, runs the
// comparison, and writes one result. Exit codes match the scan tool:
// 0 ok, 1 runtime error, 2 usage error, 3 write error.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := diffcli.NewFlagSet("seqscope-diff")
	fs.SetOutput(io.Discard)

	opts, err := diffcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "seqscope-diff version %s\n", version.Version)
		return flushCode(outw, stderr)
	}
	if err := ctx.Err(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	idA, seqA, err := resolveInput(opts.SeqA, opts.FileA, "query")
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	idB, seqB, err := resolveInput(opts.SeqB, opts.FileB, "target")
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	var res align.Result
	if opts.EqualLength {
		res = align.EqualLengthDiff(seqA, seqB)
	} else {
		res = align.Diff(seqA, seqB, opts.MaxDistance)
	}

	row := api.DiffV1{
		QueryID:      idA,
		TargetID:     idB,
		EditDistance: res.EditDistance,
		Matches:      res.Matches,
		Mismatches:   res.Mismatches,
		Insertions:   res.Insertions,
		Deletions:    res.Deletions,
		Identity:     res.Identity(),
		Truncated:    res.Truncated,
		Error:        res.Reason,
	}
	if opts.Masks {
		row.MaskA = maskString(res.MaskA)
		row.MaskB = maskString(res.MaskB)
	}
	if opts.K > 0 {
		row.Kmers = compareKmers(seqA, seqB, opts.K)
	}

	switch opts.Output {
	case "json":
		err = output.WriteDiffJSON(outw, row)
	default:
		err = output.WriteDiffText(outw, row)
	}
	if err != nil {
		if output.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushCode(outw, stderr)
}

// resolveInput returns the encoded sequence from either a literal or the
// first record of a FASTA file.
func resolveInput(literal, path, role string) (string, *nuc.Seq, error) {
	if literal != "" {
		return role, nuc.EncodeString(literal), nil
	}
	recs, err := fasta.ReadPath(path)
	if err != nil {
		return "", nil, err
	}
	if len(recs) == 0 {
		return "", nil, fmt.Errorf("%s: no records in %s", role, path)
	}
	return recs[0].ID, nuc.Encode(recs[0].Seq), nil
}

// compareKmers runs the composition comparison over both count tables.
func compareKmers(a, b *nuc.Seq, k int) *api.KmerCompareV1 {
	ca, cb := kmer.CountK(a, k), kmer.CountK(b, k)
	cmp := kmer.Compare(ca, cb)
	hd := kmer.HoeffdingsD(ca, cb)
	return &api.KmerCompareV1{
		K:                 cmp.K,
		UniqueQuery:       cmp.UniqueA,
		UniqueTarget:      cmp.UniqueB,
		Shared:            cmp.Shared,
		Jaccard:           cmp.Jaccard,
		ContainmentQuery:  cmp.ContainmentAinB,
		ContainmentTarget: cmp.ContainmentBinA,
		Cosine:            cmp.Cosine,
		BrayCurtis:        cmp.BrayCurtis,
		HoeffdingD:        hd.D,
		HoeffdingN:        hd.N,
	}
}

func maskString(ops []align.Op) string {
	var sb strings.Builder
	sb.Grow(len(ops))
	for _, op := range ops {
		sb.WriteString(op.String())
	}
	return sb.String()
}

func flushCode(outw *bufio.Writer, stderr io.Writer) int {
	if err := outw.Flush(); output.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}
