// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"seqscope/internal/cli"
	"seqscope/internal/output"
	"seqscope/internal/version"
	"seqscope/pkg/api"

	"seqscope-core/dotplot"
	"seqscope-core/fasta"
	"seqscope-core/kmer"
	"seqscope-core/nuc"
	"seqscope-core/repeat"
	"seqscope-core/sketch"
	"seqscope-core/stats"
	"seqscope-core/translate"
)

// Repeat detection bounds for the --repeats flag.
const (
	minPalindromeArm = 4
	maxPalindromeGap = 4
	minTandemUnit    = 2
	maxTandemUnit    = 6
	minTandemCopies  = 3
)

// RunContext parses argv, scans every input record, and writes one row
// per sequence. Exit codes: 0 ok, 1 runtime error, 2 usage error,
// 3 write error.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("seqscope")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "seqscope version %s\n", version.Version)
		return flushCode(outw, stderr)
	}

	var rows []api.ScanV1
	for _, path := range opts.SeqFiles {
		if err := ctx.Err(); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		recs, err := fasta.ReadPath(path)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		for _, rec := range recs {
			rows = append(rows, scanRecord(rec, path, opts))
		}
	}

	switch opts.Output {
	case "json":
		err = output.WriteScanJSON(outw, rows)
	default:
		err = output.WriteScanText(outw, rows, opts.Header)
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

func scanRecord(rec fasta.Record, path string, opts cli.Options) api.ScanV1 {
	s := nuc.Encode(rec.Seq)
	row := api.ScanV1{
		SequenceID: rec.ID,
		Length:     s.Len(),
		ValidBases: s.ValidCount(),
		GCPercent:  stats.GCContent(s),
		Entropy:    baseEntropy(s),
		Complexity: stats.LinguisticComplexity(s, opts.ComplexityK),
		SourceFile: path,
	}
	if opts.K > 0 {
		var counts kmer.Counts
		if opts.Canonical {
			counts = kmer.CountKCanonical(s, opts.K)
		} else {
			counts = kmer.CountK(s, opts.K)
		}
		row.K = opts.K
		row.TotalKmers = counts.TotalValid
		for _, c := range counts.Counts {
			if c > 0 {
				row.DistinctKmers++
			}
		}
		if opts.MinHashSeeds > 0 {
			var sig sketch.Signature
			if opts.Canonical {
				sig = sketch.MinHashCanonical(s, opts.K, opts.MinHashSeeds)
			} else {
				sig = sketch.MinHash(s, opts.K, opts.MinHashSeeds)
			}
			row.MinHash = sig.Mins
		}
	}
	if opts.SkewWindow > 0 {
		row.SkewWindow = opts.SkewWindow
		row.SkewStep = opts.SkewStep
		row.GCSkew = stats.GCSkew(s, opts.SkewWindow, opts.SkewStep)
	}
	if opts.CumulativeSkew {
		row.CumulativeGCSkew = stats.CumulativeGCSkew(s)
	}
	if opts.TranslateFrame >= 0 {
		row.Protein = string(translate.Translate(rec.Seq, opts.TranslateFrame))
	}
	if opts.Repeats {
		for _, p := range repeat.Palindromes(rec.Seq, minPalindromeArm, maxPalindromeGap) {
			row.Palindromes = append(row.Palindromes, api.PalindromeV1{
				Start: p.Start, End: p.End, ArmLen: p.ArmLen, Gap: p.Gap,
			})
		}
		for _, tr := range repeat.TandemRepeats(rec.Seq, minTandemUnit, maxTandemUnit, minTandemCopies) {
			row.TandemRepeats = append(row.TandemRepeats, api.TandemV1{
				Start: tr.Start, End: tr.End, Unit: tr.Unit, Copies: tr.Copies,
			})
		}
	}
	if opts.DotplotBins > 0 {
		p := dotplot.Self(s, opts.DotplotBins, opts.DotplotWindow)
		if p.Bins > 0 {
			row.Dotplot = &api.DotplotV1{
				Bins: p.Bins, Window: p.Window,
				Direct: p.Direct, Inverted: p.Inverted,
			}
		}
	}
	return row
}

// baseEntropy is the Shannon entropy of the A/C/G/T composition.
func baseEntropy(s *nuc.Seq) float64 {
	var counts [4]float64
	for i := 0; i < s.Len(); i++ {
		if c := s.At(i); c.Valid() {
			counts[c]++
		}
	}
	return stats.ShannonEntropyFromCounts(counts[:])
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
