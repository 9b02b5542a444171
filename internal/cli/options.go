// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"seqscope/internal/version"

	"seqscope-core/kmer"
)

// Options holds all scan-tool flags and arguments.
type Options struct {
	SeqFiles []string

	// Analyses
	K            int // 0 = no k-mer counting
	Canonical    bool
	MinHashSeeds int // 0 = no sketching
	SkewWindow   int // 0 = no windowed skew
	SkewStep     int
	ComplexityK  int

	CumulativeSkew bool
	TranslateFrame int // -1 = no translation
	Repeats        bool
	DotplotBins    int // 0 = no dotplot
	DotplotWindow  int

	// Output
	Output string // text | json
	Header bool   // true unless --no-header

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: sequence scan statistics

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var seq stringSlice
	fs.Var(&seq, "sequences", "FASTA file(s) (repeatable or '-') [*]")

	fs.IntVar(&opt.K, "kmer", 0, "count k-mers of this size, 1..10 (0 = off) [0]")
	fs.BoolVar(&opt.Canonical, "canonical", false, "count strand-independent (canonical) k-mers [false]")
	fs.IntVar(&opt.MinHashSeeds, "minhash", 0, "MinHash signature size in seeds, requires --kmer (0 = off) [0]")
	fs.IntVar(&opt.SkewWindow, "skew-window", 0, "GC-skew window size (0 = off) [0]")
	fs.IntVar(&opt.SkewStep, "skew-step", 0, "GC-skew step (0 = window size) [0]")
	fs.IntVar(&opt.ComplexityK, "complexity-k", 4, "max substring length for linguistic complexity [4]")

	fs.BoolVar(&opt.CumulativeSkew, "cumulative-skew", false, "emit the per-base running GC skew [false]")
	fs.IntVar(&opt.TranslateFrame, "translate", -1, "translate to protein in this reading frame, 0..2 (-1 = off) [-1]")
	fs.BoolVar(&opt.Repeats, "repeats", false, "detect inverted and tandem repeats [false]")
	fs.IntVar(&opt.DotplotBins, "dotplot-bins", 0, "self-dotplot bin count (0 = off) [0]")
	fs.IntVar(&opt.DotplotWindow, "dotplot-window", 0, "self-dotplot window size, required with --dotplot-bins [0]")

	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.SeqFiles = seq
	opt.Header = !noHeader

	// Validation
	if len(opt.SeqFiles) == 0 {
		return opt, errors.New("at least one --sequences input is required")
	}
	if opt.K < 0 || opt.K > kmer.MaxDenseK {
		return opt, fmt.Errorf("--kmer must be 0..%d", kmer.MaxDenseK)
	}
	if opt.MinHashSeeds < 0 {
		return opt, errors.New("--minhash must be non-negative")
	}
	if opt.MinHashSeeds > 0 && opt.K == 0 {
		return opt, errors.New("--minhash requires --kmer")
	}
	if opt.SkewWindow < 0 || opt.SkewStep < 0 {
		return opt, errors.New("--skew-window and --skew-step must be non-negative")
	}
	if opt.SkewStep > 0 && opt.SkewWindow == 0 {
		return opt, errors.New("--skew-step requires --skew-window")
	}
	if opt.SkewWindow > 0 && opt.SkewStep == 0 {
		opt.SkewStep = opt.SkewWindow
	}
	if opt.ComplexityK < 1 {
		return opt, errors.New("--complexity-k must be positive")
	}
	if opt.TranslateFrame < -1 || opt.TranslateFrame > 2 {
		return opt, errors.New("--translate frame must be 0..2")
	}
	if opt.DotplotBins < 0 || opt.DotplotWindow < 0 {
		return opt, errors.New("--dotplot-bins and --dotplot-window must be non-negative")
	}
	if (opt.DotplotBins > 0) != (opt.DotplotWindow > 0) {
		return opt, errors.New("--dotplot-bins and --dotplot-window are required together")
	}
	switch opt.Output {
	case "text", "json":
	default:
		return opt, fmt.Errorf("unknown output format %q", opt.Output)
	}
	return opt, nil
}

// stringSlice collects repeatable flag values.
type stringSlice []string

func (s *stringSlice) String() string { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error {
	*s = append(*s, v)
	return nil
}
