// internal/diffcli/options.go
package diffcli

import (
	"errors"
	"flag"
	"fmt"

	"seqscope/internal/version"

	"seqscope-core/kmer"
)

// Options holds all diff-tool flags and arguments.
type Options struct {
	// Inputs: either literal sequences or FASTA paths (first record).
	SeqA  string
	SeqB  string
	FileA string
	FileB string

	MaxDistance int // -1 = exact
	EqualLength bool
	Masks       bool
	K           int // 0 = no k-mer comparison

	Output string // text | json

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: pairwise sequence diff

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

	fs.StringVar(&opt.SeqA, "a", "", "first sequence (literal bases)")
	fs.StringVar(&opt.SeqB, "b", "", "second sequence (literal bases)")
	fs.StringVar(&opt.FileA, "query", "", "FASTA file for the first sequence (first record, '-' for stdin)")
	fs.StringVar(&opt.FileB, "target", "", "FASTA file for the second sequence (first record)")

	fs.IntVar(&opt.MaxDistance, "max-distance", -1, "edit-distance budget (-1 = exact) [-1]")
	fs.BoolVar(&opt.EqualLength, "equal-length", false, "assume no indels; classify match/mismatch only [false]")
	fs.BoolVar(&opt.Masks, "masks", false, "emit per-position masks [false]")
	fs.IntVar(&opt.K, "kmer", 0, "also compare k-mer composition at this size, 1..10 (0 = off) [0]")

	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")

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

	// Validation
	if (opt.SeqA == "") == (opt.FileA == "") {
		return opt, errors.New("exactly one of -a or --query is required")
	}
	if (opt.SeqB == "") == (opt.FileB == "") {
		return opt, errors.New("exactly one of -b or --target is required")
	}
	if opt.K < 0 || opt.K > kmer.MaxDenseK {
		return opt, fmt.Errorf("--kmer must be 0..%d", kmer.MaxDenseK)
	}
	switch opt.Output {
	case "text", "json":
	default:
		return opt, fmt.Errorf("unknown output format %q", opt.Output)
	}
	return opt, nil
}
