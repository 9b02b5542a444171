// internal/diffcli/options_test.go
package diffcli

import (
	"io"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("seqscope-diff")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseArgsLiterals(t *testing.T) {
	opt, err := parse(t, "-a", "ACGT", "-b", "ACGGT")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.SeqA != "ACGT" || opt.SeqB != "ACGGT" || opt.MaxDistance != -1 {
		t.Errorf("options: %+v", opt)
	}
}

func TestParseArgsInputExclusivity(t *testing.T) {
	cases := [][]string{
		{"-b", "ACGT"},                                    // missing A
		{"-a", "ACGT"},                                    // missing B
		{"-a", "ACGT", "--query", "q.fa", "-b", "ACGT"},   // both A forms
		{"-a", "ACGT", "-b", "ACGT", "--target", "t.fa"},  // both B forms
		{"-a", "ACGT", "-b", "ACGT", "--output", "yaml"},  // bad format
		{"-a", "ACGT", "-b", "ACGT", "--kmer", "11"},      // k out of range
	}
	for _, argv := range cases {
		if _, err := parse(t, argv...); err == nil {
			t.Errorf("argv %v should fail validation", argv)
		}
	}
}

func TestParseArgsFiles(t *testing.T) {
	opt, err := parse(t, "--query", "q.fa", "--target", "-", "--masks", "--max-distance", "50")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.FileA != "q.fa" || opt.FileB != "-" || !opt.Masks || opt.MaxDistance != 50 {
		t.Errorf("options: %+v", opt)
	}
}
