// core/fasta/fasta.go
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one parsed FASTA sequence.
type Record struct {
	ID  string
	Seq []byte
}

// maxLine allows very long single-line sequences (64 MiB).
const maxLine = 64 * 1024 * 1024

// ReadAll parses every record from r. A record with no header line is
// rejected; empty input yields an empty slice.
func ReadAll(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		out []Record
		id  string
		seq []byte
		any bool
	)
	flush := func() {
		if any {
			out = append(out, Record{ID: id, Seq: seq})
		}
		id, seq, any = "", nil, false
	}
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			fields := strings.Fields(string(line[1:]))
			if len(fields) > 0 {
				id = fields[0]
			}
			any = true
			continue
		}
		if !any {
			return nil, fmt.Errorf("fasta: line %d: sequence data before first header", lineNo)
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	return out, nil
}

// ReadPath opens path (stdin for "-", transparent gzip) and parses all
// records.
func ReadPath(path string) ([]Record, error) {
	rc, err := OpenPath(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return ReadAll(rc)
}

// OpenPath opens a sequence file for reading. "-" means stdin; gzip is
// detected by the 1F 8B magic or a .gz suffix.
func OpenPath(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
