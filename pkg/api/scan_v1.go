// pkg/api/scan_v1.go
package api

// ScanV1 is the stable JSON/JSONL schema for per-record scan rows.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ScanV1 struct {
	SequenceID string  `json:"sequence_id"`
	Length     int     `json:"length"`
	ValidBases int     `json:"valid_bases"`
	GCPercent  float64 `json:"gc_percent"`
	Entropy    float64 `json:"entropy"`
	Complexity float64 `json:"complexity"`

	K             int    `json:"k,omitempty"`
	DistinctKmers int    `json:"distinct_kmers,omitempty"`
	TotalKmers    uint64 `json:"total_kmers,omitempty"`

	MinHash []uint32 `json:"minhash,omitempty"`

	SkewWindow int       `json:"skew_window,omitempty"`
	SkewStep   int       `json:"skew_step,omitempty"`
	GCSkew     []float64 `json:"gc_skew,omitempty"`

	CumulativeGCSkew []float64 `json:"cumulative_gc_skew,omitempty"`

	Protein string `json:"protein,omitempty"`

	Palindromes   []PalindromeV1 `json:"palindromes,omitempty"`
	TandemRepeats []TandemV1     `json:"tandem_repeats,omitempty"`

	Dotplot *DotplotV1 `json:"dotplot,omitempty"`

	SourceFile string `json:"source_file,omitempty"`
}

// PalindromeV1 is one inverted repeat (reverse-complement arms around
// an optional spacer).
type PalindromeV1 struct {
	Start  int `json:"start"`
	End    int `json:"end"`
	ArmLen int `json:"arm_len"`
	Gap    int `json:"gap"`
}

// TandemV1 is one tandem repeat run.
type TandemV1 struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Unit   string `json:"unit"`
	Copies int    `json:"copies"`
}

// DotplotV1 carries the self-comparison identity matrices, row-major
// bins x bins.
type DotplotV1 struct {
	Bins     int       `json:"bins"`
	Window   int       `json:"window"`
	Direct   []float32 `json:"direct"`
	Inverted []float32 `json:"inverted"`
}
