// pkg/api/diff_v1.go
package api

// DiffV1 is the stable JSON schema for pairwise comparison results.
// Masks use one letter per position: M match, X mismatch, I insert,
// D delete.
type DiffV1 struct {
	QueryID  string `json:"query_id"`
	TargetID string `json:"target_id"`

	EditDistance int     `json:"edit_distance"`
	Matches      int     `json:"matches"`
	Mismatches   int     `json:"mismatches"`
	Insertions   int     `json:"insertions"`
	Deletions    int     `json:"deletions"`
	Identity     float64 `json:"identity"`

	MaskA string `json:"mask_a,omitempty"`
	MaskB string `json:"mask_b,omitempty"`

	Kmers *KmerCompareV1 `json:"kmers,omitempty"`

	Truncated bool   `json:"truncated"`
	Error     string `json:"error,omitempty"`
}

// KmerCompareV1 is the stable JSON schema for k-mer composition
// comparison between the two inputs.
type KmerCompareV1 struct {
	K            int `json:"k"`
	UniqueQuery  int `json:"unique_query"`
	UniqueTarget int `json:"unique_target"`
	Shared       int `json:"shared"`

	Jaccard           float64 `json:"jaccard"`
	ContainmentQuery  float64 `json:"containment_query"`
	ContainmentTarget float64 `json:"containment_target"`
	Cosine            float64 `json:"cosine"`
	BrayCurtis        float64 `json:"bray_curtis"`

	HoeffdingD float64 `json:"hoeffding_d"`
	HoeffdingN int     `json:"hoeffding_n"`
}
