// pkg/api/results_v1.go
package api

// ResultV1 is the stable JSON/JSONL schema for one reference call.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Location fields are zero when Anchored is false.
type ResultV1 struct {
	Query             string  `json:"query"`
	Name              string  `json:"name"`
	Valid             bool    `json:"valid"`
	Anchored          bool    `json:"anchored"`
	Contig            string  `json:"contig,omitempty"`
	Start             int     `json:"start,omitempty"`
	FSlide            float64 `json:"f_slide"`
	End               int     `json:"end,omitempty"`
	RSlide            float64 `json:"r_slide"`
	Strand            string  `json:"strand,omitempty"` // "+" | "-"
	Identity          float64 `json:"identity"`
	VFLength          int     `json:"vf_length"`
	RefLength         int     `json:"ref_length"`
	CoveragePercLen   float64 `json:"coverage_perc_len"`
	CoveragePercAlign float64 `json:"coverage_perc_align"`
	Message           string  `json:"message,omitempty"`
}
