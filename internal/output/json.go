// internal/output/json.go
package output

import (
	"io"

	"github.com/RunningMSN/SPIDER/internal/engine"
	"github.com/RunningMSN/SPIDER/internal/jsonutil"
	"github.com/RunningMSN/SPIDER/pkg/api"
)

// ToAPIResult converts a domain Row to the stable wire schema (v1).
func ToAPIResult(r engine.Row) api.ResultV1 {
	v := api.ResultV1{
		Query:             r.Query,
		Name:              r.Name,
		Valid:             r.Valid,
		Anchored:          r.Anchored,
		RefLength:         r.RefLength,
		CoveragePercLen:   r.CoveragePercLen,
		CoveragePercAlign: r.CoveragePercAlign,
		Message:           r.Message,
	}
	if r.Anchored {
		v.Contig = r.Contig
		v.Start, v.End = r.Start, r.End
		v.FSlide, v.RSlide = r.FSlide, r.RSlide
		v.Strand = r.Strand
		v.Identity = r.Identity
		v.VFLength = r.VFLength
	}
	return v
}

func toAPIResults(rows []engine.Row) []api.ResultV1 {
	out := make([]api.ResultV1, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToAPIResult(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 results (pretty-indented).
func WriteJSON(w io.Writer, rows []engine.Row) error {
	return jsonutil.EncodePretty(w, toAPIResults(rows))
}
