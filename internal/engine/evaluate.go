// internal/engine/evaluate.go
package engine

import (
	"math"

	"github.com/RunningMSN/SPIDER/internal/aligner"
	"github.com/RunningMSN/SPIDER/internal/refdb"
)

// Evaluate turns a resolved placement (or its failure outcome) into a Row.
// region is the reference-vs-amplicon alignment, nil when there was none.
func (c Config) Evaluate(query string, ref refdb.Reference, pair AnchorPair, outcome Outcome, region *aligner.Hit) Row {
	row := Row{Query: query, Name: ref.Name, RefLength: ref.Len()}
	if outcome != OutcomeNone {
		row.Message = string(outcome)
		return row
	}

	row.Anchored = true
	row.Contig = pair.Contig
	row.Strand = pair.Strand
	row.Start, row.End = pair.Start, pair.End
	row.FSlide, row.RSlide = pair.Forward.Slide, pair.Reverse.Slide
	row.VFLength = pair.Span()
	row.CoveragePercLen = float64(row.VFLength) / float64(row.RefLength) * 100
	if region != nil {
		row.CoveragePercAlign = float64(region.Length) / float64(row.RefLength) * 100
	}
	row.Identity = c.identity(pair, region)

	switch {
	case !lengthWithin(row.CoveragePercLen, c.LengthTolerance):
		row.Message = string(OutcomeLength)
	case row.Identity < c.IdentityTolerance:
		row.Message = string(OutcomeIdentity)
	case row.FSlide > c.SlideLimit+1e-9 || row.RSlide > c.SlideLimit+1e-9:
		row.Message = string(OutcomeSlideExceeded)
	default:
		row.Valid = true
	}
	return row
}

func (c Config) identity(p AnchorPair, region *aligner.Hit) float64 {
	f, r := p.Forward.Hit.PIdent, p.Reverse.Hit.PIdent
	switch c.IdentityRule {
	case IdentityMean:
		return (f + r) / 2
	case IdentityRegion:
		if region == nil {
			return 0
		}
		return region.PIdent
	default:
		return math.Min(f, r)
	}
}
