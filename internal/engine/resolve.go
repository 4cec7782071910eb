// internal/engine/resolve.go
package engine

import (
	"sort"

	"github.com/RunningMSN/SPIDER/internal/aligner"
)

// Outcome explains why a reference produced no valid call.
type Outcome string

const (
	OutcomeNone          Outcome = ""
	OutcomeNoForward     Outcome = "no forward hit"
	OutcomeNoReverse     Outcome = "no reverse hit"
	OutcomeSlideExceeded Outcome = "slide limit exceeded"
	OutcomeMismatch      Outcome = "contig or strand mismatch"
	OutcomePrimerTooLong Outcome = "primer size exceeds reference length"
	OutcomeLength        Outcome = "length out of tolerance"
	OutcomeIdentity      Outcome = "identity below threshold"
)

// Anchor is one primer hit with the slide it implies.
type Anchor struct {
	Hit   aligner.Hit
	Shift int
	Slide float64 // percent of reference length
}

// matched is the number of primer bases the hit accounts for.
func (a Anchor) matched() float64 {
	return a.Hit.PIdent * float64(a.Hit.Length) / 100
}

// AnchorPair is the accepted forward/reverse placement of a reference.
// Start and End are 1-based inclusive contig coordinates.
type AnchorPair struct {
	Contig  string
	Strand  string
	Forward Anchor
	Reverse Anchor
	Start   int
	End     int
}

// Span is the implied amplicon length.
func (p AnchorPair) Span() int { return p.End - p.Start + 1 }

// slidePct is the distance, in percent of refLen, between where the aligned
// part of the primer begins and the reference end it was cut from.
func slidePct(shift int, h aligner.Hit, refLen int) float64 {
	return float64(shift+h.QStart-1) / float64(refLen) * 100
}

// Resolve picks the best consistent placement for one reference, or the
// reason there is none. Pairs whose span is within lengthTolerance percent of
// refLen rank ahead of all others; an out-of-tolerance pair is returned only
// when no other exists. Within each group: more matched primer bases, then
// less total slide, then span closest to refLen, then contig and start.
func Resolve(refLen int, fwd, rev []Anchor, slideLimit, lengthTolerance float64) (AnchorPair, Outcome) {
	if len(fwd) == 0 {
		return AnchorPair{}, OutcomeNoForward
	}
	if len(rev) == 0 {
		return AnchorPair{}, OutcomeNoReverse
	}
	fwd = withinSlide(fwd, slideLimit)
	rev = withinSlide(rev, slideLimit)
	if len(fwd) == 0 || len(rev) == 0 {
		return AnchorPair{}, OutcomeSlideExceeded
	}

	var cands []AnchorPair
	for _, f := range fwd {
		for _, r := range rev {
			if f.Hit.SubjectID != r.Hit.SubjectID || f.Hit.Strand() == r.Hit.Strand() {
				continue
			}
			p := AnchorPair{Contig: f.Hit.SubjectID, Strand: f.Hit.Strand(), Forward: f, Reverse: r}
			if p.Strand == "+" {
				p.Start, p.End = f.Hit.SStart, r.Hit.SStart
			} else {
				p.Start, p.End = r.Hit.SStart, f.Hit.SStart
			}
			if p.End <= p.Start {
				continue
			}
			cands = append(cands, p)
		}
	}
	if len(cands) == 0 {
		return AnchorPair{}, OutcomeMismatch
	}

	fits := func(p AnchorPair) bool {
		return lengthWithin(float64(p.Span())/float64(refLen)*100, lengthTolerance)
	}
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if fa, fb := fits(a), fits(b); fa != fb {
			return fa
		}
		if ma, mb := a.Forward.matched()+a.Reverse.matched(), b.Forward.matched()+b.Reverse.matched(); ma != mb {
			return ma > mb
		}
		if sa, sb := a.Forward.Slide+a.Reverse.Slide, b.Forward.Slide+b.Reverse.Slide; sa != sb {
			return sa < sb
		}
		if da, db := absInt(a.Span()-refLen), absInt(b.Span()-refLen); da != db {
			return da < db
		}
		if a.Contig != b.Contig {
			return a.Contig < b.Contig
		}
		return a.Start < b.Start
	})
	return cands[0], OutcomeNone
}

// lengthWithin reports whether coverage (percent of reference length) lies in
// [100-tol, 100+tol].
func lengthWithin(coverage, tol float64) bool {
	return coverage >= 100-tol-1e-9 && coverage <= 100+tol+1e-9
}

func withinSlide(as []Anchor, limit float64) []Anchor {
	var out []Anchor
	for _, a := range as {
		if a.Slide <= limit+1e-9 {
			out = append(out, a)
		}
	}
	return out
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
