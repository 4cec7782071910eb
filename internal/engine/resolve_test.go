package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RunningMSN/SPIDER/internal/aligner"
)

func anchor(contig string, sstart, send int, pident float64, shift int) Anchor {
	h := aligner.Hit{SubjectID: contig, PIdent: pident, Length: 20, QStart: 1, QEnd: 20, SStart: sstart, SEnd: send}
	return Anchor{Hit: h, Shift: shift, Slide: slidePct(shift, h, 300)}
}

func TestResolveOutcomes(t *testing.T) {
	fwd := anchor("c1", 101, 120, 100, 0)
	rev := anchor("c1", 400, 381, 100, 0)

	tests := []struct {
		name string
		fwd  []Anchor
		rev  []Anchor
		want Outcome
	}{
		{"no forward", nil, []Anchor{rev}, OutcomeNoForward},
		{"no reverse", []Anchor{fwd}, nil, OutcomeNoReverse},
		{"neither reports forward first", nil, nil, OutcomeNoForward},
		{"slide", []Anchor{anchor("c1", 131, 150, 100, 30)}, []Anchor{rev}, OutcomeSlideExceeded},
		{"other contig", []Anchor{fwd}, []Anchor{anchor("c2", 400, 381, 100, 0)}, OutcomeMismatch},
		{"same strand", []Anchor{fwd}, []Anchor{anchor("c1", 381, 400, 100, 0)}, OutcomeMismatch},
		{"reverse upstream", []Anchor{fwd}, []Anchor{anchor("c1", 90, 71, 100, 0)}, OutcomeMismatch},
		{"ok", []Anchor{fwd}, []Anchor{rev}, OutcomeNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, got := Resolve(300, tc.fwd, tc.rev, 5, 20)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveCoordinates(t *testing.T) {
	p, out := Resolve(300, []Anchor{anchor("c1", 101, 120, 100, 0)}, []Anchor{anchor("c1", 400, 381, 100, 0)}, 5, 20)
	assert.Equal(t, OutcomeNone, out)
	assert.Equal(t, "+", p.Strand)
	assert.Equal(t, 101, p.Start)
	assert.Equal(t, 400, p.End)
	assert.Equal(t, 300, p.Span())

	p, out = Resolve(300, []Anchor{anchor("c1", 650, 631, 100, 0)}, []Anchor{anchor("c1", 351, 370, 100, 0)}, 5, 20)
	assert.Equal(t, OutcomeNone, out)
	assert.Equal(t, "-", p.Strand)
	assert.Equal(t, 351, p.Start)
	assert.Equal(t, 650, p.End)
}

func TestResolveRanking(t *testing.T) {
	rev := anchor("c1", 400, 381, 100, 0)

	// more matched bases wins over lower slide
	weak := anchor("c1", 101, 120, 90, 0)
	strong := anchor("c1", 105, 124, 100, 4)
	p, _ := Resolve(300, []Anchor{weak, strong}, []Anchor{rev}, 5, 20)
	assert.Equal(t, 105, p.Start)

	// equal identity: lower slide wins
	near := anchor("c1", 101, 120, 100, 0)
	far := anchor("c1", 111, 130, 100, 10)
	p, _ = Resolve(300, []Anchor{far, near}, []Anchor{rev}, 5, 20)
	assert.Equal(t, 101, p.Start)

	// equal identity and slide: span closest to the reference wins
	repA := anchor("c1", 101, 120, 100, 0)
	repB := anchor("c1", 5101, 5120, 100, 0)
	revB := anchor("c1", 5400, 5381, 100, 0)
	p, _ = Resolve(300, []Anchor{repA, repB}, []Anchor{revB}, 5, 20)
	assert.Equal(t, 5101, p.Start)
	assert.Equal(t, 5400, p.End)

	// a decoy forward copy upstream loses to the pair of plausible length,
	// even though the decoy has less slide
	decoy := anchor("c1", 101, 120, 100, 0)
	locus := anchor("c1", 1622, 1641, 100, 1)
	revReal := anchor("c1", 1920, 1901, 100, 0)
	p, out := Resolve(300, []Anchor{decoy, locus}, []Anchor{revReal}, 5, 20)
	assert.Equal(t, OutcomeNone, out)
	assert.Equal(t, 1622, p.Start)
	assert.Equal(t, 299, p.Span())

	// with no plausible pair the best remaining one is kept for the evaluator
	p, out = Resolve(300, []Anchor{decoy}, []Anchor{revReal}, 5, 20)
	assert.Equal(t, OutcomeNone, out)
	assert.Equal(t, 101, p.Start)
	assert.Equal(t, 1820, p.Span())

	// full tie: contig then start
	x := anchor("c2", 101, 120, 100, 0)
	y := anchor("c1", 101, 120, 100, 0)
	p, _ = Resolve(300, []Anchor{x, y}, []Anchor{anchor("c2", 400, 381, 100, 0), anchor("c1", 400, 381, 100, 0)}, 5, 20)
	assert.Equal(t, "c1", p.Contig)
}

func TestSlidePct(t *testing.T) {
	h := aligner.Hit{QStart: 3}
	assert.InDelta(t, 4.0, slidePct(10, h, 300), 1e-9)
}
