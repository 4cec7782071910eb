// internal/primer/primer.go
package primer

import (
	"errors"
	"fmt"
)

// ErrInvalidPrimerSize is returned when a primer cannot be shorter than the
// sequence it anchors.
var ErrInvalidPrimerSize = errors.New("primer size exceeds reference length")

// Orientation tells which end of a reference a primer anchors.
type Orientation byte

const (
	Forward Orientation = 'F'
	Reverse Orientation = 'R'
)

func (o Orientation) String() string {
	if o == Reverse {
		return "reverse"
	}
	return "forward"
}

// Primer is a primer-length window of a reference sequence.
//
// Offset is 0-based within the reference, before any reverse complement:
// Shift for forward primers, len-size-Shift for reverse primers. Shift counts
// how far the window moved inward from its reference end.
type Primer struct {
	RefIndex    int
	Orientation Orientation
	Offset      int
	Shift       int
	Seq         []byte
}

// ID is the aligner query id for p; unique within one crawl.
func (p Primer) ID() string {
	return fmt.Sprintf("r%d_%c%d", p.RefIndex, p.Orientation, p.Shift)
}

// Generate returns the canonical pair for seq: the leading size bases, and
// the reverse complement of the trailing size bases.
func Generate(seq []byte, size int) (fwd, rev []byte, err error) {
	if size <= 0 || size >= len(seq) {
		return nil, nil, fmt.Errorf("%w: primer size %d, reference length %d", ErrInvalidPrimerSize, size, len(seq))
	}
	fwd = append([]byte(nil), seq[:size]...)
	rev = RevComp(seq[len(seq)-size:])
	return fwd, rev, nil
}

// MaxShift converts a slide limit (percent of reference length) into the
// largest whole-base shift for a reference of refLen bases.
func MaxShift(refLen int, slideLimit float64) int {
	if refLen <= 0 || slideLimit <= 0 {
		return 0
	}
	return int(float64(refLen) * slideLimit / 100)
}

// Slide returns forward and reverse primer families for shifts 0..maxShift.
// Shifts that would push a primer past the far end of the reference are
// dropped. The shift-0 members are the canonical pair from Generate.
func Slide(refIndex int, seq []byte, size, maxShift int) (fwd, rev []Primer, err error) {
	if _, _, err := Generate(seq, size); err != nil {
		return nil, nil, err
	}
	if maxShift < 0 {
		maxShift = 0
	}
	if lim := len(seq) - size; maxShift > lim {
		maxShift = lim
	}
	fwd = make([]Primer, 0, maxShift+1)
	rev = make([]Primer, 0, maxShift+1)
	for s := 0; s <= maxShift; s++ {
		fwd = append(fwd, Primer{
			RefIndex:    refIndex,
			Orientation: Forward,
			Offset:      s,
			Shift:       s,
			Seq:         append([]byte(nil), seq[s:s+size]...),
		})
		off := len(seq) - size - s
		rev = append(rev, Primer{
			RefIndex:    refIndex,
			Orientation: Reverse,
			Offset:      off,
			Shift:       s,
			Seq:         RevComp(seq[off : off+size]),
		})
	}
	return fwd, rev, nil
}
