// internal/engine/site.go
package engine

import "github.com/RunningMSN/SPIDER/internal/primer"

// Site is a primer anchor as it sits on the assembly.
type Site struct {
	Primer     string // 5'→3'
	Target     string // assembly bases under the primer, read along it
	Mismatches []int  // 0-based primer positions Target does not satisfy
}

// placeSite extends the aligned part of a's hit to the whole primer without
// gaps. Positions past either contig end read as '-'.
func placeSite(contig, seq []byte, a Anchor) Site {
	h := a.Hit
	minus := h.SStart > h.SEnd
	target := make([]byte, len(seq))
	s := Site{Primer: string(seq)}
	for i := range seq {
		d := i - (h.QStart - 1)
		pos := h.SStart + d
		if minus {
			pos = h.SStart - d
		}
		b := byte('-')
		if pos >= 1 && pos <= len(contig) {
			b = contig[pos-1]
			if minus {
				b = primer.RevComp([]byte{b})[0]
			}
		}
		target[i] = b
		if !primer.BaseMatch(b, seq[i]) {
			s.Mismatches = append(s.Mismatches, i)
		}
	}
	s.Target = string(target)
	return s
}
