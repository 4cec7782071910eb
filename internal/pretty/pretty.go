// Package pretty draws ASCII diagrams of where a call's primer anchors sit
// on the assembly. Every line starts with "# " so diagrams can be
// interleaved with TSV rows.
package pretty

import (
	"fmt"
	"strings"

	"github.com/RunningMSN/SPIDER/internal/engine"
)

// Options control the ASCII rendering.
type Options struct {
	// Interior width cap for readability (dots section). If <=0, use default (95).
	MaxGap int

	// Glyphs
	ExactGlyph   string // default "|"
	PartialGlyph string // default "¦"
	DotGlyph     string // default "."
}

var DefaultOptions = Options{
	MaxGap:       95,
	ExactGlyph:   "|",
	PartialGlyph: "¦",
	DotGlyph:     ".",
}

const (
	minInterPrimerGap = 5
	linePrefix        = "# "
)

func reverseString(s string) string {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return string(rs)
}

func isACGT(b byte) bool { return b == 'A' || b == 'C' || b == 'G' || b == 'T' }

// Primer bars under a site: exact for plain bases, partial for IUPAC codes,
// blank at mismatches.
func matchLine(primer, site string, mismIdx []int, exactGlyph, partialGlyph string) string {
	n := len(primer)
	if len(site) < n {
		n = len(site)
	}
	if n <= 0 {
		return ""
	}
	mism := make(map[int]struct{}, len(mismIdx))
	for _, i := range mismIdx {
		mism[i] = struct{}{}
	}
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		if _, bad := mism[i]; bad {
			b.WriteByte(' ')
			continue
		}
		if isACGT(primer[i]) {
			b.WriteString(exactGlyph)
		} else {
			b.WriteString(partialGlyph)
		}
	}
	return b.String()
}

// intsCSV for printing mismatch indexes in the summary.
func intsCSV(a []int) string {
	if len(a) == 0 {
		return "-"
	}
	ss := make([]string, len(a))
	for i, v := range a {
		ss[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(ss, ",")
}

func opposite(strand string) string {
	if strand == "-" {
		return "+"
	}
	return "-"
}

func (o Options) glyphs() (exact, partial, dot string) {
	exact, partial, dot = o.ExactGlyph, o.PartialGlyph, o.DotGlyph
	if exact == "" {
		exact = DefaultOptions.ExactGlyph
	}
	if partial == "" {
		partial = DefaultOptions.PartialGlyph
	}
	if dot == "" {
		dot = DefaultOptions.DotGlyph
	}
	return exact, partial, dot
}

// RenderCallWithOptions prints the anchor block of a located call: the
// forward primer over the strand the reference lies on, the reverse primer
// under the opposite strand. Calls that were not located render nothing.
func RenderCallWithOptions(r engine.Row, opt Options) string {
	if !r.Anchored {
		return ""
	}
	const (
		prefixPlus  = "5'-"
		suffixPlus  = "-3'"
		prefixMinus = "3'-"
		suffixMinus = "-5'"
		arrowRight  = "-->"
		arrowLeft   = "<--"
	)
	fwd, rev := r.Forward, r.Reverse
	if fwd.Primer == "" || rev.Primer == "" {
		return linePrefix + "(pretty not available: sites missing)\n#\n"
	}

	maxGap := opt.MaxGap
	if maxGap <= 0 {
		maxGap = DefaultOptions.MaxGap
	}
	exact, partial, dot := opt.glyphs()

	aLen, bLen := len(fwd.Primer), len(rev.Primer)
	interior := r.VFLength - aLen - bLen
	if interior < 0 {
		interior = 0
	}

	inner := maxGap
	if interior < inner {
		inner = interior
	}
	innerMinus := inner
	innerPlus := inner
	if innerMinus < aLen+minInterPrimerGap {
		innerMinus = aLen + minInterPrimerGap
	}
	if innerPlus < bLen+minInterPrimerGap {
		innerPlus = bLen + minInterPrimerGap
	}

	contPlus := aLen + innerPlus
	contMinus := innerMinus + bLen
	if contMinus > contPlus {
		innerPlus += contMinus - contPlus
	} else if contPlus > contMinus {
		innerMinus += contPlus - contMinus
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s%s:%d-%d (%s) len=%d fwd_mm=%s rev_mm=%s\n",
		linePrefix, r.Contig, r.Start, r.End, r.Strand, r.VFLength,
		intsCSV(fwd.Mismatches), intsCSV(rev.Mismatches))

	// forward primer (5'→3') and its bars
	fmt.Fprintf(&b, "%s%s%s%s\n", linePrefix, prefixPlus, fwd.Primer, suffixPlus)
	fmt.Fprintf(&b, "%s%s%s%s\n",
		linePrefix,
		strings.Repeat(" ", len(prefixPlus)),
		matchLine(fwd.Primer, fwd.Target, fwd.Mismatches, exact, partial),
		arrowRight,
	)

	// the strand the reference lies on, then its complement read 3'→5'
	fmt.Fprintf(&b, "%s%s%s%s%s # (%s)\n",
		linePrefix, prefixPlus, fwd.Target, strings.Repeat(dot, innerPlus), suffixPlus, r.Strand,
	)
	fmt.Fprintf(&b, "%s%s%s%s%s # (%s)\n",
		linePrefix, prefixMinus, strings.Repeat(dot, innerMinus), reverseString(rev.Target), suffixMinus, opposite(r.Strand),
	)

	// reverse primer bars and the primer shown 3'→5'
	siteStart := len(prefixMinus) + innerMinus
	revBars := reverseString(matchLine(rev.Primer, rev.Target, rev.Mismatches, exact, partial))
	padBars := siteStart - len(arrowLeft)
	if padBars < 0 {
		padBars = 0
	}
	fmt.Fprintf(&b, "%s%s%s%s\n", linePrefix, strings.Repeat(" ", padBars), arrowLeft, revBars)

	padPrimer := siteStart - len(prefixMinus)
	if padPrimer < 0 {
		padPrimer = 0
	}
	fmt.Fprintf(&b, "%s%s%s%s%s\n", linePrefix, strings.Repeat(" ", padPrimer), prefixMinus, reverseString(rev.Primer), suffixMinus)

	b.WriteString("#\n")
	return b.String()
}

// RenderCall renders with DefaultOptions.
func RenderCall(r engine.Row) string {
	return RenderCallWithOptions(r, DefaultOptions)
}
