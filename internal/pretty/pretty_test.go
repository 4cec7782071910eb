package pretty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RunningMSN/SPIDER/internal/engine"
)

func located() engine.Row {
	return engine.Row{
		Anchored: true, Contig: "c1", Start: 11, End: 40, Strand: "+", VFLength: 30,
		Forward: engine.Site{Primer: "AAA", Target: "AAA"},
		Reverse: engine.Site{Primer: "TTT", Target: "TTT"},
	}
}

func TestRenderCall(t *testing.T) {
	dots := strings.Repeat(".", 24)
	pad := strings.Repeat(" ", 24)
	want := strings.Join([]string{
		"# c1:11-40 (+) len=30 fwd_mm=- rev_mm=-",
		"# 5'-AAA-3'",
		"#    |||-->",
		"# 5'-AAA" + dots + "-3' # (+)",
		"# 3'-" + dots + "TTT-5' # (-)",
		"# " + pad + "<--|||",
		"# " + pad + "3'-TTT-5'",
		"#",
		"",
	}, "\n")
	assert.Equal(t, want, RenderCall(located()))
}

func TestRenderCallMismatchAndAmbiguity(t *testing.T) {
	r := located()
	r.Strand = "-"
	r.Forward = engine.Site{Primer: "ANA", Target: "ACA"}
	r.Reverse = engine.Site{Primer: "TTG", Target: "TTT", Mismatches: []int{2}}
	out := RenderCall(r)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "# c1:11-40 (-) len=30 fwd_mm=- rev_mm=2", lines[0])
	assert.Equal(t, "#    |¦|-->", lines[2])
	assert.True(t, strings.HasSuffix(lines[3], "# (-)"))
	assert.True(t, strings.HasSuffix(lines[4], "# (+)"))
	assert.True(t, strings.HasSuffix(lines[5], "<-- ||"))
	assert.True(t, strings.HasSuffix(lines[6], "3'-GTT-5'"))
}

func TestRenderCallShortAmpliconKeepsPrimersApart(t *testing.T) {
	r := located()
	r.VFLength = 4
	lines := strings.Split(RenderCall(r), "\n")
	// interior floor of primer length plus minInterPrimerGap
	assert.Equal(t, "# 5'-AAA"+strings.Repeat(".", 8)+"-3' # (+)", lines[3])
	assert.Equal(t, "# 3'-"+strings.Repeat(".", 8)+"TTT-5' # (-)", lines[4])
}

func TestRenderCallSkipsUnlocated(t *testing.T) {
	assert.Empty(t, RenderCall(engine.Row{Message: "no forward hit"}))
	r := located()
	r.Forward = engine.Site{}
	assert.Contains(t, RenderCall(r), "pretty not available")
}

func TestDefaultOptionsStable(t *testing.T) {
	d := DefaultOptions
	assert.Equal(t, ".", d.DotGlyph)
	assert.Equal(t, "|", d.ExactGlyph)
	assert.Equal(t, "¦", d.PartialGlyph)
	assert.Equal(t, 95, d.MaxGap)
}
