package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RunningMSN/SPIDER/internal/aligner"
	"github.com/RunningMSN/SPIDER/internal/refdb"
)

func pairSpan(start, end int, fid, rid float64) AnchorPair {
	return AnchorPair{
		Contig:  "c1",
		Strand:  "+",
		Forward: Anchor{Hit: aligner.Hit{PIdent: fid}},
		Reverse: Anchor{Hit: aligner.Hit{PIdent: rid}},
		Start:   start,
		End:     end,
	}
}

func TestEvaluateOutcomeRow(t *testing.T) {
	ref := refdb.Reference{Name: "vfX", Seq: make([]byte, 300)}
	row := DefaultConfig().Evaluate("asm", ref, AnchorPair{}, OutcomeNoReverse, nil)
	assert.False(t, row.Valid)
	assert.False(t, row.Anchored)
	assert.Equal(t, "no reverse hit", row.Message)
	assert.Equal(t, 300, row.RefLength)
	assert.Zero(t, row.CoveragePercLen)
}

func TestEvaluateLength(t *testing.T) {
	ref := refdb.Reference{Name: "vfX", Seq: make([]byte, 300)}
	cfg := DefaultConfig()

	tests := []struct {
		end   int
		valid bool
	}{
		{240, true},  // 240 bp = 80%
		{239, false}, // 239 bp
		{360, true},  // 120%
		{361, false},
	}
	for _, tc := range tests {
		row := cfg.Evaluate("asm", ref, pairSpan(1, tc.end, 100, 100), OutcomeNone, nil)
		assert.Equal(t, tc.valid, row.Valid, "end %d", tc.end)
		if !tc.valid {
			assert.Equal(t, string(OutcomeLength), row.Message)
		}
	}
}

func TestEvaluateIdentityRules(t *testing.T) {
	ref := refdb.Reference{Name: "vfX", Seq: make([]byte, 300)}
	region := &aligner.Hit{PIdent: 97.5, Length: 310}
	pair := pairSpan(1, 300, 90, 100)

	cfg := DefaultConfig()
	assert.InDelta(t, 90.0, cfg.Evaluate("a", ref, pair, OutcomeNone, region).Identity, 1e-9)
	cfg.IdentityRule = IdentityMean
	assert.InDelta(t, 95.0, cfg.Evaluate("a", ref, pair, OutcomeNone, region).Identity, 1e-9)
	cfg.IdentityRule = IdentityRegion
	row := cfg.Evaluate("a", ref, pair, OutcomeNone, region)
	assert.InDelta(t, 97.5, row.Identity, 1e-9)
	assert.InDelta(t, 310.0/3, row.CoveragePercAlign, 1e-9)
	assert.Zero(t, cfg.Evaluate("a", ref, pair, OutcomeNone, nil).Identity)
}

func TestEvaluateIdentityThreshold(t *testing.T) {
	ref := refdb.Reference{Name: "vfX", Seq: make([]byte, 300)}
	cfg := DefaultConfig()
	cfg.IdentityTolerance = 95
	row := cfg.Evaluate("a", ref, pairSpan(1, 300, 94, 100), OutcomeNone, nil)
	assert.False(t, row.Valid)
	assert.True(t, row.Anchored)
	assert.Equal(t, string(OutcomeIdentity), row.Message)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	bad := []func(*Config){
		func(c *Config) { c.PrimerSize = 0 },
		func(c *Config) { c.SlideLimit = 0 },
		func(c *Config) { c.LengthTolerance = -1 },
		func(c *Config) { c.IdentityTolerance = 101 },
		func(c *Config) { c.IdentityRule = "max" },
	}
	for i, mut := range bad {
		c := DefaultConfig()
		mut(&c)
		assert.ErrorIs(t, c.Validate(), ErrConfig, "case %d", i)
	}
}
