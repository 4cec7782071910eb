// internal/engine/config.go
package engine

import (
	"errors"
	"fmt"
)

// IdentityRule decides which identity figure a call is judged on.
type IdentityRule string

const (
	// IdentityMin is the lower of the two anchor identities.
	IdentityMin IdentityRule = "min"
	// IdentityMean averages the two anchor identities.
	IdentityMean IdentityRule = "mean"
	// IdentityRegion uses the reference-vs-amplicon alignment.
	IdentityRegion IdentityRule = "region"
)

// Config carries the tolerances. Percentages are 0-100.
type Config struct {
	PrimerSize        int
	SlideLimit        float64
	LengthTolerance   float64
	IdentityTolerance float64
	IdentityRule      IdentityRule
	DetectOverlaps    bool
}

// DefaultConfig mirrors the command-line defaults.
func DefaultConfig() Config {
	return Config{
		PrimerSize:        20,
		SlideLimit:        5,
		LengthTolerance:   20,
		IdentityTolerance: 0,
		IdentityRule:      IdentityMin,
	}
}

// ErrConfig marks an invalid tolerance.
var ErrConfig = errors.New("invalid engine config")

// Validate checks the ranges the crawl relies on.
func (c Config) Validate() error {
	switch {
	case c.PrimerSize <= 0:
		return fmt.Errorf("%w: primer size must be > 0 (got %d)", ErrConfig, c.PrimerSize)
	case c.SlideLimit <= 0:
		return fmt.Errorf("%w: slide limit must be > 0 (got %g)", ErrConfig, c.SlideLimit)
	case c.LengthTolerance < 0:
		return fmt.Errorf("%w: length tolerance must be >= 0 (got %g)", ErrConfig, c.LengthTolerance)
	case c.IdentityTolerance < 0 || c.IdentityTolerance > 100:
		return fmt.Errorf("%w: identity tolerance must be within 0-100 (got %g)", ErrConfig, c.IdentityTolerance)
	}
	switch c.IdentityRule {
	case IdentityMin, IdentityMean, IdentityRegion, "":
	default:
		return fmt.Errorf("%w: unknown identity rule %q", ErrConfig, c.IdentityRule)
	}
	return nil
}
