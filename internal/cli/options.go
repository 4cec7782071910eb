// internal/cli/options.go
package cli

import (
	"errors"

	"github.com/RunningMSN/SPIDER/internal/config"
)

// ErrUsage marks command-line mistakes (exit code 2).
var ErrUsage = errors.New("usage error")

// Options is a resolved, validated run request.
type Options struct {
	config.Config
	// Assemblies merges --fasta, --list and positionals, all known to exist.
	Assemblies []string
}

// Header reports whether TSV output carries a header line.
func (o Options) Header() bool { return !o.NoHeader }
