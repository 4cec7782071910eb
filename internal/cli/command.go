// internal/cli/command.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/RunningMSN/SPIDER/internal/cliutil"
	"github.com/RunningMSN/SPIDER/internal/config"
	"github.com/RunningMSN/SPIDER/internal/version"
)

const long = `Sliding Primer In-silico Detection of Encoded Regions (SPIDER).

Anchors primer-length windows at both ends of every reference sequence,
locates them in each assembly with a local aligner, and validates the region
between them against slide, length and identity tolerances. Prints one row
per reference and assembly.

Settings may also come from a config file (--config) or SPIDER_* environment
variables, e.g. SPIDER_SLIDE_LIMIT=2.`

const examples = `  # all references of one species against one assembly
  spider -d vfdb.fasta -s "Staphylococcus aureus" -f GCF_000013425.fna.gz

  # a list of assemblies, 8 at a time, JSON output to a file
  spider -d vfdb.fasta -l assemblies.txt -t 8 --format json -o calls.json

  # custom targets, no BLAST+ installed
  spider -d targets.fa --aligner builtin --overlaps assemblies/`

// NewCommand builds the root command. run receives the validated options;
// its error is returned from Execute unchanged.
func NewCommand(run func(ctx context.Context, o Options) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "spider [flags] [assembly ...]",
		Short:         "Detect reference sequences in assemblies with sliding in-silico PCR",
		Long:          long,
		Example:       examples,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := resolve(cmd.Flags(), args)
			if err != nil {
				return err
			}
			return run(cmd.Context(), o)
		},
	}
	fs := cmd.Flags()
	fs.SortFlags = false
	config.RegisterFlags(fs)
	fs.String("config", "", "read settings from this YAML/TOML/JSON file")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})
	return cmd
}

func resolve(fs *pflag.FlagSet, args []string) (Options, error) {
	file, _ := fs.GetString("config")
	c, err := config.Load(fs, file)
	if err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if err := c.Validate(); err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if c.Fasta == "" && c.List == "" && len(args) == 0 {
		return Options{}, fmt.Errorf("%w: an assembly (--fasta, --list or a positional path) is required", ErrUsage)
	}
	asm, err := cliutil.Assemblies(c.Fasta, c.List, args)
	if err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return Options{Config: c, Assemblies: asm}, nil
}
