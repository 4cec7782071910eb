// internal/config/flags.go
package config

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/RunningMSN/SPIDER/internal/engine"
	"github.com/RunningMSN/SPIDER/internal/output"
)

// RegisterFlags defines every setting on fs with its default. Load reads
// them back through viper, so names here are the config keys.
func RegisterFlags(fs *pflag.FlagSet) {
	def := engine.DefaultConfig()

	// inputs
	fs.StringP("fasta", "f", "", "assembly FASTA to crawl (plain, gzip, or '-')")
	fs.StringP("list", "l", "", "file listing one assembly path per line")
	fs.StringP("database", "d", "", "prepared reference database (FASTA, optionally gzip)")
	fs.StringP("species", "s", "", "only crawl references whose header contains this species")
	fs.StringP("vf", "v", "", "only crawl references whose header contains this virulence factor")

	// tolerances
	fs.Float64("slide-limit", def.SlideLimit, "percent of reference length primers may slide")
	fs.Float64("length", def.LengthTolerance, "percent length tolerance (20 accepts 80-120%)")
	fs.Float64("identity", def.IdentityTolerance, "minimum percent identity for a valid call")
	fs.IntP("primer-size", "p", def.PrimerSize, "primer length in bp")
	fs.Bool("overlaps", false, "annotate valid calls that overlap on the same contig and strand")
	fs.String("identity-rule", string(def.IdentityRule), "identity reported and judged: min, mean or region")

	// aligner
	fs.String("aligner", AlignerBlastn, "alignment backend: blastn or builtin")
	fs.String("blastn", "blastn", "blastn executable")
	fs.Float64("evalue", 10, "blastn e-value cutoff for primer searches")
	fs.Int("max-mismatches", 1, "builtin aligner: mismatches allowed per primer")

	// run & output
	fs.IntP("threads", "t", 0, "assemblies crawled in parallel (0 = all CPUs)")
	fs.StringP("output", "o", "", "write results to this file instead of stdout")
	fs.String("format", output.FormatTSV, "output format: "+strings.Join(output.Formats, ", "))
	fs.Bool("no-header", false, "suppress the TSV header line")
	fs.Bool("pretty", false, "draw primer anchor diagrams under located TSV rows")
	fs.BoolP("quiet", "q", false, "suppress banner and warnings")
	fs.Bool("verbose", false, "trace every reference decision on stderr")
	fs.Bool("progress", false, "show a progress bar on stderr")
	fs.String("profile", "", "write a CPU profile into this directory")
}
