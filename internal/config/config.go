// internal/config/config.go
// Package config resolves run settings from flags, SPIDER_* environment
// variables and an optional config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/RunningMSN/SPIDER/internal/engine"
	"github.com/RunningMSN/SPIDER/internal/output"
)

// EnvPrefix namespaces environment overrides (SPIDER_SLIDE_LIMIT, ...).
const EnvPrefix = "SPIDER"

// Aligner backends.
const (
	AlignerBlastn  = "blastn"
	AlignerBuiltin = "builtin"
)

// ErrInvalid marks a configuration the run cannot start with.
var ErrInvalid = errors.New("invalid configuration")

// Config holds every setting of a run. Keys match the long flag names.
type Config struct {
	Fasta    string `mapstructure:"fasta"`
	List     string `mapstructure:"list"`
	Database string `mapstructure:"database"`
	Species  string `mapstructure:"species"`
	VF       string `mapstructure:"vf"`

	SlideLimit   float64 `mapstructure:"slide-limit"`
	Length       float64 `mapstructure:"length"`
	Identity     float64 `mapstructure:"identity"`
	PrimerSize   int     `mapstructure:"primer-size"`
	Overlaps     bool    `mapstructure:"overlaps"`
	IdentityRule string  `mapstructure:"identity-rule"`

	Aligner       string  `mapstructure:"aligner"`
	Blastn        string  `mapstructure:"blastn"`
	EValue        float64 `mapstructure:"evalue"`
	MaxMismatches int     `mapstructure:"max-mismatches"`

	Threads  int    `mapstructure:"threads"`
	Output   string `mapstructure:"output"`
	Format   string `mapstructure:"format"`
	NoHeader bool   `mapstructure:"no-header"`
	Pretty   bool   `mapstructure:"pretty"`
	Quiet    bool   `mapstructure:"quiet"`
	Verbose  bool   `mapstructure:"verbose"`
	Progress bool   `mapstructure:"progress"`
	Profile  string `mapstructure:"profile"`
}

// Load binds flags into a fresh viper instance, layers the environment and
// file on top, and decodes the result.
func Load(flags *pflag.FlagSet, file string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, err
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if c.Threads <= 0 {
		c.Threads = runtime.NumCPU()
	}
	return c, nil
}

// Engine projects the tolerances the crawl core consumes.
func (c Config) Engine() engine.Config {
	return engine.Config{
		PrimerSize:        c.PrimerSize,
		SlideLimit:        c.SlideLimit,
		LengthTolerance:   c.Length,
		IdentityTolerance: c.Identity,
		IdentityRule:      engine.IdentityRule(c.IdentityRule),
		DetectOverlaps:    c.Overlaps,
	}
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	switch {
	case c.Database == "":
		return fmt.Errorf("%w: --database is required", ErrInvalid)
	case c.Fasta != "" && c.List != "":
		return fmt.Errorf("%w: --fasta and --list are mutually exclusive", ErrInvalid)
	case c.Species != "" && c.VF != "":
		return fmt.Errorf("%w: --species and --vf are mutually exclusive", ErrInvalid)
	case c.Aligner != AlignerBlastn && c.Aligner != AlignerBuiltin:
		return fmt.Errorf("%w: unknown aligner %q (want %s or %s)", ErrInvalid, c.Aligner, AlignerBlastn, AlignerBuiltin)
	case c.MaxMismatches < 0:
		return fmt.Errorf("%w: --max-mismatches must be >= 0", ErrInvalid)
	case !validFormat(c.Format):
		return fmt.Errorf("%w: unknown format %q (want one of %s)", ErrInvalid, c.Format, strings.Join(output.Formats, ", "))
	case c.Pretty && c.Format != output.FormatTSV:
		return fmt.Errorf("%w: --pretty needs --format %s", ErrInvalid, output.FormatTSV)
	}
	if err := c.Engine().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func validFormat(f string) bool {
	for _, ok := range output.Formats {
		if f == ok {
			return true
		}
	}
	return false
}
