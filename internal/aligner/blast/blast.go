// Package blast runs NCBI blastn as an aligner.Aligner.
package blast

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/RunningMSN/SPIDER/internal/aligner"
	"github.com/RunningMSN/SPIDER/internal/fasta"
)

// Config holds blastn invocation settings. Zero values take defaults.
type Config struct {
	// Binary is the blastn executable name or path ["blastn"].
	Binary string
	// PrimerTask is used for short primer queries ["blastn-short"].
	PrimerTask string
	// RegionTask is used for full-length region checks ["megablast"].
	RegionTask string
	// WordSize for primer searches ["7"].
	WordSize int
	// EValue cutoff for primer searches [10].
	EValue float64
	// TempDir holds per-call query/subject/output files [os.TempDir()].
	TempDir string
}

func (c Config) withDefaults() Config {
	if c.Binary == "" {
		c.Binary = "blastn"
	}
	if c.PrimerTask == "" {
		c.PrimerTask = "blastn-short"
	}
	if c.RegionTask == "" {
		c.RegionTask = "megablast"
	}
	if c.WordSize <= 0 {
		c.WordSize = 7
	}
	if c.EValue <= 0 {
		c.EValue = 10
	}
	return c
}

// Aligner shells out to blastn once per Align call.
type Aligner struct {
	cfg Config
}

// New returns a blastn-backed aligner.
func New(cfg Config) *Aligner { return &Aligner{cfg: cfg.withDefaults()} }

var _ aligner.Aligner = (*Aligner)(nil)

// blastExec is one blastn invocation and its scratch files.
type blastExec struct {
	// path to the blastn executable
	blastn string

	// the query records and the file they are written to
	queries []fasta.Record
	in      string

	// the subject FASTA (assembly or amplicons)
	subject string

	// the path for the BLAST output
	out string

	args []string
}

// Align runs blastn with req.Queries against req.Subject and parses the
// tabular output. Scratch files are removed before returning.
func (a *Aligner) Align(ctx context.Context, req aligner.Request) ([]aligner.Hit, error) {
	if len(req.Queries) == 0 {
		return nil, nil
	}
	bin, err := exec.LookPath(a.cfg.Binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", aligner.ErrUnavailable, err)
	}

	dir, err := os.MkdirTemp(a.cfg.TempDir, "spider-blast-")
	if err != nil {
		return nil, fmt.Errorf("creating BLAST scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	id := uuid.New().String()
	b := &blastExec{
		blastn:  bin,
		queries: req.Queries,
		in:      filepath.Join(dir, id+".query.fa"),
		out:     filepath.Join(dir, id+".out"),
	}

	if err := b.create(ctx, req.Subject, filepath.Join(dir, id+".subject.fa")); err != nil {
		return nil, fmt.Errorf("failed at creating BLAST input files in %s: %w", dir, err)
	}
	b.args = a.args(req.Mode, b)
	if err := b.run(ctx); err != nil {
		return nil, err
	}
	return b.parse()
}

// args builds the blastn command line for one mode.
// https://www.ncbi.nlm.nih.gov/books/NBK279684/
func (a *Aligner) args(mode aligner.Mode, b *blastExec) []string {
	args := []string{
		"-query", b.in,
		"-subject", b.subject,
		"-out", b.out,
		"-outfmt", "6 " + strings.Join(aligner.Columns, " "),
		"-dust", "no",
		"-soft_masking", "false",
	}
	switch mode {
	case aligner.ModeRegion:
		args = append(args, "-task", a.cfg.RegionTask)
	default:
		args = append(args,
			"-task", a.cfg.PrimerTask,
			"-word_size", strconv.Itoa(a.cfg.WordSize),
			"-evalue", strconv.FormatFloat(a.cfg.EValue, 'g', -1, 64),
		)
	}
	return args
}

// create writes the query file and settles the subject path. Plain files are
// passed through; gzip, stdin and in-memory subjects are written out.
func (b *blastExec) create(ctx context.Context, s aligner.Subject, scratch string) error {
	if err := fasta.WriteFile(b.in, b.queries); err != nil {
		return err
	}
	if s.Path != "" && s.Path != "-" && !fasta.IsGzip(s.Path) {
		b.subject = s.Path
		return nil
	}
	recs := s.Records
	if len(recs) == 0 && s.Path != "" {
		var err error
		if recs, err = fasta.ReadFile(ctx, s.Path); err != nil {
			return err
		}
	}
	b.subject = scratch
	return fasta.WriteFile(scratch, recs)
}

// run calls the external blastn binary and waits for it to finish.
func (b *blastExec) run(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, b.blastn, b.args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: blastn exited %d: %s", aligner.ErrUnavailable, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return fmt.Errorf("%w: %v", aligner.ErrUnavailable, err)
	}
	return nil
}

// parse reads the buffered output file into hits.
func (b *blastExec) parse() ([]aligner.Hit, error) {
	fh, err := os.Open(b.out)
	if err != nil {
		return nil, fmt.Errorf("%w: reading blastn output: %v", aligner.ErrMalformed, err)
	}
	defer fh.Close()
	return aligner.ParseTabular(fh)
}
