// internal/app/execute.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/pkg/profile"

	"github.com/RunningMSN/SPIDER/internal/aligner"
	"github.com/RunningMSN/SPIDER/internal/aligner/blast"
	"github.com/RunningMSN/SPIDER/internal/aligner/builtin"
	"github.com/RunningMSN/SPIDER/internal/cli"
	"github.com/RunningMSN/SPIDER/internal/cmdutil"
	"github.com/RunningMSN/SPIDER/internal/config"
	"github.com/RunningMSN/SPIDER/internal/engine"
	"github.com/RunningMSN/SPIDER/internal/pipeline"
	"github.com/RunningMSN/SPIDER/internal/refdb"
	"github.com/RunningMSN/SPIDER/internal/writers"
)

// Execute runs a validated request end to end and returns the exit code.
func Execute(parent context.Context, o cli.Options, stdout, stderr io.Writer) int {
	start := time.Now()
	if o.Profile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(o.Profile), profile.Quiet, profile.NoShutdownHook).Stop()
	}

	refs, err := refdb.Load(parent, o.Database)
	if err != nil {
		return fail(stderr, err)
	}
	refs, err = refdb.Select(refs, refdb.Filter{Species: o.Species, VF: o.VF})
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}
	if term := o.Species + o.VF; term != "" {
		cmdutil.Infof(stderr, o.Quiet, "%d references were identified for %s.", len(refs), term)
	}
	for _, r := range refs {
		if r.Len() <= o.PrimerSize {
			cmdutil.Warnf(stderr, o.Quiet, "%s is not longer than the primer size (%d bp) and will not be crawled", r.Name, o.PrimerSize)
		}
	}

	al, err := newAligner(o.Config)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitRuntime
	}

	cmdutil.Infof(stderr, o.Quiet, "Beginning to crawl using the following settings:")
	cmdutil.Infof(stderr, o.Quiet, "Primer Size: %dbp", o.PrimerSize)
	cmdutil.Infof(stderr, o.Quiet, "Slide Limit: %g%%", o.SlideLimit)
	cmdutil.Infof(stderr, o.Quiet, "Length Limit: %g%%", o.Length)
	cmdutil.Infof(stderr, o.Quiet, "Identity Limit: %g%%", o.Identity)

	dst := stdout
	if o.Output != "" {
		fh, err := os.Create(o.Output)
		if err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return ExitRuntime
		}
		defer fh.Close()
		dst = fh
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	// a dead reader (e.g. `| head`) stops the crawl at the next assembly
	outw := bufio.NewWriter(writers.CancelOnError(dst, cancel))

	eng := engine.New(o.Engine(), al)
	if o.Verbose && !o.Quiet {
		eng.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	inCh, writeErr := writers.StartRowWriter(outw, o.Format, o.Header(), o.Pretty, o.Threads*4)

	pcfg := pipeline.Config{Threads: o.Threads}
	if o.Progress && !o.Quiet {
		pcfg.Progress = stderr
	}
	_, valid, perr := cmdutil.RunStream(ctx, pcfg, o.Assemblies, refs, eng,
		func(r engine.Row) error {
			select {
			case inCh <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, "error:", werr)
		return ExitRuntime
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, "error:", e)
		return ExitRuntime
	}

	if perr != nil {
		return fail(stderr, perr)
	}
	if valid == 0 {
		cmdutil.Warnf(stderr, o.Quiet, "no valid calls in %d assemblies", len(o.Assemblies))
	}
	cmdutil.Infof(stderr, o.Quiet, "SPIDER has finished running in %.2f seconds.", time.Since(start).Seconds())
	return ExitOK
}

// fail reports err and maps it to an exit code.
func fail(stderr io.Writer, err error) int {
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	fmt.Fprintln(stderr, "error:", err)
	return ExitRuntime
}

func newAligner(c config.Config) (aligner.Aligner, error) {
	if c.Aligner == config.AlignerBuiltin {
		return builtin.New(builtin.Config{MaxMismatches: c.MaxMismatches}), nil
	}
	if _, err := exec.LookPath(c.Blastn); err != nil {
		return nil, fmt.Errorf("%w: %s not found (install BLAST+ or use --aligner builtin)", aligner.ErrUnavailable, c.Blastn)
	}
	return blast.New(blast.Config{Binary: c.Blastn, EValue: c.EValue}), nil
}
