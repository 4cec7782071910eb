// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/RunningMSN/SPIDER/internal/cli"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

// RunContext parses argv, runs the crawl, and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	code := ExitOK
	cmd := cli.NewCommand(func(ctx context.Context, o cli.Options) error {
		code = Execute(ctx, o, stdout, stderr)
		return nil
	})
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(parent); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		if errors.Is(err, cli.ErrUsage) {
			_, _ = fmt.Fprintln(stderr, "Run 'spider --help' for usage.")
			return ExitUsage
		}
		return ExitRuntime
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
