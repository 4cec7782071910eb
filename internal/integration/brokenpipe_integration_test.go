package integration

import (
	"bytes"
	"context"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RunningMSN/SPIDER/internal/app"
)

// closedStdout behaves like a pipe whose reader has gone away.
type closedStdout struct{}

func (closedStdout) Write([]byte) (int, error) { return 0, syscall.EPIPE }

func TestClosedStdoutStopsCrawl(t *testing.T) {
	const n = 80
	f := newFixture(t, n)
	var errBuf bytes.Buffer
	code := app.RunContext(context.Background(),
		[]string{"-d", f.db, "--aligner", "builtin", "-t", "1", "--verbose", f.asmDir},
		closedStdout{}, &errBuf)
	require.Equal(t, 0, code, errBuf.String())

	crawled := strings.Count(errBuf.String(), "msg=call query=")
	assert.Positive(t, crawled)
	assert.Less(t, crawled, 2*n, "crawl continued after the output closed")
}
