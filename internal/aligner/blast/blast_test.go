package blast

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RunningMSN/SPIDER/internal/aligner"
	"github.com/RunningMSN/SPIDER/internal/fasta"
)

// fakeBlastn writes a shell script standing in for blastn. It records its
// arguments next to itself and writes body to the -out path.
func fakeBlastn(t *testing.T, body string, exit int) (bin, argsFile string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in requires a POSIX shell")
	}
	dir := t.TempDir()
	bin = filepath.Join(dir, "blastn")
	argsFile = filepath.Join(dir, "args.txt")
	script := `#!/bin/sh
echo "$@" > "` + argsFile + `"
out=""
while [ $# -gt 0 ]; do
  case "$1" in
    -out) out="$2"; shift;;
  esac
  shift
done
cat > "$out" <<'HITS'
` + body + `HITS
echo "stand-in failure" >&2
exit ` + strconv.Itoa(exit) + "\n"
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))
	return bin, argsFile
}

func request(t *testing.T, mode aligner.Mode) aligner.Request {
	t.Helper()
	subj := filepath.Join(t.TempDir(), "asm.fa")
	require.NoError(t, fasta.WriteFile(subj, []fasta.Record{{ID: "c1", Seq: []byte("ACGTACGTACGTACGTACGTACGT")}}))
	return aligner.Request{
		Mode:    mode,
		Queries: []fasta.Record{{ID: "r0_F0", Seq: []byte("ACGTACGTACGTACGTACGT")}},
		Subject: aligner.Subject{Path: subj},
	}
}

func TestAlignPrimerMode(t *testing.T) {
	bin, argsFile := fakeBlastn(t, "r0_F0\tc1\t100.000\t20\t0\t0\t1\t20\t1\t20\t1e-05\t40.1\n", 0)
	a := New(Config{Binary: bin, TempDir: t.TempDir()})

	hits, err := a.Align(context.Background(), request(t, aligner.ModePrimer))
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "c1", hits[0].SubjectID)

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Contains(t, string(args), "-task blastn-short")
	assert.Contains(t, string(args), "-word_size 7")
	assert.Contains(t, string(args), "qseqid sseqid pident")
}

func TestAlignRegionModeUsesRegionTask(t *testing.T) {
	bin, argsFile := fakeBlastn(t, "", 0)
	a := New(Config{Binary: bin, TempDir: t.TempDir()})

	hits, err := a.Align(context.Background(), request(t, aligner.ModeRegion))
	require.NoError(t, err)
	assert.Empty(t, hits)

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Contains(t, string(args), "-task megablast")
	assert.NotContains(t, string(args), "-word_size")
}

func TestAlignInMemorySubjectIsMaterialized(t *testing.T) {
	bin, argsFile := fakeBlastn(t, "", 0)
	a := New(Config{Binary: bin, TempDir: t.TempDir()})
	req := request(t, aligner.ModeRegion)
	req.Subject = aligner.Subject{Records: []fasta.Record{{ID: "amp", Seq: []byte("ACGT")}}}

	_, err := a.Align(context.Background(), req)
	require.NoError(t, err)
	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Contains(t, string(args), ".subject.fa")
}

func TestAlignMissingBinary(t *testing.T) {
	a := New(Config{Binary: filepath.Join(t.TempDir(), "no-such-blastn")})
	_, err := a.Align(context.Background(), request(t, aligner.ModePrimer))
	assert.ErrorIs(t, err, aligner.ErrUnavailable)
}

func TestAlignNonZeroExit(t *testing.T) {
	bin, _ := fakeBlastn(t, "", 1)
	a := New(Config{Binary: bin, TempDir: t.TempDir()})
	_, err := a.Align(context.Background(), request(t, aligner.ModePrimer))
	require.ErrorIs(t, err, aligner.ErrUnavailable)
	assert.True(t, strings.Contains(err.Error(), "stand-in failure"))
}

func TestAlignMalformedOutput(t *testing.T) {
	bin, _ := fakeBlastn(t, "this is not tabular\n", 0)
	a := New(Config{Binary: bin, TempDir: t.TempDir()})
	_, err := a.Align(context.Background(), request(t, aligner.ModePrimer))
	assert.ErrorIs(t, err, aligner.ErrMalformed)
}

func TestAlignNoQueries(t *testing.T) {
	a := New(Config{Binary: "definitely-not-installed"})
	hits, err := a.Align(context.Background(), aligner.Request{})
	assert.NoError(t, err)
	assert.Nil(t, hits)
}
