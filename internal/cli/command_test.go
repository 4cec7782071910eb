package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (Options, string, error) {
	t.Helper()
	var got Options
	cmd := NewCommand(func(_ context.Context, o Options) error {
		got = o
		return nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return got, out.String(), err
}

func fixture(t *testing.T) (db, asm string) {
	t.Helper()
	dir := t.TempDir()
	db = filepath.Join(dir, "db.fa")
	asm = filepath.Join(dir, "asm.fa")
	require.NoError(t, os.WriteFile(db, []byte(">r\nACGT\n"), 0o644))
	require.NoError(t, os.WriteFile(asm, []byte(">c\nACGT\n"), 0o644))
	return db, asm
}

func TestCommandResolves(t *testing.T) {
	db, asm := fixture(t)
	o, _, err := execute(t, "-d", db, "-f", asm, "-s", "coli", "--slide-limit", "3", "--no-header", "--aligner", "builtin")
	require.NoError(t, err)
	assert.Equal(t, []string{asm}, o.Assemblies)
	assert.Equal(t, db, o.Database)
	assert.Equal(t, "coli", o.Species)
	assert.Equal(t, 3.0, o.SlideLimit)
	assert.False(t, o.Header())
	assert.Equal(t, "builtin", o.Aligner)
}

func TestCommandPositionals(t *testing.T) {
	db, asm := fixture(t)
	o, _, err := execute(t, "-d", db, asm, asm)
	require.NoError(t, err)
	assert.Len(t, o.Assemblies, 2)
}

func TestCommandUsageErrors(t *testing.T) {
	db, asm := fixture(t)
	tests := map[string][]string{
		"no assembly":     {"-d", db},
		"no database":     {"-f", asm},
		"unknown flag":    {"-d", db, "-f", asm, "--bogus"},
		"bad number":      {"-d", db, "-f", asm, "--slide-limit", "x"},
		"species and vf":  {"-d", db, "-f", asm, "-s", "a", "-v", "b"},
		"missing file":    {"-d", db, "-f", filepath.Join(t.TempDir(), "nope.fa")},
		"fasta with list": {"-d", db, "-f", asm, "-l", asm},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := execute(t, args...)
			assert.ErrorIs(t, err, ErrUsage)
		})
	}
}

func TestCommandHelpAndVersion(t *testing.T) {
	_, out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "--slide-limit")
	assert.Contains(t, out, "--identity-rule")

	_, out, err = execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "spider version")
}
