package cliutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(">a\nA\n"), 0o644))
	return path
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.fa"))
	touch(t, filepath.Join(dir, "b.fa"))
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.fa")})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = ExpandPositionals([]string{filepath.Join(dir, "*.fna")})
	assert.Error(t, err)
}

func TestExpandDirectory(t *testing.T) {
	dir := t.TempDir()
	b := touch(t, filepath.Join(dir, "b.fna.gz"))
	a := touch(t, filepath.Join(dir, "a.fasta"))
	touch(t, filepath.Join(dir, "notes.txt"))
	got, err := ExpandPositionals([]string{dir, "-"})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b, "-"}, got)

	empty := t.TempDir()
	_, err = ExpandPositionals([]string{empty})
	assert.Error(t, err)
}

func TestReadList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	require.NoError(t, os.WriteFile(path, []byte("a.fa\n\n  b.fa  \n\n"), 0o644))
	got, err := ReadList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.fa", "b.fa"}, got)
}

func TestAssembliesReportsAllMissing(t *testing.T) {
	dir := t.TempDir()
	ok := touch(t, filepath.Join(dir, "ok.fa"))
	list := filepath.Join(dir, "list.txt")
	require.NoError(t, os.WriteFile(list, []byte(ok+"\nmissing1.fa\nmissing2.fa\n"), 0o644))

	_, err := Assemblies("", list, nil)
	var me *MissingError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, []string{"missing1.fa", "missing2.fa"}, me.Paths)
	assert.Contains(t, err.Error(), "missing1.fa,missing2.fa")
}

func TestAssembliesMerges(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, filepath.Join(dir, "a.fa"))
	b := touch(t, filepath.Join(dir, "b.fa"))
	got, err := Assemblies(a, "", []string{b})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, got)
}

func TestIsFASTAName(t *testing.T) {
	assert.True(t, IsFASTAName("x.FNA"))
	assert.True(t, IsFASTAName("x.fa.gz"))
	assert.False(t, IsFASTAName("x.gz"))
	assert.False(t, IsFASTAName("x.fastq"))
}
