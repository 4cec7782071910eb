// internal/cliutil/cliutil.go
package cliutil

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MissingError lists every input path that does not exist.
type MissingError struct {
	Paths []string
}

func (e *MissingError) Error() string {
	return "the following assemblies could not be found: " + strings.Join(e.Paths, ",")
}

var fastaExts = []string{".fasta", ".fas", ".fna", ".ffn", ".fa"}

// IsFASTAName reports whether name has a FASTA extension, optionally gzipped.
func IsFASTAName(name string) bool {
	n := strings.TrimSuffix(strings.ToLower(name), ".gz")
	for _, ext := range fastaExts {
		if strings.HasSuffix(n, ext) {
			return true
		}
	}
	return false
}

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands globs and directories among path-like
// positionals. Directories contribute their FASTA files in name order.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	for _, a := range posArgs {
		if a == "-" {
			out = append(out, a)
			continue
		}
		if hasGlobMeta(a) {
			m, err := filepath.Glob(a)
			if err != nil {
				return nil, fmt.Errorf("bad glob %q: %v", a, err)
			}
			if len(m) == 0 {
				return nil, fmt.Errorf("no input matched %q", a)
			}
			out = append(out, m...)
			continue
		}
		if fi, err := os.Stat(a); err == nil && fi.IsDir() {
			files, err := fastaInDir(a)
			if err != nil {
				return nil, err
			}
			if len(files) == 0 {
				return nil, fmt.Errorf("no FASTA files in directory %q", a)
			}
			out = append(out, files...)
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func fastaInDir(dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range ents {
		if !e.IsDir() && IsFASTAName(e.Name()) {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

// ReadList returns the non-blank lines of a list file, trimmed.
func ReadList(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not find assembly list located at %s: %w", path, err)
	}
	defer fh.Close()
	var out []string
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	return out, sc.Err()
}

// CheckExist reports all missing paths at once ("-" is always present).
func CheckExist(paths []string) error {
	var missing []string
	for _, p := range paths {
		if p == "-" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return &MissingError{Paths: missing}
	}
	return nil
}

// Assemblies merges --fasta, --list and positionals into one checked list.
func Assemblies(fasta, list string, posArgs []string) ([]string, error) {
	var in []string
	if fasta != "" {
		in = append(in, fasta)
	}
	if list != "" {
		l, err := ReadList(list)
		if err != nil {
			return nil, err
		}
		in = append(in, l...)
	}
	pos, err := ExpandPositionals(posArgs)
	if err != nil {
		return nil, err
	}
	in = append(in, pos...)
	if err := CheckExist(in); err != nil {
		return nil, err
	}
	return in, nil
}
