// internal/refdb/refdb.go
// Package refdb loads the prepared reference database and narrows it down to
// the references a run should crawl.
package refdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/RunningMSN/SPIDER/internal/fasta"
)

// ErrEmpty is returned when a database, or a filter over it, yields nothing.
var ErrEmpty = errors.New("no reference sequences")

// Reference is one target sequence. Name is the full FASTA header.
type Reference struct {
	Index int
	Name  string
	Seq   []byte
}

func (r Reference) Len() int { return len(r.Seq) }

// Filter selects references by case-insensitive header substring. At most
// one of Species and VF should be set; an empty Filter keeps everything.
type Filter struct {
	Species string
	VF      string
}

func (f Filter) term() (kind, term string) {
	switch {
	case f.Species != "":
		return "species", f.Species
	case f.VF != "":
		return "virulence factor", f.VF
	}
	return "", ""
}

// FromRecords numbers records in database order.
func FromRecords(recs []fasta.Record) []Reference {
	out := make([]Reference, len(recs))
	for i, r := range recs {
		out[i] = Reference{Index: i, Name: r.Header(), Seq: r.Seq}
	}
	return out
}

// Load reads a database file (plain or gzip).
func Load(ctx context.Context, path string) ([]Reference, error) {
	recs, err := fasta.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read database %s: %w", path, err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrEmpty, path)
	}
	return FromRecords(recs), nil
}

// Select applies f and renumbers the survivors.
func Select(refs []Reference, f Filter) ([]Reference, error) {
	kind, term := f.term()
	if term == "" {
		return refs, nil
	}
	needle := strings.ToLower(term)
	var out []Reference
	for _, r := range refs {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			r.Index = len(out)
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no %s matches %q", ErrEmpty, kind, term)
	}
	return out, nil
}
