// Package aligner is the boundary to local-alignment engines. It performs no
// biological reasoning: it ships query sequences to an engine and returns
// tabular hits in BLAST outfmt 6 conventions.
package aligner

import (
	"context"
	"errors"

	"github.com/RunningMSN/SPIDER/internal/fasta"
)

var (
	// ErrUnavailable means the engine could not be invoked.
	ErrUnavailable = errors.New("aligner unavailable")
	// ErrMalformed means the engine's output did not match the 12-column schema.
	ErrMalformed = errors.New("aligner output malformed")
)

// Mode selects the search parameters.
type Mode int

const (
	// ModePrimer tunes the search for short, near-exact queries.
	ModePrimer Mode = iota
	// ModeRegion aligns full-length queries against short subjects.
	ModeRegion
)

func (m Mode) String() string {
	if m == ModeRegion {
		return "region"
	}
	return "primer"
}

// Subject is the sequence set searched against. Path is used as-is when the
// engine can read it; otherwise Records are materialized by the engine.
type Subject struct {
	Path    string
	Records []fasta.Record
}

// Request is one batched alignment call.
type Request struct {
	Mode    Mode
	Queries []fasta.Record
	Subject Subject
}

// Aligner aligns a batch of queries against one subject.
type Aligner interface {
	Align(ctx context.Context, req Request) ([]Hit, error)
}

// Func adapts a function to Aligner.
type Func func(ctx context.Context, req Request) ([]Hit, error)

func (f Func) Align(ctx context.Context, req Request) ([]Hit, error) { return f(ctx, req) }
