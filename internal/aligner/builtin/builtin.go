// Package builtin is a pure-Go ungapped aligner that satisfies the
// aligner.Aligner contract. It is slower and less sensitive than BLAST+ but
// needs no external binary.
package builtin

import (
	"context"
	"fmt"
	"math"

	"github.com/RunningMSN/SPIDER/internal/aligner"
	"github.com/RunningMSN/SPIDER/internal/fasta"
	"github.com/RunningMSN/SPIDER/internal/primer"
)

// Karlin-Altschul parameters for ungapped +1/-3 nucleotide scoring.
const (
	lambda = 1.374
	kappa  = 0.711

	matchScore    = 1
	mismatchScore = -3

	regionSeedLen = 16
)

// Config holds the search knobs.
type Config struct {
	// MaxMismatches bounds primer-mode placements.
	MaxMismatches int
}

// Aligner is the pure-Go engine.
type Aligner struct {
	cfg Config
}

// New returns an Aligner. Negative mismatch budgets are treated as zero.
func New(cfg Config) *Aligner {
	if cfg.MaxMismatches < 0 {
		cfg.MaxMismatches = 0
	}
	return &Aligner{cfg: cfg}
}

var _ aligner.Aligner = (*Aligner)(nil)

// Align searches every query against every subject record. Primer mode
// reports each placement on either strand within the mismatch budget; region
// mode reports the best plus-strand diagonal per query/subject pair.
func (a *Aligner) Align(ctx context.Context, req aligner.Request) ([]aligner.Hit, error) {
	if len(req.Queries) == 0 {
		return nil, nil
	}
	subj := req.Subject.Records
	if subj == nil {
		recs, err := fasta.ReadFile(ctx, req.Subject.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", aligner.ErrUnavailable, err)
		}
		subj = recs
	}
	dbLen := 0
	for _, r := range subj {
		dbLen += len(r.Seq)
	}

	var seeds []seed
	oriented := make([][2][]byte, len(req.Queries))
	for qi, q := range req.Queries {
		oriented[qi][0] = q.Seq
		switch req.Mode {
		case aligner.ModeRegion:
			seeds = append(seeds, regionSeeds(qi, false, q.Seq, regionSeedLen)...)
		default:
			rc := primer.RevComp(q.Seq)
			oriented[qi][1] = rc
			seeds = append(seeds, primerSeeds(qi, false, q.Seq, a.cfg.MaxMismatches)...)
			seeds = append(seeds, primerSeeds(qi, true, rc, a.cfg.MaxMismatches)...)
		}
	}
	if len(seeds) == 0 {
		return nil, nil
	}
	nodes := buildAC(seeds)

	var hits []aligner.Hit
	for _, s := range subj {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if req.Mode == aligner.ModeRegion {
			hits = append(hits, a.region(req.Queries, s, nodes, seeds, dbLen)...)
		} else {
			hits = append(hits, a.primers(req.Queries, oriented, s, nodes, seeds, dbLen)...)
		}
	}
	return hits, nil
}

type placement struct {
	query int
	minus bool
	diag  int // subject offset of the oriented query's first base
}

func (a *Aligner) primers(queries []fasta.Record, oriented [][2][]byte, s fasta.Record, nodes []acNode, seeds []seed, dbLen int) []aligner.Hit {
	seen := make(map[placement]struct{})
	var out []aligner.Hit
	scanAC(s.Seq, nodes, seeds, func(sh seedHit) {
		sd := seeds[sh.seedIdx]
		p := placement{query: sd.query, minus: sd.minus, diag: sh.pos - sd.qoff}
		if _, dup := seen[p]; dup {
			return
		}
		seen[p] = struct{}{}
		oq := oriented[sd.query][0]
		if sd.minus {
			oq = oriented[sd.query][1]
		}
		if p.diag < 0 || p.diag+len(oq) > len(s.Seq) {
			return
		}
		mm := primer.MismatchCount(s.Seq[p.diag:p.diag+len(oq)], oq)
		if mm > a.cfg.MaxMismatches {
			return
		}
		out = append(out, makeHit(queries[sd.query].ID, s.ID, len(oq), p.minus, 0, p.diag, len(oq), mm, dbLen))
	})
	return out
}

func (a *Aligner) region(queries []fasta.Record, s fasta.Record, nodes []acNode, seeds []seed, dbLen int) []aligner.Hit {
	seen := make(map[placement]struct{})
	type best struct {
		qa, sa, n, mm int
		ok            bool
	}
	bests := make([]best, len(queries))
	scanAC(s.Seq, nodes, seeds, func(sh seedHit) {
		sd := seeds[sh.seedIdx]
		p := placement{query: sd.query, diag: sh.pos - sd.qoff}
		if _, dup := seen[p]; dup {
			return
		}
		seen[p] = struct{}{}
		q := queries[sd.query].Seq
		qa, sa := 0, p.diag
		if p.diag < 0 {
			qa, sa = -p.diag, 0
		}
		n := min(len(q)-qa, len(s.Seq)-sa)
		if n <= 0 {
			return
		}
		mm := primer.MismatchCount(s.Seq[sa:sa+n], q[qa:qa+n])
		b := &bests[sd.query]
		if !b.ok || n-mm > b.n-b.mm || (n-mm == b.n-b.mm && mm < b.mm) {
			*b = best{qa: qa, sa: sa, n: n, mm: mm, ok: true}
		}
	})
	var out []aligner.Hit
	for qi, b := range bests {
		if !b.ok {
			continue
		}
		out = append(out, makeHit(queries[qi].ID, s.ID, len(queries[qi].Seq), false, b.qa, b.sa, b.n, b.mm, dbLen))
	}
	return out
}

// makeHit converts an aligned block of n columns into BLAST conventions. qa
// and sa are 0-based offsets into the oriented query and the subject; for
// minus placements the query coordinates are mapped back to the original
// strand and the subject coordinates run high to low.
func makeHit(qid, sid string, qlen int, minus bool, qa, sa, n, mm, dbLen int) aligner.Hit {
	h := aligner.Hit{
		QueryID:   qid,
		SubjectID: sid,
		PIdent:    100 * float64(n-mm) / float64(n),
		Length:    n,
		Mismatch:  mm,
		QStart:    qa + 1,
		QEnd:      qa + n,
		SStart:    sa + 1,
		SEnd:      sa + n,
	}
	if minus {
		h.QStart, h.QEnd = qlen-qa-n+1, qlen-qa
		h.SStart, h.SEnd = sa+n, sa+1
	}
	h.BitScore, h.EValue = score(n, mm, qlen, dbLen)
	return h
}

func score(n, mm, qlen, dbLen int) (bits, evalue float64) {
	raw := float64((n-mm)*matchScore + mm*mismatchScore)
	bits = (lambda*raw - math.Log(kappa)) / math.Ln2
	evalue = float64(qlen) * float64(dbLen) * math.Exp2(-bits)
	return bits, evalue
}
