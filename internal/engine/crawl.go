// internal/engine/crawl.go
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/RunningMSN/SPIDER/internal/aligner"
	"github.com/RunningMSN/SPIDER/internal/fasta"
	"github.com/RunningMSN/SPIDER/internal/primer"
	"github.com/RunningMSN/SPIDER/internal/refdb"
)

// Engine crawls assemblies with a fixed configuration and aligner. It holds
// no per-crawl state and is safe for concurrent use when the aligner is.
type Engine struct {
	cfg Config
	al  aligner.Aligner
	log *slog.Logger
}

func New(cfg Config, al aligner.Aligner) *Engine {
	if cfg.IdentityRule == "" {
		cfg.IdentityRule = IdentityMin
	}
	return &Engine{cfg: cfg, al: al}
}

// Config returns the effective configuration.
func (e *Engine) Config() Config { return e.cfg }

// SetLogger enables debug tracing of every call decision; nil disables it.
func (e *Engine) SetLogger(l *slog.Logger) { e.log = l }

// Crawl loads the database at dbPath and crawls one assembly against it.
func (e *Engine) Crawl(ctx context.Context, assemblyPath, dbPath string) (Table, error) {
	refs, err := refdb.Load(ctx, dbPath)
	if err != nil {
		return nil, err
	}
	return e.CrawlReferences(ctx, assemblyPath, refs)
}

/* -------------------------------------------------------------------------- */
/*                               CrawlReferences                              */
/* -------------------------------------------------------------------------- */

// CrawlReferences returns exactly one Row per reference, in input order.
// Only an unreadable assembly, an aligner failure or cancellation is fatal.
func (e *Engine) CrawlReferences(ctx context.Context, assemblyPath string, refs []refdb.Reference) (Table, error) {
	contigs, err := fasta.ReadFile(ctx, assemblyPath)
	if err != nil {
		return nil, fmt.Errorf("read assembly %s: %w", assemblyPath, err)
	}
	subject := aligner.Subject{Path: assemblyPath, Records: contigs}
	query := QueryName(assemblyPath)

	// primer families, looked up by query id when hits come back
	type origin struct {
		ref   int
		shift int
		seq   []byte
	}
	origins := make(map[string]origin)
	tooLong := make([]bool, len(refs))
	var fwdQ, revQ []fasta.Record
	for i, ref := range refs {
		maxShift := primer.MaxShift(ref.Len(), e.cfg.SlideLimit)
		fwd, rev, err := primer.Slide(i, ref.Seq, e.cfg.PrimerSize, maxShift)
		if errors.Is(err, primer.ErrInvalidPrimerSize) {
			tooLong[i] = true
			continue
		} else if err != nil {
			return nil, err
		}
		for _, p := range fwd {
			origins[p.ID()] = origin{i, p.Shift, p.Seq}
			fwdQ = append(fwdQ, fasta.Record{ID: p.ID(), Seq: p.Seq})
		}
		for _, p := range rev {
			origins[p.ID()] = origin{i, p.Shift, p.Seq}
			revQ = append(revQ, fasta.Record{ID: p.ID(), Seq: p.Seq})
		}
	}

	fwdA := make([][]Anchor, len(refs))
	revA := make([][]Anchor, len(refs))
	for _, batch := range []struct {
		queries []fasta.Record
		into    [][]Anchor
	}{{fwdQ, fwdA}, {revQ, revA}} {
		if len(batch.queries) == 0 {
			continue
		}
		hits, err := e.al.Align(ctx, aligner.Request{Mode: aligner.ModePrimer, Queries: batch.queries, Subject: subject})
		if err != nil {
			return nil, fmt.Errorf("align primers against %s: %w", assemblyPath, err)
		}
		for _, h := range hits {
			o, ok := origins[h.QueryID]
			if !ok {
				continue
			}
			batch.into[o.ref] = append(batch.into[o.ref], Anchor{
				Hit:   h,
				Shift: o.shift,
				Slide: slidePct(o.shift, h, refs[o.ref].Len()),
			})
		}
	}

	pairs := make([]AnchorPair, len(refs))
	outcomes := make([]Outcome, len(refs))
	for i := range refs {
		if tooLong[i] {
			outcomes[i] = OutcomePrimerTooLong
			continue
		}
		pairs[i], outcomes[i] = Resolve(refs[i].Len(), fwdA[i], revA[i], e.cfg.SlideLimit, e.cfg.LengthTolerance)
	}

	byID := contigsByID(contigs)
	amplicons := make([][]byte, len(refs))
	for i, p := range pairs {
		if outcomes[i] == OutcomeNone {
			amplicons[i] = extract(byID[p.Contig], p)
		}
	}
	regions, err := e.alignRegions(ctx, refs, amplicons)
	if err != nil {
		return nil, fmt.Errorf("align regions against %s: %w", assemblyPath, err)
	}

	table := make(Table, len(refs))
	for i, ref := range refs {
		var region *aligner.Hit
		if h, ok := regions[i]; ok {
			region = &h
		}
		row := e.cfg.Evaluate(query, ref, pairs[i], outcomes[i], region)
		if row.Anchored {
			p := pairs[i]
			contig := byID[p.Contig]
			row.Forward = placeSite(contig, origins[p.Forward.Hit.QueryID].seq, p.Forward)
			row.Reverse = placeSite(contig, origins[p.Reverse.Hit.QueryID].seq, p.Reverse)
		}
		if e.log != nil {
			e.log.Debug("call", "query", query, "ref", ref.Name,
				"fwd_hits", len(fwdA[i]), "rev_hits", len(revA[i]),
				"valid", row.Valid, "message", row.Message)
		}
		table[i] = row
	}
	if e.cfg.DetectOverlaps {
		AnnotateOverlaps(table)
	}
	return table, nil
}

// alignRegions aligns every reference with an amplicon against it in one
// batched call and keeps the highest-scoring HSP per reference.
func (e *Engine) alignRegions(ctx context.Context, refs []refdb.Reference, amplicons [][]byte) (map[int]aligner.Hit, error) {
	var queries, subjects []fasta.Record
	for i, amp := range amplicons {
		if len(amp) == 0 {
			continue
		}
		id := "r" + strconv.Itoa(i)
		queries = append(queries, fasta.Record{ID: id, Seq: refs[i].Seq})
		subjects = append(subjects, fasta.Record{ID: id, Seq: amp})
	}
	out := make(map[int]aligner.Hit)
	if len(queries) == 0 {
		return out, nil
	}
	hits, err := e.al.Align(ctx, aligner.Request{
		Mode:    aligner.ModeRegion,
		Queries: queries,
		Subject: aligner.Subject{Records: subjects},
	})
	if err != nil {
		return nil, err
	}
	for _, h := range hits {
		if h.QueryID != h.SubjectID {
			continue
		}
		i, err := strconv.Atoi(strings.TrimPrefix(h.QueryID, "r"))
		if err != nil {
			continue
		}
		if cur, ok := out[i]; !ok || h.BitScore > cur.BitScore {
			out[i] = h
		}
	}
	return out, nil
}

func contigsByID(contigs []fasta.Record) map[string][]byte {
	byID := make(map[string][]byte, len(contigs))
	for _, c := range contigs {
		byID[c.ID] = c.Seq
	}
	return byID
}

// extract returns the amplicon in reference orientation.
func extract(contig []byte, p AnchorPair) []byte {
	if p.Start < 1 || p.End > len(contig) {
		return nil
	}
	amp := contig[p.Start-1 : p.End]
	if p.Strand == "-" {
		return primer.RevComp(amp)
	}
	return append([]byte(nil), amp...)
}

var fastaExts = []string{".fasta", ".fas", ".fna", ".ffn", ".fa"}

// QueryName is the assembly's display name: its base name without gzip and
// FASTA extensions. Standard input is reported as "stdin".
func QueryName(path string) string {
	if path == "-" {
		return "stdin"
	}
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, ".gz")
	lower := strings.ToLower(name)
	for _, ext := range fastaExts {
		if strings.HasSuffix(lower, ext) {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}
