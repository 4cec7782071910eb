// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/seq/linear"
)

// Record is one FASTA entry. Seq is upper-cased.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// Header returns the full header text (ID and description).
func (r Record) Header() string {
	if r.Desc == "" {
		return r.ID
	}
	return r.ID + " " + r.Desc
}

// Read parses every record from r. It is cancelable between records.
func Read(ctx context.Context, r io.Reader) ([]Record, error) {
	sc := seqio.NewScanner(biofasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	var out []Record
	for sc.Next() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		s := sc.Seq().(*linear.Seq)
		out = append(out, Record{
			ID:   s.ID,
			Desc: s.Desc,
			Seq:  bytes.ToUpper(alphabet.LettersToBytes(s.Seq)),
		})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	return out, nil
}

// ReadFile opens path (gzip and "-" aware) and parses all records.
func ReadFile(ctx context.Context, path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	recs, err := Read(ctx, rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Write emits records as FASTA with sequence lines wrapped at 80 bp.
// Only the ID is written to the header line.
func Write(w io.Writer, recs []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		if _, err := fmt.Fprintf(bw, ">%s\n", r.ID); err != nil {
			return err
		}
		for off := 0; off < len(r.Seq); off += 80 {
			end := off + 80
			if end > len(r.Seq) {
				end = len(r.Seq)
			}
			if _, err := bw.Write(r.Seq[off:end]); err != nil {
				return err
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteFile writes records to path, truncating any existing file.
func WriteFile(path string, recs []Record) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(fh, recs); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
