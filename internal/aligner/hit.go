package aligner

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Columns is the tabular contract every engine must satisfy (outfmt 6).
var Columns = []string{
	"qseqid", "sseqid", "pident", "length", "mismatch", "gapopen",
	"qstart", "qend", "sstart", "send", "evalue", "bitscore",
}

// Hit is one tabular alignment record. Coordinates are 1-based; a hit on
// the minus strand of the subject has SStart > SEnd.
type Hit struct {
	QueryID   string
	SubjectID string
	PIdent    float64
	Length    int
	Mismatch  int
	GapOpen   int
	QStart    int
	QEnd      int
	SStart    int
	SEnd      int
	EValue    float64
	BitScore  float64
}

// Strand returns "+" or "-" for the subject orientation of the hit.
func (h Hit) Strand() string {
	if h.SStart > h.SEnd {
		return "-"
	}
	return "+"
}

// SLow and SHigh return the subject span irrespective of strand.
func (h Hit) SLow() int {
	if h.SStart > h.SEnd {
		return h.SEnd
	}
	return h.SStart
}

func (h Hit) SHigh() int {
	if h.SStart > h.SEnd {
		return h.SStart
	}
	return h.SEnd
}

// Format renders h as one outfmt 6 line (no newline).
func (h Hit) Format() string {
	return fmt.Sprintf("%s\t%s\t%.3f\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%.2e\t%.1f",
		h.QueryID, h.SubjectID, h.PIdent, h.Length, h.Mismatch, h.GapOpen,
		h.QStart, h.QEnd, h.SStart, h.SEnd, h.EValue, h.BitScore)
}

// ParseTabular reads outfmt 6 (or 7, comments are skipped) into hits.
func ParseTabular(r io.Reader) ([]Hit, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	var hits []Hit
	ln := 0
	for sc.Scan() {
		ln++
		line := bytes.TrimRight(sc.Bytes(), "\r")
		if len(bytes.TrimSpace(line)) == 0 || line[0] == '#' {
			continue
		}
		h, err := parseHit(strings.Split(string(line), "\t"))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, ln, err)
		}
		hits = append(hits, h)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return hits, nil
}

func parseHit(f []string) (Hit, error) {
	if len(f) != len(Columns) {
		return Hit{}, fmt.Errorf("want %d columns, got %d", len(Columns), len(f))
	}
	var (
		h   Hit
		err error
	)
	h.QueryID = strings.TrimSpace(f[0])
	h.SubjectID = strings.TrimSpace(f[1])
	if h.QueryID == "" || h.SubjectID == "" {
		return Hit{}, fmt.Errorf("empty id")
	}
	ints := []struct {
		dst *int
		col int
	}{
		{&h.Length, 3}, {&h.Mismatch, 4}, {&h.GapOpen, 5},
		{&h.QStart, 6}, {&h.QEnd, 7}, {&h.SStart, 8}, {&h.SEnd, 9},
	}
	for _, c := range ints {
		if *c.dst, err = strconv.Atoi(strings.TrimSpace(f[c.col])); err != nil {
			return Hit{}, fmt.Errorf("%s: %v", Columns[c.col], err)
		}
	}
	floats := []struct {
		dst *float64
		col int
	}{
		{&h.PIdent, 2}, {&h.EValue, 10}, {&h.BitScore, 11},
	}
	for _, c := range floats {
		if *c.dst, err = strconv.ParseFloat(strings.TrimSpace(f[c.col]), 64); err != nil {
			return Hit{}, fmt.Errorf("%s: %v", Columns[c.col], err)
		}
	}
	return h, nil
}
