// internal/engine/overlap.go
package engine

import "strings"

// AnnotateOverlaps appends "overlaps with A, B" to every valid row whose
// span intersects another valid row on the same contig and strand. Spans are
// inclusive; rows stay valid.
func AnnotateOverlaps(t Table) {
	type key struct{ contig, strand string }
	groups := make(map[key][]int)
	for i, r := range t {
		if r.Valid && r.Anchored {
			k := key{r.Contig, r.Strand}
			groups[k] = append(groups[k], i)
		}
	}
	notes := make(map[int][]string)
	for _, idx := range groups {
		for a := 0; a < len(idx); a++ {
			for b := 0; b < len(idx); b++ {
				if a == b {
					continue
				}
				x, y := t[idx[a]], t[idx[b]]
				if x.Start <= y.End && y.Start <= x.End {
					notes[idx[a]] = append(notes[idx[a]], y.Name)
				}
			}
		}
	}
	for i, names := range notes {
		msg := "overlaps with " + strings.Join(names, ", ")
		if t[i].Message != "" {
			msg = t[i].Message + "; " + msg
		}
		t[i].Message = msg
	}
}
