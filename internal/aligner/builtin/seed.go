package builtin

// seed is an exact window of an oriented query (the query itself, or its
// reverse complement for minus-strand search).
type seed struct {
	query int
	minus bool
	pat   []byte
	qoff  int // offset of pat within the oriented query
}

// primerSeeds splits an oriented primer into maxMM+1 disjoint windows: any
// placement with at most maxMM mismatches leaves one window exact.
func primerSeeds(query int, minus bool, oq []byte, maxMM int) []seed {
	parts := maxMM + 1
	if parts < 1 {
		parts = 1
	}
	if parts > len(oq) {
		parts = len(oq)
	}
	if parts == 0 {
		return nil
	}
	sl := len(oq) / parts
	out := make([]seed, 0, parts)
	for i := 0; i < parts; i++ {
		w := oq[i*sl : (i+1)*sl]
		if !isUnambig(w) {
			continue
		}
		out = append(out, seed{query: query, minus: minus, pat: w, qoff: i * sl})
	}
	return out
}

// regionSeeds tiles an oriented query with non-overlapping windows of n bp.
func regionSeeds(query int, minus bool, oq []byte, n int) []seed {
	if len(oq) < n {
		n = len(oq)
	}
	if n == 0 {
		return nil
	}
	var out []seed
	for off := 0; off+n <= len(oq); off += n {
		w := oq[off : off+n]
		if !isUnambig(w) {
			continue
		}
		out = append(out, seed{query: query, minus: minus, pat: w, qoff: off})
	}
	return out
}
