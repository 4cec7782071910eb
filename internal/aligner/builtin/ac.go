package builtin

// ------------------------ Aho–Corasick (AC) -------------------------------

type acNode struct {
	next [4]int // -1 means no edge; indices into nodes slice
	fail int
	out  []int // seed indices ending here
}

func baseIdx(b byte) int {
	switch b {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	default:
		return -1
	}
}

func isACGT(b byte) bool { return baseIdx(b) >= 0 }

func isUnambig(p []byte) bool {
	for _, c := range p {
		if !isACGT(c) {
			return false
		}
	}
	return true
}

// buildAC builds the goto/fail automaton over all seed patterns.
// Patterns must be A/C/G/T only.
func buildAC(seeds []seed) []acNode {
	nodes := make([]acNode, 1)
	for i := range nodes[0].next {
		nodes[0].next[i] = -1
	}

	// goto function
	for si, s := range seeds {
		state := 0
		for _, b := range s.pat {
			ix := baseIdx(b)
			if nodes[state].next[ix] == -1 {
				nodes[state].next[ix] = len(nodes)
				var nn acNode
				for k := range nn.next {
					nn.next[k] = -1
				}
				nodes = append(nodes, nn)
			}
			state = nodes[state].next[ix]
		}
		nodes[state].out = append(nodes[state].out, si)
	}

	// failure links (BFS)
	queue := make([]int, 0, len(nodes))
	for ch := 0; ch < 4; ch++ {
		nx := nodes[0].next[ch]
		if nx != -1 {
			nodes[nx].fail = 0
			queue = append(queue, nx)
		} else {
			nodes[0].next[ch] = 0
		}
	}
	for qh := 0; qh < len(queue); qh++ {
		r := queue[qh]
		for ch := 0; ch < 4; ch++ {
			s := nodes[r].next[ch]
			if s != -1 {
				queue = append(queue, s)
				f := nodes[r].fail
				nodes[s].fail = nodes[f].next[ch]
				nodes[s].out = append(nodes[s].out, nodes[nodes[s].fail].out...)
			} else {
				nodes[r].next[ch] = nodes[nodes[r].fail].next[ch]
			}
		}
	}
	return nodes
}

type seedHit struct {
	seedIdx int
	pos     int // start position of the seed match in seq
}

// scanAC returns all seed matches (start coordinates). Ambiguous bases reset
// the automaton, so seeds never match across an N.
func scanAC(seq []byte, nodes []acNode, seeds []seed, emit func(seedHit)) {
	state := 0
	for i := 0; i < len(seq); i++ {
		ix := baseIdx(seq[i])
		if ix < 0 {
			state = 0
			continue
		}
		state = nodes[state].next[ix]
		for _, si := range nodes[state].out {
			emit(seedHit{seedIdx: si, pos: i - (len(seeds[si].pat) - 1)})
		}
	}
}
