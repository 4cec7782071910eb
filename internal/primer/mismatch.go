// internal/primer/mismatch.go
package primer

// MismatchCount counts positions of p not matched by g over the shorter
// of the two lengths.
func MismatchCount(g, p []byte) int {
	n := len(p)
	if len(g) < n {
		n = len(g)
	}
	mm := 0
	for i := 0; i < n; i++ {
		if !BaseMatch(g[i], p[i]) {
			mm++
		}
	}
	return mm
}
