// core/dna/neighbors.go
package dna

var bases = [4]byte{'A', 'C', 'G', 'T'}

type partial struct {
	buf    []byte
	budget int
}

// Neighbors returns every string of the same length within Hamming
// distance d of pattern, pattern itself included. Generation is an
// iterative frontier walk over positions: keep the original symbol, or
// substitute one of the 3 others while budget remains. Branches are
// pairwise distinct by construction, so no dedup set is needed; the
// result size is exactly sum_{i=0..d} C(k,i)*3^i.
func Neighbors(pattern string, d int) []string {
	if d < 0 {
		return nil
	}
	k := len(pattern)
	frontier := []partial{{buf: make([]byte, 0, k), budget: d}}
	for i := 0; i < k; i++ {
		orig := pattern[i]
		next := make([]partial, 0, len(frontier)*2)
		for _, p := range frontier {
			keep := make([]byte, len(p.buf), k)
			copy(keep, p.buf)
			next = append(next, partial{append(keep, orig), p.budget})
			if p.budget == 0 {
				continue
			}
			for _, b := range bases {
				if b == orig {
					continue
				}
				sub := make([]byte, len(p.buf), k)
				copy(sub, p.buf)
				next = append(next, partial{append(sub, b), p.budget - 1})
			}
		}
		frontier = next
	}
	out := make([]string, len(frontier))
	for i, p := range frontier {
		out[i] = string(p.buf)
	}
	return out
}
