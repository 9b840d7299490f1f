// core/dna/hamming.go
package dna

// HammingDistance counts mismatched positions between two equal-length
// strings. Panics on unequal lengths: every caller compares same-k
// patterns, so a length mismatch is a bookkeeping bug.
func HammingDistance(a, b string) int {
	if len(a) != len(b) {
		panic("dna: HammingDistance on unequal lengths")
	}
	d := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}
