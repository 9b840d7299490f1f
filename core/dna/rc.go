// core/dna/rc.go
package dna

var complement [256]byte

func init() {
	complement['A'], complement['a'] = 'T', 'T'
	complement['T'], complement['t'] = 'A', 'A'
	complement['C'], complement['c'] = 'G', 'G'
	complement['G'], complement['g'] = 'C', 'C'
}

// RevComp returns the reverse complement of seq: read backwards with
// A<->T and C<->G swapped. Symbols outside the alphabet come out as 'N'.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}

// RevCompString is the string convenience wrapper around RevComp.
func RevCompString(s string) string { return string(RevComp([]byte(s))) }
