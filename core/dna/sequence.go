// core/dna/sequence.go
package dna

import "fmt"

var normTab [256]byte

func init() {
	normTab['A'], normTab['a'] = 'A', 'A'
	normTab['C'], normTab['c'] = 'C', 'C'
	normTab['G'], normTab['g'] = 'G', 'G'
	normTab['T'], normTab['t'] = 'T', 'T'
}

// Normalize upper-cases seq and verifies every symbol is A/C/G/T.
// The input slice is not modified.
func Normalize(seq []byte) ([]byte, error) {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		c := normTab[seq[i]]
		if c == 0 {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidSymbol, seq[i], i)
		}
		out[i] = c
	}
	return out, nil
}
