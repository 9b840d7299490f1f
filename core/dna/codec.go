// core/dna/codec.go
package dna

import (
	"errors"
	"fmt"
)

// ErrInvalidSymbol reports a character outside the A/C/G/T alphabet.
var ErrInvalidSymbol = errors.New("invalid nucleotide symbol")

// ErrIndexRange reports a k-mer index outside [0, 4^k).
var ErrIndexRange = errors.New("k-mer index out of range")

// MaxK is the largest k for which a base-4 k-mer index fits a uint64.
const MaxK = 31

var baseVal [256]int8
var valBase = [4]byte{'A', 'C', 'G', 'T'}

func init() {
	for i := range baseVal {
		baseVal[i] = -1
	}
	baseVal['A'], baseVal['a'] = 0, 0
	baseVal['C'], baseVal['c'] = 1, 1
	baseVal['G'], baseVal['g'] = 2, 2
	baseVal['T'], baseVal['t'] = 3, 3
}

// Code returns the 2-bit value of a base (A=0, C=1, G=2, T=3, either
// case), or -1 for anything else. Hot loops that scan pre-normalized
// sequences use this directly and skip the error path.
func Code(b byte) int { return int(baseVal[b]) }

// PatternToNumber encodes a k-mer as its base-4 index: a left fold of
// index = index*4 + code(symbol).
func PatternToNumber(pattern string) (uint64, error) {
	if len(pattern) == 0 || len(pattern) > MaxK {
		return 0, fmt.Errorf("pattern length %d not in [1,%d]", len(pattern), MaxK)
	}
	var idx uint64
	for i := 0; i < len(pattern); i++ {
		v := baseVal[pattern[i]]
		if v < 0 {
			return 0, fmt.Errorf("%w: %q at position %d", ErrInvalidSymbol, pattern[i], i)
		}
		idx = idx*4 + uint64(v)
	}
	return idx, nil
}

// NumberToPattern is the inverse of PatternToNumber: k iterations of
// mod/div by 4, building the pattern right to left.
func NumberToPattern(index uint64, k int) (string, error) {
	if k <= 0 || k > MaxK {
		return "", fmt.Errorf("k=%d not in [1,%d]", k, MaxK)
	}
	if index >= uint64(1)<<(2*uint(k)) {
		return "", fmt.Errorf("%w: %d for k=%d", ErrIndexRange, index, k)
	}
	buf := make([]byte, k)
	for i := k - 1; i >= 0; i-- {
		buf[i] = valBase[index&3]
		index >>= 2
	}
	return string(buf), nil
}

// MaskFor returns 4^(k-1), the modulus that strips the leading symbol's
// contribution when an index rolls one position to the right. For k=1
// the mask is 1 and rolling degenerates to code(newSymbol).
func MaskFor(k int) uint64 { return uint64(1) << (2 * uint(k-1)) }

// RollIndex advances idx from the k-mer at position i to the one at i+1:
// drop the leading symbol, shift left, append sym.
func RollIndex(idx, mask uint64, sym byte) (uint64, error) {
	v := baseVal[sym]
	if v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, sym)
	}
	return (idx%mask)*4 + uint64(v), nil
}
