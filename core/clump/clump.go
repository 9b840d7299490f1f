// core/clump/clump.go
package clump

import (
	"errors"
	"fmt"

	"clumpfind-core/dna"
)

// Record describes one pattern that formed a (k,L,t)-clump.
type Record struct {
	Pattern string
	// Pos is the first qualifying window position: the earliest start
	// position still live inside the window when the threshold was
	// crossed, not the position that triggered the crossing.
	Pos     int
	Exact   int // exact-match contributions at detection time
	Variant int // mismatch/revcomp-only contributions at detection time
}

var (
	// ErrInvalidParams rejects a parameter set before any scan begins.
	ErrInvalidParams = errors.New("invalid clump parameters")
	// ErrTableTooLarge means the dense 4^k frequency table exceeds the
	// ceiling; the caller recovers by selecting the sparse strategy.
	ErrTableTooLarge = errors.New("dense frequency table too large")
)

// MaxDenseK caps the dense exact-counter table at 4^12 entries (64 MiB
// of int32). Above that, callers must opt into the sparse table.
const MaxDenseK = 12

// Config carries the parameters of one clump-finding invocation.
type Config struct {
	K int // k-mer length
	L int // window length
	T int // occurrence threshold within a window
	D int // max mismatches per counted occurrence

	RevComp bool // count a k-mer's reverse complement as equivalent
	Sparse  bool // exact strategy: use a map instead of the dense table

	// Progress, when non-nil, is called after each processed window
	// position with (done, total). It must not retain state across
	// calls that the scan depends on.
	Progress func(done, total int)
}

// minT is 1 for the exact strategy; the approximate detector accepts
// the degenerate t=0 (every touched variant qualifies at first sight).
func (c Config) validate(minT int) error {
	switch {
	case c.K <= 0 || c.K > dna.MaxK:
		return fmt.Errorf("%w: k=%d not in [1,%d]", ErrInvalidParams, c.K, dna.MaxK)
	case c.L < c.K:
		return fmt.Errorf("%w: window L=%d smaller than k=%d", ErrInvalidParams, c.L, c.K)
	case c.T < minT:
		return fmt.Errorf("%w: threshold t=%d below %d", ErrInvalidParams, c.T, minT)
	case c.D < 0:
		return fmt.Errorf("%w: mismatches d=%d", ErrInvalidParams, c.D)
	}
	return nil
}

// encode computes the base-4 index of a normalized k-mer slice.
func encode(s []byte) uint64 {
	var idx uint64
	for _, b := range s {
		idx = idx*4 + uint64(dna.Code(b))
	}
	return idx
}

// roll advances a normalized k-mer index by one position.
func roll(idx, mask uint64, b byte) uint64 {
	return (idx%mask)*4 + uint64(dna.Code(b))
}
