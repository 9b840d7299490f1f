// core/clump/exact.go
package clump

import (
	"fmt"
	"sort"

	"clumpfind-core/dna"
)

// FindExact reports every k-mer whose exact occurrence count reaches
// cfg.T within at least one window of length cfg.L. Membership is a
// disjunction over all windows: once a pattern qualifies it stays in
// the result even if later windows drop below the threshold.
//
// This is the d=0, no-reverse-complement strategy: counts live in a
// frequency table indexed by the base-4 codec and both window edges
// advance by O(1) rolling-index updates. Use Find for mismatch or
// reverse-complement tolerant scans.
//
// Patterns come back in ascending index order, which for this codec is
// also lexicographic order.
func FindExact(seq []byte, cfg Config) ([]string, error) {
	if err := cfg.validate(1); err != nil {
		return nil, err
	}
	if cfg.D != 0 || cfg.RevComp {
		return nil, fmt.Errorf("%w: exact strategy requires d=0 and no reverse complement", ErrInvalidParams)
	}
	s, err := dna.Normalize(seq)
	if err != nil {
		return nil, err
	}
	if len(s) < cfg.L {
		return nil, nil // window never fits
	}
	if cfg.Sparse {
		return findExactSparse(s, cfg), nil
	}
	if cfg.K > MaxDenseK {
		return nil, fmt.Errorf("%w: 4^%d entries exceeds 4^%d (select the sparse table)",
			ErrTableTooLarge, cfg.K, MaxDenseK)
	}
	return findExactDense(s, cfg), nil
}

func findExactDense(s []byte, cfg Config) []string {
	k, L, t := cfg.K, cfg.L, cfg.T
	n := len(s)
	size := uint64(1) << (2 * uint(k))
	mask := dna.MaskFor(k)

	freq := make([]int32, size)
	marked := make([]bool, size)

	// First window: roll across [0, L-k] once.
	start := encode(s[:k]) // k-mer at the left edge
	end := start           // k-mer at the right edge
	freq[start]++
	for i := 1; i+k <= L; i++ {
		end = roll(end, mask, s[i+k-1])
		freq[end]++
	}
	for i := uint64(0); i < size; i++ {
		if freq[i] >= int32(t) {
			marked[i] = true
		}
	}

	total := n - L + 1
	if cfg.Progress != nil {
		cfg.Progress(1, total)
	}

	// Slide: remove the k-mer leaving on the left, add the one entering
	// on the right. Both indices advance by the rolling identity.
	for i := 1; i+L <= n; i++ {
		freq[start]--
		start = roll(start, mask, s[i+k-1])
		end = roll(end, mask, s[i+L-1])
		freq[end]++
		if freq[end] >= int32(t) {
			marked[end] = true
		}
		if cfg.Progress != nil {
			cfg.Progress(i+1, total)
		}
	}

	var out []string
	for i := uint64(0); i < size; i++ {
		if marked[i] {
			p, _ := dna.NumberToPattern(i, k)
			out = append(out, p)
		}
	}
	return out
}

// findExactSparse is the map-backed twin of findExactDense for k beyond
// the dense ceiling. Same semantics, worse constant factors.
func findExactSparse(s []byte, cfg Config) []string {
	k, L, t := cfg.K, cfg.L, cfg.T
	n := len(s)
	mask := dna.MaskFor(k)

	freq := make(map[uint64]int32)
	marked := make(map[uint64]struct{})

	start := encode(s[:k])
	end := start
	freq[start]++
	for i := 1; i+k <= L; i++ {
		end = roll(end, mask, s[i+k-1])
		freq[end]++
	}
	for idx, c := range freq {
		if c >= int32(t) {
			marked[idx] = struct{}{}
		}
	}

	total := n - L + 1
	if cfg.Progress != nil {
		cfg.Progress(1, total)
	}

	for i := 1; i+L <= n; i++ {
		freq[start]--
		start = roll(start, mask, s[i+k-1])
		end = roll(end, mask, s[i+L-1])
		freq[end]++
		if freq[end] >= int32(t) {
			marked[end] = struct{}{}
		}
		if cfg.Progress != nil {
			cfg.Progress(i+1, total)
		}
	}

	idxs := make([]uint64, 0, len(marked))
	for idx := range marked {
		idxs = append(idxs, idx)
	}
	sort.Slice(idxs, func(i, j int) bool { return idxs[i] < idxs[j] })
	out := make([]string, len(idxs))
	for i, idx := range idxs {
		out[i], _ = dna.NumberToPattern(idx, k)
	}
	return out
}
