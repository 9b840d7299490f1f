// core/clump/approx.go
package clump

import (
	"sort"

	"clumpfind-core/dna"
)

type posFlag struct {
	pos   int
	exact bool
}

// variantEntry tracks one reported variant pattern inside the current
// window: a FIFO of live contributions plus running counters.
// Invariant: len(q) == exact+variant at every step.
type variantEntry struct {
	q       []posFlag
	exact   int
	variant int
}

// detector is the per-invocation state of the approximate scan. All of
// it is discarded when Find returns; the neighborhood cache in
// particular never survives across calls.
type detector struct {
	cfg      Config
	variants map[string][]string // k-mer -> memoized variant set
	table    map[string]*variantEntry
	records  map[string]Record // first-detection-wins
}

// getVariants returns the d-neighborhood of kmer, unioned with the
// d-neighborhood of its reverse complement in RevComp mode. The two
// neighborhoods can overlap, so the union is deduplicated; otherwise
// an overlapping variant would be counted twice per occurrence.
func (d *detector) getVariants(kmer string) []string {
	if v, ok := d.variants[kmer]; ok {
		return v
	}
	v := dna.Neighbors(kmer, d.cfg.D)
	if d.cfg.RevComp {
		seen := make(map[string]struct{}, 2*len(v))
		for _, s := range v {
			seen[s] = struct{}{}
		}
		for _, s := range dna.Neighbors(dna.RevCompString(kmer), d.cfg.D) {
			if _, dup := seen[s]; !dup {
				seen[s] = struct{}{}
				v = append(v, s)
			}
		}
	}
	d.variants[kmer] = v
	return v
}

// add fans the k-mer occurrence at pos out to all its variants. A
// variant crossing the threshold for the first time is recorded with
// the front of its queue as the first qualifying position.
func (d *detector) add(kmer string, pos int) {
	for _, variant := range d.getVariants(kmer) {
		e := d.table[variant]
		if e == nil {
			e = &variantEntry{}
			d.table[variant] = e
		}
		exact := variant == kmer
		e.q = append(e.q, posFlag{pos: pos, exact: exact})
		if exact {
			e.exact++
		} else {
			e.variant++
		}
		if e.exact+e.variant >= d.cfg.T {
			if _, done := d.records[variant]; !done {
				d.records[variant] = Record{
					Pattern: variant,
					Pos:     e.q[0].pos,
					Exact:   e.exact,
					Variant: e.variant,
				}
			}
		}
	}
}

// remove pops the oldest live contribution of every variant of the
// k-mer leaving the window. Removal order mirrors window slide order,
// so popping anything but the front is a bookkeeping bug.
func (d *detector) remove(kmer string) {
	for _, variant := range d.getVariants(kmer) {
		e := d.table[variant]
		if e == nil || len(e.q) == 0 {
			panic("clump: variant queue underflow")
		}
		head := e.q[0]
		e.q = e.q[1:]
		if head.exact {
			e.exact--
		} else {
			e.variant--
		}
	}
}

// Find locates every pattern forming a (K,L,T)-clump in seq, counting
// occurrences within Hamming distance D and, in RevComp mode, matches
// of the reverse complement. Each reported variant is recorded at most
// once, at its first threshold crossing; later growth or decay of its
// count does not alter or remove the record.
//
// A sequence shorter than L yields an empty result, not an error.
// Records come back ordered by first qualifying position, then pattern.
func Find(seq []byte, cfg Config) ([]Record, error) {
	if err := cfg.validate(0); err != nil {
		return nil, err
	}
	s, err := dna.Normalize(seq)
	if err != nil {
		return nil, err
	}
	n := len(s)
	if n < cfg.L {
		return nil, nil
	}

	det := &detector{
		cfg:      cfg,
		variants: make(map[string][]string),
		table:    make(map[string]*variantEntry),
		records:  make(map[string]Record),
	}

	k, L := cfg.K, cfg.L
	for i := 0; i+k <= L; i++ {
		det.add(string(s[i:i+k]), i)
	}
	total := n - L + 1
	if cfg.Progress != nil {
		cfg.Progress(1, total)
	}

	// Remove before add on every step, even when the same k-mer enters
	// and leaves at once: the FIFO is keyed by position, not content.
	for i := 1; i+L <= n; i++ {
		det.remove(string(s[i-1 : i-1+k]))
		in := i + L - k
		det.add(string(s[in:in+k]), in)
		if cfg.Progress != nil {
			cfg.Progress(i+1, total)
		}
	}

	out := make([]Record, 0, len(det.records))
	for _, r := range det.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pos != out[j].Pos {
			return out[i].Pos < out[j].Pos
		}
		return out[i].Pattern < out[j].Pattern
	})
	return out, nil
}
