// core/freq/freq.go

// Package freq finds the most frequent k-mers of a sequence under a
// mismatch budget, optionally pairing each k-mer with its reverse
// complement and reporting the pair under its lexicographically smaller
// representative.
package freq

import (
	"fmt"
	"sort"

	"clumpfind-core/dna"
)

// Row is one canonical k-mer with its mismatch-tolerant scores.
type Row struct {
	Pattern string // lexicographically smaller of the RC pair
	Total   int
	Fwd     int // score of Pattern on the forward strand
	RC      int // score of Pattern's reverse complement
}

func validate(k, d int) error {
	if k <= 0 || k > dna.MaxK {
		return fmt.Errorf("invalid k=%d", k)
	}
	if d < 0 {
		return fmt.Errorf("invalid d=%d", d)
	}
	return nil
}

// mismatchScores propagates the exact count of every occurring k-mer to
// its whole d-neighborhood: scores[v] is the number of positions whose
// k-mer lies within Hamming distance d of v.
func mismatchScores(s []byte, k, d int) map[string]int {
	exact := make(map[string]int)
	for i := 0; i+k <= len(s); i++ {
		exact[string(s[i:i+k])]++
	}
	scores := make(map[string]int)
	for kmer, c := range exact {
		for _, nb := range dna.Neighbors(kmer, d) {
			scores[nb] += c
		}
	}
	return scores
}

// MostFrequentWithMismatches returns every k-mer achieving the maximum
// mismatch-tolerant occurrence count, sorted lexicographically.
func MostFrequentWithMismatches(seq []byte, k, d int) ([]string, error) {
	if err := validate(k, d); err != nil {
		return nil, err
	}
	s, err := dna.Normalize(seq)
	if err != nil {
		return nil, err
	}
	scores := mismatchScores(s, k, d)
	best := 0
	for _, c := range scores {
		if c > best {
			best = c
		}
	}
	var out []string
	for p, c := range scores {
		if c == best {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out, nil
}

// TopWithMismatchesRC groups reverse-complement pairs under their
// lexicographically smaller member and returns the n highest-scoring
// rows (all rows when n <= 0), ordered by total descending, then
// pattern ascending. Palindromic k-mers count once.
func TopWithMismatchesRC(seq []byte, k, d, n int) ([]Row, error) {
	if err := validate(k, d); err != nil {
		return nil, err
	}
	s, err := dna.Normalize(seq)
	if err != nil {
		return nil, err
	}
	scores := mismatchScores(s, k, d)

	keys := make([]string, 0, len(scores))
	for p := range scores {
		keys = append(keys, p)
	}
	sort.Strings(keys)

	seen := make(map[string]struct{}, len(scores))
	var rows []Row
	for _, p := range keys {
		if _, dup := seen[p]; dup {
			continue
		}
		rc := dna.RevCompString(p)
		fwd, rev := scores[p], scores[rc]
		total := fwd + rev
		if p == rc {
			total = fwd
		}
		r := Row{Pattern: p, Total: total, Fwd: fwd, RC: rev}
		if rc < p {
			// The forward strand is the RC of the canonical form, so
			// the directional scores swap.
			r = Row{Pattern: rc, Total: total, Fwd: rev, RC: fwd}
		}
		rows = append(rows, r)
		seen[p] = struct{}{}
		seen[rc] = struct{}{}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Pattern < rows[j].Pattern
	})
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows, nil
}
