// core/clump/cluster.go
package clump

import (
	"sort"

	"clumpfind-core/dna"
)

// Cluster collapses near-duplicate clump records: repeatedly pick the
// remaining record with the highest exact count (ties broken by highest
// exact+variant total, then pattern), emit it as the representative,
// and drop every remaining record within Hamming distance d of it.
// Output is ordered by first qualifying position, then pattern.
//
// Hamming-distance-<=d is not transitive, so this greedy pass is a
// documented approximation: it neither minimizes the number of clusters
// nor partitions independently of the stated selection order.
func Cluster(records []Record, d int) []Record {
	remaining := append([]Record(nil), records...)
	out := make([]Record, 0, len(remaining))
	for len(remaining) > 0 {
		sort.SliceStable(remaining, func(i, j int) bool {
			a, b := remaining[i], remaining[j]
			if a.Exact != b.Exact {
				return a.Exact > b.Exact
			}
			at, bt := a.Exact+a.Variant, b.Exact+b.Variant
			if at != bt {
				return at > bt
			}
			return a.Pattern < b.Pattern
		})
		best := remaining[0]
		out = append(out, best)
		keep := remaining[:0]
		for _, r := range remaining[1:] {
			if dna.HammingDistance(r.Pattern, best.Pattern) > d {
				keep = append(keep, r)
			}
		}
		remaining = keep
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pos != out[j].Pos {
			return out[i].Pos < out[j].Pos
		}
		return out[i].Pattern < out[j].Pattern
	})
	return out
}
