// internal/common/sort.go
package common

import (
	"sort"

	"clumpfind-core/clump"
)

// SortRecords orders clump records deterministically for output:
// first qualifying position ascending, then pattern.
func SortRecords(list []clump.Record) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Pos != list[j].Pos {
			return list[i].Pos < list[j].Pos
		}
		return list[i].Pattern < list[j].Pattern
	})
}
