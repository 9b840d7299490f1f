// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"
	"strings"

	"clumpfind-core/clump"
)

// Header is the TSV header line for clump records (no trailing newline).
const Header = "pattern\tpos\texact\tvariant"

// FormatRowTSV returns the 4 base columns (no trailing newline).
func FormatRowTSV(r clump.Record) string {
	return fmt.Sprintf("%s\t%d\t%d\t%d", r.Pattern, r.Pos, r.Exact, r.Variant)
}

// IntsFields returns the space-joined decimal rendering of a.
func IntsFields(a []int) string {
	if len(a) == 0 {
		return ""
	}
	ss := make([]string, len(a))
	for i, v := range a {
		ss[i] = strconv.Itoa(v)
	}
	return strings.Join(ss, " ")
}
