// internal/output/json.go
package output

import (
	"io"

	"clumpfind-core/clump"
	"clumpfind/internal/jsonutil"
	"clumpfind/pkg/api"
)

// ToAPIClump converts a domain record to the stable wire schema (v1).
func ToAPIClump(r clump.Record) api.ClumpV1 {
	return api.ClumpV1{
		Pattern:      r.Pattern,
		Pos:          r.Pos,
		ExactCount:   r.Exact,
		VariantCount: r.Variant,
	}
}

func toAPIClumps(list []clump.Record) []api.ClumpV1 {
	out := make([]api.ClumpV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIClump(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 clumps (pretty-indented).
func WriteJSON(w io.Writer, list []clump.Record) error {
	return jsonutil.EncodePretty(w, toAPIClumps(list))
}

// WritePatternsJSON writes an exact clump set as a JSON string array.
func WritePatternsJSON(w io.Writer, patterns []string) error {
	if patterns == nil {
		patterns = []string{}
	}
	return jsonutil.EncodePretty(w, patterns)
}
