// pkg/api/clumps_v1.go
package api

// ClumpV1 is the stable JSON/JSONL schema for reported clumps.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ClumpV1 struct {
	Pattern      string `json:"pattern"`
	Pos          int    `json:"pos"`
	ExactCount   int    `json:"exact_count"`
	VariantCount int    `json:"variant_count,omitempty"`
}
