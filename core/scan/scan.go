// core/scan/scan.go

// Package scan holds the single-pass pattern counters: exact and
// mismatch-tolerant occurrence scans over one sequence.
package scan

import "bytes"

// Occurrences returns every start position at which pattern occurs
// exactly in seq, overlaps included.
func Occurrences(seq, pattern []byte) []int {
	k := len(pattern)
	if k == 0 || len(seq) < k {
		return nil
	}
	var out []int
	for i := 0; ; {
		j := bytes.Index(seq[i:], pattern)
		if j < 0 {
			break
		}
		pos := i + j
		out = append(out, pos)
		i = pos + 1
	}
	return out
}

// PatternCount counts overlapping exact occurrences of pattern in seq.
func PatternCount(seq, pattern []byte) int {
	return len(Occurrences(seq, pattern))
}

// ApproxOccurrences returns every start position whose window is within
// Hamming distance d of pattern.
func ApproxOccurrences(seq, pattern []byte, d int) []int {
	k := len(pattern)
	if k == 0 || len(seq) < k || d < 0 {
		return nil
	}
	var out []int
window:
	for i := 0; i+k <= len(seq); i++ {
		mm := 0
		for j := 0; j < k; j++ {
			if seq[i+j] != pattern[j] {
				mm++
				if mm > d {
					continue window
				}
			}
		}
		out = append(out, i)
	}
	return out
}
