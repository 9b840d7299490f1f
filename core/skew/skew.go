// core/skew/skew.go
package skew

// List returns the cumulative G-C skew sampled every step symbols.
// Position 0 is always 0; entry i reflects the skew after base i*step.
// Symbols other than G/C contribute nothing, so the function tolerates
// un-normalized input. step < 1 is treated as 1 (full resolution).
func List(seq []byte, step int) []int {
	if step < 1 {
		step = 1
	}
	curr := 0
	out := make([]int, 1, len(seq)/step+1)
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'g':
			curr++
		case 'C', 'c':
			curr--
		}
		if (i+1)%step == 0 {
			out = append(out, curr)
		}
	}
	return out
}

// Min returns every position in [0, len(seq)] where the running skew
// attains its global minimum, along with that minimum. Position 0 is a
// candidate because the sequence may start at the minimum.
func Min(seq []byte) ([]int, int) {
	curr, minVal := 0, 0
	positions := []int{0}
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'g':
			curr++
		case 'C', 'c':
			curr--
		}
		switch {
		case curr < minVal:
			minVal = curr
			positions = append(positions[:0], i+1)
		case curr == minVal:
			positions = append(positions, i+1)
		}
	}
	return positions, minVal
}
