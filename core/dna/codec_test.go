// core/dna/codec_test.go
package dna

import (
	"errors"
	"math/rand"
	"testing"
)

func TestPatternToNumberKnown(t *testing.T) {
	tests := []struct {
		pattern string
		want    uint64
	}{
		{"A", 0},
		{"C", 1},
		{"G", 2},
		{"T", 3},
		{"AA", 0},
		{"AT", 3},
		{"CA", 4},
		{"AGT", 11},
		{"agt", 11}, // case-insensitive
		{"TTTT", 255},
	}
	for _, tc := range tests {
		got, err := PatternToNumber(tc.pattern)
		if err != nil {
			t.Fatalf("PatternToNumber(%q): %v", tc.pattern, err)
		}
		if got != tc.want {
			t.Errorf("PatternToNumber(%q) = %d, want %d", tc.pattern, got, tc.want)
		}
	}
}

func TestCodecRoundTripAllIndices(t *testing.T) {
	for k := 1; k <= 10; k++ {
		size := uint64(1) << (2 * uint(k))
		for i := uint64(0); i < size; i++ {
			p, err := NumberToPattern(i, k)
			if err != nil {
				t.Fatalf("NumberToPattern(%d,%d): %v", i, k, err)
			}
			back, err := PatternToNumber(p)
			if err != nil {
				t.Fatalf("PatternToNumber(%q): %v", p, err)
			}
			if back != i {
				t.Fatalf("k=%d: encode(decode(%d)) = %d", k, i, back)
			}
		}
	}
}

func TestCodecRoundTripRandomPatterns(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for k := 1; k <= 20; k++ {
		for rep := 0; rep < 50; rep++ {
			buf := make([]byte, k)
			for i := range buf {
				buf[i] = valBase[rng.Intn(4)]
			}
			p := string(buf)
			idx, err := PatternToNumber(p)
			if err != nil {
				t.Fatalf("encode %q: %v", p, err)
			}
			back, err := NumberToPattern(idx, k)
			if err != nil {
				t.Fatalf("decode %d: %v", idx, err)
			}
			if back != p {
				t.Fatalf("decode(encode(%q)) = %q", p, back)
			}
		}
	}
}

func TestPatternToNumberInvalidSymbol(t *testing.T) {
	for _, p := range []string{"ACGN", "AC-T", "acgu"} {
		if _, err := PatternToNumber(p); !errors.Is(err, ErrInvalidSymbol) {
			t.Errorf("PatternToNumber(%q) err = %v, want ErrInvalidSymbol", p, err)
		}
	}
}

func TestNumberToPatternRange(t *testing.T) {
	if _, err := NumberToPattern(256, 4); !errors.Is(err, ErrIndexRange) {
		t.Errorf("index 256 with k=4 err = %v, want ErrIndexRange", err)
	}
	if p, err := NumberToPattern(255, 4); err != nil || p != "TTTT" {
		t.Errorf("NumberToPattern(255,4) = %q, %v", p, err)
	}
	if _, err := NumberToPattern(0, 0); err == nil {
		t.Errorf("k=0 accepted")
	}
}

// The rolling update must agree with a full re-encode at every position.
func TestRollIndexMatchesFullEncode(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	seq := make([]byte, 300)
	for i := range seq {
		seq[i] = valBase[rng.Intn(4)]
	}
	for k := 1; k <= 8; k++ {
		mask := MaskFor(k)
		idx, err := PatternToNumber(string(seq[:k]))
		if err != nil {
			t.Fatal(err)
		}
		for i := 1; i+k <= len(seq); i++ {
			idx, err = RollIndex(idx, mask, seq[i+k-1])
			if err != nil {
				t.Fatal(err)
			}
			want, err := PatternToNumber(string(seq[i : i+k]))
			if err != nil {
				t.Fatal(err)
			}
			if idx != want {
				t.Fatalf("k=%d pos=%d: rolled %d, re-encoded %d", k, i, idx, want)
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	got, err := Normalize([]byte("acgtACGT"))
	if err != nil || string(got) != "ACGTACGT" {
		t.Fatalf("Normalize = %q, %v", got, err)
	}
	if _, err := Normalize([]byte("ACGTN")); !errors.Is(err, ErrInvalidSymbol) {
		t.Fatalf("want ErrInvalidSymbol, got %v", err)
	}
}
