// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"clumpfind/internal/app"
	"clumpfind/internal/freqapp"
	"clumpfind/internal/skewapp"
	"clumpfind/pkg/api"
)

const ba1eSeq = "CGGACTCGACAGATGTGAAGAACGACAATGTGAAGACTCGACACGACAGAGTGAAGAGAAGAGGAAACATTGTAA"

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func TestClumpfindExactTextRosalind(t *testing.T) {
	fn := write(t, "seq.txt", ba1eSeq+"\n")
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"-s", fn, "-k", "5", "-L", "75", "-t", "4"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}
	if got := out.String(); got != "CGACA GAAGA\n" {
		t.Fatalf("stdout = %q", got)
	}
}

func TestClumpfindExactJSON(t *testing.T) {
	fn := write(t, "seq.txt", ba1eSeq+"\n")
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"-s", fn, "-k", "5", "-L", "75", "-t", "4", "-o", "json"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}
	var got []string
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("bad JSON: %v\n%s", err, out.String())
	}
	if len(got) != 2 || got[0] != "CGACA" || got[1] != "GAAGA" {
		t.Fatalf("decoded %v", got)
	}
}

func TestClumpfindApproxRecordsJSON(t *testing.T) {
	fn := write(t, "seq.fa", ">toy\nAAATTTAAATTT\n")
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"-s", fn, "-k", "3", "-L", "12", "-t", "4",
		"--revcomp", "-o", "json", "--sort"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}
	var got []api.ClumpV1
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("bad JSON: %v\n%s", err, out.String())
	}
	if len(got) != 4 {
		t.Fatalf("want 4 records, got %+v", got)
	}
	if got[0].Pattern != "AAA" || got[0].Pos != 0 || got[0].ExactCount != 2 || got[0].VariantCount != 2 {
		t.Fatalf("first record %+v", got[0])
	}
}

func TestClumpfindClusterCollapses(t *testing.T) {
	fn := write(t, "seq.fa", ">toy\nAAATTTAAATTT\n")
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"-s", fn, "-k", "3", "-L", "12", "-t", "4",
		"--revcomp", "--cluster-distance", "1", "--no-header"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	// AAT folds into AAA and TTT into ATT.
	want := []string{"AAA\t0\t2\t2", "ATT\t1\t2\t2"}
	if len(lines) != len(want) || lines[0] != want[0] || lines[1] != want[1] {
		t.Fatalf("clustered rows:\n%s", out.String())
	}
}

func TestClumpfindShortSequenceWarnsAndSucceeds(t *testing.T) {
	fn := write(t, "seq.txt", "ACGT\n")
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"-s", fn, "-k", "3", "-L", "10", "-t", "2", "-d", "1"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}
	if !strings.Contains(errBuf.String(), "shorter than the window") {
		t.Fatalf("missing warning, stderr: %q", errBuf.String())
	}
}

func TestClumpfindDenseCeilingHint(t *testing.T) {
	fn := write(t, "seq.txt", strings.Repeat("ACGT", 20)+"\n")
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"-s", fn, "-k", "13", "-L", "40", "-t", "1"}, &out, &errBuf)
	if code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if !strings.Contains(errBuf.String(), "--sparse") {
		t.Fatalf("missing sparse hint: %q", errBuf.String())
	}

	out.Reset()
	errBuf.Reset()
	code = app.Run([]string{"-s", fn, "-k", "13", "-L", "40", "-t", "1", "--sparse"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("sparse rerun exit %d, stderr: %s", code, errBuf.String())
	}
	if len(strings.Fields(out.String())) == 0 {
		t.Fatalf("sparse rerun found nothing")
	}
}

func TestClumpfindUsageErrors(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := app.Run([]string{"-k", "5"}, &out, &errBuf); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	out.Reset()
	errBuf.Reset()
	if code := app.Run(nil, &out, &errBuf); code != 0 {
		t.Fatalf("bare invocation should print usage and exit 0")
	}
	if !strings.Contains(out.String(), "clumpfind") {
		t.Fatalf("usage missing: %q", out.String())
	}
}

func TestClumpfindVersion(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := app.Run([]string{"--version"}, &out, &errBuf); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.HasPrefix(out.String(), "clumpfind version ") {
		t.Fatalf("version line = %q", out.String())
	}
}

func TestGCSkewMinima(t *testing.T) {
	fn := write(t, "seq.txt", "CATGGGCATCGGCCATACGCC\n")
	var out, errBuf bytes.Buffer
	code := skewapp.Run([]string{"-s", fn, "-q"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}
	if out.String() != "21\n" {
		t.Fatalf("stdout = %q", out.String())
	}
}

func TestGCSkewCurve(t *testing.T) {
	fn := write(t, "seq.txt", "GGGGGG\n")
	var out, errBuf bytes.Buffer
	code := skewapp.Run([]string{"-s", fn, "--curve", "--step", "2"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}
	if out.String() != "0 2 4 6\n" {
		t.Fatalf("stdout = %q", out.String())
	}
}

func TestFreqwordsMostFrequent(t *testing.T) {
	fn := write(t, "seq.txt", "ACGTTGCATGTCGCATGATGCATGAGAGCT\n")
	var out, errBuf bytes.Buffer
	code := freqapp.Run([]string{"-s", fn, "-k", "4"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}
	if out.String() != "CATG GCAT\n" {
		t.Fatalf("stdout = %q", out.String())
	}
}

func TestFreqwordsRevCompRows(t *testing.T) {
	fn := write(t, "seq.txt", "AAATTTAAATTT\n")
	var out, errBuf bytes.Buffer
	code := freqapp.Run([]string{"-s", fn, "-k", "3", "--revcomp", "--top", "1"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 || lines[0] != "pattern\ttotal\tfwd\trc" {
		t.Fatalf("output:\n%s", out.String())
	}
	if lines[1] != "AAA\t4\t2\t2" {
		t.Fatalf("row = %q", lines[1])
	}
}
