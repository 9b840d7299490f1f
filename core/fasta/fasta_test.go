// core/fasta/fasta_test.go
package fasta

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func TestReadFASTA(t *testing.T) {
	in := ">chr1 some description\nACGT\nACGT\n\n>chr2\nTTTT\n"
	records, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ID != "chr1" || string(records[0].Seq) != "ACGTACGT" {
		t.Errorf("record 0 = %q %q", records[0].ID, records[0].Seq)
	}
	if records[1].ID != "chr2" || string(records[1].Seq) != "TTTT" {
		t.Errorf("record 1 = %q %q", records[1].ID, records[1].Seq)
	}
}

func TestReadHeaderless(t *testing.T) {
	// Rosalind-style dataset: sequence line, then a parameter line that
	// must not be concatenated into the sequence.
	records, err := Read(strings.NewReader("ACGTACGT\n5 75 4\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || string(records[0].Seq) != "ACGTACGT" {
		t.Fatalf("headerless read = %+v", records)
	}
}

func TestReadOnePlain(t *testing.T) {
	fn := writeTemp(t, "seq.txt", "ACGTACGTACGT\n")
	rec, err := ReadOne(fn)
	if err != nil {
		t.Fatal(err)
	}
	if string(rec.Seq) != "ACGTACGTACGT" {
		t.Fatalf("seq = %q", rec.Seq)
	}
}

func TestReadOneFirstRecordWins(t *testing.T) {
	fn := writeTemp(t, "multi.fa", ">a\nAAAA\n>b\nCCCC\n")
	rec, err := ReadOne(fn)
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID != "a" || string(rec.Seq) != "AAAA" {
		t.Fatalf("rec = %+v", rec)
	}
}

func TestReadOneGzip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "seq.fa.gz")
	fh, err := os.Create(fn)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(">gz\nACGTTT\n")); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fh.Close(); err != nil {
		t.Fatal(err)
	}

	rec, err := ReadOne(fn)
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID != "gz" || string(rec.Seq) != "ACGTTT" {
		t.Fatalf("rec = %+v", rec)
	}
}

func TestReadOneEmpty(t *testing.T) {
	fn := writeTemp(t, "empty.txt", "\n\n")
	if _, err := ReadOne(fn); err == nil {
		t.Fatalf("expected error on empty input")
	}
}

func TestReadOneMissingFile(t *testing.T) {
	if _, err := ReadOne(filepath.Join(t.TempDir(), "nope.fa")); err == nil {
		t.Fatalf("expected error on missing file")
	}
}
