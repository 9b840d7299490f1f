// core/fasta/fasta.go

// Package fasta reads DNA sequences from FASTA files, plain text files,
// or stdin, with transparent gzip decompression.
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one parsed sequence.
type Record struct {
	ID  string
	Seq []byte
}

// multiReadCloser closes every wrapped closer when Close is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path. "-" means stdin. Gzip input is
// detected by the 1F 8B magic bytes or a .gz suffix.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// Read parses every record in r. Input whose first non-blank line does
// not start with '>' is treated as headerless: a single anonymous
// sequence taken from that first line (Rosalind-style datasets carry
// parameters on later lines, which are ignored here).
func Read(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	// Genome-scale sequences arrive as single multi-megabyte lines.
	sc.Buffer(make([]byte, 1<<20), 1<<28)

	var records []Record
	var cur *Record
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			records = append(records, Record{ID: firstField(line[1:])})
			cur = &records[len(records)-1]
			continue
		}
		if cur == nil {
			// Headerless input: first line is the whole sequence.
			return []Record{{ID: "seq", Seq: append([]byte(nil), line...)}}, sc.Err()
		}
		cur.Seq = append(cur.Seq, line...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// ReadOne returns the single sequence in path: the first FASTA record,
// or the first non-blank line of headerless input.
func ReadOne(path string) (Record, error) {
	rc, err := Open(path)
	if err != nil {
		return Record{}, err
	}
	defer func() { _ = rc.Close() }()

	records, err := Read(rc)
	if err != nil {
		return Record{}, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return Record{}, fmt.Errorf("read %s: no sequence found", path)
	}
	return records[0], nil
}

func firstField(b []byte) string {
	if i := bytes.IndexAny(b, " \t"); i >= 0 {
		b = b[:i]
	}
	return string(bytes.TrimSpace(b))
}
