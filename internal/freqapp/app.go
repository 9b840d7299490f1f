// internal/freqapp/app.go
package freqapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"clumpfind-core/fasta"
	"clumpfind-core/freq"
	"clumpfind/internal/freqcli"
	"clumpfind/internal/version"
	"clumpfind/internal/writers"
)

// RunContext executes the freqwords CLI. Without --revcomp it prints
// the space-joined set of most frequent k-mers; with --revcomp it
// prints one TSV row per canonical reverse-complement pair.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := freqcli.NewFlagSet("freqwords")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(outw, stderr, 0)
	}

	opts, err := freqcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushExit(outw, stderr, 0)
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		fmt.Fprintf(outw, "freqwords version %s\n", version.Version)
		return flushExit(outw, stderr, 0)
	}
	if parent.Err() != nil {
		return 130
	}

	rec, err := fasta.ReadOne(opts.SeqFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if !opts.RevComp {
		set, err := freq.MostFrequentWithMismatches(rec.Seq, opts.K, opts.Mismatches)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		fmt.Fprintln(outw, strings.Join(set, " "))
		return flushExit(outw, stderr, 0)
	}

	rows, err := freq.TopWithMismatchesRC(rec.Seq, opts.K, opts.Mismatches, opts.Top)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Header {
		fmt.Fprintln(outw, "pattern\ttotal\tfwd\trc")
	}
	for _, r := range rows {
		fmt.Fprintf(outw, "%s\t%d\t%d\t%d\n", r.Pattern, r.Total, r.Fwd, r.RC)
	}
	return flushExit(outw, stderr, 0)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flushExit(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
