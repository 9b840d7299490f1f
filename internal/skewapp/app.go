// internal/skewapp/app.go
package skewapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"clumpfind-core/fasta"
	"clumpfind-core/skew"
	"clumpfind/internal/output"
	"clumpfind/internal/skewcli"
	"clumpfind/internal/version"
	"clumpfind/internal/writers"
)

// RunContext executes the gcskew CLI. Default output is the space-joined
// list of minimum-skew positions; --curve prints the sampled skew values.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := skewcli.NewFlagSet("gcskew")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(outw, stderr, 0)
	}

	opts, err := skewcli.ParseArgs(fs, argv)
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
		fmt.Fprintf(outw, "gcskew version %s\n", version.Version)
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

	if opts.Curve {
		fmt.Fprintln(outw, output.IntsFields(skew.List(rec.Seq, opts.Step)))
		return flushExit(outw, stderr, 0)
	}

	positions, minVal := skew.Min(rec.Seq)
	if !opts.Quiet {
		fmt.Fprintf(stderr, "minimum skew value: %d\n", minVal)
	}
	fmt.Fprintln(outw, output.IntsFields(positions))
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
