// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/cheggaaa/pb/v3"

	"clumpfind-core/clump"
	"clumpfind-core/fasta"
	"clumpfind/internal/cli"
	"clumpfind/internal/cmdutil"
	"clumpfind/internal/output"
	"clumpfind/internal/version"
	"clumpfind/internal/writers"
)

// RunContext executes the clumpfind CLI and returns its exit code:
// 0 success (including an empty result), 2 usage or input errors,
// 3 write failures, 130 when the context was already cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("clumpfind")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushExit(outw, stderr, 0)
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(outw, stderr, 2)
	}
	if opts.Version {
		fmt.Fprintf(outw, "clumpfind version %s\n", version.Version)
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
	if len(rec.Seq) < opts.Window {
		cmdutil.Warnf(stderr, opts.Quiet, "sequence %s (%d bp) is shorter than the window (%d); result is empty",
			rec.ID, len(rec.Seq), opts.Window)
	}

	cfg := clump.Config{
		K: opts.K, L: opts.Window, T: opts.Threshold,
		D: opts.Mismatches, RevComp: opts.RevComp, Sparse: opts.Sparse,
	}

	var bar *pb.ProgressBar
	if opts.Progress {
		cfg.Progress = func(done, total int) {
			if bar == nil {
				bar = pb.Full.Start(total)
				bar.SetWriter(stderr)
			}
			bar.SetCurrent(int64(done))
		}
	}
	finishBar := func() {
		if bar != nil {
			bar.Finish()
		}
	}

	// The pure exact strategy answers with a pattern set; clustering
	// needs per-record counts, so it routes through the detector.
	if opts.Mismatches == 0 && !opts.RevComp && opts.ClusterDist < 0 {
		patterns, err := clump.FindExact(rec.Seq, cfg)
		finishBar()
		if err != nil {
			fmt.Fprintln(stderr, err)
			if errors.Is(err, clump.ErrTableTooLarge) {
				fmt.Fprintln(stderr, "hint: re-run with --sparse")
			}
			return 2
		}
		if opts.Output == "json" {
			err = output.WritePatternsJSON(outw, patterns)
		} else {
			err = output.WritePatterns(outw, patterns)
		}
		if err != nil && !writers.IsBrokenPipe(err) {
			fmt.Fprintln(stderr, err)
			return 3
		}
		return flushExit(outw, stderr, 0)
	}

	records, err := clump.Find(rec.Seq, cfg)
	finishBar()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.ClusterDist >= 0 {
		records = clump.Cluster(records, opts.ClusterDist)
	}

	in, errCh := writers.StartClumpWriter(outw, opts.Output, opts.Sort, opts.Header, len(records))
	for _, r := range records {
		in <- r
	}
	close(in)
	if err := <-errCh; err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 3
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
