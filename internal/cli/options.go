// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"clumpfind/internal/clibase"
)

// Options holds all clumpfind CLI flags and arguments.
type Options struct {
	SeqFile string

	// Clump parameters
	K         int
	Window    int
	Threshold int

	// Approximate matching
	Mismatches int
	RevComp    bool

	// Post-processing
	ClusterDist int // -1 = no deduplication pass

	// Strategy
	Sparse bool

	// Output
	Output   string
	Sort     bool
	Header   bool // true unless --no-header
	Progress bool

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with the shared usage layout.
func NewFlagSet(name string) *flag.FlagSet {
	fs := clibase.NewFlagSet(name)
	clibase.UsageCommon(fs, name, "k-mer clump detection", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -s, --sequences file        FASTA or plain-text sequence file, '-' for STDIN [*]")
		fmt.Fprintln(out, "\nClump parameters:")
		fmt.Fprintf(out, "  -k int                      k-mer length [*]\n")
		fmt.Fprintf(out, "  -L, --window int            window length [*]\n")
		fmt.Fprintf(out, "  -t, --threshold int         min occurrences within a window [*]\n")
		fmt.Fprintf(out, "  -d, --mismatches int        max mismatches per occurrence [%s]\n", def("mismatches"))
		fmt.Fprintf(out, "      --revcomp               count reverse-complement matches [%s]\n", def("revcomp"))
		fmt.Fprintf(out, "      --cluster-distance int  collapse reported patterns within this Hamming distance (-1=off) [%s]\n", def("cluster-distance"))
		fmt.Fprintf(out, "      --sparse                use the sparse frequency table (large k) [%s]\n", def("sparse"))
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         output format: text | json [%s]\n", def("output"))
		fmt.Fprintf(out, "      --sort                  sort outputs deterministically [%s]\n", def("sort"))
		fmt.Fprintf(out, "      --no-header             suppress header line in text/TSV [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --progress              progress bar on stderr for long scans [%s]\n", def("progress"))
	})
	return fs
}

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.SeqFile, "sequences", "", "sequence file [*]")
	fs.StringVar(&opt.SeqFile, "s", "", "sequence file (shorthand) [*]")

	fs.IntVar(&opt.K, "k", 0, "k-mer length [*]")
	fs.IntVar(&opt.Window, "window", 0, "window length [*]")
	fs.IntVar(&opt.Window, "L", 0, "window length (shorthand) [*]")
	fs.IntVar(&opt.Threshold, "threshold", 0, "occurrence threshold [*]")
	fs.IntVar(&opt.Threshold, "t", 0, "occurrence threshold (shorthand) [*]")

	fs.IntVar(&opt.Mismatches, "mismatches", 0, "max mismatches per occurrence [0]")
	fs.IntVar(&opt.Mismatches, "d", 0, "max mismatches (shorthand) [0]")
	fs.BoolVar(&opt.RevComp, "revcomp", false, "count reverse-complement matches [false]")

	fs.IntVar(&opt.ClusterDist, "cluster-distance", -1, "dedup Hamming distance (-1=off) [-1]")
	fs.BoolVar(&opt.Sparse, "sparse", false, "use the sparse frequency table [false]")

	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
	fs.StringVar(&opt.Output, "o", "text", "output format (shorthand) [text]")
	fs.BoolVar(&opt.Sort, "sort", false, "sort outputs deterministically [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.BoolVar(&opt.Progress, "progress", false, "progress bar on stderr [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "suppress warnings (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Positional sequence file is accepted too.
	if opt.SeqFile == "" && fs.NArg() == 1 {
		opt.SeqFile = fs.Arg(0)
	}

	switch {
	case opt.SeqFile == "":
		return opt, errors.New("--sequences is required")
	case opt.K < 1:
		return opt, errors.New("-k must be ≥ 1")
	case opt.Window < opt.K:
		return opt, errors.New("--window must be ≥ k")
	case opt.Threshold < 1:
		return opt, errors.New("--threshold must be ≥ 1")
	case opt.Mismatches < 0:
		return opt, errors.New("--mismatches must be ≥ 0")
	case opt.ClusterDist < -1:
		return opt, errors.New("--cluster-distance must be ≥ -1")
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
