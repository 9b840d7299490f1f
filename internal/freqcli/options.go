// internal/freqcli/options.go
package freqcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"clumpfind/internal/clibase"
)

// Options holds all freqwords CLI flags.
type Options struct {
	SeqFile string

	K          int
	Mismatches int
	RevComp    bool
	Top        int // max rows in --revcomp mode (0 = all)

	Header  bool
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with the shared usage layout.
func NewFlagSet(name string) *flag.FlagSet {
	fs := clibase.NewFlagSet(name)
	clibase.UsageCommon(fs, name, "most frequent k-mers with mismatches", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -s, --sequences file        FASTA or plain-text sequence file, '-' for STDIN [*]")
		fmt.Fprintln(out, "\nSearch:")
		fmt.Fprintf(out, "  -k int                      k-mer length [*]\n")
		fmt.Fprintf(out, "  -d, --mismatches int        max mismatches [%s]\n", def("mismatches"))
		fmt.Fprintf(out, "      --revcomp               pair each k-mer with its reverse complement [%s]\n", def("revcomp"))
		fmt.Fprintf(out, "      --top int               rows to report in --revcomp mode (0=all) [%s]\n", def("top"))
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "      --no-header             suppress header line in text/TSV [%s]\n", def("no-header"))
	})
	return fs
}

// ParseArgs registers and parses all flags.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.SeqFile, "sequences", "", "sequence file [*]")
	fs.StringVar(&opt.SeqFile, "s", "", "sequence file (shorthand) [*]")
	fs.IntVar(&opt.K, "k", 0, "k-mer length [*]")
	fs.IntVar(&opt.Mismatches, "mismatches", 0, "max mismatches [0]")
	fs.IntVar(&opt.Mismatches, "d", 0, "max mismatches (shorthand) [0]")
	fs.BoolVar(&opt.RevComp, "revcomp", false, "pair with reverse complements [false]")
	fs.IntVar(&opt.Top, "top", 10, "rows to report in --revcomp mode (0=all) [10]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")

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
	if opt.SeqFile == "" && fs.NArg() == 1 {
		opt.SeqFile = fs.Arg(0)
	}

	switch {
	case opt.SeqFile == "":
		return opt, errors.New("--sequences is required")
	case opt.K < 1:
		return opt, errors.New("-k must be ≥ 1")
	case opt.Mismatches < 0:
		return opt, errors.New("--mismatches must be ≥ 0")
	case opt.Top < 0:
		return opt, errors.New("--top must be ≥ 0")
	}
	return opt, nil
}
