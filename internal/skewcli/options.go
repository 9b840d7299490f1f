// internal/skewcli/options.go
package skewcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"clumpfind/internal/clibase"
)

// Options holds all gcskew CLI flags.
type Options struct {
	SeqFile string
	Curve   bool // print the sampled skew curve instead of the minima
	Step    int  // sampling resolution for --curve

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with the shared usage layout.
func NewFlagSet(name string) *flag.FlagSet {
	fs := clibase.NewFlagSet(name)
	clibase.UsageCommon(fs, name, "G-C skew minimum scanner", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -s, --sequences file        FASTA or plain-text sequence file, '-' for STDIN [*]")
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "      --curve                 print the sampled skew curve [%s]\n", def("curve"))
		fmt.Fprintf(out, "      --step int              curve sampling resolution [%s]\n", def("step"))
	})
	return fs
}

// ParseArgs registers and parses all flags.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.SeqFile, "sequences", "", "sequence file [*]")
	fs.StringVar(&opt.SeqFile, "s", "", "sequence file (shorthand) [*]")
	fs.BoolVar(&opt.Curve, "curve", false, "print the sampled skew curve [false]")
	fs.IntVar(&opt.Step, "step", 500, "curve sampling resolution [500]")

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
	if opt.SeqFile == "" && fs.NArg() == 1 {
		opt.SeqFile = fs.Arg(0)
	}
	if opt.SeqFile == "" {
		return opt, errors.New("--sequences is required")
	}
	if opt.Step < 1 {
		return opt, errors.New("--step must be ≥ 1")
	}
	return opt, nil
}
