// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"clumpfind/internal/version"
)

// NewFlagSet returns a clean FlagSet with ContinueOnError and silenced
// default output; callers install a Usage via UsageCommon.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

// UsageCommon installs a shared Usage() handler on fs. extra prints the
// tool-specific sections (flag blocks, examples).
func UsageCommon(fs *flag.FlagSet, name, oneLiner string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – %s\n\n", name, oneLiner)
		fmt.Fprintln(out, "Author:  Santiago Wilders Azara")
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "  -q, --quiet                 Suppress non-essential warnings")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
