// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"clumpfind-core/clump"
)

// WriteText prints one TSV line per record, preceded by the header
// unless suppressed.
func WriteText(w io.Writer, list []clump.Record, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, Header); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// StreamText is the channel-fed twin of WriteText.
func StreamText(w io.Writer, in <-chan clump.Record, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, Header); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// WritePatterns prints an exact clump set the classic way: one
// space-joined line.
func WritePatterns(w io.Writer, patterns []string) error {
	_, err := fmt.Fprintln(w, strings.Join(patterns, " "))
	return err
}
