// internal/writers/clump.go
package writers

import (
	"fmt"
	"io"

	"clumpfind-core/clump"
	"clumpfind/internal/common"
	"clumpfind/internal/output"
)

// StartClumpWriter spins up a writer goroutine for clump records.
// Text streams unless sorting was requested; JSON always buffers.
func StartClumpWriter(out io.Writer, format string, sortOut, header bool, bufSize int) (chan<- clump.Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan clump.Record, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "json":
			var buf []clump.Record
			for r := range in {
				buf = append(buf, r)
			}
			if sortOut {
				common.SortRecords(buf)
			}
			err = output.WriteJSON(out, buf)

		case "text":
			if sortOut {
				var buf []clump.Record
				for r := range in {
					buf = append(buf, r)
				}
				common.SortRecords(buf)
				err = output.WriteText(out, buf, header)
			} else {
				err = output.StreamText(out, in, header)
			}

		default:
			for range in {
				// drain so senders never block on a bad format
			}
			err = fmt.Errorf("unsupported output %q", format)
		}
		errCh <- err
	}()

	return in, errCh
}
