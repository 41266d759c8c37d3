// internal/writers/anchor.go
package writers

import (
	"fmt"
	"io"

	"github.com/kloetzl/TUMmer/internal/mum"
)

// WriteBlock renders one per-query output block: the header line
// followed by the query's anchors, three right-aligned 1-based columns.
// Blocks are rendered into per-query buffers upstream so concurrent
// queries never interleave on the stream.
func WriteBlock(w io.Writer, name string, reverse bool, anchors []mum.Anchor) error {
	suffix := ""
	if reverse {
		suffix = " Reverse"
	}
	if _, err := fmt.Fprintf(w, "> %s%s\n", name, suffix); err != nil {
		return err
	}
	for _, a := range anchors {
		_, err := fmt.Fprintf(w, "%8d  %8d  %8d\n", a.RefPos+1, a.QueryPos+1, a.Len)
		if err != nil {
			return err
		}
	}
	return nil
}
