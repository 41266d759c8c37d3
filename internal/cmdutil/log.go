// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Warnf writes one diagnostic line to dst, mirroring warnx.
func Warnf(dst io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(dst, "tummer: "+format+"\n", a...)
}

// Verbosef writes a progress line when verbose output is on.
func Verbosef(dst io.Writer, verbose bool, format string, a ...any) {
	if !verbose {
		return
	}
	_, _ = fmt.Fprintf(dst, format+"\n", a...)
}
