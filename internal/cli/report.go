package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// reporter prints colored status lines.
// Info and success lines only appear in verbose mode; warnings always do.
type reporter struct {
	w       io.Writer
	verbose bool
}

func newReporter(w io.Writer, verbose bool) *reporter {
	return &reporter{w: w, verbose: verbose}
}

func (r *reporter) info(format string, a ...interface{}) {
	r.print(infoColor, format, a...)
}

func (r *reporter) success(format string, a ...interface{}) {
	r.print(successColor, format, a...)
}

func (r *reporter) warn(format string, a ...interface{}) {
	_, _ = warnColor.Fprintf(r.w, format+"\n", a...)
}

func (r *reporter) print(c *color.Color, format string, a ...interface{}) {
	if !r.verbose {
		return
	}
	_, _ = c.Fprintf(r.w, format+"\n", a...)
}

// Helper functions

func fmtNum(n int64) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	}
	if n >= 1000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%d", n)
}

func shortPath(filePath string) string {
	parts := strings.Split(filePath, "/")
	return parts[len(parts)-1]
}
