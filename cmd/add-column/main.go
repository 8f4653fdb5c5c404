// add-column - derive sample identifiers for sequencing runs
//
// Reads a tab-separated sample sheet, appends a safe_id column built from
// IRIDA_ID and the S<number> marker of the Raw_forward read file name, and
// writes the result to a new file.
package main

import (
	"os"

	"github.com/seqtools/add-column/internal/cli"
)

// Version information (set via ldflags at build time)
var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	cli.Version = version
	cli.BuildTime = buildTime
	os.Exit(cli.Main(os.Args[1:], os.Stdout, os.Stderr))
}
