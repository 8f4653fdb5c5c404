//go:build unix

package exporter

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// newFilePerm returns createPerm with the process umask applied.
// The umask can only be read by setting it, so it is restored right away.
func newFilePerm() fs.FileMode {
	mask := unix.Umask(0)
	unix.Umask(mask)
	return createPerm &^ fs.FileMode(mask)
}
