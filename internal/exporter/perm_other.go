//go:build !unix

package exporter

import "io/fs"

func newFilePerm() fs.FileMode {
	return createPerm
}
