// Package exporter writes tables to delimited files.
package exporter

import (
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// createPerm is the mode os.Create uses before the umask is applied.
const createPerm fs.FileMode = 0666

// AtomicFile is an output file that only appears at its final path on Commit.
// Data is written to a temporary file in the same directory and renamed into place.
type AtomicFile struct {
	path string
	tmp  *os.File
	w    io.Writer
	gz   *gzip.Writer
	done bool
}

// Create opens an atomic output file, handling compression automatically based on extension.
func Create(filePath string) (*AtomicFile, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	if ext == ".bz2" {
		return nil, fmt.Errorf("bzip2 output compression not yet supported, use .gz instead")
	}

	dir, base := filepath.Split(filePath)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	f := &AtomicFile{path: filePath, tmp: tmp, w: tmp}
	if ext == ".gz" {
		f.gz = gzip.NewWriter(tmp)
		f.w = f.gz
	}
	return f, nil
}

func (f *AtomicFile) Write(p []byte) (int, error) {
	return f.w.Write(p)
}

// Commit flushes, syncs and renames the temporary file over the destination.
// An existing destination keeps its permissions; a new one gets the mode
// os.Create would give it.
func (f *AtomicFile) Commit() error {
	if f.done {
		return fmt.Errorf("output %s already closed", f.path)
	}
	f.done = true

	if err := f.finish(); err != nil {
		os.Remove(f.tmp.Name())
		return err
	}
	return nil
}

func (f *AtomicFile) finish() error {
	if f.gz != nil {
		if err := f.gz.Close(); err != nil {
			f.tmp.Close()
			return fmt.Errorf("failed to finish gzip stream: %w", err)
		}
	}
	if err := f.tmp.Sync(); err != nil {
		f.tmp.Close()
		return fmt.Errorf("failed to sync output: %w", err)
	}
	if err := f.tmp.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	perm := newFilePerm()
	if info, err := os.Stat(f.path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.Chmod(f.tmp.Name(), perm); err != nil {
		return fmt.Errorf("failed to set output permissions: %w", err)
	}
	if err := os.Rename(f.tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}

// Abort discards the temporary file. It is a no-op after Commit.
func (f *AtomicFile) Abort() {
	if f.done {
		return
	}
	f.done = true
	f.tmp.Close()
	os.Remove(f.tmp.Name())
}
