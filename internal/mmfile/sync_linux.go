//go:build linux || freebsd

package mmfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes file data. fdatasync skips metadata the rename does not need.
func syncFile(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}

// syncDir makes the rename durable.
func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	return unix.Fsync(int(d.Fd()))
}
