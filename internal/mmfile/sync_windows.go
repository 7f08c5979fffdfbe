//go:build windows

package mmfile

import (
	"os"

	"golang.org/x/sys/windows"
)

func syncFile(f *os.File) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}

// syncDir is a no-op; directories cannot be opened for flushing on Windows.
func syncDir(string) error { return nil }
