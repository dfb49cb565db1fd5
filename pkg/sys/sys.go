// Package sys provides system utilities with the same API across OSes.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsATTY determines whether the given file descriptor is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsFileATTY is like IsATTY, but takes an *os.File. It returns false for a nil
// file.
func IsFileATTY(f *os.File) bool {
	if f == nil {
		return false
	}
	return IsATTY(f.Fd())
}
