//go:build !windows

package config

import (
	"os"

	"golang.org/x/term"
)

// CleanFileName makes in usable as a single file name.
func CleanFileName(in string) string {
	return cleanName(in, "")
}

// EnableColorOutput checks if colorized output is possible.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
