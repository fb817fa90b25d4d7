package config

import (
	"os"
	"strings"
	"unicode"
)

// UnnamedForm replaces file names which are empty after cleaning.
const UnnamedForm = "_unnamed_form_"

// cleanName drops control characters, path separators and anything listed in
// forbidden, then trims leading dots and surrounding spaces.
func cleanName(in, forbidden string) string {
	forbidden += string(os.PathSeparator) + string(os.PathListSeparator)
	out := strings.Map(func(sym rune) rune {
		if unicode.IsControl(sym) || strings.ContainsRune(forbidden, sym) {
			return -1
		}
		return sym
	}, in)
	out = strings.TrimSpace(strings.TrimLeft(out, "."))
	if len(out) == 0 {
		out = UnnamedForm
	}
	return out
}
