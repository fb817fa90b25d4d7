// Package misc keeps program identity set at build time.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// Set with -ldflags "-X formtree/misc.version=... -X formtree/misc.githash=..."
var (
	version = "dev"
	githash = "unknown"
)

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns commit the program was built from.
func GetGitHash() string {
	return githash
}

// GetAppName returns executable name without extension.
func GetAppName() string {
	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, filepath.Ext(name))
}
