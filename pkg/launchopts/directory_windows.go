//go:build windows

package launchopts

import (
	"path/filepath"
	"strings"
)

func hasInvalidPathChars(path string) bool {
	return strings.IndexFunc(path, func(r rune) bool {
		switch r {
		case '"', '<', '>', '|':
			return true
		}
		return r < 32
	}) >= 0
}

// isRooted accepts drive-relative ("C:foo") and root-relative ("\foo") paths
// as well as fully qualified ones.
func isRooted(path string) bool {
	if filepath.VolumeName(path) != "" {
		return true
	}
	return strings.HasPrefix(path, `\`) || strings.HasPrefix(path, "/")
}
