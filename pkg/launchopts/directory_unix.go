//go:build !windows

package launchopts

import "strings"

func hasInvalidPathChars(path string) bool {
	return strings.ContainsRune(path, 0)
}

func isRooted(path string) bool {
	return strings.HasPrefix(path, "/")
}
