package launchopts

import (
	"os"
)

// DirectoryProbe answers the three questions the directory-validity rule asks.
type DirectoryProbe interface {
	HasInvalidPathChars(path string) bool
	IsRooted(path string) bool
	DirExists(path string) bool
}

// HostProbe checks paths against the host operating system.
type HostProbe struct{}

var _ DirectoryProbe = HostProbe{}

// HasInvalidPathChars reports whether path contains a character the host
// does not allow in paths.
func (HostProbe) HasInvalidPathChars(path string) bool {
	return hasInvalidPathChars(path)
}

// IsRooted reports whether path is anchored at a root or volume.
func (HostProbe) IsRooted(path string) bool {
	return isRooted(path)
}

// DirExists reports whether a directory exists at path right now. The answer
// can go stale before the path is used.
func (HostProbe) DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// validDirectory applies the checks in order and stops at the first failure.
func validDirectory(probe DirectoryProbe, path string) bool {
	if probe.HasInvalidPathChars(path) {
		return false
	}
	if !probe.IsRooted(path) {
		return false
	}
	return probe.DirExists(path)
}
