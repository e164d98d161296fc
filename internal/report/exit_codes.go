package report

import (
	"errors"
	"io/fs"

	"github.com/provide-io/flavor/go/androidlaunch/pkg/launchopts"
)

// Process exit codes of the launch tools.
const (
	ExitOK              = 0
	ExitPanic           = 101
	ExitDocumentError   = 102
	ExitValidationError = 103
	ExitInvalidArgs     = 105
	ExitIOError         = 106
)

// ExitCode maps an error from loading or validating a launch document to an exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if _, ok := launchopts.AsValidationError(err); ok {
		return ExitValidationError
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return ExitIOError
	}
	return ExitDocumentError
}
