package core

import (
	"errors"
	"syscall"
)

// Common errors.
var (
	// ErrInvalidArgument covers every contract failure: bad arguments, a
	// library that cannot be opened, a missing bootstrap symbol, a version
	// mismatch or a missing operation.
	ErrInvalidArgument error = syscall.EINVAL

	// ErrOutOfMemory is returned when no handle storage can be reserved.
	ErrOutOfMemory error = syscall.ENOMEM

	ErrClosed      = errors.New("provider handle is closed")
	ErrUnsupported = errors.New("dynamic loading is not supported on this platform")
)

// Status converts a load error into the numeric status of the C-style
// contract: 0 on success, EINVAL, ENOMEM, or the errno a bootstrap routine
// reported. Errors carrying no errno map to EIO.
func Status(err error) int {
	if err == nil {
		return 0
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return int(syscall.EIO)
}
