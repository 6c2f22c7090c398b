package credentials

import "errors"

var (
	// ErrCredentialNotFound indicates no usable credential was obtained
	// from the helper, whether because the helper executable could not
	// be started, exited non-zero, or produced incomplete output. The
	// wrapped message carries the underlying cause.
	ErrCredentialNotFound = errors.New("credentials not found")

	// ErrUnsupportedOperation indicates a credential helper verb this
	// package does not implement.
	ErrUnsupportedOperation = errors.New("operation not supported")

	// ErrNoHelperConfigured indicates no credential.helper value exists
	// for the requested URL in the supplied configuration.
	ErrNoHelperConfigured = errors.New("no credential helper configured")

	// ErrExecutableNotFound is reported by a [System] when a command
	// could not be started because its executable does not exist.
	ErrExecutableNotFound = errors.New("executable not found")
)
