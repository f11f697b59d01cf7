package broker

import "errors"

// Sentinel errors for request rejection. Callers match with errors.Is; all
// of them are terminal, fail-closed, and raised before any child process
// exists. The downstream tool's own non-zero exit is deliberately not an
// error — its code is passed through as the broker's exit code instead.
var (
	// ErrPrivilege is returned when the calling identity lacks root.
	ErrPrivilege = errors.New("insufficient privilege")

	// ErrUnknownOperation is returned for a name outside the catalog.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrArgumentCount is returned when the positional argument count does
	// not match the operation's declared arity.
	ErrArgumentCount = errors.New("wrong argument count")

	// ErrPackageName is returned when a package-name target fails
	// validation.
	ErrPackageName = errors.New("invalid package name")

	// ErrArtifactPath is returned when an artifact-path target fails
	// validation.
	ErrArtifactPath = errors.New("invalid package file path")
)
