//go:build windows

package privexec

import "errors"

// RequireRoot always fails on Windows: the broker fronts apt, which has no
// Windows counterpart, so there is no privilege model to check against.
func RequireRoot() error {
	return errors.New("unsupported platform")
}
