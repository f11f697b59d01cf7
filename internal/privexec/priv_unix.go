//go:build !windows

package privexec

import (
	"fmt"
	"os"
)

// RequireRoot fails closed unless the calling identity already holds root.
// The broker never escalates; it is invoked under sudo (or setuid) and only
// verifies that the escalation already happened.
func RequireRoot() error {
	if euid := os.Geteuid(); euid != 0 {
		return fmt.Errorf("must run as root (euid %d), e.g. via sudo", euid)
	}
	return nil
}
