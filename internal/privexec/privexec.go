// Package privexec spawns the downstream package tool on behalf of a
// validated request. It is the only side-effecting layer in the broker:
// everything upstream is pure validation, and everything here assumes the
// vector it receives was synthesized from catalog constants plus one
// validated target.
//
// The child is spawned directly by path with a literal argument list.
// No shell is involved at any point, so no byte in a validated target can
// be reinterpreted as a metacharacter, redirection, or command separator.
package privexec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// NonInteractiveEnv is set in the child environment so apt and dpkg never
// block on a terminal prompt. It is written for the child's benefit only;
// the broker reads nothing from its own environment.
const NonInteractiveEnv = "DEBIAN_FRONTEND=noninteractive"

// FailureCode is the broker exit code for abnormal child termination and
// for every broker-side failure.
const FailureCode = 1

// ErrEmptyVector is returned when Execute is handed nothing to run.
var ErrEmptyVector = errors.New("empty argument vector")

// Outcome is the child's reduced termination status.
type Outcome struct {
	// Code is the exit code the broker should surface. For a normal child
	// exit this is the child's own code, zero or not.
	Code int

	// Abnormal is true when the child died without a normal exit (signal)
	// or the wait itself failed; Code is FailureCode in that case.
	Abnormal bool
}

// Executor runs one argument vector to completion. The zero value is not
// usable; call New.
type Executor struct {
	stdout io.Writer
	stderr io.Writer
}

// New returns an Executor that passes the child's output through on the
// given streams. The downstream tool's diagnostics are its own; the broker
// never rewrites them.
func New(stdout, stderr io.Writer) *Executor {
	return &Executor{stdout: stdout, stderr: stderr}
}

// Execute spawns vector[0] directly by path with vector[1:] as its literal
// arguments, waits for it to terminate, and reduces the result. A spawn
// failure is returned as an error with no Outcome; once the child has
// started there is always an Outcome and the child is always reaped.
func (e *Executor) Execute(vector []string) (Outcome, error) {
	if len(vector) == 0 {
		return Outcome{}, ErrEmptyVector
	}

	cmd := exec.Command(vector[0], vector[1:]...)
	cmd.Env = append(os.Environ(), NonInteractiveEnv)
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if err := cmd.Start(); err != nil {
		return Outcome{}, fmt.Errorf("spawn %s: %w", vector[0], err)
	}

	err := cmd.Wait()
	if err == nil {
		return Outcome{Code: 0}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.ExitCode() >= 0 {
			// Normal exit with a non-zero code: the package operation
			// failed, not the broker. Pass the code through verbatim.
			return Outcome{Code: exitErr.ExitCode()}, nil
		}
		// Killed by a signal.
		return Outcome{Code: FailureCode, Abnormal: true}, nil
	}
	// Wait itself failed; the process state is unknowable.
	return Outcome{Code: FailureCode, Abnormal: true}, nil
}
