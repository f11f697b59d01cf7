// Package broker runs one request through the validation pipeline and, if
// every gate passes, through the privileged executor.
//
// The pipeline for a request is a straight line with no way back in:
//
//	privilege gate -> catalog lookup -> arity check -> target validation
//	-> vector synthesis -> execution -> exit code
//
// Every rejection terminates the request before a child process exists;
// partial execution is impossible. The broker never retries anything —
// retry policy, if any, belongs to the unprivileged caller.
package broker

import (
	"fmt"

	"github.com/nanoware/pkgbroker/internal/argv"
	"github.com/nanoware/pkgbroker/internal/catalog"
	"github.com/nanoware/pkgbroker/internal/privexec"
	"github.com/nanoware/pkgbroker/internal/validate"
)

// Executor runs a synthesized vector to completion. privexec.Executor is
// the real one; tests inject recorders to prove rejection paths spawn
// nothing.
type Executor interface {
	Execute(vector []string) (privexec.Outcome, error)
}

// Broker wires the pipeline's two injectable edges: the privilege check and
// the executor. The zero value is not usable; call New.
type Broker struct {
	requirePrivilege func() error
	executor         Executor
}

// Option adjusts a Broker at construction. Used by tests; production code
// takes the defaults.
type Option func(*Broker)

// WithPrivilegeCheck replaces the root check.
func WithPrivilegeCheck(check func() error) Option {
	return func(b *Broker) { b.requirePrivilege = check }
}

// WithExecutor replaces the subprocess executor.
func WithExecutor(e Executor) Option {
	return func(b *Broker) { b.executor = e }
}

// New returns a Broker backed by the real privilege check and executor
// unless options say otherwise.
func New(executor Executor, opts ...Option) *Broker {
	b := &Broker{
		requirePrivilege: privexec.RequireRoot,
		executor:         executor,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Prepare runs every pre-spawn stage of the pipeline for one request and
// returns the vector that execution would receive. name is the symbolic
// operation, args its positional arguments, modifiers any requested
// optional flags. All rejections come back as sentinel-wrapped errors and
// leave no side effects.
func (b *Broker) Prepare(name string, args []string, modifiers []string) ([]string, error) {
	if err := b.requirePrivilege(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrivilege, err)
	}

	op, ok := catalog.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}

	if len(args) != op.Arity() {
		return nil, fmt.Errorf("%w: %s takes %d argument(s), got %d",
			ErrArgumentCount, op.Name, op.Arity(), len(args))
	}

	target := ""
	if op.Target != catalog.TargetNone {
		target = args[0]
		if err := validateTarget(op, target); err != nil {
			return nil, err
		}
	}

	return argv.Synthesize(op, target, modifiers), nil
}

// Run takes one request to its terminal exit code. The returned error is
// non-nil only for broker-side failures (every sentinel plus spawn
// failures), in which case the code is the fixed failure code. A child
// that exited normally with a non-zero code yields that code and a nil
// error: the operation failed, the broker did not.
func (b *Broker) Run(name string, args []string, modifiers []string) (int, error) {
	vector, err := b.Prepare(name, args, modifiers)
	if err != nil {
		return privexec.FailureCode, err
	}

	outcome, err := b.executor.Execute(vector)
	if err != nil {
		return privexec.FailureCode, err
	}
	if outcome.Abnormal {
		return privexec.FailureCode, fmt.Errorf("%s terminated abnormally", vector[0])
	}
	return outcome.Code, nil
}

func validateTarget(op catalog.Operation, target string) error {
	switch op.Target {
	case catalog.TargetPackage:
		if !validate.PackageName(target) {
			return fmt.Errorf("%w: %q", ErrPackageName, target)
		}
	case catalog.TargetArtifact:
		if !validate.ArtifactPath(target) {
			return fmt.Errorf("%w: %q (must be an absolute %s path)",
				ErrArtifactPath, target, validate.ArtifactExt)
		}
	}
	return nil
}
