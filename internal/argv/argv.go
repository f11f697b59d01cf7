// Package argv builds the final argument vector handed to apt.
//
// Every token in the vector is either a constant drawn from the operation
// catalog or a single previously-validated target passed through opaque and
// whole. Nothing here concatenates caller text into a token, splits a
// token, or re-parses one. The returned slice's bound is the vector
// terminator; os/exec adds the process-level terminator itself.
package argv

import "github.com/nanoware/pkgbroker/internal/catalog"

// AptPath is the fixed downstream executable. The broker always spawns this
// exact path; the caller cannot redirect it.
const AptPath = "/usr/bin/apt"

// AssumeYesFlag keeps apt from prompting; paired with the non-interactive
// environment marker set by the executor.
const AssumeYesFlag = "-y"

// Synthesize builds the vector for one request. target must already be
// validated for op's target kind ("" for maintenance operations).
// Requested modifiers are filtered against op's whitelist: an unlisted flag
// is dropped, never forwarded, and a listed flag is appended at most once
// no matter how often it was requested.
func Synthesize(op catalog.Operation, target string, modifiers []string) []string {
	vector := []string{AptPath}
	vector = append(vector, op.Tokens...)
	if op.AssumeYes {
		vector = append(vector, AssumeYesFlag)
	}
	for _, flag := range op.Modifiers {
		if requested(modifiers, flag) {
			vector = append(vector, flag)
		}
	}
	if op.Target != catalog.TargetNone {
		vector = append(vector, target)
	}
	return vector
}

func requested(modifiers []string, flag string) bool {
	for _, m := range modifiers {
		if m == flag {
			return true
		}
	}
	return false
}
