// Package catalog defines the closed set of operations the broker is willing
// to forward to apt. Every per-operation policy decision — downstream
// tokens, target arity and shape, assume-yes behavior, permitted modifier
// flags — lives in exactly one table entry, so an operation's full contract
// is readable in one place and nothing else in the broker branches on
// operation names.
package catalog

// TargetKind says what shape of target an operation takes, and therefore
// which validator must certify it.
type TargetKind int

const (
	// TargetNone is a maintenance operation: no positional target at all.
	TargetNone TargetKind = iota
	// TargetPackage takes a package name (purge).
	TargetPackage
	// TargetArtifact takes an absolute path to a .deb file (install).
	TargetArtifact
)

// String returns the kind name used in diagnostics and listings.
func (k TargetKind) String() string {
	switch k {
	case TargetPackage:
		return "package"
	case TargetArtifact:
		return "artifact"
	default:
		return "none"
	}
}

// Operation is one catalog entry. The set of operations is fixed at build
// time; entries are value types and callers never mutate them.
type Operation struct {
	// Name is the symbolic name the caller requests.
	Name string

	// Tokens are the fixed apt subcommand tokens the operation expands to.
	// Usually one token; fix-broken expands to a compound form.
	Tokens []string

	// Target is the shape of the positional target, if any.
	Target TargetKind

	// AssumeYes appends apt's -y flag so the child never prompts.
	AssumeYes bool

	// Modifiers is the whitelist of optional flags the operation accepts.
	// A requested flag not in this list is dropped, never forwarded.
	Modifiers []string

	// Summary is the one-line description shown in CLI help.
	Summary string
}

// Arity returns the number of positional arguments the operation requires.
func (op Operation) Arity() int {
	if op.Target == TargetNone {
		return 0
	}
	return 1
}

// AllowsModifier reports whether flag is on the operation's whitelist.
func (op Operation) AllowsModifier(flag string) bool {
	for _, m := range op.Modifiers {
		if m == flag {
			return true
		}
	}
	return false
}

// FlagReinstall is the one modifier the install/purge family accepts.
const FlagReinstall = "--reinstall"

// operations is the closed table. Order here is the display order for
// listings; lookup goes through the index map.
var operations = []Operation{
	{Name: "install", Tokens: []string{"install"}, Target: TargetArtifact, AssumeYes: true, Modifiers: []string{FlagReinstall}, Summary: "Install a local .deb package file"},
	{Name: "purge", Tokens: []string{"purge"}, Target: TargetPackage, AssumeYes: true, Modifiers: []string{FlagReinstall}, Summary: "Purge an installed package and its configuration"},
	{Name: "update", Tokens: []string{"update"}, Summary: "Refresh the package index"},
	{Name: "upgrade", Tokens: []string{"upgrade"}, AssumeYes: true, Summary: "Upgrade all installed packages"},
	{Name: "autoremove", Tokens: []string{"autoremove"}, AssumeYes: true, Summary: "Remove packages no longer needed as dependencies"},
	{Name: "fix-broken", Tokens: []string{"install", "--fix-broken"}, AssumeYes: true, Summary: "Repair a broken package installation"},
	{Name: "clean", Tokens: []string{"clean"}, Summary: "Clear the downloaded package cache"},
}

var index = func() map[string]Operation {
	m := make(map[string]Operation, len(operations))
	for _, op := range operations {
		m[op.Name] = op
	}
	return m
}()

// Lookup returns the operation registered under name. The second return is
// false for anything outside the closed set; callers must reject without
// spawning.
func Lookup(name string) (Operation, bool) {
	op, ok := index[name]
	return op, ok
}

// All returns the catalog entries in display order. The slice is a copy;
// callers may not grow or reorder the real table.
func All() []Operation {
	out := make([]Operation, len(operations))
	copy(out, operations)
	return out
}

// MaintenanceNames returns the names of the zero-target operations, in
// display order. The CLI registers one subcommand per name.
func MaintenanceNames() []string {
	var names []string
	for _, op := range operations {
		if op.Target == TargetNone {
			names = append(names, op.Name)
		}
	}
	return names
}
