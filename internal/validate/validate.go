// Package validate classifies caller-supplied target strings before they are
// allowed anywhere near a privileged subprocess.
//
// The broker runs as root and hands its targets to apt as literal argv
// tokens. The threat is therefore not malformed input but hostile input:
// a target crafted to be parsed as a flag (`-rf`), to smuggle shell
// metacharacters in case a later layer ever interpolates it, or to escape
// an expected directory via traversal segments. Both predicates here are
// whitelists — every byte must be explicitly allowed — because a blacklist
// can only enumerate the attacks someone has already thought of.
//
// The predicates are pure syntax checks. They never touch the filesystem:
// existence, readability, and package state are apt's concern, and checking
// them here would add a TOCTOU window for no benefit.
package validate

import "strings"

// ArtifactExt is the only file extension the install operation accepts.
const ArtifactExt = ".deb"

// PackageName reports whether s is safe to pass to apt as a package name.
//
// Accepted: non-empty, does not start with '-' (so it can never be parsed
// as a flag), and contains only letters, digits, '+', '-', '.'. This is a
// subset of Debian package-name syntax; the subset errs toward rejection.
func PackageName(s string) bool {
	if s == "" || s[0] == '-' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isPackageByte(s[i]) {
			return false
		}
	}
	return true
}

// ArtifactPath reports whether s is safe to pass to apt as a local package
// file. Accepted: absolute, ends in ArtifactExt, no ".." segment, no
// doubled separator, and only bytes from the path whitelist (letters,
// digits, '/', '-', '_', '.', '+', space).
func ArtifactPath(s string) bool {
	if !strings.HasPrefix(s, "/") {
		return false
	}
	if !strings.HasSuffix(s, ArtifactExt) {
		return false
	}
	if hasTraversalSegment(s) || strings.Contains(s, "//") {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isPathByte(s[i]) {
			return false
		}
	}
	return true
}

// hasTraversalSegment reports whether any '/'-separated segment of s is
// exactly "..". A ".." inside a longer segment ("a..b", "..hidden.deb") is
// not a traversal and is left to the byte whitelist.
func hasTraversalSegment(s string) bool {
	for _, seg := range strings.Split(s, "/") {
		if seg == ".." {
			return true
		}
	}
	return false
}

func isPackageByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '+' || c == '-' || c == '.':
		return true
	}
	return false
}

func isPathByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '/' || c == '-' || c == '_' || c == '.' || c == '+' || c == ' ':
		return true
	}
	return false
}
