// Package pathutil joins and inspects slash-separated paths.
//
// Basename, Dirname and Normalize are the standard library's path.Base,
// path.Dir and path.Clean, bound unchanged. Join is a plain concatenating
// join: unlike path.Join it does not clean the result.
package pathutil

import (
	"path"
	"strings"
)

const sep = "/"

var (
	// Basename returns the last element of p.
	Basename = path.Base
	// Dirname returns all but the last element of p.
	Dirname = path.Dir
	// Normalize returns the shortest lexically equivalent path.
	Normalize = path.Clean
)

// Join concatenates segments with exactly one "/" at each boundary.
// Empty segments are skipped. The first non-empty segment is kept verbatim,
// so absolute paths stay absolute; later segments lose at most one leading
// slash. Trailing slashes are never stripped. With nothing to join the
// result is ".".
func Join(segments ...string) string {
	var joined strings.Builder
	started := false
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if !started {
			joined.WriteString(seg)
			started = true
			continue
		}
		seg = strings.TrimPrefix(seg, sep)
		if !strings.HasSuffix(joined.String(), sep) {
			joined.WriteString(sep)
		}
		joined.WriteString(seg)
	}
	if !started {
		return "."
	}
	return joined.String()
}

// CleanAbs converts a path to a clean, absolute form.
// It resolves ".", "..", multiple slashes, and trailing slashes (except for root).
func CleanAbs(p string) string {
	if p == "" {
		return sep
	}
	cleaned := path.Clean(p)
	if cleaned == "." {
		return sep
	}
	if !strings.HasPrefix(cleaned, sep) {
		cleaned = sep + cleaned
	}
	return cleaned
}

// Resolve resolves a potentially relative path against the working directory cwd.
func Resolve(cwd, p string) string {
	if p == "" {
		return CleanAbs(cwd)
	}
	if path.IsAbs(p) {
		return CleanAbs(p)
	}
	return CleanAbs(Join(cwd, p))
}

// Parent returns the parent directory of p. The parent of root is root.
func Parent(p string) string {
	p = CleanAbs(p)
	if p == sep {
		return sep
	}
	return path.Dir(p)
}

// Base returns the final component of p, or "/" for root.
func Base(p string) string {
	p = CleanAbs(p)
	if p == sep {
		return sep
	}
	return path.Base(p)
}

// Split returns the parent directory and the base name.
func Split(p string) (string, string) {
	return Parent(p), Base(p)
}

// IsRoot returns true if the path is the root directory.
func IsRoot(p string) bool {
	return CleanAbs(p) == sep
}
