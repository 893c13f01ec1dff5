// Package bookmark stores named absolute paths.
package bookmark

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/rowantrollope/pathkit/internal/pathutil"
)

// ErrNotFound is returned when a bookmark name is unknown.
var ErrNotFound = errors.New("bookmark not found")

// Bookmark is a named absolute path.
type Bookmark struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Store persists bookmarks for a single namespace.
type Store interface {
	Set(ctx context.Context, name, path string) error
	Get(ctx context.Context, name string) (string, error)
	Delete(ctx context.Context, name string) error
	// List returns all bookmarks sorted by name.
	List(ctx context.Context) ([]Bookmark, error)
}

// Namespaced is a Store whose bookmarks are partitioned by namespace.
type Namespaced interface {
	Store
	SetNamespace(namespace string)
	// Namespaces returns every namespace holding at least one bookmark.
	Namespaces(ctx context.Context) ([]string, error)
}

var (
	_ Namespaced = (*MemoryStore)(nil)
	_ Namespaced = (*RedisStore)(nil)
)

// ValidateName checks that name can be used as a bookmark.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("invalid bookmark name: empty")
	}
	if strings.HasPrefix(name, "@") {
		return fmt.Errorf("invalid bookmark name %q: must not start with '@'", name)
	}
	if strings.Contains(name, "/") {
		return fmt.Errorf("invalid bookmark name %q: must not contain '/'", name)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("invalid bookmark name %q: must not contain whitespace", name)
	}
	return nil
}

// Expand replaces a bookmark reference with its path.
//
//	@name       the bookmark's path
//	@name/rest  the bookmark's path joined with rest
//	@name/      the bookmark's path with a trailing slash
//	@@x         the literal string "@x"
//
// Arguments not starting with '@' are returned unchanged.
func Expand(ctx context.Context, store Store, arg string) (string, error) {
	ref, ok := strings.CutPrefix(arg, "@")
	if !ok {
		return arg, nil
	}
	if strings.HasPrefix(ref, "@") {
		return ref, nil
	}
	name, rest, hasSlash := strings.Cut(ref, "/")
	if err := ValidateName(name); err != nil {
		return "", fmt.Errorf("expand %s: %w", arg, err)
	}
	target, err := store.Get(ctx, name)
	if err != nil {
		return "", err
	}
	switch {
	case rest != "":
		return pathutil.Join(target, rest), nil
	case hasSlash:
		return pathutil.Join(target, "/"), nil
	}
	return target, nil
}
