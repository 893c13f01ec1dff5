package bookmark

import (
	"fmt"
	"strings"
)

// KeyGen generates Redis key names for a bookmark namespace.
type KeyGen struct {
	Namespace string
}

// NewKeyGen creates a KeyGen for the given namespace.
func NewKeyGen(namespace string) *KeyGen {
	return &KeyGen{Namespace: namespace}
}

// Bookmarks returns the hash key holding name -> path for the namespace.
// e.g., pathkit:main:bookmarks
func (k *KeyGen) Bookmarks() string {
	return fmt.Sprintf("pathkit:%s:bookmarks", k.Namespace)
}

// NamespacePattern returns a SCAN pattern to discover all namespaces.
func NamespacePattern() string {
	return "pathkit:*:bookmarks"
}

// NamespaceFromKey extracts the namespace from a bookmarks key.
// Returns "" if the key does not match NamespacePattern.
func NamespaceFromKey(key string) string {
	rest, ok := strings.CutPrefix(key, "pathkit:")
	if !ok {
		return ""
	}
	ns, ok := strings.CutSuffix(rest, ":bookmarks")
	if !ok {
		return ""
	}
	return ns
}
