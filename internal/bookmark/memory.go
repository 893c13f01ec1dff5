package bookmark

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rowantrollope/pathkit/internal/pathutil"
)

// MemoryStore keeps bookmarks in process memory.
type MemoryStore struct {
	mu        sync.RWMutex
	namespace string
	marks     map[string]map[string]string
}

// NewMemoryStore creates an empty in-memory store for namespace.
func NewMemoryStore(namespace string) *MemoryStore {
	return &MemoryStore{
		namespace: namespace,
		marks:     make(map[string]map[string]string),
	}
}

// SetNamespace switches the active namespace.
func (s *MemoryStore) SetNamespace(namespace string) {
	s.mu.Lock()
	s.namespace = namespace
	s.mu.Unlock()
}

// Set stores path under name, replacing any previous value.
func (s *MemoryStore) Set(ctx context.Context, name, path string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ns, ok := s.marks[s.namespace]
	if !ok {
		ns = make(map[string]string)
		s.marks[s.namespace] = ns
	}
	ns[name] = pathutil.CleanAbs(path)
	return nil
}

// Get returns the path stored under name.
func (s *MemoryStore) Get(ctx context.Context, name string) (string, error) {
	s.mu.RLock()
	p, ok := s.marks[s.namespace][name]
	s.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("get %s: %w", name, ErrNotFound)
	}
	return p, nil
}

// Delete removes the bookmark called name.
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ns := s.marks[s.namespace]
	if _, ok := ns[name]; !ok {
		return fmt.Errorf("delete %s: %w", name, ErrNotFound)
	}
	delete(ns, name)
	// Match Redis, where an emptied hash disappears.
	if len(ns) == 0 {
		delete(s.marks, s.namespace)
	}
	return nil
}

// List returns all bookmarks sorted by name.
func (s *MemoryStore) List(ctx context.Context) ([]Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedBookmarks(s.marks[s.namespace]), nil
}

// Namespaces returns every namespace holding at least one bookmark.
func (s *MemoryStore) Namespaces(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	namespaces := make([]string, 0, len(s.marks))
	for ns := range s.marks {
		namespaces = append(namespaces, ns)
	}
	sort.Strings(namespaces)
	return namespaces, nil
}

func sortedBookmarks(m map[string]string) []Bookmark {
	marks := make([]Bookmark, 0, len(m))
	for name, p := range m {
		marks = append(marks, Bookmark{Name: name, Path: p})
	}
	sort.Slice(marks, func(i, j int) bool {
		return marks[i].Name < marks[j].Name
	})
	return marks
}
