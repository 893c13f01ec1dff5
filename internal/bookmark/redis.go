package bookmark

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
	"github.com/rowantrollope/pathkit/internal/pathutil"
)

// RedisStore keeps one namespace's bookmarks in a Redis hash.
type RedisStore struct {
	rdb       *redis.Client
	keys      *KeyGen
	Namespace string
}

// NewRedisStore creates a store for namespace backed by rdb.
func NewRedisStore(rdb *redis.Client, namespace string) *RedisStore {
	return &RedisStore{
		rdb:       rdb,
		keys:      NewKeyGen(namespace),
		Namespace: namespace,
	}
}

// SetNamespace switches the active namespace.
func (s *RedisStore) SetNamespace(namespace string) {
	s.Namespace = namespace
	s.keys = NewKeyGen(namespace)
}

// Redis returns the underlying Redis client.
func (s *RedisStore) Redis() *redis.Client {
	return s.rdb
}

// Set stores path under name, replacing any previous value.
func (s *RedisStore) Set(ctx context.Context, name, path string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := s.rdb.HSet(ctx, s.keys.Bookmarks(), name, pathutil.CleanAbs(path)).Err(); err != nil {
		return fmt.Errorf("set %s: %w", name, err)
	}
	return nil
}

// Get returns the path stored under name.
func (s *RedisStore) Get(ctx context.Context, name string) (string, error) {
	p, err := s.rdb.HGet(ctx, s.keys.Bookmarks(), name).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("get %s: %w", name, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", name, err)
	}
	return p, nil
}

// Delete removes the bookmark called name.
func (s *RedisStore) Delete(ctx context.Context, name string) error {
	n, err := s.rdb.HDel(ctx, s.keys.Bookmarks(), name).Result()
	if err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("delete %s: %w", name, ErrNotFound)
	}
	return nil
}

// List returns all bookmarks sorted by name.
func (s *RedisStore) List(ctx context.Context) ([]Bookmark, error) {
	m, err := s.rdb.HGetAll(ctx, s.keys.Bookmarks()).Result()
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return sortedBookmarks(m), nil
}

// Namespaces discovers every namespace holding at least one bookmark.
func (s *RedisStore) Namespaces(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var namespaces []string
	var cursor uint64
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, NamespacePattern(), 100).Result()
		if err != nil {
			return nil, fmt.Errorf("namespaces: %w", err)
		}
		for _, key := range keys {
			// SCAN may return a key more than once
			ns := NamespaceFromKey(key)
			if ns == "" || seen[ns] {
				continue
			}
			seen[ns] = true
			namespaces = append(namespaces, ns)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	sort.Strings(namespaces)
	return namespaces, nil
}
