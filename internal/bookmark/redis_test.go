package bookmark

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRedisStore connects to the server named by PATHKIT_TEST_REDIS_URL.
// Tests using it are skipped when the variable is unset.
func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	url := os.Getenv("PATHKIT_TEST_REDIS_URL")
	if url == "" {
		t.Skip("PATHKIT_TEST_REDIS_URL not set")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)

	rdb := redis.NewClient(opts)
	ctx := context.Background()
	require.NoError(t, rdb.Ping(ctx).Err())

	ns := fmt.Sprintf("test-%d", time.Now().UnixNano())
	s := NewRedisStore(rdb, ns)
	t.Cleanup(func() {
		rdb.Del(context.Background(), s.keys.Bookmarks())
		rdb.Close()
	})
	return s
}

func TestRedisStore(t *testing.T) {
	s := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "src", "/home/me/src/"))
	require.NoError(t, s.Set(ctx, "tmp", "tmp"))

	p, err := s.Get(ctx, "src")
	require.NoError(t, err)
	assert.Equal(t, "/home/me/src", p)

	marks, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Bookmark{
		{Name: "src", Path: "/home/me/src"},
		{Name: "tmp", Path: "/tmp"},
	}, marks)

	require.NoError(t, s.Delete(ctx, "tmp"))
	_, err = s.Get(ctx, "tmp")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "tmp"), ErrNotFound)

	namespaces, err := s.Namespaces(ctx)
	require.NoError(t, err)
	assert.Contains(t, namespaces, s.Namespace)
}

func TestRedisStoreSetNamespace(t *testing.T) {
	s := newTestRedisStore(t)
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "a", "/a"))

	orig := s.Namespace
	s.SetNamespace(orig + "-other")

	_, err := s.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)

	s.SetNamespace(orig)
	p, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "/a", p)
}
