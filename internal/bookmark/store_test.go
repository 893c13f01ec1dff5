package bookmark

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"home", false},
		{"src-2", false},
		{"a.b_c", false},
		{"", true},
		{"@home", true},
		{"a/b", true},
		{"a b", true},
		{"tab\there", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore("main")

	require.NoError(t, s.Set(ctx, "src", "/home/me/src/"))
	require.NoError(t, s.Set(ctx, "etc", "etc"))

	p, err := s.Get(ctx, "src")
	require.NoError(t, err)
	assert.Equal(t, "/home/me/src", p)

	p, err = s.Get(ctx, "etc")
	require.NoError(t, err)
	assert.Equal(t, "/etc", p)

	marks, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Bookmark{
		{Name: "etc", Path: "/etc"},
		{Name: "src", Path: "/home/me/src"},
	}, marks)

	require.NoError(t, s.Delete(ctx, "etc"))
	_, err = s.Get(ctx, "etc")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "etc"), ErrNotFound)

	assert.Error(t, s.Set(ctx, "bad name", "/x"))
}

func TestMemoryStoreEmptyList(t *testing.T) {
	marks, err := NewMemoryStore("main").List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, marks)
}

func TestExpandInvalidName(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore("main")
	require.NoError(t, s.Set(ctx, "root", "/"))

	for _, arg := range []string{"@", "@/x", "@bad name"} {
		_, err := Expand(ctx, s, arg)
		require.Error(t, err, arg)
		assert.Contains(t, err.Error(), "invalid bookmark name", arg)
		assert.NotErrorIs(t, err, ErrNotFound, arg)
	}

	got, err := Expand(ctx, s, "@root/")
	require.NoError(t, err)
	assert.Equal(t, "/", got)
}

func TestMemoryStoreNamespaces(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore("main")
	require.NoError(t, s.Set(ctx, "a", "/a"))

	s.SetNamespace("work")
	_, err := s.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, s.Set(ctx, "b", "/b"))

	namespaces, err := s.Namespaces(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"main", "work"}, namespaces)

	require.NoError(t, s.Delete(ctx, "b"))
	namespaces, err = s.Namespaces(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"main"}, namespaces)

	s.SetNamespace("main")
	p, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "/a", p)
}

func TestExpand(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore("main")
	require.NoError(t, s.Set(ctx, "src", "/home/me/src"))

	tests := []struct {
		arg     string
		want    string
		wantErr error
	}{
		{"plain", "plain", nil},
		{"/abs/path", "/abs/path", nil},
		{"", "", nil},
		{"@src", "/home/me/src", nil},
		{"@src/pkg/x.go", "/home/me/src/pkg/x.go", nil},
		{"@src/", "/home/me/src/", nil},
		{"@@src", "@src", nil},
		{"@missing", "", ErrNotFound},
		{"@missing/x", "", ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := Expand(ctx, s, tt.arg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
