package cli

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowantrollope/pathkit/internal/bookmark"
	"github.com/rowantrollope/pathkit/internal/cmd"
	"github.com/rowantrollope/pathkit/internal/config"
	"github.com/rowantrollope/pathkit/internal/output"
)

func newTestCompleter(t *testing.T) *Completer {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Cwd = "/"
	store := bookmark.NewMemoryStore(cfg.Namespace)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "src", "/src"))
	require.NoError(t, store.Set(ctx, "srv", "/srv"))
	require.NoError(t, store.Set(ctx, "etc", "/etc"))

	f := output.NewFormatter(false, false)
	f.Writer = io.Discard
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCompleter(cmd.NewRouter(store, cfg, f, logger))
}

func complete(c *Completer, line string) ([]string, int) {
	candidates, n := c.Do([]rune(line), len([]rune(line)))
	out := make([]string, len(candidates))
	for i, cand := range candidates {
		out[i] = string(cand)
	}
	sort.Strings(out)
	return out, n
}

func TestCompleteCommand(t *testing.T) {
	c := newTestCompleter(t)

	got, n := complete(c, "jo")
	assert.Equal(t, []string{"in "}, got)
	assert.Equal(t, 2, n)

	got, _ = complete(c, "n")
	assert.Equal(t, []string{"ormalize ", "s "}, got)

	got, n = complete(c, "")
	assert.Len(t, got, len(c.router.CommandNames()))
	assert.Equal(t, 0, n)
}

func TestCompleteSubcommand(t *testing.T) {
	c := newTestCompleter(t)

	got, _ := complete(c, "mark s")
	assert.Equal(t, []string{"et ", "how "}, got)

	got, _ = complete(c, "ns ")
	assert.Equal(t, []string{"info ", "list ", "switch "}, got)
}

func TestCompleteBookmark(t *testing.T) {
	c := newTestCompleter(t)

	got, n := complete(c, "join @sr")
	assert.Equal(t, []string{"c/", "v/"}, got)
	assert.Equal(t, 3, n)

	got, _ = complete(c, "cd @e")
	assert.Equal(t, []string{"tc/"}, got)

	got, _ = complete(c, "join @src/x")
	assert.Empty(t, got)

	got, _ = complete(c, "join plain")
	assert.Empty(t, got)
}
