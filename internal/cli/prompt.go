package cli

import (
	"fmt"

	"github.com/rowantrollope/pathkit/internal/config"
	"github.com/rowantrollope/pathkit/internal/pathutil"
)

const (
	maxPromptPathLen = 30
	elided           = "/..."
)

// BuildPrompt generates the dynamic prompt string.
// Format: pathkit:namespace:path> with the store appended to "pathkit"
// when bookmarks are not kept in memory, e.g. pathkit+redis:main:/srv>
func BuildPrompt(store, namespace, cwd string, color bool) string {
	label := "pathkit"
	if store != "" && store != config.StoreMemory {
		label += "+" + store
	}
	prompt := fmt.Sprintf("%s:%s:%s>", label, namespace, truncatePath(cwd, maxPromptPathLen))
	if color {
		return "\033[32m" + prompt + "\033[0m "
	}
	return prompt + " "
}

// truncatePath keeps the last two elements of an absolute path, or just the
// last one, when the path is longer than maxLen.
// e.g., /very/long/nested/path → /.../nested/path
func truncatePath(p string, maxLen int) string {
	if len(p) <= maxLen {
		return p
	}

	dir, base := pathutil.Split(p)
	if pathutil.IsRoot(dir) {
		return p
	}

	if short := pathutil.Join(elided, pathutil.Basename(dir), base); len(short) <= maxLen {
		return short
	}
	return pathutil.Join(elided, base)
}
