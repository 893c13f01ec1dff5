package cli

import (
	"context"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rowantrollope/pathkit/internal/cmd"
)

var subcommands = map[string][]string{
	"mark": {"list", "rm", "set", "show", "tree"},
	"ns":   {"info", "list", "switch"},
}

// NewCompleter creates a tab completer for the REPL.
func NewCompleter(router *cmd.Router) *Completer {
	return &Completer{router: router}
}

// Completer provides tab completion for the REPL.
type Completer struct {
	router *cmd.Router
}

// Do implements readline.AutoCompleter.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	lineStr := string(line[:pos])
	parts := strings.Fields(lineStr)
	atBoundary := strings.HasSuffix(lineStr, " ") || strings.HasSuffix(lineStr, "\t")

	if len(parts) == 0 || (len(parts) == 1 && !atBoundary) {
		prefix := ""
		if len(parts) == 1 {
			prefix = parts[0]
		}
		return c.completeCommand(prefix), len(prefix)
	}

	partial := ""
	if !atBoundary {
		partial = parts[len(parts)-1]
	}

	// Subcommand position: "mark <TAB>", "ns sw<TAB>"
	argIndex := len(parts) - 1
	if atBoundary {
		argIndex = len(parts)
	}
	if argIndex == 1 {
		if subs, ok := subcommands[strings.ToLower(parts[0])]; ok {
			return completeFrom(subs, partial), len(partial)
		}
	}

	if strings.HasPrefix(partial, "@") && !strings.Contains(partial, "/") {
		return c.completeBookmark(partial), len(partial)
	}
	return nil, 0
}

func (c *Completer) completeCommand(prefix string) [][]rune {
	names := c.router.CommandNames()
	sort.Strings(names)
	return completeFrom(names, strings.ToLower(prefix))
}

// completeBookmark completes "@na" to "@name/".
func (c *Completer) completeBookmark(partial string) [][]rune {
	marks, err := c.router.Store.List(context.Background())
	if err != nil {
		return nil
	}
	prefix := strings.TrimPrefix(partial, "@")

	var candidates [][]rune
	for _, m := range marks {
		if strings.HasPrefix(m.Name, prefix) {
			candidates = append(candidates, []rune(m.Name[len(prefix):]+"/"))
		}
	}
	return candidates
}

// completeFrom returns the suffixes of candidates starting with prefix.
func completeFrom(candidates []string, prefix string) [][]rune {
	var result [][]rune
	for _, cand := range candidates {
		if strings.HasPrefix(cand, prefix) {
			result = append(result, []rune(cand[len(prefix):]+" "))
		}
	}
	return result
}

// Ensure Completer satisfies the readline.AutoCompleter interface.
var _ readline.AutoCompleter = (*Completer)(nil)
