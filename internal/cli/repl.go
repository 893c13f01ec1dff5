package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rowantrollope/pathkit/internal/cmd"
)

// REPL is the interactive read-eval-print loop.
type REPL struct {
	Router *cmd.Router
}

// NewREPL creates a new REPL instance.
func NewREPL(router *cmd.Router) *REPL {
	return &REPL{Router: router}
}

func (r *REPL) prompt() string {
	state := r.Router.State
	return BuildPrompt(r.Router.Config.Store, state.Namespace, state.Cwd, r.Router.Formatter.Color)
}

// Run starts the interactive REPL loop.
func (r *REPL) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.prompt(),
		HistoryFile:     r.Router.Config.HistoryFile,
		HistoryLimit:    10000,
		AutoComplete:    NewCompleter(r.Router),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer rl.Close()

	r.Router.Logger.Debug("repl started", "history", r.Router.Config.HistoryFile)
	defer r.Router.Logger.Debug("repl stopped")

	for {
		// cwd and namespace may have changed
		rl.SetPrompt(r.prompt())

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		if lower == "exit" || lower == "quit" {
			return nil
		}

		if execErr := r.Router.Execute(ctx, line); execErr != nil {
			r.Router.Formatter.Errorf("%s\n", execErr)
		}
	}
}
