package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rowantrollope/pathkit/internal/bookmark"
	"github.com/rowantrollope/pathkit/internal/config"
	"github.com/rowantrollope/pathkit/internal/output"
	"github.com/rowantrollope/pathkit/internal/pathutil"
)

// State holds the current session state.
type State struct {
	Cwd       string
	PrevDir   string
	Namespace string
}

// Router dispatches commands to the appropriate handler.
type Router struct {
	Store     bookmark.Namespaced
	Config    *config.Config
	Formatter *output.Formatter
	Logger    *slog.Logger
	State     *State
	handlers  map[string]Handler
}

// Handler is a function that handles a command.
type Handler func(ctx context.Context, args []string) error

// NewRouter creates a command router with all registered handlers.
func NewRouter(store bookmark.Namespaced, cfg *config.Config, formatter *output.Formatter, logger *slog.Logger) *Router {
	r := &Router{
		Store:     store,
		Config:    cfg,
		Formatter: formatter,
		Logger:    logger,
		State: &State{
			Cwd:       pathutil.CleanAbs(cfg.Cwd),
			Namespace: cfg.Namespace,
		},
		handlers: make(map[string]Handler),
	}
	r.registerHandlers()
	return r
}

func (r *Router) registerHandlers() {
	r.handlers["join"] = r.handleJoin
	r.handlers["basename"] = r.handleBasename
	r.handlers["dirname"] = r.handleDirname
	r.handlers["normalize"] = r.handleNormalize
	r.handlers["resolve"] = r.handleResolve
	r.handlers["split"] = r.handleSplit
	r.handlers["pwd"] = r.handlePwd
	r.handlers["cd"] = r.handleCd
	r.handlers["mark"] = r.handleMark
	r.handlers["ns"] = r.handleNs
	r.handlers["help"] = r.handleHelp
	r.handlers["clear"] = r.handleClear
}

// Execute runs a parsed command line.
func (r *Router) Execute(ctx context.Context, line string) error {
	tokens, err := Tokenize(line)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}

	cmd := strings.ToLower(tokens[0])
	args := tokens[1:]

	handler, ok := r.handlers[cmd]
	if !ok {
		return fmt.Errorf("unknown command: %s (try 'help')", tokens[0])
	}
	r.Logger.Debug("dispatch", "command", cmd, "args", args)
	return handler(ctx, args)
}

// IsBuiltin returns true if the command is a built-in command.
func (r *Router) IsBuiltin(cmd string) bool {
	_, ok := r.handlers[strings.ToLower(cmd)]
	return ok
}

// CommandNames returns all registered command names.
func (r *Router) CommandNames() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	return names
}

// ResolvePath resolves a path relative to cwd.
func (r *Router) ResolvePath(path string) string {
	if path == "" {
		return r.State.Cwd
	}
	return pathutil.Resolve(r.State.Cwd, path)
}

// expandArgs replaces @bookmark references in args.
func (r *Router) expandArgs(ctx context.Context, args []string) ([]string, error) {
	out := make([]string, len(args))
	for i, arg := range args {
		expanded, err := bookmark.Expand(ctx, r.Store, arg)
		if err != nil {
			return nil, err
		}
		out[i] = expanded
	}
	return out, nil
}
