package cmd

import (
	"context"
	"fmt"
	"strings"
)

func (r *Router) handleMark(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("mark: usage: mark list|set|rm|show|tree")
	}

	subcmd := strings.ToLower(args[0])
	subargs := args[1:]

	switch subcmd {
	case "list", "ls":
		marks, err := r.Store.List(ctx)
		if err != nil {
			return fmt.Errorf("mark list: %w", err)
		}
		return r.Formatter.PrintBookmarks(marks)
	case "tree":
		marks, err := r.Store.List(ctx)
		if err != nil {
			return fmt.Errorf("mark tree: %w", err)
		}
		return r.Formatter.PrintBookmarkTree(marks)
	case "set":
		return r.markSet(ctx, subargs)
	case "rm":
		if len(subargs) != 1 {
			return fmt.Errorf("mark rm: usage: mark rm name")
		}
		if err := r.Store.Delete(ctx, subargs[0]); err != nil {
			return fmt.Errorf("mark rm: %w", err)
		}
		return nil
	case "show":
		if len(subargs) != 1 {
			return fmt.Errorf("mark show: usage: mark show name")
		}
		p, err := r.Store.Get(ctx, subargs[0])
		if err != nil {
			return fmt.Errorf("mark show: %w", err)
		}
		return r.Formatter.PrintResult("mark", p)
	default:
		return fmt.Errorf("mark: unknown subcommand '%s'", subcmd)
	}
}

func (r *Router) markSet(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("mark set: usage: mark set name [path]")
	}
	name := args[0]
	target := r.State.Cwd
	if len(args) == 2 {
		p, err := r.expandArgs(ctx, args[1:])
		if err != nil {
			return fmt.Errorf("mark set: %w", err)
		}
		target = r.ResolvePath(p[0])
	}
	if err := r.Store.Set(ctx, name, target); err != nil {
		return fmt.Errorf("mark set: %w", err)
	}
	r.Logger.Debug("bookmark set", "namespace", r.State.Namespace, "name", name, "path", target)
	return nil
}
