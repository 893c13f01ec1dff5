package cmd

import (
	"context"
	"fmt"

	"github.com/rowantrollope/pathkit/internal/pathutil"
)

func (r *Router) handleJoin(ctx context.Context, args []string) error {
	segments, err := r.expandArgs(ctx, args)
	if err != nil {
		return fmt.Errorf("join: %w", err)
	}
	return r.Formatter.PrintResult("join", pathutil.Join(segments...))
}

func (r *Router) handleBasename(ctx context.Context, args []string) error {
	return r.unary(ctx, "basename", args, pathutil.Basename)
}

func (r *Router) handleDirname(ctx context.Context, args []string) error {
	return r.unary(ctx, "dirname", args, pathutil.Dirname)
}

func (r *Router) handleNormalize(ctx context.Context, args []string) error {
	return r.unary(ctx, "normalize", args, pathutil.Normalize)
}

// unary runs a single-path function over the expanded argument.
func (r *Router) unary(ctx context.Context, name string, args []string, fn func(string) string) error {
	if len(args) != 1 {
		return fmt.Errorf("%s: usage: %s path", name, name)
	}
	p, err := r.expandArgs(ctx, args)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return r.Formatter.PrintResult(name, fn(p[0]))
}

func (r *Router) handleResolve(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("resolve: usage: resolve [path]")
	}
	p, err := r.expandArgs(ctx, args)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}
	target := ""
	if len(p) == 1 {
		target = p[0]
	}
	return r.Formatter.PrintResult("resolve", r.ResolvePath(target))
}

func (r *Router) handleSplit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("split: usage: split path")
	}
	p, err := r.expandArgs(ctx, args)
	if err != nil {
		return fmt.Errorf("split: %w", err)
	}
	dir, base := pathutil.Split(r.ResolvePath(p[0]))
	return r.Formatter.PrintSplit(dir, base)
}
