package cmd

import (
	"context"
	"fmt"
)

func (r *Router) handleCd(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("cd: too many arguments")
	}

	var target string
	switch {
	case len(args) == 0:
		target = "/"
	case args[0] == "-":
		if r.State.PrevDir == "" {
			return fmt.Errorf("cd: OLDPWD not set")
		}
		target = r.State.PrevDir
	default:
		p, err := r.expandArgs(ctx, args)
		if err != nil {
			return fmt.Errorf("cd: %w", err)
		}
		target = r.ResolvePath(p[0])
	}

	r.State.PrevDir = r.State.Cwd
	r.State.Cwd = r.ResolvePath(target)
	return nil
}

func (r *Router) handlePwd(ctx context.Context, args []string) error {
	return r.Formatter.PrintResult("pwd", r.State.Cwd)
}
