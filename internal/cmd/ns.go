package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/rowantrollope/pathkit/internal/bookmark"
)

func (r *Router) handleNs(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("ns: usage: ns list|switch|info")
	}

	subcmd := strings.ToLower(args[0])
	subargs := args[1:]

	switch subcmd {
	case "list":
		return r.nsList(ctx)
	case "switch":
		if len(subargs) == 0 {
			return fmt.Errorf("ns switch: missing namespace name")
		}
		return r.nsSwitch(subargs[0])
	case "info":
		return r.nsInfo()
	default:
		return fmt.Errorf("ns: unknown subcommand '%s'", subcmd)
	}
}

func (r *Router) nsList(ctx context.Context) error {
	namespaces, err := r.Store.Namespaces(ctx)
	if err != nil {
		return err
	}

	// The current namespace exists even before its first bookmark.
	found := false
	for _, ns := range namespaces {
		if ns == r.State.Namespace {
			found = true
			break
		}
	}
	if !found {
		namespaces = append(namespaces, r.State.Namespace)
	}

	return r.Formatter.PrintNamespaces(namespaces, r.State.Namespace)
}

func (r *Router) nsSwitch(name string) error {
	if err := bookmark.ValidateName(name); err != nil {
		return fmt.Errorf("ns switch: %w", err)
	}
	r.Store.SetNamespace(name)
	r.State.Namespace = name
	r.Logger.Debug("namespace switched", "namespace", name)
	return nil
}

func (r *Router) nsInfo() error {
	if r.Formatter.JSON {
		return r.Formatter.PrintJSON(map[string]string{
			"namespace": r.State.Namespace,
			"cwd":       r.State.Cwd,
			"store":     r.Config.Store,
		})
	}

	r.Formatter.Printf("Namespace: %s\n", r.State.Namespace)
	r.Formatter.Printf("CWD:       %s\n", r.State.Cwd)
	r.Formatter.Printf("Store:     %s\n", r.Config.Store)
	return nil
}
