package cmd

import (
	"context"
	"fmt"
)

var commandHelp = map[string]string{
	"join":      "join [seg...]             Join segments with single separators",
	"basename":  "basename path             Last element of path",
	"dirname":   "dirname path              All but the last element of path",
	"normalize": "normalize path            Clean . and .. and repeated slashes",
	"resolve":   "resolve [path]            Absolute path relative to cwd",
	"split":     "split path                Parent directory and base name",
	"pwd":       "pwd                       Print working directory",
	"cd":        "cd [path]                 Change directory (cd - for previous)",
	"mark":      "mark list|set|rm|show|tree  Bookmark management",
	"ns":        "ns list|switch|info       Bookmark namespaces",
	"help":      "help [command]            Show this help",
	"clear":     "clear                     Clear the terminal",
	"exit":      "exit / quit               Exit the REPL",
}

func (r *Router) handleHelp(ctx context.Context, args []string) error {
	w := r.Formatter.Writer
	if len(args) > 0 {
		cmd := args[0]
		if help, ok := commandHelp[cmd]; ok {
			fmt.Fprintln(w, help)
		} else {
			fmt.Fprintf(w, "No help available for '%s'\n", cmd)
		}
		return nil
	}

	fmt.Fprintln(w, "pathkit - slash-separated path toolkit")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Path commands:")
	for _, cmd := range []string{"join", "basename", "dirname", "normalize", "resolve", "split", "pwd", "cd"} {
		fmt.Fprintf(w, "  %s\n", commandHelp[cmd])
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Bookmark commands:")
	fmt.Fprintf(w, "  %s\n", commandHelp["mark"])
	fmt.Fprintf(w, "  %s\n", commandHelp["ns"])
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Other:")
	fmt.Fprintf(w, "  %s\n", commandHelp["help"])
	fmt.Fprintf(w, "  %s\n", commandHelp["clear"])
	fmt.Fprintf(w, "  %s\n", commandHelp["exit"])
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Arguments of the form @name or @name/rest expand to bookmarks; @@x is a literal @x.")
	return nil
}
