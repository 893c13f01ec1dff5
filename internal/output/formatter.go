package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rowantrollope/pathkit/internal/bookmark"
)

// Formatter handles text/JSON/colored output.
type Formatter struct {
	Writer    io.Writer
	ErrWriter io.Writer
	JSON      bool
	Color     bool
}

// NewFormatter creates a new output formatter.
func NewFormatter(jsonMode, colorMode bool) *Formatter {
	return &Formatter{
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		JSON:      jsonMode,
		Color:     colorMode,
	}
}

// Printf prints formatted text to stdout.
func (f *Formatter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(f.Writer, format, args...)
}

// Println prints a line to stdout.
func (f *Formatter) Println(args ...interface{}) {
	fmt.Fprintln(f.Writer, args...)
}

// Errorf prints a formatted error message to stderr.
func (f *Formatter) Errorf(format string, args ...interface{}) {
	if f.Color {
		c := color.New(color.FgRed)
		c.Fprintf(f.ErrWriter, format, args...)
	} else {
		fmt.Fprintf(f.ErrWriter, format, args...)
	}
}

// PrintJSON outputs a value as JSON.
func (f *Formatter) PrintJSON(v interface{}) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatPath colors directory-looking paths (root or trailing slash).
func (f *Formatter) FormatPath(p string) string {
	if f.Color && strings.HasSuffix(p, "/") {
		return color.New(color.FgBlue, color.Bold).Sprint(p)
	}
	return p
}

// FormatBookmarkName formats a bookmark name with color.
func (f *Formatter) FormatBookmarkName(name string) string {
	if f.Color {
		return color.New(color.FgCyan).Sprint(name)
	}
	return name
}

// PrintResult prints the single path produced by a command.
func (f *Formatter) PrintResult(command, value string) error {
	if f.JSON {
		return f.PrintJSON(map[string]string{
			"command": command,
			"result":  value,
		})
	}
	fmt.Fprintln(f.Writer, f.FormatPath(value))
	return nil
}

// PrintSplit prints the directory and base name of a path.
func (f *Formatter) PrintSplit(dir, base string) error {
	if f.JSON {
		return f.PrintJSON(map[string]string{
			"dir":  dir,
			"base": base,
		})
	}
	fmt.Fprintf(f.Writer, " Dir: %s\n", f.FormatPath(dir))
	fmt.Fprintf(f.Writer, "Base: %s\n", base)
	return nil
}

// --- bookmark output ---

// PrintBookmarks prints bookmarks as aligned "name -> path" lines.
func (f *Formatter) PrintBookmarks(marks []bookmark.Bookmark) error {
	if f.JSON {
		if marks == nil {
			marks = []bookmark.Bookmark{}
		}
		return f.PrintJSON(marks)
	}

	width := 0
	for _, m := range marks {
		width = max(width, len(m.Name))
	}
	for _, m := range marks {
		pad := strings.Repeat(" ", width-len(m.Name))
		fmt.Fprintf(f.Writer, "%s%s -> %s\n", f.FormatBookmarkName(m.Name), pad, m.Path)
	}
	return nil
}

// PrintNamespaces lists namespaces, marking the current one.
func (f *Formatter) PrintNamespaces(namespaces []string, current string) error {
	if f.JSON {
		return f.PrintJSON(map[string]interface{}{
			"current":    current,
			"namespaces": namespaces,
		})
	}

	for _, ns := range namespaces {
		marker := "  "
		if ns == current {
			marker = "* "
		}
		fmt.Fprintf(f.Writer, "%s%s\n", marker, ns)
	}
	return nil
}
