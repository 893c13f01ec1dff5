package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rowantrollope/pathkit/internal/bookmark"
)

// treeNode is one path element in a bookmark tree.
type treeNode struct {
	Name     string
	Marks    []string
	Children map[string]*treeNode
}

func newTreeNode(name string) *treeNode {
	return &treeNode{Name: name, Children: make(map[string]*treeNode)}
}

// buildTree arranges bookmark paths under a single "/" root.
func buildTree(marks []bookmark.Bookmark) *treeNode {
	root := newTreeNode("/")
	for _, m := range marks {
		node := root
		for _, part := range strings.Split(m.Path, "/") {
			if part == "" {
				continue
			}
			child, ok := node.Children[part]
			if !ok {
				child = newTreeNode(part)
				node.Children[part] = child
			}
			node = child
		}
		node.Marks = append(node.Marks, m.Name)
	}
	return root
}

func (n *treeNode) sortedChildren() []*treeNode {
	children := make([]*treeNode, 0, len(n.Children))
	for _, c := range n.Children {
		children = append(children, c)
	}
	sort.Slice(children, func(i, j int) bool {
		return children[i].Name < children[j].Name
	})
	return children
}

// PrintBookmarkTree renders bookmark paths with Unicode box-drawing characters.
func (f *Formatter) PrintBookmarkTree(marks []bookmark.Bookmark) error {
	root := buildTree(marks)
	if f.JSON {
		return f.PrintJSON(treeToJSON(root))
	}

	fmt.Fprintln(f.Writer, f.formatNode(root))
	printTreeChildren(f.Writer, f, root, "")
	fmt.Fprintf(f.Writer, "\n%d bookmarks\n", len(marks))
	return nil
}

func (f *Formatter) formatNode(n *treeNode) string {
	if len(n.Marks) == 0 {
		return n.Name
	}
	marks := append([]string(nil), n.Marks...)
	sort.Strings(marks)
	names := make([]string, len(marks))
	for i, m := range marks {
		names[i] = f.FormatBookmarkName("@" + m)
	}
	return n.Name + " [" + strings.Join(names, " ") + "]"
}

func printTreeChildren(w io.Writer, f *Formatter, n *treeNode, prefix string) {
	children := n.sortedChildren()
	for i, child := range children {
		isLast := i == len(children)-1

		connector := "├── "
		childPrefix := "│   "
		if isLast {
			connector = "└── "
			childPrefix = "    "
		}

		fmt.Fprintf(w, "%s%s%s\n", prefix, connector, f.formatNode(child))
		printTreeChildren(w, f, child, prefix+childPrefix)
	}
}

func treeToJSON(n *treeNode) interface{} {
	result := map[string]interface{}{
		"name": n.Name,
	}
	if len(n.Marks) > 0 {
		marks := append([]string(nil), n.Marks...)
		sort.Strings(marks)
		result["bookmarks"] = marks
	}
	if len(n.Children) > 0 {
		children := n.sortedChildren()
		out := make([]interface{}, len(children))
		for i, child := range children {
			out[i] = treeToJSON(child)
		}
		result["children"] = out
	}
	return result
}
