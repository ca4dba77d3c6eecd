package tree

// Flatten returns the visible nodes depth-first, parents before children.
// Children of a collapsed directory are skipped, including the root's.
func Flatten(root *Node) []*Node {
	if root == nil {
		return nil
	}
	out := make([]*Node, 0, len(root.children)+1)
	return flatten(root, out)
}

func flatten(n *Node, out []*Node) []*Node {
	out = append(out, n)
	if !n.dir || n.collapsed {
		return out
	}
	for _, child := range n.children {
		out = flatten(child, out)
	}
	return out
}

// Walk visits every node depth-first in tree order, ignoring collapse state.
// Returning false from fn skips the node's children.
func Walk(root *Node, fn func(*Node) bool) {
	if root == nil {
		return
	}
	if !fn(root) {
		return
	}
	for _, child := range root.children {
		Walk(child, fn)
	}
}

// SetCollapsedAll collapses or expands every directory below root. The root
// itself is left untouched so its children stay visible.
func SetCollapsedAll(root *Node, collapsed bool) {
	for _, child := range root.Children() {
		Walk(child, func(n *Node) bool {
			n.SetCollapsed(collapsed)
			return true
		})
	}
}

// SelectedFiles returns the relative paths of every selected file.
func SelectedFiles(root *Node) []string {
	var out []string
	Walk(root, func(n *Node) bool {
		if !n.dir && n.selected {
			out = append(out, n.rel)
		}
		return true
	})
	return out
}

// Count returns the number of nodes in the tree, root included.
func Count(root *Node) int {
	total := 0
	Walk(root, func(*Node) bool {
		total++
		return true
	})
	return total
}
