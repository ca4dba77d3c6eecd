// Package tree models a filesystem snapshot as a selection tree with
// aggregated size and selection state.
package tree

import (
	"path"

	"github.com/chmouel/lazyfilter/internal/utils"
)

// Node is one filesystem entry in the selection tree.
//
// Directory nodes derive selected and size from their children. Any change to
// a node is propagated up the parent chain before the mutating call returns.
type Node struct {
	path     string
	rel      string
	parent   *Node // non-owning, used only to recompute aggregates
	children []*Node
	level    int
	dir      bool

	collapsed bool
	selected  bool
	fileSize  int64
	size      int64
}

func newFile(p, rel string, parent *Node, level int, fileSize int64) *Node {
	return &Node{path: p, rel: rel, parent: parent, level: level, fileSize: fileSize, collapsed: true}
}

func newDir(p, rel string, parent *Node, level int) *Node {
	return &Node{path: p, rel: rel, parent: parent, level: level, dir: true, children: []*Node{}, selected: true}
}

// Path returns the absolute path of the entry.
func (n *Node) Path() string { return n.path }

// Rel returns the path relative to the browse root, starting with "/".
// The root itself returns "/".
func (n *Node) Rel() string { return n.rel }

// Name returns the last path element.
func (n *Node) Name() string {
	if n.parent == nil {
		return n.path
	}
	return path.Base(n.rel)
}

// Parent returns the owning directory, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the directory entries in listing order. Files return nil.
func (n *Node) Children() []*Node { return n.children }

// Level is the depth from the root.
func (n *Node) Level() int { return n.level }

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool { return n.dir }

// Collapsed reports whether the children are hidden from the flattened view.
// Files are always collapsed.
func (n *Node) Collapsed() bool { return n.collapsed }

// SetCollapsed changes only what Flatten emits; files ignore it.
func (n *Node) SetCollapsed(collapsed bool) {
	if !n.dir {
		return
	}
	n.collapsed = collapsed
}

// Selected reports the selection state. For a directory it is true when every
// child is selected, which holds vacuously for an empty directory.
func (n *Node) Selected() bool { return n.selected }

// Size is the selected byte count of the subtree.
func (n *Node) Size() int64 { return n.size }

// FileSize is the on-disk length of a file regardless of selection.
func (n *Node) FileSize() int64 { return n.fileSize }

// SizeLabel formats Size for display.
func (n *Node) SizeLabel() string { return utils.SizeLabel(n.size) }

// ToggleSelected flips the selection. On a directory the opposite of the
// current derived value is assigned to every file below it.
func (n *Node) ToggleSelected() {
	n.SetSelected(!n.selected)
}

// SetSelected assigns v to a file, or to every file below a directory.
func (n *Node) SetSelected(v bool) {
	n.assign(v)
	if n.parent != nil {
		n.parent.refresh()
	}
}

// SelectedBelow reports whether the node or any descendant is selected. An
// empty directory is vacuously selected, so it reports true.
func (n *Node) SelectedBelow() bool {
	if n.selected {
		return true
	}
	for _, child := range n.children {
		if child.SelectedBelow() {
			return true
		}
	}
	return false
}

// assign sets the subtree without notifying ancestors, recomputing the
// aggregates of every directory it passes on the way back up.
func (n *Node) assign(v bool) {
	if !n.dir {
		n.selected = v
		n.size = 0
		if v {
			n.size = n.fileSize
		}
		return
	}
	for _, child := range n.children {
		child.assign(v)
	}
	n.aggregate()
}

func (n *Node) aggregate() {
	selected := true
	var size int64
	for _, child := range n.children {
		selected = selected && child.selected
		size += child.size
	}
	n.selected = selected
	n.size = size
}

// refresh recomputes this directory and every ancestor.
func (n *Node) refresh() {
	for cur := n; cur != nil; cur = cur.parent {
		cur.aggregate()
	}
}

func (n *Node) appendChild(child *Node) {
	n.children = append(n.children, child)
}
