package tree

import "strings"

// Find returns the node whose absolute path equals target, descending only
// into directories whose path is a whole-component prefix of target.
func Find(root *Node, target string) *Node {
	if root == nil {
		return nil
	}
	if target == root.path {
		return root
	}

	cur := root
	for {
		var next *Node
		for _, child := range cur.children {
			if child.path == target {
				return child
			}
			if child.dir && strings.HasPrefix(target, strings.TrimSuffix(child.path, "/")+"/") {
				next = child
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
}
