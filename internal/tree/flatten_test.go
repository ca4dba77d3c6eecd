package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rels(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Rel())
	}
	return out
}

func TestFlatten(t *testing.T) {
	root := buildSample(t)

	assert.Equal(t, []string{"/", "/a", "/d", "/empty", "/z"}, rels(Flatten(root)))

	d := child(t, root, "d")
	d.SetCollapsed(false)
	assert.Equal(t, []string{"/", "/a", "/d", "/d/b", "/d/e", "/empty", "/z"}, rels(Flatten(root)))

	child(t, d, "e").SetCollapsed(false)
	assert.Equal(t, []string{"/", "/a", "/d", "/d/b", "/d/e", "/d/e/c", "/d/e/f", "/empty", "/z"}, rels(Flatten(root)))

	// collapsing an ancestor hides expanded descendants too
	d.SetCollapsed(true)
	assert.Equal(t, []string{"/", "/a", "/d", "/empty", "/z"}, rels(Flatten(root)))

	root.SetCollapsed(true)
	assert.Equal(t, []string{"/"}, rels(Flatten(root)))

	assert.Nil(t, Flatten(nil))
}

func TestSetCollapsedAll(t *testing.T) {
	root := buildSample(t)

	SetCollapsedAll(root, false)
	assert.Len(t, Flatten(root), Count(root))
	assert.False(t, root.Collapsed())

	SetCollapsedAll(root, true)
	assert.Equal(t, []string{"/", "/a", "/d", "/empty", "/z"}, rels(Flatten(root)))
}

func TestSelectedFiles(t *testing.T) {
	root := buildSample(t)
	assert.Empty(t, SelectedFiles(root))

	child(t, root, "z").ToggleSelected()
	child(t, root, "a").ToggleSelected()
	assert.Equal(t, []string{"/a", "/z/nested", "/z/other.t"}, SelectedFiles(root))
}

func TestWalkSkipsChildren(t *testing.T) {
	root := buildSample(t)
	var seen []string
	Walk(root, func(n *Node) bool {
		seen = append(seen, n.Rel())
		return n.Rel() != "/d"
	})
	assert.NotContains(t, seen, "/d/b")
	assert.Contains(t, seen, "/z/nested")
}
