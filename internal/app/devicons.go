package app

import (
	"os"
	"time"

	devicons "github.com/epilande/go-devicons"

	"github.com/chmouel/lazyfilter/internal/tree"
)

// nodeInfo presents a tree node as the os.FileInfo devicons expects.
type nodeInfo struct {
	node *tree.Node
}

func (i nodeInfo) Name() string { return i.node.Name() }

func (i nodeInfo) Size() int64 { return i.node.FileSize() }

func (i nodeInfo) Mode() os.FileMode {
	if i.node.IsDir() {
		return os.ModeDir | 0o755
	}
	return 0o644
}

func (i nodeInfo) ModTime() time.Time { return time.Time{} }

func (i nodeInfo) IsDir() bool { return i.node.IsDir() }

func (i nodeInfo) Sys() any { return nil }

func iconForNode(n *tree.Node) string {
	if n == nil || n.Name() == "" {
		return ""
	}
	return devicons.IconForInfo(nodeInfo{node: n}).Icon
}
