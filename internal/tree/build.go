package tree

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
)

// Build walks fsys from its root and returns the selection tree. root is the
// absolute path fsys was opened at and becomes the root node's path.
//
// Every file starts unselected and every directory except the root starts
// collapsed. Any listing or stat failure aborts the build.
func Build(fsys fs.FS, root string) (*Node, error) {
	info, err := fs.Stat(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	rootNode := newDir(filepath.Clean(root), "/", nil, 0)
	if err := buildDir(fsys, ".", rootNode); err != nil {
		return nil, err
	}
	rootNode.aggregate()
	return rootNode, nil
}

func buildDir(fsys fs.FS, name string, dir *Node) error {
	entries, err := fs.ReadDir(fsys, name)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", dir.path, err)
	}

	for _, entry := range entries {
		childName := path.Join(name, entry.Name())
		childPath := filepath.Join(dir.path, entry.Name())
		childRel := path.Join(dir.rel, entry.Name())

		if entry.IsDir() {
			child := newDir(childPath, childRel, dir, dir.level+1)
			child.collapsed = true
			if err := buildDir(fsys, childName, child); err != nil {
				return err
			}
			child.aggregate()
			dir.appendChild(child)
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", childPath, err)
		}
		dir.appendChild(newFile(childPath, childRel, dir, dir.level+1, info.Size()))
	}
	return nil
}
