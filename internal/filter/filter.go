// Package filter reads and writes selection lists as rsync filter rules.
//
// A list is a sequence of "+ /relative/path" inclusion lines terminated by a
// "- *" catch-all exclusion. Directories that hold selected entries are
// emitted with a trailing slash so rsync descends into them.
package filter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chmouel/lazyfilter/internal/log"
	"github.com/chmouel/lazyfilter/internal/tree"
)

const (
	includePrefix = "+"
	// ExcludeAll is the rule closing every emitted list.
	ExcludeAll = "- *"
)

// Rules walks the whole tree, ignoring collapse state, and returns the
// filter rules for the current selection.
func Rules(root *tree.Node) []string {
	rules := []string{}
	if root != nil {
		for _, child := range root.Children() {
			rules = appendRules(rules, child)
		}
	}
	return append(rules, ExcludeAll)
}

func appendRules(rules []string, n *tree.Node) []string {
	if !n.IsDir() {
		if n.Selected() {
			rules = append(rules, includePrefix+" "+n.Rel())
		}
		return rules
	}
	if !n.SelectedBelow() {
		return rules
	}
	rules = append(rules, includePrefix+" "+n.Rel()+"/")
	for _, child := range n.Children() {
		rules = appendRules(rules, child)
	}
	return rules
}

// Write prints one rule per line.
func Write(w io.Writer, rules []string) error {
	bw := bufio.NewWriter(w)
	for _, rule := range rules {
		if _, err := bw.WriteString(rule + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Parse returns the path of every inclusion rule in r. A rule is a "+" token
// followed by at least one more token; those are rejoined with single spaces.
// Every other line is ignored.
func Parse(r io.Reader) ([]string, error) {
	var paths []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || fields[0] != includePrefix {
			continue
		}
		paths = append(paths, strings.Join(fields[1:], " "))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read filter rules: %w", err)
	}
	return paths, nil
}

// Apply selects every file named by paths. Directory entries are skipped and
// paths that match nothing are only logged.
func Apply(root *tree.Node, paths []string) (matched, missed int) {
	if root == nil {
		return 0, len(paths)
	}
	base := strings.TrimRight(root.Path(), "/")
	for _, p := range paths {
		target := base + "/" + strings.Trim(p, "/")
		target = strings.TrimRight(target, "/")
		if target == "" {
			target = "/"
		}

		node := tree.Find(root, target)
		switch {
		case node == nil:
			missed++
			log.Printf("filter: no entry for %q", p)
		case node.IsDir():
		default:
			node.SetSelected(true)
			matched++
		}
	}
	return matched, missed
}

// LoadFile parses the rules stored at path and applies them to root.
func LoadFile(path string, root *tree.Node) (matched, missed int, err error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return 0, 0, fmt.Errorf("open filter file: %w", err)
	}
	defer func() { _ = f.Close() }()

	paths, err := Parse(f)
	if err != nil {
		return 0, 0, err
	}
	matched, missed = Apply(root, paths)
	log.Printf("filter: loaded %s (%d matched, %d missed)", path, matched, missed)
	return matched, missed, nil
}
