package parttree

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/xieguanglei/ooxml-viewer/internal/archive"
)

// Node is one member of the part hierarchy. The root is a synthetic
// directory with an empty path; intermediate directories the package never
// lists explicitly are synthesized during Build.
type Node struct {
	Name     string
	Path     string
	IsDir    bool
	Size     uint64
	Content  *string
	Children []*Node
}

type builder struct {
	root  *Node
	nodes map[string]*Node
}

// Build assembles the part hierarchy for a package listing. Entries are
// processed in stable lexicographic path order so ancestor synthesis is
// deterministic; a path resolves to at most one node and duplicates keep
// the first node created. Children are ordered directories first, then by
// locale-aware name comparison.
func Build(entries []archive.Entry) *Node {
	b := &builder{
		root:  &Node{IsDir: true},
		nodes: make(map[string]*Node, len(entries)+1),
	}
	b.nodes[""] = b.root

	sorted := make([]archive.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	for _, entry := range sorted {
		if entry.Path == "" {
			continue
		}
		if entry.IsDir {
			b.ensureDir(entry.Path)
			continue
		}
		if _, exists := b.nodes[entry.Path]; exists {
			continue
		}
		parent := b.ensureDir(parentPath(entry.Path))
		node := &Node{
			Name:    baseName(entry.Path),
			Path:    entry.Path,
			Size:    entry.Size,
			Content: entry.Content,
		}
		b.nodes[entry.Path] = node
		parent.Children = append(parent.Children, node)
	}

	sortChildren(b.root, collate.New(language.Und))
	return b.root
}

// ensureDir returns the node at path, creating it (and any missing
// ancestors) as a directory when absent. An existing node is reused as-is
// even when the package also lists a file at the same path.
func (b *builder) ensureDir(path string) *Node {
	if node, ok := b.nodes[path]; ok {
		return node
	}
	parent := b.ensureDir(parentPath(path))
	node := &Node{
		Name:  baseName(path),
		Path:  path,
		IsDir: true,
	}
	b.nodes[path] = node
	parent.Children = append(parent.Children, node)
	return node
}

func parentPath(path string) string {
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		return path[:idx]
	}
	return ""
}

func baseName(path string) string {
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

func sortChildren(node *Node, coll *collate.Collator) {
	sort.SliceStable(node.Children, func(i, j int) bool {
		a, b := node.Children[i], node.Children[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return coll.CompareString(a.Name, b.Name) < 0
	})
	for _, child := range node.Children {
		sortChildren(child, coll)
	}
}

// Find resolves a path in the part hierarchy (recursive).
func Find(root *Node, path string) *Node {
	if root == nil {
		return nil
	}
	if root.Path == path {
		return root
	}
	for _, child := range root.Children {
		if found := Find(child, path); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits every node depth-first in display order, root included.
func Walk(root *Node, fn func(*Node)) {
	if root == nil {
		return
	}
	fn(root)
	for _, child := range root.Children {
		Walk(child, fn)
	}
}

// Count counts all nodes in the hierarchy, root included.
func Count(root *Node) int {
	if root == nil {
		return 0
	}
	count := 1
	for _, child := range root.Children {
		count += Count(child)
	}
	return count
}

// FileCount counts the non-directory nodes in the hierarchy.
func FileCount(root *Node) int {
	count := 0
	Walk(root, func(n *Node) {
		if !n.IsDir {
			count++
		}
	})
	return count
}
