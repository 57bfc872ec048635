package state

import (
	"strings"
	"unicode"

	parttree "github.com/xieguanglei/ooxml-viewer/internal/parttree"
)

// rebuildRows recomputes the flattened display rows for the tree panel. In
// filter mode the rows are a flat list of matching file parts; otherwise the
// hierarchy is walked respecting the expanded-directory set.
func (s *AppState) rebuildRows() {
	s.Rows = s.Rows[:0]
	if s.Root == nil {
		s.clampSelection()
		return
	}

	query := strings.TrimSpace(s.FilterQuery)
	if s.FilterActive && query != "" {
		caseSensitive := queryHasUppercase(query)
		needle := query
		if !caseSensitive {
			needle = strings.ToLower(needle)
		}
		parttree.Walk(s.Root, func(n *parttree.Node) {
			if n.IsDir {
				return
			}
			haystack := n.Path
			if !caseSensitive {
				haystack = strings.ToLower(haystack)
			}
			if strings.Contains(haystack, needle) {
				s.Rows = append(s.Rows, Row{Node: n})
			}
		})
		s.clampSelection()
		return
	}

	s.appendRows(s.Root, 0)
	s.clampSelection()
}

func (s *AppState) appendRows(node *parttree.Node, depth int) {
	for _, child := range node.Children {
		expanded := child.IsDir && s.Expanded[child.Path]
		s.Rows = append(s.Rows, Row{Node: child, Depth: depth, Expanded: expanded})
		if expanded {
			s.appendRows(child, depth+1)
		}
	}
}

// queryHasUppercase drives smart-case matching: an all-lowercase query is
// case-insensitive.
func queryHasUppercase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
