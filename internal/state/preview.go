package state

import (
	parttree "github.com/xieguanglei/ooxml-viewer/internal/parttree"
	xmlfmt "github.com/xieguanglei/ooxml-viewer/internal/xmlfmt"
)

// generatePreview rebuilds the preview for the node under the tree cursor.
// The formatted document and its fold state are kept only while the same
// part stays selected; any selection change starts from scratch.
func (s *AppState) generatePreview() {
	node := s.CurrentNode()
	if node == nil {
		s.Preview = nil
		s.PreviewCursor = 0
		s.PreviewScrollOffset = 0
		s.Focus = FocusTree
		return
	}
	if s.Preview != nil && s.Preview.PartPath == node.Path {
		return
	}

	s.Preview = buildPreview(node)
	s.PreviewCursor = 0
	s.PreviewScrollOffset = 0
	if s.Preview.Kind != PreviewDocument {
		s.Focus = FocusTree
		s.PreviewFullScreen = false
	}
}

func buildPreview(node *parttree.Node) *PreviewData {
	preview := &PreviewData{PartPath: node.Path, Size: node.Size}
	switch {
	case node.IsDir:
		preview.Kind = PreviewDirectory
		preview.DirEntries = node.Children
	case node.Content == nil:
		preview.Kind = PreviewBinary
	case *node.Content == "":
		preview.Kind = PreviewEmpty
	default:
		preview.Kind = PreviewDocument
		preview.Doc = xmlfmt.Format(*node.Content)
	}
	return preview
}
