package state

import (
	parttree "github.com/xieguanglei/ooxml-viewer/internal/parttree"
	xmlfmt "github.com/xieguanglei/ooxml-viewer/internal/xmlfmt"
)

// ===== STATE DEFINITIONS =====

// FocusArea marks which pane receives navigation keys.
type FocusArea int

const (
	FocusTree FocusArea = iota
	FocusPreview
)

// PreviewKind discriminates what the preview pane shows.
type PreviewKind int

const (
	PreviewNone PreviewKind = iota
	PreviewDocument
	PreviewDirectory
	PreviewBinary // no preview available
	PreviewEmpty  // part exists but has no content
)

// PreviewData holds the preview for the selected part. It is rebuilt from
// scratch whenever a different part is selected; fold state never survives a
// selection change.
type PreviewData struct {
	Kind       PreviewKind
	PartPath   string
	Size       uint64
	Doc        *xmlfmt.Document
	DirEntries []*parttree.Node
}

// Row is one visible line of the tree panel.
type Row struct {
	Node     *parttree.Node
	Depth    int
	Expanded bool
}

// AppState is the single source of truth
type AppState struct {
	// Package
	PackagePath string
	Root        *parttree.Node
	PartCount   int

	// Tree panel
	Rows          []Row
	Expanded      map[string]bool
	SelectedIndex int
	ScrollOffset  int

	// Filtering
	FilterActive bool
	FilterQuery  string

	// Preview panel
	Focus               FocusArea
	Preview             *PreviewData
	PreviewCursor       int // index into the document's visible-line list
	PreviewScrollOffset int
	PreviewFullScreen   bool

	// View
	ShowSizes     bool
	TreeWidth     int
	HelpVisible   bool
	LastError     error
	StatusMessage string // transient, cleared by the next action

	// Dimensions
	ScreenWidth  int
	ScreenHeight int
}

// ===== HELPER METHODS =====

// CurrentNode returns the node under the tree cursor, or nil.
func (s *AppState) CurrentNode() *parttree.Node {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Rows) {
		return nil
	}
	return s.Rows[s.SelectedIndex].Node
}

// SelectedPath returns the path of the node under the tree cursor.
func (s *AppState) SelectedPath() string {
	if node := s.CurrentNode(); node != nil {
		return node.Path
	}
	return ""
}

// PreviewDoc returns the formatted document currently previewed, or nil.
func (s *AppState) PreviewDoc() *xmlfmt.Document {
	if s.Preview == nil {
		return nil
	}
	return s.Preview.Doc
}

// viewportLines is the number of content rows between the header and the
// status area.
func (s *AppState) viewportLines() int {
	lines := s.ScreenHeight - 3
	if lines < 1 {
		lines = 1
	}
	return lines
}

// TreeViewportLines exposes the tree panel height for hit-testing.
func (s *AppState) TreeViewportLines() int { return s.viewportLines() }

// PreviewViewportLines exposes the preview panel height for hit-testing.
func (s *AppState) PreviewViewportLines() int { return s.viewportLines() }

func (s *AppState) clampSelection() {
	if len(s.Rows) == 0 {
		s.SelectedIndex = -1
		s.ScrollOffset = 0
		return
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	if s.SelectedIndex >= len(s.Rows) {
		s.SelectedIndex = len(s.Rows) - 1
	}
}

// updateTreeScroll keeps the selected row inside the viewport.
func (s *AppState) updateTreeScroll() {
	s.clampSelection()
	if s.SelectedIndex < 0 {
		return
	}
	visible := s.viewportLines()
	if s.SelectedIndex < s.ScrollOffset {
		s.ScrollOffset = s.SelectedIndex
	}
	if s.SelectedIndex >= s.ScrollOffset+visible {
		s.ScrollOffset = s.SelectedIndex - visible + 1
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}

// previewVisibleCount is the number of document lines not hidden by folds.
func (s *AppState) previewVisibleCount() int {
	doc := s.PreviewDoc()
	if doc == nil {
		return 0
	}
	return len(doc.VisibleLines())
}

func (s *AppState) clampPreviewCursor() {
	count := s.previewVisibleCount()
	if count == 0 {
		s.PreviewCursor = 0
		s.PreviewScrollOffset = 0
		return
	}
	if s.PreviewCursor < 0 {
		s.PreviewCursor = 0
	}
	if s.PreviewCursor >= count {
		s.PreviewCursor = count - 1
	}
}

// updatePreviewScroll keeps the preview cursor inside the viewport.
func (s *AppState) updatePreviewScroll() {
	s.clampPreviewCursor()
	visible := s.viewportLines()
	if s.PreviewCursor < s.PreviewScrollOffset {
		s.PreviewScrollOffset = s.PreviewCursor
	}
	if s.PreviewCursor >= s.PreviewScrollOffset+visible {
		s.PreviewScrollOffset = s.PreviewCursor - visible + 1
	}
	if s.PreviewScrollOffset < 0 {
		s.PreviewScrollOffset = 0
	}
}

func (s *AppState) clampPreviewScroll() {
	maxOffset := s.previewVisibleCount() - s.viewportLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.PreviewScrollOffset > maxOffset {
		s.PreviewScrollOffset = maxOffset
	}
	if s.PreviewScrollOffset < 0 {
		s.PreviewScrollOffset = 0
	}
	s.clampPreviewCursor()
}

// rowIndexOf finds the display row showing the node at path, -1 when the
// path is not currently visible.
func (s *AppState) rowIndexOf(path string) int {
	for i, row := range s.Rows {
		if row.Node.Path == path {
			return i
		}
	}
	return -1
}

// expandTo opens every ancestor directory of path so its row is visible.
func (s *AppState) expandTo(path string) {
	if s.Expanded == nil {
		s.Expanded = make(map[string]bool)
	}
	for i := 0; i < len(path); i++ {
		if path[i] == '/' {
			s.Expanded[path[:i]] = true
		}
	}
}
