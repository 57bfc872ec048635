package state

import (
	"strings"

	parttree "github.com/xieguanglei/ooxml-viewer/internal/parttree"
)

// ===== REDUCER =====

// StateReducer applies actions to state. Every reduction is synchronous:
// tree construction, reflow, tokenization and fold matching all run to
// completion inside the triggering action.
type StateReducer struct{}

// NewStateReducer creates a new reducer
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies an action to state and returns new state
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	state.StatusMessage = ""

	switch a := action.(type) {

	// ===== PACKAGE =====

	case PackageLoadedAction:
		return r.applyPackage(state, a)

	// ===== TREE NAVIGATION =====

	case NavigateUpAction:
		if state.Focus == FocusPreview {
			return r.Reduce(state, PreviewCursorUpAction{})
		}
		if len(state.Rows) == 0 || state.SelectedIndex <= 0 {
			return state, nil
		}
		state.SelectedIndex--
		state.updateTreeScroll()
		state.generatePreview()
		return state, nil

	case NavigateDownAction:
		if state.Focus == FocusPreview {
			return r.Reduce(state, PreviewCursorDownAction{})
		}
		if len(state.Rows) == 0 || state.SelectedIndex >= len(state.Rows)-1 {
			return state, nil
		}
		state.SelectedIndex++
		state.updateTreeScroll()
		state.generatePreview()
		return state, nil

	case ScrollToStartAction:
		if state.Focus == FocusPreview {
			return r.Reduce(state, PreviewToStartAction{})
		}
		if len(state.Rows) == 0 {
			return state, nil
		}
		state.SelectedIndex = 0
		state.updateTreeScroll()
		state.generatePreview()
		return state, nil

	case ScrollToEndAction:
		if state.Focus == FocusPreview {
			return r.Reduce(state, PreviewToEndAction{})
		}
		if len(state.Rows) == 0 {
			return state, nil
		}
		state.SelectedIndex = len(state.Rows) - 1
		state.updateTreeScroll()
		state.generatePreview()
		return state, nil

	case ScrollPageUpAction:
		if state.Focus == FocusPreview {
			return r.Reduce(state, PreviewPageUpAction{})
		}
		if len(state.Rows) == 0 {
			return state, nil
		}
		state.SelectedIndex -= state.viewportLines()
		state.updateTreeScroll()
		state.generatePreview()
		return state, nil

	case ScrollPageDownAction:
		if state.Focus == FocusPreview {
			return r.Reduce(state, PreviewPageDownAction{})
		}
		if len(state.Rows) == 0 {
			return state, nil
		}
		state.SelectedIndex += state.viewportLines()
		state.updateTreeScroll()
		state.generatePreview()
		return state, nil

	case SelectRowAction:
		if a.Index < 0 || a.Index >= len(state.Rows) {
			return state, nil
		}
		state.Focus = FocusTree
		state.SelectedIndex = a.Index
		state.updateTreeScroll()
		state.generatePreview()
		return state, nil

	case ActivateAction:
		if state.Focus == FocusPreview {
			return r.toggleFoldAtCursor(state)
		}
		node := state.CurrentNode()
		if node == nil {
			return state, nil
		}
		if node.IsDir {
			r.toggleDirectory(state, node.Path)
			return state, nil
		}
		state.generatePreview()
		if state.Preview != nil && state.Preview.Kind == PreviewDocument {
			state.Focus = FocusPreview
		}
		return state, nil

	case ExpandAction:
		node := state.CurrentNode()
		if node == nil {
			return state, nil
		}
		if node.IsDir {
			if !state.Expanded[node.Path] {
				r.toggleDirectory(state, node.Path)
			}
			return state, nil
		}
		state.generatePreview()
		if state.Preview != nil && state.Preview.Kind == PreviewDocument {
			state.Focus = FocusPreview
		}
		return state, nil

	case CollapseAction:
		if state.Focus == FocusPreview {
			state.Focus = FocusTree
			return state, nil
		}
		node := state.CurrentNode()
		if node == nil {
			return state, nil
		}
		if node.IsDir && state.Expanded[node.Path] {
			r.toggleDirectory(state, node.Path)
			return state, nil
		}
		// Jump to the parent directory's row.
		if parent := parentOf(node.Path); parent != "" {
			if idx := state.rowIndexOf(parent); idx >= 0 {
				state.SelectedIndex = idx
				state.updateTreeScroll()
				state.generatePreview()
			}
		}
		return state, nil

	// ===== PREVIEW =====

	case ToggleFoldAction:
		doc := state.PreviewDoc()
		if doc == nil {
			return state, nil
		}
		doc.Toggle(a.Line)
		state.clampPreviewScroll()
		return state, nil

	case PreviewCursorUpAction:
		if state.PreviewCursor > 0 {
			state.PreviewCursor--
			state.updatePreviewScroll()
		}
		return state, nil

	case PreviewCursorDownAction:
		if state.PreviewCursor < state.previewVisibleCount()-1 {
			state.PreviewCursor++
			state.updatePreviewScroll()
		}
		return state, nil

	case PreviewPageUpAction:
		state.PreviewCursor -= state.viewportLines()
		state.updatePreviewScroll()
		return state, nil

	case PreviewPageDownAction:
		state.PreviewCursor += state.viewportLines()
		state.updatePreviewScroll()
		return state, nil

	case PreviewToStartAction:
		state.PreviewCursor = 0
		state.updatePreviewScroll()
		return state, nil

	case PreviewToEndAction:
		state.PreviewCursor = state.previewVisibleCount() - 1
		state.updatePreviewScroll()
		return state, nil

	case PreviewScrollAction:
		state.PreviewScrollOffset += a.Delta
		state.clampPreviewScroll()
		return state, nil

	case PreviewSelectAction:
		doc := state.PreviewDoc()
		if doc == nil || a.Index < 0 || a.Index >= len(doc.VisibleLines()) {
			return state, nil
		}
		state.Focus = FocusPreview
		state.PreviewCursor = a.Index
		state.updatePreviewScroll()
		return state, nil

	case FocusToggleAction:
		if state.Focus == FocusPreview {
			state.Focus = FocusTree
		} else if state.Preview != nil && state.Preview.Kind == PreviewDocument {
			state.Focus = FocusPreview
		}
		return state, nil

	case FullScreenToggleAction:
		if state.PreviewFullScreen {
			state.PreviewFullScreen = false
			state.clampPreviewScroll()
			return state, nil
		}
		if state.PreviewDoc() != nil {
			state.PreviewFullScreen = true
			state.Focus = FocusPreview
		}
		return state, nil

	// ===== FILTERING =====

	case FilterStartAction:
		state.PreviewFullScreen = false
		state.Focus = FocusTree
		state.FilterActive = true
		state.FilterQuery = ""
		state.rebuildRows()
		state.SelectedIndex = 0
		state.ScrollOffset = 0
		state.updateTreeScroll()
		state.generatePreview()
		return state, nil

	case FilterCharAction:
		if !state.FilterActive {
			return state, nil
		}
		state.FilterQuery += string(a.Char)
		state.rebuildRows()
		state.SelectedIndex = 0
		state.ScrollOffset = 0
		state.updateTreeScroll()
		state.generatePreview()
		return state, nil

	case FilterBackspaceAction:
		if !state.FilterActive || state.FilterQuery == "" {
			return state, nil
		}
		runes := []rune(state.FilterQuery)
		state.FilterQuery = string(runes[:len(runes)-1])
		state.rebuildRows()
		state.SelectedIndex = 0
		state.ScrollOffset = 0
		state.updateTreeScroll()
		state.generatePreview()
		return state, nil

	case FilterClearAction:
		if !state.FilterActive {
			return state, nil
		}
		keep := state.SelectedPath()
		state.FilterActive = false
		state.FilterQuery = ""
		if keep != "" {
			state.expandTo(keep)
		}
		state.rebuildRows()
		if idx := state.rowIndexOf(keep); idx >= 0 {
			state.SelectedIndex = idx
		}
		state.updateTreeScroll()
		state.generatePreview()
		return state, nil

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.updateTreeScroll()
		state.clampPreviewScroll()
		return state, nil

	case HelpToggleAction:
		state.HelpVisible = !state.HelpVisible
		return state, nil

	case HelpHideAction:
		state.HelpVisible = false
		return state, nil
	}

	// Application-level actions (quit, export, reload) are consumed by the
	// event loop before reaching the reducer.
	return state, nil
}

// toggleDirectory flips the expanded flag for the directory at path and
// keeps the selection on that directory's row.
func (r *StateReducer) toggleDirectory(state *AppState, path string) {
	if state.Expanded == nil {
		state.Expanded = make(map[string]bool)
	}
	if state.Expanded[path] {
		delete(state.Expanded, path)
	} else {
		state.Expanded[path] = true
	}
	state.rebuildRows()
	if idx := state.rowIndexOf(path); idx >= 0 {
		state.SelectedIndex = idx
	}
	state.updateTreeScroll()
}

func (r *StateReducer) toggleFoldAtCursor(state *AppState) (*AppState, error) {
	doc := state.PreviewDoc()
	if doc == nil {
		return state, nil
	}
	visible := doc.VisibleLines()
	if state.PreviewCursor < 0 || state.PreviewCursor >= len(visible) {
		return state, nil
	}
	doc.Toggle(visible[state.PreviewCursor])
	state.updatePreviewScroll()
	return state, nil
}

func (r *StateReducer) applyPackage(state *AppState, a PackageLoadedAction) (*AppState, error) {
	if a.Err != nil {
		// A failed load or reload never replaces a complete tree.
		state.LastError = a.Err
		return state, nil
	}

	keep := state.SelectedPath()

	state.PackagePath = a.Path
	state.Root = parttree.Build(a.Entries)
	state.PartCount = parttree.FileCount(state.Root)
	state.LastError = nil

	// Expanded directories survive a reload only while they still exist.
	if state.Expanded == nil {
		state.Expanded = make(map[string]bool)
	}
	for path := range state.Expanded {
		node := parttree.Find(state.Root, path)
		if node == nil || !node.IsDir {
			delete(state.Expanded, path)
		}
	}

	// All prior preview and fold state is discarded.
	state.Preview = nil
	state.PreviewCursor = 0
	state.PreviewScrollOffset = 0
	state.PreviewFullScreen = false
	state.Focus = FocusTree

	state.rebuildRows()
	state.SelectedIndex = 0
	if keep != "" {
		if idx := state.rowIndexOf(keep); idx >= 0 {
			state.SelectedIndex = idx
		}
	}
	state.ScrollOffset = 0
	state.updateTreeScroll()
	state.generatePreview()
	return state, nil
}

func parentOf(path string) string {
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		return path[:idx]
	}
	return ""
}
