package state

import archive "github.com/xieguanglei/ooxml-viewer/internal/archive"

// Action is the base interface for all state mutations
type Action interface{}

// ===== TREE NAVIGATION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type ScrollToStartAction struct{}
type ScrollToEndAction struct{}
type ScrollPageUpAction struct{}
type ScrollPageDownAction struct{}

// SelectRowAction selects a tree row directly (mouse click).
type SelectRowAction struct {
	Index int
}

// ActivateAction is Enter/Space: it toggles the selected directory, or, when
// the preview pane has focus, toggles the fold under the preview cursor.
type ActivateAction struct{}

type ExpandAction struct{}
type CollapseAction struct{}

// ===== PREVIEW ACTIONS =====

// ToggleFoldAction toggles the fold whose origin is the given document line
// index (mouse click on a fold glyph).
type ToggleFoldAction struct {
	Line int
}

type PreviewCursorUpAction struct{}
type PreviewCursorDownAction struct{}
type PreviewPageUpAction struct{}
type PreviewPageDownAction struct{}
type PreviewToStartAction struct{}
type PreviewToEndAction struct{}

// PreviewScrollAction scrolls the preview viewport without moving the cursor
// (mouse wheel).
type PreviewScrollAction struct {
	Delta int
}

// PreviewSelectAction moves the preview cursor to a visible line directly
// (mouse click in the preview pane).
type PreviewSelectAction struct {
	Index int
}

type FocusToggleAction struct{}
type FullScreenToggleAction struct{}

// ===== FILTER ACTIONS =====

type FilterStartAction struct{}
type FilterCharAction struct {
	Char rune
}
type FilterBackspaceAction struct{}
type FilterClearAction struct{}

// ===== PACKAGE ACTIONS =====

// PackageLoadedAction carries the result of inspecting the package, both on
// startup and on reload. A failed reload keeps the previous tree.
type PackageLoadedAction struct {
	Path    string
	Entries []archive.Entry
	Err     error
}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type HelpToggleAction struct{}
type HelpHideAction struct{}

// ===== APPLICATION ACTIONS =====

// QuitAction, ExportAction, ReloadAction and YankPathAction are consumed by
// the application loop, not the reducer: they perform IO.
type QuitAction struct{}
type ExportAction struct{}
type ReloadAction struct{}
type YankPathAction struct{}

// SuspendAction hands the terminal back to the shell (Ctrl+Z).
type SuspendAction struct{}
