package state

import "testing"

// ===== PREVIEW CONTENT TESTS =====

func TestPreviewXMLPart(t *testing.T) {
	state := newLoadedState(t)
	selectPath(t, state, "word/document.xml")

	if state.Preview == nil {
		t.Fatal("Expected a preview")
	}
	if state.Preview.Kind != PreviewDocument {
		t.Fatalf("Expected document preview, got %v", state.Preview.Kind)
	}
	doc := state.PreviewDoc()
	if doc == nil || len(doc.Lines) == 0 {
		t.Fatal("Expected a formatted document")
	}
}

func TestPreviewBinaryPart(t *testing.T) {
	state := newLoadedState(t)
	selectPath(t, state, "word/media/image1.png")

	if state.Preview == nil || state.Preview.Kind != PreviewBinary {
		t.Fatalf("Expected binary placeholder, got %+v", state.Preview)
	}
	if state.PreviewDoc() != nil {
		t.Error("Binary part must not have a document")
	}
}

func TestPreviewEmptyPart(t *testing.T) {
	state := newLoadedState(t)
	selectPath(t, state, "docProps/app.xml")

	if state.Preview == nil || state.Preview.Kind != PreviewEmpty {
		t.Fatalf("Expected empty placeholder, got %+v", state.Preview)
	}
}

func TestPreviewDirectory(t *testing.T) {
	state := newLoadedState(t)
	state.SelectedIndex = state.rowIndexOf("word")
	state.Preview = nil
	state.generatePreview()

	if state.Preview == nil || state.Preview.Kind != PreviewDirectory {
		t.Fatalf("Expected directory preview, got %+v", state.Preview)
	}
	if len(state.Preview.DirEntries) == 0 {
		t.Error("Expected directory children listed")
	}
}

func TestPreviewKeptWhileSamePartSelected(t *testing.T) {
	state := newLoadedState(t)
	selectPath(t, state, "word/document.xml")
	doc := state.PreviewDoc()

	state.generatePreview()
	if state.PreviewDoc() != doc {
		t.Error("Preview rebuilt although the selection did not change")
	}
}

func TestFoldStateDiscardedOnSelectionChange(t *testing.T) {
	state := newLoadedState(t)
	selectPath(t, state, "word/document.xml")
	doc := state.PreviewDoc()

	origin := -1
	for i := range doc.Lines {
		if doc.Foldable(i) {
			origin = i
			break
		}
	}
	if origin < 0 {
		t.Fatal("Fixture document has no foldable line")
	}
	doc.Toggle(origin)
	if !doc.Collapsed(origin) {
		t.Fatal("Toggle did not collapse")
	}

	selectPath(t, state, "[Content_Types].xml")
	selectPath(t, state, "word/document.xml")
	fresh := state.PreviewDoc()
	if fresh == doc {
		t.Fatal("Expected a rebuilt document after selection change")
	}
	if fresh.Collapsed(origin) {
		t.Error("Fold state survived a selection change")
	}
}

// ===== PREVIEW INTERACTION TESTS =====

func TestFocusToggleRequiresDocument(t *testing.T) {
	state := newLoadedState(t)
	selectPath(t, state, "word/media/image1.png")

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, FocusToggleAction{}); err != nil {
		t.Fatalf("Failed to toggle focus: %v", err)
	}
	if state.Focus != FocusTree {
		t.Error("Focus moved to a placeholder preview")
	}
}

func TestFocusToggleOnDocument(t *testing.T) {
	state := newLoadedState(t)
	selectPath(t, state, "word/document.xml")

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, FocusToggleAction{}); err != nil {
		t.Fatalf("Failed to toggle focus: %v", err)
	}
	if state.Focus != FocusPreview {
		t.Error("Expected preview focus")
	}
	if _, err := reducer.Reduce(state, FocusToggleAction{}); err != nil {
		t.Fatalf("Failed to toggle focus back: %v", err)
	}
	if state.Focus != FocusTree {
		t.Error("Expected tree focus")
	}
}

func TestActivateFoldsAtPreviewCursor(t *testing.T) {
	state := newLoadedState(t)
	selectPath(t, state, "word/document.xml")
	doc := state.PreviewDoc()
	before := len(doc.VisibleLines())

	state.Focus = FocusPreview
	state.PreviewCursor = 0 // first line of the fixture opens w:document

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, ActivateAction{}); err != nil {
		t.Fatalf("Failed to toggle fold: %v", err)
	}
	after := len(doc.VisibleLines())
	if after >= before {
		t.Errorf("Expected fewer visible lines, had %d now %d", before, after)
	}

	if _, err := reducer.Reduce(state, ActivateAction{}); err != nil {
		t.Fatalf("Failed to unfold: %v", err)
	}
	if len(doc.VisibleLines()) != before {
		t.Error("Unfold did not restore all lines")
	}
}

func TestNavigateDownMovesPreviewCursorWhenFocused(t *testing.T) {
	state := newLoadedState(t)
	selectPath(t, state, "word/document.xml")
	state.Focus = FocusPreview

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, NavigateDownAction{}); err != nil {
		t.Fatalf("Failed to navigate: %v", err)
	}
	if state.PreviewCursor != 1 {
		t.Errorf("Expected preview cursor 1, got %d", state.PreviewCursor)
	}
	if state.SelectedIndex != state.rowIndexOf("word/document.xml") {
		t.Error("Tree selection moved while preview was focused")
	}
}

func TestPreviewCursorClampedToVisibleLines(t *testing.T) {
	state := newLoadedState(t)
	selectPath(t, state, "word/document.xml")
	state.Focus = FocusPreview

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, PreviewToEndAction{}); err != nil {
		t.Fatalf("Failed to jump to end: %v", err)
	}
	visible := state.previewVisibleCount()
	if state.PreviewCursor != visible-1 {
		t.Errorf("Expected cursor %d, got %d", visible-1, state.PreviewCursor)
	}
}

func TestPreviewScrollClamped(t *testing.T) {
	state := newLoadedState(t)
	selectPath(t, state, "word/document.xml")

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, PreviewScrollAction{Delta: 1000}); err != nil {
		t.Fatalf("Failed to scroll: %v", err)
	}
	maxOffset := state.previewVisibleCount() - state.PreviewViewportLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if state.PreviewScrollOffset != maxOffset {
		t.Errorf("Expected offset %d, got %d", maxOffset, state.PreviewScrollOffset)
	}
	if _, err := reducer.Reduce(state, PreviewScrollAction{Delta: -1000}); err != nil {
		t.Fatalf("Failed to scroll: %v", err)
	}
	if state.PreviewScrollOffset != 0 {
		t.Errorf("Expected offset 0, got %d", state.PreviewScrollOffset)
	}
}

func TestFullScreenRequiresDocument(t *testing.T) {
	state := newLoadedState(t)
	selectPath(t, state, "word/media/image1.png")

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, FullScreenToggleAction{}); err != nil {
		t.Fatalf("Failed to toggle full screen: %v", err)
	}
	if state.PreviewFullScreen {
		t.Error("Full screen entered on a placeholder preview")
	}
}

func TestFullScreenToggle(t *testing.T) {
	state := newLoadedState(t)
	selectPath(t, state, "word/document.xml")

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, FullScreenToggleAction{}); err != nil {
		t.Fatalf("Failed to enter full screen: %v", err)
	}
	if !state.PreviewFullScreen {
		t.Fatal("Expected full screen")
	}
	if state.Focus != FocusPreview {
		t.Error("Full screen should focus the preview")
	}
	if _, err := reducer.Reduce(state, FullScreenToggleAction{}); err != nil {
		t.Fatalf("Failed to leave full screen: %v", err)
	}
	if state.PreviewFullScreen {
		t.Error("Expected full screen off")
	}
}
