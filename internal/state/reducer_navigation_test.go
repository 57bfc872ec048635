package state

import "testing"

// ===== NAVIGATION TESTS =====

func TestNavigateDown(t *testing.T) {
	state := newLoadedState(t)

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, NavigateDownAction{}); err != nil {
		t.Fatalf("Failed to navigate down: %v", err)
	}
	if state.SelectedIndex != 1 {
		t.Errorf("Expected selected=1, got %d", state.SelectedIndex)
	}
}

func TestNavigateDownAtEnd(t *testing.T) {
	state := newLoadedState(t)
	state.SelectedIndex = len(state.Rows) - 1

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, NavigateDownAction{}); err != nil {
		t.Fatalf("Failed to navigate down: %v", err)
	}
	if state.SelectedIndex != len(state.Rows)-1 {
		t.Errorf("Should stay at last row, got %d", state.SelectedIndex)
	}
}

func TestNavigateUpAtStart(t *testing.T) {
	state := newLoadedState(t)

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, NavigateUpAction{}); err != nil {
		t.Fatalf("Failed to navigate up: %v", err)
	}
	if state.SelectedIndex != 0 {
		t.Errorf("Should stay at 0, got %d", state.SelectedIndex)
	}
}

func TestScrollToEnd(t *testing.T) {
	state := newLoadedState(t)

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, ScrollToEndAction{}); err != nil {
		t.Fatalf("Failed to scroll to end: %v", err)
	}
	if state.SelectedIndex != len(state.Rows)-1 {
		t.Errorf("Expected last row, got %d", state.SelectedIndex)
	}
}

func TestScrollToStart(t *testing.T) {
	state := newLoadedState(t)
	state.SelectedIndex = len(state.Rows) - 1

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, ScrollToStartAction{}); err != nil {
		t.Fatalf("Failed to scroll to start: %v", err)
	}
	if state.SelectedIndex != 0 {
		t.Errorf("Expected first row, got %d", state.SelectedIndex)
	}
}

func TestPageDownClampsToLastRow(t *testing.T) {
	state := newLoadedState(t)

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, ScrollPageDownAction{}); err != nil {
		t.Fatalf("Failed to page down: %v", err)
	}
	if state.SelectedIndex != len(state.Rows)-1 {
		t.Errorf("Expected clamp to last row, got %d", state.SelectedIndex)
	}
}

func TestNavigationKeepsSelectionInViewport(t *testing.T) {
	state := newLoadedState(t)
	state.ScreenHeight = 5 // 2 content rows

	reducer := NewStateReducer()
	for i := 0; i < len(state.Rows)-1; i++ {
		if _, err := reducer.Reduce(state, NavigateDownAction{}); err != nil {
			t.Fatalf("Failed to navigate down: %v", err)
		}
	}
	visible := state.TreeViewportLines()
	if state.SelectedIndex < state.ScrollOffset ||
		state.SelectedIndex >= state.ScrollOffset+visible {
		t.Errorf("Selection %d outside viewport [%d,%d)",
			state.SelectedIndex, state.ScrollOffset, state.ScrollOffset+visible)
	}
}

// ===== EXPAND / COLLAPSE TESTS =====

func TestActivateExpandsDirectory(t *testing.T) {
	state := newLoadedState(t)
	idx := state.rowIndexOf("word")
	if idx < 0 {
		t.Fatal("word directory not visible")
	}
	state.SelectedIndex = idx

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, ActivateAction{}); err != nil {
		t.Fatalf("Failed to activate: %v", err)
	}
	if !state.Expanded["word"] {
		t.Error("Expected word to be expanded")
	}
	if state.rowIndexOf("word/document.xml") < 0 {
		t.Error("Expected child row after expansion")
	}
	if state.SelectedPath() != "word" {
		t.Errorf("Selection moved off the directory, now %q", state.SelectedPath())
	}
}

func TestActivateCollapsesExpandedDirectory(t *testing.T) {
	state := newLoadedState(t)
	state.SelectedIndex = state.rowIndexOf("word")

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, ActivateAction{}); err != nil {
		t.Fatalf("Failed to expand: %v", err)
	}
	if _, err := reducer.Reduce(state, ActivateAction{}); err != nil {
		t.Fatalf("Failed to collapse: %v", err)
	}
	if state.Expanded["word"] {
		t.Error("Expected word collapsed after second activate")
	}
	if state.rowIndexOf("word/document.xml") != -1 {
		t.Error("Child row still visible after collapse")
	}
}

func TestExpandActionIsIdempotent(t *testing.T) {
	state := newLoadedState(t)
	state.SelectedIndex = state.rowIndexOf("word")

	reducer := NewStateReducer()
	for i := 0; i < 2; i++ {
		if _, err := reducer.Reduce(state, ExpandAction{}); err != nil {
			t.Fatalf("Failed to expand: %v", err)
		}
	}
	if !state.Expanded["word"] {
		t.Error("Expected word to stay expanded")
	}
}

func TestCollapseOnFileJumpsToParent(t *testing.T) {
	state := newLoadedState(t)
	selectPath(t, state, "word/document.xml")

	reducer := NewStateReducer()
	state.Focus = FocusTree
	if _, err := reducer.Reduce(state, CollapseAction{}); err != nil {
		t.Fatalf("Failed to collapse: %v", err)
	}
	if state.SelectedPath() != "word" {
		t.Errorf("Expected parent selected, got %q", state.SelectedPath())
	}
}

func TestSelectRowOutOfRangeIgnored(t *testing.T) {
	state := newLoadedState(t)
	before := state.SelectedIndex

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, SelectRowAction{Index: 99}); err != nil {
		t.Fatalf("Failed to select row: %v", err)
	}
	if state.SelectedIndex != before {
		t.Errorf("Selection changed to %d", state.SelectedIndex)
	}
}
