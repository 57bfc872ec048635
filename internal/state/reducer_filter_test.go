package state

import "testing"

// ===== FILTER TESTS =====

func TestFilterStartShowsAllFileParts(t *testing.T) {
	state := newLoadedState(t)

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, FilterStartAction{}); err != nil {
		t.Fatalf("Failed to start filter: %v", err)
	}
	if !state.FilterActive {
		t.Fatal("Expected filter mode")
	}
	// An empty query falls back to the normal hierarchy view.
	if len(state.Rows) == 0 {
		t.Fatal("Expected rows with empty query")
	}
}

func TestFilterMatchesSubstringOfFullPath(t *testing.T) {
	state := newLoadedState(t)

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, FilterStartAction{}); err != nil {
		t.Fatalf("Failed to start filter: %v", err)
	}
	for _, ch := range "word/" {
		if _, err := reducer.Reduce(state, FilterCharAction{Char: ch}); err != nil {
			t.Fatalf("Failed to type: %v", err)
		}
	}

	if len(state.Rows) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(state.Rows))
	}
	for _, row := range state.Rows {
		if row.Node.IsDir {
			t.Errorf("Directory %q listed in filter results", row.Node.Path)
		}
	}
}

func TestFilterSmartCase(t *testing.T) {
	state := newLoadedState(t)
	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, FilterStartAction{}); err != nil {
		t.Fatalf("Failed to start filter: %v", err)
	}

	// Lowercase query matches case-insensitively.
	for _, ch := range "content_types" {
		if _, err := reducer.Reduce(state, FilterCharAction{Char: ch}); err != nil {
			t.Fatalf("Failed to type: %v", err)
		}
	}
	if len(state.Rows) != 1 {
		t.Fatalf("Expected 1 insensitive match, got %d", len(state.Rows))
	}

	// An uppercase character makes the query exact.
	if _, err := reducer.Reduce(state, FilterBackspaceAction{}); err != nil {
		t.Fatalf("Failed to backspace: %v", err)
	}
	if _, err := reducer.Reduce(state, FilterCharAction{Char: 'S'}); err != nil {
		t.Fatalf("Failed to type: %v", err)
	}
	if len(state.Rows) != 0 {
		t.Errorf("Expected no exact matches for %q, got %d", state.FilterQuery, len(state.Rows))
	}
}

func TestFilterNoMatchesClearsPreview(t *testing.T) {
	state := newLoadedState(t)
	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, FilterStartAction{}); err != nil {
		t.Fatalf("Failed to start filter: %v", err)
	}
	for _, ch := range "zzz" {
		if _, err := reducer.Reduce(state, FilterCharAction{Char: ch}); err != nil {
			t.Fatalf("Failed to type: %v", err)
		}
	}
	if len(state.Rows) != 0 {
		t.Fatalf("Expected no matches, got %d", len(state.Rows))
	}
	if state.Preview != nil {
		t.Error("Expected preview cleared when nothing is selected")
	}
}

func TestFilterCharIgnoredOutsideFilterMode(t *testing.T) {
	state := newLoadedState(t)
	before := len(state.Rows)

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, FilterCharAction{Char: 'x'}); err != nil {
		t.Fatalf("Failed to reduce: %v", err)
	}
	if state.FilterQuery != "" || len(state.Rows) != before {
		t.Error("Filter input accepted outside filter mode")
	}
}

func TestFilterClearRestoresSelection(t *testing.T) {
	state := newLoadedState(t)
	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, FilterStartAction{}); err != nil {
		t.Fatalf("Failed to start filter: %v", err)
	}
	for _, ch := range "document" {
		if _, err := reducer.Reduce(state, FilterCharAction{Char: ch}); err != nil {
			t.Fatalf("Failed to type: %v", err)
		}
	}
	if state.SelectedPath() != "word/document.xml" {
		t.Fatalf("Expected match selected, got %q", state.SelectedPath())
	}

	if _, err := reducer.Reduce(state, FilterClearAction{}); err != nil {
		t.Fatalf("Failed to clear filter: %v", err)
	}
	if state.FilterActive {
		t.Fatal("Expected filter mode off")
	}
	if state.SelectedPath() != "word/document.xml" {
		t.Errorf("Selection lost after clearing, got %q", state.SelectedPath())
	}
	if !state.Expanded["word"] {
		t.Error("Ancestor directory not expanded to keep the selection visible")
	}
}
