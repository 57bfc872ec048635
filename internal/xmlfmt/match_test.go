package xmlfmt

import (
	"strings"
	"testing"
)

func formatLines(t *testing.T, raw string) []Line {
	t.Helper()
	reflowed := Reflow(raw)
	if reflowed == "" {
		return nil
	}
	split := strings.Split(reflowed, "\n")
	lines := make([]Line, len(split))
	for i, s := range split {
		lines[i] = ClassifyLine(s)
	}
	MatchFolds(lines)
	return lines
}

func TestMatchFoldsPairsNestedTags(t *testing.T) {
	lines := formatLines(t, "<a><b>hi</b></a>")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}

	// <a> pairs with </a>, <b> with </b>.
	pairs := map[int]int{0: 4, 1: 3}
	for open, close := range pairs {
		if lines[open].Match != close {
			t.Errorf("line %d match = %d, want %d", open, lines[open].Match, close)
		}
		if lines[close].Match != open {
			t.Errorf("line %d match = %d, want %d", close, lines[close].Match, open)
		}
	}
	if lines[2].Match != -1 {
		t.Errorf("text line should stay unmatched, got %d", lines[2].Match)
	}
}

func TestMatchFoldsSiblingsAtSameLevel(t *testing.T) {
	lines := formatLines(t, "<r><a>x</a><b>y</b></r>")
	// 0:<r> 1:<a> 2:x 3:</a> 4:<b> 5:y 6:</b> 7:</r>
	wants := map[int]int{0: 7, 1: 3, 4: 6}
	for open, close := range wants {
		if lines[open].Match != close || lines[close].Match != open {
			t.Errorf("pair (%d,%d) not matched: open.Match=%d close.Match=%d",
				open, close, lines[open].Match, lines[close].Match)
		}
	}
}

func TestMatchFoldsLeavesUnmatchedClose(t *testing.T) {
	lines := formatLines(t, "<a>text</a></b>")
	last := len(lines) - 1
	if lines[last].Kind != LineClose {
		t.Fatalf("expected trailing close line, got kind %v", lines[last].Kind)
	}
	if lines[last].Match != -1 {
		t.Fatalf("stray close should stay unmatched, got %d", lines[last].Match)
	}
}

func TestMatchFoldsRemovesMidStackEntries(t *testing.T) {
	// Malformed nesting: the level-0 close arrives while a deeper open is
	// still on the stack. The matcher must skip past it, pair the level-0
	// lines, and leave the deeper open available for its own close.
	lines := []Line{
		{Kind: LineOpen, Indent: 0, Match: -1},
		{Kind: LineOpen, Indent: 1, Match: -1},
		{Kind: LineClose, Indent: 0, Match: -1},
		{Kind: LineClose, Indent: 1, Match: -1},
	}
	MatchFolds(lines)

	if lines[0].Match != 2 || lines[2].Match != 0 {
		t.Fatalf("level-0 pair not matched: %d, %d", lines[0].Match, lines[2].Match)
	}
	if lines[1].Match != 3 || lines[3].Match != 1 {
		t.Fatalf("level-1 pair not matched: %d, %d", lines[1].Match, lines[3].Match)
	}
}

func TestMatchFoldsIgnoresNonTagLines(t *testing.T) {
	lines := formatLines(t, `<?xml version="1.0"?><a><!-- c --><b/></a>`)
	for i, l := range lines {
		switch l.Kind {
		case LineDeclaration, LineComment, LineSelfClosing, LineText:
			if l.Match != -1 {
				t.Errorf("line %d (kind %v) should never match, got %d", i, l.Kind, l.Match)
			}
		}
	}
}
