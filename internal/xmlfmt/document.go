package xmlfmt

import (
	"sort"
	"strings"
)

// Document is the fully formatted, foldable rendition of one XML part. It is
// built from scratch for every selected part; fold bookkeeping never carries
// over between parts.
type Document struct {
	Lines []Line

	// hiddenBy[i] holds the origin indices of the folds currently covering
	// line i, kept sorted. A line is hidden while the set is non-empty, so
	// overlapping ancestor folds compose correctly: the line reappears only
	// once every covering fold has been reopened.
	hiddenBy  [][]int
	collapsed map[int]bool
}

// Format runs the whole pipeline on one raw XML blob: reflow, per-line
// tokenization, then fold matching. It never fails; malformed input degrades
// to a best-effort layout.
func Format(raw string) *Document {
	var lines []Line
	if reflowed := Reflow(raw); reflowed != "" {
		split := strings.Split(reflowed, "\n")
		lines = make([]Line, len(split))
		for i, s := range split {
			lines[i] = ClassifyLine(s)
		}
	}
	MatchFolds(lines)

	return &Document{
		Lines:     lines,
		hiddenBy:  make([][]int, len(lines)),
		collapsed: make(map[int]bool),
	}
}

// Foldable reports whether line i owns a collapsible span: an open line with
// a matched close and at least one line strictly between them.
func (d *Document) Foldable(i int) bool {
	if i < 0 || i >= len(d.Lines) {
		return false
	}
	line := d.Lines[i]
	return line.Kind == LineOpen && line.Match > i+1
}

// Collapsed reports the fold control's own state at line i, independent of
// whether outer folds currently hide the line itself.
func (d *Document) Collapsed(i int) bool {
	return d.collapsed[i]
}

// Hidden reports whether at least one active fold covers line i.
func (d *Document) Hidden(i int) bool {
	return i >= 0 && i < len(d.hiddenBy) && len(d.hiddenBy[i]) > 0
}

// Toggle collapses or expands the fold at origin line i. Toggling a
// non-foldable line is a no-op.
func (d *Document) Toggle(i int) {
	if !d.Foldable(i) {
		return
	}
	match := d.Lines[i].Match

	if d.collapsed[i] {
		delete(d.collapsed, i)
		for j := i + 1; j < match; j++ {
			d.hiddenBy[j] = removeOrigin(d.hiddenBy[j], i)
		}
		return
	}

	d.collapsed[i] = true
	for j := i + 1; j < match; j++ {
		d.hiddenBy[j] = addOrigin(d.hiddenBy[j], i)
	}
}

// VisibleLines returns the indices of all lines not hidden by any fold, in
// document order.
func (d *Document) VisibleLines() []int {
	out := make([]int, 0, len(d.Lines))
	for i := range d.Lines {
		if len(d.hiddenBy[i]) == 0 {
			out = append(out, i)
		}
	}
	return out
}

func addOrigin(set []int, origin int) []int {
	pos := sort.SearchInts(set, origin)
	if pos < len(set) && set[pos] == origin {
		return set
	}
	set = append(set, 0)
	copy(set[pos+1:], set[pos:])
	set[pos] = origin
	return set
}

func removeOrigin(set []int, origin int) []int {
	pos := sort.SearchInts(set, origin)
	if pos >= len(set) || set[pos] != origin {
		return set
	}
	return append(set[:pos], set[pos+1:]...)
}
