package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	textutil "github.com/xieguanglei/ooxml-viewer/internal/textutil"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

func buildHelpOverlayLines() []string {
	sections := []helpOverlaySection{
		{
			title: "Navigation",
			entries: []helpOverlayEntry{
				{keys: "↑/↓ or j/k", desc: "Move selection"},
				{keys: "↵ or Space", desc: "Open directory / toggle fold"},
				{keys: "←/→", desc: "Collapse / expand"},
				{keys: "Home/End", desc: "Jump to start/end"},
				{keys: "PgUp/PgDn", desc: "Page"},
			},
		},
		{
			title: "Preview",
			entries: []helpOverlayEntry{
				{keys: "Tab", desc: "Switch between tree and preview"},
				{keys: "↵ or Space", desc: "Fold/unfold element under cursor"},
				{keys: "f", desc: "Full-screen preview"},
			},
		},
		{
			title: "Filter",
			entries: []helpOverlayEntry{
				{keys: "/", desc: "Filter parts by path"},
				{keys: "Esc", desc: "Exit filter"},
			},
		},
		{
			title: "Actions",
			entries: []helpOverlayEntry{
				{keys: "s", desc: "Export preview as HTML"},
				{keys: "r", desc: "Reload package from disk"},
				{keys: "y", desc: "Yank part path to clipboard"},
			},
		},
		{
			title: "Exit",
			entries: []helpOverlayEntry{
				{keys: "q", desc: "Quit"},
				{keys: "Ctrl+C", desc: "Quit immediately"},
				{keys: "?", desc: "Close this help"},
			},
		},
	}

	lines := make([]string, 0, 32)
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}

	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	key := textutil.SanitizeTerminalText(entry.keys)
	desc := textutil.SanitizeTerminalText(entry.desc)
	return fmt.Sprintf("  %-14s %s", key, desc)
}

func (r *Renderer) drawHelpOverlay(w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, baseStyle)
		}
	}

	title := " Help "
	headerStyle := baseStyle.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)
	titleStart := 0
	titleWidth := r.measureTextWidth(title)
	if w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	lines := buildHelpOverlayLines()
	row := 2
	maxRow := h - 1
	for _, line := range lines {
		if row >= maxRow {
			break
		}
		text := strings.TrimRight(line, " ")
		text = r.truncateTextToWidth(text, w-4)
		r.drawTextLine(2, row, w-4, text, baseStyle)
		row++
	}

	footer := "? toggle · Esc/q close"
	if h > 0 {
		footerText := r.truncateTextToWidth(footer, w)
		r.drawTextLine(0, h-1, w, footerText, headerStyle)
	}
}
