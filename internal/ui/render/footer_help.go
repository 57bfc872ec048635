package render

import (
	"strings"

	statepkg "github.com/xieguanglei/ooxml-viewer/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles context-aware help hints for the footer.
func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	switch {
	case state.FilterActive:
		return []string{
			"type: filter",
			"↵: accept",
			"Esc: exit filter",
		}
	case state.PreviewFullScreen:
		return []string{
			"↑↓: move",
			"↵: fold",
			"f/Esc: exit",
		}
	case state.Focus == statepkg.FocusPreview:
		return []string{
			"↑↓: move",
			"↵: fold",
			"Tab: tree",
			"f: full",
			"?: help",
		}
	default:
		return []string{
			"↑↓: move",
			"↵: open",
			"/: filter",
			"s: export",
			"?: help",
			"q: quit",
		}
	}
}
