package render

import (
	"fmt"
	"strings"

	statepkg "github.com/xieguanglei/ooxml-viewer/internal/state"
	textutil "github.com/xieguanglei/ooxml-viewer/internal/textutil"
)

// statusSummary describes the current selection for the status line.
func statusSummary(state *statepkg.AppState) string {
	node := state.CurrentNode()
	if node == nil {
		return ""
	}

	parts := []string{textutil.SanitizeTerminalText(node.Path)}
	if node.IsDir {
		count := len(node.Children)
		label := fmt.Sprintf("%d items", count)
		if count == 1 {
			label = "1 item"
		}
		parts = append(parts, label)
	} else {
		parts = append(parts, humanSize(node.Size))
	}

	if doc := state.PreviewDoc(); doc != nil {
		visible := len(doc.VisibleLines())
		total := len(doc.Lines)
		if visible == total {
			parts = append(parts, fmt.Sprintf("%d lines", total))
		} else {
			parts = append(parts, fmt.Sprintf("%d/%d lines", visible, total))
		}
	}

	return strings.Join(parts, " · ")
}

// humanSize renders a byte count the way archivers list member sizes.
func humanSize(size uint64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	value := float64(size)
	suffixes := []string{"KB", "MB", "GB", "TB"}
	idx := -1
	for value >= unit && idx < len(suffixes)-1 {
		value /= unit
		idx++
	}
	if value >= 10 {
		return fmt.Sprintf("%.0f %s", value, suffixes[idx])
	}
	return fmt.Sprintf("%.1f %s", value, suffixes[idx])
}
