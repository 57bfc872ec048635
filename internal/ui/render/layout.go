package render

import statepkg "github.com/xieguanglei/ooxml-viewer/internal/state"

type layoutMetrics struct {
	treeWidth      int
	separatorWidth int
	previewStart   int
	previewWidth   int
	showPreview    bool
}

const (
	minTreePanelWidth    = 16
	minPreviewPanelWidth = 20
	previewInnerPadding  = 1
)

// TreeWidthFor is the effective tree panel width for the given terminal
// width. Exposed so the event loop can hit-test mouse clicks against the
// same geometry the renderer paints.
func TreeWidthFor(w int, state *statepkg.AppState) int {
	if state == nil || state.PreviewFullScreen {
		return 0
	}
	if w <= 0 {
		return 0
	}

	tree := state.TreeWidth
	if tree < minTreePanelWidth {
		tree = minTreePanelWidth
	}

	// When the terminal cannot hold both panels the tree takes everything.
	if w < tree+1+minPreviewPanelWidth {
		return w
	}
	return tree
}

func (r *Renderer) computeLayout(w int, state *statepkg.AppState) layoutMetrics {
	if w < 0 {
		w = 0
	}

	metrics := layoutMetrics{}
	metrics.treeWidth = TreeWidthFor(w, state)
	metrics.previewStart = w

	if metrics.treeWidth >= w {
		metrics.treeWidth = w
		return metrics
	}

	metrics.separatorWidth = 1
	metrics.previewStart = metrics.treeWidth + metrics.separatorWidth
	metrics.previewWidth = w - metrics.previewStart
	metrics.showPreview = metrics.previewWidth >= minPreviewPanelWidth

	if !metrics.showPreview {
		metrics.treeWidth = w
		metrics.separatorWidth = 0
		metrics.previewStart = w
		metrics.previewWidth = 0
	}

	return metrics
}
