package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/xieguanglei/ooxml-viewer/internal/state"
	textutil "github.com/xieguanglei/ooxml-viewer/internal/textutil"
	xmlfmt "github.com/xieguanglei/ooxml-viewer/internal/xmlfmt"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen           tcell.Screen
	theme            ColorTheme
	runeWidthCache   [128]int // ASCII cache (0-127)
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := r.screen.Size()

	if state != nil && state.HelpVisible {
		r.drawHelpOverlay(w, h)
		r.screen.Show()
		return
	}

	r.drawHeader(state, w)

	if state != nil && state.PreviewFullScreen {
		r.drawPreviewPanel(state, 0, w, h)
		r.drawStatusLine(state, w, h)
		r.screen.Show()
		return
	}

	layout := r.computeLayout(w, state)
	r.drawTreePanel(state, layout.treeWidth, h)
	if layout.separatorWidth > 0 {
		sepStyle := tcell.StyleDefault.Foreground(r.theme.GuideFg)
		for y := 1; y < h-1; y++ {
			r.screen.SetContent(layout.treeWidth, y, '│', nil, sepStyle)
		}
	}
	if layout.showPreview {
		r.drawPreviewPanel(state, layout.previewStart, layout.previewWidth, h)
	}
	r.drawStatusLine(state, w, h)

	r.screen.Show()
}

// ===== HEADER =====

func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	headerStyle := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)

	endX := r.drawTextLine(0, 0, w, "ooxml-viewer", headerStyle.Bold(true))
	if state != nil && state.PackagePath != "" && endX+1 < w {
		r.screen.SetContent(endX, 0, ' ', nil, headerStyle)
		endX++
		path := textutil.SanitizeTerminalText(state.PackagePath)
		path = r.truncateTextToWidth(path, w-endX)
		endX = r.drawTextLine(endX, 0, w-endX, path, headerStyle)
	}

	if state != nil && state.PartCount > 0 {
		label := fmt.Sprintf("%d parts", state.PartCount)
		if state.PartCount == 1 {
			label = "1 part"
		}
		labelWidth := r.measureTextWidth(label)
		if endX+1+labelWidth <= w {
			r.drawTextLine(w-labelWidth, 0, labelWidth, label, headerStyle.Foreground(r.theme.SizeFg))
		}
	}

	r.fillLine(endX, 0, w, headerStyle)
}

// ===== TREE PANEL =====

func (r *Renderer) drawTreePanel(state *statepkg.AppState, width, h int) {
	if state == nil || width <= 0 {
		return
	}

	baseStyle := tcell.StyleDefault.Background(r.theme.Background)
	viewport := state.TreeViewportLines()

	for i := 0; i < viewport; i++ {
		rowIdx := state.ScrollOffset + i
		y := 1 + i
		if rowIdx >= len(state.Rows) {
			break
		}
		row := state.Rows[rowIdx]
		selected := rowIdx == state.SelectedIndex

		style := baseStyle
		switch {
		case selected && state.Focus == statepkg.FocusTree:
			style = style.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		case selected:
			style = style.Background(r.theme.InactiveBg).Foreground(r.theme.InactiveFg)
		case row.Node.IsDir:
			style = style.Foreground(r.theme.DirectoryFg)
		default:
			style = style.Foreground(r.theme.FileFg)
		}

		x := 0
		if selected {
			r.fillLine(0, y, width, style)
		}

		// Filter results are a flat list of full paths.
		if state.FilterActive && strings.TrimSpace(state.FilterQuery) != "" {
			name := textutil.SanitizeTerminalText(row.Node.Path)
			r.drawTextLine(1, y, width-1, r.truncateTextToWidth(name, width-1), style)
			continue
		}

		x = row.Depth * 2
		if x >= width {
			continue
		}

		marker := "  "
		if row.Node.IsDir {
			if row.Expanded {
				marker = "▾ "
			} else {
				marker = "▸ "
			}
		}
		markerStyle := style
		if !selected {
			markerStyle = style.Foreground(r.theme.GuideFg)
		}
		x = r.drawTextLine(x, y, width-x, marker, markerStyle)

		name := textutil.SanitizeTerminalText(row.Node.Name)
		sizeLabel := ""
		if state.ShowSizes && !row.Node.IsDir {
			sizeLabel = humanSize(row.Node.Size)
		}

		nameWidth := width - x
		if sizeLabel != "" {
			nameWidth -= r.measureTextWidth(sizeLabel) + 1
		}
		if nameWidth < 1 {
			nameWidth = width - x
			sizeLabel = ""
		}
		r.drawTextLine(x, y, nameWidth, r.truncateTextToWidth(name, nameWidth), style)

		if sizeLabel != "" {
			sizeStyle := style
			if !selected {
				sizeStyle = style.Foreground(r.theme.SizeFg)
			}
			sizeX := width - r.measureTextWidth(sizeLabel)
			r.drawTextLine(sizeX, y, width-sizeX, sizeLabel, sizeStyle)
		}
	}
}

// ===== PREVIEW PANEL =====

func (r *Renderer) drawPreviewPanel(state *statepkg.AppState, startX, width, h int) {
	if state == nil || width <= 0 {
		return
	}
	if state.Preview == nil {
		return
	}

	innerX := startX + previewInnerPadding
	innerWidth := width - previewInnerPadding*2
	if innerWidth < 1 {
		return
	}

	switch state.Preview.Kind {
	case statepkg.PreviewDocument:
		r.drawDocument(state, innerX, innerWidth, h)
	case statepkg.PreviewDirectory:
		r.drawDirectoryPreview(state, innerX, innerWidth, h)
	case statepkg.PreviewBinary:
		r.drawPlaceholder(innerX, innerWidth, "no preview available", humanSize(state.Preview.Size))
	case statepkg.PreviewEmpty:
		r.drawPlaceholder(innerX, innerWidth, "empty file", "")
	}
}

func (r *Renderer) drawPlaceholder(x, width int, message, detail string) {
	style := tcell.StyleDefault.Foreground(r.theme.SizeFg).Italic(true)
	r.drawTextLine(placeholderX(x, width, message), 1, width, r.truncateTextToWidth(message, width), style)
	if detail != "" {
		r.drawTextLine(placeholderX(x, width, detail), 2, width, r.truncateTextToWidth(detail, width), style)
	}
}

// placeholderX centers short placeholder text within the preview panel.
func placeholderX(x, width int, text string) int {
	pad := (width - textutil.DisplayWidth(text)) / 2
	if pad < 0 {
		pad = 0
	}
	return x + pad
}

func (r *Renderer) drawDirectoryPreview(state *statepkg.AppState, x, width, h int) {
	viewport := state.PreviewViewportLines()
	children := state.Preview.DirEntries

	label := fmt.Sprintf("%d items", len(children))
	if len(children) == 1 {
		label = "1 item"
	}
	r.drawTextLine(x, 1, width, label, tcell.StyleDefault.Foreground(r.theme.SizeFg))

	for i, child := range children {
		y := 2 + i
		if i >= viewport-1 {
			break
		}
		style := tcell.StyleDefault.Foreground(r.theme.FileFg)
		name := child.Name
		if child.IsDir {
			style = style.Foreground(r.theme.DirectoryFg)
			name += "/"
		}
		name = textutil.SanitizeTerminalText(name)
		r.drawTextLine(x, y, width, r.truncateTextToWidth(name, width), style)
	}
}

func (r *Renderer) drawDocument(state *statepkg.AppState, x, width, h int) {
	doc := state.PreviewDoc()
	if doc == nil {
		return
	}

	visible := doc.VisibleLines()
	viewport := state.PreviewViewportLines()
	focused := state.Focus == statepkg.FocusPreview

	for i := 0; i < viewport; i++ {
		vi := state.PreviewScrollOffset + i
		if vi >= len(visible) {
			break
		}
		li := visible[vi]
		y := 1 + i

		base := tcell.StyleDefault.Background(r.theme.Background)
		if focused && vi == state.PreviewCursor {
			base = base.Background(r.theme.CursorBg)
			r.fillLine(x, y, x+width, base)
		}

		r.drawDocumentLine(doc, li, x, y, width, base)
	}
}

// drawDocumentLine paints one formatted XML line: fold gutter, indentation,
// then the styled tokens.
func (r *Renderer) drawDocumentLine(doc *xmlfmt.Document, li, startX, y, width int, base tcell.Style) {
	maxX := startX + width
	x := startX

	glyph := ' '
	switch {
	case doc.Collapsed(li):
		glyph = '▸'
	case doc.Foldable(li):
		glyph = '▾'
	}
	x = r.drawStyledRune(x, y, maxX, glyph, base.Foreground(r.theme.FoldGlyphFg))
	x = r.drawStyledRune(x, y, maxX, ' ', base)

	line := doc.Lines[li]
	for i := 0; i < line.Indent*2 && x < maxX; i++ {
		x = r.drawStyledRune(x, y, maxX, ' ', base)
	}

	for _, token := range line.Tokens {
		if x >= maxX {
			return
		}
		text := textutil.SanitizeTerminalText(token.Text)
		text = textutil.ExpandTabs(text, textutil.DefaultTabWidth)
		x = r.drawTextLine(x, y, maxX-x, text, r.tokenStyle(token.Kind, base))
	}

	if doc.Collapsed(li) && x+2 <= maxX {
		r.drawTextLine(x, y, maxX-x, " ⋯", base.Foreground(r.theme.FoldBadgeFg))
	}
}

// ===== STATUS LINE =====

func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	if h < 2 {
		return
	}
	y := h - 1
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	r.fillLine(0, y, w, style)

	left := ""
	leftStyle := style
	switch {
	case state == nil:
	case state.FilterActive:
		left = "/" + textutil.SanitizeTerminalText(state.FilterQuery)
		if len(state.Rows) == 0 {
			left += "  (no matches)"
		}
	case state.LastError != nil:
		left = "error: " + textutil.SanitizeTerminalText(state.LastError.Error())
		leftStyle = style.Foreground(r.theme.ErrorFg)
	case state.StatusMessage != "":
		left = textutil.SanitizeTerminalText(state.StatusMessage)
	default:
		left = statusSummary(state)
	}
	endX := r.drawTextLine(1, y, w-1, r.truncateTextToWidth(left, w-2), leftStyle)

	hints := buildFooterHelpText(state)
	hintsWidth := r.measureTextWidth(hints)
	if hints != "" && endX+2+hintsWidth <= w {
		r.drawTextLine(w-hintsWidth, y, hintsWidth, hints, style.Foreground(r.theme.SizeFg))
	}
}
