package render

import (
	"github.com/gdamore/tcell/v2"

	xmlfmt "github.com/xieguanglei/ooxml-viewer/internal/xmlfmt"
)

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	FooterBg    tcell.Color
	FooterFg    tcell.Color
	DirectoryFg tcell.Color
	FileFg      tcell.Color
	SizeFg      tcell.Color
	GuideFg     tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	InactiveBg  tcell.Color
	InactiveFg  tcell.Color
	CursorBg    tcell.Color
	ErrorFg     tcell.Color
	FoldGlyphFg tcell.Color
	FoldBadgeFg tcell.Color

	// XML token colors
	TagFg         tcell.Color
	AttrNameFg    tcell.Color
	AttrValueFg   tcell.Color
	PunctuationFg tcell.Color
	TextFg        tcell.Color
	CommentFg     tcell.Color
	DeclarationFg tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		HeaderBg:    tcell.ColorDefault,
		HeaderFg:    tcell.ColorDefault,
		FooterBg:    tcell.ColorDefault,
		FooterFg:    tcell.ColorDefault,
		DirectoryFg: tcell.Color33,
		FileFg:      tcell.ColorDefault,
		SizeFg:      tcell.ColorLightSlateGray,
		GuideFg:     tcell.Color238,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		InactiveBg:  tcell.Color238,
		InactiveFg:  tcell.ColorWhite,
		CursorBg:    tcell.Color236,
		ErrorFg:     tcell.Color203,
		FoldGlyphFg: tcell.Color244,
		FoldBadgeFg: tcell.ColorLightSlateGray,

		TagFg:         tcell.Color33,  // blue element names
		AttrNameFg:    tcell.Color178, // amber attribute names
		AttrValueFg:   tcell.Color71,  // green quoted values
		PunctuationFg: tcell.Color244, // grey angle brackets and equals
		TextFg:        tcell.ColorDefault,
		CommentFg:     tcell.Color242,
		DeclarationFg: tcell.Color133, // purple declarations and PIs
	}
}

// tokenStyle maps a token kind to its terminal style.
func (r *Renderer) tokenStyle(kind xmlfmt.TokenKind, base tcell.Style) tcell.Style {
	switch kind {
	case xmlfmt.TokenTag:
		return base.Foreground(r.theme.TagFg)
	case xmlfmt.TokenAttrName:
		return base.Foreground(r.theme.AttrNameFg)
	case xmlfmt.TokenAttrValue:
		return base.Foreground(r.theme.AttrValueFg)
	case xmlfmt.TokenPunctuation:
		return base.Foreground(r.theme.PunctuationFg)
	case xmlfmt.TokenComment:
		return base.Foreground(r.theme.CommentFg).Italic(true)
	case xmlfmt.TokenDeclaration:
		return base.Foreground(r.theme.DeclarationFg)
	default:
		return base.Foreground(r.theme.TextFg)
	}
}
