package xmlfmt

// TokenKind is the semantic style of one rendered span.
type TokenKind int

const (
	TokenText TokenKind = iota
	TokenPunctuation
	TokenTag
	TokenAttrName
	TokenAttrValue
	TokenComment
	TokenDeclaration
)

// LineKind classifies a reflowed line by its leading markup.
type LineKind int

const (
	LineText LineKind = iota
	LineOpen
	LineClose
	LineSelfClosing
	LineComment
	LineDeclaration
)

// Token is one styled span of a formatted line. Text is the literal document
// fragment; renderers that emit markup must escape it before embedding.
type Token struct {
	Text string
	Kind TokenKind
}

// Line is one display row of a formatted XML part. Match is the index of the
// structurally paired line (the close line for an open line and vice versa),
// or -1 when the line has no pair.
type Line struct {
	Indent int
	Kind   LineKind
	Tokens []Token
	Match  int
}

// PlainText joins the line's token texts without styling.
func (l Line) PlainText() string {
	switch len(l.Tokens) {
	case 0:
		return ""
	case 1:
		return l.Tokens[0].Text
	}
	total := 0
	for _, tok := range l.Tokens {
		total += len(tok.Text)
	}
	buf := make([]byte, 0, total)
	for _, tok := range l.Tokens {
		buf = append(buf, tok.Text...)
	}
	return string(buf)
}
