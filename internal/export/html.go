// Package export renders a formatted XML part as a standalone HTML page.
package export

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/xieguanglei/ooxml-viewer/internal/xmlfmt"
)

var tokenClasses = map[xmlfmt.TokenKind]string{
	xmlfmt.TokenText:        "text",
	xmlfmt.TokenPunctuation: "punct",
	xmlfmt.TokenTag:         "tag",
	xmlfmt.TokenAttrName:    "attr-name",
	xmlfmt.TokenAttrValue:   "attr-value",
	xmlfmt.TokenComment:     "comment",
	xmlfmt.TokenDeclaration: "declaration",
}

const pageStyle = `body { background: #1e1e1e; color: #d4d4d4; font-family: monospace; margin: 1em; }
h1 { font-size: 1em; color: #9cdcfe; }
.line { white-space: pre; }
.folded::after { content: " …"; color: #808080; }
.tag { color: #569cd6; }
.attr-name { color: #9cdcfe; }
.attr-value { color: #ce9178; }
.punct { color: #808080; }
.comment { color: #6a9955; }
.declaration { color: #c586c0; }
.text { color: #d4d4d4; }`

// WriteHTML writes doc as a self-contained HTML page. The current fold
// state is respected: hidden lines are omitted and collapsed origins carry a
// marker class. Every literal fragment is escaped, so document content can
// never be interpreted as the page's own markup.
func WriteHTML(w io.Writer, partPath string, doc *xmlfmt.Document) error {
	if doc == nil {
		return fmt.Errorf("export %s: no document", partPath)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(partPath))
	fmt.Fprintf(&b, "<style>\n%s\n</style>\n", pageStyle)
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(partPath))

	for _, i := range doc.VisibleLines() {
		line := doc.Lines[i]
		class := "line"
		if doc.Collapsed(i) {
			class = "line folded"
		}
		fmt.Fprintf(&b, "<div class=%q style=\"padding-left: %dch\">", class, line.Indent*2)
		for _, tok := range line.Tokens {
			fmt.Fprintf(&b, "<span class=%q>%s</span>", tokenClasses[tok.Kind], html.EscapeString(tok.Text))
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("</body>\n</html>\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("export %s: %w", partPath, err)
	}
	return nil
}
