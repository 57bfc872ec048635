package xmlfmt

import (
	"reflect"
	"testing"
)

func TestClassifyLineKinds(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		kind   LineKind
		indent int
	}{
		{"empty", "", LineText, 0},
		{"plain text", "    hello", LineText, 2},
		{"comment", "  <!-- note -->", LineComment, 1},
		{"declaration", `<?xml version="1.0"?>`, LineDeclaration, 0},
		{"doctype", "<!DOCTYPE root>", LineDeclaration, 0},
		{"cdata", "  <![CDATA[x]]>", LineDeclaration, 1},
		{"close", "  </w:body>", LineClose, 1},
		{"open", `<w:p w:id="1">`, LineOpen, 0},
		{"self-closing", "    <w:sectPr/>", LineSelfClosing, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyLine(tt.line)
			if got.Kind != tt.kind {
				t.Fatalf("kind = %v, want %v", got.Kind, tt.kind)
			}
			if got.Indent != tt.indent {
				t.Fatalf("indent = %d, want %d", got.Indent, tt.indent)
			}
			if got.Match != -1 {
				t.Fatalf("fresh line should be unmatched, got %d", got.Match)
			}
		})
	}
}

func TestClassifyCloseExtractsTagName(t *testing.T) {
	line := ClassifyLine("  </w:document>")
	want := []Token{
		{Text: "</", Kind: TokenPunctuation},
		{Text: "w:document", Kind: TokenTag},
		{Text: ">", Kind: TokenPunctuation},
	}
	if !reflect.DeepEqual(line.Tokens, want) {
		t.Fatalf("tokens = %#v, want %#v", line.Tokens, want)
	}
}

func TestClassifyElementTokens(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		tokens []Token
	}{
		{
			name: "double-quoted attribute",
			line: `<w:t xml:space="preserve">`,
			tokens: []Token{
				{Text: "<", Kind: TokenPunctuation},
				{Text: "w:t", Kind: TokenTag},
				{Text: " ", Kind: TokenPunctuation},
				{Text: "xml:space", Kind: TokenAttrName},
				{Text: "=", Kind: TokenPunctuation},
				{Text: `"preserve"`, Kind: TokenAttrValue},
				{Text: ">", Kind: TokenPunctuation},
			},
		},
		{
			name: "single-quoted attribute keeps its quote",
			line: `<a b='1'/>`,
			tokens: []Token{
				{Text: "<", Kind: TokenPunctuation},
				{Text: "a", Kind: TokenTag},
				{Text: " ", Kind: TokenPunctuation},
				{Text: "b", Kind: TokenAttrName},
				{Text: "=", Kind: TokenPunctuation},
				{Text: "'1'", Kind: TokenAttrValue},
				{Text: "/>", Kind: TokenPunctuation},
			},
		},
		{
			name: "bare value and valueless attribute",
			line: `<input disabled width=40>`,
			tokens: []Token{
				{Text: "<", Kind: TokenPunctuation},
				{Text: "input", Kind: TokenTag},
				{Text: " ", Kind: TokenPunctuation},
				{Text: "disabled", Kind: TokenAttrName},
				{Text: " ", Kind: TokenPunctuation},
				{Text: "width", Kind: TokenAttrName},
				{Text: "=", Kind: TokenPunctuation},
				{Text: "40", Kind: TokenAttrValue},
				{Text: ">", Kind: TokenPunctuation},
			},
		},
		{
			name: "trailing content becomes a text token",
			line: `<br/>tail`,
			tokens: []Token{
				{Text: "<", Kind: TokenPunctuation},
				{Text: "br", Kind: TokenTag},
				{Text: "/>", Kind: TokenPunctuation},
				{Text: "tail", Kind: TokenText},
			},
		},
		{
			name: "unterminated quote is best-effort",
			line: `<a b="oops>`,
			tokens: []Token{
				{Text: "<", Kind: TokenPunctuation},
				{Text: "a", Kind: TokenTag},
				{Text: " ", Kind: TokenPunctuation},
				{Text: "b", Kind: TokenAttrName},
				{Text: "=", Kind: TokenPunctuation},
				{Text: `"oops"`, Kind: TokenAttrValue},
				{Text: ">", Kind: TokenPunctuation},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyLine(tt.line)
			if !reflect.DeepEqual(got.Tokens, tt.tokens) {
				t.Fatalf("tokens = %#v\nwant    %#v", got.Tokens, tt.tokens)
			}
		})
	}
}

func TestClassifyPlainTextRoundTrip(t *testing.T) {
	line := ClassifyLine(`<w:p a="1" b='2'>`)
	if got := line.PlainText(); got != `<w:p a="1" b='2'>` {
		t.Fatalf("PlainText = %q", got)
	}
}
