package xmlfmt

import "strings"

// ClassifyLine turns one reflowed line into its kind and token spans. The
// indent level is read back from the leading padding Reflow produced; the
// fold pairing (Match) is left at -1 for MatchFolds to fill in.
//
// Classification is prefix-based and strictly lexical. Malformed markup
// yields best-effort tokens rather than an error.
func ClassifyLine(line string) Line {
	indent := leadingSpaces(line) / indentWidth
	trimmed := strings.TrimSpace(line)

	out := Line{Indent: indent, Match: -1}
	switch {
	case trimmed == "":
		out.Kind = LineText
	case strings.HasPrefix(trimmed, "<!--"):
		out.Kind = LineComment
		out.Tokens = []Token{{Text: trimmed, Kind: TokenComment}}
	case strings.HasPrefix(trimmed, "<?"), strings.HasPrefix(trimmed, "<!"):
		out.Kind = LineDeclaration
		out.Tokens = []Token{{Text: trimmed, Kind: TokenDeclaration}}
	case strings.HasPrefix(trimmed, "</"):
		out.Kind = LineClose
		name := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(trimmed, "</"), ">"))
		out.Tokens = []Token{
			{Text: "</", Kind: TokenPunctuation},
			{Text: name, Kind: TokenTag},
			{Text: ">", Kind: TokenPunctuation},
		}
	case strings.HasPrefix(trimmed, "<"):
		classifyElement(&out, trimmed)
	default:
		out.Kind = LineText
		out.Tokens = []Token{{Text: trimmed, Kind: TokenText}}
	}
	return out
}

func classifyElement(out *Line, trimmed string) {
	tag := trimmed
	trailing := ""
	if end := strings.IndexByte(trimmed, '>'); end >= 0 {
		tag = trimmed[:end+1]
		trailing = trimmed[end+1:]
	}

	inner := strings.TrimPrefix(tag, "<")
	selfClosing := false
	terminator := ""
	switch {
	case strings.HasSuffix(inner, "/>"):
		selfClosing = true
		terminator = "/>"
		inner = inner[:len(inner)-2]
	case strings.HasSuffix(inner, ">"):
		terminator = ">"
		inner = inner[:len(inner)-1]
	}

	name := inner
	attrText := ""
	if idx := strings.IndexAny(inner, " \t"); idx >= 0 {
		name = inner[:idx]
		attrText = inner[idx:]
	}

	if selfClosing {
		out.Kind = LineSelfClosing
	} else {
		out.Kind = LineOpen
	}

	tokens := make([]Token, 0, 4)
	tokens = append(tokens,
		Token{Text: "<", Kind: TokenPunctuation},
		Token{Text: name, Kind: TokenTag},
	)
	for _, a := range scanAttributes(attrText) {
		tokens = append(tokens,
			Token{Text: " ", Kind: TokenPunctuation},
			Token{Text: a.name, Kind: TokenAttrName},
		)
		if !a.hasValue {
			continue
		}
		tokens = append(tokens, Token{Text: "=", Kind: TokenPunctuation})
		value := a.value
		if a.quote != 0 {
			value = string(a.quote) + a.value + string(a.quote)
		}
		tokens = append(tokens, Token{Text: value, Kind: TokenAttrValue})
	}
	if terminator != "" {
		tokens = append(tokens, Token{Text: terminator, Kind: TokenPunctuation})
	}
	if trailing != "" {
		tokens = append(tokens, Token{Text: trailing, Kind: TokenText})
	}
	out.Tokens = tokens
}

type attribute struct {
	name     string
	value    string
	quote    byte // '"', '\'' or 0 for a bare value
	hasValue bool
}

// scanAttributes reads name[=value] pairs from a tag interior. Values may be
// double-quoted, single-quoted or bare; the quote character is kept so the
// value can be echoed back verbatim. The scan never fails: malformed syntax
// produces a partial pair and continues at the next field.
func scanAttributes(s string) []attribute {
	var attrs []attribute
	i := 0
	for i < len(s) {
		for i < len(s) && isXMLSpace(s[i]) {
			i++
		}
		if i >= len(s) {
			break
		}

		start := i
		for i < len(s) && !isXMLSpace(s[i]) && s[i] != '=' {
			i++
		}
		name := s[start:i]

		if i >= len(s) || s[i] != '=' {
			if name != "" {
				attrs = append(attrs, attribute{name: name})
			}
			continue
		}
		i++ // consume '='

		attr := attribute{name: name, hasValue: true}
		if i < len(s) && (s[i] == '"' || s[i] == '\'') {
			attr.quote = s[i]
			i++
			valueStart := i
			for i < len(s) && s[i] != attr.quote {
				i++
			}
			attr.value = s[valueStart:i]
			if i < len(s) {
				i++ // closing quote
			}
		} else {
			valueStart := i
			for i < len(s) && !isXMLSpace(s[i]) {
				i++
			}
			attr.value = s[valueStart:i]
		}
		attrs = append(attrs, attr)
	}
	return attrs
}

func leadingSpaces(s string) int {
	count := 0
	for count < len(s) && s[count] == ' ' {
		count++
	}
	return count
}
