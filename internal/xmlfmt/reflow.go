package xmlfmt

import "strings"

const indentWidth = 2

// Reflow splits packed XML markup into one tag or text run per line and
// indents each line by two spaces per nesting level. The pass is purely
// lexical: it never validates tag-name pairing and never fails, so malformed
// or unbalanced input still produces a readable layout (depth is clamped at
// zero rather than going negative).
func Reflow(raw string) string {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	normalized = collapseInterTagGaps(normalized)

	var out strings.Builder
	out.Grow(len(normalized) + len(normalized)/4)

	depth := 0
	first := true
	for _, segment := range splitTagRuns(normalized) {
		trimmed := strings.TrimSpace(segment)
		if trimmed == "" {
			continue
		}

		printDepth := depth
		switch {
		case strings.HasPrefix(trimmed, "<?"), strings.HasPrefix(trimmed, "<!"):
			// Declarations, comments, doctypes and CDATA openers keep the
			// current depth.
		case strings.HasPrefix(trimmed, "</"):
			if depth > 0 {
				depth--
			}
			printDepth = depth
		case strings.HasPrefix(trimmed, "<"):
			if !strings.HasSuffix(trimmed, "/>") {
				depth++
			}
		}

		if !first {
			out.WriteByte('\n')
		}
		first = false
		for i := 0; i < printDepth*indentWidth; i++ {
			out.WriteByte(' ')
		}
		out.WriteString(trimmed)
	}

	return out.String()
}

// collapseInterTagGaps removes whitespace-only runs that sit strictly between
// a '>' and the next '<', so adjacent tags do not yield blank text lines.
func collapseInterTagGaps(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for i < len(s) {
		c := s[i]
		b.WriteByte(c)
		i++
		if c != '>' {
			continue
		}

		j := i
		for j < len(s) && isXMLSpace(s[j]) {
			j++
		}
		if j < len(s) && s[j] == '<' && j > i {
			i = j
		}
	}
	return b.String()
}

// splitTagRuns breaks the text before every '<' and after every '>',
// treating raw newlines as breaks as well.
func splitTagRuns(s string) []string {
	segments := make([]string, 0, 64)
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			if i > start {
				segments = append(segments, s[start:i])
			}
			start = i
		case '>', '\n':
			segments = append(segments, s[start:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		segments = append(segments, s[start:])
	}
	return segments
}

func isXMLSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}
