package xmlfmt

// MatchFolds pairs every open line with its closing line in one
// left-to-right pass. Open lines push their index on a stack; a close line
// takes the nearest stack entry at its own indent level, searching from the
// top down so malformed nesting is skipped over instead of breaking the
// scan. A close with no candidate at its level stays unmatched. Lines of any
// other kind never participate.
func MatchFolds(lines []Line) {
	stack := make([]int, 0, 32)
	for i := range lines {
		switch lines[i].Kind {
		case LineOpen:
			stack = append(stack, i)
		case LineClose:
			for j := len(stack) - 1; j >= 0; j-- {
				open := stack[j]
				if lines[open].Indent != lines[i].Indent {
					continue
				}
				lines[open].Match = i
				lines[i].Match = open
				stack = append(stack[:j], stack[j+1:]...)
				break
			}
		}
	}
}
