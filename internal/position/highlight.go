package position

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// contextLines is the number of lines shown around an excerpt's line.
const contextLines = 1

// Excerpt renders the lines around line with line numbers. A positive
// column puts a caret under that column.
func (sf *SourceFile) Excerpt(line, column int) string {
	if line < 1 || line > sf.LineCount() {
		return ""
	}
	var result strings.Builder
	if column > 0 {
		fmt.Fprintf(&result, "  --> %s\n", Position{Filename: sf.Filename, Line: line, Column: column}.String())
	}
	start := max(1, line-contextLines)
	end := min(sf.LineCount(), line+contextLines)
	for n := start; n <= end; n++ {
		text := sf.GetLine(n)
		fmt.Fprintf(&result, "%4d | %s\n", n, text)
		if n == line && column > 0 {
			fmt.Fprintf(&result, "     | %s^\n", pad(text, column-1))
		}
	}
	return result.String()
}

// Highlight renders the first line of p with the range underlined.
func (sf *SourceFile) Highlight(p SourcePosition) string {
	if p.IsSynthesized() || p.Line < 1 || p.Line > sf.LineCount() {
		return ""
	}
	text := sf.GetLine(p.Line)
	col := p.Start - sf.lineOffsets[p.Line-1]
	if col < 0 || col > len(text) {
		return ""
	}
	width := min(p.Length, len(text)-col)
	width = max(1, utf8.RuneCountInString(text[col:col+width]))

	var result strings.Builder
	fmt.Fprintf(&result, "  --> %s\n", sf.PositionFromOffset(p.Start).String())
	fmt.Fprintf(&result, "%4d | %s\n", p.Line, text)
	fmt.Fprintf(&result, "     | %s%s\n", pad(text, utf8.RuneCountInString(text[:col])), strings.Repeat("^", width))
	return result.String()
}

// pad returns the whitespace that lines up with the first n runes of text,
// keeping tabs so the caret stays aligned.
func pad(text string, n int) string {
	var b strings.Builder
	for i, r := range []rune(text) {
		if i >= n {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	for i := utf8.RuneCountInString(text); i < n; i++ {
		b.WriteByte(' ')
	}
	return b.String()
}
