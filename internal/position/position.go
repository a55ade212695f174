// Package position provides source position tracking for the translator.
// Tree nodes record a compact SourcePosition (offset, length, line); the
// SourceFile type maps offsets back to line/column pairs for diagnostics.
package position

import (
	"fmt"
	"path/filepath"
	"sort"
)

// NoLine marks a node that has no source line, typically one synthesized by a pass.
const NoLine = -1

// Position represents a single point in source code
type Position struct {
	Filename string // Source file name
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Offset   int    // 0-based byte offset in source
}

// IsValid returns true if the position is valid
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0 && p.Offset >= 0
}

// String returns a string representation of the position
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", filepath.Base(p.Filename), p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SourcePosition is the source range attached to a tree node.
type SourcePosition struct {
	Start  int // 0-based byte offset, -1 when unknown
	Length int // length in bytes
	Line   int // 1-based line, NoLine when synthesized
}

// Unknown is the position of a synthesized node.
var Unknown = SourcePosition{Start: -1, Length: 0, Line: NoLine}

// IsSynthesized reports whether the position carries no source information.
func (p SourcePosition) IsSynthesized() bool {
	return p.Start < 0 && p.Line == NoLine
}

// End returns the exclusive end offset.
func (p SourcePosition) End() int {
	if p.Start < 0 {
		return -1
	}
	return p.Start + p.Length
}

// String returns a string representation of the position
func (p SourcePosition) String() string {
	if p.IsSynthesized() {
		return "<synthesized>"
	}
	return fmt.Sprintf("line %d [%d+%d]", p.Line, p.Start, p.Length)
}

// SourceFile represents a source file with content and line tracking
type SourceFile struct {
	Filename    string // File path
	Content     string // Source code content
	lineOffsets []int  // byte offset of the first character of each line
}

// NewSourceFile creates a new source file from content
func NewSourceFile(filename, content string) *SourceFile {
	offsets := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return &SourceFile{
		Filename:    filename,
		Content:     content,
		lineOffsets: offsets,
	}
}

// LineCount returns the number of lines in the file.
func (sf *SourceFile) LineCount() int {
	return len(sf.lineOffsets)
}

// GetLine returns the specified line (1-based) without its terminator, or
// the empty string if the line does not exist.
func (sf *SourceFile) GetLine(lineNum int) string {
	if lineNum < 1 || lineNum > len(sf.lineOffsets) {
		return ""
	}
	start := sf.lineOffsets[lineNum-1]
	end := len(sf.Content)
	if lineNum < len(sf.lineOffsets) {
		end = sf.lineOffsets[lineNum] - 1
	}
	if end > start && sf.Content[end-1] == '\r' {
		end--
	}
	return sf.Content[start:end]
}

// LineOf returns the 1-based line containing offset, or NoLine when the
// offset is outside the file.
func (sf *SourceFile) LineOf(offset int) int {
	if offset < 0 || offset > len(sf.Content) {
		return NoLine
	}
	// first line whose start is greater than offset, minus one
	return sort.SearchInts(sf.lineOffsets, offset+1)
}

// PositionFromOffset converts a byte offset to a Position
func (sf *SourceFile) PositionFromOffset(offset int) Position {
	line := sf.LineOf(offset)
	if line == NoLine {
		return Position{}
	}
	return Position{
		Filename: sf.Filename,
		Line:     line,
		Column:   offset - sf.lineOffsets[line-1] + 1,
		Offset:   offset,
	}
}

// SourcePosition builds the node position for the byte range [start, end).
func (sf *SourceFile) SourcePosition(start, end int) SourcePosition {
	if start < 0 || end < start {
		return Unknown
	}
	return SourcePosition{Start: start, Length: end - start, Line: sf.LineOf(start)}
}

// Text returns the source text of a node position.
func (sf *SourceFile) Text(p SourcePosition) string {
	if p.Start < 0 || p.End() > len(sf.Content) {
		return ""
	}
	return sf.Content[p.Start:p.End()]
}
