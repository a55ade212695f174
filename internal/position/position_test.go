package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		pos      Position
		isValid  bool
	}{
		{
			name:     "Valid position with filename",
			pos:      Position{Filename: "src/Foo.java", Line: 10, Column: 5, Offset: 100},
			isValid:  true,
			expected: "Foo.java:10:5",
		},
		{
			name:     "Valid position without filename",
			pos:      Position{Line: 1, Column: 1, Offset: 0},
			isValid:  true,
			expected: "1:1",
		},
		{
			name:    "Invalid position - zero line",
			pos:     Position{Line: 0, Column: 1, Offset: 0},
			isValid: false,
		},
		{
			name:    "Invalid position - negative offset",
			pos:     Position{Line: 1, Column: 1, Offset: -1},
			isValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.pos.IsValid())
			if tt.isValid {
				assert.Equal(t, tt.expected, tt.pos.String())
			}
		})
	}
}

func TestSourceFileLines(t *testing.T) {
	sf := NewSourceFile("Foo.java", "class Foo {\r\n  int x;\n}\n")

	require.Equal(t, 4, sf.LineCount())
	assert.Equal(t, "class Foo {", sf.GetLine(1))
	assert.Equal(t, "  int x;", sf.GetLine(2))
	assert.Equal(t, "}", sf.GetLine(3))
	assert.Equal(t, "", sf.GetLine(4))
	assert.Equal(t, "", sf.GetLine(0))

	assert.Equal(t, 1, sf.LineOf(0))
	assert.Equal(t, 1, sf.LineOf(12))
	assert.Equal(t, 2, sf.LineOf(13))
	assert.Equal(t, 3, sf.LineOf(22))
	assert.Equal(t, NoLine, sf.LineOf(-1))
	assert.Equal(t, NoLine, sf.LineOf(1000))
}

func TestPositionFromOffset(t *testing.T) {
	sf := NewSourceFile("A.java", "ab\ncd\n")

	pos := sf.PositionFromOffset(4)
	assert.Equal(t, Position{Filename: "A.java", Line: 2, Column: 2, Offset: 4}, pos)
	assert.False(t, sf.PositionFromOffset(99).IsValid())
}

func TestSourcePosition(t *testing.T) {
	sf := NewSourceFile("A.java", "int a;\nint b;\n")

	p := sf.SourcePosition(7, 13)
	assert.Equal(t, SourcePosition{Start: 7, Length: 6, Line: 2}, p)
	assert.Equal(t, 13, p.End())
	assert.Equal(t, "int b;", sf.Text(p))
	assert.False(t, p.IsSynthesized())

	assert.Equal(t, Unknown, sf.SourcePosition(5, 2))
	assert.True(t, Unknown.IsSynthesized())
	assert.Equal(t, "<synthesized>", Unknown.String())
	assert.Equal(t, "", sf.Text(Unknown))
}
