package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNumber(t *testing.T) {
	tests := []struct {
		token string
		want  any
	}{
		{"0", int32(0)},
		{"42", int32(42)},
		{"1_000_000", int32(1000000)},
		{"0x7f", int32(127)},
		{"0xFFFFFFFF", int32(-1)},
		{"017", int32(15)},
		{"0b101", int32(5)},
		{"2147483648", int32(-2147483648)},
		{"10L", int64(10)},
		{"0xFFl", int64(255)},
		{"1.5", 1.5},
		{"1e3", 1000.0},
		{"2d", 2.0},
		{"2.5f", float32(2.5)},
		{"0x1p3", 8.0},
		{".5", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := DecodeNumber(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeNumberRejects(t *testing.T) {
	for _, tok := range []string{"", "2147483649", "0xG", "9223372036854775809L", "1.2.3"} {
		_, err := DecodeNumber(tok)
		assert.ErrorIs(t, err, ErrBadLiteral, tok)
	}
}

func TestDecodeChar(t *testing.T) {
	tests := map[string]rune{
		`'a'`:      'a',
		`'\n'`:     '\n',
		`'\''`:     '\'',
		`'\u0041'`: 'A',
		`'\101'`:   'A',
		`'\0'`:     0,
		`'é'`:      'é',
	}
	for tok, want := range tests {
		got, err := DecodeChar(tok)
		require.NoError(t, err, tok)
		assert.Equal(t, want, got, tok)
	}

	for _, tok := range []string{`''`, `'ab'`, `'a`, `'\q'`} {
		_, err := DecodeChar(tok)
		assert.ErrorIs(t, err, ErrBadLiteral, tok)
	}
}

func TestDecodeString(t *testing.T) {
	tests := map[string]string{
		`""`:                  "",
		`"hi"`:                "hi",
		`"a\tb\\c"`:           "a\tb\\c",
		`"say \"x\""`:         `say "x"`,
		`"\uD83D\uDE00"`:    "😀",
		`"\7\77\377\400"`:     "\a?ÿ 0",
		"\"\"\"\n  a\n   b\n  \"\"\"": "a\n b\n",
		"\"\"\"\n    x\n  y\"\"\"":    "  x\ny",
	}
	for tok, want := range tests {
		got, err := DecodeString(tok)
		require.NoError(t, err, tok)
		assert.Equal(t, want, got, tok)
	}

	_, err := DecodeString(`"open`)
	assert.ErrorIs(t, err, ErrBadLiteral)
	_, err = DecodeString(`"""x"""`)
	assert.ErrorIs(t, err, ErrBadLiteral, "text blocks start with a line break")
}
