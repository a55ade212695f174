package frontend

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// ErrBadLiteral is returned for literal tokens that cannot be decoded.
var ErrBadLiteral = errors.New("malformed literal")

func badLiteral(tok string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w %s: %v", ErrBadLiteral, tok, cause)
	}
	return fmt.Errorf("%w %s", ErrBadLiteral, tok)
}

// DecodeNumber decodes a numeric literal token. The result is an int32,
// int64, float32 or float64 following the token's suffix and form.
// Underscores are ignored; hex, octal and binary integers wrap to the
// target width the way the source language does.
func DecodeNumber(token string) (any, error) {
	s := strings.ReplaceAll(token, "_", "")
	if s == "" {
		return nil, badLiteral(token, nil)
	}
	lower := strings.ToLower(s)
	hex := strings.HasPrefix(lower, "0x")
	isFloat := strings.ContainsAny(lower, ".p") || (!hex && strings.ContainsAny(lower, "efd"))
	if isFloat {
		bits := 64
		switch lower[len(lower)-1] {
		case 'f':
			bits, s = 32, s[:len(s)-1]
		case 'd':
			s = s[:len(s)-1]
		}
		f, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return nil, badLiteral(token, err)
		}
		if bits == 32 {
			return float32(f), nil
		}
		return f, nil
	}
	bits := 32
	if strings.HasSuffix(lower, "l") {
		bits, s = 64, s[:len(s)-1]
	}
	return decodeInteger(token, s, bits)
}

func decodeInteger(token, s string, bits int) (any, error) {
	base, digits := 10, s
	switch lower := strings.ToLower(s); {
	case strings.HasPrefix(lower, "0x"):
		base, digits = 16, s[2:]
	case strings.HasPrefix(lower, "0b"):
		base, digits = 2, s[2:]
	case len(s) > 1 && s[0] == '0':
		base, digits = 8, s[1:]
	}
	u, err := strconv.ParseUint(digits, base, bits)
	if err != nil {
		return nil, badLiteral(token, err)
	}
	// A decimal literal may reach 2^(bits-1) only as the operand of a
	// unary minus, where wrapping yields the minimum value.
	if base == 10 && u > 1<<(bits-1) {
		return nil, badLiteral(token, strconv.ErrRange)
	}
	if bits == 32 {
		return int32(uint32(u)), nil
	}
	return int64(u), nil
}

// DecodeChar decodes a quoted character literal.
func DecodeChar(token string) (rune, error) {
	if len(token) < 3 || token[0] != '\'' || token[len(token)-1] != '\'' {
		return 0, badLiteral(token, nil)
	}
	s, err := unescape(token[1 : len(token)-1])
	if err != nil {
		return 0, badLiteral(token, err)
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r > math.MaxUint16 {
		return 0, badLiteral(token, nil)
	}
	return r, nil
}

// DecodeString decodes a quoted string literal or a text block.
func DecodeString(token string) (string, error) {
	if strings.HasPrefix(token, `"""`) {
		return decodeTextBlock(token)
	}
	if len(token) < 2 || token[0] != '"' || token[len(token)-1] != '"' {
		return "", badLiteral(token, nil)
	}
	s, err := unescape(token[1 : len(token)-1])
	if err != nil {
		return "", badLiteral(token, err)
	}
	return s, nil
}

// decodeTextBlock strips the delimiters and the incidental indentation
// shared by all non-blank lines, then processes escapes.
func decodeTextBlock(token string) (string, error) {
	if len(token) < 6 || !strings.HasSuffix(token, `"""`) {
		return "", badLiteral(token, nil)
	}
	body := token[3 : len(token)-3]
	nl := strings.IndexByte(body, '\n')
	if nl < 0 {
		return "", badLiteral(token, nil)
	}
	lines := strings.Split(body[nl+1:], "\n")
	// The closing delimiter's own line counts towards the indentation.
	last := lines[len(lines)-1]
	closingAlone := strings.TrimSpace(last) == ""
	indent := math.MaxInt
	for i, l := range lines {
		if strings.TrimSpace(l) == "" && !(closingAlone && i == len(lines)-1) {
			continue
		}
		indent = min(indent, len(l)-len(strings.TrimLeft(l, " \t")))
	}
	if indent == math.MaxInt {
		indent = 0
	}
	var sb strings.Builder
	for i, l := range lines {
		if closingAlone && i == len(lines)-1 {
			break
		}
		if len(l) >= indent {
			l = l[indent:]
		}
		sb.WriteString(strings.TrimRight(l, " \t"))
		if i < len(lines)-1 {
			sb.WriteByte('\n')
		}
	}
	return unescape(sb.String())
}

func unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var units []uint16
	flush := func(sb *strings.Builder) {
		if len(units) > 0 {
			sb.WriteString(string(utf16.Decode(units)))
			units = units[:0]
		}
	}
	var sb strings.Builder
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			flush(&sb)
			r, size := utf8.DecodeRuneInString(s[i:])
			sb.WriteRune(r)
			i += size
			continue
		}
		if i+1 >= len(s) {
			return "", errors.New("trailing backslash")
		}
		i++
		switch e := s[i]; e {
		case 'b', 't', 'n', 'f', 'r', 's', '"', '\'', '\\':
			flush(&sb)
			sb.WriteByte(simpleEscapes[e])
			i++
		case 'u':
			for i < len(s) && s[i] == 'u' {
				i++
			}
			if i+4 > len(s) {
				return "", errors.New("short unicode escape")
			}
			v, err := strconv.ParseUint(s[i:i+4], 16, 16)
			if err != nil {
				return "", err
			}
			units = append(units, uint16(v))
			i += 4
		case '\n':
			flush(&sb)
			i++
		default:
			if e < '0' || e > '7' {
				return "", fmt.Errorf("unknown escape \\%c", e)
			}
			flush(&sb)
			// Up to three octal digits, at most \377.
			end, limit := i, 3
			if e > '3' {
				limit = 2
			}
			for end < len(s) && end-i < limit && s[end] >= '0' && s[end] <= '7' {
				end++
			}
			v, _ := strconv.ParseUint(s[i:end], 8, 8)
			sb.WriteRune(rune(v))
			i = end
		}
	}
	flush(&sb)
	return sb.String(), nil
}

var simpleEscapes = map[byte]byte{
	'b': '\b', 't': '\t', 'n': '\n', 'f': '\f', 'r': '\r',
	's': ' ', '"': '"', '\'': '\'', '\\': '\\',
}
