package leptjson

import (
	"strings"

	"github.com/lattice-substrate/leptjson/internal/cursor"
)

// parseString consumes a quoted JSON string starting at the opening '"'
// and decodes escapes. A lone low surrogate escape (\uDC00-\uDFFF not
// preceded by a high surrogate) is accepted, but it is not kept as a
// surrogate: a Go string cannot hold one, so it appears in the result as
// U+FFFD. A lone high surrogate not followed by a valid low surrogate
// escape fails invalid unicode surrogate.
func parseString(c *cursor.Cursor) (Value, error) {
	c.Next() // consume opening '"'

	var b strings.Builder
	for {
		ch := c.Next()
		switch {
		case ch == cursor.EOF:
			return Value{}, newParseError(errMissQuotationMark)
		case ch == '"':
			return NewString(b.String()), nil
		case ch == '\\':
			r, err := parseEscape(c)
			if err != nil {
				return Value{}, err
			}
			b.WriteRune(r)
		case ch < 0x20:
			return Value{}, newParseError(errInvalidStringChar)
		default:
			b.WriteRune(ch)
		}
	}
}

// parseEscape consumes the character(s) after a backslash already
// consumed by the caller.
func parseEscape(c *cursor.Cursor) (rune, error) {
	switch c.Next() {
	case '"':
		return '"', nil
	case '\\':
		return '\\', nil
	case '/':
		return '/', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'u':
		return parseUnicodeEscape(c)
	default:
		return 0, newParseError(errInvalidStringEscape)
	}
}

const (
	highSurrogateLo = 0xD800
	highSurrogateHi = 0xDBFF
	lowSurrogateLo  = 0xDC00
	lowSurrogateHi  = 0xDFFF
)

// parseUnicodeEscape decodes a \uXXXX escape, reassembling a surrogate
// pair into its supplementary-plane scalar when the first code point is
// a high surrogate. A lone low surrogate is returned unchanged; all
// other code points pass through directly.
func parseUnicodeEscape(c *cursor.Cursor) (rune, error) {
	hi, err := readHex4(c)
	if err != nil {
		return 0, err
	}

	if hi < highSurrogateLo || hi > highSurrogateHi {
		return rune(hi), nil
	}

	if c.Next() != '\\' || c.Next() != 'u' {
		return 0, newParseError(errInvalidUnicodeSurrogate)
	}
	lo, err := readHex4(c)
	if err != nil {
		return 0, err
	}
	if lo < lowSurrogateLo || lo > lowSurrogateHi {
		return 0, newParseError(errInvalidUnicodeSurrogate)
	}

	return 0x10000 + (rune(hi)-highSurrogateLo)*0x400 + (rune(lo) - lowSurrogateLo), nil
}

// readHex4 reads exactly four case-insensitive hex digits, failing
// invalid unicode hex on truncation or a non-hex character.
func readHex4(c *cursor.Cursor) (int, error) {
	result := 0
	for i := 0; i < 4; i++ {
		d := c.Next()
		v, ok := hexDigitValue(d)
		if !ok {
			return 0, newParseError(errInvalidUnicodeHex)
		}
		result = result*16 + v
	}
	return result, nil
}

func hexDigitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}
