package leptjson

import "github.com/lattice-substrate/leptjson/internal/cursor"

// Parse converts a complete JSON text into a Value tree. text is taken
// as already-decoded Unicode scalar values; this package never performs
// its own UTF-8 validation beyond what Go's string/rune machinery gives
// for free. On any malformed input Parse returns a *ParseError carrying
// one of the canonical messages in errors.go.
func Parse(text string) (Value, error) {
	c := cursor.New(text)
	skipWhitespace(&c)

	v, err := parseValue(&c)
	if err != nil {
		return Value{}, err
	}

	skipWhitespace(&c)
	if !c.Done() {
		return Value{}, newParseError(errRootNotSingular)
	}
	return v, nil
}

func skipWhitespace(c *cursor.Cursor) {
	for {
		switch c.Peek() {
		case ' ', '\t', '\n', '\r':
			c.Next()
		default:
			return
		}
	}
}

func parseValue(c *cursor.Cursor) (Value, error) {
	switch c.Peek() {
	case 'n':
		return parseLiteral(c, "null", Value{Kind: KindNull})
	case 't':
		return parseLiteral(c, "true", NewBool(true))
	case 'f':
		return parseLiteral(c, "false", NewBool(false))
	case '"':
		return parseString(c)
	case '[':
		return parseArray(c)
	case '{':
		return parseObject(c)
	case cursor.EOF:
		return Value{}, newParseError(errExpectValue)
	default:
		return parseNumber(c)
	}
}

// parseLiteral consumes exactly the keyword text (null/true/false); any
// mismatch, including truncation at EOF, fails invalid value.
func parseLiteral(c *cursor.Cursor, keyword string, v Value) (Value, error) {
	for _, want := range keyword {
		if c.Next() != want {
			return Value{}, newParseError(errInvalidValue)
		}
	}
	return v, nil
}

func parseArray(c *cursor.Cursor) (Value, error) {
	c.Next() // consume '['
	skipWhitespace(c)

	if c.Peek() == ']' {
		c.Next()
		return Value{Kind: KindArray}, nil
	}

	var elems []Value
	for {
		v, err := parseValue(c)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, v)
		skipWhitespace(c)

		switch c.Peek() {
		case ',':
			c.Next()
			skipWhitespace(c)
		case ']':
			c.Next()
			return Value{Kind: KindArray, Elems: elems}, nil
		default:
			return Value{}, newParseError(errMissCommaOrSquareBracket)
		}
	}
}

func parseObject(c *cursor.Cursor) (Value, error) {
	c.Next() // consume '{'
	skipWhitespace(c)

	if c.Peek() == cursor.EOF {
		return Value{}, newParseError(errMissKey)
	}
	if c.Peek() == '}' {
		c.Next()
		return Value{Kind: KindObject}, nil
	}

	var members []Member
	for {
		key, err := parseObjectKey(c)
		if err != nil {
			return Value{}, err
		}
		skipWhitespace(c)

		if c.Peek() != ':' {
			return Value{}, newParseError(errMissColon)
		}
		c.Next()
		skipWhitespace(c)

		val, err := parseValue(c)
		if err != nil {
			return Value{}, err
		}
		members = setMember(members, key, val)
		skipWhitespace(c)

		switch c.Peek() {
		case '}':
			c.Next()
			return Value{Kind: KindObject, Members: members}, nil
		case ',':
			c.Next()
			skipWhitespace(c)
		default:
			return Value{}, newParseError(errMissCommaOrCurlyBracket)
		}
	}
}

// parseObjectKey requires a quoted string in key position, reclassifying
// any string-parse failure there as miss key.
func parseObjectKey(c *cursor.Cursor) (string, error) {
	if c.Peek() != '"' {
		return "", newParseError(errMissKey)
	}
	v, err := parseString(c)
	if err != nil {
		return "", newParseError(errMissKey)
	}
	return v.Str, nil
}
