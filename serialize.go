package leptjson

import (
	"fmt"
	"strings"

	"github.com/lattice-substrate/leptjson/internal/numfmt"
)

// Stringify converts a Value tree into its JSON text form. It fails with
// a *StringifyError only for a Kind outside the six recognized values or
// a NaN/infinite number, neither of which Parse produces. Objects
// serialize their members in
// iteration order (no RFC 8785 key sorting); numbers are formatted at
// 17 significant digits via internal/numfmt.
func Stringify(v Value) (string, error) {
	var b strings.Builder
	if err := stringifyValue(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

func stringifyValue(b *strings.Builder, v Value) error {
	switch v.Kind {
	case KindNull:
		b.WriteString("null")
		return nil
	case KindBool:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
		return nil
	case KindNumber:
		return stringifyNumber(b, v.Num)
	case KindString:
		stringifyString(b, v.Str)
		return nil
	case KindArray:
		return stringifyArray(b, v.Elems)
	case KindObject:
		return stringifyObject(b, v.Members)
	default:
		return newStringifyError(fmt.Sprintf("leptjson: unknown value kind %d", v.Kind))
	}
}

func stringifyNumber(b *strings.Builder, f float64) error {
	s, err := numfmt.FormatDouble(f)
	if err != nil {
		return newStringifyError(fmt.Sprintf("leptjson: number serialization error: %v", err))
	}
	b.WriteString(s)
	return nil
}

// stringifyString applies the escaping priority order
// \" \\ \b \f \n \r \t, then \u00XX for any other control character,
// with everything else (including '/' and non-ASCII) emitted verbatim.
func stringifyString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}

func stringifyArray(b *strings.Builder, elems []Value) error {
	b.WriteByte('[')
	for i, e := range elems {
		if i > 0 {
			b.WriteByte(',')
		}
		if err := stringifyValue(b, e); err != nil {
			return err
		}
	}
	b.WriteByte(']')
	return nil
}

func stringifyObject(b *strings.Builder, members []Member) error {
	b.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			b.WriteByte(',')
		}
		stringifyString(b, m.Key)
		b.WriteByte(':')
		if err := stringifyValue(b, m.Value); err != nil {
			return err
		}
	}
	b.WriteByte('}')
	return nil
}
