// Package cursor implements a read-only, random-access view over a
// decoded Unicode text with sentinel-on-EOF semantics: reading past the
// end of the input yields a distinguished empty rune instead of an error.
//
// The sentinel lets every caller use the same branch to detect an
// ordinary terminator (']', ',', '"', ...) and end-of-input, which is
// the point of this design — see the separator switches in the parser
// that consumes it, where EOF falls into the same default branch as any
// other unexpected character.
package cursor

import "unicode/utf8"

// EOF is the sentinel rune returned by Peek and Next once the cursor has
// advanced past the end of the input. It lies outside the Unicode scalar
// value range, so it can never collide with a decoded input character —
// including U+0000, which is a valid (if control) code point that must
// stay distinguishable from end-of-input.
const EOF = rune(-1)

// Cursor is a read-only cursor over a string, indexed by byte offset.
type Cursor struct {
	text string
	pos  int
}

// New returns a Cursor positioned at the start of text.
func New(text string) Cursor {
	return Cursor{text: text}
}

// Pos returns the current byte offset into the input.
func (c *Cursor) Pos() int {
	return c.pos
}

// Peek returns the rune at the current position without consuming it.
// Past the end of input it returns EOF.
func (c *Cursor) Peek() rune {
	if c.pos >= len(c.text) {
		return EOF
	}
	r, _ := utf8.DecodeRuneInString(c.text[c.pos:])
	return r
}

// Next returns the rune at the current position and advances past it.
// Past the end of input it returns EOF without moving the cursor.
func (c *Cursor) Next() rune {
	if c.pos >= len(c.text) {
		return EOF
	}
	r, size := utf8.DecodeRuneInString(c.text[c.pos:])
	c.pos += size
	return r
}

// Slice returns text[i:j). The caller is responsible for having checked
// via Peek/Next (which never go out of bounds) that i and j are sane;
// Slice itself does no bounds clamping beyond what Go's slicing does.
func (c *Cursor) Slice(i, j int) string {
	return c.text[i:j]
}

// Done reports whether the cursor has reached the end of input.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.text)
}
