package lexer

import (
	"lexkit/internal/source"
)

// Cursor is a position inside the normalized input, paired with the running
// source location. The offset counts characters (runes), not bytes.
type Cursor struct {
	input []rune
	off   int
	loc   source.Location
}

// NewCursor creates a cursor at the start of input with the caller-supplied
// starting location.
func NewCursor(input []rune, start source.Location) Cursor {
	return Cursor{input: input, loc: start}
}

// EOF reports whether the cursor reached the end of input.
func (c *Cursor) EOF() bool {
	return c.off >= len(c.input)
}

// Peek returns the current rune without consuming it.
func (c *Cursor) Peek() (rune, bool) {
	if c.EOF() {
		return 0, false
	}
	return c.input[c.off], true
}

// PeekAt returns the rune n positions past the cursor, guarding against
// running off the end of input.
func (c *Cursor) PeekAt(n int) (rune, bool) {
	if c.off+n >= len(c.input) {
		return 0, false
	}
	return c.input[c.off+n], true
}

// Bump consumes one rune and advances the running location: the column grows
// by one per rune, and a newline additionally resets the column to 0 and
// increments the row.
func (c *Cursor) Bump() (rune, bool) {
	if c.EOF() {
		return 0, false
	}
	r := c.input[c.off]
	c.off++
	c.loc.Column++
	if r == '\n' {
		c.loc.Row++
		c.loc.Column = 0
	}
	return r, true
}

// Loc returns a copy of the running location.
func (c *Cursor) Loc() source.Location {
	return c.loc
}

// Off returns the current character offset.
func (c *Cursor) Off() int {
	return c.off
}
