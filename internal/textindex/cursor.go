// Package textindex maps positions in a Go string between bytes, UTF-16
// code units and code points.
package textindex

import "unicode/utf8"

// Position is one location in a string expressed in all three units.
type Position struct {
	Byte  int
	Unit  int
	Point int
}

// Cursor seeks over a string remembering the last position it visited, so a
// run of nearby lookups costs time proportional to the distance moved.
//
// A target that falls inside a surrogate pair (Unit) or inside a UTF-8
// sequence (Byte) rounds down to the start of that code point. Targets past
// the end clamp to the end.
type Cursor struct {
	text string
	pos  Position
}

// New returns a cursor at the start of text.
func New(text string) *Cursor {
	return &Cursor{text: text}
}

// Position returns the current position.
func (c *Cursor) Position() Position {
	return c.pos
}

// UnitLen returns the UTF-16 length of r. Invalid bytes decode to U+FFFD and count as one unit.
func UnitLen(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}

func (c *Cursor) forward(reached func(next Position) bool) {
	for c.pos.Byte < len(c.text) {
		r, size := utf8.DecodeRuneInString(c.text[c.pos.Byte:])
		next := Position{
			Byte:  c.pos.Byte + size,
			Unit:  c.pos.Unit + UnitLen(r),
			Point: c.pos.Point + 1,
		}
		if !reached(next) {
			return
		}
		c.pos = next
	}
}

func (c *Cursor) backward(above func(Position) bool) {
	for c.pos.Byte > 0 && above(c.pos) {
		r, size := utf8.DecodeLastRuneInString(c.text[:c.pos.Byte])
		c.pos = Position{
			Byte:  c.pos.Byte - size,
			Unit:  c.pos.Unit - UnitLen(r),
			Point: c.pos.Point - 1,
		}
	}
}

// SeekByte moves to byte offset b.
func (c *Cursor) SeekByte(b int) Position {
	if b < c.pos.Byte {
		c.backward(func(p Position) bool { return p.Byte > b })
	}
	c.forward(func(next Position) bool { return next.Byte <= b })
	return c.pos
}

// SeekUnit moves to UTF-16 offset u.
func (c *Cursor) SeekUnit(u int) Position {
	if u < c.pos.Unit {
		c.backward(func(p Position) bool { return p.Unit > u })
	}
	c.forward(func(next Position) bool { return next.Unit <= u })
	return c.pos
}

// SeekPoint moves to code point offset p.
func (c *Cursor) SeekPoint(p int) Position {
	if p < c.pos.Point {
		c.backward(func(pos Position) bool { return pos.Point > p })
	}
	c.forward(func(next Position) bool { return next.Point <= p })
	return c.pos
}

// UnitSlice returns text[start:end] with start and end given in UTF-16 units.
func (c *Cursor) UnitSlice(start, end int) string {
	from := c.SeekUnit(start).Byte
	to := c.SeekUnit(end).Byte
	if to < from {
		return ""
	}
	return c.text[from:to]
}
