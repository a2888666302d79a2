package buffer

import (
	"github.com/riverfjs/twittertext-go/internal/textindex"
)

// TextBuffer builds an output from a source text plus markup spliced in at
// UTF-16 source offsets. Source is consumed left to right.
type TextBuffer struct {
	parts   []string
	source  string
	cursor  *textindex.Cursor
	srcByte int
	srcUnit int
}

// New creates a TextBuffer over source.
func New(source string) *TextBuffer {
	return &TextBuffer{
		parts:  make([]string, 0),
		source: source,
		cursor: textindex.New(source),
	}
}

// Write appends markup to the output. It does not consume source.
func (tb *TextBuffer) Write(text string) {
	tb.parts = append(tb.parts, text)
}

// advance consumes source up to UTF-16 offset unit and returns the consumed text.
func (tb *TextBuffer) advance(unit int) string {
	if unit <= tb.srcUnit {
		return ""
	}
	pos := tb.cursor.SeekUnit(unit)
	consumed := tb.source[tb.srcByte:pos.Byte]
	tb.srcByte, tb.srcUnit = pos.Byte, pos.Unit
	return consumed
}

// CopyTo copies source up to UTF-16 offset unit into the output.
func (tb *TextBuffer) CopyTo(unit int) {
	if s := tb.advance(unit); s != "" {
		tb.parts = append(tb.parts, s)
	}
}

// CopyRest copies the remaining source into the output.
func (tb *TextBuffer) CopyRest() {
	if tb.srcByte < len(tb.source) {
		tb.parts = append(tb.parts, tb.source[tb.srcByte:])
	}
	tb.srcByte = len(tb.source)
	tb.srcUnit = tb.cursor.SeekByte(len(tb.source)).Unit
}

// Skip consumes source up to UTF-16 offset unit without writing it and
// returns the skipped text.
func (tb *TextBuffer) Skip(unit int) string {
	return tb.advance(unit)
}

// UTF16Offset returns the consumed source position in UTF-16 code units.
func (tb *TextBuffer) UTF16Offset() int {
	return tb.srcUnit
}

// ByteOffset returns the current output length in bytes.
func (tb *TextBuffer) ByteOffset() int {
	total := 0
	for _, p := range tb.parts {
		total += len(p)
	}
	return total
}

// String returns the accumulated output.
func (tb *TextBuffer) String() string {
	if len(tb.parts) == 0 {
		return ""
	}
	// Calculate total length
	totalLen := tb.ByteOffset()
	result := make([]byte, 0, totalLen)
	for _, p := range tb.parts {
		result = append(result, p...)
	}
	return string(result)
}

// Reset clears the output and rewinds the source.
func (tb *TextBuffer) Reset() {
	tb.parts = tb.parts[:0]
	tb.srcByte, tb.srcUnit = 0, 0
	tb.cursor.SeekByte(0)
}
