package twittertext

import (
	"errors"
	"fmt"

	"github.com/riverfjs/twittertext-go/internal/textindex"
)

// ErrUnsortedEntities is returned when entities passed to an offset
// conversion are not in ascending Start order.
var ErrUnsortedEntities = errors.New("entities are not sorted by start")

// IndexConverter converts offsets between UTF-16 code units and Unicode
// code points for one text.
//
// It remembers the last position visited, so converting offsets in
// ascending order costs time proportional to the text length overall.
// An offset inside a surrogate pair rounds down to the start of the pair.
type IndexConverter struct {
	cursor *textindex.Cursor
}

// NewIndexConverter creates a converter over text.
func NewIndexConverter(text string) *IndexConverter {
	return &IndexConverter{cursor: textindex.New(text)}
}

// CodeUnitsToCodePoints converts a UTF-16 offset to a code point offset.
func (c *IndexConverter) CodeUnitsToCodePoints(units int) int {
	return c.cursor.SeekUnit(units).Point
}

// CodePointsToCodeUnits converts a code point offset to a UTF-16 offset.
func (c *IndexConverter) CodePointsToCodeUnits(points int) int {
	return c.cursor.SeekPoint(points).Unit
}

// ToCodePoints returns a copy of entities with Start/End converted from
// UTF-16 code units to code points.
func ToCodePoints(text string, entities []Entity) ([]Entity, error) {
	c := NewIndexConverter(text)
	return convertEntities(entities, c.CodeUnitsToCodePoints)
}

// ToCodeUnits returns a copy of entities with Start/End converted from
// code points to UTF-16 code units.
func ToCodeUnits(text string, entities []Entity) ([]Entity, error) {
	c := NewIndexConverter(text)
	return convertEntities(entities, c.CodePointsToCodeUnits)
}

func convertEntities(entities []Entity, conv func(int) int) ([]Entity, error) {
	if len(entities) == 0 {
		return nil, nil
	}
	out := make([]Entity, len(entities))
	for i, e := range entities {
		if i > 0 && e.Start < entities[i-1].Start {
			return nil, fmt.Errorf("%w: entity %d starts at %d after %d", ErrUnsortedEntities, i, e.Start, entities[i-1].Start)
		}
		e.Start = conv(e.Start)
		e.End = conv(e.End)
		out[i] = e
	}
	return out, nil
}
