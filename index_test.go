package twittertext

import (
	"errors"
	"testing"
)

func TestIndexConverter(t *testing.T) {
	// "a😀b😀c": a=0, 😀=1-2, b=3, 😀=4-5, c=6
	c := NewIndexConverter("a😀b😀c")
	units := []struct{ units, points int }{
		{0, 0}, {1, 1}, {3, 2}, {4, 3}, {6, 4}, {7, 5},
	}
	for _, tt := range units {
		if got := c.CodeUnitsToCodePoints(tt.units); got != tt.points {
			t.Errorf("CodeUnitsToCodePoints(%d) = %d, want %d", tt.units, got, tt.points)
		}
	}
	// 逆序访问也应正确
	for i := len(units) - 1; i >= 0; i-- {
		tt := units[i]
		if got := c.CodePointsToCodeUnits(tt.points); got != tt.units {
			t.Errorf("CodePointsToCodeUnits(%d) = %d, want %d", tt.points, got, tt.units)
		}
	}
}

// TestIndexConverter_InsidePair 代理对中间的偏移向下取整
func TestIndexConverter_InsidePair(t *testing.T) {
	c := NewIndexConverter("a😀b")
	if got := c.CodeUnitsToCodePoints(2); got != 1 {
		t.Errorf("CodeUnitsToCodePoints(2) = %d, want 1", got)
	}
	if got := c.CodeUnitsToCodePoints(100); got != 3 {
		t.Errorf("CodeUnitsToCodePoints(100) = %d, want 3 (clamped)", got)
	}
}

func TestToCodePoints(t *testing.T) {
	text := "😀 @jack #tag"
	entities := ExtractEntities(text)
	if len(entities) != 2 {
		t.Fatalf("ExtractEntities(%q) = %v, want 2 entities", text, entities)
	}
	points, err := ToCodePoints(text, entities)
	if err != nil {
		t.Fatalf("ToCodePoints: %v", err)
	}
	want := [][2]int{{2, 7}, {8, 12}}
	for i, e := range points {
		if e.Start != want[i][0] || e.End != want[i][1] {
			t.Errorf("ToCodePoints()[%d] = [%d, %d], want %v", i, e.Start, e.End, want[i])
		}
	}
	if entities[0].Start != 3 {
		t.Errorf("ToCodePoints modified its input: %v", entities[0])
	}

	back, err := ToCodeUnits(text, points)
	if err != nil {
		t.Fatalf("ToCodeUnits: %v", err)
	}
	for i := range back {
		if back[i] != entities[i] {
			t.Errorf("round trip [%d] = %v, want %v", i, back[i], entities[i])
		}
	}
}

func TestToCodePoints_Unsorted(t *testing.T) {
	entities := []Entity{{Start: 5, End: 6}, {Start: 1, End: 2}}
	_, err := ToCodePoints("abcdefg", entities)
	if !errors.Is(err, ErrUnsortedEntities) {
		t.Errorf("ToCodePoints(unsorted) error = %v, want ErrUnsortedEntities", err)
	}
	if got, err := ToCodeUnits("abc", nil); got != nil || err != nil {
		t.Errorf("ToCodeUnits(nil) = %v, %v, want nil, nil", got, err)
	}
}
