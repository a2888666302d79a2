package twittertext

import (
	"sort"

	"github.com/riverfjs/twittertext-go/internal/textindex"
	"github.com/riverfjs/twittertext-go/internal/types"
)

// 导出类型别名
type Entity = types.Entity

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Entity offsets are UTF-16 code units, not Go string bytes or runes.
// Characters outside the BMP (codepoint > 0xFFFF) take 2 UTF-16 code units
// (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		count += textindex.UnitLen(r)
	}
	return count
}

// SliceUTF16 returns text[start:end] with offsets in UTF-16 code units.
// An offset inside a surrogate pair rounds down to the pair start.
func SliceUTF16(text string, start, end int) string {
	return textindex.New(text).UnitSlice(start, end)
}

// SortEntities 按 Start 升序稳定排序
func SortEntities(entities []Entity) {
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Start < entities[j].Start
	})
}

// RemoveOverlapping sorts entities by Start and drops every entity that
// begins before the end of the last kept one. The result reuses the input's
// backing array.
//
// 单指针扫描：prev 只在保留实体时前移。
func RemoveOverlapping(entities []Entity) []Entity {
	if len(entities) < 2 {
		return entities
	}
	SortEntities(entities)

	kept := entities[:1]
	prev := entities[0]
	for _, cur := range entities[1:] {
		if cur.Start < prev.End {
			continue
		}
		kept = append(kept, cur)
		prev = cur
	}
	return kept
}

// filterType keeps the entities of type t, in order.
func filterType(entities []Entity, t EntityType) []Entity {
	var out []Entity
	for _, e := range entities {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// values returns the Value of each entity.
func values(entities []Entity) []string {
	if len(entities) == 0 {
		return nil
	}
	out := make([]string, 0, len(entities))
	for _, e := range entities {
		out = append(out, e.Value)
	}
	return out
}
