package parray

import (
	"strings"
	"unicode/utf8"
)

// Make creates a contiguous position array from a sequence of tokens. The
// first token starts at offset 0, every following token starts where its
// predecessor finishes. Offsets are byte offsets.
func Make(tokens []string) []Item[string] {
	return Generate(tokens, func(token string, start int) (Item[string], bool) {
		return At(start, start+len(token), token), true
	}, 0)
}

// MakeRunes is like Make, but offsets count runes instead of bytes.
func MakeRunes(tokens []string) []Item[string] {
	return Generate(tokens, func(token string, start int) (Item[string], bool) {
		return At(start, start+utf8.RuneCountInString(token), token), true
	}, 0)
}

// Text returns the concatenated payload of a position array of strings.
func Text(parray []Item[string]) string {
	var b strings.Builder
	for _, it := range parray {
		b.WriteString(it.item)
	}
	return b.String()
}

// Dump returns the string representation of every item of a position array,
// in the format "start->finish@ item".
func Dump[T any](parray []Item[T]) []string {
	dump := make([]string, len(parray))
	for i, it := range parray {
		dump[i] = it.String()
	}
	return dump
}

// Generate creates a position array from a sequence of values.
//
// generator is called for every value with the running offset, starting at
// start. If it returns true, the resulting item is appended to the position
// array and the running offset continues at the item's finish. Otherwise the
// item is discarded and the running offset stays unchanged.
func Generate[S, T any](xs []S, generator func(x S, start int) (Item[T], bool), start int) []Item[T] {
	parray := make([]Item[T], 0, len(xs))
	pos := start
	for _, x := range xs {
		it, ok := generator(x, pos)
		if !ok {
			continue
		}
		parray = append(parray, it)
		pos = it.finish
	}
	return parray
}

// Get returns the item covering offset, i.e. the item with
// start ≤ offset < finish.
func Get[T any](parray []Item[T], offset int) (Item[T], bool) {
	return Find(parray, func(it Item[T]) bool {
		return it.Covers(offset)
	})
}

// Find returns the first item satisfying pred.
func Find[T any](parray []Item[T], pred func(Item[T]) bool) (Item[T], bool) {
	for _, it := range parray {
		if pred(it) {
			return it, true
		}
	}
	return Item[T]{}, false
}

// Translate returns a copy of parray with every item shifted by offset.
func Translate[T any](parray []Item[T], offset int) []Item[T] {
	moved := make([]Item[T], len(parray))
	for i, it := range parray {
		moved[i] = it.Shift(offset)
	}
	return moved
}

// Sublist returns the items from the one starting at start up to and
// including the one finishing at finish.
//
// If start or finish do not mark item boundaries, or if finish lies in front
// of start, Sublist returns an empty position array.
func Sublist[T any](parray []Item[T], start, finish int) []Item[T] {
	first, last := -1, -1
	for i, it := range parray {
		if first < 0 && it.start == start {
			first = i
		}
		if first >= 0 && it.finish == finish {
			last = i
			break
		}
	}
	if first < 0 || last < 0 {
		return []Item[T]{}
	}
	sub := make([]Item[T], last-first+1)
	copy(sub, parray[first:last+1])
	return sub
}

// Span returns the range covered by a position array, i.e. the start of its
// first item and the finish of its last item. An empty position array spans
// [0, 0).
func Span[T any](parray []Item[T]) (int, int) {
	if len(parray) == 0 {
		return 0, 0
	}
	return parray[0].start, parray[len(parray)-1].finish
}
