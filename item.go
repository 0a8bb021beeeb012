package parray

import "fmt"

// Item is an immutable value tagged with a half-open offset range [start, finish).
//
// Offsets refer to some original coordinate space, usually the byte positions
// of a text. finish-start is expected to equal the length of the payload,
// measured in the same unit as the offsets.
type Item[T any] struct {
	start  int
	finish int
	item   T
}

// At creates a position-tagged item.
//
// A negative start is clamped to 0, a finish less than start is clamped to start.
func At[T any](start, finish int, item T) Item[T] {
	if start < 0 {
		start = 0
	}
	if finish < start {
		finish = start
	}
	return Item[T]{start: start, finish: finish, item: item}
}

// Start returns the (inclusive) start offset of the item.
func (it Item[T]) Start() int {
	return it.start
}

// Finish returns the (exclusive) end offset of the item.
func (it Item[T]) Finish() int {
	return it.finish
}

// Item returns the payload.
func (it Item[T]) Item() T {
	return it.item
}

// Len returns finish-start.
func (it Item[T]) Len() int {
	return it.finish - it.start
}

// IsEmpty reports whether the item spans no offsets at all.
func (it Item[T]) IsEmpty() bool {
	return it.finish == it.start
}

// Contains reports whether pos lies strictly inside the item's range, i.e.
// whether cutting at pos would split the item. Positions at the item's start
// or finish are not contained.
func (it Item[T]) Contains(pos int) bool {
	return pos > it.start && pos < it.finish
}

// Covers reports whether start ≤ pos < finish.
func (it Item[T]) Covers(pos int) bool {
	return pos >= it.start && pos < it.finish
}

// Shift returns a copy of the item with its range translated by offset.
func (it Item[T]) Shift(offset int) Item[T] {
	return Item[T]{start: it.start + offset, finish: it.finish + offset, item: it.item}
}

// WithItem returns a copy of the item carrying a different payload of the
// same type.
func (it Item[T]) WithItem(item T) Item[T] {
	return Item[T]{start: it.start, finish: it.finish, item: item}
}

func (it Item[T]) String() string {
	return fmt.Sprintf("%d->%d@ %v", it.start, it.finish, it.item)
}
