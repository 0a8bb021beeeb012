package parray

import (
	"fmt"

	"github.com/npillmayer/parray/strsplit"
	"github.com/npillmayer/schuko/tracing"
)

// Splits refines a position array at a set of cut points.
//
// positions are absolute offsets in the coordinate space of parray. They need
// not be sorted and may contain duplicates. For every item, the positions
// lying strictly inside the item's range are translated to item-local offsets
// (position - item.Start()), sorted, de-duplicated and passed to subdivide.
// subdivide is called for every item, with an empty slice of positions for
// items which need no cut. Positions at item boundaries are thus no-ops.
//
// subdivide has to return sub-items with offsets relative to the start of the
// item, exactly tiling [0, item.Len()). Splits re-bases the sub-items to the
// global coordinate space and concatenates them in order. The result of a
// subdivide function violating this precondition is undefined; if the
// package tracer is set to debug level, violations are traced as errors.
// Use CheckedSplits to have them reported.
func Splits[T, U any](parray []Item[T], positions []int,
	subdivide func(unit Item[T], positions []int) []Item[U]) []Item[U] {
	//
	debug := tracer().GetTraceLevel() >= tracing.LevelDebug
	out := make([]Item[U], 0, len(parray)+len(positions))
	for _, unit := range parray {
		mini := subdivide(unit, localPositions(unit, positions))
		if debug {
			if err := checkSubdivision(unit, mini); err != nil {
				tracer().Errorf("parray.Splits: %v", err)
			}
		}
		for _, sub := range mini {
			out = append(out, sub.Shift(unit.start))
		}
	}
	return out
}

// CheckedSplits is like Splits, but checks the result of every call to
// subdivide. If a subdivision does not exactly tile the range of its item,
// CheckedSplits returns an error wrapping ErrIllegalSubdivision.
func CheckedSplits[T, U any](parray []Item[T], positions []int,
	subdivide func(unit Item[T], positions []int) []Item[U]) ([]Item[U], error) {
	//
	out := make([]Item[U], 0, len(parray)+len(positions))
	for i, unit := range parray {
		mini := subdivide(unit, localPositions(unit, positions))
		if err := checkSubdivision(unit, mini); err != nil {
			return nil, fmt.Errorf("item #%d: %w", i, err)
		}
		for _, sub := range mini {
			out = append(out, sub.Shift(unit.start))
		}
	}
	return out, nil
}

// StringSubdivider is a subdivide function for Splits, for position arrays
// of strings with byte offsets. It cuts an item's payload at the local
// positions and wraps the pieces as a position array starting at 0.
func StringSubdivider(unit Item[string], positions []int) []Item[string] {
	return Make(strsplit.Splits(unit.item, positions))
}

// RuneSubdivider is like StringSubdivider, but for position arrays with
// rune offsets.
func RuneSubdivider(unit Item[string], positions []int) []Item[string] {
	return MakeRunes(strsplit.SplitsRunes(unit.item, positions))
}

// localPositions selects the positions strictly inside unit's range and
// translates them to unit-local offsets.
func localPositions[T any](unit Item[T], positions []int) []int {
	local := make([]int, 0, 4)
	for _, p := range positions {
		if unit.Contains(p) {
			local = append(local, p-unit.start)
		}
	}
	return strsplit.Normalize(local, unit.Len())
}

func checkSubdivision[T, U any](unit Item[T], mini []Item[U]) error {
	if err := Check(mini); err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalSubdivision, err)
	}
	start, finish := Span(mini)
	if start != 0 || finish != unit.Len() {
		return fmt.Errorf("%w: sub-items span %d->%d, item %v spans 0->%d",
			ErrIllegalSubdivision, start, finish, unit, unit.Len())
	}
	return nil
}
