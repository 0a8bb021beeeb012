package parray

import "fmt"

// Check validates that a position array is well formed: every item has a
// non-negative start and finish ≥ start, and adjacent items are contiguous
// (parray[i].Finish() == parray[i+1].Start()).
//
// Splits does not depend on it, but position arrays built from a contiguous
// source will always pass the check.
func Check[T any](parray []Item[T]) error {
	for i, it := range parray {
		if it.start < 0 || it.finish < it.start {
			return fmt.Errorf("%w: item #%d spans %d->%d", ErrIllegalRange, i, it.start, it.finish)
		}
		if i == 0 {
			continue
		}
		prev := parray[i-1]
		if prev.finish < it.start {
			return fmt.Errorf("%w: items #%d and #%d, %d < %d", ErrGap, i-1, i, prev.finish, it.start)
		} else if prev.finish > it.start {
			return fmt.Errorf("%w: items #%d and #%d, %d > %d", ErrOverlap, i-1, i, prev.finish, it.start)
		}
	}
	return nil
}
