package strsplit

import (
	"sort"
	"unicode/utf8"
)

// Splits cuts s at byte offsets points.
//
// For k effective cut points, i.e. distinct points p with 0 < p < len(s),
// Splits returns k+1 segments. An empty string results in a single empty
// segment. Points are sorted on a copy; the caller's slice is not modified.
//
// Cut points are not checked against UTF-8 boundaries. Clients who need
// rune-aligned cuts should use SplitsRunes.
func Splits(s string, points []int) []string {
	cuts := Normalize(points, len(s))
	segments := make([]string, 0, len(cuts)+1)
	last := 0
	for _, p := range cuts {
		segments = append(segments, s[last:p])
		last = p
	}
	return append(segments, s[last:])
}

// SplitsRunes cuts s at rune offsets points, i.e. point n refers to the
// position in front of the n-th rune of s. Otherwise it behaves like Splits.
func SplitsRunes(s string, points []int) []string {
	n := utf8.RuneCountInString(s)
	cuts := Normalize(points, n)
	if len(cuts) == 0 {
		return []string{s}
	}
	byteCuts := make([]int, 0, len(cuts))
	r, k := 0, 0
	for i := range s {
		if k == len(cuts) {
			break
		}
		if r == cuts[k] {
			byteCuts = append(byteCuts, i)
			k++
		}
		r++
	}
	tracer().Debugf("rune cuts %v map to byte cuts %v", cuts, byteCuts)
	return Splits(s, byteCuts)
}

// Normalize returns the effective cut points of points for a sequence of
// length length: sorted ascending, restricted to the open interval (0, length),
// without duplicates. points is not modified.
func Normalize(points []int, length int) []int {
	if len(points) == 0 || length <= 1 {
		return []int{}
	}
	cuts := make([]int, 0, len(points))
	for _, p := range points {
		if p > 0 && p < length {
			cuts = append(cuts, p)
		}
	}
	sort.Ints(cuts)
	j := 0
	for i, p := range cuts {
		if i > 0 && p == cuts[j-1] {
			continue
		}
		cuts[j] = p
		j++
	}
	return cuts[:j]
}

// Offsets returns the inner cut offsets of a segmentation, i.e. the byte
// offset of the start of every segment but the first. Empty segments do not
// contribute an offset.
//
// For every s and points it holds that
//
//	Splits(s, Offsets(Splits(s, points))) == Splits(s, points)
func Offsets(segments []string) []int {
	if len(segments) <= 1 {
		return []int{}
	}
	offsets := make([]int, 0, len(segments)-1)
	pos := 0
	for _, seg := range segments[:len(segments)-1] {
		pos += len(seg)
		if len(offsets) > 0 && offsets[len(offsets)-1] == pos {
			continue
		}
		offsets = append(offsets, pos)
	}
	return offsets
}
