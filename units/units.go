package units

import (
	"sort"
	"strings"

	"github.com/clipperhouse/uax29/graphemes"
	"github.com/clipperhouse/uax29/sentences"
	"github.com/clipperhouse/uax29/words"
	"github.com/npillmayer/parray"
)

// Words segments text into words according to UAX #29. White space and
// punctuation between words form units of their own.
func Words(text string) []parray.Item[string] {
	return fromSegments(words.SegmentAll([]byte(text)))
}

// Sentences segments text into sentences according to UAX #29. Trailing white
// space belongs to the sentence it follows.
func Sentences(text string) []parray.Item[string] {
	return fromSegments(sentences.SegmentAll([]byte(text)))
}

// Graphemes segments text into user-perceived characters (extended grapheme
// clusters, UAX #29).
func Graphemes(text string) []parray.Item[string] {
	return fromSegments(graphemes.SegmentAll([]byte(text)))
}

// Lines segments text into lines. Every line includes its terminating
// newline character; the last line may lack one.
func Lines(text string) []parray.Item[string] {
	lines := strings.SplitAfter(text, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if text == "" {
		lines = []string{}
	}
	return parray.Make(lines)
}

// SnapToGraphemes moves every point in points down to the nearest grapheme
// cluster boundary of text, so that cutting at the resulting points never
// tears a user-perceived character apart. Points outside the text are kept
// unchanged. The result is sorted and free of duplicates.
func SnapToGraphemes(text string, points []int) []int {
	bounds := []int{0}
	for _, g := range Graphemes(text) {
		bounds = append(bounds, g.Finish())
	}
	snapped := make([]int, 0, len(points))
	for _, p := range points {
		q := p
		if p > 0 && p < len(text) {
			i := sort.SearchInts(bounds, p) // first boundary ≥ p
			if bounds[i] != p {
				q = bounds[i-1]
			}
			if q != p {
				tracer().Debugf("snapping point %d to grapheme boundary %d", p, q)
			}
		}
		snapped = append(snapped, q)
	}
	sort.Ints(snapped)
	return dedup(snapped)
}

func fromSegments(segments [][]byte) []parray.Item[string] {
	tokens := make([]string, len(segments))
	for i, seg := range segments {
		tokens[i] = string(seg)
	}
	tracer().Debugf("segmented text into %d units", len(tokens))
	return parray.Make(tokens)
}

func dedup(sorted []int) []int {
	j := 0
	for i, p := range sorted {
		if i > 0 && p == sorted[j-1] {
			continue
		}
		sorted[j] = p
		j++
	}
	return sorted[:j]
}
