package parray

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSplits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	check := func(expected []string, input []string, positions []int) {
		t.Helper()
		actual := Splits(Make(input), positions, StringSubdivider)
		if dump := Dump(actual); !reflect.DeepEqual(dump, expected) {
			t.Errorf("Splits(%q, %v) = %q, want %q", input, positions, dump, expected)
		}
	}
	check([]string{}, []string{}, []int{})
	check([]string{"0->2@ ha"}, []string{"ha"}, []int{})
	check([]string{"0->5@ hallo", "5->14@ hallobalo"}, []string{"hallo", "hallobalo"}, []int{})
	check([]string{
		"0->1@ h",
		"1->2@ a",
		"2->3@ l",
		"3->5@ lo",
		"5->6@ h",
		"6->9@ all",
		"9->11@ ob",
		"11->13@ al",
		"13->14@ o",
	}, []string{"hallo", "hallobalo"}, []int{1, 2, 3, 6, 9, 11, 13})
}

func TestSplitsBoundaryPositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	input := Make([]string{"hallo", "hallobalo"})
	out := Splits(input, []int{0, 5, 14, 20, -1}, StringSubdivider)
	if !reflect.DeepEqual(Dump(out), Dump(input)) {
		t.Errorf("positions at item boundaries should be no-ops, have %v", Dump(out))
	}
}

func TestSplitsUnsortedPositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	input := Make([]string{"hallo", "hallobalo"})
	sorted := Splits(input, []int{1, 2, 3, 6, 9, 11, 13}, StringSubdivider)
	positions := []int{13, 2, 9, 1, 6, 3, 11, 2, 9}
	unsorted := Splits(input, positions, StringSubdivider)
	if !reflect.DeepEqual(Dump(sorted), Dump(unsorted)) {
		t.Errorf("unsorted positions: have %v, want %v", Dump(unsorted), Dump(sorted))
	}
	if positions[0] != 13 || positions[8] != 9 {
		t.Errorf("caller's positions have been modified: %v", positions)
	}
}

func TestSplitsCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	input := Translate(Make([]string{"The ", "quick ", "brown ", "fox"}), 7)
	for _, positions := range [][]int{{}, {8}, {7, 11, 17}, {8, 9, 10, 12, 13, 20, 25, 99}} {
		out := Splits(input, positions, StringSubdivider)
		if err := Check(out); err != nil {
			t.Errorf("positions %v: %v", positions, err)
		}
		s1, f1 := Span(input)
		s2, f2 := Span(out)
		if s1 != s2 || f1 != f2 {
			t.Errorf("positions %v: coverage %d->%d changed to %d->%d", positions, s1, f1, s2, f2)
		}
		for _, it := range out {
			if orig, ok := Get(input, it.Start()); !ok || orig.Item()[it.Start()-orig.Start():it.Finish()-orig.Start()] != it.Item() {
				t.Errorf("positions %v: item %v does not match its origin", positions, it)
			}
		}
	}
}

func TestSplitsAlwaysSubdivides(t *testing.T) {
	calls := 0
	counted := func(unit Item[string], positions []int) []Item[int] {
		calls++
		return []Item[int]{At(0, unit.Len(), len(positions))}
	}
	out := Splits(Make([]string{"ab", "cd", "ef"}), []int{3}, counted)
	if calls != 3 {
		t.Errorf("expected subdivide to be called for every item, was called %d times", calls)
	}
	if got := Dump(out); !reflect.DeepEqual(got, []string{"0->2@ 0", "2->4@ 1", "4->6@ 0"}) {
		t.Errorf("unexpected output %v", got)
	}
}

func TestSplitsLocalPositions(t *testing.T) {
	var seen [][]int
	recorder := func(unit Item[string], positions []int) []Item[string] {
		seen = append(seen, positions)
		return StringSubdivider(unit, positions)
	}
	Splits(Make([]string{"hallo", "hallobalo"}), []int{13, 6, 3, 6}, recorder)
	want := [][]int{{3}, {1, 8}}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("subdivide received local positions %v, want %v", seen, want)
	}
}

func TestRuneSubdivider(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	out := Splits(MakeRunes([]string{"Grüß", "Gott"}), []int{3, 6}, RuneSubdivider)
	want := []string{"0->3@ Grü", "3->4@ ß", "4->6@ Go", "6->8@ tt"}
	if !reflect.DeepEqual(Dump(out), want) {
		t.Errorf("rune splits = %v, want %v", Dump(out), want)
	}
}

func TestCheckedSplits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	input := Make([]string{"hallo", "hallobalo"})
	if _, err := CheckedSplits(input, []int{2, 7}, StringSubdivider); err != nil {
		t.Errorf("expected well-formed subdivision, have %v", err)
	}
	lossy := func(unit Item[string], positions []int) []Item[string] {
		return []Item[string]{At(0, 1, unit.Item()[:1])}
	}
	_, err := CheckedSplits(input, []int{2}, lossy)
	if !errors.Is(err, ErrIllegalSubdivision) {
		t.Errorf("expected ErrIllegalSubdivision, have %v", err)
	}
	// unchecked Splits does not fail, but traces the violation
	if out := Splits(input, []int{2}, lossy); len(out) != 2 {
		t.Errorf("expected 2 items from lossy subdivision, have %d", len(out))
	}
}
