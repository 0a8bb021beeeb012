package parray

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestItem(t *testing.T) {
	it := At(3, 7, "abcd")
	if it.Start() != 3 || it.Finish() != 7 || it.Len() != 4 || it.Item() != "abcd" {
		t.Fatalf("unexpected item %v", it)
	}
	if it.Contains(3) || it.Contains(7) || !it.Contains(4) {
		t.Errorf("Contains should hold strictly inside the range only")
	}
	if !it.Covers(3) || it.Covers(7) {
		t.Errorf("Covers should hold for [start, finish)")
	}
	if s := it.Shift(-3).String(); s != "0->4@ abcd" {
		t.Errorf("shifted item = %q", s)
	}
	if c := At(-2, -5, "x"); c.Start() != 0 || c.Finish() != 0 || !c.IsEmpty() {
		t.Errorf("At should clamp illegal ranges, have %v", c)
	}
	if w := it.WithItem("wxyz"); w.Item() != "wxyz" || w.Start() != 3 {
		t.Errorf("WithItem = %v", w)
	}
}

func TestMakeAndDump(t *testing.T) {
	parray := Make([]string{"a", "", "bcd", "ü"})
	want := []string{"0->1@ a", "1->1@ ", "1->4@ bcd", "4->6@ ü"}
	if !reflect.DeepEqual(Dump(parray), want) {
		t.Errorf("Make = %q, want %q", Dump(parray), want)
	}
	runes := MakeRunes([]string{"a", "ü", "bc"})
	if s, f := Span(runes); s != 0 || f != 4 {
		t.Errorf("MakeRunes spans %d->%d, want 0->4", s, f)
	}
}

func TestGenerate(t *testing.T) {
	// skip blank tokens, keeping their offsets out of the coordinate space
	parray := Generate([]string{"one", " ", "two"}, func(x string, start int) (Item[int], bool) {
		if strings.TrimSpace(x) == "" {
			return Item[int]{}, false
		}
		return At(start, start+len(x), len(x)), true
	}, 10)
	want := []string{"10->13@ 3", "13->16@ 3"}
	if !reflect.DeepEqual(Dump(parray), want) {
		t.Errorf("Generate = %v, want %v", Dump(parray), want)
	}
}

func TestGetAndFind(t *testing.T) {
	parray := Make([]string{"this", "is", "it"})
	if it, ok := Get(parray, 4); !ok || it.Item() != "is" {
		t.Errorf("Get(4) = %v, %v", it, ok)
	}
	if it, ok := Get(parray, 7); !ok || it.Item() != "it" {
		t.Errorf("Get(7) = %v, %v", it, ok)
	}
	if _, ok := Get(parray, 8); ok {
		t.Errorf("Get(8) should find nothing")
	}
	it, ok := Find(parray, func(it Item[string]) bool { return strings.HasPrefix(it.Item(), "i") })
	if !ok || it.Start() != 4 {
		t.Errorf("Find = %v, %v", it, ok)
	}
}

func TestTranslateAndSublist(t *testing.T) {
	parray := Make([]string{"this", "is", "the", "end"})
	moved := Translate(parray, 10)
	if s, f := Span(moved); s != 10 || f != 22 {
		t.Errorf("Translate spans %d->%d, want 10->22", s, f)
	}
	if parray[0].Start() != 0 {
		t.Errorf("Translate modified its input")
	}
	sub := Sublist(parray, 4, 9)
	if !reflect.DeepEqual(Dump(sub), []string{"4->6@ is", "6->9@ the"}) {
		t.Errorf("Sublist(4, 9) = %v", Dump(sub))
	}
	if sub := Sublist(parray, 5, 9); len(sub) != 0 {
		t.Errorf("Sublist with start inside an item should be empty, is %v", Dump(sub))
	}
	if sub := Sublist(parray, 6, 4); len(sub) != 0 {
		t.Errorf("Sublist with finish before start should be empty, is %v", Dump(sub))
	}
}

func TestCheck(t *testing.T) {
	if err := Check(Make([]string{"a", "bc", "d"})); err != nil {
		t.Errorf("contiguous position array should pass, have %v", err)
	}
	if err := Check([]Item[string]{}); err != nil {
		t.Errorf("empty position array should pass, have %v", err)
	}
	gap := []Item[string]{At(0, 2, "ab"), At(3, 4, "d")}
	if err := Check(gap); !errors.Is(err, ErrGap) {
		t.Errorf("expected ErrGap, have %v", err)
	}
	overlap := []Item[string]{At(0, 2, "ab"), At(1, 4, "bcd")}
	if err := Check(overlap); !errors.Is(err, ErrOverlap) {
		t.Errorf("expected ErrOverlap, have %v", err)
	}
	illegal := []Item[string]{{start: 2, finish: 1}}
	if err := Check(illegal); !errors.Is(err, ErrIllegalRange) {
		t.Errorf("expected ErrIllegalRange, have %v", err)
	}
}

func TestText(t *testing.T) {
	if s := Text(Make([]string{"Hello", " ", "World"})); s != "Hello World" {
		t.Errorf("Text = %q", s)
	}
	if s := Text([]Item[string]{}); s != "" {
		t.Errorf("Text of empty position array = %q", s)
	}
}
