package units

import (
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/parray"
)

// Fields segments text into alternating runs of white space and non-space
// characters. Invalid UTF-8 bytes count as non-space.
func Fields(text string) []parray.Item[string] {
	b := []byte(text)
	fields := make([]parray.Item[string], 0, 8)
	for pos := 0; pos < len(b); {
		r, width := utf8.DecodeRune(b[pos:])
		spaces := unicode.IsSpace(r)
		start := pos
		pos += width
		for pos < len(b) {
			r, width = utf8.DecodeRune(b[pos:])
			if unicode.IsSpace(r) != spaces {
				break
			}
			pos += width
		}
		fields = append(fields, parray.At(start, pos, text[start:pos]))
	}
	return fields
}

// NonSpace filters a position array, dropping all units consisting of white
// space only. The result is generally not contiguous.
func NonSpace(units []parray.Item[string]) []parray.Item[string] {
	filtered := make([]parray.Item[string], 0, len(units))
	for _, u := range units {
		if isSpace(u.Item()) {
			continue
		}
		filtered = append(filtered, u)
	}
	return filtered
}

func isSpace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
