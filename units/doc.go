/*
Package units creates position arrays from texts.

Every function of this package segments a text into units (words, sentences,
grapheme clusters, lines, runs of white space) and returns them as a position
array with byte offsets. Separators are units, too, so the resulting position
arrays always tile the complete text. This makes them suitable input for
parray.Splits:

	words := units.Words("Hello World")
	parts := parray.Splits(words, []int{2, 8}, parray.StringSubdivider)

Word, sentence and grapheme segmentation follow Unicode Standard Annex #29.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package units

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'parray'
func tracer() tracing.Trace {
	return tracing.Select("parray")
}
