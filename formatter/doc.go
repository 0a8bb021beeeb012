/*
Package formatter breaks texts into lines and outputs position arrays to a
console.

Line breaking follows a first-fit strategy on the line break opportunities of
Unicode Standard Annex #14, measuring text with the East Asian Width
properties of UAX #11. The resulting break points are plain byte offsets, i.e.
valid split points for parray.Splits:

	breaks := formatter.BreakPoints(text, &formatter.Config{LineWidth: 40})
	lines := parray.Splits(units.Words(text), breaks, parray.StringSubdivider)

Console output uses alternating colors to visualize the units of a position
array.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'parray'
func tracer() tracing.Trace {
	return tracing.Select("parray")
}
