/*
Package strsplit cuts strings into contiguous segments at a set of offsets.

Cut points are absolute offsets into the string. Points at 0 or at the end of
the string, points outside the string and duplicate points do not produce
additional segments, so the concatenation of all segments always reconstructs
the input. Points need not be sorted.

	strsplit.Splits("abcdefghi", []int{6, 2}) // "ab", "cdef", "ghi"

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package strsplit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'parray'
func tracer() tracing.Trace {
	return tracing.Select("parray")
}
