/*
Package parray offers position arrays, i.e. ordered sequences of items which
carry a half-open offset range [start, finish) into some original coordinate
space, usually a text.

Position Arrays

Applications dealing with text often hold a segmentation of that text: words,
lines, fragments of a file, text nodes of an HTML document. Every segment knows
where it sits in the original text. When new cut points show up (a cursor
position, a line break, a diff boundary), the segmentation has to be refined:
every segment straddling a cut point is replaced by sub-segments, everything
else stays the same.

	words := units.Words("Hello World")         // 0->5@ Hello, 5->6@  , 6->11@ World
	parts := parray.Splits(words, []int{2, 8}, parray.StringSubdivider)
	// 0->2@ He, 2->5@ llo, 5->6@  , 6->8@ Wo, 8->11@ rld

Splits delegates re-segmentation of a single item to a subdivide function
provided by the client. Subdivide functions receive cut points relative to the
item's start and return sub-items with offsets relative to the item's start;
Splits re-bases them to the global coordinate space.

Offsets are byte offsets, as is the convention for Go strings. For coordinate
spaces counting runes, use MakeRunes and RuneSubdivider.

All functions of this package are pure: they never modify their arguments and
always return freshly allocated slices.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package parray

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'parray'
func tracer() tracing.Trace {
	return tracing.Select("parray")
}

// ParrayError is an error type for the parray module
type ParrayError string

func (e ParrayError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ParrayError("illegal arguments")

// ErrIllegalRange is flagged for an item with finish < start or a negative start.
const ErrIllegalRange = ParrayError("illegal item range")

// ErrGap is flagged whenever two adjacent items of a position array are not
// contiguous.
const ErrGap = ParrayError("gap between adjacent items")

// ErrOverlap is flagged whenever two adjacent items of a position array overlap.
const ErrOverlap = ParrayError("adjacent items overlap")

// ErrIllegalSubdivision is flagged if a subdivide function returned sub-items
// which do not exactly tile the range of the item to subdivide.
const ErrIllegalSubdivision = ParrayError("subdivision does not tile its item")
