/*
Package textfile loads UTF-8 text files as position arrays of fragments.

A file is read in fragments of a recommended size, each fragment tagged with
its byte range within the file. Fragments never end in the middle of a UTF-8
sequence. Loading happens asynchronously; clients may subscribe to fragments
as they arrive, or simply wait for the complete position array:

	fragments, err := textfile.Load("lorem.txt", 0)

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'parray'
func tracer() tracing.Trace {
	return tracing.Select("parray")
}
