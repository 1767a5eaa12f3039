/*
Package expr parses textual chunk expressions into chunk addresses.

Chunk expressions read like the chunk references of structured text
scripting languages:

	word 3 of item 2
	the second line
	chars 2 to 4 of word "hello"
	last paragraph
	any item
	character -1
	word matching "^re" ignoring case of line 2

The innermost chunk comes first, as in English. Expressions for counting
name a chunk type without an ordinal:

	the number of words in line 2

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package expr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'chunkex'
func tracer() tracing.Trace {
	return tracing.Select("chunkex")
}
