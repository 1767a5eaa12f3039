/*
Package luachunk makes chunk expressions available to Lua scripts.

The package registers a Lua module "chunk" with a gopher-lua state:

	L := lua.NewState()
	luachunk.Preload(L)
	L.DoString(`
		local chunk = require("chunk")
		print(chunk.get("a,b,c", chunk.ITEM, 2))         --> b
		print(chunk.get("say hello", "char 2 of word 2")) --> e
		print(chunk.replace("a,b", chunk.ITEM, 4, "x"))  --> a,b,,x
	`)

Chunk types, ordinal specifiers, the byContent marker and the delimiter
directives are exported as constants of the module. Integers are explicit
ordinals, strings following a chunk type are literal contents, and
chunk.pattern(expr [, ignoreCase]) creates a regular expression predicate.
Instead of an argument list, an address may be given as a single chunk
expression string (see package expr).

Offsets returned by find and split are 0-based byte offsets into the text.
Errors are raised as Lua errors.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package luachunk

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'chunkex'
func tracer() tracing.Trace {
	return tracing.Select("chunkex")
}
