/*
Package chunkex addresses and edits structural substrings ("chunks") of text.

# Chunks

Scripting languages in the tradition of HyperTalk let users say things like

	put "x" into word 3 of line 2 of field "notes"

instead of computing string offsets. This package offers the engine behind such
phrases for Go strings. A chunk is one of

	Character, Line, Item, Column, Row, Word, Sentence, Paragraph

Characters are code points, words are separated by white space, sentences end in
'.', '!' or '?', paragraphs are separated by line breaks. Lines, items, columns
and rows are separated by a literal delimiter string (line feed, comma, U+FFF0
and U+FFF1 by default). Those four are "delimited" chunk types: if an edit
addresses a delimited chunk beyond the end (or before the start) of the text,
the text is extended by as many delimiters as needed, thus

	ReplaceChunk("hello,world", Item, 4, "x")   =>  "hello,world,,x"

# Addressing

Chunks are addressed by ordinal (1-based; negative ordinals count from the end,
with -1 being the last chunk; 0 is the empty position before the first chunk),
by one of the symbolic ordinals Any, First, Middle and Last, by a range of
ordinals, or by content. Addresses nest: the second expression is resolved
within the chunk found by the first one, and so on.

	s := "a bc def, ghij klmno pqrstu, vwxyz01"
	n, _ := CountChunks(s, Item, 2, Word, 3, Character)    // n = 6

Clients may build addresses with a Builder

	addr, err := NewAddress().Chunk(Item, Nth(2)).Chunk(Word, Nth(3)).Build()
	w := addr.Get(s)                                      // w = "pqrstu"

or use the positional calling convention of the XxxChunk functions, which
mirrors the argument lists of the scripting environment. Package expr parses
textual chunk expressions ("word 3 of item 2") into addresses, and package
luachunk exposes the operations to Lua scripts.

All positions reported by this package are byte offsets into the text. Every
operation is a pure function of its inputs, with the exception of drawing
random numbers for Any.

_________________________________________________________________________

# BSD 3-Clause License

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
package chunkex
