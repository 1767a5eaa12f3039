package chunkex

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// stepFunc moves a position i within window [i,j) of text s and returns the
// new position, which is always in [i,j].
type stepFunc func(s string, i, j int) int

// Stepper defines the boundaries of a chunk type. Chunks are found by
//
//	i = First(s, i, j)    // skip content preceding the first chunk
//	o = End(s, i, j)      // end of the chunk starting at i
//	u = Next(s, o, j)     // start of the following chunk
//
// with i ≤ o ≤ u ≤ j.
type Stepper struct {
	findFirst stepFunc
	findEnd   stepFunc
	findNext  stepFunc
	delimiter string // empty for non-delimited types
}

// StepperFor returns the stepper for chunk type t, using the delimiters in d.
func StepperFor(t ChunkType, d Delimiters) (Stepper, error) {
	switch t {
	case Character:
		return Stepper{findFirst: skipNothing, findEnd: skipCharacter, findNext: skipNothing}, nil
	case Line, Item, Column, Row:
		delim := d.delimiterFor(t)
		if delim == "" {
			return Stepper{}, ErrEmptyDelimiter
		}
		return delimiterStepper(delim), nil
	case Word:
		return Stepper{findFirst: skipWhiteSpace, findEnd: skipToWhiteSpace, findNext: skipWhiteSpace}, nil
	case Sentence:
		return Stepper{findFirst: skipWhiteSpace, findEnd: skipToSentenceEnd, findNext: skipWhiteSpace}, nil
	case Paragraph:
		return Stepper{findFirst: skipLineBreaks, findEnd: skipToLineBreak, findNext: skipLineBreaks}, nil
	}
	return Stepper{}, ErrUnknownChunkType
}

func delimiterStepper(delim string) Stepper {
	return Stepper{
		findFirst: skipNothing,
		findEnd: func(s string, i, j int) int {
			if k := strings.Index(s[i:j], delim); k >= 0 {
				return i + k
			}
			return j
		},
		findNext: func(s string, i, j int) int {
			if i < j && strings.HasPrefix(s[i:j], delim) {
				return i + len(delim)
			}
			return i
		},
		delimiter: delim,
	}
}

// First skips everything in [i,j) preceding the first chunk.
func (st Stepper) First(s string, i, j int) int {
	return st.findFirst(s, i, j)
}

// End returns the end position of the chunk starting at i.
func (st Stepper) End(s string, i, j int) int {
	return st.findEnd(s, i, j)
}

// Next returns the start position of the chunk following the one ending at o.
func (st Stepper) Next(s string, o, j int) int {
	return st.findNext(s, o, j)
}

// Delimited reports whether the chunks of this stepper are separated by a
// literal delimiter.
func (st Stepper) Delimited() bool {
	return st.delimiter != ""
}

// Delimiter returns the delimiter of a delimited stepper, or "".
func (st Stepper) Delimiter() string {
	return st.delimiter
}

// Count returns the number of chunks in window [i,j) of s.
func (st Stepper) Count(s string, i, j int) int {
	n := 0
	i = st.findFirst(s, i, j)
	for i < j {
		n++
		i = st.findEnd(s, i, j)
		i = st.findNext(s, i, j)
	}
	return n
}

// --- Step functions --------------------------------------------------------

func skipNothing(s string, i, j int) int {
	return i
}

// skipCharacter steps over one UTF-8 encoded code point. Invalid bytes count as
// characters of their own.
func skipCharacter(s string, i, j int) int {
	if i < j {
		_, width := utf8.DecodeRuneInString(s[i:j])
		i += width
	}
	return i
}

func skipWhiteSpace(s string, i, j int) int {
	for i < j {
		r, width := utf8.DecodeRuneInString(s[i:j])
		if !isWhiteSpace(r) {
			break
		}
		i += width
	}
	return i
}

func skipToWhiteSpace(s string, i, j int) int {
	for i < j {
		r, width := utf8.DecodeRuneInString(s[i:j])
		if isWhiteSpace(r) {
			break
		}
		i += width
	}
	return i
}

func skipToSentenceEnd(s string, i, j int) int {
	for i < j && !isSentenceEnder(s[i]) {
		_, width := utf8.DecodeRuneInString(s[i:j])
		i += width
	}
	return skipToWhiteSpace(s, i, j)
}

func skipLineBreaks(s string, i, j int) int {
	for i < j {
		r, width := utf8.DecodeRuneInString(s[i:j])
		if !isLineBreak(r) {
			break
		}
		i += width
	}
	return i
}

func skipToLineBreak(s string, i, j int) int {
	for i < j {
		r, width := utf8.DecodeRuneInString(s[i:j])
		if isLineBreak(r) {
			break
		}
		i += width
	}
	return i
}

// --- Character classes -----------------------------------------------------

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

// isWhiteSpace includes control characters, NBSP and BOM.
func isWhiteSpace(r rune) bool {
	return r <= 0x20 || (r >= 0x7f && r <= 0xa0) || r == '\uFEFF' || unicode.IsSpace(r)
}

func isSentenceEnder(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}
