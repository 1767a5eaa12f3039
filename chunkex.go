package chunkex

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ChunkError is an error type for the chunkex module.
type ChunkError string

func (e ChunkError) Error() string {
	return string(e)
}

// ErrParse is flagged for malformed addresses, i.e. argument lists which do not
// form a sequence of chunk groups and delimiter directives.
const ErrParse = ChunkError("malformed chunk address")

// ErrNoSuchChunk is flagged when an edit addresses a chunk by content and no
// chunk with that content exists.
const ErrNoSuchChunk = ChunkError("no such chunk")

// ErrUnknownChunkType is flagged for chunk type values outside of the closed set
// of chunk types.
const ErrUnknownChunkType = ChunkError("unknown chunk type")

// ErrEmptyDelimiter is flagged if a delimiter directive sets an empty delimiter.
const ErrEmptyDelimiter = ChunkError("delimiter must not be empty")

// ParseError reports a malformed argument list. Arg is the 0-based position of
// the offending argument, counted without the text argument.
type ParseError struct {
	Arg int
	Msg string
	Err error // underlying cause, may be nil
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("chunk address, argument %d: %s", e.Arg, e.Msg)
}

// Unwrap makes ParseErrors match ErrParse and their underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParse, e.Err}
	}
	return []error{ErrParse}
}

func parseErrorf(arg int, format string, args ...any) *ParseError {
	return &ParseError{Arg: arg, Msg: fmt.Sprintf(format, args...)}
}

// NoSuchChunkError is returned from Replace, Prepend and Append if an expression
// addressing a chunk by content did not find a match.
type NoSuchChunkError struct {
	Type    ChunkType
	Content Predicate
}

func (e *NoSuchChunkError) Error() string {
	return fmt.Sprintf("there is no %s %s", e.Type, e.Content)
}

// Unwrap makes NoSuchChunkErrors match ErrNoSuchChunk.
func (e *NoSuchChunkError) Unwrap() error {
	return ErrNoSuchChunk
}
