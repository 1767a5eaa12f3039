package chunkex

import (
	"fmt"
	"regexp"
	"strings"
)

// Expr is a single address expression: a chunk type together with either a
// range of ordinals or a content predicate. Every expression carries the
// delimiters which have been in effect when it was created.
type Expr struct {
	Type       ChunkType
	Start, End Ordinal
	Content    Predicate
	Delims     Delimiters
	byContent  bool
}

// OrdinalExpr creates an expression for chunks start to end of type t.
func OrdinalExpr(t ChunkType, start, end Ordinal, d Delimiters) Expr {
	return Expr{Type: t, Start: start, End: end, Delims: d}
}

// ContentExpr creates an expression for the first chunk of type t matching p.
func ContentExpr(t ChunkType, p Predicate, d Delimiters) Expr {
	return Expr{Type: t, Content: p, Delims: d, byContent: true}
}

// IsContent reports whether e addresses a chunk by content.
func (e Expr) IsContent() bool {
	return e.byContent
}

func (e Expr) String() string {
	if e.byContent {
		return fmt.Sprintf("%s %s", e.Type, e.Content)
	}
	if e.Start == e.End {
		return fmt.Sprintf("%s %s", e.Type, e.Start)
	}
	return fmt.Sprintf("%s %s to %s", e.Type, e.Start, e.End)
}

func (e Expr) validate() error {
	if !e.Type.Valid() {
		return ErrUnknownChunkType
	}
	if e.Type.Delimited() && e.Delims.delimiterFor(e.Type) == "" {
		return ErrEmptyDelimiter
	}
	if e.byContent {
		if !e.Content.IsValid() {
			return fmt.Errorf("%w: missing content predicate", ErrParse)
		}
		return nil
	}
	if e.Start.Spec > Last || e.End.Spec > Last {
		return fmt.Errorf("%w: unknown ordinal specifier", ErrParse)
	}
	return nil
}

// --- Addresses -------------------------------------------------------------

// Address is an ordered list of expressions, outermost first. Every expression
// is resolved within the chunk found by its predecessor.
//
// The zero Address addresses the complete text.
type Address struct {
	exprs  []Expr
	delims Delimiters
}

// Exprs returns a copy of the expressions of a.
func (a Address) Exprs() []Expr {
	return append([]Expr(nil), a.exprs...)
}

// Len returns the nesting depth of a.
func (a Address) Len() int {
	return len(a.exprs)
}

// Delimiters returns the delimiters in effect after the last expression of a.
// Count and Split use them for stepping over the chunks to count.
func (a Address) Delimiters() Delimiters {
	if a.delims == (Delimiters{}) {
		return DefaultDelimiters()
	}
	return a.delims
}

// Within returns an address which resolves inner within a. The delimiters in
// effect are those of inner.
func (a Address) Within(inner Address) Address {
	exprs := make([]Expr, 0, len(a.exprs)+len(inner.exprs))
	exprs = append(exprs, a.exprs...)
	exprs = append(exprs, inner.exprs...)
	return Address{exprs: exprs, delims: inner.Delimiters()}
}

func (a Address) String() string {
	if len(a.exprs) == 0 {
		return "<text>"
	}
	parts := make([]string, len(a.exprs))
	for i, e := range a.exprs {
		parts[len(a.exprs)-1-i] = e.String()
	}
	return strings.Join(parts, " of ")
}

// Builder assembles an Address. The first error is remembered and reported by
// Build; calls after an error have no effect.
//
//	addr, err := NewAddress().
//	    Delimiter(ItemDelimiter, ";").
//	    Chunk(Item, Nth(2)).
//	    Range(Word, First, Nth(3)).
//	    Build()
type Builder struct {
	delims Delimiters
	exprs  []Expr
	step   int
	err    error
}

// NewAddress creates a builder, starting with the default delimiters.
func NewAddress() *Builder {
	return &Builder{delims: DefaultDelimiters()}
}

// NewAddressWith creates a builder, starting with delimiters d. A zero d
// selects the default delimiters.
func NewAddressWith(d Delimiters) *Builder {
	if d == (Delimiters{}) {
		d = DefaultDelimiters()
	}
	return &Builder{delims: d}
}

// Chunk appends an expression for chunk o of type t.
func (b *Builder) Chunk(t ChunkType, o Ordinal) *Builder {
	return b.add(OrdinalExpr(t, o, o, b.delims))
}

// Range appends an expression for chunks from to to of type t.
func (b *Builder) Range(t ChunkType, from, to Ordinal) *Builder {
	return b.add(OrdinalExpr(t, from, to, b.delims))
}

// Content appends an expression for the first chunk of type t satisfying p.
func (b *Builder) Content(t ChunkType, p Predicate) *Builder {
	return b.add(ContentExpr(t, p, b.delims))
}

// Expr appends a prepared expression unchanged.
func (b *Builder) Expr(e Expr) *Builder {
	return b.add(e)
}

// Delimiter changes a delimiter for all expressions added after this call.
func (b *Builder) Delimiter(dir Directive, value string) *Builder {
	if b.err != nil {
		return b
	}
	d, err := b.delims.With(dir, value)
	if err != nil {
		b.err = &ParseError{Arg: b.step, Msg: fmt.Sprintf("cannot set %s", dir), Err: err}
		return b
	}
	b.delims = d
	b.step++
	return b
}

func (b *Builder) add(e Expr) *Builder {
	if b.err != nil {
		return b
	}
	if err := e.validate(); err != nil {
		b.err = &ParseError{Arg: b.step, Msg: fmt.Sprintf("invalid expression %s", e), Err: err}
		return b
	}
	b.exprs = append(b.exprs, e)
	b.step++
	return b
}

// Build returns the address or the first error encountered.
func (b *Builder) Build() (Address, error) {
	if b.err != nil {
		return Address{}, b.err
	}
	return Address{exprs: append([]Expr(nil), b.exprs...), delims: b.delims}, nil
}

// --- Positional arguments --------------------------------------------------

// ParseArgs builds an address from an argument list of the positional calling
// convention. The list consists of groups
//
//	ChunkType, ordinal               // single chunk
//	ChunkType, ordinal, ordinal      // range of chunks
//	ChunkType, ByContent, content    // chunk by content
//	Directive, string                // change a delimiter
//
// where an ordinal is an int, an Ordinal or a Specifier, and content is a string,
// a *regexp.Regexp or a Predicate.
func ParseArgs(args ...any) (Address, error) {
	return parseArgs(args)
}

// ParseCountArgs parses an argument list terminated by a bare chunk type, as
// used by CountChunks and SplitChunks. It returns the address for the chunk
// groups and the trailing chunk type.
func ParseCountArgs(args ...any) (Address, ChunkType, error) {
	if len(args) == 0 {
		return Address{}, 0, parseErrorf(0, "expected chunk type but found end of arguments")
	}
	last := len(args) - 1
	t, ok := args[last].(ChunkType)
	if !ok || !t.Valid() {
		return Address{}, 0, parseErrorf(last, "expected chunk type but found %v", args[last])
	}
	addr, err := parseArgs(args[:last])
	if err != nil {
		return Address{}, 0, err
	}
	return addr, t, nil
}

func parseArgs(args []any) (Address, error) {
	b := NewAddress()
	i := 0
	for i < len(args) {
		switch tok := args[i].(type) {
		case ChunkType:
			if !tok.Valid() {
				return Address{}, &ParseError{Arg: i,
					Msg: fmt.Sprintf("expected chunk type but found %v", tok), Err: ErrUnknownChunkType}
			}
			i++
			if i >= len(args) {
				return Address{}, parseErrorf(i, "expected ordinal but found end of arguments")
			}
			if args[i] == ByContent {
				i++
				if i >= len(args) {
					return Address{}, parseErrorf(i, "expected content but found end of arguments")
				}
				p, ok := asPredicate(args[i])
				if !ok {
					return Address{}, parseErrorf(i, "expected content but found %v", args[i])
				}
				i++
				b.Content(tok, p)
				continue
			}
			start, ok := asOrdinal(args[i])
			if !ok {
				return Address{}, parseErrorf(i, "expected ordinal but found %v", args[i])
			}
			i++
			end := start
			if i < len(args) {
				if o, ok := asOrdinal(args[i]); ok {
					end = o
					i++
				}
			}
			b.Range(tok, start, end)
		case Directive:
			i++
			if i >= len(args) {
				return Address{}, parseErrorf(i, "expected delimiter but found end of arguments")
			}
			value, ok := args[i].(string)
			if !ok {
				return Address{}, parseErrorf(i, "expected delimiter string but found %v", args[i])
			}
			d, err := b.delims.With(tok, value)
			if err != nil {
				return Address{}, &ParseError{Arg: i, Msg: fmt.Sprintf("cannot set %s", tok), Err: err}
			}
			T().Debugf("chunk address: %s set to %q", tok, value)
			b.delims = d
			i++
		default:
			return Address{}, parseErrorf(i, "expected chunk type but found %v", args[i])
		}
		if b.err != nil {
			return Address{}, b.err
		}
	}
	return b.Build()
}

func asOrdinal(arg any) (Ordinal, bool) {
	switch a := arg.(type) {
	case int:
		return Nth(a), true
	case int32:
		return Nth(int(a)), true
	case int64:
		return Nth(int(a)), true
	case Ordinal:
		return a, a.Spec <= Last
	case Specifier:
		return Symbolic(a), a <= Last
	}
	return Ordinal{}, false
}

func asPredicate(arg any) (Predicate, bool) {
	switch a := arg.(type) {
	case string:
		return Literal(a), true
	case *regexp.Regexp:
		return Pattern(a), a != nil
	case Predicate:
		return a, a.IsValid()
	}
	return Predicate{}, false
}
