package chunkex

import "fmt"

// ChunkType is the kind of structural substring addressed.
type ChunkType uint8

// The closed set of chunk types.
const (
	Character ChunkType = iota + 1
	Line
	Item
	Column
	Row
	Word
	Sentence
	Paragraph
)

var chunkTypeNames = [...]string{
	Character: "character",
	Line:      "line",
	Item:      "item",
	Column:    "column",
	Row:       "row",
	Word:      "word",
	Sentence:  "sentence",
	Paragraph: "paragraph",
}

// Valid reports whether t is one of the chunk type constants.
func (t ChunkType) Valid() bool {
	return t >= Character && t <= Paragraph
}

// Delimited reports whether chunks of type t are separated by a literal
// delimiter string. Only delimited chunk types take part in text extension.
func (t ChunkType) Delimited() bool {
	switch t {
	case Line, Item, Column, Row:
		return true
	}
	return false
}

func (t ChunkType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("ChunkType(%d)", uint8(t))
	}
	return chunkTypeNames[t]
}

// ChunkTypeFromName returns the chunk type for a lower-case name as returned by
// ChunkType.String.
func ChunkTypeFromName(name string) (ChunkType, bool) {
	for t := Character; t <= Paragraph; t++ {
		if chunkTypeNames[t] == name {
			return t, true
		}
	}
	return 0, false
}

// --- Delimiters ------------------------------------------------------------

// Directive names one of the delimiters of a Delimiters set. In an argument
// list a directive is followed by the new delimiter value, which will be in
// effect for all chunk groups following it.
type Directive uint8

// Delimiter directives.
const (
	LineEnding Directive = iota + 1
	ItemDelimiter
	ColumnDelimiter
	RowDelimiter
)

func (d Directive) String() string {
	switch d {
	case LineEnding:
		return "lineEnding"
	case ItemDelimiter:
		return "itemDelimiter"
	case ColumnDelimiter:
		return "columnDelimiter"
	case RowDelimiter:
		return "rowDelimiter"
	}
	return fmt.Sprintf("Directive(%d)", uint8(d))
}

// Default delimiter strings.
const (
	DefaultLineEnding      = "\n"
	DefaultItemDelimiter   = ","
	DefaultColumnDelimiter = "\uFFF0"
	DefaultRowDelimiter    = "\uFFF1"
)

// Delimiters holds the separator strings of the delimited chunk types.
// Delimiters are values: every address expression captures the delimiters in
// effect at the time it has been parsed.
type Delimiters struct {
	LineEnding string
	Item       string
	Column     string
	Row        string
}

// DefaultDelimiters returns line feed, comma, U+FFF0 and U+FFF1.
func DefaultDelimiters() Delimiters {
	return Delimiters{
		LineEnding: DefaultLineEnding,
		Item:       DefaultItemDelimiter,
		Column:     DefaultColumnDelimiter,
		Row:        DefaultRowDelimiter,
	}
}

// With returns a copy of d with the delimiter named by dir set to value.
// An empty value or an unknown directive leaves d unchanged and results in an error.
func (d Delimiters) With(dir Directive, value string) (Delimiters, error) {
	if value == "" {
		return d, ErrEmptyDelimiter
	}
	switch dir {
	case LineEnding:
		d.LineEnding = value
	case ItemDelimiter:
		d.Item = value
	case ColumnDelimiter:
		d.Column = value
	case RowDelimiter:
		d.Row = value
	default:
		return d, fmt.Errorf("%w: %s", ErrParse, dir)
	}
	return d, nil
}

// delimiterFor returns the delimiter string of a delimited chunk type.
func (d Delimiters) delimiterFor(t ChunkType) string {
	switch t {
	case Line:
		return d.LineEnding
	case Item:
		return d.Item
	case Column:
		return d.Column
	case Row:
		return d.Row
	}
	return ""
}

// --- Ordinals --------------------------------------------------------------

// Specifier is the kind of an Ordinal.
type Specifier uint8

// Ordinal specifiers. Explicit ordinals carry a number, the others are resolved
// against the number of chunks in the search window.
const (
	Explicit Specifier = iota
	Any
	First
	Middle
	Last
)

func (s Specifier) String() string {
	switch s {
	case Explicit:
		return "explicit"
	case Any:
		return "any"
	case First:
		return "first"
	case Middle:
		return "middle"
	case Last:
		return "last"
	}
	return fmt.Sprintf("Specifier(%d)", uint8(s))
}

// Ordinal is a chunk position, either explicit or symbolic.
//
// Explicit ordinals are 1-based. 0 denotes the position before the first chunk,
// negative ordinals count from the end (-1 is the last chunk). Ordinals beyond
// the chunk count are legal and address the end of the window (or, for edits of
// delimited chunk types, new chunks).
type Ordinal struct {
	Spec Specifier
	N    int // number of an explicit ordinal
}

// Nth returns an explicit ordinal.
func Nth(n int) Ordinal {
	return Ordinal{Spec: Explicit, N: n}
}

// Symbolic returns a symbolic ordinal.
func Symbolic(s Specifier) Ordinal {
	return Ordinal{Spec: s}
}

func (o Ordinal) String() string {
	if o.Spec == Explicit {
		return fmt.Sprintf("%d", o.N)
	}
	return o.Spec.String()
}

// Marker is a token of the positional calling convention which is neither a
// chunk type nor a directive.
type Marker uint8

// ByContent announces that the chunk group addresses a chunk by its content.
// It must be followed by a string, a *regexp.Regexp or a Predicate.
const ByContent Marker = 1

func (m Marker) String() string {
	if m == ByContent {
		return "byContent"
	}
	return fmt.Sprintf("Marker(%d)", uint8(m))
}
