package expr

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/npillmayer/chunkex"
)

// SyntaxError reports a malformed chunk expression.
type SyntaxError struct {
	Offset int // byte offset into the expression
	Column int // 1-based column of the offending token
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("chunk expression, column %d: %s", e.Column, e.Msg)
}

// Unwrap makes SyntaxErrors match chunkex.ErrParse.
func (e *SyntaxError) Unwrap() error {
	return chunkex.ErrParse
}

// Parse parses a chunk expression, using the default delimiters.
func Parse(src string) (chunkex.Address, error) {
	return ParseWith(src, chunkex.DefaultDelimiters())
}

// ParseWith parses a chunk expression. Delimited chunks are separated by the
// delimiters in d.
func ParseWith(src string, d chunkex.Delimiters) (chunkex.Address, error) {
	p := newParser(src, d)
	exprs, err := p.chain()
	if err == nil {
		err = p.end()
	}
	if err != nil {
		return chunkex.Address{}, err
	}
	return p.build(exprs)
}

// ParseCount parses an expression naming a chunk type to count, optionally
// within a chunk:
//
//	the number of words in line 2
//	chars of item 3
func ParseCount(src string) (chunkex.Address, chunkex.ChunkType, error) {
	return ParseCountWith(src, chunkex.DefaultDelimiters())
}

// ParseCountWith is ParseCount with delimiters d.
func ParseCountWith(src string, d chunkex.Delimiters) (chunkex.Address, chunkex.ChunkType, error) {
	p := newParser(src, d)
	p.skip("the")
	if p.is("number") {
		p.next()
		if err := p.expect("of"); err != nil {
			return chunkex.Address{}, 0, err
		}
	}
	t, err := p.chunkType()
	if err != nil {
		return chunkex.Address{}, 0, err
	}
	var exprs []chunkex.Expr
	if p.is("of") || p.is("in") {
		p.next()
		if exprs, err = p.chain(); err != nil {
			return chunkex.Address{}, 0, err
		}
	}
	if err = p.end(); err != nil {
		return chunkex.Address{}, 0, err
	}
	addr, err := p.build(exprs)
	return addr, t, err
}

// --- Parser ----------------------------------------------------------------

var chunkTypes = map[string]chunkex.ChunkType{
	"char": chunkex.Character, "chars": chunkex.Character,
	"character": chunkex.Character, "characters": chunkex.Character,
	"line": chunkex.Line, "lines": chunkex.Line,
	"item": chunkex.Item, "items": chunkex.Item,
	"column": chunkex.Column, "columns": chunkex.Column,
	"row": chunkex.Row, "rows": chunkex.Row,
	"word": chunkex.Word, "words": chunkex.Word,
	"sentence": chunkex.Sentence, "sentences": chunkex.Sentence,
	"paragraph": chunkex.Paragraph, "paragraphs": chunkex.Paragraph,
}

var ordinalWords = map[string]chunkex.Ordinal{
	"first":   chunkex.Symbolic(chunkex.First),
	"second":  chunkex.Nth(2),
	"third":   chunkex.Nth(3),
	"fourth":  chunkex.Nth(4),
	"fifth":   chunkex.Nth(5),
	"sixth":   chunkex.Nth(6),
	"seventh": chunkex.Nth(7),
	"eighth":  chunkex.Nth(8),
	"ninth":   chunkex.Nth(9),
	"tenth":   chunkex.Nth(10),
	"middle":  chunkex.Symbolic(chunkex.Middle),
	"mid":     chunkex.Symbolic(chunkex.Middle),
	"last":    chunkex.Symbolic(chunkex.Last),
	"any":     chunkex.Symbolic(chunkex.Any),
}

type parser struct {
	src    string
	scan   scanner.Scanner
	tok    rune
	text   string
	pos    scanner.Position
	err    *SyntaxError // first error reported by the scanner
	delims chunkex.Delimiters
}

func newParser(src string, d chunkex.Delimiters) *parser {
	if d == (chunkex.Delimiters{}) {
		d = chunkex.DefaultDelimiters()
	}
	p := &parser{src: src, delims: d}
	p.scan.Init(strings.NewReader(src))
	p.scan.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanStrings | scanner.ScanRawStrings
	p.scan.Error = func(s *scanner.Scanner, msg string) {
		if p.err == nil {
			pos := s.Position
			p.err = &SyntaxError{Offset: pos.Offset, Column: pos.Column, Msg: msg}
		}
	}
	p.next()
	return p
}

func (p *parser) next() {
	p.tok = p.scan.Scan()
	p.text = p.scan.TokenText()
	p.pos = p.scan.Position
}

func (p *parser) errorf(format string, args ...any) error {
	if p.err != nil {
		return p.err
	}
	return &SyntaxError{Offset: p.pos.Offset, Column: p.pos.Column, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) found() string {
	if p.tok == scanner.EOF {
		return "end of expression"
	}
	return strconv.Quote(p.text)
}

// is reports whether the current token is the keyword w.
func (p *parser) is(w string) bool {
	return p.tok == scanner.Ident && strings.EqualFold(p.text, w)
}

func (p *parser) skip(w string) {
	if p.is(w) {
		p.next()
	}
}

func (p *parser) expect(w string) error {
	if !p.is(w) {
		return p.errorf("expected %q but found %s", w, p.found())
	}
	p.next()
	return nil
}

func (p *parser) end() error {
	if p.tok != scanner.EOF || p.err != nil {
		return p.errorf("unexpected %s", p.found())
	}
	return nil
}

// chain parses chunk { (of|in) chunk } and returns the expressions outermost
// first.
func (p *parser) chain() ([]chunkex.Expr, error) {
	var exprs []chunkex.Expr
	for {
		e, err := p.chunk()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if !p.is("of") && !p.is("in") {
			break
		}
		p.next()
	}
	for i, j := 0, len(exprs)-1; i < j; i, j = i+1, j-1 {
		exprs[i], exprs[j] = exprs[j], exprs[i]
	}
	return exprs, nil
}

// chunk parses
//
//	[the] ordinal-word type
//	type ordinal [to ordinal]
//	type string [ignoring case]
//	type matching string [ignoring case]
func (p *parser) chunk() (chunkex.Expr, error) {
	p.skip("the")
	if o, ok := ordinalWords[strings.ToLower(p.text)]; ok && p.tok == scanner.Ident {
		p.next()
		t, err := p.chunkType()
		if err != nil {
			return chunkex.Expr{}, err
		}
		return chunkex.OrdinalExpr(t, o, o, p.delims), nil
	}
	t, err := p.chunkType()
	if err != nil {
		return chunkex.Expr{}, err
	}
	switch {
	case p.tok == scanner.String || p.tok == scanner.RawString:
		lit, err := p.str()
		if err != nil {
			return chunkex.Expr{}, err
		}
		if p.ignoringCase() {
			return chunkex.ContentExpr(t, chunkex.LiteralFold(lit), p.delims), nil
		}
		return chunkex.ContentExpr(t, chunkex.Literal(lit), p.delims), nil
	case p.is("matching"):
		p.next()
		at := p.pos
		pattern, err := p.str()
		if err != nil {
			return chunkex.Expr{}, err
		}
		pred, err := chunkex.CompilePattern(pattern, p.ignoringCase())
		if err != nil {
			return chunkex.Expr{}, &SyntaxError{Offset: at.Offset, Column: at.Column, Msg: err.Error()}
		}
		return chunkex.ContentExpr(t, pred, p.delims), nil
	}
	from, err := p.ordinal()
	if err != nil {
		return chunkex.Expr{}, err
	}
	to := from
	if p.is("to") || p.is("thru") || p.is("through") {
		p.next()
		if to, err = p.ordinal(); err != nil {
			return chunkex.Expr{}, err
		}
	}
	return chunkex.OrdinalExpr(t, from, to, p.delims), nil
}

func (p *parser) chunkType() (chunkex.ChunkType, error) {
	if p.tok == scanner.Ident {
		if t, ok := chunkTypes[strings.ToLower(p.text)]; ok {
			p.next()
			return t, nil
		}
	}
	return 0, p.errorf("expected chunk type but found %s", p.found())
}

func (p *parser) ordinal() (chunkex.Ordinal, error) {
	if p.tok == scanner.Ident {
		if o, ok := ordinalWords[strings.ToLower(p.text)]; ok {
			p.next()
			return o, nil
		}
	}
	sign := 1
	if p.tok == '-' {
		sign = -1
		p.next()
	}
	if p.tok != scanner.Int {
		return chunkex.Ordinal{}, p.errorf("expected ordinal but found %s", p.found())
	}
	n, err := strconv.Atoi(p.text)
	if err != nil {
		return chunkex.Ordinal{}, p.errorf("malformed ordinal %s", p.found())
	}
	p.next()
	return chunkex.Nth(sign * n), nil
}

func (p *parser) str() (string, error) {
	if p.tok != scanner.String && p.tok != scanner.RawString {
		return "", p.errorf("expected string but found %s", p.found())
	}
	s, err := strconv.Unquote(p.text)
	if err != nil {
		return "", p.errorf("malformed string %s", p.text)
	}
	p.next()
	return s, nil
}

func (p *parser) ignoringCase() bool {
	if !p.is("ignoring") {
		return false
	}
	p.next()
	p.skip("case")
	return true
}

func (p *parser) build(exprs []chunkex.Expr) (chunkex.Address, error) {
	b := chunkex.NewAddressWith(p.delims)
	for _, e := range exprs {
		b.Expr(e)
	}
	addr, err := b.Build()
	if err != nil {
		return chunkex.Address{}, err
	}
	tracer().Debugf("chunk expression %q: %s", p.src, addr)
	return addr, nil
}
