package chunkex

import (
	"fmt"
	"regexp"
	"strings"
)

type predicateKind uint8

const (
	literalPredicate predicateKind = iota + 1
	foldedPredicate
	patternPredicate
)

// Predicate tests the text of a chunk when addressing chunks by content.
//
// A literal predicate matches a chunk whose complete text equals the literal.
// A pattern predicate matches a chunk if the regular expression matches
// anywhere within the chunk's text; anchor the expression to match complete
// chunks only.
type Predicate struct {
	kind    predicateKind
	literal string
	pattern *regexp.Regexp
}

// Literal returns a case-sensitive predicate for chunks equal to s.
func Literal(s string) Predicate {
	return Predicate{kind: literalPredicate, literal: s}
}

// LiteralFold returns a predicate for chunks equal to s under Unicode
// case-folding.
func LiteralFold(s string) Predicate {
	return Predicate{kind: foldedPredicate, literal: s}
}

// Pattern returns a predicate for chunks matched by re.
func Pattern(re *regexp.Regexp) Predicate {
	return Predicate{kind: patternPredicate, pattern: re}
}

// CompilePattern compiles expr into a pattern predicate. If ignoreCase is set,
// the pattern matches case-insensitively.
func CompilePattern(expr string, ignoreCase bool) (Predicate, error) {
	if ignoreCase {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		T().Debugf("content pattern: cannot compile %q: %v", expr, err)
		return Predicate{}, fmt.Errorf("illegal content pattern: %w", err)
	}
	return Pattern(re), nil
}

// IsValid reports whether p has been created by one of the predicate constructors.
func (p Predicate) IsValid() bool {
	return p.kind == literalPredicate || p.kind == foldedPredicate ||
		(p.kind == patternPredicate && p.pattern != nil)
}

// Match reports whether chunk satisfies p. The zero Predicate matches nothing.
func (p Predicate) Match(chunk string) bool {
	switch p.kind {
	case literalPredicate:
		return chunk == p.literal
	case foldedPredicate:
		return strings.EqualFold(chunk, p.literal)
	case patternPredicate:
		return p.pattern != nil && p.pattern.MatchString(chunk)
	}
	return false
}

func (p Predicate) String() string {
	switch p.kind {
	case literalPredicate:
		return fmt.Sprintf("%q", p.literal)
	case foldedPredicate:
		return fmt.Sprintf("%q (ignoring case)", p.literal)
	case patternPredicate:
		if p.pattern != nil {
			return "/" + p.pattern.String() + "/"
		}
	}
	return "<no content>"
}
