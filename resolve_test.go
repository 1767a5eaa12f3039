package chunkex

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestResolveOrdinals(t *testing.T) {
	tests := []struct {
		start, end Ordinal
		n          int
		ws, we     int
	}{
		{Nth(2), Nth(4), 5, 2, 4},
		{Symbolic(First), Symbolic(Last), 5, 1, 5},
		{Symbolic(Middle), Symbolic(Middle), 5, 3, 3},
		{Symbolic(Middle), Symbolic(Middle), 6, 4, 4},
		{Nth(-1), Nth(-5), 5, 5, 1},
		{Nth(0), Nth(10), 5, 0, 10},
		{Nth(-10), Nth(-10), 5, -4, -4},
		{Symbolic(Last), Symbolic(Last), 0, 0, 0},
		{Symbolic(Any), Symbolic(Any), 0, 1, 1},
		{Symbolic(Any), Symbolic(Any), 1, 1, 1},
	}
	for _, tt := range tests {
		ws, we := resolveOrdinals(tt.start, tt.end, tt.n)
		if ws != tt.ws || we != tt.we {
			t.Errorf("expected (%s,%s) of %d to resolve to (%d,%d), is (%d,%d)",
				tt.start, tt.end, tt.n, tt.ws, tt.we, ws, we)
		}
	}
}

func TestResolveAnyWithinBounds(t *testing.T) {
	for i := 0; i < 200; i++ {
		ws, we := resolveOrdinals(Symbolic(Any), Symbolic(Any), 7)
		if ws != we || ws < 1 || ws > 7 {
			t.Fatalf("expected equal ordinals in [1,7], are (%d,%d)", ws, we)
		}
		_, we = resolveOrdinals(Nth(2), Symbolic(Any), 7)
		if we < 1 || we > 7 {
			t.Fatalf("expected end ordinal in [1,7], is %d", we)
		}
	}
}

func TestResolveExtension(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	e := OrdinalExpr(Item, Nth(-3), Nth(4), DefaultDelimiters())
	r, err := Resolve("a,b", 0, 3, e, true, true)
	if err != nil {
		t.Fatal(err.Error())
	}
	if r.Text != ",a,b,," || r.Prepended != "," || r.Appended != ",," {
		t.Errorf("unexpected extension %q, prepended %q, appended %q", r.Text, r.Prepended, r.Appended)
	}
	if r.First != 1 || r.Last != 5 {
		t.Errorf("expected shifted ordinals (1,5), are (%d,%d)", r.First, r.Last)
	}
	if r.Location != (Location{Start: 0, End: 6, DeleteEnd: 6}) {
		t.Errorf("unexpected location %+v", r.Location)
	}
	// no extension for reading
	r, _ = Resolve("a,b", 0, 3, e, false, false)
	if r.Text != "a,b" || r.Appended != "" || r.Prepended != "" {
		t.Errorf("expected text unchanged, is %q", r.Text)
	}
	// not for non-delimited types
	r, _ = Resolve("ab", 0, 2, OrdinalExpr(Character, Nth(5), Nth(5), DefaultDelimiters()), true, true)
	if r.Text != "ab" || r.Location.Start != 2 {
		t.Errorf("expected clamping for characters, is %q at %d", r.Text, r.Location.Start)
	}
}

func TestResolveWindow(t *testing.T) {
	s := "x|a,b|y"
	e := OrdinalExpr(Item, Nth(3), Nth(3), DefaultDelimiters())
	r, err := Resolve(s, 2, 5, e, false, true)
	if err != nil {
		t.Fatal(err.Error())
	}
	if r.Text != "x|a,b,|y" {
		t.Errorf("expected extension inside window, is %q", r.Text)
	}
	if r.Location.Start != 6 || r.Location.End != 6 {
		t.Errorf("expected item 3 at end of grown window, is %+v", r.Location)
	}
	if _, err := Resolve(s, 0, len(s), OrdinalExpr(Item, Nth(1), Nth(1), Delimiters{}), false, false); !errors.Is(err, ErrEmptyDelimiter) {
		t.Errorf("expected ErrEmptyDelimiter for missing delimiters, is %v", err)
	}
	r, _ = Resolve(s, -3, 100, OrdinalExpr(Character, Symbolic(Last), Symbolic(Last), DefaultDelimiters()), false, false)
	if r.Location.Start != len(s)-1 {
		t.Errorf("expected window to be clipped to text, is %+v", r.Location)
	}
}

func TestResolveByContent(t *testing.T) {
	e := ContentExpr(Word, Literal("name"), DefaultDelimiters())
	r, err := Resolve(std, 0, len(std), e, true, true)
	if err != nil {
		t.Fatal(err.Error())
	}
	if r.First != 3 || std[r.Location.Start:r.Location.End] != "name" || r.Location.DeleteEnd != r.Location.End+1 {
		t.Errorf("unexpected content match #%d at %+v", r.First, r.Location)
	}
	_, err = Resolve(std, 0, len(std), ContentExpr(Word, Literal("Ginny"), DefaultDelimiters()), true, true)
	var nsc *NoSuchChunkError
	if !errors.As(err, &nsc) || nsc.Content.String() != `"Ginny"` {
		t.Errorf("expected NoSuchChunkError for Ginny, is %v", err)
	}
}

func TestLocateReversed(t *testing.T) {
	st, _ := StepperFor(Character, DefaultDelimiters())
	loc := locate("Hello", 0, 5, st, 4, 2)
	if loc.Start != 3 || loc.End != 3 || loc.DeleteEnd != 3 {
		t.Errorf("expected reversed bounds to collapse at 3, is %+v", loc)
	}
}

// After extension, every requested ordinal addresses a chunk of the grown
// window, where ordinal count+1 is the open chunk following a trailing
// delimiter.
func TestExtensionProperty(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	texts := []string{"", "a", "a,b", "a,,b", ",a", "a,b,", ",", "hello,world,again"}
	modes := [][2]bool{{true, true}, {true, false}, {false, true}}
	d := DefaultDelimiters()
	st, _ := StepperFor(Item, d)
	for _, text := range texts {
		n := st.Count(text, 0, len(text))
		for k1 := -8; k1 <= 8; k1++ {
			for k2 := -8; k2 <= 8; k2++ {
				for _, m := range modes {
					e := OrdinalExpr(Item, Nth(k1), Nth(k2), d)
					r, err := Resolve(text, 0, len(text), e, m[0], m[1])
					if err != nil {
						t.Fatal(err.Error())
					}
					if strings.ReplaceAll(r.Text, ",", "") != strings.ReplaceAll(text, ",", "") {
						t.Fatalf("extension of %q inserted more than delimiters: %q", text, r.Text)
					}
					if r.Text != r.Prepended+text+r.Appended {
						t.Fatalf("expected %q to be %q+%q+%q", r.Text, r.Prepended, text, r.Appended)
					}
					grown := st.Count(r.Text, 0, len(r.Text))
					check := func(side string, ord int) {
						if ord < 1 || ord > grown+1 {
							t.Errorf("%q %s (%d,%d): %s ordinal %d outside of [1,%d] after extension to %q",
								text, e.Type, k1, k2, side, ord, grown+1, r.Text)
						}
					}
					if m[0] {
						check("start", r.First)
					}
					if m[1] {
						check("end", r.Last)
					}
					if (m[0] && k1 > n) || (m[1] && k2 > n) {
						if !strings.HasSuffix(text, ",") && r.Location.End != len(r.Text) {
							t.Errorf("%q (%d,%d): expected chunk to end at grown text end, is %+v in %q",
								text, k1, k2, r.Location, r.Text)
						}
					}
					if r.Location.Start > r.Location.End || r.Location.End > r.Location.DeleteEnd ||
						r.Location.DeleteEnd > len(r.Text) {
						t.Fatalf("invalid location %+v in %q", r.Location, r.Text)
					}
				}
			}
		}
	}
}
