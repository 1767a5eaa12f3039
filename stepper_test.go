package chunkex

import (
	"errors"
	"testing"
)

func TestStepperFor(t *testing.T) {
	d := DefaultDelimiters()
	for typ := Character; typ <= Paragraph; typ++ {
		st, err := StepperFor(typ, d)
		if err != nil {
			t.Fatalf("no stepper for %s: %v", typ, err)
		}
		if st.Delimited() != typ.Delimited() {
			t.Errorf("stepper for %s: expected delimited=%v", typ, typ.Delimited())
		}
	}
	if _, err := StepperFor(ChunkType(0), d); !errors.Is(err, ErrUnknownChunkType) {
		t.Errorf("expected ErrUnknownChunkType, is %v", err)
	}
	if _, err := StepperFor(Item, Delimiters{}); !errors.Is(err, ErrEmptyDelimiter) {
		t.Errorf("expected ErrEmptyDelimiter, is %v", err)
	}
}

func TestStepperBounds(t *testing.T) {
	texts := []string{"", " ", "a", "a b", "x,,y,", "\n\npara\n", "Hi! Yo?  ok.", "ä\u2028ö", "\xff\xfeab"}
	d := DefaultDelimiters()
	for typ := Character; typ <= Paragraph; typ++ {
		st, _ := StepperFor(typ, d)
		for _, s := range texts {
			j := len(s)
			i := st.First(s, 0, j)
			if i < 0 || i > j {
				t.Fatalf("%s in %q: First out of window: %d", typ, s, i)
			}
			for i < j {
				o := st.End(s, i, j)
				u := st.Next(s, o, j)
				if o < i || u < o || u > j {
					t.Fatalf("%s in %q: expected %d <= %d <= %d <= %d", typ, s, i, o, u, j)
				}
				if u == i {
					t.Fatalf("%s in %q: stepper does not advance at %d", typ, s, i)
				}
				i = u
			}
		}
	}
}

func TestCharacterStepping(t *testing.T) {
	st, _ := StepperFor(Character, DefaultDelimiters())
	s := "aé😀\xffz"
	if n := st.Count(s, 0, len(s)); n != 5 {
		t.Errorf("expected 5 characters, is %d", n)
	}
	if o := st.End(s, 3, len(s)); o != 7 {
		t.Errorf("expected emoji to end at 7, is %d", o)
	}
}

func TestDelimiterWindow(t *testing.T) {
	st, _ := StepperFor(Line, Delimiters{LineEnding: "\r\n"})
	s := "ab\r\ncd"
	// the delimiter is cut by the window end
	if o := st.End(s, 0, 3); o != 3 {
		t.Errorf("expected end of window at 3, is %d", o)
	}
	if o := st.End(s, 0, len(s)); o != 2 {
		t.Errorf("expected line end at 2, is %d", o)
	}
	if u := st.Next(s, 2, len(s)); u != 4 {
		t.Errorf("expected next line at 4, is %d", u)
	}
	if u := st.Next(s, 2, 3); u != 2 {
		t.Errorf("expected no skip of partial delimiter, is %d", u)
	}
}

func TestWhiteSpaceClasses(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\n', 0x01, 0x7f, 0xa0, '\uFEFF', '\u2003', '\u3000'} {
		if !isWhiteSpace(r) {
			t.Errorf("expected %U to be white space", r)
		}
	}
	for _, r := range []rune{'a', '.', 0xa1, '\uFFFD'} {
		if isWhiteSpace(r) {
			t.Errorf("expected %U not to be white space", r)
		}
	}
	for _, r := range []rune{'\n', '\r', '\u2028', '\u2029'} {
		if !isLineBreak(r) {
			t.Errorf("expected %U to be a line break", r)
		}
	}
}

func TestSentenceStepping(t *testing.T) {
	st, _ := StepperFor(Sentence, DefaultDelimiters())
	s := "  Wait... what?! No way"
	want := []string{"Wait...", "what?!", "No way"}
	chunks := split(s, 0, len(s), st)
	if len(chunks) != len(want) {
		t.Fatalf("expected %d sentences, is %d", len(want), len(chunks))
	}
	for i, c := range chunks {
		if c.Content != want[i] {
			t.Errorf("expected sentence %d to be %q, is %q", i+1, want[i], c.Content)
		}
	}
}
