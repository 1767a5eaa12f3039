package chunkex

import (
	"strings"
)

// Location describes a resolved chunk by half-open byte offsets.
// [Start,End) is the text of the chunk, [Start,DeleteEnd) is the text to remove
// when deleting the chunk, which includes a trailing delimiter or white space.
//
// 0 ≤ Start ≤ End ≤ DeleteEnd ≤ len(text)
type Location struct {
	Start     int
	End       int
	DeleteEnd int
}

// Span is a half-open range [Start,End) of byte offsets.
type Span struct {
	Start int
	End   int
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Resolution is the result of resolving a single expression within a window of
// a text.
type Resolution struct {
	Text      string   // the text, possibly extended by delimiters
	Location  Location // location of the chunk(s) within Text
	First     int      // resolved ordinal of the first chunk
	Last      int      // resolved ordinal of the last chunk
	Appended  string   // delimiters inserted at the end of the window
	Prepended string   // delimiters inserted at the start of the window
}

// Resolve resolves expression e within window [i,j) of text.
//
// If forPrepend or forAppend is set and e addresses a delimited chunk type,
// ordinals outside of the window are made valid by extending the text with
// delimiters: for prepending, the first ordinal has to exist, for appending
// the last one. The returned Resolution holds the extended text.
//
// Content expressions without a match result in a *NoSuchChunkError.
// Window boundaries are clipped to the text.
func Resolve(text string, i, j int, e Expr, forPrepend, forAppend bool) (Resolution, error) {
	if err := e.validate(); err != nil {
		return Resolution{}, err
	}
	j = max(0, min(j, len(text)))
	i = max(0, min(i, j))
	return resolve(text, i, j, e, forPrepend, forAppend)
}

func resolve(text string, i, j int, e Expr, forPrepend, forAppend bool) (Resolution, error) {
	st, err := StepperFor(e.Type, e.Delims)
	if err != nil {
		return Resolution{}, err
	}
	if e.byContent {
		loc, index, ok := findByContent(text, i, j, st, e.Content)
		if !ok {
			T().Debugf("chunk address: no %s %s", e.Type, e.Content)
			return Resolution{}, &NoSuchChunkError{Type: e.Type, Content: e.Content}
		}
		return Resolution{Text: text, Location: loc, First: index, Last: index}, nil
	}
	n := st.Count(text, i, j)
	ws, we := resolveOrdinals(e.Start, e.End, n)
	r := Resolution{Text: text}
	if st.Delimited() {
		var ext extension
		ext, ws, we = extend(text, i, j, st.Delimiter(), n, ws, we, forPrepend, forAppend)
		if ext.appended != "" || ext.prepended != "" {
			T().Debugf("chunk address: %s extended by %d+%d delimiters", e.Type,
				strings.Count(ext.prepended, st.Delimiter()), strings.Count(ext.appended, st.Delimiter()))
		}
		r.Text, j = ext.text, ext.j
		r.Appended, r.Prepended = ext.appended, ext.prepended
	}
	r.Location = locate(r.Text, i, j, st, ws, we)
	r.First, r.Last = ws, we
	return r, nil
}

// --- Ordinals --------------------------------------------------------------

// resolveOrdinals maps start and end to 1-based chunk numbers, given n chunks.
// If both are Any, they resolve to the same random chunk.
func resolveOrdinals(start, end Ordinal, n int) (int, int) {
	ws := resolveOrdinal(start, n)
	if start.Spec == Any && end.Spec == Any {
		return ws, ws
	}
	return ws, resolveOrdinal(end, n)
}

func resolveOrdinal(o Ordinal, n int) int {
	switch o.Spec {
	case Any:
		return randomOrdinal(n)
	case First:
		return 1
	case Middle:
		return 1 + n/2
	case Last:
		return n
	}
	if o.N < 0 {
		return o.N + n + 1
	}
	return o.N
}

// --- Extension -------------------------------------------------------------

type extension struct {
	text      string
	j         int
	appended  string
	prepended string
}

// extend grows window [i,j) of text by delimiters, such that ordinals ws and we
// (as far as requested) address existing chunks. It returns the shifted
// ordinals.
func extend(text string, i, j int, delim string, n, ws, we int, forPrepend, forAppend bool) (extension, int, int) {
	ext := extension{text: text, j: j}
	if (forPrepend && ws > n) || (forAppend && we > n) {
		var m int
		switch {
		case forPrepend && forAppend:
			m = max(ws, we)
		case forPrepend:
			m = ws
		default:
			m = we
		}
		m -= n
		if n == 0 { // an empty window holds a single, empty chunk
			m--
			n++
		}
		if m > 0 {
			ext.appended = strings.Repeat(delim, m)
			ext.text = ext.text[:ext.j] + ext.appended + ext.text[ext.j:]
			ext.j += len(ext.appended)
			n += m
		}
	}
	if (forPrepend && ws < 1) || (forAppend && we < 1) {
		var m int
		switch {
		case forPrepend && forAppend:
			m = min(ws, we)
		case forPrepend:
			m = ws
		default:
			m = we
		}
		m = 1 - m
		ext.prepended = strings.Repeat(delim, m)
		ext.text = ext.text[:i] + ext.prepended + ext.text[i:]
		ext.j += len(ext.prepended)
		ws += m
		we += m
	}
	return ext, ws, we
}

// --- Location finder -------------------------------------------------------

// locate finds chunks ws to we within window [i,j) of s in a single pass.
// Ordinals < 1 address the window start, ordinals beyond the chunk count the
// window end.
func locate(s string, i, j int, st Stepper, ws, we int) Location {
	const unset = -1
	si, ei, di := unset, unset, unset
	if ws < 1 {
		si = i
	}
	if we < 1 {
		ei = i
	}
	if we < 0 {
		di = i
	}
	if si == unset || ei == unset || di == unset {
		n := 0
		i = st.First(s, i, j)
		for i < j {
			if n == we {
				di = i
				if si != unset && ei != unset {
					break
				}
			}
			n++
			if n == ws {
				si = i
				if ei != unset && di != unset {
					break
				}
			}
			i = st.End(s, i, j)
			if n == we {
				ei = i
				if si != unset && di != unset {
					break
				}
			}
			i = st.Next(s, i, j)
		}
		if si == unset {
			si = j
		}
		if ei == unset {
			ei = j
		}
		if di == unset {
			di = j
		}
		ei = max(ei, si)
		di = max(di, ei)
	}
	return Location{Start: si, End: ei, DeleteEnd: di}
}

// findByContent returns the location and 1-based index of the first chunk
// within [i,j) whose text satisfies p.
func findByContent(s string, i, j int, st Stepper, p Predicate) (Location, int, bool) {
	n := 0
	i = st.First(s, i, j)
	for i < j {
		n++
		o := st.End(s, i, j)
		u := st.Next(s, o, j)
		if p.Match(s[i:o]) {
			return Location{Start: i, End: o, DeleteEnd: u}, n, true
		}
		i = u
	}
	return Location{}, 0, false
}

// --- Splitting -------------------------------------------------------------

// Chunk is a single chunk as reported by Split.
type Chunk struct {
	Content   string
	Index     int // 1-based
	Start     int
	End       int
	DeleteEnd int
}

// Location returns the offsets of c.
func (c Chunk) Location() Location {
	return Location{Start: c.Start, End: c.End, DeleteEnd: c.DeleteEnd}
}

func split(s string, i, j int, st Stepper) []Chunk {
	chunks := make([]Chunk, 0, 8)
	n := 0
	i = st.First(s, i, j)
	for i < j {
		n++
		o := st.End(s, i, j)
		u := st.Next(s, o, j)
		chunks = append(chunks, Chunk{
			Content:   s[i:o],
			Index:     n,
			Start:     i,
			End:       o,
			DeleteEnd: u,
		})
		i = u
	}
	return chunks
}
