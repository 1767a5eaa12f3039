package chunkex

import "fmt"

// --- Read-only operations --------------------------------------------------

// Count returns the number of chunks of type t within the chunk addressed by a.
// If a does not resolve, Count returns 0.
func (a Address) Count(text string, t ChunkType) (int, error) {
	st, err := StepperFor(t, a.Delimiters())
	if err != nil {
		return 0, err
	}
	w, ok := a.narrow(text, false)
	if !ok {
		return 0, nil
	}
	return st.Count(text, w.Start, w.End), nil
}

// Split enumerates the chunks of type t within the chunk addressed by a.
// Offsets of the chunks refer to text. If a does not resolve, Split returns an
// empty slice.
func (a Address) Split(text string, t ChunkType) ([]Chunk, error) {
	st, err := StepperFor(t, a.Delimiters())
	if err != nil {
		return nil, err
	}
	w, ok := a.narrow(text, false)
	if !ok {
		return []Chunk{}, nil
	}
	return split(text, w.Start, w.End, st), nil
}

// Find returns the span of the chunk addressed by a.
func (a Address) Find(text string) (Span, bool) {
	return a.narrow(text, false)
}

// FindToDelete returns the span to remove when deleting the chunk addressed
// by a. It includes the delimiter or white space following the chunk.
func (a Address) FindToDelete(text string) (Span, bool) {
	return a.narrow(text, true)
}

// Get returns the text of the chunk addressed by a, or "" if a does not resolve.
func (a Address) Get(text string) string {
	w, ok := a.narrow(text, false)
	if !ok {
		return ""
	}
	return text[w.Start:w.End]
}

// Delete removes the chunk addressed by a, together with its trailing
// delimiter. If a does not resolve, text is returned unchanged.
func (a Address) Delete(text string) string {
	w, ok := a.narrow(text, true)
	if !ok {
		return text
	}
	return text[:w.Start] + text[w.End:]
}

// narrow resolves the expressions of a one after the other, each within the
// span found for its predecessor. Extension is disabled. With deleting set, the
// last expression contributes its delete end.
func (a Address) narrow(text string, deleting bool) (Span, bool) {
	w := Span{Start: 0, End: len(text)}
	for k, e := range a.exprs {
		r, err := resolve(text, w.Start, w.End, e, false, false)
		if err != nil {
			return Span{}, false
		}
		end := r.Location.End
		if deleting && k == len(a.exprs)-1 {
			end = r.Location.DeleteEnd
		}
		w.End = min(w.End, end)
		w.Start = max(w.Start, r.Location.Start)
	}
	return w, true
}

// --- Edit operations -------------------------------------------------------

// Replace replaces the chunk addressed by a with r. Addresses of delimited
// chunks beyond either end of the text extend it by delimiters.
func (a Address) Replace(text, r string) (string, error) {
	s, w, err := a.edit(text, true, true)
	if err != nil {
		return text, err
	}
	return s[:w.Start] + r + s[w.End:], nil
}

// Prepend inserts r in front of the chunk addressed by a.
func (a Address) Prepend(text, r string) (string, error) {
	s, w, err := a.edit(text, true, false)
	if err != nil {
		return text, err
	}
	return s[:w.Start] + r + s[w.Start:], nil
}

// Append inserts r after the chunk addressed by a.
func (a Address) Append(text, r string) (string, error) {
	s, w, err := a.edit(text, false, true)
	if err != nil {
		return text, err
	}
	return s[:w.End] + r + s[w.End:], nil
}

// edit resolves every expression of a against the text as extended by its
// predecessors. It fails with a *NoSuchChunkError if a content expression has
// no match.
func (a Address) edit(text string, forPrepend, forAppend bool) (string, Span, error) {
	w := Span{Start: 0, End: len(text)}
	for _, e := range a.exprs {
		r, err := resolve(text, w.Start, w.End, e, forPrepend, forAppend)
		if err != nil {
			return text, Span{}, err
		}
		text = r.Text
		w = Span{Start: r.Location.Start, End: r.Location.End}
	}
	return text, w, nil
}

// --- Positional calling convention -----------------------------------------

// CountChunks counts chunks of a type within an addressed chunk. args is an
// address as accepted by ParseArgs, followed by the chunk type to count:
//
//	n, err := CountChunks(s, Item, 2, Word, 3, Character)
func CountChunks(text string, args ...any) (int, error) {
	addr, t, err := ParseCountArgs(args...)
	if err != nil {
		return 0, err
	}
	return addr.Count(text, t)
}

// SplitChunks enumerates chunks of a type within an addressed chunk, with args
// as for CountChunks.
func SplitChunks(text string, args ...any) ([]Chunk, error) {
	addr, t, err := ParseCountArgs(args...)
	if err != nil {
		return nil, err
	}
	return addr.Split(text, t)
}

// FindChunk returns the span of the chunk addressed by args. The boolean result
// is false if the address does not resolve.
func FindChunk(text string, args ...any) (Span, bool, error) {
	addr, err := ParseArgs(args...)
	if err != nil {
		return Span{}, false, err
	}
	w, ok := addr.Find(text)
	return w, ok, nil
}

// FindChunkToDelete is FindChunk for the span Delete would remove.
func FindChunkToDelete(text string, args ...any) (Span, bool, error) {
	addr, err := ParseArgs(args...)
	if err != nil {
		return Span{}, false, err
	}
	w, ok := addr.FindToDelete(text)
	return w, ok, nil
}

// GetChunk returns the text of the chunk addressed by args.
//
//	GetChunk("hello", Character, 2, 4)   // "ell"
func GetChunk(text string, args ...any) (string, error) {
	addr, err := ParseArgs(args...)
	if err != nil {
		return "", err
	}
	return addr.Get(text), nil
}

// DeleteChunk removes the chunk addressed by args.
func DeleteChunk(text string, args ...any) (string, error) {
	addr, err := ParseArgs(args...)
	if err != nil {
		return text, err
	}
	return addr.Delete(text), nil
}

// ReplaceChunk replaces the chunk addressed by args. The last argument is the
// replacement string.
//
//	ReplaceChunk("hello,world", Item, 4, "x")   // "hello,world,,x"
func ReplaceChunk(text string, args ...any) (string, error) {
	addr, r, err := parseEditArgs(args)
	if err != nil {
		return text, err
	}
	return addr.Replace(text, r)
}

// PrependToChunk inserts the last argument in front of the chunk addressed by
// the other arguments.
func PrependToChunk(text string, args ...any) (string, error) {
	addr, r, err := parseEditArgs(args)
	if err != nil {
		return text, err
	}
	return addr.Prepend(text, r)
}

// AppendToChunk inserts the last argument after the chunk addressed by the
// other arguments.
func AppendToChunk(text string, args ...any) (string, error) {
	addr, r, err := parseEditArgs(args)
	if err != nil {
		return text, err
	}
	return addr.Append(text, r)
}

func parseEditArgs(args []any) (Address, string, error) {
	if len(args) == 0 {
		return Address{}, "", parseErrorf(0, "expected replacement text but found end of arguments")
	}
	last := len(args) - 1
	r, ok := args[last].(string)
	if !ok {
		return Address{}, "", parseErrorf(last, "expected replacement text but found %s", describeArg(args[last]))
	}
	addr, err := parseArgs(args[:last])
	return addr, r, err
}

func describeArg(arg any) string {
	if arg == nil {
		return "nil"
	}
	return fmt.Sprintf("%v (%T)", arg, arg)
}
