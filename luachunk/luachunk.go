package luachunk

import (
	"fmt"
	"math"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/npillmayer/chunkex"
	"github.com/npillmayer/chunkex/expr"
)

// ModuleName is the name scripts require the module by.
const ModuleName = "chunk"

// Preload registers the chunk module with L, to be loaded by require.
func Preload(L *lua.LState) {
	L.PreloadModule(ModuleName, Loader)
}

// Loader is the lua.LGFunction creating the module table.
func Loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"pattern":        pattern,
		"count":          count,
		"split":          split,
		"find":           find,
		"find_to_delete": findToDelete,
		"get":            get,
		"delete":         del,
		"replace":        replace,
		"prepend":        prepend,
		"append":         appendTo,
	})
	for t := chunkex.Character; t <= chunkex.Paragraph; t++ {
		setConstant(L, mod, strings.ToUpper(t.String()), t)
	}
	setConstant(L, mod, "ANY", chunkex.Any)
	setConstant(L, mod, "FIRST", chunkex.First)
	setConstant(L, mod, "MIDDLE", chunkex.Middle)
	setConstant(L, mod, "LAST", chunkex.Last)
	setConstant(L, mod, "BY_CONTENT", chunkex.ByContent)
	setConstant(L, mod, "LINE_ENDING", chunkex.LineEnding)
	setConstant(L, mod, "ITEM_DELIMITER", chunkex.ItemDelimiter)
	setConstant(L, mod, "COLUMN_DELIMITER", chunkex.ColumnDelimiter)
	setConstant(L, mod, "ROW_DELIMITER", chunkex.RowDelimiter)
	L.Push(mod)
	return 1
}

func setConstant(L *lua.LState, mod *lua.LTable, name string, v any) {
	ud := L.NewUserData()
	ud.Value = v
	L.SetField(mod, name, ud)
}

// --- Argument conversion ---------------------------------------------------

// args converts the Lua arguments from position 'from' on to the positional
// calling convention of package chunkex.
func args(L *lua.LState, from int) []any {
	top := L.GetTop()
	if top < from {
		return nil
	}
	list := make([]any, 0, top-from+1)
	for i := from; i <= top; i++ {
		switch v := L.Get(i).(type) {
		case lua.LNumber:
			f := float64(v)
			if f != math.Trunc(f) || math.IsInf(f, 0) {
				L.ArgError(i, fmt.Sprintf("ordinal must be an integer, is %v", f))
				return nil
			}
			if math.Abs(f) >= math.MaxInt { // float64(math.MaxInt) rounds up on 64-bit platforms
				L.ArgError(i, fmt.Sprintf("ordinal out of range: %v", f))
				return nil
			}
			list = append(list, int(f))
		case lua.LString:
			list = append(list, string(v))
		case *lua.LUserData:
			list = append(list, v.Value)
		default:
			L.ArgError(i, fmt.Sprintf("unexpected %s", v.Type()))
			return nil
		}
	}
	return list
}

// expression returns the chunk expression if the address is given as a
// single string argument at position 2, followed by n more arguments.
func expression(L *lua.LState, n int) (string, bool) {
	if L.GetTop() != 2+n {
		return "", false
	}
	s, ok := L.Get(2).(lua.LString)
	return string(s), ok
}

func raise(L *lua.LState, op string, err error) int {
	tracer().Debugf("lua %s.%s: %v", ModuleName, op, err)
	L.RaiseError("%s: %v", op, err)
	return 0
}

// address parses the address arguments of a read or delete operation.
func address(L *lua.LState, op string) (chunkex.Address, bool) {
	if src, ok := expression(L, 0); ok {
		addr, err := expr.Parse(src)
		if err != nil {
			raise(L, op, err)
			return chunkex.Address{}, false
		}
		return addr, true
	}
	addr, err := chunkex.ParseArgs(args(L, 2)...)
	if err != nil {
		raise(L, op, err)
		return chunkex.Address{}, false
	}
	return addr, true
}

func countAddress(L *lua.LState, op string) (chunkex.Address, chunkex.ChunkType, bool) {
	var addr chunkex.Address
	var t chunkex.ChunkType
	var err error
	if src, ok := expression(L, 0); ok {
		addr, t, err = expr.ParseCount(src)
	} else {
		addr, t, err = chunkex.ParseCountArgs(args(L, 2)...)
	}
	if err != nil {
		raise(L, op, err)
		return chunkex.Address{}, 0, false
	}
	return addr, t, true
}

// editAddress parses the address of an edit operation, which is followed by
// the string to insert.
func editAddress(L *lua.LState, op string) (chunkex.Address, string, bool) {
	top := L.GetTop()
	r := L.CheckString(top)
	if top < 3 {
		L.ArgError(top, "expected chunk address before text")
		return chunkex.Address{}, "", false
	}
	var addr chunkex.Address
	var err error
	if src, ok := expression(L, 1); ok {
		addr, err = expr.Parse(src)
	} else {
		a := args(L, 2)
		addr, err = chunkex.ParseArgs(a[:len(a)-1]...)
	}
	if err != nil {
		raise(L, op, err)
		return chunkex.Address{}, "", false
	}
	return addr, r, true
}

// --- Module functions ----------------------------------------------------

// pattern(expr [, ignoreCase]) -> predicate
func pattern(L *lua.LState) int {
	p, err := chunkex.CompilePattern(L.CheckString(1), L.OptBool(2, false))
	if err != nil {
		return raise(L, "pattern", err)
	}
	ud := L.NewUserData()
	ud.Value = p
	L.Push(ud)
	return 1
}

// count(text, address..., type) -> int
func count(L *lua.LState) int {
	text := L.CheckString(1)
	addr, t, ok := countAddress(L, "count")
	if !ok {
		return 0
	}
	n, err := addr.Count(text, t)
	if err != nil {
		return raise(L, "count", err)
	}
	L.Push(lua.LNumber(n))
	return 1
}

// split(text, address..., type) -> { {content=, index=, start=, stop=, delete_stop=}, ... }
func split(L *lua.LState) int {
	text := L.CheckString(1)
	addr, t, ok := countAddress(L, "split")
	if !ok {
		return 0
	}
	chunks, err := addr.Split(text, t)
	if err != nil {
		return raise(L, "split", err)
	}
	list := L.CreateTable(len(chunks), 0)
	for _, c := range chunks {
		tbl := L.CreateTable(0, 5)
		L.SetField(tbl, "content", lua.LString(c.Content))
		L.SetField(tbl, "index", lua.LNumber(c.Index))
		L.SetField(tbl, "start", lua.LNumber(c.Start))
		L.SetField(tbl, "stop", lua.LNumber(c.End))
		L.SetField(tbl, "delete_stop", lua.LNumber(c.DeleteEnd))
		list.Append(tbl)
	}
	L.Push(list)
	return 1
}

// find(text, address...) -> start, stop | nil
func find(L *lua.LState) int {
	return findSpan(L, "find", chunkex.Address.Find)
}

// find_to_delete(text, address...) -> start, stop | nil
func findToDelete(L *lua.LState) int {
	return findSpan(L, "find_to_delete", chunkex.Address.FindToDelete)
}

func findSpan(L *lua.LState, op string, f func(chunkex.Address, string) (chunkex.Span, bool)) int {
	text := L.CheckString(1)
	addr, ok := address(L, op)
	if !ok {
		return 0
	}
	w, found := f(addr, text)
	if !found {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(w.Start))
	L.Push(lua.LNumber(w.End))
	return 2
}

// get(text, address...) -> string
func get(L *lua.LState) int {
	text := L.CheckString(1)
	addr, ok := address(L, "get")
	if !ok {
		return 0
	}
	L.Push(lua.LString(addr.Get(text)))
	return 1
}

// delete(text, address...) -> string
func del(L *lua.LState) int {
	text := L.CheckString(1)
	addr, ok := address(L, "delete")
	if !ok {
		return 0
	}
	L.Push(lua.LString(addr.Delete(text)))
	return 1
}

// replace(text, address..., r) -> string
func replace(L *lua.LState) int {
	return edit(L, "replace", chunkex.Address.Replace)
}

// prepend(text, address..., r) -> string
func prepend(L *lua.LState) int {
	return edit(L, "prepend", chunkex.Address.Prepend)
}

// append(text, address..., r) -> string
func appendTo(L *lua.LState) int {
	return edit(L, "append", chunkex.Address.Append)
}

func edit(L *lua.LState, op string, f func(chunkex.Address, string, string) (string, error)) int {
	text := L.CheckString(1)
	addr, r, ok := editAddress(L, op)
	if !ok {
		return 0
	}
	s, err := f(addr, text, r)
	if err != nil {
		return raise(L, op, err)
	}
	L.Push(lua.LString(s))
	return 1
}
