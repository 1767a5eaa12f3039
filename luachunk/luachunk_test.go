package luachunk

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	lua "github.com/yuin/gopher-lua"
)

func setupLuaTest(t *testing.T) *lua.LState {
	t.Helper()
	L := lua.NewState()
	t.Cleanup(L.Close)
	Preload(L)
	if err := L.DoString(`chunk = require("chunk")`); err != nil {
		t.Fatalf("cannot load module: %v", err)
	}
	return L
}

// eval runs a Lua expression and returns its results as strings.
func eval(t *testing.T, L *lua.LState, src string) []string {
	t.Helper()
	top := L.GetTop()
	if err := L.DoString("return " + src); err != nil {
		t.Fatalf("%s: %v", src, err)
	}
	n := L.GetTop() - top
	results := make([]string, n)
	for i := 0; i < n; i++ {
		results[i] = L.Get(top + 1 + i).String()
	}
	L.Pop(n)
	return results
}

func TestLuaGet(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	L := setupLuaTest(t)
	tests := []struct {
		src  string
		want string
	}{
		{`chunk.get("a,b,c", chunk.ITEM, 2)`, "b"},
		{`chunk.get("hello", chunk.CHARACTER, 2, 4)`, "ell"},
		{`chunk.get("hello", chunk.CHARACTER, chunk.LAST)`, "o"},
		{`chunk.get("hello", chunk.CHARACTER, -2)`, "l"},
		{`chunk.get("one two three", chunk.WORD, chunk.MIDDLE)`, "two"},
		{`chunk.get("a b,c d", chunk.ITEM, 2, chunk.WORD, 1)`, "c"},
		{`chunk.get("a;b", chunk.ITEM_DELIMITER, ";", chunk.ITEM, 2)`, "b"},
		{`chunk.get("say hello", chunk.WORD, chunk.BY_CONTENT, "hello", chunk.CHARACTER, 1)`, "h"},
		{`chunk.get("say Hello", chunk.WORD, chunk.BY_CONTENT, chunk.pattern("^h", true))`, "Hello"},
		{`chunk.get("say hello", "char 2 of word 2")`, "e"},
		{`chunk.get("red\ngreen", "the last line")`, "green"},
	}
	for _, tt := range tests {
		if got := eval(t, L, tt.src); len(got) != 1 || got[0] != tt.want {
			t.Errorf("expected %s to be %q, is %v", tt.src, tt.want, got)
		}
	}
}

func TestLuaEdit(t *testing.T) {
	L := setupLuaTest(t)
	tests := []struct {
		src  string
		want string
	}{
		{`chunk.replace("hello,world", chunk.ITEM, 4, "x")`, "hello,world,,x"},
		{`chunk.replace("a,b,c", "item 2", "x")`, "a,x,c"},
		{`chunk.prepend("a,b", chunk.ITEM, 2, "x")`, "a,xb"},
		{`chunk.append("a,b", chunk.ITEM, 1, "x")`, "ax,b"},
		{`chunk.append("a,b", "item 3", "c")`, "a,b,c"},
		{`chunk.delete("a,b,c", chunk.ITEM, 2)`, "a,c"},
		{`chunk.delete("one two", "word 1")`, "two"},
	}
	for _, tt := range tests {
		if got := eval(t, L, tt.src); len(got) != 1 || got[0] != tt.want {
			t.Errorf("expected %s to be %q, is %v", tt.src, tt.want, got)
		}
	}
}

func TestLuaCountAndSplit(t *testing.T) {
	L := setupLuaTest(t)
	if got := eval(t, L, `chunk.count("a,b,c", chunk.ITEM)`); got[0] != "3" {
		t.Errorf("expected 3 items, have %v", got)
	}
	if got := eval(t, L, `chunk.count("a b,c d e", chunk.ITEM, 2, chunk.WORD)`); got[0] != "3" {
		t.Errorf("expected 3 words in item 2, have %v", got)
	}
	if got := eval(t, L, `chunk.count("a b,c d e", "the number of words in item 2")`); got[0] != "3" {
		t.Errorf("expected 3 words in item 2, have %v", got)
	}
	err := L.DoString(`
		local parts = chunk.split("ab,cd", chunk.ITEM)
		assert(#parts == 2)
		assert(parts[2].content == "cd")
		assert(parts[2].index == 2)
		assert(parts[2].start == 3 and parts[2].stop == 5)
		assert(parts[1].stop == 2 and parts[1].delete_stop == 3)
		assert(parts[2].delete_stop == 5)
	`)
	if err != nil {
		t.Error(err.Error())
	}
}

func TestLuaFind(t *testing.T) {
	L := setupLuaTest(t)
	if got := eval(t, L, `chunk.find("a,bc,d", chunk.ITEM, 2)`); len(got) != 2 || got[0] != "2" || got[1] != "4" {
		t.Errorf("expected item 2 at [2,4), is %v", got)
	}
	if got := eval(t, L, `chunk.find_to_delete("a,bc,d", chunk.ITEM, 2)`); len(got) != 2 || got[0] != "2" || got[1] != "5" {
		t.Errorf("expected deletion of item 2 at [2,5), is %v", got)
	}
	if got := eval(t, L, `chunk.find("a b", chunk.WORD, chunk.BY_CONTENT, "c")`); len(got) != 1 || got[0] != "nil" {
		t.Errorf("expected no span for missing word, is %v", got)
	}
}

func TestLuaErrors(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	L := setupLuaTest(t)
	tests := []struct {
		src  string
		want string
	}{
		{`chunk.get("abc", 2)`, "expected chunk type"},
		{`chunk.get("abc", chunk.CHARACTER, 1.5)`, "integer"},
		{`chunk.get("abc", chunk.CHARACTER, 1e300)`, "out of range"},
		{`chunk.get("abc", chunk.CHARACTER, -2^63)`, "out of range"},
		{`chunk.get("abc", "chapter 2")`, "chunk expression"},
		{`chunk.replace("abc", chunk.CHARACTER, 1, chunk.LAST)`, "string expected"},
		{`chunk.pattern("(")`, "pattern"},
		{`chunk.count("abc", chunk.CHARACTER, 1)`, "expected chunk type"},
	}
	for _, tt := range tests {
		err := L.DoString(tt.src)
		if err == nil {
			t.Errorf("expected %s to raise an error", tt.src)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("expected error of %s to mention %q, is %v", tt.src, tt.want, err)
		}
	}
}
