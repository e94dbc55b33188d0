// Package lua exposes the interpreter to gopher-lua.
//
// Values cross into Lua as plain tables:
//
//   integer      -> number
//   boolean      -> boolean
//   symbol       -> {symbol="name"}
//   list         -> {list={...}}              () is {list={}}
//   dotted list  -> {list={...}, tail=value}
//   built-in     -> {builtin="#<procedure>"}
//   environment  -> {environment={"name", ...}}
//
// Integers beyond 2^53 lose precision as Lua numbers.
package lua

import (
	"errors"
	"strings"

	"github.com/alttpo/scheme"
	"github.com/yuin/gopher-lua"
)

func ToLua(L *lua.LState, v *scheme.Value) lua.LValue {
	switch {
	case v.Is(scheme.KindInteger):
		return lua.LNumber(v.Integer)
	case v.Is(scheme.KindBoolean):
		return lua.LBool(v.Boolean)
	}

	t := L.NewTable()
	if v == nil {
		t.RawSetString("list", L.NewTable())
		return t
	}

	switch v.Kind {
	case scheme.KindSymbol:
		t.RawSetString("symbol", lua.LString(v.Name))
	case scheme.KindPair:
		list := L.NewTable()
		cur := v
		for cur.Is(scheme.KindPair) {
			list.Append(ToLua(L, cur.Car))
			cur = cur.Cdr
		}
		t.RawSetString("list", list)
		if cur != nil {
			t.RawSetString("tail", ToLua(L, cur))
		}
	case scheme.KindProcedure, scheme.KindSpecialForm:
		t.RawSetString("builtin", lua.LString(v.String()))
	case scheme.KindEnvironment:
		names := L.NewTable()
		for _, name := range v.Environment.Names() {
			names.Append(lua.LString(name))
		}
		t.RawSetString("environment", names)
	default:
		return lua.LNil
	}
	return t
}

// Preload makes the interpreter available to scripts as require("scheme").
func Preload(L *lua.LState, interp *scheme.Interpreter) {
	L.PreloadModule("scheme", Loader(interp))
}

func Loader(interp *scheme.Interpreter) lua.LGFunction {
	return func(L *lua.LState) int {
		mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
			"run":  run(interp),
			"eval": eval(interp),
		})
		L.Push(mod)
		return 1
	}
}

// run(src) returns the printed result, or nil and an error table.
func run(interp *scheme.Interpreter) lua.LGFunction {
	return func(L *lua.LState) int {
		out, err := interp.Run(L.CheckString(1))
		if err != nil {
			L.Push(lua.LNil)
			L.Push(errorTable(L, err))
			return 2
		}
		L.Push(lua.LString(out))
		return 1
	}
}

// eval(src) returns the result converted by ToLua, or nil and an error table.
func eval(interp *scheme.Interpreter) lua.LGFunction {
	return func(L *lua.LState) int {
		v, err := interp.Eval(strings.NewReader(L.CheckString(1)))
		if err != nil {
			L.Push(lua.LNil)
			L.Push(errorTable(L, err))
			return 2
		}
		L.Push(ToLua(L, v))
		return 1
	}
}

func errorTable(L *lua.LState, err error) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("err", lua.LString(err.Error()))

	var se *scheme.SyntaxError
	var re *scheme.RuntimeError
	switch {
	case errors.As(err, &se):
		t.RawSetString("kind", lua.LString("syntax"))
	case errors.As(err, &re):
		t.RawSetString("kind", lua.LString("runtime"))
	}
	return t
}
