package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/regstorm/register"
)

// RegistersModule implements the reg Lua API module over a register store.
type RegistersModule struct {
	store *register.Store
	ctx   register.Context
}

// NewRegistersModule creates a registers module. The context supplies the
// live editor state for the computed registers and may be nil.
func NewRegistersModule(store *register.Store, ctx register.Context) *RegistersModule {
	return &RegistersModule{store: store, ctx: ctx}
}

// Name returns the module name.
func (m *RegistersModule) Name() string {
	return "reg"
}

// Register registers the module functions into the Lua state.
func (m *RegistersModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "read", L.NewFunction(m.read))
	L.SetField(mod, "write", L.NewFunction(m.write))
	L.SetField(mod, "push", L.NewFunction(m.push))
	L.SetField(mod, "first", L.NewFunction(m.first))
	L.SetField(mod, "last", L.NewFunction(m.last))
	L.SetField(mod, "preview", L.NewFunction(m.preview))
	L.SetField(mod, "clear", L.NewFunction(m.clear))
	L.SetField(mod, "remove", L.NewFunction(m.remove))

	L.SetGlobal("_rs_reg", mod)
	return nil
}

// checkName extracts a single-character register name from argument n.
func (m *RegistersModule) checkName(L *lua.LState, n int) rune {
	s := L.CheckString(n)
	runes := []rune(s)
	if len(runes) != 1 {
		L.ArgError(n, "register name must be a single character")
		return 0
	}
	return runes[0]
}

// read(name) -> table|nil
// Returns the register's fragments oldest-first, or nil if undefined.
func (m *RegistersModule) read(L *lua.LState) int {
	name := m.checkName(L, 1)

	values, ok := m.store.Read(name, m.ctx)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}

	tbl := L.NewTable()
	for _, value := range values {
		tbl.Append(lua.LString(value))
	}
	L.Push(tbl)
	return 1
}

// write(name, values)
// Replaces the register's contents with the given array of strings.
func (m *RegistersModule) write(L *lua.LState) int {
	name := m.checkName(L, 1)
	tbl := L.CheckTable(2)

	values := make([]string, 0, tbl.Len())
	tbl.ForEach(func(_, v lua.LValue) {
		values = append(values, lua.LVAsString(v))
	})

	if err := m.store.Write(name, values); err != nil {
		L.RaiseError("write: %v", err)
		return 0
	}
	return 0
}

// push(name, value)
// Appends one fragment to the register's logical end.
func (m *RegistersModule) push(L *lua.LState) int {
	name := m.checkName(L, 1)
	value := L.CheckString(2)

	if err := m.store.Push(name, value); err != nil {
		L.RaiseError("push: %v", err)
		return 0
	}
	return 0
}

// first(name) -> string|nil
// Returns the logically-first fragment.
func (m *RegistersModule) first(L *lua.LState) int {
	name := m.checkName(L, 1)

	value, ok := m.store.First(name, m.ctx)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(value))
	return 1
}

// last(name) -> string|nil
// Returns the logically-last fragment.
func (m *RegistersModule) last(L *lua.LState) int {
	name := m.checkName(L, 1)

	value, ok := m.store.Last(name, m.ctx)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(value))
	return 1
}

// preview() -> table
// Returns an array of {name=..., summary=...} entries sorted by name.
func (m *RegistersModule) preview(L *lua.LState) int {
	entries := m.store.Preview()

	tbl := L.NewTable()
	for _, entry := range entries {
		row := L.NewTable()
		L.SetField(row, "name", lua.LString(string(entry.Name)))
		L.SetField(row, "summary", lua.LString(entry.Summary))
		tbl.Append(row)
	}
	L.Push(tbl)
	return 1
}

// clear()
// Removes all stored register entries.
func (m *RegistersModule) clear(L *lua.LState) int {
	m.store.Clear()
	return 0
}

// remove(name) -> bool
// Removes a plain register's entry, reporting whether one existed.
func (m *RegistersModule) remove(L *lua.LState) int {
	name := m.checkName(L, 1)
	L.Push(lua.LBool(m.store.Remove(name)))
	return 1
}
