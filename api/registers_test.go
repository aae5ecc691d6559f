package api

import (
	"strings"
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/regstorm/clipboard"
	"github.com/dshills/regstorm/logging"
	"github.com/dshills/regstorm/register"
)

// fakeContext implements register.Context with fixed editor state.
type fakeContext struct {
	fragments []string
	path      string
}

func (c *fakeContext) SelectionCount() int          { return len(c.fragments) }
func (c *fakeContext) SelectionFragments() []string { return c.fragments }
func (c *fakeContext) DocumentPath() string         { return c.path }

// newLuaState creates a Lua state with the registers module installed.
func newLuaState(t *testing.T, ctx register.Context) (*lua.LState, *register.Store) {
	t.Helper()

	store := register.NewStore(clipboard.NewMemoryProvider(), register.WithLogger(logging.NullLogger))

	L := lua.NewState()
	t.Cleanup(L.Close)

	mod := NewRegistersModule(store, ctx)
	if err := mod.Register(L); err != nil {
		t.Fatalf("registering module: %v", err)
	}
	return L, store
}

func TestLuaWriteRead(t *testing.T) {
	L, store := newLuaState(t, nil)

	if err := L.DoString(`_rs_reg.write("a", {"one", "two"})`); err != nil {
		t.Fatalf("write: %v", err)
	}

	values, ok := store.Read('a', nil)
	if !ok || len(values) != 2 || values[0] != "one" || values[1] != "two" {
		t.Fatalf("store contents = %q, %v", values, ok)
	}

	if err := L.DoString(`
		local v = _rs_reg.read("a")
		assert(#v == 2, "expected two values")
		assert(v[1] == "one" and v[2] == "two", "wrong values")
	`); err != nil {
		t.Fatalf("read: %v", err)
	}
}

func TestLuaReadUndefined(t *testing.T) {
	L, _ := newLuaState(t, nil)

	if err := L.DoString(`assert(_rs_reg.read("z") == nil, "undefined register should read nil")`); err != nil {
		t.Fatal(err)
	}
}

func TestLuaPushAndLast(t *testing.T) {
	L, _ := newLuaState(t, nil)

	if err := L.DoString(`
		_rs_reg.push("a", "first")
		_rs_reg.push("a", "second")
		assert(_rs_reg.first("a") == "first")
		assert(_rs_reg.last("a") == "second")
	`); err != nil {
		t.Fatal(err)
	}
}

func TestLuaComputedRegisters(t *testing.T) {
	ctx := &fakeContext{fragments: []string{"alpha", "beta"}, path: "/tmp/doc.txt"}
	L, _ := newLuaState(t, ctx)

	if err := L.DoString(`
		local idx = _rs_reg.read("#")
		assert(#idx == 2 and idx[1] == "1" and idx[2] == "2", "selection indices")

		local sel = _rs_reg.read(".")
		assert(sel[1] == "alpha" and sel[2] == "beta", "selection contents")

		assert(_rs_reg.first("%") == "/tmp/doc.txt", "document path")
	`); err != nil {
		t.Fatal(err)
	}
}

func TestLuaWriteComputedRaises(t *testing.T) {
	L, _ := newLuaState(t, nil)

	err := L.DoString(`_rs_reg.write("#", {"v"})`)
	if err == nil {
		t.Fatal("writing a computed register should raise")
	}
	if !strings.Contains(err.Error(), "does not support writing") {
		t.Errorf("error = %v", err)
	}
}

func TestLuaRemoveAndClear(t *testing.T) {
	L, store := newLuaState(t, nil)

	if err := L.DoString(`
		_rs_reg.write("a", {"v"})
		assert(_rs_reg.remove("a") == true, "remove defined")
		assert(_rs_reg.remove("a") == false, "remove undefined")
		assert(_rs_reg.remove("_") == false, "remove special")

		_rs_reg.write("b", {"v"})
		_rs_reg.clear()
	`); err != nil {
		t.Fatal(err)
	}

	if _, ok := store.Read('b', nil); ok {
		t.Error("register should be undefined after clear")
	}
}

func TestLuaPreview(t *testing.T) {
	L, _ := newLuaState(t, nil)

	if err := L.DoString(`
		_rs_reg.write("a", {"line one\nline two"})

		local found = false
		for _, entry in ipairs(_rs_reg.preview()) do
			if entry.name == "a" then
				assert(entry.summary == "line one", "summary is first line")
				found = true
			end
		end
		assert(found, "register a missing from preview")
	`); err != nil {
		t.Fatal(err)
	}
}

func TestLuaRejectsMultiCharacterName(t *testing.T) {
	L, _ := newLuaState(t, nil)

	if err := L.DoString(`_rs_reg.read("ab")`); err == nil {
		t.Fatal("multi-character register name should raise")
	}
}
