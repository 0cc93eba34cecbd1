package interp

import (
	"testing"

	"github.com/purrlang/purr/internal/ast"
)

func TestVariableDefineAndLookup(t *testing.T) {
	env := NewEnvironment("global", 1)
	env.DefineVariable("x", &IntegerValue{Value: 1})

	sym, ok := env.LookupVariable("x", false)
	if !ok {
		t.Fatal("expected x to be defined")
	}
	if sym.Value.String() != "1" {
		t.Errorf("x = %s, want 1", sym.Value.String())
	}

	// Re-assignment upserts in place.
	env.DefineVariable("x", &IntegerValue{Value: 2})
	sym, _ = env.LookupVariable("x", false)
	if sym.Value.String() != "2" {
		t.Errorf("x = %s, want 2 after upsert", sym.Value.String())
	}
}

func TestLookupWalksParentChain(t *testing.T) {
	global := NewEnvironment("global", 1)
	global.DefineVariable("g", &StringValue{Value: "top"})

	local := NewEnclosedEnvironment("f", 2, global)

	if _, ok := local.LookupVariable("g", false); !ok {
		t.Error("chained lookup should find g in the parent")
	}
	if _, ok := local.LookupVariable("g", true); ok {
		t.Error("within-scope lookup should not find g")
	}
	if _, ok := local.LookupVariable("missing", false); ok {
		t.Error("lookup of undefined name should fail")
	}
}

func TestShadowingStaysLocal(t *testing.T) {
	global := NewEnvironment("global", 1)
	global.DefineVariable("x", &IntegerValue{Value: 1})

	local := NewEnclosedEnvironment("f", 2, global)
	local.DefineVariable("x", &IntegerValue{Value: 99})

	sym, _ := local.LookupVariable("x", false)
	if sym.Value.String() != "99" {
		t.Errorf("local x = %s, want 99", sym.Value.String())
	}

	gsym, _ := global.LookupVariable("x", false)
	if gsym.Value.String() != "1" {
		t.Errorf("global x = %s, want 1 (must not be shadow-written)", gsym.Value.String())
	}
}

func TestNamespacesAreDisjoint(t *testing.T) {
	env := NewEnvironment("global", 1)

	env.DefineVariable("a", &IntegerValue{Value: 1})
	if err := env.DefineArray(&ArraySymbol{Name: "a", Size: 1, Values: []Value{&NullValue{}}}); err != nil {
		t.Fatalf("array may share a name with a variable: %v", err)
	}
	if err := env.DefineFunction(&FunctionSymbol{Name: "a", Body: &ast.Body{}}); err != nil {
		t.Fatalf("function may share a name with a variable: %v", err)
	}

	if _, ok := env.LookupVariable("a", false); !ok {
		t.Error("variable a lost")
	}
	if _, ok := env.LookupArray("a"); !ok {
		t.Error("array a lost")
	}
	if _, ok := env.LookupFunction("a"); !ok {
		t.Error("function a lost")
	}
}

func TestDuplicateDefinitionsWithinNamespace(t *testing.T) {
	env := NewEnvironment("global", 1)

	if err := env.DefineArray(&ArraySymbol{Name: "a", Size: 0}); err != nil {
		t.Fatal(err)
	}
	if err := env.DefineArray(&ArraySymbol{Name: "a", Size: 0}); err == nil {
		t.Error("redefining array a should fail")
	}

	if err := env.DefineFunction(&FunctionSymbol{Name: "f", Body: &ast.Body{}}); err != nil {
		t.Fatal(err)
	}
	if err := env.DefineFunction(&FunctionSymbol{Name: "f", Body: &ast.Body{}}); err == nil {
		t.Error("redefining function f should fail")
	}
}

func TestFingerprintDependsOnBindings(t *testing.T) {
	global := NewEnvironment("global", 1)

	a := NewEnclosedEnvironment("f", 2, global)
	a.DefineVariable("n", &IntegerValue{Value: 5})

	b := NewEnclosedEnvironment("f", 2, global)
	b.DefineVariable("n", &IntegerValue{Value: 5})

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("identical scopes must produce identical fingerprints")
	}

	b.DefineVariable("n", &IntegerValue{Value: 6})
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("different bindings must produce different fingerprints")
	}

	c := NewEnclosedEnvironment("f", 3, global)
	c.DefineVariable("n", &IntegerValue{Value: 5})
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("different levels must produce different fingerprints")
	}
}

func TestFingerprintIsOrderIndependent(t *testing.T) {
	global := NewEnvironment("global", 1)

	a := NewEnclosedEnvironment("f", 2, global)
	a.DefineVariable("x", &IntegerValue{Value: 1})
	a.DefineVariable("y", &IntegerValue{Value: 2})

	b := NewEnclosedEnvironment("f", 2, global)
	b.DefineVariable("y", &IntegerValue{Value: 2})
	b.DefineVariable("x", &IntegerValue{Value: 1})

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("fingerprint must not depend on definition order")
	}
}
