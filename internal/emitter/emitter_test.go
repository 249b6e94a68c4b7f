package emitter

import (
	"errors"
	"testing"

	"github.com/shadowgen-hq/shadowgen/internal/lexer"
	"github.com/shadowgen-hq/shadowgen/internal/scanner"
)

// scan runs the full front half of the pipeline on a source snippet.
func scan(source string) []scanner.Declaration {
	return scanner.Classify(lexer.GroupLines(lexer.Tokenize(source)))
}

const twoClassSource = `class Foo {
    int a;
    void tick() {}
}
class Bar {
    int b;
    void update() {}
}
`

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry returned nil")
	}

	expected := []string{"list-fields", "list-methods", "shadows"}
	if len(r.List()) != len(expected) {
		t.Errorf("expected %d operations, got %d", len(expected), len(r.List()))
	}
	for _, name := range expected {
		if _, err := r.Get(name); err != nil {
			t.Errorf("operation %s not found: %v", name, err)
		}
	}
}

func TestRegistry_Get_Unknown(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Get("nonexistent"); err == nil {
		t.Error("expected error for nonexistent operation")
	}
}

func TestListFields_Unfiltered(t *testing.T) {
	lines, err := (&ListFieldsOp{}).Emit(scan(twoClassSource), Options{})
	if err != nil {
		t.Fatalf("Emit() error = %v", err)
	}

	want := []string{"a", "b"}
	if len(lines) != len(want) {
		t.Fatalf("got %d names, want %d", len(lines), len(want))
	}
	for i, name := range want {
		if lines[i] != name {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], name)
		}
	}
}

func TestListFields_ClassFilter(t *testing.T) {
	lines, err := (&ListFieldsOp{}).Emit(scan(twoClassSource), Options{ClassFilter: "Bar"})
	if err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	if len(lines) != 1 || lines[0] != "b" {
		t.Errorf("lines = %v, want [b]", lines)
	}
}

func TestListMethods_AutoFilter(t *testing.T) {
	// AUTO resolves to the first declared class.
	lines, err := (&ListMethodsOp{}).Emit(scan(twoClassSource), Options{ClassFilter: AutoClass})
	if err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	if len(lines) != 1 || lines[0] != "tick" {
		t.Errorf("lines = %v, want [tick]", lines)
	}
}

func TestListMethods_IgnoresBlacklist(t *testing.T) {
	// Blacklists only gate stub emission; listings still count everything.
	lines, err := (&ListMethodsOp{}).Emit(scan(twoClassSource), Options{
		MethodBlacklist: []string{"tick", "update"},
	})
	if err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	if len(lines) != 2 {
		t.Errorf("got %d methods, want 2", len(lines))
	}
}

func TestResolveFilter_AutoWithoutClass(t *testing.T) {
	decls := scan("    int orphan;\n")

	for _, name := range []string{"list-fields", "list-methods", "shadows"} {
		op, err := NewRegistry().Get(name)
		if err != nil {
			t.Fatalf("Get(%s) error = %v", name, err)
		}
		_, err = op.Emit(decls, Options{ClassFilter: AutoClass})
		if !errors.Is(err, ErrNoClass) {
			t.Errorf("%s: err = %v, want ErrNoClass", name, err)
		}
	}
}
