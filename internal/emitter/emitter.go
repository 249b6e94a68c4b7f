// Package emitter turns classified declarations into output lines: plain
// name listings or synthesized shadow stubs.
package emitter

import (
	"errors"
	"fmt"

	"github.com/shadowgen-hq/shadowgen/internal/scanner"
)

// AutoClass is the class filter sentinel resolving to the first class
// declared in the input.
const AutoClass = "AUTO"

// Default annotation markers, matching the SpongePowered Mixin framework.
const (
	DefaultShadowAnnotation = "@org.spongepowered.asm.mixin.Shadow"
	DefaultFinalAnnotation  = "@org.spongepowered.asm.mixin.Final"
)

// ErrNoClass is returned when the AUTO class filter cannot be resolved
// because the input declares no class.
var ErrNoClass = errors.New("no class declaration found to resolve AUTO class filter")

// Options parameterize one emit run.
type Options struct {
	// ClassFilter restricts output to members of the named class. Empty
	// matches every declaration; AutoClass resolves to the first class
	// declared in the input.
	ClassFilter string

	// MethodBlacklist and FieldBlacklist name members excluded from stub
	// emission. Listings ignore them.
	MethodBlacklist []string
	FieldBlacklist  []string

	// ShadowAnnotation and FinalAnnotation override the emitted marker
	// lines. Empty selects the Mixin defaults.
	ShadowAnnotation string
	FinalAnnotation  string
}

// Operation converts declarations into output lines
type Operation interface {
	// Name returns the operation name used for lookup (e.g. "shadows")
	Name() string

	// Emit produces the operation's output lines in declaration order
	Emit(decls []scanner.Declaration, opts Options) ([]string, error)
}

// Registry holds all available operations
type Registry struct {
	ops map[string]Operation
}

// NewRegistry creates a registry with all built-in operations
func NewRegistry() *Registry {
	r := &Registry{
		ops: make(map[string]Operation),
	}

	r.Register(&ListFieldsOp{})
	r.Register(&ListMethodsOp{})
	r.Register(&ShadowsOp{})

	return r
}

// Register adds an operation to the registry
func (r *Registry) Register(op Operation) {
	r.ops[op.Name()] = op
}

// Get returns an operation by name
func (r *Registry) Get(name string) (Operation, error) {
	op, ok := r.ops[name]
	if !ok {
		return nil, fmt.Errorf("operation not found: %s", name)
	}
	return op, nil
}

// List returns all registered operation names
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	return names
}

// resolveFilter resolves the AUTO sentinel against the first class declared
// in the input. An unset filter stays unset and matches everything.
func resolveFilter(decls []scanner.Declaration, opts Options) (string, error) {
	if opts.ClassFilter != AutoClass {
		return opts.ClassFilter, nil
	}
	for _, d := range decls {
		if d.Kind == scanner.KindClass {
			return d.Name, nil
		}
	}
	return "", ErrNoClass
}

func matchesFilter(filter string, d scanner.Declaration) bool {
	return filter == "" || filter == d.EnclosingClass
}
