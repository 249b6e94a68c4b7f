package scanner

import "github.com/shadowgen-hq/shadowgen/internal/lexer"

// Kind identifies what a declaration line declares
type Kind string

const (
	KindClass       Kind = "class"
	KindConstructor Kind = "constructor"
	KindField       Kind = "field"
	KindMethod      Kind = "method"
)

// Declaration is one recognized declaration site.
type Declaration struct {
	Kind Kind

	// EnclosingClass is the most recently declared class at the time the
	// member was recognized. Empty for class declarations themselves.
	EnclosingClass string

	// TypeGenerics and NameGenerics hold the balanced <...> token spans
	// extracted from the declared type and the declared name. Empty when
	// the line carries none.
	TypeGenerics []lexer.Token
	NameGenerics []lexer.Token

	// Modifiers are the leading modifier keywords in source order.
	Modifiers []string

	Name string

	// Tokens is the line's non-whitespace token sequence with any
	// extracted generics removed. Downstream signature reconstruction
	// (field type, method parameter list) reads from here.
	Tokens []lexer.Token
}
