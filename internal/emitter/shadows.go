package emitter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shadowgen-hq/shadowgen/internal/lexer"
	"github.com/shadowgen-hq/shadowgen/internal/scanner"
)

// stubIndent is the member indentation of the emitted stub lines.
const stubIndent = "    "

// ShadowsOp synthesizes forwarding stubs for every non-blacklisted field and
// method matching the class filter: an annotation marker line, the
// re-declared member with final stripped, and a placeholder body for
// methods. Class and constructor declarations are never emitted.
type ShadowsOp struct{}

func (*ShadowsOp) Name() string { return "shadows" }

func (*ShadowsOp) Emit(decls []scanner.Declaration, opts Options) ([]string, error) {
	filter, err := resolveFilter(decls, opts)
	if err != nil {
		return nil, err
	}

	shadow := opts.ShadowAnnotation
	if shadow == "" {
		shadow = DefaultShadowAnnotation
	}
	finalMarker := opts.FinalAnnotation
	if finalMarker == "" {
		finalMarker = DefaultFinalAnnotation
	}

	var out []string
	for _, d := range decls {
		if !matchesFilter(filter, d) {
			continue
		}

		switch d.Kind {
		case scanner.KindField:
			if slices.Contains(opts.FieldBlacklist, d.Name) {
				continue
			}
			out = append(out, stubIndent+shadow)
			if slices.Contains(d.Modifiers, "final") {
				out = append(out, stubIndent+finalMarker)
			}
			out = append(out, stubIndent+fieldStub(d), "")

		case scanner.KindMethod:
			if slices.Contains(opts.MethodBlacklist, d.Name) {
				continue
			}
			stub, err := methodStub(d)
			if err != nil {
				return nil, fmt.Errorf("method %s: %w", d.Name, err)
			}
			out = append(out, stubIndent+shadow, stubIndent+stub, "")
		}
	}
	return out, nil
}

// fieldStub re-declares a field: modifiers minus final, the declared type
// with its generics suffix, the name with its generics suffix.
func fieldStub(d scanner.Declaration) string {
	parts := withoutFinal(d.Modifiers)
	parts = append(parts,
		d.Tokens[0].Text+genericsSuffix(d.TypeGenerics),
		d.Name+genericsSuffix(d.NameGenerics),
	)
	return strings.Join(parts, " ") + ";"
}

// methodStub re-declares a method with a reconstructed parameter list and a
// dummy body matching its return type.
func methodStub(d scanner.Declaration) (string, error) {
	ret := d.Tokens[0].Text

	params, err := paramList(d.Tokens)
	if err != nil {
		return "", err
	}

	parts := withoutFinal(d.Modifiers)
	parts = append(parts,
		ret+genericsSuffix(d.TypeGenerics),
		d.Name+genericsSuffix(d.NameGenerics),
	)

	return strings.Join(parts, " ") +
		"(" + strings.Join(params, ", ") + ") {" + dummyBody(ret) + "}", nil
}

// paramList rebuilds "type name" parameter pairs from the tokens between the
// method's opening parenthesis and its match. Commas are dropped and the
// remaining tokens are paired off; a trailing unpaired token is ignored.
func paramList(tokens []lexer.Token) ([]string, error) {
	open := -1
	for i, tok := range tokens {
		if tok.Text == "(" {
			open = i
			break
		}
	}
	if open < 0 {
		return nil, fmt.Errorf("no parameter list")
	}

	depth := 0
	closing := -1
	for i := open; i < len(tokens); i++ {
		switch tokens[i].Text {
		case "(":
			depth++
		case ")":
			depth--
		}
		if depth == 0 {
			closing = i
			break
		}
	}
	if closing < 0 {
		return nil, fmt.Errorf("unterminated parameter list")
	}

	var args []lexer.Token
	for _, tok := range tokens[open+1 : closing] {
		if tok.Text != "," {
			args = append(args, tok)
		}
	}

	params := make([]string, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params = append(params, args[i].Text+" "+args[i+1].Text)
	}
	return params, nil
}

// dummyBody picks a placeholder body producing a legal value for the
// declared return type.
func dummyBody(ret string) string {
	switch ret {
	case "void":
		return " "
	case "boolean":
		return " return false; "
	case "byte", "short", "int", "long":
		return " return 0; "
	case "float":
		return " return 0f; "
	case "double":
		return " return 0d; "
	default:
		return " return null; "
	}
}

// genericsSuffix flattens an extracted generics span back to display form.
// Only symbol tokens survive; nesting is not reconstructed.
func genericsSuffix(span []lexer.Token) string {
	var names []string
	for _, tok := range span {
		if tok.Category == lexer.CategorySymbol {
			names = append(names, tok.Text)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return "<" + strings.Join(names, ", ") + ">"
}

func withoutFinal(mods []string) []string {
	out := make([]string, 0, len(mods))
	for _, m := range mods {
		if m != "final" {
			out = append(out, m)
		}
	}
	return out
}
