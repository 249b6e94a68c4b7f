// Package scanner classifies tokenized source lines into class, constructor,
// field and method declarations. Recognition is purely structural: it tracks
// the enclosing class and its indentation, and relies on a fixed member
// indent of one block level to tell top-level members from nested or local
// declarations.
package scanner

import "github.com/shadowgen-hq/shadowgen/internal/lexer"

// memberIndent is the indentation offset of class members relative to their
// class declaration.
const memberIndent = 4

// modifierSet holds the modifier keywords stripped ahead of a declaration.
// The scanned style never uses protected, so it is deliberately absent.
var modifierSet = map[string]bool{
	"public":       true,
	"private":      true,
	"static":       true,
	"final":        true,
	"volatile":     true,
	"transient":    true,
	"synchronized": true,
}

// state is the accumulator threaded through one classification run.
type state struct {
	class       string // most recent class declaration, "" before any
	classIndent int
	haveClass   bool

	// afterCtor suppresses field recognition from the constructor until
	// the next class declaration. Fields declared after the constructor
	// stay invisible; methods do not. That asymmetry matches the scanned
	// convention of declaring all fields first.
	afterCtor bool
}

// Classify walks grouped lines and extracts every declaration site it can
// recognize. Lines matching no declaration pattern (most lines) are skipped.
func Classify(lines []lexer.Line) []Declaration {
	var decls []Declaration
	var st state
	for _, line := range lines {
		decls = classifyLine(line, &st, decls)
	}
	return decls
}

func classifyLine(line lexer.Line, st *state, decls []Declaration) []Declaration {
	indent := 0
	for _, tok := range line {
		if tok.Category != lexer.CategoryWhitespace {
			break
		}
		indent += len(tok.Text)
	}

	rest := make([]lexer.Token, 0, len(line))
	for _, tok := range line {
		if tok.Category != lexer.CategoryWhitespace {
			rest = append(rest, tok)
		}
	}

	var mods []string
	for len(rest) > 0 && modifierSet[rest[0].Text] {
		mods = append(mods, rest[0].Text)
		rest = rest[1:]
	}

	var typeGenerics, nameGenerics []lexer.Token
	if len(rest) > 2 && rest[1].Text == "<" {
		if end, ok := extractGenerics(rest, 1); ok {
			typeGenerics = append([]lexer.Token(nil), rest[1:end]...)
			rest = append(rest[:1], rest[end:]...)
		}
	} else if len(rest) > 3 && rest[2].Text == "<" {
		if end, ok := extractGenerics(rest, 2); ok {
			nameGenerics = append([]lexer.Token(nil), rest[2:end]...)
			rest = append(rest[:2], rest[end:]...)
		}
	}

	if len(rest) > 2 && rest[0].Text == "class" && rest[1].Category == lexer.CategorySymbol {
		st.class = rest[1].Text
		st.classIndent = indent
		st.haveClass = true
		st.afterCtor = false
		decls = append(decls, Declaration{
			Kind:         KindClass,
			TypeGenerics: typeGenerics,
			NameGenerics: nameGenerics,
			Modifiers:    mods,
			Name:         rest[1].Text,
			Tokens:       rest,
		})
	}

	if len(rest) > 1 && st.haveClass && rest[0].Text == st.class && rest[1].Text == "(" {
		decls = append(decls, Declaration{
			Kind:           KindConstructor,
			EnclosingClass: st.class,
			TypeGenerics:   typeGenerics,
			NameGenerics:   nameGenerics,
			Modifiers:      mods,
			Name:           rest[0].Text,
			Tokens:         rest,
		})
		st.afterCtor = true
	}

	if len(rest) >= 3 &&
		rest[0].Category == lexer.CategorySymbol &&
		rest[1].Category == lexer.CategorySymbol &&
		(rest[2].Text == "=" || rest[2].Text == ";") {
		if st.haveClass && !st.afterCtor && indent == st.classIndent+memberIndent {
			decls = append(decls, Declaration{
				Kind:           KindField,
				EnclosingClass: st.class,
				TypeGenerics:   typeGenerics,
				NameGenerics:   nameGenerics,
				Modifiers:      mods,
				Name:           rest[1].Text,
				Tokens:         rest,
			})
		}
	}

	if len(rest) >= 3 &&
		rest[0].Category == lexer.CategorySymbol &&
		rest[1].Category == lexer.CategorySymbol &&
		rest[2].Text == "(" {
		if st.haveClass && indent == st.classIndent+memberIndent {
			decls = append(decls, Declaration{
				Kind:           KindMethod,
				EnclosingClass: st.class,
				TypeGenerics:   typeGenerics,
				NameGenerics:   nameGenerics,
				Modifiers:      mods,
				Name:           rest[1].Text,
				Tokens:         rest,
			})
		}
	}

	return decls
}
