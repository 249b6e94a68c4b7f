// Package lexer tokenizes Java-style source text into flat token runs and
// groups them into physical lines. It is a structural scanner, not a
// grammar-correct lexer: every byte of input lands in some token, and
// anything unrecognized defaults to a symbol run.
package lexer

// punct is the single-character punctuation set. Punctuation tokens are
// never merged with neighbors, even of the same category.
const punct = "(),=;[]{}<>."

// punctPairs are two-character punctuation sequences, matched before the
// single-character set.
var punctPairs = [][2]byte{
	{'=', '='},
}

// categorize classifies the character at position i given one character of
// lookahead and the category of the token currently being accumulated.
// It returns the category and how many characters it consumes.
func categorize(src string, i int, prev Category) (Category, int) {
	c := src[i]
	var n byte
	if i+1 < len(src) {
		n = src[i+1]
	}

	if c == '*' && n == '/' && prev == CategoryBlockComment {
		return CategoryBlockComment, 2
	}

	if c == '\n' {
		return CategoryNewline, 1
	}
	if c == '\r' && n == '\n' {
		return CategoryNewline, 2
	}

	// A line comment swallows everything up to the newline.
	if prev == CategoryLineComment {
		return CategoryLineComment, 1
	}

	if c == ' ' || c == '\t' {
		return CategoryWhitespace, 1
	}

	if c == '/' && n == '/' {
		return CategoryLineComment, 2
	}

	if c >= '0' && c <= '9' {
		// Digits embedded in an identifier already being built stay
		// part of the identifier.
		if prev == CategorySymbol {
			return CategorySymbol, 1
		}
		return CategoryNumber, 1
	}

	for _, pair := range punctPairs {
		if c == pair[0] && n == pair[1] {
			return CategoryPunct, 2
		}
	}
	for j := 0; j < len(punct); j++ {
		if c == punct[j] {
			return CategoryPunct, 1
		}
	}

	return CategorySymbol, 1
}

// Tokenize converts source text into a flat token sequence. Empty input
// produces no tokens.
func Tokenize(source string) []Token {
	if len(source) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(source)/4)

	cur, width := categorize(source, 0, none)
	start := 0
	i := width

	for i < len(source) {
		cat, width := categorize(source, i, cur)

		// Boundary when the category changes; punctuation and newlines
		// are always single tokens.
		if cat != cur || cat == CategoryPunct || cat == CategoryNewline {
			tokens = append(tokens, Token{Category: cur, Text: source[start:i]})
			cur = cat
			start = i
		}

		i += width
	}

	return append(tokens, Token{Category: cur, Text: source[start:]})
}

// GroupLines partitions a token sequence into physical lines, splitting
// immediately after each Newline token. A trailing run without a newline
// still forms a final line.
func GroupLines(tokens []Token) []Line {
	var lines []Line
	start := 0
	for i, tok := range tokens {
		if tok.Category == CategoryNewline {
			lines = append(lines, Line(tokens[start:i+1]))
			start = i + 1
		}
	}
	if start < len(tokens) {
		lines = append(lines, Line(tokens[start:]))
	}
	return lines
}
