package scanner

import "github.com/shadowgen-hq/shadowgen/internal/lexer"

// extractGenerics scans a balanced <...> span starting at the token holding
// the opening "<". It returns the exclusive end index of the span. When the
// brackets never close before the tokens run out it reports ok=false and the
// caller must leave the token sequence untouched.
func extractGenerics(tokens []lexer.Token, start int) (end int, ok bool) {
	depth := 1
	i := start + 1
	for i < len(tokens) && depth > 0 {
		switch tokens[i].Text {
		case "<":
			depth++
		case ">":
			depth--
		}
		i++
	}
	if depth != 0 {
		return 0, false
	}
	return i, true
}
