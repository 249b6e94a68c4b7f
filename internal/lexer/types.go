package lexer

// Category classifies a run of source text
type Category int

const (
	CategorySymbol Category = iota
	CategoryNumber
	CategoryPunct
	CategoryWhitespace
	CategoryNewline
	CategoryLineComment
	CategoryBlockComment
)

// none marks the state before any token has been started
const none Category = -1

func (c Category) String() string {
	switch c {
	case CategorySymbol:
		return "symbol"
	case CategoryNumber:
		return "number"
	case CategoryPunct:
		return "punct"
	case CategoryWhitespace:
		return "whitespace"
	case CategoryNewline:
		return "newline"
	case CategoryLineComment:
		return "line-comment"
	case CategoryBlockComment:
		return "block-comment"
	default:
		return "unknown"
	}
}

// Token is one classified run of source text. Tokens are immutable once
// produced; concatenating every token's text reproduces the input exactly.
type Token struct {
	Category Category
	Text     string
}

// Line is one physical source line: its leading whitespace, its payload
// tokens, and its terminating Newline token when the source has one.
type Line []Token
