package schema

import "fmt"

// TokenType represents the type of a lexer token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenComma
	TokenEquals
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenSemicolon
	TokenNumber // [1-9][0-9]*
	TokenAtom   // identifiers not matching a reserved word

	// Reserved words.
	TokenKV
	TokenTable
	TokenReserve
	TokenRepeated
	TokenBreakout
	TokenTimeseries
	TokenObject
	TokenScalar // one of the scalar type names; Literal carries which
)

var tokenNames = map[TokenType]string{
	TokenEOF:        "end of input",
	TokenComma:      "','",
	TokenEquals:     "'='",
	TokenLParen:     "'('",
	TokenRParen:     "')'",
	TokenLBrace:     "'{'",
	TokenRBrace:     "'}'",
	TokenSemicolon:  "';'",
	TokenNumber:     "number",
	TokenAtom:       "identifier",
	TokenKV:         "'KV'",
	TokenTable:      "'table'",
	TokenReserve:    "'reserve'",
	TokenRepeated:   "'repeated'",
	TokenBreakout:   "'breakout'",
	TokenTimeseries: "'timeseries'",
	TokenObject:     "'object'",
	TokenScalar:     "scalar type",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token represents a single token from the lexer.
type Token struct {
	Type    TokenType
	Literal string
	Line    int // 1-based source line
}

func (t Token) String() string {
	return fmt.Sprintf("Token{%v, %q, line %d}", t.Type, t.Literal, t.Line)
}

// keywords maps reserved words to their token types. Atoms whose literal
// text matches an entry are reclassified during lexing. Read-only after
// initialization, so concurrent parses may share it.
var keywords = map[string]TokenType{
	"KV":       TokenKV,
	"table":    TokenTable,
	"reserve":  TokenReserve,
	"repeated": TokenRepeated,
	"breakout": TokenBreakout,

	"int32":    TokenScalar,
	"int64":    TokenScalar,
	"uint32":   TokenScalar,
	"uint64":   TokenScalar,
	"sint32":   TokenScalar,
	"sint64":   TokenScalar,
	"bool":     TokenScalar,
	"fixed32":  TokenScalar,
	"fixed64":  TokenScalar,
	"sfixed32": TokenScalar,
	"sfixed64": TokenScalar,
	"float":    TokenScalar,
	"double":   TokenScalar,
	"bytes":    TokenScalar,
	"bytes32":  TokenScalar,
	"string":   TokenScalar,

	"timeseries": TokenTimeseries,
	"object":     TokenObject,
}
