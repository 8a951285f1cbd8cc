package schema

import "fmt"

// Lexer tokenizes databuf schema input.
type Lexer struct {
	input   string
	pos     int
	readPos int
	ch      byte
	line    int
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func (l *Lexer) skipWhitespace() {
	for {
		switch l.ch {
		case ' ', '\t':
			l.readChar()
		case '\n':
			l.line++
			l.readChar()
		case '#':
			// Comment runs to end of line.
			for l.ch != 0 && l.ch != '\n' {
				l.readChar()
			}
		default:
			return
		}
	}
}

// NextToken returns the next token from the input. A character that
// matches no token rule is a lexical error and aborts the parse.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	line := l.line

	switch l.ch {
	case 0:
		return Token{Type: TokenEOF, Line: line}, nil
	case ',':
		return l.punct(TokenComma, ","), nil
	case '=':
		return l.punct(TokenEquals, "="), nil
	case '(':
		return l.punct(TokenLParen, "("), nil
	case ')':
		return l.punct(TokenRParen, ")"), nil
	case '{':
		return l.punct(TokenLBrace, "{"), nil
	case '}':
		return l.punct(TokenRBrace, "}"), nil
	case ';':
		return l.punct(TokenSemicolon, ";"), nil
	}

	switch {
	case l.ch >= '1' && l.ch <= '9':
		// Numbers never carry a leading zero; a bare '0' matches no rule.
		return Token{Type: TokenNumber, Literal: l.readNumber(), Line: line}, nil
	case isAtomStart(l.ch):
		lit := l.readAtom()
		typ := TokenAtom
		if kw, ok := keywords[lit]; ok {
			typ = kw
		}
		return Token{Type: typ, Literal: lit, Line: line}, nil
	}

	return Token{}, &ParseError{
		Kind:  ErrLexical,
		Line:  line,
		Token: string(l.ch),
		Msg:   fmt.Sprintf("illegal character %q", l.ch),
	}
}

func (l *Lexer) punct(t TokenType, lit string) Token {
	tok := Token{Type: t, Literal: lit, Line: l.line}
	l.readChar()
	return tok
}

func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func (l *Lexer) readAtom() string {
	start := l.pos
	for isAtomChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func isAtomStart(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isAtomChar(ch byte) bool {
	return isAtomStart(ch) || isDigit(ch) || ch == '-'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize returns all tokens from the input, ending with TokenEOF, or
// the lexical error that stopped scanning.
func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}
