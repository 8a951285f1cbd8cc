package schema

import (
	"errors"
	"fmt"
)

// The three failure kinds of a parse. A failed Parse always returns a
// *ParseError wrapping exactly one of these, so callers can switch on
// errors.Is rather than on message text.
var (
	ErrLexical  = errors.New("schema: lexical error")
	ErrSyntax   = errors.New("schema: syntax error")
	ErrSemantic = errors.New("schema: semantic error")
)

// ParseError is the single diagnostic produced by a failed parse. Parsing
// stops at the first error; no partial result is returned.
type ParseError struct {
	Kind  error  // ErrLexical, ErrSyntax, or ErrSemantic
	Line  int    // 1-based source line, 0 when no position applies
	Token string // offending literal, if any
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v: %s on line %d", e.Kind, e.Msg, e.Line)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Kind }
