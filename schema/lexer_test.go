package schema

import (
	"errors"
	"testing"
)

func TestLexer_BasicTokens(t *testing.T) {
	input := `table T (k) { int32 k = 1; }`
	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}

	expected := []struct {
		typ TokenType
		lit string
	}{
		{TokenTable, "table"},
		{TokenAtom, "T"},
		{TokenLParen, "("},
		{TokenAtom, "k"},
		{TokenRParen, ")"},
		{TokenLBrace, "{"},
		{TokenScalar, "int32"},
		{TokenAtom, "k"},
		{TokenEquals, "="},
		{TokenNumber, "1"},
		{TokenSemicolon, ";"},
		{TokenRBrace, "}"},
		{TokenEOF, ""},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, e := range expected {
		if tokens[i].Type != e.typ {
			t.Errorf("token %d: expected type %v, got %v", i, e.typ, tokens[i].Type)
		}
		if tokens[i].Literal != e.lit {
			t.Errorf("token %d: expected literal %q, got %q", i, e.lit, tokens[i].Literal)
		}
	}
}

func TestLexer_Keywords(t *testing.T) {
	input := `KV table reserve repeated breakout timeseries object`
	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}

	expected := []TokenType{
		TokenKV, TokenTable, TokenReserve, TokenRepeated,
		TokenBreakout, TokenTimeseries, TokenObject,
	}
	for i, typ := range expected {
		if tokens[i].Type != typ {
			t.Errorf("token %d: expected %v, got %v", i, typ, tokens[i].Type)
		}
	}
}

func TestLexer_ScalarKeywords(t *testing.T) {
	names := []string{
		"int32", "int64", "uint32", "uint64", "sint32", "sint64",
		"bool", "fixed32", "fixed64", "sfixed32", "sfixed64",
		"float", "double", "bytes", "bytes32", "string",
	}
	for _, name := range names {
		tokens, err := Tokenize(name)
		if err != nil {
			t.Fatalf("tokenize %q: %v", name, err)
		}
		if tokens[0].Type != TokenScalar {
			t.Errorf("%q: expected scalar token, got %v", name, tokens[0].Type)
		}
		if tokens[0].Literal != name {
			t.Errorf("%q: expected literal %q, got %q", name, name, tokens[0].Literal)
		}
	}
}

func TestLexer_AtomReclassification(t *testing.T) {
	// Atoms that only share a prefix with a keyword stay atoms.
	tokens, err := Tokenize(`int32x tabled bytes33 my_field-name`)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	for i := 0; i < 4; i++ {
		if tokens[i].Type != TokenAtom {
			t.Errorf("token %d (%q): expected atom, got %v", i, tokens[i].Literal, tokens[i].Type)
		}
	}
	if tokens[3].Literal != "my_field-name" {
		t.Errorf("expected hyphenated atom, got %q", tokens[3].Literal)
	}
}

func TestLexer_Comments(t *testing.T) {
	input := `# leading comment
table T KV; # trailing comment
# only a comment`
	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}

	expected := []TokenType{TokenTable, TokenAtom, TokenKV, TokenSemicolon, TokenEOF}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, typ := range expected {
		if tokens[i].Type != typ {
			t.Errorf("token %d: expected %v, got %v", i, typ, tokens[i].Type)
		}
	}
}

func TestLexer_LineNumbers(t *testing.T) {
	input := "table\n\nT\n# comment\n="
	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}

	if tokens[0].Line != 1 {
		t.Errorf("expected 'table' on line 1, got %d", tokens[0].Line)
	}
	if tokens[1].Line != 3 {
		t.Errorf("expected 'T' on line 3, got %d", tokens[1].Line)
	}
	if tokens[2].Line != 5 {
		t.Errorf("expected '=' on line 5, got %d", tokens[2].Line)
	}
}

func TestLexer_IllegalCharacter(t *testing.T) {
	_, err := Tokenize("table T\n@")
	if err == nil {
		t.Fatal("expected lexical error")
	}
	if !errors.Is(err, ErrLexical) {
		t.Errorf("expected ErrLexical, got %v", err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Token != "@" {
		t.Errorf("expected offending token %q, got %q", "@", perr.Token)
	}
	if perr.Line != 2 {
		t.Errorf("expected line 2, got %d", perr.Line)
	}
}

func TestLexer_LeadingZeroIsIllegal(t *testing.T) {
	// The number rule is [1-9][0-9]*, so a bare zero matches nothing.
	_, err := Tokenize("0")
	if !errors.Is(err, ErrLexical) {
		t.Errorf("expected ErrLexical for leading zero, got %v", err)
	}
}
