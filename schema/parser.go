package schema

import (
	"fmt"
	"strconv"
)

// Parser consumes the token stream and builds the definition list
// bottom-up. The grammar is small enough for one token of lookahead.
type Parser struct {
	lexer *Lexer
	cur   Token
	peek  Token
}

// Parse compiles schema source into its ordered list of top-level
// definitions. Each call constructs a fresh lexer and parser, so
// concurrent calls on independent inputs are safe. The first lexical,
// syntax, or semantic error aborts the parse; no partial result is
// returned.
func Parse(input string) ([]Definition, error) {
	p := &Parser{lexer: NewLexer(input)}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	return p.parseSchema()
}

func (p *Parser) nextToken() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.cur = p.peek
	p.peek = tok
	return nil
}

func (p *Parser) errSyntax(expected string) *ParseError {
	if p.cur.Type == TokenEOF {
		return &ParseError{Kind: ErrSyntax, Line: p.cur.Line, Msg: "unexpected end of input, expected " + expected}
	}
	return &ParseError{
		Kind:  ErrSyntax,
		Line:  p.cur.Line,
		Token: p.cur.Literal,
		Msg:   fmt.Sprintf("unexpected %q, expected %s", p.cur.Literal, expected),
	}
}

func (p *Parser) expect(t TokenType) (Token, error) {
	if p.cur.Type != t {
		return Token{}, p.errSyntax(t.String())
	}
	tok := p.cur
	if err := p.nextToken(); err != nil {
		return Token{}, err
	}
	return tok, nil
}

// parseSchema := definition+
func (p *Parser) parseSchema() ([]Definition, error) {
	var defs []Definition
	for p.cur.Type != TokenEOF {
		def, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	if len(defs) == 0 {
		return nil, p.errSyntax("a definition")
	}
	return defs, nil
}

// parseDefinition := "table" ATOM "KV" ";"
//                  | "table" ATOM "(" atom_list ")" "{" obj_decl+ "}"
func (p *Parser) parseDefinition() (Definition, error) {
	if _, err := p.expect(TokenTable); err != nil {
		return nil, err
	}
	name, err := p.expect(TokenAtom)
	if err != nil {
		return nil, err
	}

	switch p.cur.Type {
	case TokenKV:
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenSemicolon); err != nil {
			return nil, err
		}
		return KV{Name: name.Literal}, nil
	case TokenLParen:
		return p.parseTable(name)
	default:
		return nil, p.errSyntax("'KV' or a key list")
	}
}

func (p *Parser) parseTable(name Token) (Definition, error) {
	if err := p.nextToken(); err != nil { // consume '('
		return nil, err
	}
	key, err := p.parseAtomList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenLBrace); err != nil {
		return nil, err
	}
	fields, err := p.parseObjectBody()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRBrace); err != nil {
		return nil, err
	}

	// Every key attribute must name a field of this table. A reserved
	// slot cannot serve as a key component.
	names := make(map[string]bool, len(fields))
	for _, decl := range fields {
		if f, ok := decl.(Field); ok {
			names[f.Name] = true
		}
	}
	for _, k := range key {
		if !names[k] {
			return nil, &ParseError{
				Kind:  ErrSemantic,
				Line:  name.Line,
				Token: k,
				Msg:   fmt.Sprintf("table %q: key attribute %q does not name a field", name.Literal, k),
			}
		}
	}

	return Table{Name: name.Literal, Key: key, Fields: fields}, nil
}

// parseAtomList := ATOM ("," ATOM)*
func (p *Parser) parseAtomList() ([]string, error) {
	tok, err := p.expect(TokenAtom)
	if err != nil {
		return nil, err
	}
	list := []string{tok.Literal}
	for p.cur.Type == TokenComma {
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		tok, err := p.expect(TokenAtom)
		if err != nil {
			return nil, err
		}
		list = append(list, tok.Literal)
	}
	return list, nil
}

// parseObjectBody := ((field | reservation) ";")+
// The caller consumes the surrounding braces; the body stops at '}'.
func (p *Parser) parseObjectBody() ([]ObjectDecl, error) {
	var decls []ObjectDecl
	for {
		decl, err := p.parseObjectDecl()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenSemicolon); err != nil {
			return nil, err
		}
		decls = append(decls, decl)
		if p.cur.Type == TokenRBrace {
			return decls, nil
		}
	}
}

func (p *Parser) parseObjectDecl() (ObjectDecl, error) {
	if p.cur.Type == TokenReserve {
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		num, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		return Reserved{Number: num}, nil
	}
	return p.parseField()
}

// parseField := ("repeated" | "breakout")* datatype ATOM "=" NUMBER
// Modifiers may appear in any order and any multiplicity; duplicates are
// accepted and collapse to a single flag.
func (p *Parser) parseField() (ObjectDecl, error) {
	var repeated, breakout bool
	for p.cur.Type == TokenRepeated || p.cur.Type == TokenBreakout {
		if p.cur.Type == TokenRepeated {
			repeated = true
		} else {
			breakout = true
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
	}

	dt, err := p.parseDatatype()
	if err != nil {
		return nil, err
	}
	name, err := p.expect(TokenAtom)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenEquals); err != nil {
		return nil, err
	}
	num, err := p.parseNumber()
	if err != nil {
		return nil, err
	}

	return Field{
		Number:   num,
		Name:     name.Literal,
		Datatype: dt,
		Repeated: repeated,
		Breakout: breakout,
	}, nil
}

// parseDatatype := scalar | "timeseries" datatype | "object" "{" obj_decl+ "}"
func (p *Parser) parseDatatype() (Datatype, error) {
	switch p.cur.Type {
	case TokenScalar:
		s := Scalar(p.cur.Literal)
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		return s, nil
	case TokenTimeseries:
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		elem, err := p.parseDatatype()
		if err != nil {
			return nil, err
		}
		return TimeSeries{Elem: elem}, nil
	case TokenObject:
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenLBrace); err != nil {
			return nil, err
		}
		decls, err := p.parseObjectBody()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRBrace); err != nil {
			return nil, err
		}
		return Object{Decls: decls}, nil
	default:
		return nil, p.errSyntax("a datatype")
	}
}

func (p *Parser) parseNumber() (uint64, error) {
	tok, err := p.expect(TokenNumber)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(tok.Literal, 10, 64)
	if err != nil {
		return 0, &ParseError{
			Kind:  ErrSyntax,
			Line:  tok.Line,
			Token: tok.Literal,
			Msg:   fmt.Sprintf("number %s out of range", tok.Literal),
		}
	}
	return n, nil
}
